package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"auctionscan/pkg/history"
	"auctionscan/pkg/metadata"
)

const (
	exportPrefix = "auctionscan-"
	exportSuffix = ".json"
)

// Manager handles scan export operations and duplicate detection
type Manager struct {
	outputDir     string
	writeSummary  bool
	exportedScans map[string]bool
	mu            sync.RWMutex
}

// NewManager creates a new export manager. When writeSummary is set,
// each exported scan gets a .meta.json sidecar next to it.
func NewManager(outputDir string, writeSummary bool) (*Manager, error) {
	// Create output directory if it doesn't exist
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	manager := &Manager{
		outputDir:     outputDir,
		writeSummary:  writeSummary,
		exportedScans: make(map[string]bool),
	}

	// Scan existing files for duplicate detection
	if err := manager.scanExistingFiles(); err != nil {
		return nil, fmt.Errorf("failed to scan existing files: %w", err)
	}

	return manager, nil
}

// scanExistingFiles scans the output directory for already exported scans
func (m *Manager) scanExistingFiles() error {
	entries, err := os.ReadDir(m.outputDir)
	if err != nil {
		return fmt.Errorf("failed to read directory: %w", err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, exportPrefix) || !strings.HasSuffix(name, exportSuffix) {
			continue
		}
		if strings.HasSuffix(name, ".meta.json") {
			continue
		}
		scanID := strings.TrimSuffix(strings.TrimPrefix(name, exportPrefix), exportSuffix)
		m.exportedScans[scanID] = true
	}

	return nil
}

// ExportPath returns where the given scan is (or would be) exported
func (m *Manager) ExportPath(scanID string) string {
	return filepath.Join(m.outputDir, exportPrefix+scanID+exportSuffix)
}

// IsExported checks if a scan with the given ID has already been exported
func (m *Manager) IsExported(scanID string) bool {
	m.mu.RLock()
	cached := m.exportedScans[scanID]
	m.mu.RUnlock()

	if cached {
		return true
	}

	// Double-check file existence and update the cache
	if _, err := os.Stat(m.ExportPath(scanID)); err == nil {
		m.mu.Lock()
		m.exportedScans[scanID] = true
		m.mu.Unlock()
		return true
	}

	return false
}

// SaveScan exports a completed scan as JSON plus a summary sidecar,
// returning the export path
func (m *Manager) SaveScan(entry history.Entry) (string, error) {
	if entry.ID == "" {
		return "", fmt.Errorf("scan entry has no ID")
	}

	filename := m.ExportPath(entry.ID)

	// Create temporary file first
	tempFile := filename + ".tmp"
	out, err := os.Create(tempFile)
	if err != nil {
		return "", fmt.Errorf("failed to create temporary file: %w", err)
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	err = encoder.Encode(entry)
	closeErr := out.Close()

	if err != nil {
		os.Remove(tempFile) // Clean up temp file
		return "", fmt.Errorf("failed to write scan data: %w", err)
	}

	if closeErr != nil {
		os.Remove(tempFile) // Clean up temp file
		return "", fmt.Errorf("failed to close file: %w", closeErr)
	}

	// Atomic rename
	if err := os.Rename(tempFile, filename); err != nil {
		os.Remove(tempFile) // Clean up temp file
		return "", fmt.Errorf("failed to rename temporary file: %w", err)
	}

	if m.writeSummary {
		if err := metadata.FromEntry(entry).Save(filename); err != nil {
			return "", fmt.Errorf("failed to write summary sidecar: %w", err)
		}
	}

	// Update exported map
	m.mu.Lock()
	m.exportedScans[entry.ID] = true
	m.mu.Unlock()

	return filename, nil
}

// GetOutputDir returns the output directory path
func (m *Manager) GetOutputDir() string {
	return m.outputDir
}

// GetExportedCount returns the number of exported scans
func (m *Manager) GetExportedCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.exportedScans)
}
