package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

// FileKV persists all keys in a single JSON file, rewriting it
// atomically on every change so a crash never leaves a torn state
// file behind.
type FileKV struct {
	mu      sync.RWMutex
	path    string
	entries map[string]json.RawMessage
}

// NewFileKV opens (or creates) the state file at path. An empty path
// selects a file named state.json inside the per-user data directory.
func NewFileKV(path string) (*FileKV, error) {
	if path == "" {
		dataDir, err := defaultDataDirectory()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve data directory: %w", err)
		}
		path = filepath.Join(dataDir, "state.json")
	}

	kv := &FileKV{
		path:    path,
		entries: make(map[string]json.RawMessage),
	}
	if err := kv.load(); err != nil {
		return nil, err
	}
	return kv, nil
}

// Path returns the file the store reads from and writes to.
func (kv *FileKV) Path() string {
	return kv.path
}

func (kv *FileKV) Put(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for %q: %w", key, err)
	}

	kv.mu.Lock()
	defer kv.mu.Unlock()

	kv.entries[key] = raw
	return kv.save()
}

func (kv *FileKV) Get(key string, out interface{}) (bool, error) {
	kv.mu.RLock()
	raw, ok := kv.entries[key]
	kv.mu.RUnlock()

	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return true, fmt.Errorf("failed to unmarshal value for %q: %w", key, err)
	}
	return true, nil
}

func (kv *FileKV) Delete(key string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	if _, ok := kv.entries[key]; !ok {
		return nil
	}
	delete(kv.entries, key)
	return kv.save()
}

func (kv *FileKV) load() error {
	data, err := os.ReadFile(kv.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read state file: %w", err)
	}

	if err := json.Unmarshal(data, &kv.entries); err != nil {
		return fmt.Errorf("failed to parse state file: %w", err)
	}
	return nil
}

// save writes the whole entry map to a temporary file, syncs it, and
// renames it over the real path. Callers hold kv.mu.
func (kv *FileKV) save() error {
	if dir := filepath.Dir(kv.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create state directory: %w", err)
		}
	}

	tmpPath := kv.path + ".tmp"
	file, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to create temporary state file: %w", err)
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(kv.entries); err != nil {
		file.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to encode state: %w", err)
	}

	if err := file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to sync state file: %w", err)
	}

	if err := file.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close state file: %w", err)
	}

	if err := os.Rename(tmpPath, kv.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace state file: %w", err)
	}
	return nil
}

// defaultDataDirectory returns the platform-appropriate directory for
// persistent application state, creating it if needed.
func defaultDataDirectory() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "windows":
		baseDir = os.Getenv("APPDATA")
		if baseDir == "" {
			return "", fmt.Errorf("APPDATA environment variable not set")
		}
	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		baseDir = filepath.Join(homeDir, "Library", "Application Support")
	default:
		baseDir = os.Getenv("XDG_DATA_HOME")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			baseDir = filepath.Join(homeDir, ".local", "share")
		}
	}

	dataDir := filepath.Join(baseDir, "auctionscan")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}
	return dataDir, nil
}
