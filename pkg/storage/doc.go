// Package storage provides export file management for completed scans.
//
// The storage package handles:
//   - Creating and managing the export directory
//   - Writing scan exports with atomic write operations
//   - Detecting scans that were already exported
//   - Thread-safe file operations
//
// The Manager type is the primary interface for export operations. It
// maintains an in-memory cache of exported scan IDs for fast duplicate
// detection and writes atomically to prevent corruption. When summaries
// are enabled, every export gets a derived sidecar next to it (see
// pkg/metadata).
//
// Usage:
//
//	manager, err := storage.NewManager("./scans", true)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if !manager.IsExported(entry.ID) {
//	    path, err := manager.SaveScan(entry)
//	    if err != nil {
//	        log.Printf("Failed to export scan: %v", err)
//	    }
//	    fmt.Println("exported to", path)
//	}
package storage
