// Package store provides the key-value persistence used for scan
// history and saved UI state.
//
// Two implementations are included. FileKV keeps every key in a single
// JSON file and rewrites it atomically (write to a temporary file,
// sync, rename) so interrupted writes cannot corrupt saved state.
// MemKV keeps keys in memory only.
//
// Usage:
//
//	kv, err := store.NewFileKV("") // default per-user data directory
//	if err != nil {
//		return err
//	}
//
//	if err := kv.Put("icon_position", pos); err != nil {
//		return err
//	}
//
//	var pos auction.IconPosition
//	found, err := kv.Get("icon_position", &pos)
package store
