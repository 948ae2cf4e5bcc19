package store

// KV is the durable key-value contract the scanner's persisted state
// (scan history, icon position) is written through. Values are JSON
// documents; implementations survive process restarts except MemKV,
// which backs tests.
type KV interface {
	// Put marshals value and stores it under key, replacing any
	// previous value.
	Put(key string, value interface{}) error

	// Get unmarshals the value stored under key into out. The boolean
	// reports whether the key was present.
	Get(key string, out interface{}) (bool, error)

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
}
