package kvstore

// Store is a small durable key-value store scoped privately to this client
// install. It backs the single session slot; values survive process restarts.
//
// Reads of absent keys return the zero value (false / "" with ok=false)
// rather than an error. Write errors are real I/O failures: the session layer
// treats them as fatal to the host process, per the platform contract.
type Store interface {
	PutBool(key string, value bool) error
	// GetBool returns false for absent keys.
	GetBool(key string) (bool, error)

	PutString(key, value string) error
	// GetString reports ok=false when the key is absent.
	GetString(key string) (string, bool, error)

	// Clear removes every key. Clearing an already-empty store is a no-op.
	Clear() error
}
