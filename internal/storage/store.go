package storage

// Store is the key-value persistence boundary of the ledger. The ledger
// serializes its own state; the store has no knowledge of the schema.
// Failures are surfaced to the caller, which logs them and continues
// in-memory rather than propagating them to the user.
type Store interface {
	// Load returns the value for key; ok is false when the key is absent.
	Load(key string) (value string, ok bool, err error)
	// Save writes the value for key, replacing any previous value.
	Save(key, value string) error
	// Reset removes every stored key.
	Reset() error
}
