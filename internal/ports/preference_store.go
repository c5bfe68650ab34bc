package ports

import "context"

// PreferenceReader reads persisted preference values
type PreferenceReader interface {
	// Get returns the raw value for a key. The boolean reports whether the
	// key exists; absence is not an error.
	Get(ctx context.Context, key string) (string, bool, error)
}

// PreferenceWriter writes and removes persisted preference values
type PreferenceWriter interface {
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// PreferenceStore is the composite interface
type PreferenceStore interface {
	PreferenceReader
	PreferenceWriter
	Close() error
}
