package driven

// ConfigStore persists flat, dot-separated settings keys such as
// "llm.provider" or "scan.query_interval".
type ConfigStore interface {
	// Get returns the raw value for key and whether it is set.
	Get(key string) (any, bool)

	// GetString returns "" when key is unset or not a string.
	GetString(key string) string

	// Set stores value and persists it before returning.
	Set(key string, value any) error

	// Delete removes key. Removing an unset key is not an error.
	Delete(key string) error

	Save() error

	// Load discards in-memory values and rereads storage.
	Load() error

	// Path describes where the store persists.
	Path() string
}
