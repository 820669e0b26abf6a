// Package constants defines shared constants used throughout fragnav.
package constants

// NullTag marks a stack entry whose view has no tag. On restore such an entry
// is rebuilt from the tab's root views. Generated tags always end in a digit,
// so a real tag can never be equal to it.
const NullTag = "null"

// EnvPrefix is the prefix for environment variable overrides of configuration keys.
const EnvPrefix = "FRAGNAV"

// ConfigEnvVar is the environment variable naming an explicit config file.
const ConfigEnvVar = "FRAGNAV_CONFIG"

// DefaultStateKey is the bundle key used when none is configured.
const DefaultStateKey = "fragnav:state"

// SessionKeyPrefix prefixes generated per-session bundle keys.
const SessionKeyPrefix = "fragnav:"

// TracerName is the instrumentation name for navigation spans.
const TracerName = "github.com/BrandonKowalski/fragnav"

// StateFormat names a serialization format for saved navigation state.
type StateFormat string

const (
	StateFormatJSON StateFormat = "json"
	StateFormatTOML StateFormat = "toml"
	StateFormatYAML StateFormat = "yaml"
)

// BundleBackend names where saved navigation state is kept.
type BundleBackend string

const (
	BundleBackendMemory BundleBackend = "memory"
	BundleBackendRedis  BundleBackend = "redis"
	BundleBackendSQLite BundleBackend = "sqlite"
)
