package exhibit

import "log/slog"

// Log level names accepted by Config.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// knownLogLevels maps accepted level names to slog levels.
var knownLogLevels = map[string]slog.Level{
	LogLevelDebug: slog.LevelDebug,
	LogLevelInfo:  slog.LevelInfo,
	LogLevelWarn:  slog.LevelWarn,
	LogLevelError: slog.LevelError,
}

// Config holds collection-wide settings loaded from config.yaml.
type Config struct {
	// LogLevel selects the registry logger level.
	LogLevel string `json:"log_level" yaml:"log_level"`

	// ReferenceYear, when positive, fixes the year used for age
	// derivation. Zero means the wall clock.
	ReferenceYear int `json:"reference_year" yaml:"reference_year"`
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if !isKnownLogLevel(c.LogLevel) {
		return ErrLogLevelUnknown
	}
	if c.ReferenceYear < 0 {
		return ErrReferenceYearInvalid
	}
	return nil
}

// LoggerLevel returns the slog level for the configured name. Unknown
// names map to info; Validate rejects them beforehand.
func (c Config) LoggerLevel() slog.Level {
	if lvl, ok := knownLogLevels[c.LogLevel]; ok {
		return lvl
	}
	return slog.LevelInfo
}

// Apply installs the config's reference year for age derivation.
func (c Config) Apply() {
	SetReferenceYear(c.ReferenceYear)
}

func isKnownLogLevel(level string) bool {
	_, ok := knownLogLevels[level]
	return ok
}
