package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/philipp01105/pinelog/core"
)

// EnvPrefix is prepended to upper-cased setting keys to form the
// environment variables that override a settings file.
const EnvPrefix = "PINELOG"

// Setting keys as they appear in a settings file.
const (
	KeyMinLevel  = "min_level"
	KeyFilePath  = "file_path"
	KeyTimestamp = "timestamp"
)

// ErrMissingMinLevel is wrapped when a settings source has no min_level.
var ErrMissingMinLevel = errors.New("min_level is required")

// Record is the resolved logger configuration.
type Record struct {
	// MinLevel is the lowest level that is emitted.
	MinLevel core.Level
	// FilePath is the append destination. Empty means console only.
	FilePath string
	// Timestamp selects the timestamp layout. TimestampNone omits it.
	Timestamp core.TimestampFormat
}

// HasFile reports whether the record names a destination file.
func (r Record) HasFile() bool {
	return r.FilePath != ""
}

// Validate reports a Record holding values no settings file can produce.
func (r Record) Validate() error {
	if !r.MinLevel.Valid() {
		return &core.ConfigError{Err: fmt.Errorf("unknown level %d", int8(r.MinLevel))}
	}
	if _, err := r.Timestamp.MarshalText(); err != nil {
		return &core.ConfigError{Err: err}
	}
	return nil
}

// Default returns the configuration used before any init:
// INFO and above, console only, no timestamp.
func Default() Record {
	return Record{MinLevel: core.InfoLevel}
}

// Settings is the raw shape of a settings file.
type Settings struct {
	MinLevel  string `mapstructure:"min_level" toml:"min_level"`
	FilePath  string `mapstructure:"file_path" toml:"file_path,omitempty"`
	Timestamp string `mapstructure:"timestamp" toml:"timestamp,omitempty"`
}

// SettingsFrom converts a Record back to its settings-file shape.
func SettingsFrom(rec Record) Settings {
	return Settings{
		MinLevel:  rec.MinLevel.String(),
		FilePath:  rec.FilePath,
		Timestamp: rec.Timestamp.String(),
	}
}

// Record validates s and converts it.
func (s Settings) Record() (Record, error) {
	if errs := s.Validate(); len(errs) > 0 {
		return Record{}, ValidationErrors(errs)
	}
	// Validate has already accepted both values.
	level, _ := core.ParseLevel(s.MinLevel)
	ts, _ := core.ParseTimestampFormat(s.Timestamp)
	return Record{MinLevel: level, FilePath: s.FilePath, Timestamp: ts}, nil
}

// Load reads the settings file at path, applies environment overrides and
// returns the resulting Record. Every failure is a *core.ConfigError.
func Load(path string) (Record, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return Record{}, &core.ConfigError{Path: path, Err: err}
	}

	rec, err := decode(v)
	if err != nil {
		return Record{}, &core.ConfigError{Path: path, Err: err}
	}
	return rec, nil
}

// FromEnv builds a Record from environment variables alone. Unset
// variables fall back to Default.
func FromEnv() (Record, error) {
	v := newViper()
	v.SetDefault(KeyMinLevel, core.InfoLevel.String())

	rec, err := decode(v)
	if err != nil {
		return Record{}, &core.ConfigError{Err: err}
	}
	return rec, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	// BindEnv makes the overrides visible to Unmarshal even when the
	// file omits the key.
	for _, key := range []string{KeyMinLevel, KeyFilePath, KeyTimestamp} {
		_ = v.BindEnv(key)
	}
	return v
}

func decode(v *viper.Viper) (Record, error) {
	var s Settings
	if err := v.UnmarshalExact(&s); err != nil {
		return Record{}, fmt.Errorf("decode settings: %w", err)
	}
	if s.MinLevel == "" {
		return Record{}, ErrMissingMinLevel
	}
	return s.Record()
}
