package config

import (
	"io"
	"time"
)

// TimeConfig defines helpers for retrieving duration configuration values.
type TimeConfig interface {
	// GetMillisecond retrieves the value associated with key as milliseconds.
	GetMillisecond(key string) time.Duration

	// GetSecond retrieves the value associated with key as seconds.
	GetSecond(key string) time.Duration

	// GetMinute retrieves the value associated with key as minutes.
	GetMinute(key string) time.Duration
}

// Config defines a set of methods for retrieving configuration values of various types.
// Implementations handle type conversion and return the zero value when a key
// is missing or cannot be converted.
type Config interface {
	io.Closer
	TimeConfig

	// GetBool retrieves the value associated with key as a bool.
	GetBool(key string) bool

	// GetInt retrieves the value associated with key as an int.
	GetInt(key string) int

	// GetInt64 retrieves the value associated with key as an int64.
	GetInt64(key string) int64

	// GetFloat64 retrieves the value associated with key as a float64.
	GetFloat64(key string) float64

	// GetString retrieves the value associated with key as a string.
	GetString(key string) string

	// GetArray retrieves the value associated with key as a slice of strings.
	// Both YAML sequences and the comma separated form <e1>,<e2>,... are accepted.
	GetArray(key string) []string

	// IsSet reports whether key has a value in the configuration source.
	IsSet(key string) bool
}
