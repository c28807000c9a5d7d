package pagination

import "fmt"

// Config holds the page size rules of a Paginator.
type Config struct {
	// DefaultPageSize is used when the request carries no usable limit. Required.
	DefaultPageSize int
	// MaxPageSize caps requested limits. Zero leaves limits unclamped.
	MaxPageSize int
}

// ConfigError reports an invalid Config field.
type ConfigError struct {
	Field  string
	Value  int
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("pagination config: %s=%d %s", e.Field, e.Value, e.Reason)
}

// Validate checks the configuration eagerly so mistakes surface before any request.
func (c Config) Validate() error {
	if c.DefaultPageSize <= 0 {
		return &ConfigError{Field: "DefaultPageSize", Value: c.DefaultPageSize, Reason: "must be positive"}
	}
	if c.MaxPageSize < 0 {
		return &ConfigError{Field: "MaxPageSize", Value: c.MaxPageSize, Reason: "must not be negative"}
	}
	if c.MaxPageSize > 0 && c.MaxPageSize < c.DefaultPageSize {
		return &ConfigError{
			Field:  "MaxPageSize",
			Value:  c.MaxPageSize,
			Reason: fmt.Sprintf("must be >= DefaultPageSize (%d)", c.DefaultPageSize),
		}
	}
	return nil
}
