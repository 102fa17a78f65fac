package config

import (
	"fmt"
	"strings"

	"github.com/philipp01105/pinelog/core"
)

// ValidationError represents a single invalid setting
type ValidationError struct {
	Field   string // The settings key (e.g., "min_level")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d validation errors:\n", len(e))
	for i, err := range e {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, err.Error())
	}
	return sb.String()
}

// ValidLevels returns the accepted min_level spellings
func ValidLevels() []string {
	levels := core.Levels()
	names := make([]string, len(levels))
	for i, l := range levels {
		names[i] = l.String()
	}
	return names
}

// ValidTimestamps returns the accepted timestamp spellings
func ValidTimestamps() []string {
	return []string{
		core.TimestampDate.String(),
		core.TimestampTime.String(),
		core.TimestampFull.String(),
	}
}

// Validate checks s and returns every problem found
func (s Settings) Validate() []ValidationError {
	var errors []ValidationError

	if _, err := core.ParseLevel(s.MinLevel); err != nil {
		errors = append(errors, ValidationError{
			Field:   KeyMinLevel,
			Value:   s.MinLevel,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLevels(), ", ")),
		})
	}

	if _, err := core.ParseTimestampFormat(s.Timestamp); err != nil {
		errors = append(errors, ValidationError{
			Field:   KeyTimestamp,
			Value:   s.Timestamp,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidTimestamps(), ", ")),
		})
	}

	if strings.ContainsRune(s.FilePath, 0) {
		errors = append(errors, ValidationError{
			Field:   KeyFilePath,
			Value:   s.FilePath,
			Message: "must not contain NUL bytes",
		})
	}

	return errors
}
