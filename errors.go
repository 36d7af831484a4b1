package envar

import (
	"errors"
	"fmt"
)

// Sentinel errors for branching with errors.Is.
var (
	// ErrNotSet indicates a variable was absent (or rejected as if absent)
	// and no default value was available.
	ErrNotSet = errors.New("environment variable not set")
	// ErrParse indicates a variable was set but its value could not be
	// converted to the target type.
	ErrParse = errors.New("environment variable parsing failed")
)

// NotSetError reports that the named variable had no value and no default.
type NotSetError struct {
	Var string
}

func (e *NotSetError) Error() string {
	return fmt.Sprintf("environment variable %s is not set", e.Var)
}

func (e *NotSetError) Unwrap() error {
	return ErrNotSet
}

// ParseError reports that a variable's raw value was rejected by the parse
// rule for the target type. Error does not include the underlying reason;
// call Reason to materialize it.
type ParseError struct {
	Var   string
	Type  string
	Value string

	reason *Reason
}

// NewParseError builds a ParseError for a custom parse rule. The reason is
// evaluated lazily, on first inspection.
func NewParseError(name, typename, value string, reason *Reason) *ParseError {
	return &ParseError{Var: name, Type: typename, Value: value, reason: reason}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse environment variable %s (value %q) as %s", e.Var, e.Value, e.Type)
}

// Reason returns the human-readable explanation of the failure. The
// explanation is computed on first call and memoized.
func (e *ParseError) Reason() string {
	return e.reason.String()
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}

// tryDefaultError signals that a set variable should be treated as absent
// so the default policy decides the outcome. It never escapes Value: the
// variable converts it into either a default value or a NotSetError.
type tryDefaultError struct {
	Var string
}

func (e *tryDefaultError) Error() string {
	return fmt.Sprintf("environment variable %s rejected in favor of its default", e.Var)
}
