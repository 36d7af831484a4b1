package envar

import (
	"strconv"
	"strings"
)

// ParseFunc converts the raw string value of the named environment variable
// into a T. The name is carried for error attribution only; rules must not
// read the environment themselves. Supporting a new value type means
// supplying a new ParseFunc, not modifying an existing one.
type ParseFunc[T any] func(name, raw string) (T, error)

type signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type float interface {
	~float32 | ~float64
}

// Built-in parse rules. Numeric rules delegate to strconv at the exact bit
// width of the target type, so syntax and range failures surface as
// ParseError with strconv's message captured lazily.
var (
	Int   = signedRule[int]("int", strconv.IntSize)
	Int8  = signedRule[int8]("int8", 8)
	Int16 = signedRule[int16]("int16", 16)
	Int32 = signedRule[int32]("int32", 32)
	Int64 = signedRule[int64]("int64", 64)

	Uint   = unsignedRule[uint]("uint", strconv.IntSize)
	Uint8  = unsignedRule[uint8]("uint8", 8)
	Uint16 = unsignedRule[uint16]("uint16", 16)
	Uint32 = unsignedRule[uint32]("uint32", 32)
	Uint64 = unsignedRule[uint64]("uint64", 64)

	Float32 = floatRule[float32]("float32", 32)
	Float64 = floatRule[float64]("float64", 64)

	Bool   ParseFunc[bool]   = parseBool
	String ParseFunc[string] = parseString
)

func signedRule[T signed](typename string, bits int) ParseFunc[T] {
	return func(name, raw string) (T, error) {
		v, err := strconv.ParseInt(raw, 10, bits)
		if err != nil {
			return 0, NewParseError(name, typename, raw, lazyErrText(err))
		}
		return T(v), nil
	}
}

func unsignedRule[T unsigned](typename string, bits int) ParseFunc[T] {
	return func(name, raw string) (T, error) {
		v, err := strconv.ParseUint(raw, 10, bits)
		if err != nil {
			return 0, NewParseError(name, typename, raw, lazyErrText(err))
		}
		return T(v), nil
	}
}

func floatRule[T float](typename string, bits int) ParseFunc[T] {
	return func(name, raw string) (T, error) {
		v, err := strconv.ParseFloat(raw, bits)
		if err != nil {
			return 0, NewParseError(name, typename, raw, lazyErrText(err))
		}
		return T(v), nil
	}
}

func lazyErrText(err error) *Reason {
	return NewReason(func() string { return err.Error() })
}

// Recognized boolean literals, matched case-insensitively.
var (
	trueLiterals  = []string{"true", "1", "yes", "y", "on", "enabled"}
	falseLiterals = []string{"false", "0", "no", "n", "off", "disabled"}
)

// parseBool accepts the literal sets above. Empty or whitespace-only input
// is false, not an error.
func parseBool(name, raw string) (bool, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return false, nil
	}

	for _, lit := range trueLiterals {
		if strings.EqualFold(lit, value) {
			return true, nil
		}
	}
	for _, lit := range falseLiterals {
		if strings.EqualFold(lit, value) {
			return false, nil
		}
	}

	return false, NewParseError(name, "bool", value, NewReason(func() string {
		return "not a recognized boolean literal"
	}))
}

// parseString is the identity rule: no trimming, no validation.
func parseString(_, raw string) (string, error) {
	return raw, nil
}

// Optional derives a rule for an optional T, represented as *T with nil
// meaning absent. Empty or whitespace-only input is treated as if the
// variable were unset, so the variable's default policy decides the
// outcome; any other input is parsed by elem on its trimmed form.
func Optional[T any](elem ParseFunc[T]) ParseFunc[*T] {
	return func(name, raw string) (*T, error) {
		value := strings.TrimSpace(raw)
		if value == "" {
			return nil, &tryDefaultError{Var: name}
		}
		v, err := elem(name, value)
		if err != nil {
			return nil, err
		}
		return &v, nil
	}
}
