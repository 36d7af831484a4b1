package envar

import "strings"

// ListConfig describes how a delimited list value is split and filtered.
type ListConfig struct {
	// Sep is the literal separator substring. It must be non-empty.
	Sep string
	// FilterEmpty drops segments that are the empty string, before
	// trimming.
	FilterEmpty bool
	// FilterWhitespace drops segments that are empty after trimming.
	FilterWhitespace bool
}

// List derives a rule that parses a delimited string into an ordered slice
// of T. Each surviving segment is trimmed and parsed by elem; the first
// element failure aborts the whole parse with that element's error, never
// a partial result. An input with no surviving segments yields an empty
// list, not an error.
//
// The returned slice is shared storage and must not be mutated by the
// caller.
func List[T any](elem ParseFunc[T], cfg ListConfig) ParseFunc[[]T] {
	return func(name, raw string) ([]T, error) {
		var list []T
		for _, segment := range strings.Split(raw, cfg.Sep) {
			if cfg.FilterEmpty && segment == "" {
				continue
			}
			trimmed := strings.TrimSpace(segment)
			if cfg.FilterWhitespace && trimmed == "" {
				continue
			}
			v, err := elem(name, trimmed)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		return list, nil
	}
}
