package envar

import (
	"errors"
	"os"
	"sync"
	"sync/atomic"
)

// Default is a variable's default policy: it reports whether a fallback
// value exists and, if so, what it is. It must be pure — it may be invoked
// any number of times, including never.
type Default[T any] func() (T, bool)

// WithDefault returns a policy that always yields v.
func WithDefault[T any](v T) Default[T] {
	return func() (T, bool) { return v, true }
}

// NoDefault returns a policy with no fallback value.
func NoDefault[T any]() Default[T] {
	return func() (T, bool) {
		var zero T
		return zero, false
	}
}

// Var binds an environment variable name, a parse rule and a default
// policy to a typed, cached read operation. A Var is safe for concurrent
// use; declare it once, typically at package scope, and read it through
// Value.
type Var[T any] struct {
	name  string
	parse ParseFunc[T]
	def   Default[T]

	// pinned selects the OnStartup behavior.
	pinned bool

	// committed is the OnStartup single-assignment slot. Racing first
	// readers may parse redundantly, but exactly one candidate is ever
	// committed; the winner is the first to commit, not necessarily the
	// first to start parsing.
	committed atomic.Pointer[T]

	// mu guards entry for the full duration of an OnDemand read,
	// including the environment lookup and any reparse.
	mu    sync.Mutex
	entry cacheEntry[T]
}

// cacheEntry pairs the last observed raw string (nil when the variable was
// absent) with the value parsed from it.
type cacheEntry[T any] struct {
	raw *string
	val *T
}

// OnStartup declares a variable that is permanently pinned to the first
// successfully resolved value. Once a read commits, later changes to the
// environment are never observed. A failed read does not commit, so a
// variable that is unset or malformed at first may still resolve on a
// later read.
func OnStartup[T any](name string, parse ParseFunc[T], def Default[T]) *Var[T] {
	return &Var[T]{name: name, parse: parse, def: def, pinned: true}
}

// OnDemand declares a variable that always reflects the current
// environment. The parsed value is cached against the raw string, so
// repeated reads of an unchanged value cost a single environment lookup.
func OnDemand[T any](name string, parse ParseFunc[T], def Default[T]) *Var[T] {
	return &Var[T]{name: name, parse: parse, def: def}
}

// Name returns the bound environment variable name.
func (v *Var[T]) Name() string {
	return v.name
}

// Value resolves the variable according to its caching policy. It returns
// a *ParseError when the raw value is rejected by the parse rule and a
// *NotSetError when the variable is absent (or rejected as if absent) with
// no default; both match their sentinels under errors.Is.
func (v *Var[T]) Value() (T, error) {
	if v.pinned {
		return v.valuePinned()
	}
	return v.valueOnDemand()
}

func (v *Var[T]) valuePinned() (T, error) {
	var zero T

	if p := v.committed.Load(); p != nil {
		return *p, nil
	}

	raw, ok := os.LookupEnv(v.name)
	if !ok {
		// A concurrent reader may have committed between the slot check
		// and the lookup.
		if p := v.committed.Load(); p != nil {
			return *p, nil
		}
		if d, has := v.def(); has {
			return v.commit(d), nil
		}
		return zero, &NotSetError{Var: v.name}
	}

	val, err := v.parse(v.name, raw)
	if err == nil {
		return v.commit(val), nil
	}

	var td *tryDefaultError
	if errors.As(err, &td) {
		if d, has := v.def(); has {
			return v.commit(d), nil
		}
		return zero, &NotSetError{Var: v.name}
	}

	// Not committed: a later read may retry against a corrected
	// environment.
	return zero, err
}

// commit installs val if the slot is still empty and returns whichever
// value ended up committed.
func (v *Var[T]) commit(val T) T {
	if v.committed.CompareAndSwap(nil, &val) {
		return val
	}
	return *v.committed.Load()
}

func (v *Var[T]) valueOnDemand() (T, error) {
	var zero T

	v.mu.Lock()
	defer v.mu.Unlock()

	raw, present := os.LookupEnv(v.name)
	if v.entry.val != nil && v.entry.matches(raw, present) {
		return *v.entry.val, nil
	}

	if !present {
		d, has := v.def()
		if !has {
			return zero, &NotSetError{Var: v.name}
		}
		v.entry = cacheEntry[T]{val: &d}
		return d, nil
	}

	val, err := v.parse(v.name, raw)
	if err != nil {
		var td *tryDefaultError
		if errors.As(err, &td) {
			// The default satisfies this read, but the entry keeps its
			// previous state: nothing cacheable was produced for this
			// raw string.
			if d, has := v.def(); has {
				return d, nil
			}
			return zero, &NotSetError{Var: v.name}
		}
		return zero, err
	}

	v.entry = cacheEntry[T]{raw: &raw, val: &val}
	return val, nil
}

// matches reports whether the entry's stored raw observation equals the
// current one, with absence only matching absence.
func (e *cacheEntry[T]) matches(raw string, present bool) bool {
	if e.raw == nil {
		return !present
	}
	return present && *e.raw == raw
}
