// Package envar provides typed, cached access to process environment
// variables.
//
// A variable is declared once with a name, a parse rule for its value type
// and a default policy, and is then read through a single Value method that
// returns a parsed, strongly typed value instead of a raw string:
//
//	var maxRetries = envar.OnDemand("MAX_RETRIES", envar.Int, envar.WithDefault(3))
//
//	n, err := maxRetries.Value()
//
// Two caching policies are available. OnStartup pins the variable to the
// first successfully resolved value for the lifetime of the process;
// OnDemand always reflects the current environment and caches the parsed
// value as long as the raw string is unchanged. Both are safe for
// concurrent use.
//
// Parse rules are plain functions, so supporting a new value type means
// writing a new ParseFunc rather than touching the built-in ones. Optional
// and List compose rules for optional and delimited-list values.
package envar
