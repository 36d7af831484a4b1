package envar_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ab0utbla-k/envar"
)

func TestReason_ComputesOnce(t *testing.T) {
	var runs int
	r := envar.NewReason(func() string {
		runs++
		return "boom"
	})

	assert.Equal(t, "boom", r.String())
	assert.Equal(t, "boom", r.String())
	assert.Equal(t, "boom", r.String())
	assert.Equal(t, 1, runs)
}

func TestReason_NotComputedUntilAsked(t *testing.T) {
	var runs int
	envar.NewReason(func() string {
		runs++
		return "never"
	})

	assert.Zero(t, runs)
}

func TestReason_ConcurrentFirstAccess(t *testing.T) {
	var runs atomic.Int32
	r := envar.NewReason(func() string {
		runs.Add(1)
		return "shared"
	})

	const readers = 16
	results := make([]string, readers)

	var wg sync.WaitGroup
	for i := 0; i < readers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = r.String()
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), runs.Load())
	for i := 0; i < readers; i++ {
		assert.Equal(t, "shared", results[i])
	}
}

func TestParseError_ReasonIsDeferred(t *testing.T) {
	_, err := envar.Int64("BIG", "99999999999999999999999999")
	require.Error(t, err)

	var pe *envar.ParseError
	require.ErrorAs(t, err, &pe)

	// Formatting the error itself never materializes the reason text.
	assert.NotContains(t, pe.Error(), "out of range")
	assert.Contains(t, pe.Reason(), "out of range")
}
