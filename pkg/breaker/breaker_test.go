package breaker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func fail() error { return errBoom }
func ok() error   { return nil }

func TestBreaker_OpensOnFailureRate(t *testing.T) {
	b := New(4, time.Minute, 0.5, 2)

	require.ErrorIs(t, b.Call(fail), errBoom)
	require.ErrorIs(t, b.Call(fail), errBoom)

	// window is now at the 0.5 failure rate, breaker must be open
	require.ErrorIs(t, b.Call(ok), ErrOpen)
}

func TestBreaker_StaysClosedBelowRate(t *testing.T) {
	b := New(4, time.Minute, 0.5, 2)

	require.ErrorIs(t, b.Call(fail), errBoom)
	require.NoError(t, b.Call(ok))
	require.NoError(t, b.Call(ok))
	require.NoError(t, b.Call(ok))
	require.NoError(t, b.Call(ok))
}

func TestBreaker_RecoversAfterCoolDown(t *testing.T) {
	b := New(2, time.Nanosecond, 0.5, 2)

	require.ErrorIs(t, b.Call(fail), errBoom)
	time.Sleep(time.Millisecond)

	// half-open: probes pass through and eventually close the breaker
	require.NoError(t, b.Call(ok))
	require.NoError(t, b.Call(ok))
	require.NoError(t, b.Call(ok))
}

func TestBreaker_ReopensOnFailedProbe(t *testing.T) {
	b := New(2, time.Hour, 0.5, 2)

	require.ErrorIs(t, b.Call(fail), errBoom)
	require.ErrorIs(t, b.Call(ok), ErrOpen)

	b.(*breaker).openedAt = time.Now().Add(-2 * time.Hour)
	require.ErrorIs(t, b.Call(fail), errBoom)

	// probe failed, straight back to open
	require.ErrorIs(t, b.Call(ok), ErrOpen)
}

func TestBreaker_Reset(t *testing.T) {
	b := New(2, time.Hour, 0.5, 2)

	require.ErrorIs(t, b.Call(fail), errBoom)
	require.ErrorIs(t, b.Call(ok), ErrOpen)

	b.Reset()
	require.NoError(t, b.Call(ok))
}
