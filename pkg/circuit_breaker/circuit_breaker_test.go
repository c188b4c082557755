package circuit_breaker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/bookstore-service/pkg/circuit_breaker"
)

func Test_circuitBreaker_Call(t *testing.T) {
	t.Parallel()
	errService := errors.New("service error")
	successfulService := func() error { return nil }
	failingService := func() error { return errService }

	tests := []struct {
		name string
		run  func(t *testing.T, cb circuit_breaker.CircuitBreaker)
	}{
		{
			name: "stays closed on success",
			run: func(t *testing.T, cb circuit_breaker.CircuitBreaker) {
				for i := 0; i < 50; i++ {
					require.NoError(t, cb.Call(successfulService))
				}
				require.Equal(t, circuit_breaker.Closed, cb.State())
			},
		},
		{
			name: "opens after failure ratio",
			run: func(t *testing.T, cb circuit_breaker.CircuitBreaker) {
				for i := 0; i < 3; i++ {
					require.ErrorIs(t, cb.Call(failingService), errService)
				}
				require.Equal(t, circuit_breaker.Open, cb.State())
				require.ErrorIs(t, cb.Call(successfulService), circuit_breaker.ErrOpenCB)
			},
		},
		{
			name: "half-open recovers",
			run: func(t *testing.T, cb circuit_breaker.CircuitBreaker) {
				for i := 0; i < 3; i++ {
					_ = cb.Call(failingService)
				}
				require.Equal(t, circuit_breaker.Open, cb.State())
				time.Sleep(60 * time.Millisecond)

				require.NoError(t, cb.Call(successfulService))
				require.Equal(t, circuit_breaker.HalfOpen, cb.State())
				require.NoError(t, cb.Call(successfulService))
				require.Equal(t, circuit_breaker.Closed, cb.State())
			},
		},
		{
			name: "half-open failure reopens",
			run: func(t *testing.T, cb circuit_breaker.CircuitBreaker) {
				for i := 0; i < 3; i++ {
					_ = cb.Call(failingService)
				}
				time.Sleep(60 * time.Millisecond)
				require.ErrorIs(t, cb.Call(failingService), errService)
				require.Equal(t, circuit_breaker.Open, cb.State())
			},
		},
		{
			name: "reset",
			run: func(t *testing.T, cb circuit_breaker.CircuitBreaker) {
				for i := 0; i < 3; i++ {
					_ = cb.Call(failingService)
				}
				cb.Reset()
				require.Equal(t, circuit_breaker.Closed, cb.State())
				require.NoError(t, cb.Call(successfulService))
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cb := circuit_breaker.New(10, 50*time.Millisecond, 0.3, 2)
			tt.run(t, cb)
		})
	}
}
