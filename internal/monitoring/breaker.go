// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

package monitoring

import (
	"context"
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/iims/internal/logging"
	"github.com/tomtom215/iims/internal/metrics"
)

// Poll results recorded on collector_polls_total.
const (
	pollSuccess   = "success"
	pollFailure   = "failure"
	pollRejected  = "rejected"
	pollThrottled = "throttled"
)

// errThrottled is returned when a refresh is skipped by the rate limiter.
var errThrottled = errors.New("monitoring: collector refresh throttled")

// guard protects a collector with a rate limiter and a circuit breaker.
// A throttled or rejected poll leaves the last stored samples in place.
type guard[T any] struct {
	name    string
	limiter *rate.Limiter
	cb      *gobreaker.CircuitBreaker[T]
}

// newGuard creates a guard that allows one poll per interval.
// Circuit breaker configuration:
// - Max 1 request in half-open state
// - Opens after 5 consecutive failures
// - Waits 30 seconds before trying half-open
func newGuard[T any](name string, interval time.Duration) *guard[T] {
	if interval <= 0 {
		interval = 5 * time.Second
	}

	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)

	cb := gobreaker.NewCircuitBreaker[T](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			trip := counts.ConsecutiveFailures >= 5
			if trip {
				logging.Warn().Str("collector", name).Uint32("failures", counts.ConsecutiveFailures).Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return trip
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("collector", name).Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})

	return &guard[T]{
		name:    name,
		limiter: rate.NewLimiter(rate.Every(interval), 1),
		cb:      cb,
	}
}

// run executes fn if the limiter and breaker allow it.
func (g *guard[T]) run(ctx context.Context, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	if !g.limiter.Allow() {
		metrics.RecordCollectorPoll(g.name, pollThrottled, 0)
		return zero, errThrottled
	}

	start := time.Now()
	result, err := g.cb.Execute(func() (T, error) {
		return fn(ctx)
	})
	elapsed := time.Since(start)

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(g.name, pollRejected).Inc()
			metrics.RecordCollectorPoll(g.name, pollRejected, 0)
			return zero, err
		}
		metrics.CircuitBreakerRequests.WithLabelValues(g.name, pollFailure).Inc()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(g.name).Set(float64(g.cb.Counts().ConsecutiveFailures))
		metrics.RecordCollectorPoll(g.name, pollFailure, elapsed)
		return zero, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(g.name, pollSuccess).Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(g.name).Set(0)
	metrics.RecordCollectorPoll(g.name, pollSuccess, elapsed)
	return result, nil
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
