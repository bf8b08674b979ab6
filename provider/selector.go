package provider

import (
	"context"
	"fmt"
	"sort"
	"sync/atomic"
)

// Selector decides which backend adapter serves a call when several are
// initialized. Implementations consult IsAvailable so an unreachable backend
// never gets picked over a reachable one.
type Selector[T Provider] interface {
	Select(ctx context.Context, providers map[string]T) (T, error)
}

// PrioritySelector walks a fixed preference order (e.g. primary adapter
// first, fallback second) and picks the first backend that is available.
type PrioritySelector[T Provider] struct {
	// Priority is the ordered list of adapter names to try.
	Priority []string
}

// Select returns the first available backend in priority order.
func (s *PrioritySelector[T]) Select(ctx context.Context, providers map[string]T) (T, error) {
	for _, name := range s.Priority {
		if p, ok := providers[name]; ok && p.IsAvailable(ctx) {
			return p, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("no available provider found in priority list")
}

// RoundRobinSelector spreads inference load evenly across the initialized
// backends, skipping any that report unavailable.
type RoundRobinSelector[T Provider] struct {
	counter atomic.Uint64
}

// Select picks the next backend in rotation.
func (s *RoundRobinSelector[T]) Select(ctx context.Context, providers map[string]T) (T, error) {
	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	sort.Strings(names)

	if len(names) == 0 {
		var zero T
		return zero, fmt.Errorf("no providers available")
	}

	n := len(names)
	start := int(s.counter.Add(1) - 1)
	for i := 0; i < n; i++ {
		idx := (start + i) % n
		p := providers[names[idx]]
		if p.IsAvailable(ctx) {
			return p, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("no available provider found")
}

// HealthCheckSelector picks the first backend (in name order) that reports
// available. It is the default strategy of the inference manager.
type HealthCheckSelector[T Provider] struct{}

// Select returns the first backend that reports as available.
func (s *HealthCheckSelector[T]) Select(ctx context.Context, providers map[string]T) (T, error) {
	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if p := providers[name]; p.IsAvailable(ctx) {
			return p, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("no available provider found")
}
