package hook

import (
	"math"
	"slices"
)

// Priorities for Register calls. Lower priorities run earlier, so a
// callback registered at PriorityLowest claims the floor: every
// normal-priority registration runs after it and can override its effect.
const (
	PriorityDefault = 10
	PriorityLowest  = math.MinInt
)

type entry[F any] struct {
	priority int
	fn       F
}

func byPriority[F any](a, b entry[F]) int {
	switch {
	case a.priority < b.priority:
		return -1
	case a.priority > b.priority:
		return 1
	}
	return 0
}

// Action is an extension point whose callbacks receive a value and may
// mutate it in place. Callbacks run in ascending priority order; equal
// priorities keep registration order. The zero value is ready to use.
//
// Registration is expected at startup only; Action performs no locking.
type Action[T any] struct {
	entries []entry[func(T)]
}

// Register adds a callback at the given priority.
func (a *Action[T]) Register(fn func(T), priority int) {
	a.entries = append(a.entries, entry[func(T)]{priority: priority, fn: fn})
	slices.SortStableFunc(a.entries, byPriority)
}

// Fire invokes all registered callbacks in order.
func (a *Action[T]) Fire(v T) {
	for _, e := range a.entries {
		e.fn(v)
	}
}

// Len returns the number of registered callbacks.
func (a *Action[T]) Len() int { return len(a.entries) }

// Filter is an extension point whose callbacks transform a value, each
// receiving the previous callback's result. Ordering matches Action.
// The zero value is ready to use and Apply on it returns the input
// unchanged.
type Filter[T any] struct {
	entries []entry[func(T) T]
}

// Register adds a callback at the given priority.
func (f *Filter[T]) Register(fn func(T) T, priority int) {
	f.entries = append(f.entries, entry[func(T) T]{priority: priority, fn: fn})
	slices.SortStableFunc(f.entries, byPriority)
}

// Apply runs the value through all registered callbacks in order.
func (f *Filter[T]) Apply(v T) T {
	for _, e := range f.entries {
		v = e.fn(v)
	}
	return v
}

// Len returns the number of registered callbacks.
func (f *Filter[T]) Len() int { return len(f.entries) }
