// Package hook provides priority-ordered extension points: Action for
// callbacks that mutate a value in place, Filter for callbacks that
// transform a value through a chain. Hosts iterate registrations in
// explicit priority order; there is no global event bus.
package hook
