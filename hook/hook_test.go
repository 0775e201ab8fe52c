package hook_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/smtpbridge/hook"
)

func TestAction_PriorityOrder(t *testing.T) {
	t.Parallel()

	var got []string
	var a hook.Action[*[]string]

	a.Register(func(s *[]string) { *s = append(*s, "late") }, 100)
	a.Register(func(s *[]string) { *s = append(*s, "floor") }, hook.PriorityLowest)
	a.Register(func(s *[]string) { *s = append(*s, "default") }, hook.PriorityDefault)

	a.Fire(&got)
	assert.Equal(t, []string{"floor", "default", "late"}, got)
	assert.Equal(t, 3, a.Len())
}

func TestAction_StableWithinPriority(t *testing.T) {
	t.Parallel()

	var got []int
	var a hook.Action[*[]int]
	for i := range 5 {
		a.Register(func(s *[]int) { *s = append(*s, i) }, hook.PriorityDefault)
	}

	a.Fire(&got)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)
}

func TestFilter_Chains(t *testing.T) {
	t.Parallel()

	var f hook.Filter[string]
	f.Register(func(s string) string { return s + "b" }, 20)
	f.Register(func(s string) string { return s + "a" }, 10)

	assert.Equal(t, "_ab", f.Apply("_"))
}

func TestFilter_FloorCanBeOverridden(t *testing.T) {
	t.Parallel()

	var f hook.Filter[string]
	// An override claiming the floor runs first...
	f.Register(func(string) string { return "override" }, hook.PriorityLowest)
	// ...so a normal-priority customization still wins.
	f.Register(func(string) string { return "custom" }, hook.PriorityDefault)

	assert.Equal(t, "custom", f.Apply("original"))
}

func TestFilter_ZeroValuePassesThrough(t *testing.T) {
	t.Parallel()

	var f hook.Filter[int]
	assert.Equal(t, 42, f.Apply(42))
	assert.Equal(t, 0, f.Len())
}
