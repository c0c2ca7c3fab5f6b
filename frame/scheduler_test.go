package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerCoalescesByKey(t *testing.T) {
	s := NewScheduler()
	var calls []string

	s.Request("a", func() { calls = append(calls, "a1") })
	s.Request("b", func() { calls = append(calls, "b1") })
	s.Request("a", func() { calls = append(calls, "a2") })
	assert.Equal(t, 2, s.Pending())

	s.Flush()
	assert.Equal(t, []string{"a2", "b1"}, calls)
	assert.Zero(t, s.Pending())
}

func TestSchedulerCancel(t *testing.T) {
	s := NewScheduler()
	ran := false

	s.Request("a", func() { ran = true })
	s.Cancel("a")
	s.Cancel("missing")
	s.Flush()

	assert.False(t, ran)
}

func TestSchedulerDefersRequestsMadeDuringFlush(t *testing.T) {
	s := NewScheduler()
	count := 0

	s.Request("a", func() {
		count++
		s.Request("a", func() { count++ })
	})

	s.Flush()
	assert.Equal(t, 1, count)
	assert.Equal(t, 1, s.Pending())

	s.Flush()
	assert.Equal(t, 2, count)
}
