package scheduler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zireael-ui/zireael/scheduler"
)

func TestEnqueueDuringTurnDefersToNextTurn(t *testing.T) {
	var order []string
	s := scheduler.New()

	s.Enqueue(func(sch *scheduler.Scheduler) {
		order = append(order, "A")
		sch.Enqueue(func(*scheduler.Scheduler) { order = append(order, "C") })
	})
	s.Enqueue(func(*scheduler.Scheduler) { order = append(order, "B") })

	s.RunTurn()
	assert.Equal(t, []string{"A", "B"}, order)
	assert.True(t, s.Pending())

	s.RunTurn()
	assert.Equal(t, []string{"A", "B", "C"}, order)
	assert.False(t, s.Pending())
}

func TestRunUntilDryDrainsCascadingTurns(t *testing.T) {
	var count int
	s := scheduler.New()

	var enqueueChain func(*scheduler.Scheduler)
	enqueueChain = func(sch *scheduler.Scheduler) {
		count++
		if count < 5 {
			sch.Enqueue(enqueueChain)
		}
	}
	s.Enqueue(enqueueChain)
	s.RunUntilDry()
	assert.Equal(t, 5, count)
}
