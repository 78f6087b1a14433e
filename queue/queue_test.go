package queue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zireael-ui/zireael/queue"
)

func TestDrainAppliesInFIFOOrder(t *testing.T) {
	q := queue.New[int]()
	q.Push(queue.Value(1))
	q.Push(queue.Func(func(prev int) int { return prev + 10 }))
	q.Push(queue.Func(func(prev int) int { return prev * 2 }))

	got := q.Drain(0)
	assert.Equal(t, 22, got) // (1 + 10) * 2
	assert.Equal(t, 0, q.Len())
}

func TestDrainOnEmptyQueueReturnsStateUnchanged(t *testing.T) {
	q := queue.New[string]()
	got := q.Drain("unchanged")
	assert.Equal(t, "unchanged", got)
}
