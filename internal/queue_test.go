package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriorityQueueDrainsAscendingRank(t *testing.T) {
	q := newPriorityQueue()

	n1 := &Node{Rank: 3}
	n2 := &Node{Rank: 1}
	n3 := &Node{Rank: 2}
	n4 := &Node{Rank: 1}

	q.Insert(n1)
	q.Insert(n2)
	q.Insert(n3)
	q.Insert(n4)

	var order []int
	q.Drain(func(n *Node) { order = append(order, n.Rank) })

	assert.Equal(t, []int{1, 1, 2, 3}, order)
}

func TestPriorityQueueFIFOWithinBucket(t *testing.T) {
	q := newPriorityQueue()

	first := &Node{Rank: 5, Name: "first"}
	second := &Node{Rank: 5, Name: "second"}
	third := &Node{Rank: 5, Name: "third"}

	q.Insert(first)
	q.Insert(second)
	q.Insert(third)

	var order []string
	q.Drain(func(n *Node) { order = append(order, n.Name) })

	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestPriorityQueueDrainPicksUpNodesEnqueuedDuringDrain(t *testing.T) {
	q := newPriorityQueue()

	child := &Node{Rank: 5, Name: "child"}
	parent := &Node{Rank: 1, Name: "parent"}
	q.Insert(parent)

	var order []string
	q.Drain(func(n *Node) {
		order = append(order, n.Name)
		if n.Name == "parent" {
			q.Insert(child)
		}
	})

	assert.Equal(t, []string{"parent", "child"}, order)
}

func TestPriorityQueueEmpty(t *testing.T) {
	q := newPriorityQueue()
	assert.True(t, q.Empty())

	q.Insert(&Node{Rank: 2})
	assert.False(t, q.Empty())
}
