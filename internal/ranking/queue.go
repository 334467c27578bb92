package ranking

import (
	"github.com/emirpasic/gods/queues/priorityqueue"
	"github.com/emirpasic/gods/utils"
)

// queueItem is a tentative cost for the path ending at arena step.
// seq breaks cost ties in push order so traversal is deterministic.
type queueItem struct {
	cost float64
	seq  int
	step int
}

// minQueue is a min-priority queue of queueItems with lazy deletion: stale
// entries stay queued and are skipped when their node is already visited.
type minQueue struct {
	q   *priorityqueue.Queue
	seq int
}

func byCostThenSeq(a, b interface{}) int {
	x := a.(queueItem)
	y := b.(queueItem)
	switch {
	case x.cost < y.cost:
		return -1
	case x.cost > y.cost:
		return 1
	default:
		return utils.IntComparator(x.seq, y.seq)
	}
}

func newMinQueue() *minQueue {
	return &minQueue{q: priorityqueue.NewWith(byCostThenSeq)}
}

func (m *minQueue) push(cost float64, step int) {
	m.q.Enqueue(queueItem{cost: cost, seq: m.seq, step: step})
	m.seq++
}

func (m *minQueue) pop() (queueItem, bool) {
	v, ok := m.q.Dequeue()
	if !ok {
		return queueItem{}, false
	}
	return v.(queueItem), true
}

func (m *minQueue) empty() bool {
	return m.q.Empty()
}
