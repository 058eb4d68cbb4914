package entity

import (
	"rainbow-snake/game/types"

	"github.com/gammazero/deque"
)

// GrowthQueue holds the tail cells of food-eating moves whose growth has not
// been applied yet. Each entry makes one later move keep its tail.
type GrowthQueue struct {
	pending deque.Deque[types.Point]
}

func (q *GrowthQueue) Enqueue(p types.Point) {
	q.pending.PushBack(p)
}

// Dequeue removes and returns the oldest pending cell. ok is false when
// nothing is pending.
func (q *GrowthQueue) Dequeue() (p types.Point, ok bool) {
	if q.pending.Len() == 0 {
		return types.Point{}, false
	}
	return q.pending.PopFront(), true
}

func (q *GrowthQueue) Len() int {
	return q.pending.Len()
}

func (q *GrowthQueue) Clear() {
	q.pending.Clear()
}
