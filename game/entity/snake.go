package entity

import (
	"rainbow-snake/game/types"

	"github.com/gammazero/deque"
)

// Snake is the ordered chain of occupied cells, head first.
type Snake struct {
	body deque.Deque[types.Point]
}

func NewSnake(startPos types.Point) *Snake {
	s := &Snake{}
	s.body.PushFront(startPos)
	return s
}

// Reset drops the whole body and starts again from a single cell
func (s *Snake) Reset(startPos types.Point) {
	s.body.Clear()
	s.body.PushFront(startPos)
}

// PushHead prepends a new head
func (s *Snake) PushHead(p types.Point) {
	s.body.PushFront(p)
}

// RemoveTail drops the last cell and returns it
func (s *Snake) RemoveTail() types.Point {
	return s.body.PopBack()
}

// AppendTail puts a cell back behind the tail
func (s *Snake) AppendTail(p types.Point) {
	s.body.PushBack(p)
}

func (s *Snake) GetHead() types.Point {
	return s.body.Front()
}

func (s *Snake) GetTail() types.Point {
	return s.body.Back()
}

func (s *Snake) Len() int {
	return s.body.Len()
}

// Contains reports whether p is part of the body
func (s *Snake) Contains(p types.Point) bool {
	return s.body.Index(func(c types.Point) bool { return c == p }) >= 0
}

// Body returns a copy of the cells, head first
func (s *Snake) Body() []types.Point {
	cells := make([]types.Point, s.body.Len())
	for i := range cells {
		cells[i] = s.body.At(i)
	}
	return cells
}
