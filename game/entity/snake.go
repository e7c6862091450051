package entity

import (
	"snek/game/types"
)

// Snake holds the body cells head first. Body[0] is the head.
type Snake struct {
	body []types.Cell
}

func NewSnake(start types.Cell) *Snake {
	return &Snake{
		body: []types.Cell{start},
	}
}

func (s *Snake) GetHead() types.Cell {
	return s.body[0]
}

func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a copy of the cells, head first
func (s *Snake) Body() []types.Cell {
	body := make([]types.Cell, len(s.body))
	copy(body, s.body)
	return body
}

// Contains scans the body from head to tail
func (s *Snake) Contains(cell types.Cell) bool {
	for _, part := range s.body {
		if part == cell {
			return true
		}
	}
	return false
}

// Grow puts a new head on cell, the old head becomes the second segment
func (s *Snake) Grow(cell types.Cell) {
	s.body = append(s.body, types.Cell{})
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = cell
}

// Shift advances the head by dir. Every other segment takes the position
// its predecessor held before the move.
func (s *Snake) Shift(dir types.Direction) {
	next := s.body[0].Add(dir)
	for i := range s.body {
		s.body[i], next = next, s.body[i]
	}
}

// Release drops the body. The snake must not be used afterwards.
func (s *Snake) Release() {
	s.body = nil
}
