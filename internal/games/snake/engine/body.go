package engine

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// segment is one slot of the body arena.
// next points one step toward the head; the head links back to the tail,
// so the live slots always form a single cycle.
type segment struct {
	pos  core.Vector2
	next int
}

// BodyQueue is a fixed-capacity FIFO of body segments.
// The newest segment is the head, the oldest is the tail. All slots are
// allocated up front; Grow and Advance only rewrite indices.
type BodyQueue struct {
	slots []segment
	n     int // slots in use
	head  int
	tail  int
}

// NewBodyQueue reserves capacity slots and places a single segment at start.
func NewBodyQueue(capacity int, start core.Vector2) *BodyQueue {
	if capacity < 1 {
		panic(fmt.Sprintf("engine: body capacity must be >= 1, got %d", capacity))
	}
	q := &BodyQueue{
		slots: make([]segment, capacity),
		n:     1,
	}
	q.slots[0] = segment{pos: start, next: 0}
	return q
}

// Grow claims the next unused slot as the new head at p.
// Growing a full queue is a logic error and panics.
func (q *BodyQueue) Grow(p core.Vector2) {
	if q.n == len(q.slots) {
		panic(fmt.Sprintf("engine: grow past capacity %d", len(q.slots)))
	}
	idx := q.n
	q.n++

	q.slots[idx] = segment{pos: p, next: q.tail}
	q.slots[q.head].next = idx
	q.head = idx
}

// Advance moves the snake one cell: the tail slot is recycled as the new
// head at p. It returns the vacated tail position.
func (q *BodyQueue) Advance(p core.Vector2) core.Vector2 {
	old := q.tail
	vacated := q.slots[old].pos

	q.slots[old].pos = p
	q.head = old
	q.tail = q.slots[old].next

	return vacated
}

// Head returns the newest segment position.
func (q *BodyQueue) Head() core.Vector2 {
	return q.slots[q.head].pos
}

// Tail returns the oldest segment position, the one Advance recycles next.
func (q *BodyQueue) Tail() core.Vector2 {
	return q.slots[q.tail].pos
}

// Len returns the number of live segments.
func (q *BodyQueue) Len() int {
	return q.n
}

// Cap returns the maximum number of segments.
func (q *BodyQueue) Cap() int {
	return len(q.slots)
}
