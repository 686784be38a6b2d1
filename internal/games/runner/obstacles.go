package runner

import "github.com/vovakirdan/golden-fly/internal/core"

// Obstacle is a ground block the player must jump over.
type Obstacle struct {
	X, Y float64 // Top-left corner; Y + H is the ground line
	W, H float64
}

// Box returns the collision box for this obstacle.
func (o Obstacle) Box() core.Box {
	return core.NewBox(o.X, o.Y, o.W, o.H)
}

// Right returns the x-coordinate of the right edge.
func (o Obstacle) Right() float64 {
	return o.X + o.W
}

// ObstacleQueue holds live obstacles in spawn order: new ones are pushed at
// the tail and expired ones are popped from the head. Because every obstacle
// moves left by the same amount each tick, spawn order is also x order.
type ObstacleQueue struct {
	items []Obstacle
}

// Len returns the number of live obstacles.
func (q *ObstacleQueue) Len() int {
	return len(q.items)
}

// Push appends an obstacle at the tail.
func (q *ObstacleQueue) Push(o Obstacle) {
	q.items = append(q.items, o)
}

// Head returns the oldest (leftmost) obstacle.
func (q *ObstacleQueue) Head() (Obstacle, bool) {
	if len(q.items) == 0 {
		return Obstacle{}, false
	}
	return q.items[0], true
}

// Tail returns the newest (rightmost) obstacle.
func (q *ObstacleQueue) Tail() (Obstacle, bool) {
	if len(q.items) == 0 {
		return Obstacle{}, false
	}
	return q.items[len(q.items)-1], true
}

// PopHead removes and returns the oldest obstacle.
func (q *ObstacleQueue) PopHead() (Obstacle, bool) {
	if len(q.items) == 0 {
		return Obstacle{}, false
	}
	head := q.items[0]
	copy(q.items, q.items[1:])
	q.items = q.items[:len(q.items)-1]
	return head, true
}

// Advance shifts every obstacle left by dx.
func (q *ObstacleQueue) Advance(dx float64) {
	for i := range q.items {
		q.items[i].X -= dx
	}
}

// Clear removes all obstacles.
func (q *ObstacleQueue) Clear() {
	q.items = q.items[:0]
}

// Items returns the live obstacles in spawn order.
// The slice is owned by the queue and must not be modified.
func (q *ObstacleQueue) Items() []Obstacle {
	return q.items
}
