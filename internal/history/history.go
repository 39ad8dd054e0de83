// Package history keeps a bounded, in-memory trail of normalized humidity
// readings with min/peak/avg statistics. Nothing is persisted.
package history

import "time"

// Point is a single normalized humidity sample.
type Point struct {
	Percent int
	Time    time.Time
}

// Buffer is a fixed-capacity ring of the most recent points.
type Buffer struct {
	Points []Point
	Max    int // capacity
	Min    int
	Peak   int
}

// NewBuffer creates an empty buffer holding at most capacity points.
func NewBuffer(capacity int) *Buffer {
	if capacity < 1 {
		capacity = 1
	}
	return &Buffer{
		Points: make([]Point, 0, capacity),
		Max:    capacity,
		Min:    100,
		Peak:   0,
	}
}

// Push records a reading, evicting the oldest once full. Min and Peak cover
// every reading ever pushed, not only the ones still buffered.
func (b *Buffer) Push(percent int, t time.Time) {
	p := Point{Percent: percent, Time: t}
	if len(b.Points) >= b.Max {
		copy(b.Points, b.Points[1:])
		b.Points[len(b.Points)-1] = p
	} else {
		b.Points = append(b.Points, p)
	}

	if percent < b.Min {
		b.Min = percent
	}
	if percent > b.Peak {
		b.Peak = percent
	}
}

// Len returns the number of buffered points.
func (b *Buffer) Len() int {
	return len(b.Points)
}

// Last returns the most recent point and false if the buffer is empty.
func (b *Buffer) Last() (Point, bool) {
	if len(b.Points) == 0 {
		return Point{}, false
	}
	return b.Points[len(b.Points)-1], true
}

// Avg returns the mean of the buffered percentages, or 0 if empty.
func (b *Buffer) Avg() float64 {
	if len(b.Points) == 0 {
		return 0
	}
	sum := 0
	for _, p := range b.Points {
		sum += p.Percent
	}
	return float64(sum) / float64(len(b.Points))
}

// LastN returns a copy of the newest n points, oldest first.
func (b *Buffer) LastN(n int) []Point {
	if n <= 0 || len(b.Points) == 0 {
		return nil
	}
	start := len(b.Points) - n
	if start < 0 {
		start = 0
	}
	out := make([]Point, len(b.Points[start:]))
	copy(out, b.Points[start:])
	return out
}
