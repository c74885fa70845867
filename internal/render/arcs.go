package render

import "math"

// Orientation is the side of the number line a half circle bulges towards.
type Orientation int

const (
	Down Orientation = iota // through increasing y
	Up                      // through decreasing y
)

func (o Orientation) String() string {
	if o == Up {
		return "up"
	}
	return "down"
}

// CounterClockwise reports the canvas arc direction that sweeps from angle 0
// to π on this side of the line.
func (o Orientation) CounterClockwise() bool { return o == Up }

// OrientationFor returns the orientation of step i. Odd steps go down, even
// steps go up; the direction of the jump plays no part.
func OrientationFor(step int) Orientation {
	if step%2 == 0 {
		return Up
	}
	return Down
}

// Arc is the half circle joining table[Step-1] and table[Step].
type Arc struct {
	Step        int
	CenterX     float64
	Radius      float64
	Orientation Orientation
}

// ClampLimit bounds limit to the valid step range of a table of length n.
func ClampLimit(limit, n int) int {
	if limit < 0 || n == 0 {
		return 0
	}
	if limit > n-1 {
		return n - 1
	}
	return limit
}

// Arcs returns the geometry of steps 1..limit over table. limit is clamped
// to [0, len(table)-1].
func Arcs(table []float64, limit int) []Arc {
	limit = ClampLimit(limit, len(table))
	out := make([]Arc, 0, limit)
	for i := 1; i <= limit; i++ {
		current, next := table[i-1], table[i]
		out = append(out, Arc{
			Step:        i,
			CenterX:     (current + next) / 2,
			Radius:      math.Abs(next-current) / 2,
			Orientation: OrientationFor(i),
		})
	}
	return out
}

// DrawSequence clears the surface, redraws the number line and then draws
// steps 1..limit of table as one connected path, stroked once. table is in
// drawing units (see sequence.Scaled).
func DrawSequence(ctx *Context, table []float64, limit int) {
	s := ctx.Surface
	mid := ctx.Mid()

	s.ClearRect(0, 0, ctx.Width, ctx.Height)
	DrawAxis(ctx)

	s.BeginPath()
	s.MoveTo(0, mid)
	for _, a := range Arcs(table, limit) {
		s.Arc(a.CenterX, mid, a.Radius, 0, math.Pi, a.Orientation.CounterClockwise())
	}
	s.Stroke()
}
