package render

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/recaman-visualization/internal/sequence"
)

var prefix = []float64{0, 1, 3, 6, 2}

func newTestContext(width, height, scale float64) (*Context, *Recorder) {
	rec := &Recorder{}
	return NewContext(rec, width, height, scale), rec
}

func TestArcsScenario(t *testing.T) {
	got := Arcs(prefix, 4)

	want := []Arc{
		{Step: 1, CenterX: 0.5, Radius: 0.5, Orientation: Down},
		{Step: 2, CenterX: 2, Radius: 2, Orientation: Up},
		{Step: 3, CenterX: 4.5, Radius: 1.5, Orientation: Down},
		{Step: 4, CenterX: 4, Radius: 4, Orientation: Up},
	}
	assert.Equal(t, want, got)
}

func TestArcsFormulas(t *testing.T) {
	table := sequence.Scaled(1)
	arcs := Arcs(table, sequence.MaxLimit())
	require.Len(t, arcs, sequence.MaxLimit())

	for _, a := range arcs {
		prev, next := table[a.Step-1], table[a.Step]
		assert.InDelta(t, math.Abs(next-prev)/2, a.Radius, 1e-9, "step %d radius", a.Step)
		assert.InDelta(t, (next+prev)/2, a.CenterX, 1e-9, "step %d center", a.Step)
	}
}

func TestOrientationIgnoresJumpDirection(t *testing.T) {
	// 0->1 rises and 6->2 falls; only the step parity decides the side.
	arcs := Arcs(prefix, 4)
	assert.Equal(t, Down, arcs[0].Orientation)
	assert.Equal(t, Up, arcs[3].Orientation)

	falling := Arcs([]float64{10, 4, 0, 8}, 3)
	assert.Equal(t, []Orientation{Down, Up, Down}, []Orientation{
		falling[0].Orientation, falling[1].Orientation, falling[2].Orientation,
	})

	for step := 1; step < 20; step++ {
		want := Down
		if step%2 == 0 {
			want = Up
		}
		assert.Equal(t, want, OrientationFor(step), "step %d", step)
	}
	assert.False(t, Down.CounterClockwise())
	assert.True(t, Up.CounterClockwise())
}

func TestArcsClampsLimit(t *testing.T) {
	assert.Empty(t, Arcs(prefix, -1))
	assert.Len(t, Arcs(prefix, 99), len(prefix)-1)
	assert.Empty(t, Arcs(nil, 3))
}

func TestDrawAxis(t *testing.T) {
	ctx, rec := newTestContext(100, 40, 10)
	DrawAxis(ctx)

	ops := rec.Ops()
	require.GreaterOrEqual(t, len(ops), 4)
	assert.Equal(t, []Op{
		{Kind: OpBeginPath},
		{Kind: OpMoveTo, X: 0, Y: 20},
		{Kind: OpLineTo, X: 100, Y: 20},
		{Kind: OpStroke},
	}, ops[:4])

	// One stroke for the line plus one per tick at x = 0, 10, ..., 100.
	assert.Len(t, rec.Filter(OpStroke), 1+11)

	labels := rec.Filter(OpFillText)
	require.Len(t, labels, 3)
	for i, want := range []string{"0", "5", "10"} {
		assert.Equal(t, want, labels[i].Text)
		assert.InDelta(t, float64(i*50), labels[i].X, 1e-9)
		assert.InDelta(t, 35, labels[i].Y, 1e-9)
	}
}

func TestDrawAxisLabelsOnlyOnMultiplesOfFive(t *testing.T) {
	ctx, rec := newTestContext(1200, 640, 10)
	DrawAxis(ctx)

	for _, l := range rec.Filter(OpFillText) {
		k := int(math.Round(l.X / ctx.Scale))
		assert.Zero(t, k%5, "label at x=%g", l.X)
	}
	assert.Len(t, rec.Filter(OpFillText), 120/5+1)
}

func TestDrawAxisTickSpan(t *testing.T) {
	ctx, rec := newTestContext(95, 40, 10)
	DrawAxis(ctx)

	lineTos := rec.Filter(OpLineTo)
	// main line + 10 ticks (x = 0..90)
	require.Len(t, lineTos, 11)
	for _, op := range lineTos[1:] {
		assert.InDelta(t, 25, op.Y, 1e-9)
	}
	assert.Len(t, rec.Filter(OpFillText), 2)
}

func TestDrawSequence(t *testing.T) {
	ctx, rec := newTestContext(100, 40, 1)
	DrawSequence(ctx, prefix, 4)

	ops := rec.Ops()
	require.NotEmpty(t, ops)
	assert.Equal(t, Op{Kind: OpClearRect, X: 0, Y: 0, W: 100, H: 40}, ops[0])
	assert.Len(t, rec.Filter(OpClearRect), 1)

	arcs := rec.Filter(OpArc)
	require.Len(t, arcs, 4)
	want := []struct {
		cx, r float64
		ccw   bool
	}{
		{0.5, 0.5, false},
		{2, 2, true},
		{4.5, 1.5, false},
		{4, 4, true},
	}
	for i, w := range want {
		assert.InDelta(t, w.cx, arcs[i].X, 1e-9)
		assert.InDelta(t, 20, arcs[i].Y, 1e-9)
		assert.InDelta(t, w.r, arcs[i].R, 1e-9)
		assert.InDelta(t, 0, arcs[i].Start, 1e-9)
		assert.InDelta(t, math.Pi, arcs[i].End, 1e-9)
		assert.Equal(t, w.ccw, arcs[i].CCW, "arc %d", i+1)
	}

	// All arcs share one path that is stroked once at the end.
	last := ops[len(ops)-1]
	assert.Equal(t, OpStroke, last.Kind)
	var between []OpKind
	for i := len(ops) - 2; ops[i].Kind != OpBeginPath; i-- {
		between = append(between, ops[i].Kind)
	}
	assert.NotContains(t, between, OpStroke)
	assert.Contains(t, between, OpMoveTo)
}

func TestDrawSequenceEveryLimit(t *testing.T) {
	table := sequence.Scaled(10)
	for limit := 0; limit <= sequence.MaxLimit(); limit++ {
		ctx, rec := newTestContext(1200, 640, 10)
		DrawSequence(ctx, table, limit)

		ops := rec.Ops()
		require.Equal(t, OpClearRect, ops[0].Kind)
		assert.Len(t, rec.Filter(OpArc), limit, "limit %d", limit)
	}
}

func TestDrawSequenceZeroLimit(t *testing.T) {
	ctx, rec := newTestContext(100, 40, 10)
	DrawSequence(ctx, prefix, 0)

	assert.Empty(t, rec.Filter(OpArc))
	assert.NotEmpty(t, rec.Filter(OpFillText), "axis still drawn")

	ops := rec.Ops()
	tail := ops[len(ops)-3:]
	assert.Equal(t, []Op{
		{Kind: OpBeginPath},
		{Kind: OpMoveTo, X: 0, Y: 20},
		{Kind: OpStroke},
	}, tail)
}

func TestDrawSequenceIdempotent(t *testing.T) {
	ctx, rec := newTestContext(1200, 640, 10)
	table := sequence.Scaled(10)

	DrawSequence(ctx, table, 17)
	first := rec.Ops()
	for i := 0; i < 3; i++ {
		rec.Reset()
		DrawSequence(ctx, table, 17)
		assert.Equal(t, first, rec.Ops())
	}
}

func TestDrawSequenceClampsLimit(t *testing.T) {
	ctx, rec := newTestContext(100, 40, 1)
	DrawSequence(ctx, prefix, 50)
	assert.Len(t, rec.Filter(OpArc), 4)
}

func TestRecorderWriteTo(t *testing.T) {
	ctx, rec := newTestContext(10, 20, 10)
	DrawSequence(ctx, []float64{0, 10}, 1)

	var buf bytes.Buffer
	_, err := rec.WriteTo(&buf)
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "clearRect(0, 0, 10, 20)\n"))
	assert.Contains(t, out, `fillText("0", 0, 25)`)
	assert.Contains(t, out, "arc(5, 10, 5, 0.0000, 3.1416, false)")
	assert.Equal(t, "OpKind(42)", OpKind(42).String())
}

func TestSVG(t *testing.T) {
	svg := NewSVG(100, 40)
	ctx := NewContext(svg, 100, 40, 10)
	DrawSequence(ctx, []float64{0, 10, 30, 60, 20}, 2)

	var buf bytes.Buffer
	_, err := svg.WriteTo(&buf)
	require.NoError(t, err)
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 40"`))
	assert.True(t, strings.HasSuffix(out, "</svg>\n"))
	assert.Contains(t, out, `<rect x="0" y="0" width="100" height="40" fill="#ffffff"/>`)
	assert.Contains(t, out, `<text x="50" y="35"`)
	assert.Contains(t, out, `M0 20 L10 20 A5 5 0 0 1 0 20 L30 20 A10 10 0 0 0 10 20"`)
}

func TestSVGClearDropsEarlierContent(t *testing.T) {
	svg := NewSVG(100, 40)
	ctx := NewContext(svg, 100, 40, 10)
	DrawSequence(ctx, prefix, 4)
	DrawSequence(ctx, prefix, 4)

	var buf bytes.Buffer
	_, err := svg.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(buf.String(), "<rect"))
}

func TestSVGFullCircle(t *testing.T) {
	svg := NewSVG(40, 40)
	svg.BeginPath()
	svg.Arc(20, 20, 10, 0, 2*math.Pi, false)
	svg.Stroke()

	var buf bytes.Buffer
	_, err := svg.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `d="M30 20 A10 10 0 0 1 10 20 A10 10 0 0 1 30 20"`)
}
