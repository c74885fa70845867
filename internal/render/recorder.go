package render

import (
	"fmt"
	"io"
)

// OpKind names a Surface call.
type OpKind int

const (
	OpClearRect OpKind = iota
	OpBeginPath
	OpMoveTo
	OpLineTo
	OpArc
	OpStroke
	OpFillText
)

var opNames = [...]string{
	OpClearRect: "clearRect",
	OpBeginPath: "beginPath",
	OpMoveTo:    "moveTo",
	OpLineTo:    "lineTo",
	OpArc:       "arc",
	OpStroke:    "stroke",
	OpFillText:  "fillText",
}

func (k OpKind) String() string {
	if int(k) < len(opNames) {
		return opNames[k]
	}
	return fmt.Sprintf("OpKind(%d)", int(k))
}

// Op is one recorded Surface call. Only the fields relevant to Kind are set:
// X/Y for points, centers and text anchors, W/H for rectangles, R/Start/End/CCW
// for arcs.
type Op struct {
	Kind  OpKind
	X, Y  float64
	W, H  float64
	R     float64
	Start float64
	End   float64
	CCW   bool
	Text  string
}

func (o Op) String() string {
	switch o.Kind {
	case OpClearRect:
		return fmt.Sprintf("%s(%g, %g, %g, %g)", o.Kind, o.X, o.Y, o.W, o.H)
	case OpMoveTo, OpLineTo:
		return fmt.Sprintf("%s(%g, %g)", o.Kind, o.X, o.Y)
	case OpArc:
		return fmt.Sprintf("%s(%g, %g, %g, %.4f, %.4f, %t)", o.Kind, o.X, o.Y, o.R, o.Start, o.End, o.CCW)
	case OpFillText:
		return fmt.Sprintf("%s(%q, %g, %g)", o.Kind, o.Text, o.X, o.Y)
	default:
		return o.Kind.String() + "()"
	}
}

// Recorder is a Surface that keeps every call instead of drawing.
type Recorder struct {
	ops []Op
}

var _ Surface = (*Recorder)(nil)

func (r *Recorder) ClearRect(x, y, w, h float64) {
	r.ops = append(r.ops, Op{Kind: OpClearRect, X: x, Y: y, W: w, H: h})
}

func (r *Recorder) BeginPath() { r.ops = append(r.ops, Op{Kind: OpBeginPath}) }

func (r *Recorder) MoveTo(x, y float64) { r.ops = append(r.ops, Op{Kind: OpMoveTo, X: x, Y: y}) }

func (r *Recorder) LineTo(x, y float64) { r.ops = append(r.ops, Op{Kind: OpLineTo, X: x, Y: y}) }

func (r *Recorder) Arc(cx, cy, radius, startAngle, endAngle float64, counterclockwise bool) {
	r.ops = append(r.ops, Op{
		Kind:  OpArc,
		X:     cx,
		Y:     cy,
		R:     radius,
		Start: startAngle,
		End:   endAngle,
		CCW:   counterclockwise,
	})
}

func (r *Recorder) Stroke() { r.ops = append(r.ops, Op{Kind: OpStroke}) }

func (r *Recorder) FillText(text string, x, y float64) {
	r.ops = append(r.ops, Op{Kind: OpFillText, Text: text, X: x, Y: y})
}

// Ops returns a copy of the recorded calls.
func (r *Recorder) Ops() []Op {
	out := make([]Op, len(r.ops))
	copy(out, r.ops)
	return out
}

// Reset drops everything recorded so far.
func (r *Recorder) Reset() { r.ops = r.ops[:0] }

// Filter returns the recorded calls of the given kind, in order.
func (r *Recorder) Filter(kind OpKind) []Op {
	var out []Op
	for _, op := range r.ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// WriteTo prints one call per line.
func (r *Recorder) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, op := range r.ops {
		n, err := fmt.Fprintln(w, op)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
