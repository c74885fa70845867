package render

import "strconv"

// DrawAxis draws the horizontal number line across the middle of the
// surface, a tick at every sequence unit and a label every Style.LabelEvery
// units.
func DrawAxis(ctx *Context) {
	s := ctx.Surface
	mid := ctx.Mid()

	s.BeginPath()
	s.MoveTo(0, mid)
	s.LineTo(ctx.Width, mid)
	s.Stroke()

	if ctx.Scale <= 0 {
		return
	}
	for k := 0; float64(k)*ctx.Scale <= ctx.Width; k++ {
		x := float64(k) * ctx.Scale
		s.BeginPath()
		s.MoveTo(x, mid-ctx.Style.TickSize)
		s.LineTo(x, mid+ctx.Style.TickSize)
		s.Stroke()

		if ctx.Style.LabelEvery > 0 && k%ctx.Style.LabelEvery == 0 {
			s.FillText(strconv.Itoa(k), x, mid+ctx.Style.LabelOffset)
		}
	}
}
