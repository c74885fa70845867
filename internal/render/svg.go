package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// SVG is a Surface that collects stroked paths and labels and writes them as
// a standalone SVG document.
type SVG struct {
	width, height float64

	Background  string
	StrokeColor string
	TextColor   string
	StrokeWidth float64

	body     bytes.Buffer
	path     strings.Builder
	hasPoint bool
}

var _ Surface = (*SVG)(nil)

// NewSVG returns an empty width×height document with a white background and
// black strokes.
func NewSVG(width, height float64) *SVG {
	return &SVG{
		width:       width,
		height:      height,
		Background:  "#ffffff",
		StrokeColor: "#000000",
		TextColor:   "#000000",
		StrokeWidth: 1,
	}
}

func num(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (s *SVG) ClearRect(x, y, w, h float64) {
	if x <= 0 && y <= 0 && x+w >= s.width && y+h >= s.height {
		s.body.Reset()
	}
	fmt.Fprintf(&s.body, `  <rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
		num(x), num(y), num(w), num(h), s.Background)
}

func (s *SVG) BeginPath() {
	s.path.Reset()
	s.hasPoint = false
}

func (s *SVG) MoveTo(x, y float64) {
	fmt.Fprintf(&s.path, "M%s %s ", num(x), num(y))
	s.hasPoint = true
}

func (s *SVG) LineTo(x, y float64) {
	if !s.hasPoint {
		s.MoveTo(x, y)
		return
	}
	fmt.Fprintf(&s.path, "L%s %s ", num(x), num(y))
}

func (s *SVG) Arc(cx, cy, r, startAngle, endAngle float64, counterclockwise bool) {
	sx, sy := cx+r*math.Cos(startAngle), cy+r*math.Sin(startAngle)
	s.LineTo(sx, sy)
	if r <= 0 {
		return
	}

	sweep := endAngle - startAngle
	if counterclockwise {
		sweep = startAngle - endAngle
	}
	if sweep < 0 {
		sweep = math.Mod(sweep, 2*math.Pi) + 2*math.Pi
	}

	sweepFlag := 1
	if counterclockwise {
		sweepFlag = 0
	}

	// A single elliptical arc command cannot describe a full turn.
	if sweep >= 2*math.Pi-1e-9 {
		mid := startAngle + math.Pi
		if counterclockwise {
			mid = startAngle - math.Pi
		}
		s.arcTo(r, false, sweepFlag, cx+r*math.Cos(mid), cy+r*math.Sin(mid))
		s.arcTo(r, false, sweepFlag, sx, sy)
		return
	}

	s.arcTo(r, sweep > math.Pi, sweepFlag, cx+r*math.Cos(endAngle), cy+r*math.Sin(endAngle))
}

func (s *SVG) arcTo(r float64, large bool, sweepFlag int, x, y float64) {
	largeFlag := 0
	if large {
		largeFlag = 1
	}
	fmt.Fprintf(&s.path, "A%s %s 0 %d %d %s %s ", num(r), num(r), largeFlag, sweepFlag, num(x), num(y))
}

func (s *SVG) Stroke() {
	d := strings.TrimSpace(s.path.String())
	if d == "" {
		return
	}
	fmt.Fprintf(&s.body, `  <path d="%s" fill="none" stroke="%s" stroke-width="%s"/>`+"\n",
		d, s.StrokeColor, num(s.StrokeWidth))
}

func (s *SVG) FillText(text string, x, y float64) {
	fmt.Fprintf(&s.body, `  <text x="%s" y="%s" fill="%s" font-family="sans-serif" font-size="10">`,
		num(x), num(y), s.TextColor)
	_ = xml.EscapeText(&s.body, []byte(text))
	s.body.WriteString("</text>\n")
}

// WriteTo writes the document.
func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s">`+"\n",
		num(s.width), num(s.height), num(s.width), num(s.height))
	buf.Write(s.body.Bytes())
	buf.WriteString("</svg>\n")
	return buf.WriteTo(w)
}
