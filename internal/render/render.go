// Package render draws the Recaman arc chain and its number line onto an
// abstract 2D surface.
//
// The renderers never hold a surface of their own. Callers build a Context
// (surface plus dimensions) and pass it in, so the same drawing code feeds the
// ebiten window, the SVG writer and the operation recorder used in tests.
package render

import (
	"github.com/iburimskiy/recaman-visualization/internal/config"
)

// Surface is the subset of a canvas-style 2D context the renderers use.
//
// Arc follows canvas semantics: angles are in radians measured clockwise from
// the positive x axis in a y-down space, and if the current path already has
// a point, a straight segment joins it to the arc's start.
type Surface interface {
	ClearRect(x, y, w, h float64)
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Arc(cx, cy, r, startAngle, endAngle float64, counterclockwise bool)
	Stroke()
	FillText(text string, x, y float64)
}

// Style holds number line decoration in drawing units.
type Style struct {
	TickSize    float64 // half length of a tick
	LabelOffset float64 // label baseline below the line
	LabelEvery  int     // label every n-th tick
}

// DefaultStyle mirrors the built-in configuration.
func DefaultStyle() Style {
	return Style{
		TickSize:    config.TickSize,
		LabelOffset: config.LabelOffset,
		LabelEvery:  config.LabelEvery,
	}
}

// StyleFrom picks the axis settings out of cfg.
func StyleFrom(cfg config.AxisConfig) Style {
	return Style{
		TickSize:    cfg.TickSize,
		LabelOffset: cfg.LabelOffset,
		LabelEvery:  cfg.LabelEvery,
	}
}

// Context is everything a renderer needs: where to draw, how big the
// surface is and how many drawing units make one sequence unit.
type Context struct {
	Surface Surface
	Width   float64
	Height  float64
	Scale   float64
	Style   Style
}

// NewContext returns a Context with DefaultStyle.
func NewContext(s Surface, width, height, scale float64) *Context {
	return &Context{
		Surface: s,
		Width:   width,
		Height:  height,
		Scale:   scale,
		Style:   DefaultStyle(),
	}
}

// Mid is the y of the number line.
func (c *Context) Mid() float64 { return c.Height / 2 }
