package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/recaman-visualization/internal/render"
)

// debugTextAscent lifts DebugPrintAt text (drawn from its top edge) so that y
// acts as a baseline, like canvas fillText.
const debugTextAscent = 12

// ebitenSurface implements render.Surface on an offscreen ebiten image.
// Paths are built with vector.Path and stroked as triangles.
type ebitenSurface struct {
	img       *ebiten.Image
	white     *ebiten.Image
	bg        color.Color
	stroke    color.RGBA
	lineWidth float32

	path     vector.Path
	vertices []ebiten.Vertex
	indices  []uint16
}

var _ render.Surface = (*ebitenSurface)(nil)

func newEbitenSurface(img *ebiten.Image, bg color.Color, stroke color.RGBA, lineWidth float32) *ebitenSurface {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &ebitenSurface{
		img:       img,
		white:     white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		bg:        bg,
		stroke:    stroke,
		lineWidth: lineWidth,
	}
}

func (s *ebitenSurface) ClearRect(x, y, w, h float64) {
	b := s.img.Bounds()
	if x <= 0 && y <= 0 && x+w >= float64(b.Dx()) && y+h >= float64(b.Dy()) {
		s.img.Fill(s.bg)
		return
	}
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(w), float32(h), s.bg, false)
}

func (s *ebitenSurface) BeginPath() { s.path = vector.Path{} }

func (s *ebitenSurface) MoveTo(x, y float64) { s.path.MoveTo(float32(x), float32(y)) }

func (s *ebitenSurface) LineTo(x, y float64) { s.path.LineTo(float32(x), float32(y)) }

func (s *ebitenSurface) Arc(cx, cy, r, startAngle, endAngle float64, counterclockwise bool) {
	dir := vector.Clockwise
	if counterclockwise {
		dir = vector.CounterClockwise
	}
	s.path.Arc(float32(cx), float32(cy), float32(r), float32(startAngle), float32(endAngle), dir)
}

func (s *ebitenSurface) Stroke() {
	op := &vector.StrokeOptions{
		Width:    s.lineWidth,
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	}
	s.vertices, s.indices = s.path.AppendVerticesAndIndicesForStroke(s.vertices[:0], s.indices[:0], op)
	if len(s.indices) == 0 {
		return
	}

	r := float32(s.stroke.R) / 0xff
	g := float32(s.stroke.G) / 0xff
	b := float32(s.stroke.B) / 0xff
	a := float32(s.stroke.A) / 0xff
	for i := range s.vertices {
		s.vertices[i].SrcX = 1
		s.vertices[i].SrcY = 1
		s.vertices[i].ColorR = r
		s.vertices[i].ColorG = g
		s.vertices[i].ColorB = b
		s.vertices[i].ColorA = a
	}
	s.img.DrawTriangles(s.vertices, s.indices, s.white, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (s *ebitenSurface) FillText(text string, x, y float64) {
	ebitenutil.DebugPrintAt(s.img, text, int(x), int(y)-debugTextAscent)
}
