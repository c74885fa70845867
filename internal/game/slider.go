package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// slider is a horizontal range control over [0, max]. It only tracks pointer
// state; the game decides what a value change means.
type slider struct {
	x, y, w, h int
	max        int
	value      int

	hovered  bool
	dragging bool
}

// pointer is one frame of mouse input.
type pointer struct {
	x, y         int
	justPressed  bool
	justReleased bool
}

func (s *slider) contains(px, py int) bool {
	return px >= s.x && px <= s.x+s.w && py >= s.y && py <= s.y+s.h
}

// valueAt maps a pointer x to the nearest slider value.
func (s *slider) valueAt(px int) int {
	if s.w <= 0 || s.max <= 0 {
		return 0
	}
	ratio := clamp01(float64(px-s.x) / float64(s.w))
	return int(math.Round(ratio * float64(s.max)))
}

// update applies one frame of input and reports the new value and whether it
// changed. A press on the bar jumps to that position; dragging continues even
// when the pointer leaves the bar, until the button is released.
func (s *slider) update(p pointer) (int, bool) {
	s.hovered = s.contains(p.x, p.y)

	if s.hovered && p.justPressed {
		s.dragging = true
	}
	if p.justReleased {
		if !s.dragging {
			return s.value, false
		}
		s.dragging = false
	} else if !s.dragging {
		return s.value, false
	}

	v := s.valueAt(p.x)
	if v == s.value {
		return v, false
	}
	s.value = v
	return v, true
}

func (s *slider) knobX() float64 {
	if s.max <= 0 {
		return float64(s.x)
	}
	return float64(s.x) + float64(s.value)/float64(s.max)*float64(s.w)
}

func (s *slider) draw(screen *ebiten.Image, colorPhase float64) {
	x, y, w, h := float32(s.x), float32(s.y), float32(s.w), float32(s.h)

	vector.DrawFilledRect(screen, x, y, w, h, color.RGBA{R: 25, G: 30, B: 40, A: 200}, false)
	vector.StrokeRect(screen, x, y, w, h, 2, color.RGBA{R: 70, G: 80, B: 100, A: 255}, false)

	progress := 0.0
	if s.max > 0 {
		progress = float64(s.value) / float64(s.max)
	}
	if progress > 0 {
		hue := (colorPhase + progress*0.5) * 360
		vector.DrawFilledRect(screen, x, y, float32(progress*float64(s.w)), h, hsvColor(hue, 0.8, 0.9, 180), false)
	}

	knobColor := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	if s.dragging || s.hovered {
		knobColor = color.RGBA{R: 200, G: 220, B: 255, A: 255}
	}
	kx := float32(s.knobX())
	ky := y + h/2
	vector.DrawFilledCircle(screen, kx, ky, 8, knobColor, true)
	vector.StrokeCircle(screen, kx, ky, 8, 2, color.RGBA{R: 100, G: 110, B: 130, A: 255}, true)
}
