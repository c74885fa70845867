// Package game is the desktop front end: an ebiten window showing the arc
// chain above a slider that selects how many steps are drawn.
package game

import (
	"errors"
	"image/color"
	"math"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/recaman-visualization/internal/audio"
	"github.com/iburimskiy/recaman-visualization/internal/config"
	"github.com/iburimskiy/recaman-visualization/internal/render"
	"github.com/iburimskiy/recaman-visualization/internal/sequence"
)

const (
	// Height of the control strip under the plot
	controlsHeight = 70
	labelWidth     = 180

	waveWidth   = 200
	waveHeight  = 40
	waveSamples = 400

	colorShiftSpeed = 0.002
)

var (
	backgroundColor = color.RGBA{R: 12, G: 14, B: 22, A: 255}
	strokeColor     = color.RGBA{R: 220, G: 225, B: 235, A: 255}
)

// tonePlayer is the part of audio.Player the game needs.
type tonePlayer interface {
	Play(value int) error
	Stop()
	Snapshot(n int) [][2]float64
}

type game struct {
	cfg    config.Config
	logger *log.Logger

	// drawing
	table   []float64
	canvas  *ebiten.Image
	surface render.Surface
	ctx     *render.Context

	// the one piece of state the controls change
	limit int
	label string

	slider slider

	// sound
	player tonePlayer
	sound  bool

	// viz
	colorPhase float64

	// input edge detection
	prevKey map[ebiten.Key]bool

	// state
	initDone bool
	lastErr  error
}

func plotHeight(cfg config.Config) int {
	return max(cfg.Window.Height-controlsHeight, 1)
}

// New builds the window game from cfg. The canvas is drawn on the first
// Update.
func New(cfg config.Config, logger *log.Logger) *game {
	canvas := ebiten.NewImage(cfg.Window.Width, plotHeight(cfg))
	surface := newEbitenSurface(canvas, backgroundColor, strokeColor, 1.5)
	g := newGame(cfg, logger, surface, audio.NewPlayer(cfg.Audio))
	g.canvas = canvas
	return g
}

func newGame(cfg config.Config, logger *log.Logger, surface render.Surface, player tonePlayer) *game {
	width := cfg.Window.Width
	ctx := render.NewContext(surface, float64(width), float64(plotHeight(cfg)), float64(cfg.Sequence.Scale))
	ctx.Style = render.StyleFrom(cfg.Axis)

	limit := sequence.Clamp(cfg.Sequence.Limit)
	return &game{
		cfg:     cfg,
		logger:  logger,
		table:   sequence.Scaled(float64(cfg.Sequence.Scale)),
		surface: surface,
		ctx:     ctx,
		limit:   limit,
		label:   formatLimit(limit),
		slider: slider{
			x:     config.SliderX,
			y:     plotHeight(cfg) + (controlsHeight-config.SliderHeight)/2,
			w:     max(width-2*config.SliderX-labelWidth, 1),
			h:     config.SliderHeight,
			max:   sequence.MaxLimit(),
			value: limit,
		},
		player:  player,
		sound:   cfg.Audio.Enabled,
		prevKey: map[ebiten.Key]bool{},
	}
}

// onLimitChange is the input handler: it takes the new limit, refreshes the
// label and redraws the whole canvas before returning.
func (g *game) onLimitChange(n int) {
	n = sequence.Clamp(n)
	prev := g.limit

	g.limit = n
	g.slider.value = n
	g.label = formatLimit(n)
	render.DrawSequence(g.ctx, g.table, n)

	g.logger.Debug("limit changed", "limit", n, "value", sequence.Values[n])

	if g.sound && n > prev {
		if err := g.player.Play(sequence.Values[n]); err != nil {
			g.logger.Error("play tone", "err", err)
			g.lastErr = err
			g.sound = false
		}
	}
}

// step moves the limit by delta, ignoring moves past either end.
func (g *game) step(delta int) {
	n := sequence.Clamp(g.limit + delta)
	if n != g.limit {
		g.onLimitChange(n)
	}
}

func (g *game) toggleSound() {
	g.sound = !g.sound
	if !g.sound {
		g.player.Stop()
	}
	g.logger.Info("sound toggled", "on", g.sound)
}

func (g *game) exportSnapshot() error {
	if g.canvas == nil {
		return errors.New("no canvas to export")
	}
	path, err := saveSnapshot(g.limit, readImage(g.canvas))
	if err != nil {
		return err
	}
	if path != "" {
		g.logger.Info("saved snapshot", "path", path, "limit", g.limit)
	}
	return nil
}

// keyRepeats reports a just-pressed key and auto-repeat while held.
func keyRepeats(k ebiten.Key) bool {
	d := inpututil.KeyPressDuration(k)
	return d == 1 || (d >= 20 && d%4 == 0)
}

func (g *game) Update() error {
	if !g.initDone {
		g.onLimitChange(g.limit)
		g.initDone = true
	}

	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	mouseX, mouseY := ebiten.CursorPosition()
	if v, changed := g.slider.update(pointer{
		x:            mouseX,
		y:            mouseY,
		justPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		justReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}); changed {
		g.onLimitChange(v)
	}

	switch {
	case keyRepeats(ebiten.KeyArrowRight):
		g.step(1)
	case keyRepeats(ebiten.KeyArrowLeft):
		g.step(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		g.step(-g.limit)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		g.step(sequence.MaxLimit() - g.limit)
	}

	if justPressed(ebiten.KeyM) {
		g.toggleSound()
	}
	if justPressed(ebiten.KeyS) {
		if err := g.exportSnapshot(); err != nil {
			g.logger.Error("export snapshot", "err", err)
			g.lastErr = err
		}
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.colorPhase += colorShiftSpeed
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	if g.canvas != nil {
		screen.DrawImage(g.canvas, nil)
	}

	g.slider.draw(screen, g.colorPhase)
	ebitenutil.DebugPrintAt(screen, g.label, g.slider.x+g.slider.w+24, g.slider.y+4)

	if g.sound {
		g.drawWaveform(screen)
	}

	status := "Drag the slider or use Left/Right | S: save PNG | M: sound "
	if g.sound {
		status += "on"
	} else {
		status += "off"
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

// drawWaveform draws the recent samples of the note being played in a small
// strip at the top right of the window.
func (g *game) drawWaveform(screen *ebiten.Image) {
	samples := g.player.Snapshot(waveSamples)

	boxX := float32(g.cfg.Window.Width - waveWidth - 20)
	boxY := float32(10)
	vector.DrawFilledRect(screen, boxX, boxY, waveWidth, waveHeight, color.RGBA{R: 20, G: 25, B: 35, A: 200}, false)
	vector.StrokeRect(screen, boxX, boxY, waveWidth, waveHeight, 1, color.RGBA{R: 60, G: 70, B: 90, A: 255}, false)

	if len(samples) < 2 {
		return
	}
	centerY := float64(boxY) + waveHeight/2
	dx := float64(waveWidth) / float64(len(samples)-1)
	hue := (g.colorPhase + float64(g.limit)/float64(sequence.MaxLimit())) * 360
	waveColor := hsvColor(hue, 0.7, 0.9, 230)
	for i := 1; i < len(samples); i++ {
		x1 := float64(boxX) + float64(i-1)*dx
		x2 := float64(boxX) + float64(i)*dx
		y1 := centerY - clampUnit(samples[i-1][0])*waveHeight/2
		y2 := centerY - clampUnit(samples[i][0])*waveHeight/2
		vector.StrokeLine(screen, float32(x1), float32(y1), float32(x2), float32(y2), 1, waveColor, false)
	}
}

func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

// Run opens the window and blocks until it is closed.
func Run(cfg config.Config, logger *log.Logger) error {
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)

	g := New(cfg, logger)
	logger.Debug("starting window", "width", cfg.Window.Width, "height", cfg.Window.Height, "limit", g.limit)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
