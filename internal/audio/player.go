package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/recaman-visualization/internal/config"
)

// Speaker hooks. Overridden in tests so no audio device is needed.
var (
	speakerInit  = speaker.Init
	speakerPlay  = speaker.Play
	speakerClear = speaker.Clear
)

// Player plays one short tone per sequence value. A new note cuts off the
// previous one. The zero value is not usable; see NewPlayer.
type Player struct {
	sampleRate beep.SampleRate
	baseFreq   float64
	note       time.Duration
	volume     float64
	ringSize   int

	mu       sync.Mutex
	initDone bool
	tap      *Tap
}

// NewPlayer builds a player from the audio section of the config. The speaker
// is opened lazily on the first note.
func NewPlayer(cfg config.AudioConfig) *Player {
	return &Player{
		sampleRate: beep.SampleRate(cfg.SampleRate),
		baseFreq:   cfg.BaseFreq,
		note:       time.Duration(cfg.NoteMillis) * time.Millisecond,
		volume:     cfg.Volume,
		ringSize:   config.TapRingSize,
	}
}

// Play starts the tone for value.
func (p *Player) Play(value int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initDone {
		bufferSize := p.sampleRate.N(time.Second / 20)
		if err := speakerInit(p.sampleRate, bufferSize); err != nil {
			return fmt.Errorf("init speaker: %w", err)
		}
		p.initDone = true
	}

	t := NewTap(Tone(p.sampleRate, Frequency(p.baseFreq, value), p.note, p.volume), p.ringSize)
	speakerClear()
	speakerPlay(t)
	p.tap = t
	return nil
}

// Stop silences whatever is playing.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initDone {
		speakerClear()
	}
	p.tap = nil
}

// Snapshot returns up to n of the most recent samples of the current note.
func (p *Player) Snapshot(n int) [][2]float64 {
	p.mu.Lock()
	t := p.tap
	p.mu.Unlock()
	if t == nil {
		return nil
	}
	return t.Snapshot(n)
}
