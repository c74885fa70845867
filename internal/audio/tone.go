// Package audio turns sequence steps into short tones played through the
// beep speaker.
package audio

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// Frequency maps a sequence value to a pitch: base at 0, rising a quarter
// tone per unit, so the whole table stays within a few octaves.
func Frequency(base float64, value int) float64 {
	return base * math.Pow(2, float64(value)/24)
}

// Tone returns a mono sine at freq lasting d, scaled by volume and faded out
// linearly so consecutive notes do not click.
func Tone(sr beep.SampleRate, freq float64, d time.Duration, volume float64) beep.Streamer {
	total := sr.N(d)
	step := 2 * math.Pi * freq / float64(sr)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		i := 0
		for ; i < len(samples) && pos < total; i++ {
			env := 1 - float64(pos)/float64(total)
			v := math.Sin(step*float64(pos)) * volume * env
			samples[i][0], samples[i][1] = v, v
			pos++
		}
		return i, true
	})
}
