package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/cyberpath/internal/game"
)

// Cue builds the streamer for an event, or nil if the event is silent.
func Cue(e game.Event, rate beep.SampleRate) beep.Streamer {
	switch e {
	case game.EventCoin:
		// B5 then E6
		return beep.Seq(
			tone(987.77, 60*time.Millisecond, WaveSquare, rate),
			tone(1318.51, 120*time.Millisecond, WaveSquare, rate),
		)
	case game.EventJump:
		return withVolume(tone(520, 70*time.Millisecond, WaveSquare, rate), 0.5)
	case game.EventLand:
		return withVolume(tone(140, 50*time.Millisecond, WaveSine, rate), 0.6)
	case game.EventEnemyHit:
		return tone(110, 150*time.Millisecond, WaveSaw, rate)
	case game.EventHazardHit:
		return withVolume(tone(0, 120*time.Millisecond, WaveNoise, rate), 0.7)
	case game.EventLifeRestored:
		return beep.Seq(
			tone(659.25, 80*time.Millisecond, WaveSine, rate),
			tone(880, 160*time.Millisecond, WaveSine, rate),
		)
	case game.EventLevelComplete, game.EventVictory:
		// C5 E5 G5 C6
		notes := []float64{523.25, 659.25, 783.99, 1046.5}
		parts := make([]beep.Streamer, 0, len(notes))
		for i, f := range notes {
			d := 90 * time.Millisecond
			if i == len(notes)-1 {
				d = 300 * time.Millisecond
			}
			parts = append(parts, tone(f, d, WaveSquare, rate))
		}
		return beep.Seq(parts...)
	case game.EventGameOver:
		return beep.Seq(
			tone(392, 150*time.Millisecond, WaveSaw, rate),
			tone(311.13, 150*time.Millisecond, WaveSaw, rate),
			tone(261.63, 350*time.Millisecond, WaveSaw, rate),
		)
	default:
		return nil
	}
}
