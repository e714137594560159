package audio

import (
	"io"
	"math"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"

	"github.com/vovakirdan/cyberpath/internal/game"
)

const testRate = beep.SampleRate(44100)

// drain streams s to the end and returns every left-channel sample.
func drain(t *testing.T, s beep.Streamer) []float64 {
	t.Helper()
	var out []float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			out = append(out, smp[0])
		}
		if !ok {
			return out
		}
	}
	t.Fatal("streamer never ended")
	return nil
}

func TestOscillatorLength(t *testing.T) {
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, testRate)
	got := drain(t, osc)
	if len(got) != testRate.N(100*time.Millisecond) {
		t.Errorf("streamed %d samples, expected %d", len(got), testRate.N(100*time.Millisecond))
	}
	if osc.Err() != nil {
		t.Errorf("Err() = %v", osc.Err())
	}
}

func TestOscillatorWaves(t *testing.T) {
	tests := []struct {
		name  string
		wave  Wave
		check func(float64) bool
	}{
		{"sine", WaveSine, func(v float64) bool { return v >= -1 && v <= 1 }},
		{"square", WaveSquare, func(v float64) bool { return v == 1 || v == -1 }},
		{"saw", WaveSaw, func(v float64) bool { return v >= -1 && v < 1 }},
		{"noise", WaveNoise, func(v float64) bool { return v >= -1 && v < 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i, v := range drain(t, NewOscillator(220, 20*time.Millisecond, tt.wave, testRate)) {
				if !tt.check(v) {
					t.Fatalf("sample %d = %f out of range", i, v)
				}
			}
		})
	}
}

func TestEnvelopeShape(t *testing.T) {
	d := 100 * time.Millisecond
	osc := NewOscillator(0, d, WaveSquare, testRate) // constant 1
	env := NewEnvelope(osc, d, 10*time.Millisecond, 20*time.Millisecond, testRate)
	got := drain(t, env)

	if got[0] != 0 {
		t.Errorf("first sample = %f, expected silence at the start of the attack", got[0])
	}
	mid := got[len(got)/2]
	if mid != 1 {
		t.Errorf("sustain sample = %f, expected 1", mid)
	}
	last := got[len(got)-1]
	if last <= 0 || last > 0.01 {
		t.Errorf("last sample = %f, expected nearly silent", last)
	}
}

func TestCuesAreFinite(t *testing.T) {
	events := []game.Event{
		game.EventCoin, game.EventJump, game.EventLand, game.EventEnemyHit,
		game.EventHazardHit, game.EventLifeRestored, game.EventLevelComplete,
		game.EventGameOver, game.EventVictory,
	}

	for _, e := range events {
		t.Run(e.String(), func(t *testing.T) {
			s := Cue(e, testRate)
			if s == nil {
				t.Fatal("Cue() = nil")
			}
			samples := drain(t, s)
			if len(samples) == 0 || len(samples) > testRate.N(2*time.Second) {
				t.Errorf("cue is %d samples long", len(samples))
			}
			for _, v := range samples {
				if math.IsNaN(v) || math.Abs(v) > 1 {
					t.Fatalf("sample %f out of range", v)
				}
			}
		})
	}
}

func TestCoinCueIsTwoNotes(t *testing.T) {
	want := testRate.N(60*time.Millisecond) + testRate.N(120*time.Millisecond)
	if got := len(drain(t, Cue(game.EventCoin, testRate))); got != want {
		t.Errorf("coin cue = %d samples, expected %d", got, want)
	}
}

func TestWithVolumeZeroIsSilent(t *testing.T) {
	s := withVolume(NewOscillator(0, 10*time.Millisecond, WaveSquare, testRate), 0)
	for _, v := range drain(t, s) {
		if v != 0 {
			t.Fatalf("sample = %f, expected silence", v)
		}
	}
}

func TestDisabledPlayerIgnoresPlay(t *testing.T) {
	p := NewPlayer(1, log.New(io.Discard))
	if p.Enabled() {
		t.Fatal("new player should start disabled")
	}
	p.PlayAll([]game.Event{game.EventCoin, game.EventJump})
	p.Close()
	if p.Enabled() {
		t.Error("player enabled itself")
	}
}
