// Package audio synthesizes the game's sound cues with gopxl/beep.
// All tones are generated procedurally so the binary ships no assets.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-2048/internal/game"
)

const sampleRate = beep.SampleRate(48000)

// The engine drives cues through this interface.
var _ game.AudioSink = (*SoundManager)(nil)

// SoundManager plays short synthesized cues for game events.
// It is safe for concurrent use; all methods are no-ops until
// Initialize succeeds, and while muted.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates a sound manager. Call Initialize before use.
func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker. On headless systems this fails and the
// manager stays silent; callers can treat the error as non-fatal.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.mixer.Clear()
	sm.initialized = false
}

// SetMuted toggles sound output without tearing down the speaker.
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// IsMuted reports whether output is muted.
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// play appends a time-limited streamer to the mixer.
func (sm *SoundManager) play(d time.Duration, s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	sm.mixer.Add(beep.Take(sampleRate.N(d), s))
}

// PlayMove plays a soft tick when tiles slide.
func (sm *SoundManager) PlayMove() {
	sm.play(time.Millisecond*60, NewToneGenerator(sampleRate, 440, 0.10))
}

// PlayMerge plays a brighter pluck when tiles combine.
func (sm *SoundManager) PlayMerge() {
	sm.play(time.Millisecond*120, NewToneGenerator(sampleRate, 660, 0.18))
}

// PlayWin plays a rising arpeggio when the winning tile appears.
func (sm *SoundManager) PlayWin() {
	sm.play(time.Millisecond*600, NewArpeggioGenerator(sampleRate,
		[]float64{523.25, 659.25, 783.99, 1046.50}, time.Millisecond*150))
}

// PlayGameOver plays a falling two-note figure when no moves remain.
func (sm *SoundManager) PlayGameOver() {
	sm.play(time.Millisecond*500, NewArpeggioGenerator(sampleRate,
		[]float64{392.00, 293.66}, time.Millisecond*250))
}

// ToneGenerator produces a single decaying sine tone.
type ToneGenerator struct {
	sr   beep.SampleRate
	freq float64
	vol  float64
	pos  int
}

// NewToneGenerator creates a tone at the given frequency and volume.
func NewToneGenerator(sr beep.SampleRate, freq, vol float64) *ToneGenerator {
	return &ToneGenerator{sr: sr, freq: freq, vol: vol}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Quick attack, exponential decay.
		attack := math.Min(t/0.005, 1.0)
		envelope := attack * math.Exp(-t*20)

		sample := g.vol * envelope * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// ArpeggioGenerator steps through a sequence of notes, one per interval.
type ArpeggioGenerator struct {
	sr      beep.SampleRate
	notes   []float64
	noteLen int
	pos     int
}

// NewArpeggioGenerator creates a note sequence with the given per-note length.
func NewArpeggioGenerator(sr beep.SampleRate, notes []float64, per time.Duration) *ArpeggioGenerator {
	return &ArpeggioGenerator{
		sr:      sr,
		notes:   notes,
		noteLen: sr.N(per),
	}
}

func (g *ArpeggioGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		idx := g.pos / g.noteLen
		if idx >= len(g.notes) {
			idx = len(g.notes) - 1
		}
		freq := g.notes[idx]

		notePos := g.pos % g.noteLen
		t := float64(notePos) / float64(g.sr)

		// Each note gets its own decay so steps stay distinct.
		envelope := math.Exp(-t * 10)
		sample := 0.2 * envelope * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ArpeggioGenerator) Err() error {
	return nil
}
