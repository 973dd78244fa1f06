// Package audio synthesizes the charge hum and the fire blip
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// SoundManager is an effects sink that plays synthesized sounds. Every
// call is a no-op until Initialize succeeded, so the game runs without an
// audio device.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	hum         *beep.Ctrl
	initialized bool
	muted       bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// SetMuted silences new sounds and stops the hum
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
	if muted {
		sm.stopHumLocked()
	}
}

// Muted reports whether sound is muted
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// BeginChargeEffect starts the rising charge hum
func (sm *SoundManager) BeginChargeEffect() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	sm.stopHumLocked()
	ctrl := &beep.Ctrl{Streamer: NewHumGenerator(sampleRate)}
	sm.hum = ctrl
	speaker.Lock()
	sm.mixer.Add(ctrl)
	speaker.Unlock()
}

// EndChargeEffect stops the hum
func (sm *SoundManager) EndChargeEffect() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.stopHumLocked()
}

// PlayFireSound plays a short descending blip
func (sm *SoundManager) PlayFireSound() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	s := beep.Take(sampleRate.N(blipDuration), NewBlipGenerator(sampleRate))
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.stopHumLocked()
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// A nil streamer makes the mixer drop the ctrl
func (sm *SoundManager) stopHumLocked() {
	if sm.hum == nil {
		return
	}
	if sm.initialized {
		speaker.Lock()
		sm.hum.Streamer = nil
		speaker.Unlock()
	}
	sm.hum = nil
}

const (
	blipDuration = 120 * time.Millisecond
	humMaxTime   = 5.0 // seconds until the pitch stops rising
)

// HumGenerator is a soft square-ish tone whose pitch climbs while the shot
// charges. It never ends on its own.
type HumGenerator struct {
	sr    beep.SampleRate
	pos   int
	phase float64
}

// NewHumGenerator creates a charge hum generator
func NewHumGenerator(sr beep.SampleRate) *HumGenerator {
	return &HumGenerator{sr: sr}
}

func (g *HumGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		climb := math.Min(t/humMaxTime, 1)
		freq := 110 + 330*climb

		g.phase += 2 * math.Pi * freq / float64(g.sr)
		if g.phase > 2*math.Pi {
			g.phase -= 2 * math.Pi
		}

		// Fundamental plus a weak third harmonic, faded in over 50ms
		attack := math.Min(t/0.05, 1)
		sample := 0.08 * attack * (math.Sin(g.phase) + 0.3*math.Sin(3*g.phase))

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *HumGenerator) Err() error {
	return nil
}

// BlipGenerator is a fast downward sweep with an exponential decay
type BlipGenerator struct {
	sr    beep.SampleRate
	pos   int
	phase float64
}

// NewBlipGenerator creates a fire blip generator
func NewBlipGenerator(sr beep.SampleRate) *BlipGenerator {
	return &BlipGenerator{sr: sr}
}

func (g *BlipGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		freq := 880 * math.Exp(-t*12)

		g.phase += 2 * math.Pi * freq / float64(g.sr)
		if g.phase > 2*math.Pi {
			g.phase -= 2 * math.Pi
		}

		envelope := math.Exp(-t * 25)
		sample := 0.25 * envelope * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BlipGenerator) Err() error {
	return nil
}
