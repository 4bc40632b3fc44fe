package main

import (
	"bytes"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/KaiqueGovani/termtris/internal/tetris"
)

type SoundEvent int

const (
	SoundLock SoundEvent = iota
	SoundLine1
	SoundLine2
	SoundLine3
	SoundLine4
	SoundRotate
	SoundMove
	SoundMenuMove
	SoundMenuSelect
	SoundGameOver
)

// SoundEngine plays short synthesized cues. A nil context makes it silent.
type SoundEngine struct {
	mu         sync.RWMutex
	enabled    bool
	sampleRate int
	ctx        *oto.Context
	volume     float64
}

func NewSoundEngine(ctx *oto.Context, sampleRate int, enabled bool) *SoundEngine {
	return &SoundEngine{
		enabled:    enabled,
		sampleRate: sampleRate,
		ctx:        ctx,
		volume:     0.7,
	}
}

func (s *SoundEngine) SetEnabled(enabled bool) {
	if s == nil {
		return
	}
	s.mu.Lock()
	s.enabled = enabled
	s.mu.Unlock()
}

func (s *SoundEngine) SetVolume(volume float64) {
	if s == nil {
		return
	}
	s.mu.Lock()
	s.volume = clampVolume(volume)
	s.mu.Unlock()
}

func (s *SoundEngine) Play(event SoundEvent) {
	if s == nil {
		return
	}
	s.mu.RLock()
	ctx := s.ctx
	enabled := s.enabled
	volume := s.volume
	s.mu.RUnlock()
	if !enabled || ctx == nil {
		return
	}
	sequence := tonesForEvent(event)
	if len(sequence) == 0 {
		return
	}
	go func() {
		buffer := renderToneSequence(sequence, s.sampleRate, volume)
		player := ctx.NewPlayer(bytes.NewReader(buffer))
		player.Play()
		for player.IsPlaying() {
			time.Sleep(5 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			DebugLogf("sound player close: %v", err)
		}
	}()
}

// soundEventForStep picks the cue for a drop step. Plain gravity moves are
// silent.
func soundEventForStep(result tetris.StepResult) (SoundEvent, bool) {
	switch {
	case result.GameOver:
		return SoundGameOver, true
	case result.Cleared >= 4:
		return SoundLine4, true
	case result.Cleared == 3:
		return SoundLine3, true
	case result.Cleared == 2:
		return SoundLine2, true
	case result.Cleared == 1:
		return SoundLine1, true
	case result.Locked:
		return SoundLock, true
	default:
		return SoundLock, false
	}
}

type toneSpec struct {
	frequency float64
	duration  time.Duration
	volume    float64
}

func tonesForEvent(event SoundEvent) []toneSpec {
	switch event {
	case SoundLock:
		return []toneSpec{{frequency: 220, duration: 70 * time.Millisecond, volume: 0.3}}
	case SoundLine1:
		return []toneSpec{{frequency: 440, duration: 90 * time.Millisecond, volume: 0.3}}
	case SoundLine2:
		return []toneSpec{
			{frequency: 440, duration: 70 * time.Millisecond, volume: 0.3},
			{frequency: 660, duration: 90 * time.Millisecond, volume: 0.3},
		}
	case SoundLine3:
		return []toneSpec{
			{frequency: 440, duration: 70 * time.Millisecond, volume: 0.3},
			{frequency: 660, duration: 70 * time.Millisecond, volume: 0.3},
			{frequency: 880, duration: 90 * time.Millisecond, volume: 0.3},
		}
	case SoundLine4:
		return []toneSpec{
			{frequency: 660, duration: 80 * time.Millisecond, volume: 0.3},
			{frequency: 880, duration: 80 * time.Millisecond, volume: 0.3},
			{frequency: 990, duration: 120 * time.Millisecond, volume: 0.3},
		}
	case SoundRotate:
		return []toneSpec{{frequency: 520, duration: 40 * time.Millisecond, volume: 0.25}}
	case SoundMove:
		return []toneSpec{{frequency: 380, duration: 25 * time.Millisecond, volume: 0.18}}
	case SoundMenuMove:
		return []toneSpec{{frequency: 260, duration: 24 * time.Millisecond, volume: 0.16}}
	case SoundMenuSelect:
		return []toneSpec{{frequency: 520, duration: 70 * time.Millisecond, volume: 0.2}}
	case SoundGameOver:
		return []toneSpec{
			{frequency: 330, duration: 120 * time.Millisecond, volume: 0.28},
			{frequency: 247, duration: 120 * time.Millisecond, volume: 0.28},
			{frequency: 180, duration: 220 * time.Millisecond, volume: 0.28},
		}
	default:
		return nil
	}
}

const (
	bytesPerFrame = 4
	toneGap       = 10 * time.Millisecond
)

func samplesFor(d time.Duration, sampleRate int) int {
	return int(float64(sampleRate) * d.Seconds())
}

// renderToneSequence renders 16-bit little-endian stereo PCM with a short
// silence between tones.
func renderToneSequence(sequence []toneSpec, sampleRate int, masterVolume float64) []byte {
	gapSamples := samplesFor(toneGap, sampleRate)
	totalSamples := 0
	for i, spec := range sequence {
		totalSamples += samplesFor(spec.duration, sampleRate)
		if i < len(sequence)-1 {
			totalSamples += gapSamples
		}
	}
	buffer := make([]byte, totalSamples*bytesPerFrame)
	index := 0
	for i, spec := range sequence {
		volume := 0.3
		if spec.volume > 0 {
			volume = spec.volume
		}
		volume *= clampVolume(masterVolume)
		renderTone(buffer, index, spec, sampleRate, volume)
		index += samplesFor(spec.duration, sampleRate) * bytesPerFrame
		if i < len(sequence)-1 {
			index += gapSamples * bytesPerFrame
		}
	}
	return buffer
}

func renderTone(buffer []byte, start int, spec toneSpec, sampleRate int, volume float64) {
	const maxInt16 = 1<<15 - 1
	samples := samplesFor(spec.duration, sampleRate)
	fadeSamples := int(float64(sampleRate) * 0.003)
	for i := 0; i < samples; i++ {
		env := 1.0
		if fadeSamples > 0 {
			if i < fadeSamples {
				env = float64(i) / float64(fadeSamples)
			} else if i > samples-fadeSamples {
				env = float64(samples-i) / float64(fadeSamples)
			}
		}
		sample := math.Sin(2 * math.Pi * spec.frequency * float64(i) / float64(sampleRate))
		value := int16(sample * volume * env * maxInt16)
		offset := start + i*bytesPerFrame
		buffer[offset] = byte(value)
		buffer[offset+1] = byte(value >> 8)
		buffer[offset+2] = byte(value)
		buffer[offset+3] = byte(value >> 8)
	}
}

func clampVolume(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}

func volumeFromPercent(value int) float64 {
	return float64(clampVolumePercent(value)) / 100
}
