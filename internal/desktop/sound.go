//go:build !android

package desktop

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"citynight/internal/audio"
)

const audioReadyTimeout = 2 * time.Second

// Sound owns the audio context and the single ambience player.
type Sound struct {
	ctx   *oto.Context
	ready chan struct{}

	mu     sync.Mutex
	player oto.Player
}

// InitSound opens the audio device.
func InitSound() (*Sound, error) {
	ctx, ready, err := oto.NewContext(audio.SampleRate, audio.ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, err
	}
	return &Sound{ctx: ctx, ready: ready}, nil
}

// StartAmbience starts the looping city hum, replacing any previous one.
func (s *Sound) StartAmbience(seed uint64, volume float64) error {
	select {
	case <-s.ready:
	case <-time.After(audioReadyTimeout):
		return errors.New("audio device not ready")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.player != nil {
		s.player.Close()
	}
	p := s.ctx.NewPlayer(audio.NewAmbience(seed))
	p.SetVolume(clampF(volume, 0, 1))
	p.Play()
	s.player = p
	slog.Debug("ambience started", "volume", volume)
	return nil
}

// Close stops playback.
func (s *Sound) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.player != nil {
		if err := s.player.Close(); err != nil {
			slog.Warn("close ambience player", "error", err)
		}
		s.player = nil
	}
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
