package window

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/vovakirdan/dodger/internal/music"
)

const (
	sampleRate = 44100
	// Decoded streams are 16-bit stereo.
	bytesPerSecond = sampleRate * 4
)

// lengthStream is what the ebiten decoders return.
type lengthStream interface {
	io.ReadSeeker
	Length() int64
}

// track plays one decoded file through the shared audio context.
type track struct {
	name     string
	player   *audio.Player
	duration time.Duration
}

func (t *track) Name() string { return t.name }

func (t *track) Play() error {
	t.player.Play()
	return nil
}

func (t *track) Stop() error {
	t.player.Pause()
	return t.player.SetPosition(0)
}

func (t *track) Progress() float64 {
	if t.duration <= 0 {
		return 1
	}
	return float64(t.player.Position()) / float64(t.duration)
}

func (t *track) Close() error {
	return t.player.Close()
}

// Loaders returns the decoders for the window audio backend.
// Tracks play through ctx, which the caller creates once per process with
// NewAudioContext.
func Loaders(ctx *audio.Context, volume float64) music.Loaders {
	decode := func(fn func([]byte) (lengthStream, error)) music.Loader {
		return func(path string) (music.Track, error) {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, err
			}
			stream, err := fn(data)
			if err != nil {
				return nil, err
			}
			player, err := ctx.NewPlayer(stream)
			if err != nil {
				return nil, fmt.Errorf("window: audio player: %w", err)
			}
			player.SetVolume(volume)
			return &track{
				name:     filepath.Base(path),
				player:   player,
				duration: time.Duration(stream.Length()) * time.Second / bytesPerSecond,
			}, nil
		}
	}

	return music.Loaders{
		".mp3": decode(func(b []byte) (lengthStream, error) {
			return mp3.DecodeWithSampleRate(sampleRate, bytes.NewReader(b))
		}),
		".ogg": decode(func(b []byte) (lengthStream, error) {
			return vorbis.DecodeWithSampleRate(sampleRate, bytes.NewReader(b))
		}),
		".wav": decode(func(b []byte) (lengthStream, error) {
			return wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(b))
		}),
	}
}

// NewAudioContext creates the process-wide audio context.
func NewAudioContext() *audio.Context {
	return audio.NewContext(sampleRate)
}
