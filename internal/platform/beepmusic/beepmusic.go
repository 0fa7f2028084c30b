// Package beepmusic decodes music files for the terminal frontend and plays
// them through the beep speaker.
package beepmusic

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/vorbis"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/dodger/internal/music"
)

const sampleRate = beep.SampleRate(44100)

// InitSpeaker opens the audio device. It must be called once before any
// track plays.
func InitSpeaker() error {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("beepmusic: cannot open audio device: %w", err)
	}
	return nil
}

// beepTrack is one decoded file played through the shared speaker.
// The speaker mixes on its own goroutine, so every access to the stream
// happens under speaker.Lock.
type beepTrack struct {
	name   string
	stream beep.StreamSeekCloser
	ctrl   *beep.Ctrl
}

func (t *beepTrack) Name() string { return t.name }

func (t *beepTrack) Play() error {
	speaker.Lock()
	t.ctrl.Paused = false
	speaker.Unlock()

	speaker.Clear()
	speaker.Play(t.ctrl)
	return nil
}

func (t *beepTrack) Stop() error {
	speaker.Lock()
	defer speaker.Unlock()
	t.ctrl.Paused = true
	return t.stream.Seek(0)
}

func (t *beepTrack) Progress() float64 {
	speaker.Lock()
	defer speaker.Unlock()
	n := t.stream.Len()
	if n <= 0 {
		return 1
	}
	return float64(t.stream.Position()) / float64(n)
}

func (t *beepTrack) Close() error {
	return t.stream.Close()
}

// volumeEffect maps a linear 0..1 volume onto beep's logarithmic scale.
func volumeEffect(s beep.Streamer, volume float64) beep.Streamer {
	if volume >= 1 {
		return s
	}
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   math.Log2(math.Max(volume, 1e-3)),
		Silent:   volume <= 0,
	}
}

// Loaders returns the decoders for the terminal audio backend.
func Loaders(volume float64) music.Loaders {
	decode := func(fn func(io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error)) music.Loader {
		return func(path string) (music.Track, error) {
			f, err := os.Open(path)
			if err != nil {
				return nil, err
			}
			stream, format, err := fn(f)
			if err != nil {
				f.Close()
				return nil, err
			}
			var s beep.Streamer = stream
			if format.SampleRate != sampleRate {
				s = beep.Resample(4, format.SampleRate, sampleRate, s)
			}
			return &beepTrack{
				name:   filepath.Base(path),
				stream: stream,
				ctrl:   &beep.Ctrl{Streamer: volumeEffect(s, volume), Paused: true},
			}, nil
		}
	}

	return music.Loaders{
		".mp3": decode(mp3.Decode),
		".ogg": decode(vorbis.Decode),
		".wav": decode(func(rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) {
			return wav.Decode(rc)
		}),
	}
}
