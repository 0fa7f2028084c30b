// Package music rotates background tracks loaded from a directory.
// Decoding and playback live in the frontends; this package only knows the
// Track contract and the rotation order.
package music

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
)

// ErrNoTracks is returned when no playable track could be found.
var ErrNoTracks = errors.New("music: no playable tracks")

// Track is one decoded music stream owned by an audio backend.
type Track interface {
	// Name identifies the track in logs, usually the file name.
	Name() string
	// Play starts or resumes playback.
	Play() error
	// Stop halts playback and rewinds to the beginning.
	Stop() error
	// Progress returns the played fraction in [0, 1].
	Progress() float64
	// Close releases the decoder and player.
	Close() error
}

// Playlist plays tracks one after another, wrapping at the end.
type Playlist struct {
	tracks  []Track
	current int
	started bool
	logger  *log.Logger
}

// NewPlaylist creates a playlist starting at a random track.
func NewPlaylist(tracks []Track, rng *rand.Rand, logger *log.Logger) (*Playlist, error) {
	if len(tracks) == 0 {
		return nil, ErrNoTracks
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Playlist{
		tracks:  tracks,
		current: rng.Intn(len(tracks)),
		logger:  logger,
	}, nil
}

// Update keeps the current track playing and moves to the next one once it
// has finished. The first call starts playback.
func (p *Playlist) Update() error {
	if !p.started {
		p.started = true
		return p.play()
	}

	if p.tracks[p.current].Progress() < 1.0 {
		return nil
	}

	if err := p.tracks[p.current].Stop(); err != nil {
		return fmt.Errorf("music: stop %s: %w", p.tracks[p.current].Name(), err)
	}
	p.current = (p.current + 1) % len(p.tracks)
	return p.play()
}

func (p *Playlist) play() error {
	t := p.tracks[p.current]
	p.logger.Debug("playing track", "name", t.Name(), "index", p.current)
	if err := t.Play(); err != nil {
		return fmt.Errorf("music: play %s: %w", t.Name(), err)
	}
	return nil
}

// Current returns the index of the playing track.
func (p *Playlist) Current() int {
	return p.current
}

// Len returns the number of tracks.
func (p *Playlist) Len() int {
	return len(p.tracks)
}

// Close closes every track.
func (p *Playlist) Close() error {
	var errs []error
	for _, t := range p.tracks {
		if err := t.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
