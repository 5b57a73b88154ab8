// Package audio builds the game's sound cues.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/pkg/errors"
)

const (
	SampleRate    = beep.SampleRate(44100)
	chirpFreq     = 880
	chirpDuration = 50 * time.Millisecond
)

// Chirp is the short sine beep played when food is eaten.
func Chirp() (beep.Streamer, error) {
	sine, err := generators.SineTone(SampleRate, chirpFreq)
	if err != nil {
		return nil, errors.Wrap(err, "sine tone")
	}
	return beep.Take(SampleRate.N(chirpDuration), sine), nil
}
