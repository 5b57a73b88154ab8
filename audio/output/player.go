// Package output plays sound cues on the system speaker.
package output

import (
	"log"
	"time"

	"turn-snake/audio"

	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
)

// Player plays short cues. A Player whose speaker failed to start, or that
// was created muted, stays silent.
type Player struct {
	enabled bool
}

// NewPlayer starts the speaker unless muted. Sound is optional, so an
// initialisation failure is logged and yields a silent player.
func NewPlayer(muted bool) *Player {
	if muted {
		return &Player{}
	}
	if err := speaker.Init(audio.SampleRate, audio.SampleRate.N(time.Second/10)); err != nil {
		log.Printf("audio: %v", errors.Wrap(err, "speaker init"))
		return &Player{}
	}
	return &Player{enabled: true}
}

func (p *Player) Enabled() bool {
	return p.enabled
}

// Chirp plays the food cue.
func (p *Player) Chirp() {
	if !p.enabled {
		return
	}
	tone, err := audio.Chirp()
	if err != nil {
		log.Printf("audio: %v", err)
		return
	}
	speaker.Play(tone)
}

func (p *Player) Close() {
	if p.enabled {
		speaker.Close()
		p.enabled = false
	}
}
