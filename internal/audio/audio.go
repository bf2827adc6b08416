// Package audio turns game sound cues into short synthesized tones played
// through the system speaker.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/vovakirdan/smash-out/internal/core"
)

const (
	sampleRate = beep.SampleRate(44100)
	amplitude  = 0.25
	release    = 8 * time.Millisecond
)

type wave int

const (
	waveSquare wave = iota
	waveSine
)

// note is a single tone of a cue.
type note struct {
	freq     float64
	duration time.Duration
	wave     wave
}

// cueNotes maps each cue to the tones it plays in sequence.
var cueNotes = map[core.Cue][]note{
	core.CueWallHit:   {{440, 30 * time.Millisecond, waveSquare}},
	core.CuePaddleHit: {{880, 50 * time.Millisecond, waveSquare}},
	core.CueBrickHit:  {{1320, 40 * time.Millisecond, waveSquare}},
	core.CueLifeLost: {
		{440, 90 * time.Millisecond, waveSquare},
		{330, 90 * time.Millisecond, waveSquare},
		{220, 140 * time.Millisecond, waveSquare},
	},
	core.CueGameOver: {
		{392, 150 * time.Millisecond, waveSine},
		{330, 150 * time.Millisecond, waveSine},
		{262, 150 * time.Millisecond, waveSine},
		{196, 300 * time.Millisecond, waveSine},
	},
	core.CuePowerUp: {
		{523, 60 * time.Millisecond, waveSquare},
		{659, 60 * time.Millisecond, waveSquare},
		{784, 60 * time.Millisecond, waveSquare},
		{1047, 90 * time.Millisecond, waveSquare},
	},
}

// Player plays cues on the speaker. It is safe for concurrent use.
type Player struct {
	mu     sync.Mutex
	volume float64
	open   bool
}

// Open initializes the speaker and returns a player at the given volume.
func Open(volume float64) (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/30)); err != nil {
		return nil, fmt.Errorf("audio: cannot initialize speaker: %w", err)
	}
	return &Player{volume: core.ClampF(volume, 0, 1), open: true}, nil
}

// Play starts the cue and returns immediately.
func (p *Player) Play(c core.Cue) {
	p.mu.Lock()
	open, volume := p.open, p.volume
	p.mu.Unlock()

	if !open || volume <= 0 {
		return
	}
	if s := Stream(c, volume); s != nil {
		speaker.Play(s)
	}
}

// SetVolume sets the master volume in [0, 1].
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	p.volume = core.ClampF(v, 0, 1)
	p.mu.Unlock()
}

// Volume returns the master volume.
func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}

// Close shuts the speaker down. Further cues are ignored.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.open {
		speaker.Close()
		p.open = false
	}
}

// Stream builds the streamer for a cue at the given volume, or nil for an
// unknown cue.
func Stream(c core.Cue, volume float64) beep.Streamer {
	notes, ok := cueNotes[c]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, tone(n))
	}
	return &effects.Gain{
		Streamer: beep.Seq(parts...),
		Gain:     core.ClampF(volume, 0, 1) - 1,
	}
}

// tone generates one note with a short linear release to avoid clicks.
func tone(n note) beep.Streamer {
	total := sampleRate.N(n.duration)
	fade := min(sampleRate.N(release), total)
	phase := 0.0
	step := n.freq / float64(sampleRate)
	i := 0

	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for j := range samples {
			if i >= total {
				return j, j > 0
			}
			var val float64
			switch n.wave {
			case waveSine:
				val = math.Sin(2 * math.Pi * phase)
			default:
				val = 1
				if phase >= 0.5 {
					val = -1
				}
			}
			val *= amplitude
			if left := total - i; left < fade {
				val *= float64(left) / float64(fade)
			}
			samples[j][0] = val
			samples[j][1] = val

			phase += step
			if phase >= 1 {
				phase--
			}
			i++
		}
		return len(samples), true
	})
}

// Silent discards every cue. Used when audio is muted or unavailable, and
// for SSH sessions where the speaker belongs to the server.
type Silent struct{}

// Play implements smashout.CueSink.
func (Silent) Play(core.Cue) {}
