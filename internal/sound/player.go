package sound

import (
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"boomgrid/internal/config"
)

// minBlastGap stops a chain reaction from stacking dozens of cues in one frame
const minBlastGap = 60 * time.Millisecond

// Player plays the blast cue through the system speaker. A Player that was
// never initialised, or is muted, silently drops every cue.
type Player struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	volume      float64
	muted       bool
	mixer       *beep.Mixer
	rng         *rand.Rand
	logger      *slog.Logger
	initialized bool
	lastBlast   time.Time
	now         func() time.Time
}

// NewPlayer creates a player from the sound section of the config.
func NewPlayer(cfg config.SoundConfig, logger *slog.Logger) *Player {
	if logger == nil {
		logger = slog.Default()
	}
	return &Player{
		rate:   beep.SampleRate(cfg.SampleRate),
		volume: cfg.Volume,
		muted:  cfg.Muted,
		mixer:  &beep.Mixer{},
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		logger: logger.With("component", "sound"),
		now:    time.Now,
	}
}

// Init opens the speaker. Callers treat a failure as non-fatal.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || p.muted {
		return nil
	}

	if err := speaker.Init(p.rate, p.rate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker at %d Hz: %w", p.rate, err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	p.logger.Info("speaker ready", "sample_rate", int(p.rate))
	return nil
}

// PlayBlast queues one explosion cue.
func (p *Player) PlayBlast() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	now := p.now()
	if now.Sub(p.lastBlast) < minBlastGap {
		return
	}
	p.lastBlast = now

	cue := Blast(p.rate, p.volume, p.rng)
	speaker.Lock()
	p.mixer.Add(cue)
	speaker.Unlock()
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
