package sound

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Blast cue timings
const (
	blastDuration = 350 * time.Millisecond
	blastAttack   = 5 * time.Millisecond
	blastRelease  = 300 * time.Millisecond
	thumpFreq     = 55.0
)

type wave int

const (
	waveSine wave = iota
	waveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     wave
	rate     beep.SampleRate
	rng      *rand.Rand
}

func newOscillator(freq float64, duration time.Duration, w wave, rate beep.SampleRate, rng *rand.Rand) *oscillator {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     w,
		rate:     rate,
		rng:      rng,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case waveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case waveNoise:
			val = o.rng.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	releaseStart int
	release      int
	total        int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) *envelope {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	if att+rel > total {
		rel = total - att
	}
	return &envelope{
		streamer:     s,
		attack:       att,
		release:      rel,
		releaseStart: total - rel,
		total:        total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		} else if e.position >= e.releaseStart && e.release > 0 {
			vol = float64(e.total-e.position) / float64(e.release)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; zero or less is silence
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Blast synthesises one explosion: a noise burst over a low thump.
func Blast(rate beep.SampleRate, volume float64, rng *rand.Rand) beep.Streamer {
	noise := newEnvelope(newOscillator(0, blastDuration, waveNoise, rate, rng),
		blastDuration, blastAttack, blastRelease, rate)
	thump := newEnvelope(newOscillator(thumpFreq, blastDuration, waveSine, rate, rng),
		blastDuration, blastAttack, blastRelease, rate)

	mixed := beep.Mix(
		newVolume(noise, 0.6),
		newVolume(thump, 0.4),
	)
	return beep.Take(rate.N(blastDuration), newVolume(mixed, volume))
}
