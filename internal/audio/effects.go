package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// waveform selects the shape of a voice
type waveform int

const (
	waveSine waveform = iota
	waveSquare
	waveSaw
	waveNoise
)

// at returns the waveform's value at phase p in [0, 1).
func (w waveform) at(p float64, rng *rand.Rand) float64 {
	switch w {
	case waveSquare:
		if p < 0.5 {
			return 1
		}
		return -1
	case waveSaw:
		return 2*p - 1
	case waveNoise:
		return rng.Float64()*2 - 1
	}
	return math.Sin(2 * math.Pi * p)
}

// voice plays a single pitch for a fixed number of samples.
type voice struct {
	shape waveform
	step  float64 // Phase advance per sample
	phase float64
	left  int
	rng   *rand.Rand
}

func newVoice(freq float64, d time.Duration, shape waveform, rate beep.SampleRate) *voice {
	return &voice{
		shape: shape,
		step:  freq / float64(rate),
		left:  rate.N(d),
		rng:   rand.New(rand.NewSource(int64(freq*1000) + int64(d))), //nolint:gosec // audio noise, not security
	}
}

// Stream fills at most the remaining length. It only reports false once
// nothing is left, so a short final chunk is never dropped.
func (v *voice) Stream(samples [][2]float64) (int, bool) {
	if v.left <= 0 {
		return 0, false
	}
	n := min(len(samples), v.left)
	for i := range samples[:n] {
		val := v.shape.at(v.phase, v.rng)
		samples[i] = [2]float64{val, val}
		v.phase = math.Mod(v.phase+v.step, 1)
	}
	v.left -= n
	return n, true
}

func (v *voice) Err() error { return nil }

// envelope cuts src to a fixed length and ramps its gain in and out.
type envelope struct {
	src          beep.Streamer
	pos          int
	total        int
	attack       int
	release      int
	releaseStart int
}

func newEnvelope(src beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) *envelope {
	total := rate.N(d)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		src:          src,
		total:        total,
		attack:       att,
		release:      rel,
		releaseStart: max(total-rel, att),
	}
}

func (e *envelope) gain() float64 {
	switch {
	case e.pos >= e.releaseStart && e.release > 0:
		return max(float64(e.total-e.pos)/float64(e.release), 0)
	case e.pos < e.attack:
		return float64(e.pos) / float64(e.attack)
	}
	return 1
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	rest := e.total - e.pos
	if rest <= 0 {
		return 0, false
	}
	if len(samples) > rest {
		samples = samples[:rest]
	}

	n, ok := e.src.Stream(samples)
	for i := range samples[:n] {
		g := e.gain()
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok || n > 0
}

func (e *envelope) Err() error { return e.src.Err() }

// newVolume wraps s in a linear gain. math.Log2(0) is -Inf, so zero is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is one note of a sound effect.
type tone struct {
	freq float64
	dur  time.Duration
	wave waveform
}

const (
	toneAttack     = 4 * time.Millisecond
	toneMaxRelease = 40 * time.Millisecond
)

// Note frequencies (Hz)
const (
	noteG3 = 196.00
	noteC4 = 261.63
	noteE4 = 329.63
	noteG4 = 392.00
	noteA4 = 440.00
	noteC5 = 523.25
	noteE5 = 659.25
	noteG5 = 783.99
	noteA5 = 880.00
	noteC6 = 1046.50
)

var recipes = [soundCount][]tone{
	SoundBounce: {
		{noteE5, 45 * time.Millisecond, waveSquare},
	},
	SoundScoreLeft: {
		{noteC5, 90 * time.Millisecond, waveSquare},
		{noteG5, 150 * time.Millisecond, waveSquare},
	},
	SoundScoreRight: {
		{noteG4, 90 * time.Millisecond, waveSquare},
		{noteC4, 170 * time.Millisecond, waveSquare},
	},
	SoundWin: {
		{noteC5, 120 * time.Millisecond, waveSine},
		{noteE5, 120 * time.Millisecond, waveSine},
		{noteG5, 120 * time.Millisecond, waveSine},
		{noteC6, 360 * time.Millisecond, waveSine},
	},
	SoundLose: {
		{noteG4, 150 * time.Millisecond, waveSaw},
		{noteE4, 150 * time.Millisecond, waveSaw},
		{noteC4, 150 * time.Millisecond, waveSaw},
		{noteG3, 420 * time.Millisecond, waveSaw},
	},
	SoundGameOver: {
		{0, 180 * time.Millisecond, waveNoise},
		{noteC4, 220 * time.Millisecond, waveSquare},
		{noteG3, 380 * time.Millisecond, waveSquare},
	},
	SoundStartup: {
		{noteA4, 80 * time.Millisecond, waveSine},
		{noteE5, 80 * time.Millisecond, waveSine},
		{noteA5, 180 * time.Millisecond, waveSine},
	},
}

// Duration returns the length of a sound effect.
func Duration(id SoundID) time.Duration {
	if !id.valid() {
		return 0
	}
	var total time.Duration
	for _, t := range recipes[id] {
		total += t.dur
	}
	return total
}

// Build synthesizes a sound effect at the given volume.
// It returns nil for an unknown id.
func Build(id SoundID, rate beep.SampleRate, volume float64) beep.Streamer {
	if !id.valid() {
		return nil
	}

	notes := make([]beep.Streamer, 0, len(recipes[id]))
	for _, t := range recipes[id] {
		release := min(t.dur/2, toneMaxRelease)
		notes = append(notes, newEnvelope(newVoice(t.freq, t.dur, t.wave, rate), t.dur, toneAttack, release, rate))
	}
	return newVolume(beep.Seq(notes...), volume)
}
