// Package feedback plays short tones for sheet interactions
package feedback

import (
	"log"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Player emits interaction cues, implementations must be safe to call from the UI goroutine
type Player interface {
	// Click plays on selection
	Click()
	// Snap plays when a column or row resize lands
	Snap()
}

// Nop is a silent Player
type Nop struct{}

func (Nop) Click() {}
func (Nop) Snap()  {}

// Settings configures tone pitch, length and loudness
type Settings struct {
	Frequency float64
	Duration  time.Duration
	Volume    float64 // linear gain, 0 is silent
}

// SpeakerPlayer mixes tones into the system audio device
type SpeakerPlayer struct {
	mixer    *beep.Mixer
	settings Settings
}

// NewSpeakerPlayer initializes the speaker, returns Nop when the device is unavailable
func NewSpeakerPlayer(settings Settings) Player {
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		log.Printf("feedback: audio disabled: %v", err)
		return Nop{}
	}
	p := &SpeakerPlayer{mixer: &beep.Mixer{}, settings: settings}
	speaker.Play(p.mixer)
	return p
}

// Click plays the base tone
func (p *SpeakerPlayer) Click() {
	p.play(p.settings.Frequency, p.settings.Duration)
}

// Snap plays a fifth above the base tone, twice as long
func (p *SpeakerPlayer) Snap() {
	p.play(p.settings.Frequency*1.5, 2*p.settings.Duration)
}

func (p *SpeakerPlayer) play(freq float64, d time.Duration) {
	s, err := Tone(sampleRate, freq, d)
	if err != nil {
		log.Printf("feedback: tone %vHz: %v", freq, err)
		return
	}
	s = withVolume(Fade(s, sampleRate.N(d), sampleRate.N(d/4)), p.settings.Volume)

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close drops pending tones and releases the audio device
func (p *SpeakerPlayer) Close() {
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

// Tone returns a sine wave of freq lasting d at sample rate sr
func Tone(sr beep.SampleRate, freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, err
	}
	return beep.Take(sr.N(d), sine), nil
}

// fade applies a linear release over the last release samples of a total-sample stream
type fade struct {
	streamer beep.Streamer
	position int
	total    int
	release  int
}

// Fade ramps the tail of s to zero, removing the click of a hard cut
func Fade(s beep.Streamer, total, release int) beep.Streamer {
	return &fade{streamer: s, total: total, release: min(release, total)}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	start := f.total - f.release
	for i := 0; i < n; i++ {
		if f.release > 0 && f.position >= start {
			vol := float64(f.total-f.position) / float64(f.release)
			vol = max(vol, 0)
			samples[i][0] *= vol
			samples[i][1] *= vol
		}
		f.position++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// withVolume scales s by a linear gain
// math.Log2(0) is -Inf, zero gain is expressed as silent
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}
