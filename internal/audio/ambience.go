// Package audio synthesises the night-city ambience as raw PCM.
package audio

import (
	"math"

	"citynight/internal/city"
)

// Output format: float32 little-endian, interleaved stereo.
const (
	SampleRate   = 44100
	ChannelCount = 2
)

// Ambience parameters.
const (
	noiseCutoff = 0.015 // one-pole low-pass coefficient, a distant traffic rumble
	noiseGain   = 4.0
	humFreq     = 55.0 // mains hum
	swellPeriod = 11.0 // seconds
)

const bytesPerFrame = ChannelCount * 4

// Ambience is an endless stream of low city noise as float32 LE stereo frames.
type Ambience struct {
	rng   *city.Rand
	frame int
	lpL   float64
	lpR   float64
}

func NewAmbience(seed uint64) *Ambience {
	return &Ambience{rng: city.NewRand(city.Mix(seed, 0xA0D10))}
}

// Read fills whole frames only and never returns io.EOF.
func (a *Ambience) Read(p []byte) (int, error) {
	n := len(p) / bytesPerFrame
	for i := 0; i < n; i++ {
		l, r := a.next()
		putStereoF32LR(p, i, l, r)
	}
	return n * bytesPerFrame, nil
}

func (a *Ambience) next() (float64, float64) {
	t := float64(a.frame) / SampleRate
	a.frame++

	a.lpL += noiseCutoff * (a.rng.RangeF(-1, 1) - a.lpL)
	a.lpR += noiseCutoff * (a.rng.RangeF(-1, 1) - a.lpR)

	swell := 0.65 + 0.35*math.Sin(2*math.Pi*t/swellPeriod)
	hum := 0.12*math.Sin(2*math.Pi*humFreq*t) + 0.05*math.Sin(2*math.Pi*humFreq*2.01*t)

	l := math.Tanh(swell*noiseGain*a.lpL + hum)
	r := math.Tanh(swell*noiseGain*a.lpR + hum)
	return l, r
}

// putStereoF32LR writes independent left/right samples in [-1,1] at frame i.
func putStereoF32LR(buf []byte, i int, left, right float64) {
	lv := math.Float32bits(float32(left))
	rv := math.Float32bits(float32(right))
	buf[i*8] = byte(lv)
	buf[i*8+1] = byte(lv >> 8)
	buf[i*8+2] = byte(lv >> 16)
	buf[i*8+3] = byte(lv >> 24)
	buf[i*8+4] = byte(rv)
	buf[i*8+5] = byte(rv >> 8)
	buf[i*8+6] = byte(rv >> 16)
	buf[i*8+7] = byte(rv >> 24)
}
