package pitch

import (
	"math"

	"github.com/xstraven/brasscoach/model"
)

// Trumpet band in concert pitch.
const (
	MinFreq = 80.0
	MaxFreq = 1200.0
)

const (
	yinThreshold    = 0.15
	rmsFloor        = 0.02
	confidenceFloor = 0.1
)

func silence() model.PitchResult {
	return model.PitchResult{}
}

// Detect estimates the fundamental frequency of one mono sample window
// using the YIN cumulative mean normalized difference function. Windows of
// 2048 samples or more give reliable results down to MinFreq. Returns a
// zero result when the window holds no usable periodicity.
func Detect(samples []float64, sampleRate float64) model.PitchResult {
	if len(samples) < 2 || sampleRate <= 0 {
		return silence()
	}

	var mean float64
	for _, s := range samples {
		mean += s
	}
	mean /= float64(len(samples))

	var energy float64
	for _, s := range samples {
		v := s - mean
		energy += v * v
	}
	rms := math.Sqrt(energy / float64(len(samples)))
	if rms < rmsFloor {
		return silence()
	}

	minLag := int(math.Ceil(sampleRate / MaxFreq))
	maxLag := int(math.Floor(sampleRate / MinFreq))

	halfLen := len(samples) / 2
	if maxLag > halfLen {
		maxLag = halfLen
	}
	if minLag < 1 {
		minLag = 1
	}
	if minLag >= maxLag || maxLag < 2 {
		return silence()
	}

	// squared difference function over the front half of the window
	diff := make([]float64, maxLag+1)
	for tau := 1; tau <= maxLag; tau++ {
		var sum float64
		for j := 0; j < halfLen; j++ {
			d := samples[j] - samples[j+tau]
			sum += d * d
		}
		diff[tau] = sum
	}

	// cumulative mean normalized difference
	cmnd := make([]float64, maxLag+1)
	cmnd[0] = 1
	var runningSum float64
	for tau := 1; tau <= maxLag; tau++ {
		runningSum += diff[tau]
		if runningSum > 0 {
			cmnd[tau] = diff[tau] * float64(tau) / runningSum
		} else {
			cmnd[tau] = 1
		}
	}

	// first dip under the threshold, walked forward to its local minimum
	bestTau := 0
	for tau := minLag; tau <= maxLag; tau++ {
		if cmnd[tau] < yinThreshold {
			t := tau
			for t+1 <= maxLag && cmnd[t+1] < cmnd[t] {
				t++
			}
			bestTau = t
			break
		}
	}

	if bestTau == 0 {
		minVal := math.MaxFloat64
		for tau := minLag; tau <= maxLag; tau++ {
			if cmnd[tau] < minVal {
				minVal = cmnd[tau]
				bestTau = tau
			}
		}
		if minVal > 0.5 {
			return silence()
		}
	}

	// parabolic interpolation for sub-sample lag
	tauRefined := float64(bestTau)
	if bestTau > 0 && bestTau < maxLag {
		alpha := cmnd[bestTau-1]
		beta := cmnd[bestTau]
		gamma := cmnd[bestTau+1]
		denom := 2 * (2*beta - alpha - gamma)
		if math.Abs(denom) > 1e-10 {
			tauRefined = float64(bestTau) + (gamma-alpha)/denom
		}
	}
	if tauRefined <= 0 {
		return silence()
	}

	hz := sampleRate / tauRefined
	confidence := 1 - cmnd[bestTau]
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}

	if hz < MinFreq || hz > MaxFreq || confidence < confidenceFloor {
		return silence()
	}

	return model.PitchResult{
		Hz:         hz,
		Confidence: confidence,
		MidiFloat:  MidiFromFreq(hz),
	}
}

// MidiFromFreq converts a frequency to a fractional MIDI number
// (A4 = 440 Hz = 69). The caller must gate on hz > 0.
func MidiFromFreq(hz float64) float64 {
	return 69 + 12*math.Log2(hz/440)
}
