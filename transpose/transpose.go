package transpose

import (
	"math"

	"github.com/xstraven/brasscoach/model"
)

// BbTrumpet is the standard transpose block for Bb trumpet: written pitch
// sounds a whole step lower.
func BbTrumpet() model.TransposeInfo {
	return model.TransposeInfo{Chromatic: -2, Diatonic: -1}
}

// WrittenToConcert maps a written MIDI note to its sounding pitch.
// MusicXML chromatic is the written-to-sounding offset, so written C4 (60)
// on Bb trumpet sounds as concert Bb3 (58).
func WrittenToConcert(midiWritten int, t model.TransposeInfo) int {
	return midiWritten + t.Chromatic + 12*t.OctaveChange
}

// ConcertToWritten is the inverse: concert A4 (69) reads as written B4 (71)
// on Bb trumpet.
func ConcertToWritten(midiConcert int, t model.TransposeInfo) int {
	return midiConcert - t.Chromatic - 12*t.OctaveChange
}

// ConcertToWrittenFloat shifts a fractional MIDI detection into the
// written frame before comparison with score notes.
func ConcertToWrittenFloat(midiConcert float64, t model.TransposeInfo) float64 {
	return midiConcert - float64(t.Chromatic) - 12*float64(t.OctaveChange)
}

// FreqToWrittenMidi converts a detected frequency (always concert pitch)
// to a written-frame fractional MIDI value.
func FreqToWrittenMidi(freqHz float64, t model.TransposeInfo) float64 {
	concert := 69.0 + 12.0*math.Log2(freqHz/440.0)
	return ConcertToWrittenFloat(concert, t)
}
