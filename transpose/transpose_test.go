package transpose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xstraven/brasscoach/model"
)

func TestConcertToWrittenBbTrumpet(t *testing.T) {
	tr := BbTrumpet()

	assert := assert.New(t)
	// Concert Bb3 (58) -> written C4 (60)
	assert.Equal(60, ConcertToWritten(58, tr))
	// Concert A4 (69) -> written B4 (71)
	assert.Equal(71, ConcertToWritten(69, tr))
}

func TestWrittenToConcertBbTrumpet(t *testing.T) {
	tr := BbTrumpet()

	assert := assert.New(t)
	assert.Equal(58, WrittenToConcert(60, tr))
	assert.Equal(69, WrittenToConcert(71, tr))
}

func TestRoundTrip(t *testing.T) {
	tr := BbTrumpet()
	for midi := 48; midi <= 84; midi++ {
		assert.Equal(t, midi, WrittenToConcert(ConcertToWritten(midi, tr), tr))
	}
}

func TestOctaveChange(t *testing.T) {
	tr := model.TransposeInfo{Chromatic: 0, OctaveChange: -1}
	assert.Equal(t, 48, WrittenToConcert(60, tr))
	assert.Equal(t, 60, ConcertToWritten(48, tr))
}

func TestIdentity(t *testing.T) {
	tr := model.TransposeInfo{}
	assert.Equal(t, 60, ConcertToWritten(60, tr))
	assert.Equal(t, 60, WrittenToConcert(60, tr))
}

func TestFreqToWrittenMidi(t *testing.T) {
	// A4 = 440 Hz, concert MIDI 69, written B4 = 71 on Bb trumpet
	written := FreqToWrittenMidi(440.0, BbTrumpet())
	assert.InDelta(t, 71.0, written, 0.01)
}
