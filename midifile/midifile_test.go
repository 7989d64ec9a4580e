package midifile

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/xstraven/brasscoach/exercise"
	"github.com/xstraven/brasscoach/model"
)

func reimport(t *testing.T, score *model.Score) model.Score {
	t.Helper()
	data, err := Bytes(score)
	assert.NoError(t, err)

	parsed, err := smf.ReadFrom(bytes.NewReader(data))
	assert.NoError(t, err)

	back, err := FromSMF(parsed)
	assert.NoError(t, err)
	return back
}

func TestRoundTripScale(t *testing.T) {
	score, err := exercise.Generate("major_scale", "C4", 100, 1, 48, 84)
	assert.NoError(t, err)

	back := reimport(t, &score)

	assert := assert.New(t)
	assert.Equal(100.0, back.Tempo)
	assert.Equal(4, back.TimeSignature.Beats)

	want := score.Pitched()
	got := back.Pitched()
	if assert.Equal(len(want), len(got)) {
		for i := range want {
			assert.Equal(want[i].Midi, got[i].Midi, "note %v", i)
			assert.InDelta(want[i].StartBeat, got[i].StartBeat, 1e-6, "note %v", i)
			assert.InDelta(want[i].DurationBeats, got[i].DurationBeats, 1e-6, "note %v", i)
		}
	}
	assert.InDelta(score.TotalBeats, back.TotalBeats, 1e-6)
}

func TestRoundTripRestsRecovered(t *testing.T) {
	// long tones alternate notes and rests; the gaps must come back
	score, err := exercise.Generate("long_tones", "C4", 60, 1, 60, 62)
	assert.NoError(t, err)

	back := reimport(t, &score)

	var rests int
	for _, n := range back.Notes {
		if n.IsRest {
			rests++
			assert.Equal(t, 0, n.Midi)
		}
	}
	// trailing rest has nothing after it to pin it down
	assert.Equal(t, 2, rests)
}

func TestWriteAndReadFile(t *testing.T) {
	score, err := exercise.Generate("arpeggios", "C4", 90, 1, 48, 84)
	assert.NoError(t, err)

	path := filepath.Join(t.TempDir(), "arpeggios.mid")
	assert.NoError(t, WriteFile(&score, path))

	back, err := ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, len(score.Pitched()), len(back.Pitched()))
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.mid"))
	assert.Error(t, err)
}
