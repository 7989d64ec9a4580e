package exercise

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyToMidi(t *testing.T) {
	cases := []struct {
		key  string
		midi int
	}{
		{"C4", 60},
		{"A4", 69},
		{"Bb3", 58},
		{"F#4", 66},
		{"C", 60},
		{"g3", 55},
	}
	for _, tc := range cases {
		t.Run(tc.key, func(t *testing.T) {
			midi, err := KeyToMidi(tc.key)
			assert.NoError(t, err)
			assert.Equal(t, tc.midi, midi)
		})
	}

	for _, bad := range []string{"", "H4", "C4x", "#4"} {
		t.Run("invalid "+bad, func(t *testing.T) {
			_, err := KeyToMidi(bad)
			assert.Error(t, err)
		})
	}
}

func TestGenerateMajorScale(t *testing.T) {
	score, err := Generate("major_scale", "C4", 100, 1, 48, 84)
	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(100.0, score.Tempo)

	want := []int{60, 62, 64, 65, 67, 69, 71, 72, 71, 69, 67, 65, 64, 62, 60, 60}
	if assert.Len(score.Notes, len(want)) {
		for i, midi := range want {
			assert.Equal(midi, score.Notes[i].Midi, "note %v", i)
		}
	}
	// quarters on the way up
	assert.Equal(1.0, score.Notes[0].DurationBeats)
	// closing tonic is held
	assert.Equal(4.0, score.Notes[len(want)-1].DurationBeats)
}

func TestGenerateMajorScaleTwoOctaves(t *testing.T) {
	score, err := Generate("major_scale", "C4", 100, 2, 48, 96)
	assert := assert.New(t)
	assert.NoError(err)
	top := 0
	for _, n := range score.Notes {
		if n.Midi > top {
			top = n.Midi
		}
	}
	assert.Equal(84, top)
}

func TestGenerateLongTones(t *testing.T) {
	score, err := Generate("long_tones", "C4", 60, 1, 60, 64)
	assert := assert.New(t)
	assert.NoError(err)

	// five tones, each whole note plus whole rest
	assert.Len(score.Notes, 10)
	assert.Equal(60, score.Notes[0].Midi)
	assert.False(score.Notes[0].IsRest)
	assert.Equal(4.0, score.Notes[0].DurationBeats)
	assert.True(score.Notes[1].IsRest)
	assert.Equal(61, score.Notes[2].Midi)
	assert.Equal(40.0, score.TotalBeats)
}

func TestGenerateChromatic(t *testing.T) {
	score, err := Generate("chromatic", "C4", 100, 1, 60, 66)
	assert := assert.New(t)
	assert.NoError(err)

	want := []int{60, 61, 62, 63, 64, 65, 66, 65, 64, 63, 62, 61, 60}
	if assert.Len(score.Notes, len(want)) {
		for i, midi := range want {
			assert.Equal(midi, score.Notes[i].Midi)
		}
	}
	assert.Equal(1.0, score.Notes[0].DurationBeats)

	fast, err := Generate("chromatic", "C4", 100, 2, 60, 66)
	assert.NoError(err)
	assert.Equal(0.5, fast.Notes[0].DurationBeats)
}

func TestGenerateLipSlurs(t *testing.T) {
	score, err := Generate("lip_slurs", "C4", 80, 1, 55, 84)
	assert := assert.New(t)
	assert.NoError(err)

	// 2+difficulty pairs of half notes
	assert.Len(score.Notes, 6)
	assert.Equal(2.0, score.Notes[0].DurationBeats)
	assert.Equal(60, score.Notes[0].Midi)
	assert.Equal(67, score.Notes[1].Midi)
}

func TestGenerateIntervals(t *testing.T) {
	score, err := Generate("intervals", "C4", 90, 2, 55, 70)
	assert := assert.New(t)
	assert.NoError(err)

	// size 4 jumps: up then the descending answer
	assert.Equal(60, score.Notes[0].Midi)
	assert.Equal(64, score.Notes[1].Midi)
	assert.Equal(64, score.Notes[2].Midi)
	assert.Equal(60, score.Notes[3].Midi)
	assert.Equal(62, score.Notes[4].Midi)
}

func TestGenerateArpeggios(t *testing.T) {
	score, err := Generate("arpeggios", "C4", 90, 1, 48, 84)
	assert := assert.New(t)
	assert.NoError(err)

	want := []int{48, 52, 55, 60, 55, 52, 48}
	for i, midi := range want {
		assert.Equal(midi, score.Notes[i].Midi)
	}
	// octaves of the tonic pitch class: 48, 60 and 72 all fit
	var roots []int
	for i, n := range score.Notes {
		if !n.IsRest && i%8 == 0 {
			roots = append(roots, n.Midi)
		}
	}
	assert.Equal([]int{48, 60, 72}, roots)
}

func TestGenerateInvariants(t *testing.T) {
	types := []string{"long_tones", "major_scale", "chromatic", "lip_slurs", "intervals", "arpeggios"}
	for _, exerciseType := range types {
		t.Run(exerciseType, func(t *testing.T) {
			score, err := Generate(exerciseType, "C4", 100, 1, 48, 84)
			assert := assert.New(t)
			assert.NoError(err)
			assert.NotEmpty(score.Notes)
			assert.Greater(score.TotalBeats, 0.0)
			assert.Equal(4, score.Divisions)
			assert.Equal(4, score.TimeSignature.Beats)

			var sum float64
			for i, n := range score.Notes {
				assert.Greater(n.DurationBeats, 0.0)
				if !n.IsRest {
					assert.GreaterOrEqual(n.Midi, 48)
					assert.LessOrEqual(n.Midi, 84)
				}
				if i > 0 {
					assert.GreaterOrEqual(n.StartBeat, score.Notes[i-1].StartBeat)
				}
				sum += n.DurationBeats
			}
			// contiguous, non-overlapping timeline
			assert.InDelta(score.TotalBeats, sum, 1e-9)
		})
	}
}

func TestGenerateErrors(t *testing.T) {
	cases := []struct {
		name                  string
		exerciseType, key     string
		tempo                 float64
		difficulty, low, high int
	}{
		{"unknown type", "warbles", "C4", 100, 1, 48, 84},
		{"bad key", "major_scale", "X9", 100, 1, 48, 84},
		{"inverted range", "major_scale", "C4", 100, 1, 84, 48},
		{"key outside range", "major_scale", "C4", 100, 1, 70, 84},
		{"scale exceeds range", "major_scale", "C4", 100, 1, 55, 65},
		{"zero tempo", "major_scale", "C4", 0, 1, 48, 84},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Generate(tc.exerciseType, tc.key, tc.tempo, tc.difficulty, tc.low, tc.high)
			assert.Error(t, err)
		})
	}
}
