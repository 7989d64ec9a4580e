package exercise

import (
	"math"

	"github.com/pkg/errors"

	"github.com/xstraven/brasscoach/model"
)

// harmonic series partials above the written fundamental, the slots a
// brass player can reach on one fingering
var harmonicOffsets = [...]int{0, 7, 12, 16, 19, 22, 24}

var majorScale = [...]int{0, 2, 4, 5, 7, 9, 11, 12}

// Generate builds a synthetic practice Score. Every exercise is written
// in 4/4 at divisions 4 with the caller's tempo; all pitches stay inside
// [midiLow, midiHigh].
func Generate(exerciseType, key string, tempo float64, difficulty, midiLow, midiHigh int) (model.Score, error) {
	if tempo <= 0 {
		return model.Score{}, errors.Errorf("tempo must be positive, got %v", tempo)
	}
	if midiLow > midiHigh {
		return model.Score{}, errors.Errorf("empty MIDI range [%v, %v]", midiLow, midiHigh)
	}
	if difficulty < 1 {
		difficulty = 1
	}

	tonic, err := KeyToMidi(key)
	if err != nil {
		return model.Score{}, err
	}
	if tonic < midiLow || tonic > midiHigh {
		return model.Score{}, errors.Errorf("key %v (midi %v) outside range [%v, %v]", key, tonic, midiLow, midiHigh)
	}

	b := &builder{}
	switch exerciseType {
	case "long_tones":
		buildLongTones(b, tonic, midiHigh)
	case "major_scale":
		err = buildMajorScale(b, tonic, difficulty, midiHigh)
	case "chromatic":
		buildChromatic(b, difficulty, midiLow, midiHigh)
	case "lip_slurs":
		err = buildLipSlurs(b, tonic, difficulty, midiLow, midiHigh)
	case "intervals":
		err = buildIntervals(b, tonic, difficulty, midiHigh)
	case "arpeggios":
		err = buildArpeggios(b, tonic, midiLow, midiHigh)
	default:
		return model.Score{}, errors.Errorf("unknown exercise type: %v", exerciseType)
	}
	if err != nil {
		return model.Score{}, err
	}

	return b.score(tempo), nil
}

// builder accumulates notes on a running beat cursor.
type builder struct {
	notes []model.NoteEvent
	beat  float64
}

func (b *builder) measure() int {
	return int(b.beat/4) + 1
}

func (b *builder) note(durationBeats float64, midi int) {
	b.notes = append(b.notes, model.NoteEvent{
		StartBeat:     b.beat,
		DurationBeats: durationBeats,
		Midi:          midi,
		MeasureNumber: b.measure(),
	})
	b.beat += durationBeats
}

func (b *builder) rest(durationBeats float64) {
	b.notes = append(b.notes, model.NoteEvent{
		StartBeat:     b.beat,
		DurationBeats: durationBeats,
		IsRest:        true,
		MeasureNumber: b.measure(),
	})
	b.beat += durationBeats
}

func (b *builder) score(tempo float64) model.Score {
	var total float64
	for _, n := range b.notes {
		if end := n.StartBeat + n.DurationBeats; end > total {
			total = end
		}
	}

	numMeasures := int(math.Ceil(total / 4))
	measures := make([]model.MeasureInfo, 0, numMeasures)
	for i := 0; i < numMeasures; i++ {
		measures = append(measures, model.MeasureInfo{
			Number:        i + 1,
			StartBeat:     float64(i) * 4,
			DurationBeats: 4,
		})
	}

	return model.Score{
		Tempo:         tempo,
		Divisions:     4,
		TimeSignature: model.TimeSignature{Beats: 4, BeatType: 4},
		Notes:         b.notes,
		Measures:      measures,
		TotalBeats:    total,
	}
}

// buildLongTones ascends by half step from the tonic to the top of the
// range, a whole note and a whole rest each.
func buildLongTones(b *builder, tonic, midiHigh int) {
	for midi := tonic; midi <= midiHigh; midi++ {
		b.note(4, midi)
		b.rest(4)
	}
}

func buildMajorScale(b *builder, tonic, difficulty, midiHigh int) error {
	octaves := 1
	if difficulty >= 2 {
		octaves = 2
	}
	if tonic+12*octaves > midiHigh {
		return errors.Errorf("scale from midi %v exceeds range top %v", tonic, midiHigh)
	}

	// up
	for o := 0; o < octaves; o++ {
		for _, iv := range majorScale[:7] {
			b.note(1, tonic+12*o+iv)
		}
	}
	b.note(1, tonic+12*octaves)
	// down
	for o := octaves - 1; o >= 0; o-- {
		for i := len(majorScale) - 2; i >= 0; i-- {
			b.note(1, tonic+12*o+majorScale[i])
		}
	}
	// settle on the tonic
	b.note(4, tonic)
	return nil
}

// buildChromatic runs every half step from the bottom of the range to the
// top and back; eighth notes once the player can handle speed.
func buildChromatic(b *builder, difficulty, midiLow, midiHigh int) {
	dur := 1.0
	if difficulty >= 2 {
		dur = 0.5
	}
	for midi := midiLow; midi <= midiHigh; midi++ {
		b.note(dur, midi)
	}
	for midi := midiHigh - 1; midi >= midiLow; midi-- {
		b.note(dur, midi)
	}
}

func buildLipSlurs(b *builder, tonic, difficulty, midiLow, midiHigh int) error {
	var pairs [][2]int
	for i := 0; i+1 < len(harmonicOffsets); i++ {
		lo := tonic + harmonicOffsets[i]
		hi := tonic + harmonicOffsets[i+1]
		if lo >= midiLow && hi <= midiHigh {
			pairs = append(pairs, [2]int{lo, hi})
		}
	}
	if len(pairs) == 0 {
		return errors.Errorf("no harmonic pairs on midi %v fit range [%v, %v]", tonic, midiLow, midiHigh)
	}

	want := 2 + difficulty
	for i := 0; i < want; i++ {
		pair := pairs[i%len(pairs)]
		b.note(2, pair[0])
		b.note(2, pair[1])
	}
	return nil
}

// buildIntervals jumps 2+difficulty semitones up, then answers each jump
// with its descending inverse, on roots climbing by whole step.
func buildIntervals(b *builder, tonic, difficulty, midiHigh int) error {
	size := 2 + difficulty
	emitted := false
	for root := tonic; root+size <= midiHigh; root += 2 {
		b.note(1, root)
		b.note(1, root+size)
		b.note(1, root+size)
		b.note(1, root)
		emitted = true
	}
	if !emitted {
		return errors.Errorf("interval of %v semitones from midi %v exceeds range top %v", size, tonic, midiHigh)
	}
	return nil
}

// buildArpeggios plays the major triad up and down on every octave of the
// tonic pitch class that fits the range.
func buildArpeggios(b *builder, tonic, midiLow, midiHigh int) error {
	root := tonic % 12
	for root < midiLow {
		root += 12
	}

	emitted := false
	for ; root+12 <= midiHigh; root += 12 {
		for _, iv := range []int{0, 4, 7, 12, 7, 4, 0} {
			b.note(1, root+iv)
		}
		b.rest(1)
		emitted = true
	}
	if !emitted {
		return errors.Errorf("no octave of pitch class %v fits range [%v, %v]", tonic%12, midiLow, midiHigh)
	}
	return nil
}
