package curriculum

import "github.com/xstraven/brasscoach/model"

// Get returns the staged practice plan. Pure data; the caller decides
// what is unlocked (see progress.StagePassed).
func Get() []model.CurriculumStage {
	return []model.CurriculumStage{
		{
			StageNumber: 1,
			Name:        "Beginner",
			Description: "Build fundamentals: tone production and simple melodies (C4-G4)",
			Exercises: []model.ExerciseSpec{
				{
					ExerciseType: "long_tones",
					Name:         "Long Tones",
					Description:  "Sustain each note with steady tone",
					Difficulty:   1,
					Keys:         []string{"C4"},
					TempoRange:   [2]float64{60, 80},
					MidiRange:    [2]int{60, 67},
				},
				{
					ExerciseType: "major_scale",
					Name:         "C Major Scale",
					Description:  "Play the C major scale slowly and evenly",
					Difficulty:   1,
					Keys:         []string{"C4"},
					TempoRange:   [2]float64{60, 80},
					MidiRange:    [2]int{55, 75},
				},
			},
		},
		{
			StageNumber: 2,
			Name:        "Early Beginner",
			Description: "Expand range and flexibility (C4-C5)",
			Exercises: []model.ExerciseSpec{
				{
					ExerciseType: "major_scale",
					Name:         "Scales in C, F, G",
					Description:  "Practice major scales in three keys",
					Difficulty:   2,
					Keys:         []string{"C4", "F4", "G4"},
					TempoRange:   [2]float64{70, 90},
					MidiRange:    [2]int{55, 91},
				},
				{
					ExerciseType: "lip_slurs",
					Name:         "Simple Lip Slurs",
					Description:  "Smooth transitions between harmonics",
					Difficulty:   2,
					Keys:         []string{"C4"},
					TempoRange:   [2]float64{70, 90},
					MidiRange:    [2]int{60, 84},
				},
				{
					ExerciseType: "chromatic",
					Name:         "Chromatic Scale",
					Description:  "Half steps through one octave",
					Difficulty:   2,
					Keys:         []string{"C4"},
					TempoRange:   [2]float64{70, 90},
					MidiRange:    [2]int{60, 72},
				},
				{
					ExerciseType: "long_tones",
					Name:         "Extended Long Tones",
					Description:  "Sustain notes across the full octave",
					Difficulty:   2,
					Keys:         []string{"C4"},
					TempoRange:   [2]float64{60, 80},
					MidiRange:    [2]int{60, 72},
				},
			},
		},
		{
			StageNumber: 3,
			Name:        "Intermediate",
			Description: "All keys, intervals, and arpeggios (C4-G5)",
			Exercises: []model.ExerciseSpec{
				{
					ExerciseType: "major_scale",
					Name:         "Scales in All Keys",
					Description:  "Major scales in all 12 keys",
					Difficulty:   3,
					Keys: []string{
						"C4", "Db4", "D4", "Eb4", "E4", "F4",
						"F#4", "G4", "Ab4", "A4", "Bb4", "B4",
					},
					TempoRange: [2]float64{80, 120},
					MidiRange:  [2]int{55, 96},
				},
				{
					ExerciseType: "intervals",
					Name:         "Interval Training",
					Description:  "Practice wider jumps with their descending answers",
					Difficulty:   3,
					Keys:         []string{"C4", "F4", "G4"},
					TempoRange:   [2]float64{80, 120},
					MidiRange:    [2]int{60, 79},
				},
				{
					ExerciseType: "arpeggios",
					Name:         "Arpeggios",
					Description:  "Major triads on every octave of the key",
					Difficulty:   3,
					Keys:         []string{"C4", "F4", "G4"},
					TempoRange:   [2]float64{80, 120},
					MidiRange:    [2]int{48, 84},
				},
				{
					ExerciseType: "lip_slurs",
					Name:         "Advanced Lip Slurs",
					Description:  "Extended harmonic patterns",
					Difficulty:   3,
					Keys:         []string{"C4", "F4"},
					TempoRange:   [2]float64{80, 110},
					MidiRange:    [2]int{53, 84},
				},
			},
		},
		{
			StageNumber: 4,
			Name:        "Advanced",
			Description: "Full range, complex patterns, speed (C4-C6)",
			Exercises: []model.ExerciseSpec{
				{
					ExerciseType: "chromatic",
					Name:         "Extended Chromatic",
					Description:  "Chromatic runs across two octaves",
					Difficulty:   4,
					Keys:         []string{"C4"},
					TempoRange:   [2]float64{100, 150},
					MidiRange:    [2]int{60, 84},
				},
				{
					ExerciseType: "intervals",
					Name:         "Wide Intervals",
					Description:  "Large jumps at speed across the full range",
					Difficulty:   4,
					Keys:         []string{"C4", "D4", "Eb4", "F4", "G4"},
					TempoRange:   [2]float64{110, 160},
					MidiRange:    [2]int{60, 84},
				},
				{
					ExerciseType: "arpeggios",
					Name:         "Extended Arpeggios",
					Description:  "Arpeggios across the full range in many keys",
					Difficulty:   4,
					Keys:         []string{"C4", "D4", "Eb4", "F4", "G4", "Ab4", "Bb4"},
					TempoRange:   [2]float64{100, 140},
					MidiRange:    [2]int{48, 96},
				},
				{
					ExerciseType: "long_tones",
					Name:         "Range Builders",
					Description:  "Long tones pushing the top of the range",
					Difficulty:   4,
					Keys:         []string{"G4", "C5"},
					TempoRange:   [2]float64{60, 80},
					MidiRange:    [2]int{67, 90},
				},
			},
		},
	}
}
