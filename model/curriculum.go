package model

type ExerciseSpec struct {
	ExerciseType string     `json:"exercise_type"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Difficulty   int        `json:"difficulty"`
	Keys         []string   `json:"keys"`
	TempoRange   [2]float64 `json:"tempo_range"`
	MidiRange    [2]int     `json:"midi_range"`
}

type CurriculumStage struct {
	StageNumber int            `json:"stage_number"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Exercises   []ExerciseSpec `json:"exercises"`
}
