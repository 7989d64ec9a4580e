package model

// NoteEvent is one entry on the score timeline, rests included.
// Rests carry Midi 0 and IsRest true.
type NoteEvent struct {
	StartBeat     float64 `json:"start_beat"`
	DurationBeats float64 `json:"duration_beats"`
	Midi          int     `json:"midi"`
	IsRest        bool    `json:"is_rest"`
	MeasureNumber int     `json:"measure_number"`
}

type MeasureInfo struct {
	Number        int     `json:"number"`
	StartBeat     float64 `json:"start_beat"`
	DurationBeats float64 `json:"duration_beats"`
}

type TimeSignature struct {
	Beats    int `json:"beats"`
	BeatType int `json:"beat_type"`
}

// TransposeInfo mirrors the MusicXML transpose block. Chromatic is the
// written-to-sounding offset in semitones, so Bb trumpet carries -2.
type TransposeInfo struct {
	Chromatic    int `json:"chromatic"`
	Diatonic     int `json:"diatonic"`
	OctaveChange int `json:"octave_change"`
}

// Score is the shared timeline produced by the parser, the exercise
// generators, and the SMF importer. Notes are sorted by StartBeat.
type Score struct {
	Title         string         `json:"title,omitempty"`
	Tempo         float64        `json:"tempo"`
	Divisions     int            `json:"divisions"`
	TimeSignature TimeSignature  `json:"time_signature"`
	KeyFifths     int            `json:"key_fifths"`
	Transpose     *TransposeInfo `json:"transpose,omitempty"`
	Notes         []NoteEvent    `json:"notes"`
	Measures      []MeasureInfo  `json:"measures"`
	TotalBeats    float64        `json:"total_beats"`
}

// Pitched returns the non-rest events in timeline order.
func (s *Score) Pitched() []NoteEvent {
	var res []NoteEvent
	for _, n := range s.Notes {
		if !n.IsRest {
			res = append(res, n)
		}
	}
	return res
}
