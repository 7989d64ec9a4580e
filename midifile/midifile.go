package midifile

import (
	"bytes"
	"math"
	"os"
	"sort"

	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/xstraven/brasscoach/model"
)

const ticksPerQuarter = 480

// smallest rest worth writing back into a timeline, in beats
const restEpsilon = 1e-6

type timedMessage struct {
	tick    uint32
	noteOff bool
	msg     midi.Message
}

// ToSMF renders a Score as a single-track Standard MIDI File.
func ToSMF(score *model.Score) *smf.SMF {
	clock := smf.MetricTicks(ticksPerQuarter)

	var tr smf.Track
	tr.Add(0, smf.MetaMeter(uint8(score.TimeSignature.Beats), uint8(score.TimeSignature.BeatType)))
	tr.Add(0, smf.MetaTempo(score.Tempo))
	if score.Title != "" {
		tr.Add(0, smf.MetaTrackSequenceName(score.Title))
	}

	var msgs []timedMessage
	for _, n := range score.Notes {
		if n.IsRest {
			continue
		}
		onTick := uint32(math.Round(n.StartBeat * ticksPerQuarter))
		offTick := uint32(math.Round((n.StartBeat + n.DurationBeats) * ticksPerQuarter))
		msgs = append(msgs, timedMessage{tick: onTick, msg: midi.NoteOn(0, uint8(n.Midi), 100)})
		msgs = append(msgs, timedMessage{tick: offTick, noteOff: true, msg: midi.NoteOff(0, uint8(n.Midi))})
	}

	// note offs first at equal ticks so contiguous notes don't overlap
	sort.SliceStable(msgs, func(i, j int) bool {
		if msgs[i].tick != msgs[j].tick {
			return msgs[i].tick < msgs[j].tick
		}
		return msgs[i].noteOff && !msgs[j].noteOff
	})

	var lastTick uint32
	for _, m := range msgs {
		tr.Add(m.tick-lastTick, m.msg)
		lastTick = m.tick
	}
	tr.Close(0)

	s := smf.New()
	s.TimeFormat = clock
	s.Add(tr)
	return s
}

// FromSMF reads a monophonic SMF back into a Score, synthesizing rests
// for the gaps between notes.
func FromSMF(s *smf.SMF) (model.Score, error) {
	clock, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok {
		return model.Score{}, errors.Errorf("unsupported SMF time format %v", s.TimeFormat)
	}
	resolution := float64(clock.Ticks4th())

	tempo := 120.0
	timeSig := model.TimeSignature{Beats: 4, BeatType: 4}

	var notes []model.NoteEvent
	for _, track := range s.Tracks {
		var absTicks uint32
		pending := make(map[uint8]uint32)
		for _, event := range track {
			absTicks += event.Delta
			var channel, key, velocity uint8
			var bpm float64
			var num, denom uint8
			switch {
			case event.Message.GetMetaTempo(&bpm):
				tempo = bpm
			case event.Message.GetMetaMeter(&num, &denom):
				timeSig = model.TimeSignature{Beats: int(num), BeatType: int(denom)}
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				if velocity == 0 {
					notes = closeNote(notes, pending, key, absTicks, resolution)
				} else {
					pending[key] = absTicks
				}
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				notes = closeNote(notes, pending, key, absTicks, resolution)
			}
		}
	}

	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].StartBeat < notes[j].StartBeat
	})

	notes = insertRests(notes)

	var total float64
	for i := range notes {
		measure := int(notes[i].StartBeat/4) + 1
		notes[i].MeasureNumber = measure
		if end := notes[i].StartBeat + notes[i].DurationBeats; end > total {
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
		Divisions:     int(clock.Ticks4th()),
		TimeSignature: timeSig,
		Notes:         notes,
		Measures:      measures,
		TotalBeats:    total,
	}, nil
}

func closeNote(notes []model.NoteEvent, pending map[uint8]uint32, key uint8, absTicks uint32, resolution float64) []model.NoteEvent {
	onTick, ok := pending[key]
	if !ok || absTicks <= onTick {
		return notes
	}
	delete(pending, key)
	return append(notes, model.NoteEvent{
		StartBeat:     float64(onTick) / resolution,
		DurationBeats: float64(absTicks-onTick) / resolution,
		Midi:          int(key),
	})
}

func insertRests(notes []model.NoteEvent) []model.NoteEvent {
	var res []model.NoteEvent
	var cursor float64
	for _, n := range notes {
		if n.StartBeat-cursor > restEpsilon {
			res = append(res, model.NoteEvent{
				StartBeat:     cursor,
				DurationBeats: n.StartBeat - cursor,
				IsRest:        true,
			})
		}
		res = append(res, n)
		if end := n.StartBeat + n.DurationBeats; end > cursor {
			cursor = end
		}
	}
	return res
}

// Bytes serializes the SMF rendering of a score.
func Bytes(score *model.Score) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := ToSMF(score).WriteTo(&buf); err != nil {
		return nil, errors.Wrap(err, "could not serialize SMF")
	}
	return buf.Bytes(), nil
}

// ReadFile parses a .mid file into a Score.
func ReadFile(path string) (score model.Score, e error) {
	// the SMF reader can panic on truncated files
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(path)
	if err != nil {
		return model.Score{}, errors.Wrap(err, "error reading midi file")
	}
	parsed, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return model.Score{}, errors.Wrap(err, "error parsing midi file")
	}
	return FromSMF(parsed)
}

// WriteFile renders a score to a .mid file.
func WriteFile(score *model.Score, path string) error {
	data, err := Bytes(score)
	if err != nil {
		return err
	}
	return errors.Wrapf(os.WriteFile(path, data, 0644), "could not write %v", path)
}
