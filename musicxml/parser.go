package musicxml

import (
	"encoding/xml"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html/charset"

	"github.com/xstraven/brasscoach/model"
)

var stepSemitones = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// MidiFromPitch maps a MusicXML pitch (step letter, alter, octave) to a
// MIDI note number, e.g. C4 -> 60, Bb3 -> 58.
func MidiFromPitch(step byte, alter int, octave int) int {
	return (octave+1)*12 + stepSemitones[step] + alter
}

// parser carries the streaming state while walking the document.
type parser struct {
	divisions int
	tempo     float64
	timeSig   model.TimeSignature
	keyFifths int
	transpose *model.TransposeInfo
	title     string

	notes    []model.NoteEvent
	measures []model.MeasureInfo

	measureNumber int
	measureStart  float64
	cursor        float64
	maxCursor     float64

	inNote    bool
	isRest    bool
	isChord   bool
	durTicks  int
	hasDur    bool
	step      byte
	hasStep   bool
	alter     int
	octave    int
	hasOctave bool

	inTranspose bool
	chromatic   int
	diatonic    int
	octaveChg   int

	currentTag string
}

// Parse reads a partwise MusicXML document into a Score. Single part,
// single voice; chord notes are skipped; backup and forward move the
// within-measure cursor. Malformed XML or a note missing its required
// numeric fields fails the whole parse.
func Parse(xmlStr string) (model.Score, error) {
	p := &parser{
		divisions: 1,
		tempo:     120,
		timeSig:   model.TimeSignature{Beats: 4, BeatType: 4},
	}

	dec := xml.NewDecoder(strings.NewReader(xmlStr))
	dec.CharsetReader = charset.NewReaderLabel

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return model.Score{}, errors.Wrap(err, "XML parse error")
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if err := p.startElement(t); err != nil {
				return model.Score{}, err
			}
		case xml.CharData:
			if err := p.charData(string(t)); err != nil {
				return model.Score{}, err
			}
		case xml.EndElement:
			if err := p.endElement(t.Name.Local); err != nil {
				return model.Score{}, err
			}
		}
	}

	p.closeMeasure()
	return p.finish(), nil
}

func (p *parser) startElement(e xml.StartElement) error {
	switch e.Name.Local {
	case "measure":
		p.closeMeasure()
		p.measureNumber++
		for _, attr := range e.Attr {
			if attr.Name.Local == "number" {
				if n, err := strconv.Atoi(attr.Value); err == nil {
					p.measureNumber = n
				}
			}
		}
	case "note":
		p.inNote = true
		p.isRest = false
		p.isChord = false
		p.durTicks = 0
		p.hasDur = false
		p.step = 0
		p.hasStep = false
		p.alter = 0
		p.octave = 0
		p.hasOctave = false
	case "backup", "forward":
		p.hasDur = false
	case "rest":
		if p.inNote {
			p.isRest = true
		}
	case "chord":
		if p.inNote {
			p.isChord = true
		}
	case "transpose":
		p.inTranspose = true
		p.chromatic = 0
		p.diatonic = 0
		p.octaveChg = 0
	case "sound":
		for _, attr := range e.Attr {
			if attr.Name.Local == "tempo" {
				if v, err := strconv.ParseFloat(attr.Value, 64); err == nil && v > 0 {
					p.tempo = v
				}
			}
		}
	case "divisions", "duration", "step", "alter", "octave", "per-minute",
		"fifths", "beats", "beat-type", "chromatic", "diatonic",
		"octave-change", "movement-title", "work-title":
		p.currentTag = e.Name.Local
	}
	return nil
}

func (p *parser) charData(text string) error {
	tag := p.currentTag
	if tag == "" {
		return nil
	}
	p.currentTag = ""
	text = strings.TrimSpace(text)
	if text == "" {
		p.currentTag = tag
		return nil
	}

	switch tag {
	case "divisions":
		v, err := strconv.Atoi(text)
		if err != nil {
			return errors.Errorf("non-integer divisions: %q", text)
		}
		if v <= 0 {
			return errors.Errorf("divisions must be positive, got %d", v)
		}
		p.divisions = v
	case "per-minute":
		if v, err := strconv.ParseFloat(text, 64); err == nil && v > 0 {
			p.tempo = v
		}
	case "duration":
		v, err := strconv.Atoi(text)
		if err != nil {
			return errors.Errorf("non-integer duration: %q", text)
		}
		p.durTicks = v
		p.hasDur = true
	case "step":
		p.step = text[0]
		p.hasStep = true
	case "alter":
		v, err := strconv.Atoi(text)
		if err != nil {
			return errors.Errorf("non-integer alter: %q", text)
		}
		p.alter = v
	case "octave":
		v, err := strconv.Atoi(text)
		if err != nil {
			return errors.Errorf("non-integer octave: %q", text)
		}
		p.octave = v
		p.hasOctave = true
	case "fifths":
		if v, err := strconv.Atoi(text); err == nil {
			p.keyFifths = v
		}
	case "beats":
		if v, err := strconv.Atoi(text); err == nil && v > 0 {
			p.timeSig.Beats = v
		}
	case "beat-type":
		if v, err := strconv.Atoi(text); err == nil && v > 0 {
			p.timeSig.BeatType = v
		}
	case "chromatic":
		if p.inTranspose {
			if v, err := strconv.Atoi(text); err == nil {
				p.chromatic = v
			}
		}
	case "diatonic":
		if p.inTranspose {
			if v, err := strconv.Atoi(text); err == nil {
				p.diatonic = v
			}
		}
	case "octave-change":
		if p.inTranspose {
			if v, err := strconv.Atoi(text); err == nil {
				p.octaveChg = v
			}
		}
	case "movement-title", "work-title":
		if p.title == "" {
			p.title = text
		}
	}
	return nil
}

func (p *parser) endElement(name string) error {
	switch name {
	case "note":
		defer func() { p.inNote = false }()
		if p.isChord {
			// simultaneity against the preceding primary note
			return nil
		}
		if !p.hasDur {
			return errors.Errorf("note missing duration in measure %d", p.measureNumber)
		}
		if p.durTicks <= 0 {
			return errors.Errorf("note duration must be positive in measure %d", p.measureNumber)
		}
		durBeats := float64(p.durTicks) / float64(p.divisions)

		midi := 0
		if !p.isRest {
			if !p.hasStep {
				return errors.Errorf("note missing pitch step in measure %d", p.measureNumber)
			}
			if !p.hasOctave {
				return errors.Errorf("note missing pitch octave in measure %d", p.measureNumber)
			}
			if _, ok := stepSemitones[p.step]; !ok {
				return errors.Errorf("invalid pitch step %q in measure %d", string(p.step), p.measureNumber)
			}
			midi = MidiFromPitch(p.step, p.alter, p.octave)
		}

		p.notes = append(p.notes, model.NoteEvent{
			StartBeat:     p.measureStart + p.cursor,
			DurationBeats: durBeats,
			Midi:          midi,
			IsRest:        p.isRest,
			MeasureNumber: p.measureNumber,
		})
		p.cursor += durBeats
		if p.cursor > p.maxCursor {
			p.maxCursor = p.cursor
		}
	case "backup":
		if p.hasDur {
			p.cursor -= float64(p.durTicks) / float64(p.divisions)
			if p.cursor < 0 {
				p.cursor = 0
			}
		}
	case "forward":
		if p.hasDur {
			p.cursor += float64(p.durTicks) / float64(p.divisions)
			if p.cursor > p.maxCursor {
				p.maxCursor = p.cursor
			}
		}
	case "transpose":
		p.inTranspose = false
		p.transpose = &model.TransposeInfo{
			Chromatic:    p.chromatic,
			Diatonic:     p.diatonic,
			OctaveChange: p.octaveChg,
		}
	}
	return nil
}

func (p *parser) closeMeasure() {
	if p.measureNumber > 0 {
		p.measures = append(p.measures, model.MeasureInfo{
			Number:        p.measureNumber,
			StartBeat:     p.measureStart,
			DurationBeats: p.maxCursor,
		})
		p.measureStart += p.maxCursor
	}
	p.cursor = 0
	p.maxCursor = 0
}

func (p *parser) finish() model.Score {
	sort.SliceStable(p.notes, func(i, j int) bool {
		return p.notes[i].StartBeat < p.notes[j].StartBeat
	})

	var total float64
	for _, n := range p.notes {
		if end := n.StartBeat + n.DurationBeats; end > total {
			total = end
		}
	}

	return model.Score{
		Title:         p.title,
		Tempo:         p.tempo,
		Divisions:     p.divisions,
		TimeSignature: p.timeSig,
		KeyFifths:     p.keyFifths,
		Transpose:     p.transpose,
		Notes:         p.notes,
		Measures:      p.measures,
		TotalBeats:    total,
	}
}
