package exercise

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/xstraven/brasscoach/musicxml"
)

// KeyToMidi parses a note name like "C4", "Bb3" or "F#4" into a MIDI
// number. A missing octave means octave 4.
func KeyToMidi(key string) (int, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return 0, errors.New("empty key")
	}

	step := key[0]
	if step >= 'a' && step <= 'g' {
		step -= 'a' - 'A'
	}
	if step < 'A' || step > 'G' {
		return 0, errors.Errorf("invalid key: %q", key)
	}

	rest := key[1:]
	alter := 0
	if strings.HasPrefix(rest, "#") {
		alter = 1
		rest = rest[1:]
	} else if strings.HasPrefix(rest, "b") {
		alter = -1
		rest = rest[1:]
	}

	octave := 4
	if rest != "" {
		v, err := strconv.Atoi(rest)
		if err != nil {
			return 0, errors.Errorf("invalid octave in key: %q", key)
		}
		octave = v
	}

	return musicxml.MidiFromPitch(step, alter, octave), nil
}
