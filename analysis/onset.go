package analysis

import (
	"math"

	"github.com/xstraven/brasscoach/model"
)

const (
	// a trail gap wider than this reads as silence before a fresh attack
	onsetGapBeats = 0.25
	// a single point this far from the segment mean ends the segment and
	// starts a new one
	onsetPitchJump = 0.5
	// blips shorter than this many frames are dropped
	onsetMinPoints = 2
)

// SegmentTrail turns a continuous pitch trail into discrete PlayedNote
// onsets using the same two rules the live collaborator applies: a new
// note begins after silence (a gap in the trail) or when a point moves
// onsetPitchJump or more away from the running segment mean. The move need
// not be sustained: a one-point blip inside a held note is dropped, but the
// note is split at it into two onsets. The trail must be sorted by beat and
// already confidence-gated.
func SegmentTrail(trail []model.PitchTrailPoint) []model.PlayedNote {
	var notes []model.PlayedNote

	var segStart float64
	var segSum float64
	var segCount int
	var lastBeat float64

	flush := func() {
		if segCount >= onsetMinPoints {
			mean := segSum / float64(segCount)
			notes = append(notes, model.PlayedNote{
				OnsetBeat:   segStart,
				MidiFloat:   mean,
				MidiRounded: int(math.Round(mean)),
				Confidence:  1,
			})
		}
		segCount = 0
		segSum = 0
	}

	for _, p := range trail {
		if segCount > 0 {
			mean := segSum / float64(segCount)
			if p.Beat-lastBeat > onsetGapBeats || math.Abs(p.MidiFloat-mean) >= onsetPitchJump {
				flush()
			}
		}
		if segCount == 0 {
			segStart = p.Beat
		}
		segSum += p.MidiFloat
		segCount++
		lastBeat = p.Beat
	}
	flush()

	return notes
}
