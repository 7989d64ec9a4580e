package analysis

import (
	"math"

	"github.com/xstraven/brasscoach/model"
	"github.com/xstraven/brasscoach/util"
)

func stddev(values []float64) float64 {
	mean := util.Mean(values)
	var variance float64
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	return math.Sqrt(variance / float64(len(values)))
}

func trailWindow(trail []model.PitchTrailPoint, from, to float64) []model.PitchTrailPoint {
	var pts []model.PitchTrailPoint
	for _, p := range trail {
		if p.Beat >= from && p.Beat < to {
			pts = append(pts, p)
		}
	}
	return pts
}

// applyTechnique fills the optional technique metrics from the pitch
// trail. Only correct notes contribute; a metric stays nil when no note
// produced a usable window.
func applyTechnique(a *model.PerformanceAnalysis, targets []model.NoteEvent, results []model.NoteResult, trail []model.PitchTrailPoint) {
	var stabilities []float64
	attackTotal, attackGood := 0, 0
	breathTotal, breathGood := 0, 0

	for i, target := range targets {
		if results[i].Status != model.StatusCorrect {
			continue
		}
		start := target.StartBeat
		dur := target.DurationBeats
		targetMidi := float64(target.Midi)

		// held portion, onset and release transients excluded
		held := trailWindow(trail, start+0.1*dur, start+0.9*dur)
		if len(held) >= 2 {
			cents := make([]float64, len(held))
			for j, p := range held {
				cents[j] = (p.MidiFloat - targetMidi) * 100
			}
			stabilities = append(stabilities, stddev(cents))
		}

		// first trail point near the onset tells whether the attack landed
		for _, p := range trail {
			if p.Beat < start-0.15 {
				continue
			}
			if p.Beat > start+0.15 {
				break
			}
			attackTotal++
			if math.Abs((p.MidiFloat-targetMidi)*100) <= 50 {
				attackGood++
			}
			break
		}

		// deviation drift from the first to the last quintile of the note
		first := trailWindow(trail, start, start+0.2*dur)
		last := trailWindow(trail, start+0.8*dur, start+dur)
		if len(first) > 0 && len(last) > 0 {
			var firstAbs, lastAbs []float64
			for _, p := range first {
				firstAbs = append(firstAbs, math.Abs((p.MidiFloat-targetMidi)*100))
			}
			for _, p := range last {
				lastAbs = append(lastAbs, math.Abs((p.MidiFloat-targetMidi)*100))
			}
			breathTotal++
			if util.Mean(lastAbs)-util.Mean(firstAbs) <= 20 {
				breathGood++
			}
		}
	}

	if len(stabilities) > 0 {
		v := util.Mean(stabilities)
		a.PitchStability = &v
	}
	if attackTotal > 0 {
		v := float64(attackGood) / float64(attackTotal)
		a.AttackQuality = &v
	}
	if breathTotal > 0 {
		v := float64(breathGood) / float64(breathTotal)
		a.BreathSupport = &v
	}

	if delta, ok := enduranceDelta(results); ok {
		a.EnduranceDelta = &delta
	}

	a.TechniqueFeedback = buildTechniqueFeedback(a)
}

// enduranceDelta compares accuracy in the first and last third of the
// score, reporting the percent drop (never negative).
func enduranceDelta(results []model.NoteResult) (float64, bool) {
	n := len(results)
	if n < 3 {
		return 0, false
	}
	third := n / 3
	firstAcc := accuracy(results[:third])
	lastAcc := accuracy(results[n-third:])
	delta := 100 * (firstAcc - lastAcc)
	if delta < 0 {
		delta = 0
	}
	return delta, true
}

func accuracy(results []model.NoteResult) float64 {
	if len(results) == 0 {
		return 0
	}
	correct := 0
	for _, r := range results {
		if r.Status == model.StatusCorrect {
			correct++
		}
	}
	return float64(correct) / float64(len(results))
}
