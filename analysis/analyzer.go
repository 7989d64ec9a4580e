package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/xstraven/brasscoach/constants"
	"github.com/xstraven/brasscoach/model"
	"github.com/xstraven/brasscoach/util"
)

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

func midiToName(midi int) string {
	name := noteNames[((midi%12)+12)%12]
	return fmt.Sprintf("%v%v", name, midi/12-1)
}

func centsBetween(playedMidi float64, targetMidi int) float64 {
	return (playedMidi - float64(targetMidi)) * 100
}

// Analyze evaluates one take against a score. Played notes must be sorted
// ascending by onset beat. Zero tolerances select the defaults (50 cents,
// 0.3 beats).
func Analyze(score *model.Score, played []model.PlayedNote, pitchTolCents, timingTolBeats float64) model.PerformanceAnalysis {
	return AnalyzeWithTrail(score, played, pitchTolCents, timingTolBeats, nil)
}

// AnalyzeWithTrail is Analyze plus technique metrics derived from the
// continuous pitch trail.
func AnalyzeWithTrail(score *model.Score, played []model.PlayedNote, pitchTolCents, timingTolBeats float64, trail []model.PitchTrailPoint) model.PerformanceAnalysis {
	if pitchTolCents <= 0 {
		pitchTolCents = constants.DefaultPitchToleranceCents
	}
	if timingTolBeats <= 0 {
		timingTolBeats = constants.DefaultTimingToleranceBeats
	}

	targets := score.Pitched()
	if len(targets) == 0 {
		return model.PerformanceAnalysis{
			PitchTendency:    model.TendencyInTune,
			TimingTendency:   model.TendencyOnTime,
			IntervalProblems: []model.IntervalProblem{},
			Feedback:         []string{"No notes in score to analyze."},
		}
	}
	if len(played) == 0 {
		return model.PerformanceAnalysis{
			TotalNotes:       len(targets),
			PitchTendency:    model.TendencyInTune,
			TimingTendency:   model.TendencyOnTime,
			IntervalProblems: []model.IntervalProblem{},
			Feedback:         []string{"No notes detected."},
		}
	}

	results := matchNotes(targets, played, pitchTolCents, timingTolBeats)

	var correct, wrongPitch, missed int
	var pitchErrors, timingErrors []float64
	for _, r := range results {
		switch r.Status {
		case model.StatusCorrect:
			correct++
		case model.StatusWrongPitch:
			wrongPitch++
		case model.StatusMissed:
			missed++
		}
		if r.Matched {
			pitchErrors = append(pitchErrors, r.PitchErrorCents)
			timingErrors = append(timingErrors, r.TimingErrorBeats)
		}
	}
	extra := len(played) - (correct + wrongPitch)

	avgPitchError := util.Mean(pitchErrors)
	avgTimingError := util.Mean(timingErrors)

	pitchTendency := model.TendencyInTune
	if avgPitchError > 10 {
		pitchTendency = model.TendencySharp
	} else if avgPitchError < -10 {
		pitchTendency = model.TendencyFlat
	}

	timingTendency := model.TendencyOnTime
	if avgTimingError > 0.1 {
		timingTendency = model.TendencyLate
	} else if avgTimingError < -0.1 {
		timingTendency = model.TendencyEarly
	}

	problems := findIntervalProblems(targets, results)

	result := model.PerformanceAnalysis{
		TotalNotes:          len(targets),
		NotesCorrect:        correct,
		NotesWrongPitch:     wrongPitch,
		NotesMissed:         missed,
		NotesExtra:          extra,
		AvgPitchErrorCents:  avgPitchError,
		AvgTimingErrorBeats: avgTimingError,
		PitchTendency:       pitchTendency,
		TimingTendency:      timingTendency,
		IntervalProblems:    problems,
		NoteResults:         results,
		TechniqueFeedback:   []string{},
	}

	result.OverallScore = overallScore(correct, len(targets), pitchErrors, timingErrors)

	if len(trail) > 0 {
		applyTechnique(&result, targets, results, trail)
	}

	result.Feedback = buildFeedback(&result)
	return result
}

// matchNotes walks the score in order and greedily claims the best
// unclaimed played note inside the timing window: closest pitch first,
// then closest onset.
func matchNotes(targets []model.NoteEvent, played []model.PlayedNote, pitchTolCents, timingTolBeats float64) []model.NoteResult {
	used := make([]bool, len(played))
	results := make([]model.NoteResult, 0, len(targets))

	for _, target := range targets {
		bestIdx := -1
		bestPitchDist := math.MaxInt32
		bestTimingDist := math.MaxFloat64

		for i, p := range played {
			if used[i] {
				continue
			}
			timingDist := math.Abs(p.OnsetBeat - target.StartBeat)
			if timingDist > timingTolBeats {
				continue
			}
			pitchDist := p.MidiRounded - target.Midi
			if pitchDist < 0 {
				pitchDist = -pitchDist
			}
			if pitchDist < bestPitchDist ||
				(pitchDist == bestPitchDist && timingDist < bestTimingDist) {
				bestIdx = i
				bestPitchDist = pitchDist
				bestTimingDist = timingDist
			}
		}

		if bestIdx < 0 {
			results = append(results, model.NoteResult{
				TargetMidi: target.Midi,
				TargetBeat: target.StartBeat,
				Status:     model.StatusMissed,
			})
			continue
		}

		used[bestIdx] = true
		p := played[bestIdx]
		centError := centsBetween(p.MidiFloat, target.Midi)

		status := model.StatusWrongPitch
		if p.MidiRounded == target.Midi && math.Abs(centError) <= pitchTolCents {
			status = model.StatusCorrect
		}

		results = append(results, model.NoteResult{
			TargetMidi:       target.Midi,
			TargetBeat:       target.StartBeat,
			Status:           status,
			PlayedMidi:       p.MidiFloat,
			PitchErrorCents:  centError,
			TimingErrorBeats: p.OnsetBeat - target.StartBeat,
			Matched:          true,
		})
	}
	return results
}

// findIntervalProblems counts adjacent score pairs whose second note went
// wrong or missing; pairs failing at least twice are reported.
func findIntervalProblems(targets []model.NoteEvent, results []model.NoteResult) []model.IntervalProblem {
	counts := make(map[[2]int]int)
	for i := 1; i < len(results); i++ {
		if results[i].Status == model.StatusCorrect {
			continue
		}
		key := [2]int{targets[i-1].Midi, targets[i].Midi}
		counts[key]++
	}

	problems := make([]model.IntervalProblem, 0)
	for key, count := range counts {
		if count < 2 {
			continue
		}
		problems = append(problems, model.IntervalProblem{
			FromMidi:     key[0],
			ToMidi:       key[1],
			FailureCount: count,
		})
	}
	sort.Slice(problems, func(i, j int) bool {
		if problems[i].FailureCount != problems[j].FailureCount {
			return problems[i].FailureCount > problems[j].FailureCount
		}
		if problems[i].FromMidi != problems[j].FromMidi {
			return problems[i].FromMidi < problems[j].FromMidi
		}
		return problems[i].ToMidi < problems[j].ToMidi
	})
	return problems
}

// overallScore combines hit rate with pitch and timing penalties. The
// formula is pinned by tests: a clean take scores exactly 100 and every
// wrong or missed note can only pull it down.
func overallScore(correct, total int, pitchErrors, timingErrors []float64) float64 {
	if total == 0 {
		return 0
	}
	raw := 100*float64(correct)/float64(total) -
		0.2*util.MeanAbs(pitchErrors) -
		20*util.MeanAbs(timingErrors)
	return util.Clamp(math.Round(raw), 0, 100)
}
