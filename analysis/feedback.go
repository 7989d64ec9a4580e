package analysis

import (
	"fmt"

	"github.com/xstraven/brasscoach/model"
)

// buildFeedback turns the finished metrics into short coaching lines, in
// a fixed order: hit rate, misses, pitch, timing, intervals.
func buildFeedback(a *model.PerformanceAnalysis) []string {
	var feedback []string

	pct := 100 * float64(a.NotesCorrect) / float64(a.TotalNotes)
	switch {
	case pct >= 90:
		feedback = append(feedback, fmt.Sprintf("Excellent! You nailed %.0f%% of the notes.", pct))
	case pct >= 70:
		feedback = append(feedback, fmt.Sprintf("Good job! You got %.0f%% of the notes right.", pct))
	case pct >= 50:
		feedback = append(feedback, fmt.Sprintf("Keep practicing! You hit %.0f%% of the notes correctly.", pct))
	default:
		feedback = append(feedback, fmt.Sprintf("This one's tough! You got %.0f%% correct. Try slowing down the tempo.", pct))
	}

	if a.NotesMissed > 0 {
		plural := "s"
		if a.NotesMissed == 1 {
			plural = ""
		}
		feedback = append(feedback, fmt.Sprintf("You missed %v note%v. Make sure to play through the whole piece.", a.NotesMissed, plural))
	}
	if a.NotesExtra > 0 {
		feedback = append(feedback, fmt.Sprintf("%v stray note(s) didn't line up with the score. Keep the horn quiet between entries.", a.NotesExtra))
	}

	if a.AvgPitchErrorCents < -15 {
		feedback = append(feedback, fmt.Sprintf("Your pitch is consistently %.0f cents flat. Push more air and firm up your embouchure.", -a.AvgPitchErrorCents))
	} else if a.AvgPitchErrorCents > 15 {
		feedback = append(feedback, fmt.Sprintf("Your pitch is consistently %.0f cents sharp. Relax your embouchure slightly.", a.AvgPitchErrorCents))
	}

	if a.AvgTimingErrorBeats < -0.1 {
		feedback = append(feedback, "You tend to rush ahead. Relax into the pulse and hold back slightly.")
	} else if a.AvgTimingErrorBeats > 0.1 {
		feedback = append(feedback, "You tend to come in late. Anticipate the beat and start your air earlier.")
	}

	for _, p := range a.IntervalProblems {
		feedback = append(feedback, fmt.Sprintf("Trouble moving from %v to %v (missed %v times). Isolate that interval and slur it slowly.",
			midiToName(p.FromMidi), midiToName(p.ToMidi), p.FailureCount))
	}

	if len(feedback) == 0 {
		feedback = append(feedback, "Play with the mic active to get feedback!")
	}
	return feedback
}

func buildTechniqueFeedback(a *model.PerformanceAnalysis) []string {
	feedback := []string{}

	if a.PitchStability != nil && *a.PitchStability > 15 {
		feedback = append(feedback, "Your pitch wobbles on sustained notes. Focus on steady airflow.")
	}
	if a.AttackQuality != nil && *a.AttackQuality < 0.7 {
		feedback = append(feedback, "Your note attacks are slow to center. Try a firmer tongue stroke.")
	}
	if a.BreathSupport != nil && *a.BreathSupport < 0.7 {
		feedback = append(feedback, "Your pitch drops through long notes. Practice deep breathing.")
	}
	if a.EnduranceDelta != nil && *a.EnduranceDelta > 15 {
		feedback = append(feedback, "Your accuracy drops later in the piece. Build endurance with long tones.")
	}
	return feedback
}
