package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xstraven/brasscoach/analysis"
	"github.com/xstraven/brasscoach/constants"
	"github.com/xstraven/brasscoach/midifile"
	"github.com/xstraven/brasscoach/model"
	"github.com/xstraven/brasscoach/musicxml"
	"github.com/xstraven/brasscoach/progress"
)

var (
	analyzePitchTol  float64
	analyzeTimingTol float64
	analyzeExercise  string
	analyzeKey       string
	analyzePush      bool
)

func init() {
	analyzeCmd.Flags().Float64Var(&analyzePitchTol, "pitch-tol", constants.DefaultPitchToleranceCents, "pitch tolerance in cents")
	analyzeCmd.Flags().Float64Var(&analyzeTimingTol, "timing-tol", constants.DefaultTimingToleranceBeats, "timing tolerance in beats")
	analyzeCmd.Flags().StringVar(&analyzeExercise, "exercise", "", "exercise type to record progress under")
	analyzeCmd.Flags().StringVar(&analyzeKey, "key", "", "exercise key to record progress under")
	analyzeCmd.Flags().BoolVar(&analyzePush, "push", false, "mirror an improved best score to the shared table")
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <score.musicxml> <take.mid>",
	Short: "Grade a recorded take against a score",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		score, err := musicxml.Parse(string(data))
		if err != nil {
			return err
		}

		take, err := midifile.ReadFile(args[1])
		if err != nil {
			return err
		}

		var played []model.PlayedNote
		for _, n := range take.Pitched() {
			played = append(played, model.PlayedNote{
				OnsetBeat:   n.StartBeat,
				MidiFloat:   float64(n.Midi),
				MidiRounded: n.Midi,
				Confidence:  1,
			})
		}

		result := analysis.Analyze(&score, played, analyzePitchTol, analyzeTimingTol)
		printAnalysis(result)

		if analyzeExercise != "" && analyzeKey != "" {
			return recordProgress(analyzeExercise, analyzeKey, result.OverallScore)
		}
		return nil
	},
}

func printAnalysis(result model.PerformanceAnalysis) {
	fmt.Printf("Score: %.0f/100\n", result.OverallScore)
	fmt.Printf("Correct %v, wrong pitch %v, missed %v, extra %v\n",
		result.NotesCorrect, result.NotesWrongPitch, result.NotesMissed, result.NotesExtra)
	fmt.Printf("Pitch %v (%.0f cents), timing %v (%.2f beats)\n",
		result.PitchTendency, result.AvgPitchErrorCents,
		result.TimingTendency, result.AvgTimingErrorBeats)
	for _, line := range result.Feedback {
		fmt.Printf("- %v\n", line)
	}
	for _, line := range result.TechniqueFeedback {
		fmt.Printf("- %v\n", line)
	}
}

func recordProgress(exerciseType, key string, overall float64) error {
	path := constants.GetProgressPath()
	records, err := progress.Load(path)
	if err != nil {
		return err
	}
	if !records.Record(exerciseType, key, overall) {
		fmt.Printf("Best for %v stays at %.0f\n", progress.Key(exerciseType, key), records[progress.Key(exerciseType, key)])
		return nil
	}
	if err := progress.Save(path, records); err != nil {
		return err
	}
	fmt.Printf("New best for %v: %.0f\n", progress.Key(exerciseType, key), overall)

	if analyzePush {
		if err := progress.PushRemote(progress.Key(exerciseType, key), overall); err != nil {
			return err
		}
	}
	return nil
}
