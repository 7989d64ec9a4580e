package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xstraven/brasscoach/exercise"
	"github.com/xstraven/brasscoach/midifile"
)

var (
	genTempo      float64
	genDifficulty int
	genLow        int
	genHigh       int
	genOut        string
)

func init() {
	generateCmd.Flags().Float64Var(&genTempo, "tempo", 100, "tempo in bpm")
	generateCmd.Flags().IntVar(&genDifficulty, "difficulty", 1, "difficulty 1-4")
	generateCmd.Flags().IntVar(&genLow, "low", 55, "lowest allowed MIDI note")
	generateCmd.Flags().IntVar(&genHigh, "high", 84, "highest allowed MIDI note")
	generateCmd.Flags().StringVarP(&genOut, "out", "o", "", "write the exercise as a .mid file")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate <type> <key>",
	Short: "Generate a practice exercise",
	Long: `Generate a practice exercise score.

Types: long_tones, major_scale, chromatic, lip_slurs, intervals, arpeggios`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		score, err := exercise.Generate(args[0], args[1], genTempo, genDifficulty, genLow, genHigh)
		if err != nil {
			return err
		}

		fmt.Printf("%v in %v: %v notes over %.0f beats at %.0f bpm\n",
			args[0], args[1], len(score.Pitched()), score.TotalBeats, score.Tempo)

		if genOut != "" {
			if err := midifile.WriteFile(&score, genOut); err != nil {
				return err
			}
			fmt.Printf("Wrote %v\n", genOut)
		}
		return nil
	},
}
