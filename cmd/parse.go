package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xstraven/brasscoach/midifile"
	"github.com/xstraven/brasscoach/musicxml"
)

var parseOut string

func init() {
	parseCmd.Flags().StringVarP(&parseOut, "out", "o", "", "export the parsed score as a .mid file")
	rootCmd.AddCommand(parseCmd)
}

var parseCmd = &cobra.Command{
	Use:   "parse <score.musicxml>",
	Short: "Parse a MusicXML score and print its timeline",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		score, err := musicxml.Parse(string(data))
		if err != nil {
			return err
		}

		if score.Title != "" {
			fmt.Printf("Title:    %v\n", score.Title)
		}
		fmt.Printf("Tempo:    %.0f bpm\n", score.Tempo)
		fmt.Printf("Time:     %v/%v\n", score.TimeSignature.Beats, score.TimeSignature.BeatType)
		fmt.Printf("Key:      %v fifths\n", score.KeyFifths)
		if score.Transpose != nil {
			fmt.Printf("Transpose: chromatic %v, octave %v\n", score.Transpose.Chromatic, score.Transpose.OctaveChange)
		}
		fmt.Printf("Measures: %v\n", len(score.Measures))
		fmt.Printf("Notes:    %v (%.1f beats)\n", len(score.Pitched()), score.TotalBeats)

		if parseOut != "" {
			if err := midifile.WriteFile(&score, parseOut); err != nil {
				return err
			}
			fmt.Printf("Wrote %v\n", parseOut)
		}
		return nil
	},
}
