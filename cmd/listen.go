package cmd

import (
	"fmt"
	"math"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver

	"github.com/xstraven/brasscoach/analysis"
	"github.com/xstraven/brasscoach/model"
	"github.com/xstraven/brasscoach/musicxml"
)

var (
	listenPort    int
	listenSeconds int
)

func init() {
	listenCmd.Flags().IntVar(&listenPort, "port", 0, "MIDI input port number")
	listenCmd.Flags().IntVar(&listenSeconds, "seconds", 60, "longest time to listen (capped at the score's length plus 2s)")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen <score.musicxml>",
	Short: "Practice live against a score with a MIDI instrument",
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
		return listen(&score)
	},
}

func listen(score *model.Score) error {
	defer gomidi.CloseDriver()

	in, err := gomidi.InPort(listenPort)
	if err != nil {
		return fmt.Errorf("can't open MIDI input port %v: %w", listenPort, err)
	}

	var mu sync.Mutex
	var played []model.PlayedNote
	var started time.Time
	beatsPerSecond := score.Tempo / 60

	reanalyze := func() {
		mu.Lock()
		notes := append([]model.PlayedNote{}, played...)
		mu.Unlock()
		sort.SliceStable(notes, func(i, j int) bool {
			return notes[i].OnsetBeat < notes[j].OnsetBeat
		})
		result := analysis.Analyze(score, notes, 0, 0)
		fmt.Printf("\n-- %v/%v correct, running score %.0f --\n",
			result.NotesCorrect, result.TotalNotes, result.OverallScore)
	}
	debounced := debounce.New(500 * time.Millisecond)

	stop, err := gomidi.ListenTo(in, func(msg gomidi.Message, timestampms int32) {
		var channel, key, velocity uint8
		if !msg.GetNoteStart(&channel, &key, &velocity) {
			return
		}
		mu.Lock()
		if started.IsZero() {
			started = time.Now()
		}
		onsetBeat := time.Since(started).Seconds() * beatsPerSecond
		played = append(played, model.PlayedNote{
			OnsetBeat:   onsetBeat,
			MidiFloat:   float64(key),
			MidiRounded: int(key),
			Confidence:  1,
		})
		mu.Unlock()
		debounced(reanalyze)
	})
	if err != nil {
		return err
	}
	defer stop()

	deadline := float64(listenSeconds)
	if score.TotalBeats > 0 {
		if scoreSeconds := math.Ceil(score.TotalBeats/beatsPerSecond) + 2; scoreSeconds < deadline {
			deadline = scoreSeconds
		}
	}
	fmt.Printf("Listening on %v for %vs, play along...\n", in, deadline)
	time.Sleep(time.Duration(deadline * float64(time.Second)))

	reanalyze()
	return nil
}
