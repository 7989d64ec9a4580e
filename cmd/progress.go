package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/xstraven/brasscoach/constants"
	"github.com/xstraven/brasscoach/curriculum"
	"github.com/xstraven/brasscoach/progress"
	"github.com/xstraven/brasscoach/util"
)

var progressRemote bool

func init() {
	progressCmd.Flags().BoolVar(&progressRemote, "remote", false, "merge best scores from the shared table")
	rootCmd.AddCommand(progressCmd)
}

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show recorded best scores and stage unlocks",
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := progress.Load(constants.GetProgressPath())
		if err != nil {
			return err
		}

		if progressRemote {
			var keys []string
			for _, stage := range curriculum.Get() {
				for _, ex := range stage.Exercises {
					for _, key := range ex.Keys {
						keys = append(keys, progress.Key(ex.ExerciseType, key))
					}
				}
			}
			remote, err := progress.FetchRemote(keys)
			if err != nil {
				return err
			}
			for k, v := range remote {
				if v > records[k] {
					records[k] = v
				}
			}
		}

		keys := util.GetKeys(records)
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("%-30v %.0f\n", k, records[k])
		}

		for _, stage := range curriculum.Get() {
			status := "locked"
			if progress.StagePassed(stage, records) {
				status = "passed"
			}
			fmt.Printf("Stage %v (%v): %v\n", stage.StageNumber, stage.Name, status)
		}
		return nil
	},
}
