package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "brasscoach",
	Short: "Trumpet practice coach",
	Long:  `Practice coach for Bb trumpet: parse scores, generate exercises, grade takes.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
