package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mscore",
	Short: "Musical score toolkit",
	Long:  `Quantizes performed rhythms into notation and exports MIDI and MusicXML.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
