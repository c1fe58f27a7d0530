package cmd

import (
	"fmt"

	"github.com/silky/music-score/duration"
	"github.com/silky/music-score/midi"
	"github.com/silky/music-score/rhythm"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <in.mid>",
	Short: "Prints the quantized rhythm tree of every bar",
	Long:  `Prints the quantized rhythm tree of every bar`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		inspect(args[0])
	},
}

func inspect(path string) {
	s, err := midi.ReadMidiFile(path)
	if err != nil {
		panic(err.Error())
	}
	sc, err := midi.Import(s)
	if err != nil {
		panic(err.Error())
	}
	for _, p := range sc.Parts {
		fmt.Printf("part: %v\n", p.Name)
		for i, bar := range p.Bars(duration.One()) {
			tree, err := rhythm.Quantize(bar)
			if err != nil {
				fmt.Printf("  bar %v: %v\n", i+1, err)
				continue
			}
			fmt.Printf("  bar %v: %v\n", i+1, tree)
		}
	}
}
