package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/silky/music-score/midi"
	"github.com/silky/music-score/mxl"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(transcribeCmd)
}

var transcribeCmd = &cobra.Command{
	Use:   "transcribe <in.mid> <out.xml>",
	Short: "Transcribes a midi file to MusicXML",
	Long:  `Transcribes a midi file to MusicXML`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			panic("Need 2 args...")
		}
		transcribe(args[0], args[1])
	},
}

func transcribe(inPath, outPath string) {
	s, err := midi.ReadMidiFile(inPath)
	if err != nil {
		panic(err.Error())
	}
	sc, err := midi.Import(s)
	if err != nil {
		panic(err.Error())
	}
	sc.Title = strings.TrimSuffix(filepath.Base(inPath), filepath.Ext(inPath))

	// a part whose rhythm cannot be notated is dropped with a message; the
	// rest of the score still exports
	doc := mxl.NewDoc(sc.Title)
	for i, p := range sc.Parts {
		part, sp, err := mxl.BuildPart(p, i+1)
		if err != nil {
			fmt.Printf("Skipping part %q: %v\n", sp.Name, err)
			continue
		}
		doc.PartList.ScoreParts = append(doc.PartList.ScoreParts, sp)
		doc.Parts = append(doc.Parts, part)
	}
	if len(doc.Parts) == 0 {
		panic("No part could be transcribed")
	}

	f, err := os.Create(outPath)
	if err != nil {
		panic("Couldn't create file: " + err.Error())
	}
	defer f.Close()
	if err := doc.Encode(f); err != nil {
		panic(err.Error())
	}
	fmt.Printf("Wrote %v part(s) to %v\n", len(doc.Parts), outPath)
}
