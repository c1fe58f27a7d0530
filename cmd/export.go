package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/silky/music-score/midi"
	"github.com/silky/music-score/model"
	"github.com/silky/music-score/mxl"
	"github.com/silky/music-score/score"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <score.json> <out-basename>",
	Short: "Exports a score description to midi and MusicXML",
	Long:  `Exports a score description to midi and MusicXML`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			panic("Need 2 args...")
		}
		export(args[0], args[1])
	},
}

func readScoreFile(path string) *score.Score {
	dat, err := os.ReadFile(path)
	if err != nil {
		panic("Couldn't read score file: " + err.Error())
	}
	var body model.ScoreBody
	if err := json.Unmarshal(dat, &body); err != nil {
		panic("Couldn't parse score file: " + err.Error())
	}
	sc, err := scoreFromBody(body)
	if err != nil {
		panic(err.Error())
	}
	return sc
}

func export(scorePath, base string) {
	sc := readScoreFile(scorePath)

	writeMidi(sc, base+".mid")
	writeMusicXML(sc, base+".xml")
}

func writeMidi(sc *score.Score, path string) {
	f, err := os.Create(path)
	if err != nil {
		panic("Couldn't create file: " + err.Error())
	}
	defer f.Close()
	if _, err := midi.Export(sc).WriteTo(f); err != nil {
		panic("Couldn't write midi: " + err.Error())
	}
	fmt.Printf("Wrote %v\n", path)
}

func writeMusicXML(sc *score.Score, path string) {
	doc, err := mxl.FromScore(sc)
	if err != nil {
		panic("Couldn't quantize score: " + err.Error())
	}
	f, err := os.Create(path)
	if err != nil {
		panic("Couldn't create file: " + err.Error())
	}
	defer f.Close()
	if err := doc.Encode(f); err != nil {
		panic(err.Error())
	}
	fmt.Printf("Wrote %v\n", path)
}
