package mxl

import (
	"fmt"
	"time"

	"github.com/silky/music-score/constants"
	"github.com/silky/music-score/duration"
	"github.com/silky/music-score/model"
	"github.com/silky/music-score/pitch"
	"github.com/silky/music-score/rhythm"
	"github.com/silky/music-score/score"
)

// FromScore quantizes every bar of every part and builds the full document.
// Any bar that cannot be quantized fails the whole build; use BuildPart for
// per-part resilience.
func FromScore(sc *score.Score) (*Doc, error) {
	doc := NewDoc(sc.Title)
	for i, p := range sc.Parts {
		part, sp, err := BuildPart(p, i+1)
		if err != nil {
			return nil, fmt.Errorf("part %q: %w", sp.Name, err)
		}
		doc.PartList.ScoreParts = append(doc.PartList.ScoreParts, sp)
		doc.Parts = append(doc.Parts, part)
	}
	return doc, nil
}

func NewDoc(title string) *Doc {
	return &Doc{
		Version: "3.1",
		Identification: Identification{
			Title: title,
			Encoding: Encoding{
				Software: "music-score",
				Date:     time.Now().Format("2006-01-02"),
			},
		},
	}
}

// BuildPart quantizes one part into measures. The returned error names the
// first bar that failed.
func BuildPart(p *score.Part, num int) (Part, ScorePart, error) {
	id := p.ID
	if id == "" {
		id = fmt.Sprintf("P%d", num)
	}
	name := p.Name
	if name == "" {
		name = id
	}
	sp := ScorePart{Id: id, Name: name}

	part := Part{Id: id}
	for i, bar := range p.Bars(duration.One()) {
		tree, err := rhythm.Quantize(bar)
		if err != nil {
			return part, sp, fmt.Errorf("bar %d: %w", i+1, err)
		}
		m := Measure{Number: i + 1}
		if i == 0 {
			m.Attrs = &Attributes{
				Divisions: constants.DivisionsPerQuarter,
				Key:       &Key{Fifths: 0, Mode: "major"},
				Time:      &Time{Beats: 4, BeatType: 4},
				Clef:      &Clef{Sign: "G", Line: 2},
			}
		}
		emitTree(&m, tree, duration.One(), nil)
		part.Measures = append(part.Measures, m)
	}
	return part, sp, nil
}

// emitTree walks a quantized tree depth-first, carrying the cumulative time
// modification so each emitted note's division count reflects its actual
// sounding duration.
func emitTree(m *Measure, tree rhythm.Tree[model.Note], mod duration.Dur, ratio duration.Dur) {
	switch t := tree.(type) {
	case rhythm.Beat[model.Note]:
		m.Notes = append(m.Notes, beatNote(t, mod, 0, ratio))
	case rhythm.Dotted[model.Note]:
		dotMod := duration.Mul(mod, rhythm.DotModifier(t.Dots))
		m.Notes = append(m.Notes, beatNote(t.Note, dotMod, t.Dots, ratio))
	case rhythm.Tuplet[model.Note]:
		emitTree(m, t.Body, duration.Mul(mod, t.Ratio), t.Ratio)
	case rhythm.Sequence[model.Note]:
		for _, c := range t.Children {
			emitTree(m, c, mod, ratio)
		}
	}
}

func beatNote(b rhythm.Beat[model.Note], mod duration.Dur, dots int, ratio duration.Dur) Note {
	actual := duration.Mul(b.Dur, mod)
	n := Note{
		Duration: divisions(actual),
		Voice:    1,
		Type:     noteType(b.Dur),
	}
	for i := 0; i < dots; i++ {
		n.Dots = append(n.Dots, empty{})
	}
	if ratio != nil {
		// ratio is notated/actual: 2/3 means 3 played in the time of 2
		n.TimeMod = &TimeModification{
			ActualNotes: int(ratio.Denom().Int64()),
			NormalNotes: int(ratio.Num().Int64()),
		}
	}
	if b.Value == nil {
		n.Rest = &empty{}
	} else {
		step, alter, octave := pitch.Step(b.Value.Pitch)
		n.Pitch = &Pitch{Step: step, Alter: alter, Octave: octave}
	}
	return n
}

// divisions converts a whole-bar-unit duration to MusicXML divisions. The
// division base is chosen so every supported beat/tuplet combination lands on
// an integer; anything else is rounded.
func divisions(d duration.Dur) int {
	ticks := duration.Mul(d, duration.FromInt(constants.DivisionsPerBar))
	f, _ := ticks.Float64()
	return int(f + 0.5)
}

// noteType covers every power of two the schema can name (long through
// 1024th); the quantizer cannot emit anything outside that range from
// realistic input, but an off-scale beat still falls back to a quarter
// rather than failing the whole export.
func noteType(notated duration.Dur) string {
	switch notated.RatString() {
	case "4":
		return "long"
	case "2":
		return "breve"
	case "1":
		return "whole"
	case "1/2":
		return "half"
	case "1/4":
		return "quarter"
	case "1/8":
		return "eighth"
	case "1/16":
		return "16th"
	case "1/32":
		return "32nd"
	case "1/64":
		return "64th"
	case "1/128":
		return "128th"
	case "1/256":
		return "256th"
	case "1/512":
		return "512th"
	case "1/1024":
		return "1024th"
	}
	return "quarter"
}
