package cmd

import (
	"fmt"

	"github.com/silky/music-score/duration"
	"github.com/silky/music-score/model"
	"github.com/silky/music-score/pitch"
	"github.com/silky/music-score/rhythm"
	"github.com/silky/music-score/score"
)

func noteFromBody(b model.EventBody) (*model.Note, error) {
	if b.Pitch == "" {
		return nil, nil
	}
	p, err := pitch.Parse(b.Pitch)
	if err != nil {
		return nil, err
	}
	vel := b.Velocity
	if vel == 0 {
		vel = pitch.Velocity(b.Dynamic)
	}
	return &model.Note{Pitch: p, Velocity: vel}, nil
}

func barFromBodies(bodies []model.EventBody) ([]rhythm.Element[model.Note], error) {
	var bar []rhythm.Element[model.Note]
	for i, b := range bodies {
		d, err := duration.Parse(b.Dur)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		note, err := noteFromBody(b)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		bar = append(bar, rhythm.Element[model.Note]{Dur: d, Value: note})
	}
	return bar, nil
}

func scoreFromBody(body model.ScoreBody) (*score.Score, error) {
	sc := &score.Score{Title: body.Title}
	for _, pb := range body.Parts {
		part := &score.Part{Name: pb.Name, Program: pb.Program, Channel: pb.Channel}
		for i, eb := range pb.Events {
			start, err := duration.Parse(eb.Start)
			if err != nil {
				return nil, fmt.Errorf("part %q event %d: %w", pb.Name, i, err)
			}
			d, err := duration.Parse(eb.Dur)
			if err != nil {
				return nil, fmt.Errorf("part %q event %d: %w", pb.Name, i, err)
			}
			note, err := noteFromBody(eb)
			if err != nil {
				return nil, fmt.Errorf("part %q event %d: %w", pb.Name, i, err)
			}
			part.Events = append(part.Events, score.Event{Start: start, Dur: d, Note: note})
		}
		sc.Parts = append(sc.Parts, part)
	}
	return sc, nil
}

func treeBody(tree rhythm.Tree[model.Note]) model.TreeBody {
	switch t := tree.(type) {
	case rhythm.Beat[model.Note]:
		b := model.TreeBody{Kind: "beat", Dur: t.Dur.RatString()}
		if t.Value == nil {
			b.Rest = true
		} else {
			b.Pitch = pitch.Name(t.Value.Pitch)
		}
		return b
	case rhythm.Dotted[model.Note]:
		return model.TreeBody{
			Kind:     "dotted",
			Dots:     t.Dots,
			Children: []model.TreeBody{treeBody(t.Note)},
		}
	case rhythm.Tuplet[model.Note]:
		return model.TreeBody{
			Kind:     "tuplet",
			Ratio:    t.Ratio.RatString(),
			Children: []model.TreeBody{treeBody(t.Body)},
		}
	case rhythm.Sequence[model.Note]:
		b := model.TreeBody{Kind: "sequence"}
		for _, c := range t.Children {
			b.Children = append(b.Children, treeBody(c))
		}
		return b
	}
	return model.TreeBody{}
}

func remainderStrings(rem []rhythm.Element[model.Note]) []string {
	var out []string
	for _, el := range rem {
		out = append(out, el.Dur.RatString())
	}
	return out
}
