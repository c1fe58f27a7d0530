// Package score holds the performance-level containers and their
// compositional operations. All transforms return new values; the receivers
// are never mutated, so scores compose like values.
package score

import (
	"sort"

	"github.com/silky/music-score/duration"
	"github.com/silky/music-score/model"
)

// Event is one timed entry of a part. Start and Dur are in whole-bar units.
// A nil Note is an explicit rest.
type Event struct {
	Start duration.Dur
	Dur   duration.Dur
	Note  *model.Note
}

func (e Event) End() duration.Dur {
	return duration.Add(e.Start, e.Dur)
}

type Part struct {
	ID      string
	Name    string
	Program uint8
	Channel uint8
	Events  []Event
}

type Score struct {
	Title string
	Parts []*Part
}

// Duration of a part is the end of its last-sounding event.
func (p *Part) Duration() duration.Dur {
	total := duration.Zero()
	for _, e := range p.Events {
		if end := e.End(); end.Cmp(total) > 0 {
			total = end
		}
	}
	return total
}

func (s *Score) Duration() duration.Dur {
	total := duration.Zero()
	for _, p := range s.Parts {
		if d := p.Duration(); d.Cmp(total) > 0 {
			total = d
		}
	}
	return total
}

func (p *Part) mapEvents(f func(Event) Event) *Part {
	out := &Part{ID: p.ID, Name: p.Name, Program: p.Program, Channel: p.Channel}
	out.Events = make([]Event, 0, len(p.Events))
	for _, e := range p.Events {
		out.Events = append(out.Events, f(e))
	}
	return out
}

// Delay shifts every event later by d.
func (p *Part) Delay(d duration.Dur) *Part {
	return p.mapEvents(func(e Event) Event {
		return Event{Start: duration.Add(e.Start, d), Dur: e.Dur, Note: e.Note}
	})
}

// Stretch scales every onset and duration by f.
func (p *Part) Stretch(f duration.Dur) *Part {
	return p.mapEvents(func(e Event) Event {
		return Event{Start: duration.Mul(e.Start, f), Dur: duration.Mul(e.Dur, f), Note: e.Note}
	})
}

func (s *Score) Delay(d duration.Dur) *Score {
	out := &Score{Title: s.Title}
	for _, p := range s.Parts {
		out.Parts = append(out.Parts, p.Delay(d))
	}
	return out
}

func (s *Score) Stretch(f duration.Dur) *Score {
	out := &Score{Title: s.Title}
	for _, p := range s.Parts {
		out.Parts = append(out.Parts, p.Stretch(f))
	}
	return out
}

// Par plays both scores at once. The empty score is the identity.
func Par(a, b *Score) *Score {
	out := &Score{Title: a.Title}
	if out.Title == "" {
		out.Title = b.Title
	}
	out.Parts = append(out.Parts, a.Parts...)
	out.Parts = append(out.Parts, b.Parts...)
	return out
}

// Seq plays b after a, shifting all of b by a's total duration.
func Seq(a, b *Score) *Score {
	return Par(a, b.Delay(a.Duration()))
}

// sortEvents orders a part's events by onset, keeping input order for equal
// onsets.
func sortEvents(events []Event) []Event {
	out := make([]Event, len(events))
	copy(out, events)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start.Cmp(out[j].Start) < 0
	})
	return out
}
