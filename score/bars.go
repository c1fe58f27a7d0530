package score

import (
	"github.com/silky/music-score/duration"
	"github.com/silky/music-score/model"
	"github.com/silky/music-score/rhythm"
)

// Bars flattens a part into per-bar element lists ready for the quantizer:
// every gap between events becomes an explicit rest, events crossing a bar
// line are split at the boundary, and the final partial bar is padded with a
// rest, so each returned bar's durations sum to exactly barLen.
//
// Overlapping events are flattened by onset order; the earlier event sounds
// until it ends, and the later one keeps only its tail past that point
// (monophonic assumption per part).
//
// TODO: mark elements produced by splitting a note so the MusicXML emitter
// can tie them instead of re-striking.
func (p *Part) Bars(barLen duration.Dur) [][]rhythm.Element[model.Note] {
	flat := p.flatten()
	if len(flat) == 0 {
		return nil
	}

	var bars [][]rhythm.Element[model.Note]
	var bar []rhythm.Element[model.Note]
	left := duration.Set(barLen) // room left in the open bar

	push := func(el rhythm.Element[model.Note]) {
		bar = append(bar, el)
		left = duration.Sub(left, el.Dur)
		if left.Sign() == 0 {
			bars = append(bars, bar)
			bar = nil
			left = duration.Set(barLen)
		}
	}

	for _, el := range flat {
		d := el.Dur
		// split at every bar line the element crosses
		for d.Cmp(left) > 0 {
			head := duration.Set(left)
			d = duration.Sub(d, head)
			push(rhythm.Element[model.Note]{Dur: head, Value: el.Value})
		}
		if d.Sign() > 0 {
			push(rhythm.Element[model.Note]{Dur: d, Value: el.Value})
		}
	}
	if len(bar) > 0 {
		push(rhythm.Element[model.Note]{Dur: left, Value: nil})
	}
	return bars
}

// flatten produces a gapless element sequence from time zero: notes where
// notes sound, rests everywhere else.
func (p *Part) flatten() []rhythm.Element[model.Note] {
	events := sortEvents(p.Events)
	var out []rhythm.Element[model.Note]
	pos := duration.Zero()
	for _, e := range events {
		if e.Dur.Sign() <= 0 {
			continue
		}
		start := e.Start
		dur := e.Dur
		if start.Cmp(pos) < 0 {
			// overlapping note: keep only the part past the current position
			dur = duration.Sub(e.End(), pos)
			if dur.Sign() <= 0 {
				continue
			}
			start = pos
		} else if start.Cmp(pos) > 0 {
			out = append(out, rhythm.Element[model.Note]{Dur: duration.Sub(start, pos), Value: nil})
		}
		out = append(out, rhythm.Element[model.Note]{Dur: dur, Value: e.Note})
		pos = duration.Add(start, dur)
	}
	return out
}
