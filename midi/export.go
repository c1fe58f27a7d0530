package midi

import (
	"sort"

	"github.com/silky/music-score/constants"
	"github.com/silky/music-score/duration"
	"github.com/silky/music-score/score"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

type noteEdge struct {
	tick uint32
	off  bool
	key  uint8
	vel  uint8
	chn  uint8
}

// Export renders a score to a format-1 SMF at 960 ticks per quarter, one
// track per part plus tempo/meter on the first.
func Export(sc *score.Score) *smf.SMF {
	var res smf.SMF
	res.TimeFormat = smf.MetricTicks(constants.TicksPerQuarter)

	for i, part := range sc.Parts {
		var tr smf.Track
		if i == 0 {
			tr.Add(0, smf.MetaMeter(4, 4))
			tr.Add(0, smf.MetaTempo(constants.DefaultTempo))
		}
		if part.Name != "" {
			tr.Add(0, smf.MetaTrackSequenceName(part.Name))
		}
		tr.Add(0, midi.ProgramChange(part.Channel, part.Program))

		edges := partEdges(part)
		var lastTick uint32
		for _, e := range edges {
			delta := e.tick - lastTick
			lastTick = e.tick
			if e.off {
				tr.Add(delta, midi.NoteOff(e.chn, e.key))
			} else {
				tr.Add(delta, midi.NoteOn(e.chn, e.key, e.vel))
			}
		}
		tr.Close(0)
		res.Tracks = append(res.Tracks, tr)
	}
	return &res
}

func partEdges(part *score.Part) []noteEdge {
	var edges []noteEdge
	for _, ev := range part.Events {
		if ev.Note == nil || ev.Dur.Sign() <= 0 {
			continue
		}
		edges = append(edges, noteEdge{
			tick: toTicks(ev.Start),
			key:  ev.Note.Pitch,
			vel:  ev.Note.Velocity,
			chn:  part.Channel,
		})
		edges = append(edges, noteEdge{
			tick: toTicks(ev.End()),
			off:  true,
			key:  ev.Note.Pitch,
			chn:  part.Channel,
		})
	}
	// offs before ons at the same tick, so repeated notes restrike cleanly
	sort.SliceStable(edges, func(i, j int) bool {
		if edges[i].tick != edges[j].tick {
			return edges[i].tick < edges[j].tick
		}
		return edges[i].off && !edges[j].off
	})
	return edges
}

func toTicks(d duration.Dur) uint32 {
	t := duration.Mul(d, duration.FromInt(constants.TicksPerBar))
	f, _ := t.Float64()
	return uint32(f + 0.5)
}
