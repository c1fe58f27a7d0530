package midi

import (
	"errors"
	"fmt"
	"math/big"
	"sort"

	"github.com/silky/music-score/model"
	"github.com/silky/music-score/score"
	"gitlab.com/gomidi/midi/v2/smf"
)

type reducedEvent struct {
	tick      int64
	isNoteOff bool
	note      uint8
	velocity  uint8
}

// Import converts an SMF into a score, one part per track that contains
// notes. Tick offsets become exact rationals over the file's metric tick
// base, so no timing precision is lost before quantization.
func Import(s *smf.SMF) (*score.Score, error) {
	ticks, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok {
		return nil, errors.New("only metric-tick midi files are supported")
	}
	ticksPerBar := int64(ticks) * 4

	sc := &score.Score{}
	for num, events := range s.Tracks {
		part := importTrack(events, num, ticksPerBar)
		if len(part.Events) > 0 {
			sc.Parts = append(sc.Parts, part)
		}
	}
	if len(sc.Parts) == 0 {
		return nil, errors.New("no notes in midi file")
	}
	return sc, nil
}

func importTrack(events smf.Track, num int, ticksPerBar int64) *score.Part {
	part := &score.Part{Name: fmt.Sprintf("Track %d", num)}

	var reduced []reducedEvent
	var absTicks int64
	for _, event := range events {
		absTicks += int64(event.Delta)
		var channel uint8
		var key uint8
		var velocity uint8
		var text string
		switch {
		case event.Message.GetNoteStart(&channel, &key, &velocity):
			part.Channel = channel
			reduced = append(reduced, reducedEvent{tick: absTicks, note: key, velocity: velocity})
		case event.Message.GetNoteEnd(&channel, &key):
			reduced = append(reduced, reducedEvent{tick: absTicks, isNoteOff: true, note: key})
		case event.Message.GetProgramChange(&channel, &key):
			part.Program = key
		case event.Message.GetMetaTrackName(&text):
			part.Name = text
		}
	}

	// smaller offsets first, note-offs before note-ons at the same tick
	sort.SliceStable(reduced, func(i, j int) bool {
		if reduced[i].tick != reduced[j].tick {
			return reduced[i].tick < reduced[j].tick
		}
		return reduced[i].isNoteOff && !reduced[j].isNoteOff
	})

	pressed := make(map[uint8]reducedEvent)
	for _, evt := range reduced {
		if evt.isNoteOff {
			on, ok := pressed[evt.note]
			if !ok || evt.tick <= on.tick {
				continue
			}
			delete(pressed, evt.note)
			part.Events = append(part.Events, score.Event{
				Start: big.NewRat(on.tick, ticksPerBar),
				Dur:   big.NewRat(evt.tick-on.tick, ticksPerBar),
				Note:  &model.Note{Pitch: evt.note, Velocity: on.velocity},
			})
		} else {
			pressed[evt.note] = evt
		}
	}
	return part
}
