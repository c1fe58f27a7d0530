package score

import (
	"testing"

	"github.com/silky/music-score/duration"
	"github.com/silky/music-score/model"
	"github.com/stretchr/testify/assert"
)

func note(pitch uint8) *model.Note {
	return &model.Note{Pitch: pitch, Velocity: 80}
}

func ev(start, dur string, n *model.Note) Event {
	s, err := duration.Parse(start)
	if err != nil {
		panic(err.Error())
	}
	d, err := duration.Parse(dur)
	if err != nil {
		panic(err.Error())
	}
	return Event{Start: s, Dur: d, Note: n}
}

func TestPartDuration(t *testing.T) {
	p := &Part{Events: []Event{
		ev("0", "1/2", note(60)),
		ev("1/2", "1/2", note(62)),
	}}
	assert.Equal(t, p.Duration().RatString(), "1")
}

func TestDelayShiftsOnsets(t *testing.T) {
	p := &Part{Events: []Event{ev("0", "1/4", note(60))}}
	delayed := p.Delay(duration.New(1, 2))

	assert := assert.New(t)
	assert.Equal(delayed.Events[0].Start.RatString(), "1/2")
	assert.Equal(delayed.Events[0].Dur.RatString(), "1/4")
	// original untouched
	assert.Equal(p.Events[0].Start.RatString(), "0")
}

func TestStretchScalesOnsetsAndDurations(t *testing.T) {
	p := &Part{Events: []Event{ev("1/2", "1/4", note(60))}}
	stretched := p.Stretch(duration.New(2, 1))

	assert := assert.New(t)
	assert.Equal(stretched.Events[0].Start.RatString(), "1")
	assert.Equal(stretched.Events[0].Dur.RatString(), "1/2")
}

func TestSeqShiftsSecondScore(t *testing.T) {
	a := &Score{Parts: []*Part{{Name: "a", Events: []Event{ev("0", "1", note(60))}}}}
	b := &Score{Parts: []*Part{{Name: "b", Events: []Event{ev("0", "1/2", note(64))}}}}

	combined := Seq(a, b)

	assert := assert.New(t)
	assert.Equal(len(combined.Parts), 2)
	assert.Equal(combined.Parts[1].Events[0].Start.RatString(), "1")
	assert.Equal(combined.Duration().RatString(), "3/2")
}

func TestParKeepsOnsets(t *testing.T) {
	a := &Score{Parts: []*Part{{Name: "a", Events: []Event{ev("0", "1", note(60))}}}}
	b := &Score{Parts: []*Part{{Name: "b", Events: []Event{ev("0", "1/2", note(64))}}}}

	combined := Par(a, b)

	assert := assert.New(t)
	assert.Equal(len(combined.Parts), 2)
	assert.Equal(combined.Parts[1].Events[0].Start.RatString(), "0")
	assert.Equal(combined.Duration().RatString(), "1")
}
