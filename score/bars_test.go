package score

import (
	"testing"

	"github.com/silky/music-score/duration"
	"github.com/silky/music-score/model"
	"github.com/silky/music-score/rhythm"
	"github.com/stretchr/testify/assert"
)

func barTotal(bar []rhythm.Element[model.Note]) string {
	total := duration.Zero()
	for _, el := range bar {
		total = duration.Add(total, el.Dur)
	}
	return total.RatString()
}

func TestBarsInsertRestsInGaps(t *testing.T) {
	p := &Part{Events: []Event{
		ev("0", "1/4", note(60)),
		ev("1/2", "1/2", note(62)),
	}}
	bars := p.Bars(duration.One())

	assert := assert.New(t)
	assert.Equal(len(bars), 1)
	assert.Equal(len(bars[0]), 3)
	assert.Nil(bars[0][1].Value)
	assert.Equal(bars[0][1].Dur.RatString(), "1/4")
	assert.Equal(barTotal(bars[0]), "1")
}

func TestBarsPadFinalBar(t *testing.T) {
	p := &Part{Events: []Event{ev("0", "3/2", note(60))}}
	bars := p.Bars(duration.One())

	assert := assert.New(t)
	assert.Equal(len(bars), 2)
	assert.Equal(barTotal(bars[0]), "1")
	assert.Equal(barTotal(bars[1]), "1")
	// second bar: half-bar tail of the note, then a padding rest
	assert.NotNil(bars[1][0].Value)
	assert.Equal(bars[1][0].Dur.RatString(), "1/2")
	assert.Nil(bars[1][1].Value)
	assert.Equal(bars[1][1].Dur.RatString(), "1/2")
}

func TestBarsSplitAtBoundary(t *testing.T) {
	// one note from 3/4 to 5/4 must split into 1/4 + 1/4
	p := &Part{Events: []Event{
		ev("0", "3/4", note(60)),
		ev("3/4", "1/2", note(62)),
	}}
	bars := p.Bars(duration.One())

	assert := assert.New(t)
	assert.Equal(len(bars), 2)
	assert.Equal(barTotal(bars[0]), "1")
	assert.Equal(bars[0][1].Dur.RatString(), "1/4")
	assert.Equal(bars[1][0].Dur.RatString(), "1/4")
	assert.Equal(bars[0][1].Value, bars[1][0].Value)
}

func TestBarsQuantizeCleanly(t *testing.T) {
	p := &Part{Events: []Event{
		ev("0", "1/3", note(60)),
		ev("1/3", "1/3", note(62)),
		ev("2/3", "1/3", note(64)),
	}}
	bars := p.Bars(duration.One())

	assert := assert.New(t)
	assert.Equal(len(bars), 1)
	tree, err := rhythm.Quantize(bars[0])
	assert.Nil(err)
	assert.True(duration.Eq(tree.Duration(), duration.One()))
}

func TestFlattenOverlapKeepsEarlierEvent(t *testing.T) {
	// D starts while C still sounds: C keeps its full half, D keeps only
	// the quarter past C's end
	p := &Part{Events: []Event{
		ev("0", "1/2", note(60)),
		ev("1/4", "1/2", note(62)),
	}}
	bars := p.Bars(duration.One())

	assert := assert.New(t)
	assert.Equal(len(bars), 1)
	assert.Equal(len(bars[0]), 3)
	assert.Equal(bars[0][0].Value.Pitch, uint8(60))
	assert.Equal(bars[0][0].Dur.RatString(), "1/2")
	assert.Equal(bars[0][1].Value.Pitch, uint8(62))
	assert.Equal(bars[0][1].Dur.RatString(), "1/4")
	assert.Nil(bars[0][2].Value)
	assert.Equal(bars[0][2].Dur.RatString(), "1/4")
}

func TestFlattenDropsFullyCoveredEvent(t *testing.T) {
	p := &Part{Events: []Event{
		ev("0", "1/2", note(60)),
		ev("1/4", "1/8", note(62)),
		ev("1/2", "1/2", note(64)),
	}}
	bars := p.Bars(duration.One())

	assert := assert.New(t)
	assert.Equal(len(bars), 1)
	assert.Equal(len(bars[0]), 2)
	assert.Equal(bars[0][0].Value.Pitch, uint8(60))
	assert.Equal(bars[0][1].Value.Pitch, uint8(64))
}

func TestFlattenLeadingRest(t *testing.T) {
	p := &Part{Events: []Event{ev("1/2", "1/2", note(60))}}
	bars := p.Bars(duration.One())

	assert := assert.New(t)
	assert.Equal(len(bars), 1)
	assert.Nil(bars[0][0].Value)
	assert.Equal(bars[0][0].Dur.RatString(), "1/2")
}
