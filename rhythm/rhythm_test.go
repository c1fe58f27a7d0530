package rhythm

import (
	"testing"

	"github.com/silky/music-score/duration"
	"github.com/stretchr/testify/assert"
)

func beat(dur string, v string) Beat[string] {
	d, _ := duration.Parse(dur)
	return Beat[string]{Dur: d, Value: &v}
}

func TestTreeDurations(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(beat("1/2", "A").Duration().RatString(), "1/2")

	dotted := Dotted[string]{Dots: 1, Note: beat("1/2", "A")}
	assert.Equal(dotted.Duration().RatString(), "3/4")

	tuplet := Tuplet[string]{
		Ratio: duration.New(2, 3),
		Body: Sequence[string]{Children: []Tree[string]{
			beat("1/2", "A"), beat("1/2", "B"), beat("1/2", "C"),
		}},
	}
	assert.Equal(tuplet.Duration().RatString(), "1")

	seq := Sequence[string]{Children: []Tree[string]{dotted, beat("1/4", "B")}}
	assert.Equal(seq.Duration().RatString(), "1")
}

func TestRestString(t *testing.T) {
	d, _ := duration.Parse("1/4")
	r := Beat[string]{Dur: d}
	assert.Equal(t, r.String(), "rest(1/4)")
}
