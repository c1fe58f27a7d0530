package pitch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameAndParseRoundTrip(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Name(60), "C4")
	assert.Equal(Name(61), "C#4")
	assert.Equal(Name(69), "A4")
	assert.Equal(Name(21), "A0")

	for _, n := range []uint8{0, 21, 59, 60, 61, 69, 108, 127} {
		parsed, err := Parse(Name(n))
		assert.Nil(err)
		assert.Equal(parsed, n)
	}
}

func TestParseAccidentals(t *testing.T) {
	assert := assert.New(t)

	sharp, err := Parse("F#3")
	assert.Nil(err)
	assert.Equal(sharp, uint8(54))

	flat, err := Parse("Bb4")
	assert.Nil(err)
	assert.Equal(flat, uint8(70))

	_, err = Parse("H2")
	assert.NotNil(err)
	_, err = Parse("C")
	assert.NotNil(err)
}

func TestStep(t *testing.T) {
	assert := assert.New(t)

	step, alter, octave := Step(61)
	assert.Equal(step, "C")
	assert.Equal(alter, 1)
	assert.Equal(octave, 4)

	step, alter, octave = Step(67)
	assert.Equal(step, "G")
	assert.Equal(alter, 0)
	assert.Equal(octave, 4)
}

func TestVelocity(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(Velocity("pp"), uint8(33))
	assert.Equal(Velocity("ff"), uint8(112))
	assert.Equal(Velocity(""), uint8(80))
}
