package duration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArithmeticIsExact(t *testing.T) {
	assert := assert.New(t)

	third := New(1, 3)
	total := Sum([]Dur{third, third, third})
	assert.Equal(total.RatString(), "1")

	assert.Equal(Add(New(1, 2), New(1, 3)).RatString(), "5/6")
	assert.Equal(Sub(New(1, 2), New(1, 3)).RatString(), "1/6")
	assert.Equal(Mul(New(3, 4), New(2, 3)).RatString(), "1/2")
	assert.Equal(Div(New(3, 4), New(3, 2)).RatString(), "1/2")
}

func TestOpsDoNotMutateArguments(t *testing.T) {
	a := New(1, 2)
	b := New(1, 3)
	Add(a, b)
	Mul(a, b)
	Div(a, b)
	Sub(a, b)

	assert := assert.New(t)
	assert.Equal(a.RatString(), "1/2")
	assert.Equal(b.RatString(), "1/3")
}

func TestParse(t *testing.T) {
	assert := assert.New(t)

	d, err := Parse("3/4")
	assert.Nil(err)
	assert.Equal(d.RatString(), "3/4")

	d, err = Parse("2")
	assert.Nil(err)
	assert.Equal(d.RatString(), "2")

	_, err = Parse("x")
	assert.NotNil(err)
}

func TestIsPowerOfTwo(t *testing.T) {
	assert := assert.New(t)

	for _, s := range []string{"1", "2", "4", "1/2", "1/4", "1/64", "8"} {
		d, _ := Parse(s)
		assert.True(IsPowerOfTwo(d), "%v should be a power of two", s)
	}
	for _, s := range []string{"0", "3", "1/3", "3/4", "5/8", "-1/2", "7/4", "6"} {
		d, _ := Parse(s)
		assert.False(IsPowerOfTwo(d), "%v should not be a power of two", s)
	}

	// near misses that a float log2 would get wrong
	near, _ := Parse("4503599627370497/4503599627370496")
	assert.False(IsPowerOfTwo(near))
}
