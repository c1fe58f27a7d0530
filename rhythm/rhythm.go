// Package rhythm turns the flat durations of one bar into notatable rhythm
// trees: beats, dotted beats, tuplets and sequences thereof.
package rhythm

import (
	"fmt"
	"strings"

	"github.com/silky/music-score/duration"
)

// Element is one entry of a bar as handed to the quantizer. A nil Value is a
// rest.
type Element[T any] struct {
	Dur   duration.Dur
	Value *T
}

// Tree is a quantized rhythm. Trees are only ever built by Quantize, which
// guarantees the notation invariants (dots <= 3, no nested tuplets, beats are
// power-of-two subdivisions), so consumers can walk them without validating.
type Tree[T any] interface {
	// Duration is the exact total duration covered by this subtree. For a
	// successfully quantized bar it equals the sum of the input durations.
	Duration() duration.Dur
	fmt.Stringer
}

// Beat is a single note or rest. Dur is the *notated* duration, i.e. the
// input duration with any enclosing dot/tuplet modification divided out;
// the wrappers multiply it back.
type Beat[T any] struct {
	Dur   duration.Dur
	Value *T
}

func (b Beat[T]) Duration() duration.Dur {
	return b.Dur
}

func (b Beat[T]) String() string {
	if b.Value == nil {
		return fmt.Sprintf("rest(%s)", b.Dur.RatString())
	}
	return fmt.Sprintf("beat(%s %v)", b.Dur.RatString(), *b.Value)
}

type Dotted[T any] struct {
	Dots int
	Note Beat[T]
}

func (d Dotted[T]) Duration() duration.Dur {
	return duration.Mul(d.Note.Dur, DotModifier(d.Dots))
}

func (d Dotted[T]) String() string {
	return fmt.Sprintf("dotted(%d %s)", d.Dots, d.Note)
}

type Tuplet[T any] struct {
	Ratio duration.Dur
	Body  Tree[T]
}

func (t Tuplet[T]) Duration() duration.Dur {
	return duration.Mul(t.Body.Duration(), t.Ratio)
}

func (t Tuplet[T]) String() string {
	return fmt.Sprintf("tuplet(%s %s)", t.Ratio.RatString(), t.Body)
}

type Sequence[T any] struct {
	Children []Tree[T]
}

func (s Sequence[T]) Duration() duration.Dur {
	total := duration.Zero()
	for _, c := range s.Children {
		total.Add(total, c.Duration())
	}
	return total
}

func (s Sequence[T]) String() string {
	parts := make([]string, 0, len(s.Children))
	for _, c := range s.Children {
		parts = append(parts, c.String())
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// DotModifier is the duration multiplier for an n-dotted note:
// (2^(n+1) - 1) / 2^n, so 3/2, 7/4, 15/8 for one, two, three dots.
func DotModifier(n int) duration.Dur {
	return duration.New(int64(1)<<(n+1)-1, int64(1)<<n)
}

// TupletRatios are the candidate notated/actual ratios, in preference order:
// triplet, quintuplet, septuplet, nonuplet. Sextuplets are deliberately
// absent; a sextuplet is notated as a triplet of pairs.
func TupletRatios() []duration.Dur {
	return []duration.Dur{
		duration.New(2, 3),
		duration.New(4, 5),
		duration.New(4, 7),
		duration.New(8, 9),
	}
}
