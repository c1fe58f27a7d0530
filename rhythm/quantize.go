package rhythm

import (
	"fmt"

	"github.com/silky/music-score/duration"
)

const MaxDots = 3
const MaxTupletDepth = 1

type ErrKind int

const (
	// ErrUnquantizable: no beat/dot/tuplet combination matches the input.
	ErrUnquantizable ErrKind = iota
	// ErrTrailing: a valid prefix was quantized but input remained, which
	// means the bar length disagreed with the caller's slicing.
	ErrTrailing
	// ErrInvalid: empty bar or a negative duration.
	ErrInvalid
)

func (k ErrKind) String() string {
	switch k {
	case ErrUnquantizable:
		return "unquantizable duration"
	case ErrTrailing:
		return "trailing input"
	case ErrInvalid:
		return "invalid input"
	}
	return "unknown"
}

// QuantizationError reports why a bar could not be quantized. Remainder holds
// the unconsumed elements so callers can name the offending durations; its
// total duration plus whatever was consumed always equals the input total.
type QuantizationError[T any] struct {
	Kind      ErrKind
	Remainder []Element[T]
}

func (e *QuantizationError[T]) Error() string {
	if len(e.Remainder) == 0 {
		return e.Kind.String()
	}
	durs := make([]string, 0, len(e.Remainder))
	for _, el := range e.Remainder {
		durs = append(durs, el.Dur.RatString())
	}
	return fmt.Sprintf("%s: %d element(s) left: %v", e.Kind, len(e.Remainder), durs)
}

// state is the grammar's modification state. It is passed by value, so each
// alternative branches on its own copy and failed attempts can never leak a
// modified state into a sibling.
type state struct {
	mod   duration.Dur // cumulative dot/tuplet multiplier, starts at 1
	depth int          // tuplet nesting depth, starts at 0
}

// Quantize converts one bar's worth of (duration, value) elements into a
// rhythm tree. It is deterministic: alternatives are tried in a fixed order
// (beat, then dots 1..3, then tuplets 2/3, 4/5, 4/7, 8/9) and the first full
// parse wins. The whole input must be consumed; leftover elements fail the
// bar rather than being dropped.
func Quantize[T any](bar []Element[T]) (Tree[T], error) {
	if len(bar) == 0 {
		return nil, &QuantizationError[T]{Kind: ErrInvalid}
	}
	for _, el := range bar {
		if el.Dur == nil || el.Dur.Sign() < 0 {
			return nil, &QuantizationError[T]{Kind: ErrInvalid, Remainder: bar}
		}
	}
	tree, rest := parseRhythm(bar, state{mod: duration.One()})
	if tree == nil {
		return nil, &QuantizationError[T]{Kind: ErrUnquantizable, Remainder: bar}
	}
	if len(rest) > 0 {
		return nil, &QuantizationError[T]{Kind: ErrTrailing, Remainder: rest}
	}
	return tree, nil
}

// parseRhythm matches one or more elements, greedily. A nil tree means no
// element matched at all.
func parseRhythm[T any](in []Element[T], st state) (Tree[T], []Element[T]) {
	first, rest := parseElement(in, st)
	if first == nil {
		return nil, in
	}
	children := []Tree[T]{first}
	for {
		next, more := parseElement(rest, st)
		if next == nil {
			break
		}
		children = append(children, next)
		rest = more
	}
	if len(children) == 1 {
		return children[0], rest
	}
	return Sequence[T]{Children: children}, rest
}

func parseElement[T any](in []Element[T], st state) (Tree[T], []Element[T]) {
	if tree, rest := parseBeat(in, st); tree != nil {
		return tree, rest
	}
	if tree, rest := parseDotted(in, st); tree != nil {
		return tree, rest
	}
	return parseTuplet(in, st)
}

// parseBeat consumes one element if its duration, with the active time
// modification divided out, is an exact power-of-two subdivision. The beat
// keeps the divided-out (notated) duration.
func parseBeat[T any](in []Element[T], st state) (Tree[T], []Element[T]) {
	if len(in) == 0 {
		return nil, in
	}
	notated := duration.Div(in[0].Dur, st.mod)
	if !duration.IsPowerOfTwo(notated) {
		return nil, in
	}
	return Beat[T]{Dur: notated, Value: in[0].Value}, in[1:]
}

func parseDotted[T any](in []Element[T], st state) (Tree[T], []Element[T]) {
	for dots := 1; dots <= MaxDots; dots++ {
		dotted := st
		dotted.mod = duration.Mul(st.mod, DotModifier(dots))
		if tree, rest := parseBeat(in, dotted); tree != nil {
			return Dotted[T]{Dots: dots, Note: tree.(Beat[T])}, rest
		}
	}
	return nil, in
}

// parseTuplet wraps a full nested rhythm (one or more beats/dotted beats, no
// nested tuplets) under a candidate ratio.
func parseTuplet[T any](in []Element[T], st state) (Tree[T], []Element[T]) {
	if st.depth >= MaxTupletDepth {
		return nil, in
	}
	for _, ratio := range TupletRatios() {
		scaled := state{mod: duration.Mul(st.mod, ratio), depth: st.depth + 1}
		if body, rest := parseRhythm(in, scaled); body != nil {
			return Tuplet[T]{Ratio: ratio, Body: body}, rest
		}
	}
	return nil, in
}
