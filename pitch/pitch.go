// Package pitch converts between MIDI note numbers and literals like "C#4",
// and maps dynamic marks to velocities.
package pitch

import (
	"fmt"
	"strconv"
	"strings"
)

var names = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var steps = map[byte]int{'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11}

// Name renders a MIDI note number as note name plus octave, middle C (60)
// being "C4".
func Name(n uint8) string {
	return fmt.Sprintf("%s%d", names[n%12], int(n)/12-1)
}

// Parse reads a literal like "C4", "F#3" or "Bb5".
func Parse(s string) (uint8, error) {
	if len(s) < 2 {
		return 0, fmt.Errorf("bad pitch %q", s)
	}
	step, ok := steps[s[0]]
	if !ok {
		return 0, fmt.Errorf("bad pitch %q", s)
	}
	rest := s[1:]
	for len(rest) > 0 {
		if rest[0] == '#' {
			step++
		} else if rest[0] == 'b' {
			step--
		} else {
			break
		}
		rest = rest[1:]
	}
	octave, err := strconv.Atoi(rest)
	if err != nil {
		return 0, fmt.Errorf("bad pitch %q", s)
	}
	n := (octave+1)*12 + step
	if n < 0 || n > 127 {
		return 0, fmt.Errorf("pitch %q out of midi range", s)
	}
	return uint8(n), nil
}

// Step splits a note number for MusicXML: natural step letter, chromatic
// alteration (0 or 1, sharps only) and octave.
func Step(n uint8) (string, int, int) {
	name := names[n%12]
	alter := 0
	if strings.HasSuffix(name, "#") {
		alter = 1
		name = name[:1]
	}
	return name, alter, int(n)/12 - 1
}

var dynamics = map[string]uint8{
	"pp": 33,
	"p":  49,
	"mp": 64,
	"mf": 80,
	"f":  96,
	"ff": 112,
}

// Velocity maps a dynamic mark to a MIDI velocity, defaulting to mf.
func Velocity(mark string) uint8 {
	if v, ok := dynamics[mark]; ok {
		return v
	}
	return dynamics["mf"]
}
