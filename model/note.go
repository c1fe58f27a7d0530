package model

// Note is a sounding note. Pitch is a MIDI note number, Velocity 0-127.
type Note struct {
	Pitch    uint8
	Velocity uint8
}
