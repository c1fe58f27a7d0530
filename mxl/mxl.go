// Package mxl reads and writes score-partwise MusicXML documents.
package mxl

import (
	"encoding/xml"
	"fmt"
	"io"

	"golang.org/x/net/html/charset"
)

type Doc struct {
	XMLName        xml.Name       `xml:"score-partwise"`
	Version        string         `xml:"version,attr,omitempty"`
	Identification Identification `xml:"identification"`
	PartList       PartList       `xml:"part-list"`
	Parts          []Part         `xml:"part"`
}

type Identification struct {
	Title    string   `xml:"movement-title,omitempty"`
	Encoding Encoding `xml:"encoding"`
}

type Encoding struct {
	Software string `xml:"software"`
	Date     string `xml:"encoding-date"`
}

type PartList struct {
	ScoreParts []ScorePart `xml:"score-part"`
}

type ScorePart struct {
	Id   string `xml:"id,attr"`
	Name string `xml:"part-name"`
}

type Part struct {
	Id       string    `xml:"id,attr"`
	Measures []Measure `xml:"measure"`
}

type Measure struct {
	Number int         `xml:"number,attr"`
	Attrs  *Attributes `xml:"attributes,omitempty"`
	Notes  []Note      `xml:"note"`
}

type Attributes struct {
	Divisions int   `xml:"divisions,omitempty"`
	Key       *Key  `xml:"key,omitempty"`
	Time      *Time `xml:"time,omitempty"`
	Clef      *Clef `xml:"clef,omitempty"`
}

type Key struct {
	Fifths int    `xml:"fifths"`
	Mode   string `xml:"mode,omitempty"`
}

type Time struct {
	Beats    int `xml:"beats"`
	BeatType int `xml:"beat-type"`
}

type Clef struct {
	Sign string `xml:"sign"`
	Line int    `xml:"line"`
}

type empty struct{}

type Note struct {
	Rest     *empty            `xml:"rest"`
	Pitch    *Pitch            `xml:"pitch"`
	Duration int               `xml:"duration"`
	Voice    int               `xml:"voice,omitempty"`
	Type     string            `xml:"type,omitempty"`
	Dots     []empty           `xml:"dot"`
	TimeMod  *TimeModification `xml:"time-modification"`
}

type Pitch struct {
	Step   string `xml:"step"`
	Alter  int    `xml:"alter,omitempty"`
	Octave int    `xml:"octave"`
}

type TimeModification struct {
	ActualNotes int `xml:"actual-notes"`
	NormalNotes int `xml:"normal-notes"`
}

// Encode writes the document with the standard XML header.
func (d *Doc) Encode(w io.Writer) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encoding musicxml: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Decode reads a MusicXML document, honouring its declared charset.
func Decode(r io.Reader) (*Doc, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel
	var doc Doc
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding musicxml: %w", err)
	}
	return &doc, nil
}
