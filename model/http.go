package model

// JSON bodies for the serve command and the export file format.

type EventBody struct {
	Start string `json:"start"`
	Dur   string `json:"dur"`
	// Pitch is a literal like "C#4"; empty means rest.
	Pitch string `json:"pitch,omitempty"`
	// Dynamic is a mark like "mf"; ignored when Velocity is set.
	Dynamic  string `json:"dynamic,omitempty"`
	Velocity uint8  `json:"velocity,omitempty"`
}

type PartBody struct {
	Name    string      `json:"name"`
	Program uint8       `json:"program"`
	Channel uint8       `json:"channel"`
	Events  []EventBody `json:"events"`
}

type ScoreBody struct {
	Title string     `json:"title"`
	Parts []PartBody `json:"parts"`
}

type QuantizeRequestBody struct {
	Bar []EventBody `json:"bar"`
}

type TreeBody struct {
	Kind     string     `json:"kind"` // beat, dotted, tuplet, sequence
	Dur      string     `json:"dur,omitempty"`
	Pitch    string     `json:"pitch,omitempty"`
	Rest     bool       `json:"rest,omitempty"`
	Dots     int        `json:"dots,omitempty"`
	Ratio    string     `json:"ratio,omitempty"`
	Children []TreeBody `json:"children,omitempty"`
}

type QuantizeResponse struct {
	Tree TreeBody `json:"tree"`
}

type ExportResponse struct {
	Id    string   `json:"id"`
	Files []string `json:"files"`
}

type ErrorResponse struct {
	Error     string   `json:"detail"`
	Remainder []string `json:"remainder,omitempty"`
}
