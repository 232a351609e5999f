// Package gift generates the three "wisdom gift" messages for a wish through
// the Gemini API, degrading to a fixed fallback list whenever generation fails.
package gift

import (
	"errors"
)

// Count is the number of gifts produced per wish.
const Count = 3

// Message is one generated or fallback gift.
type Message struct {
	Title   string `json:"title"`   // 2-3 word label
	Message string `json:"message"` // short advice, ~25 words
	Emoji   string `json:"emoji"`   // single glyph
}

var (
	// ErrEmptyResponse is returned when the provider sent no text.
	ErrEmptyResponse = errors.New("empty response text")
	// ErrShortResponse is returned when fewer than Count gifts came back.
	ErrShortResponse = errors.New("too few gifts in response")
	// ErrMissingField is returned when a gift lacks a required field.
	ErrMissingField = errors.New("gift missing required field")
)

func (m Message) validate() error {
	switch {
	case m.Title == "":
		return errors.Join(ErrMissingField, errors.New("title"))
	case m.Message == "":
		return errors.Join(ErrMissingField, errors.New("message"))
	case m.Emoji == "":
		return errors.Join(ErrMissingField, errors.New("emoji"))
	}
	return nil
}
