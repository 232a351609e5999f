package gift

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
)

// ParseMessages decodes the provider's structured text into exactly Count
// gifts. Extra items are dropped; fewer items, an empty body or a gift with a
// missing field is an error.
func ParseMessages(text string) ([]Message, error) {
	text = stripFences(text)
	if text == "" {
		return nil, ErrEmptyResponse
	}

	var msgs []Message
	if err := json.Unmarshal([]byte(text), &msgs); err != nil {
		return nil, fmt.Errorf("failed to parse gifts: %w", err)
	}

	if len(msgs) < Count {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrShortResponse, len(msgs), Count)
	}
	msgs = msgs[:Count:Count]

	for i := range msgs {
		msgs[i].Title = strings.TrimSpace(msgs[i].Title)
		msgs[i].Message = strings.TrimSpace(msgs[i].Message)
		msgs[i].Emoji = strings.TrimSpace(msgs[i].Emoji)
		if err := msgs[i].validate(); err != nil {
			return nil, fmt.Errorf("gift %d: %w", i, err)
		}
	}
	return msgs, nil
}

// stripFences removes a surrounding markdown code fence some models emit
// even in JSON mode.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	// Drop the info string ("json", "JSON", ...) after the opening fence.
	s = strings.TrimLeftFunc(s, unicode.IsLetter)
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
