// Package lang defines the two display languages of the wish gallery and the
// fixed table of user-facing labels keyed by them.
package lang

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Language is a supported display language tag.
type Language string

const (
	// Primary is the default display language (English).
	Primary Language = "en"
	// Secondary is the alternate display language (Chinese).
	Secondary Language = "zh"
)

// ErrUnknownLanguage is returned by Parse for tags outside the supported pair.
var ErrUnknownLanguage = errors.New("unsupported language")

var (
	englishBase, _ = language.English.Base()
	chineseBase, _ = language.Chinese.Base()
)

// Parse maps a BCP-47 tag (en, en-GB, zh-Hans, zh-TW, ...) onto a supported
// Language by its base language. The names "primary" and "secondary" are
// accepted as aliases.
func Parse(s string) (Language, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch s {
	case "primary":
		return Primary, nil
	case "secondary":
		return Secondary, nil
	}

	tag, err := language.Parse(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrUnknownLanguage, s, err)
	}
	base, _ := tag.Base()
	switch base {
	case englishBase:
		return Primary, nil
	case chineseBase:
		return Secondary, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, s)
}

// Valid reports whether l is one of the two supported languages.
func (l Language) Valid() bool {
	return l == Primary || l == Secondary
}

// Toggle returns the other supported language. Anything that is not
// Secondary toggles to Secondary.
func (l Language) Toggle() Language {
	if l == Secondary {
		return Primary
	}
	return Secondary
}

// Tag returns the x/text language tag for l.
func (l Language) Tag() language.Tag {
	if l == Secondary {
		return language.Chinese
	}
	return language.English
}

// DisplayName returns the language's name written in itself ("English", "中文").
func (l Language) DisplayName() string {
	return display.Self.Name(l.Tag())
}

// EnglishName is the language's English name, used when instructing the
// generation model.
func (l Language) EnglishName() string {
	return display.English.Languages().Name(l.Tag())
}

func (l Language) String() string {
	return string(l)
}
