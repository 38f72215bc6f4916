package i18n

import (
	"errors"
	"strings"
)

var ErrUnsupportedLanguage = errors.New("unsupported language")

type Language string

const (
	English Language = "en"
	German  Language = "de"

	DefaultLanguage = English
)

var supported = []Language{English, German}

func Supported() []Language {
	out := make([]Language, len(supported))
	copy(out, supported)
	return out
}

func (l Language) String() string { return string(l) }

func (l Language) IsValid() bool {
	return l == English || l == German
}

func ParseLanguage(s string) (Language, error) {
	l := Language(strings.ToLower(strings.TrimSpace(s)))
	if !l.IsValid() {
		return "", ErrUnsupportedLanguage
	}
	return l, nil
}

// ParseOrDefault never fails; unknown codes resolve to English.
func ParseOrDefault(s string) Language {
	l, err := ParseLanguage(s)
	if err != nil {
		return DefaultLanguage
	}
	return l
}

// FromAcceptLanguage picks the first supported primary tag of an Accept-Language header.
func FromAcceptLanguage(header string) (Language, bool) {
	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		primary := strings.SplitN(tag, "-", 2)[0]
		if l, err := ParseLanguage(primary); err == nil {
			return l, true
		}
	}
	return "", false
}

// Text is a string stored once per supported language.
type Text struct {
	EN string `json:"en" yaml:"en"`
	DE string `json:"de" yaml:"de"`
}

func NewText(en, de string) Text {
	return Text{EN: strings.TrimSpace(en), DE: strings.TrimSpace(de)}
}

// In returns the text for lang, falling back to English when it is missing.
func (t Text) In(lang Language) string {
	if lang == German && t.DE != "" {
		return t.DE
	}
	return t.EN
}

func (t Text) IsComplete() bool {
	return t.EN != "" && t.DE != ""
}

func (t Text) IsEmpty() bool {
	return t.EN == "" && t.DE == ""
}
