package translit

import "errors"

var (
	// ErrUnavailable indicates the external transliteration tools cannot
	// be reached or executed.
	ErrUnavailable = errors.New("translit: external transliterator unavailable")

	// ErrUnsupportedText indicates input the fallback table cannot map.
	ErrUnsupportedText = errors.New("translit: text not covered by fallback table")
)

// Transliterator converts plain text into Unicode Braille pattern runes,
// one rune per cell. Newlines pass through as '\n' line separators.
type Transliterator interface {
	Translate(text string) (string, error)
}

// BackTranslator converts Braille pattern runes back into approximate
// plain text. It is an optional capability: discover it by asserting a
// Transliterator to this interface. Implementations that cannot back-
// translate simply do not implement it, and callers degrade gracefully.
type BackTranslator interface {
	BackTranslate(symbols string) (string, error)
}
