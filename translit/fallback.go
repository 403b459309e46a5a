package translit

import (
	"fmt"
	"strings"
	"unicode"
)

// Fallback is the internal emergency transliterator: a partial,
// uncontracted (grade-1-ish) lookup table covering letters, digits,
// space, comma, period, and three whole-word signs. It exists so the
// pipeline can run with no external tools at all, and for nothing else.
//
// Coverage is deliberately frozen — anything outside the table returns
// ErrUnsupportedText rather than guessing. Fallback does not implement
// BackTranslator.
//
// The zero value is ready to use.
type Fallback struct{}

// pat builds a Braille pattern rune from standard dot numbers (1..6).
func pat(dots ...int) rune {
	var mask rune
	for _, d := range dots {
		mask |= 1 << (d - 1)
	}

	return 0x2800 + mask
}

// blank is the Braille space, U+2800.
const blank = '⠀'

var (
	// capSign precedes an upper-case letter; doubled, it marks a whole
	// upper-case word.
	capSign = pat(6)

	// numSign precedes a run of digits.
	numSign = pat(3, 4, 5, 6)

	letters = map[rune]rune{
		'a': pat(1), 'b': pat(1, 2), 'c': pat(1, 4), 'd': pat(1, 4, 5),
		'e': pat(1, 5), 'f': pat(1, 2, 4), 'g': pat(1, 2, 4, 5),
		'h': pat(1, 2, 5), 'i': pat(2, 4), 'j': pat(2, 4, 5),
		'k': pat(1, 3), 'l': pat(1, 2, 3), 'm': pat(1, 3, 4),
		'n': pat(1, 3, 4, 5), 'o': pat(1, 3, 5), 'p': pat(1, 2, 3, 4),
		'q': pat(1, 2, 3, 4, 5), 'r': pat(1, 2, 3, 5), 's': pat(2, 3, 4),
		't': pat(2, 3, 4, 5), 'u': pat(1, 3, 6), 'v': pat(1, 2, 3, 6),
		'w': pat(2, 4, 5, 6), 'x': pat(1, 3, 4, 6), 'y': pat(1, 3, 4, 5, 6),
		'z': pat(1, 3, 5, 6),
	}

	// Digits 1..9,0 reuse the a..j codes behind the number sign.
	digits = map[rune]rune{
		'1': letters['a'], '2': letters['b'], '3': letters['c'],
		'4': letters['d'], '5': letters['e'], '6': letters['f'],
		'7': letters['g'], '8': letters['h'], '9': letters['i'],
		'0': letters['j'],
	}

	punctuation = map[rune]rune{
		',': pat(2),
		'.': pat(2, 5, 6),
	}

	// Whole-word signs, applied only when the word matches exactly.
	wordSigns = map[string]rune{
		"for": pat(1, 2, 3, 4, 5, 6),
		"and": pat(1, 2, 3, 4, 6),
		"the": pat(2, 3, 4, 6),
	}
)

// Translate maps text onto Braille pattern runes using the fallback
// table. Space becomes the blank cell, tab becomes two blank cells, and
// '\n' passes through. Any rune outside the table aborts the whole
// translation with ErrUnsupportedText naming the rune and its position.
func (Fallback) Translate(text string) (string, error) {
	var out strings.Builder
	runes := []rune(text)

	for i := 0; i < len(runes); {
		switch runes[i] {
		case '\n':
			out.WriteRune('\n')
			i++
		case ' ':
			out.WriteRune(blank)
			i++
		case '\t':
			out.WriteRune(blank)
			out.WriteRune(blank)
			i++
		default:
			j := i
			for j < len(runes) && !isSeparator(runes[j]) {
				j++
			}
			if err := writeWord(&out, runes[i:j], i); err != nil {
				return "", err
			}
			i = j
		}
	}

	return out.String(), nil
}

func isSeparator(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n'
}

// writeWord translates one separator-free word starting at rune offset
// in the original text (offset is only used for error reporting).
func writeWord(out *strings.Builder, word []rune, offset int) error {
	if sign, ok := wordSigns[string(word)]; ok {
		out.WriteRune(sign)

		return nil
	}

	// A whole upper-case word takes a doubled capital sign up front.
	if len(word) >= 2 && allUpper(word) {
		out.WriteRune(capSign)
		out.WriteRune(capSign)
		for _, r := range word {
			out.WriteRune(letters[unicode.ToLower(r)])
		}

		return nil
	}

	inNumber := false
	for k, r := range word {
		switch {
		case r >= 'a' && r <= 'z':
			inNumber = false
			out.WriteRune(letters[r])
		case r >= 'A' && r <= 'Z':
			inNumber = false
			out.WriteRune(capSign)
			out.WriteRune(letters[unicode.ToLower(r)])
		case r >= '0' && r <= '9':
			if !inNumber {
				out.WriteRune(numSign)
				inNumber = true
			}
			out.WriteRune(digits[r])
		default:
			p, ok := punctuation[r]
			if !ok {
				return fmt.Errorf("translit: rune %q at index %d: %w", r, offset+k, ErrUnsupportedText)
			}
			inNumber = false
			out.WriteRune(p)
		}
	}

	return nil
}

func allUpper(word []rune) bool {
	for _, r := range word {
		if r < 'A' || r > 'Z' {
			return false
		}
	}

	return true
}
