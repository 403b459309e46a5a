package translit_test

import (
	"testing"

	"github.com/katalvlaran/braille3d/translit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFallback_SingleLetter pins the canonical smallest case: "a" is the
// dot-1 cell.
func TestFallback_SingleLetter(t *testing.T) {
	out, err := translit.Fallback{}.Translate("a")
	require.NoError(t, err)
	assert.Equal(t, "⠁", out)
}

// TestFallback_Word checks plain lower-case words map letter by letter.
func TestFallback_Word(t *testing.T) {
	out, err := translit.Fallback{}.Translate("hi")
	require.NoError(t, err)
	assert.Equal(t, "⠓⠊", out)
}

// TestFallback_CapitalIndicator verifies a single capital takes one
// dot-6 prefix and an all-caps word takes two.
func TestFallback_CapitalIndicator(t *testing.T) {
	out, err := translit.Fallback{}.Translate("Hi")
	require.NoError(t, err)
	assert.Equal(t, "⠠⠓⠊", out)

	out, err = translit.Fallback{}.Translate("HI")
	require.NoError(t, err)
	assert.Equal(t, "⠠⠠⠓⠊", out)
}

// TestFallback_NumberIndicator verifies digit runs sit behind one ⠼ and
// that digits reuse the a..j codes.
func TestFallback_NumberIndicator(t *testing.T) {
	out, err := translit.Fallback{}.Translate("42")
	require.NoError(t, err)
	assert.Equal(t, "⠼⠙⠃", out)

	// Two runs, two indicators.
	out, err = translit.Fallback{}.Translate("4 2")
	require.NoError(t, err)
	assert.Equal(t, "⠼⠙⠀⠼⠃", out)
}

// TestFallback_WordSigns covers the three whole-word contractions the
// table carries.
func TestFallback_WordSigns(t *testing.T) {
	out, err := translit.Fallback{}.Translate("for and the")
	require.NoError(t, err)
	assert.Equal(t, "⠿⠀⠯⠀⠮", out)

	// Only exact words contract; "form" spells out.
	out, err = translit.Fallback{}.Translate("form")
	require.NoError(t, err)
	assert.Equal(t, "⠋⠕⠗⠍", out)
}

// TestFallback_SeparatorsAndPunctuation covers space, tab, newline,
// comma and period.
func TestFallback_SeparatorsAndPunctuation(t *testing.T) {
	out, err := translit.Fallback{}.Translate("a, b.\nc\ta")
	require.NoError(t, err)
	assert.Equal(t, "⠁⠂⠀⠃⠲\n⠉⠀⠀⠁", out)
}

// TestFallback_Unsupported verifies the whole translation aborts on the
// first unmapped rune, and the error names rune and position.
func TestFallback_Unsupported(t *testing.T) {
	out, err := translit.Fallback{}.Translate("ok@here")
	assert.ErrorIs(t, err, translit.ErrUnsupportedText)
	assert.Contains(t, err.Error(), "'@'")
	assert.Contains(t, err.Error(), "index 2")
	assert.Empty(t, out, "no partial output on failure")
}

// TestFallback_EmptyInput is the degenerate case: nothing in, nothing out.
func TestFallback_EmptyInput(t *testing.T) {
	out, err := translit.Fallback{}.Translate("")
	require.NoError(t, err)
	assert.Empty(t, out)
}

// TestFallback_NoBackTranslation pins the capability split: the fallback
// deliberately does not implement BackTranslator.
func TestFallback_NoBackTranslation(t *testing.T) {
	var tr translit.Transliterator = translit.Fallback{}
	_, ok := tr.(translit.BackTranslator)
	assert.False(t, ok, "fallback must not advertise back-translation")
}
