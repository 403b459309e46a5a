package translit

import (
	"fmt"
	"os/exec"
	"strings"
)

// defaultCommand is the liblouis translation tool.
const defaultCommand = "lou_translate"

// DefaultTable is the liblouis table used when none is configured:
// Unified English Braille, grade 2.
const DefaultTable = "en-ueb-g2.ctb"

// displayTable renders liblouis output as Unicode Braille patterns.
const displayTable = "unicode.dis"

// Louis transliterates through the liblouis command-line tools. It is
// the preferred path: real contraction rules, real back-translation.
//
// Fields:
//   - Tables  — liblouis translation table list (default: DefaultTable).
//   - Command — tool name or path (default: "lou_translate"); exposed so
//     tests and odd installs can point elsewhere.
//
// Louis implements both Transliterator and BackTranslator.
type Louis struct {
	Tables  []string
	Command string
}

// NewLouis returns a Louis adapter for the given table list, or the
// default grade-2 English table when none is given.
func NewLouis(tables ...string) *Louis {
	if len(tables) == 0 {
		tables = []string{DefaultTable}
	}

	return &Louis{Tables: tables}
}

// Translate runs a forward translation: text → Braille patterns.
func (l *Louis) Translate(text string) (string, error) {
	return l.run("--forward", text)
}

// BackTranslate runs a backward translation: Braille patterns → text.
// The input must be the exact symbol string a forward pass produced.
func (l *Louis) BackTranslate(symbols string) (string, error) {
	return l.run("--backward", symbols)
}

// run invokes lou_translate in the given direction, feeding input on
// stdin. Every failure mode — tool missing, bad table, non-zero exit —
// surfaces as ErrUnavailable; there is no silent fallback.
func (l *Louis) run(direction, input string) (string, error) {
	name := l.Command
	if name == "" {
		name = defaultCommand
	}
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%w: %s not found in PATH", ErrUnavailable, name)
	}

	tables := l.Tables
	if len(tables) == 0 {
		tables = []string{DefaultTable}
	}
	tableList := strings.Join(append([]string{displayTable}, tables...), ",")

	cmd := exec.Command(path, direction, tableList)
	cmd.Stdin = strings.NewReader(input)
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("%w: %s %s %s: %v", ErrUnavailable, name, direction, tableList, err)
	}

	// lou_translate terminates its output with a newline that is not
	// part of the translation.
	return strings.TrimSuffix(string(out), "\n"), nil
}
