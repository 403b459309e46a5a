package convert

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/braille3d/cell"
	"github.com/katalvlaran/braille3d/dims"
	"github.com/katalvlaran/braille3d/layout"
	"github.com/katalvlaran/braille3d/mesh"
	"github.com/katalvlaran/braille3d/tessel"
	"github.com/katalvlaran/braille3d/translit"
)

// ErrNoTransliterator indicates Options without a transliteration
// collaborator.
var ErrNoTransliterator = errors.New("convert: no transliterator configured")

// backUnavailable replaces the third provenance field when the
// transliterator cannot back-translate.
const backUnavailable = "(back-translation unavailable)"

// Options configures one conversion.
//
// Fields:
//   - Trans        — the transliteration collaborator. Never substituted
//     implicitly: a nil Trans is an error, and no auto-fallback exists.
//   - Standard     — the physical dimension table.
//   - Tessellation — dot bump resolution and profile.
type Options struct {
	Trans        translit.Transliterator
	Standard     dims.Standard
	Tessellation tessel.Options
}

// DefaultOptions returns the fallback transliterator, Specification 800
// dimensions, and the default cone tessellation.
func DefaultOptions() Options {
	return Options{
		Trans:        translit.Fallback{},
		Standard:     dims.Spec800(),
		Tessellation: tessel.DefaultOptions(),
	}
}

// Convert transforms text into the assembled, validated mesh of its
// Braille transliteration: raised dots in reading order on a backing
// slab, substrate first in the global numbering.
//
// Empty text yields a substrate-only plate. Every other failure mode is
// terminal: no partial mesh is ever returned.
func Convert(text string, opts Options) (mesh.Mesh, error) {
	if opts.Trans == nil {
		return mesh.Mesh{}, ErrNoTransliterator
	}

	symbols, err := opts.Trans.Translate(text)
	if err != nil {
		return mesh.Mesh{}, fmt.Errorf("convert: transliterate: %w", err)
	}

	lines, err := decodeLines(symbols)
	if err != nil {
		return mesh.Mesh{}, err
	}

	plan, err := layout.Arrange(lines, opts.Standard)
	if err != nil {
		return mesh.Mesh{}, fmt.Errorf("convert: %w", err)
	}

	var b mesh.Builder
	b.Append(tessel.Substrate(plan.Width, plan.Height, opts.Standard))
	for _, slot := range plan.Slots {
		if !slot.Raised {
			continue
		}
		patch, derr := tessel.Dot(slot.X, slot.Y, opts.Standard, opts.Tessellation)
		if derr != nil {
			return mesh.Mesh{}, fmt.Errorf("convert: %w", derr)
		}
		b.Append(patch)
	}
	b.SetComment(provenance(text, symbols, opts.Trans))

	m := b.Build()
	if err = mesh.Validate(m); err != nil {
		return mesh.Mesh{}, fmt.Errorf("convert: %w", err)
	}

	return m, nil
}

// ConvertTo runs Convert and serializes the mesh to w as OBJ.
func ConvertTo(w io.Writer, text string, opts Options) error {
	m, err := Convert(text, opts)
	if err != nil {
		return err
	}

	return mesh.WriteOBJ(w, m)
}

// decodeLines splits the symbol stream on '\n' and decodes every rune
// into a cell. The first unsupported rune aborts the conversion.
func decodeLines(symbols string) ([][]cell.Cell, error) {
	raw := strings.Split(symbols, "\n")
	lines := make([][]cell.Cell, len(raw))
	for li, lineStr := range raw {
		for _, r := range lineStr {
			c, err := cell.Decode(r)
			if err != nil {
				return nil, fmt.Errorf("convert: line %d: %w", li+1, err)
			}
			lines[li] = append(lines[li], c)
		}
	}

	return lines, nil
}

// provenance renders the round-trip header. The back-translation is
// produced from the exact symbol string used to build the mesh; when the
// collaborator lacks the capability (or it fails), the field degrades to
// a marker instead of failing the run.
func provenance(text, symbols string, tr translit.Transliterator) string {
	if bt, ok := tr.(translit.BackTranslator); ok {
		if back, err := bt.BackTranslate(symbols); err == nil {
			return fmt.Sprintf("input => Braille => back translation : %q => %q => %q", text, symbols, back)
		}
	}

	return fmt.Sprintf("input => Braille => back translation : %q => %q => %s", text, symbols, backUnavailable)
}
