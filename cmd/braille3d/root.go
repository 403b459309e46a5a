package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/braille3d/convert"
	"github.com/katalvlaran/braille3d/dims"
	"github.com/katalvlaran/braille3d/tessel"
	"github.com/katalvlaran/braille3d/translit"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   `braille3d "text to convert"`,
	Short: "Convert text into a 3D-printable Braille plate (Wavefront OBJ)",
	Long: `braille3d transliterates a phrase into Braille and generates a tactile,
3D-printable plate of it: raised dots on a flat substrate, written as a
Wavefront OBJ stream to stdout (or a file with --output).

Transliteration prefers the liblouis command-line tools (--mode external,
the default). The internal fallback table (--mode fallback) covers only a
small character subset and exists for emergencies.`,
	Args:          cobra.ExactArgs(1),
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().String("mode", "external", "transliteration source: external (liblouis) or fallback")
	rootCmd.Flags().StringSlice("table", []string{translit.DefaultTable}, "liblouis table list (external mode only)")
	rootCmd.Flags().String("standard", "spec800", "dimension standard: spec800, marburg, or a YAML file path")
	rootCmd.Flags().Int("segments", tessel.DefaultOptions().Segments, "ring vertices per dot (minimum 3)")
	rootCmd.Flags().String("profile", "cone", "dot profile: cone or dome")
	rootCmd.Flags().StringP("output", "o", "", "output file (default stdout)")
}

func run(cmd *cobra.Command, args []string) error {
	opts := convert.DefaultOptions()

	mode, _ := cmd.Flags().GetString("mode")
	tables, _ := cmd.Flags().GetStringSlice("table")
	switch mode {
	case "external":
		opts.Trans = translit.NewLouis(tables...)
	case "fallback":
		fmt.Fprintln(os.Stderr, "WARNING: fallback translation is partial and probably wrong; for emergencies only")
		opts.Trans = translit.Fallback{}
	default:
		return fmt.Errorf("unknown --mode %q (want external or fallback)", mode)
	}

	standard, _ := cmd.Flags().GetString("standard")
	switch standard {
	case "spec800":
		opts.Standard = dims.Spec800()
	case "marburg":
		opts.Standard = dims.Marburg()
	default:
		std, err := dims.Load(standard)
		if err != nil {
			return err
		}
		opts.Standard = std
	}

	segments, _ := cmd.Flags().GetInt("segments")
	opts.Tessellation.Segments = segments

	profile, _ := cmd.Flags().GetString("profile")
	switch strings.ToLower(profile) {
	case "cone":
		opts.Tessellation.Profile = tessel.Cone
	case "dome":
		opts.Tessellation.Profile = tessel.Dome
	default:
		return fmt.Errorf("unknown --profile %q (want cone or dome)", profile)
	}

	out := os.Stdout
	if path, _ := cmd.Flags().GetString("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		defer f.Close()
		out = f
	}

	w := bufio.NewWriter(out)
	if err := convert.ConvertTo(w, args[0], opts); err != nil {
		return err
	}

	return w.Flush()
}
