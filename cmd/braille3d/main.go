// Command braille3d converts a phrase into a 3D-printable Braille plate,
// emitted as a Wavefront OBJ stream.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
