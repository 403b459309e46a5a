package convert_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/braille3d/convert"
)

// ExampleConvert builds the plate for a single letter and reports its
// shape. With the default 10-segment cone, one raised dot adds 11
// vertices and 10 faces to the 8-vertex, 6-face substrate.
func ExampleConvert() {
	m, err := convert.Convert("a", convert.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(m.Comment)
	fmt.Printf("vertices=%d faces=%d\n", m.VertexCount(), m.FaceCount())
	// Output:
	// input => Braille => back translation : "a" => "⠁" => (back-translation unavailable)
	// vertices=19 faces=16
}

// ExampleConvertTo streams the OBJ text itself; here just its first
// lines, which carry the provenance comment and the substrate corners.
func ExampleConvertTo() {
	var sb strings.Builder
	if err := convert.ConvertTo(&sb, "", convert.DefaultOptions()); err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Print(sb.String())
	// Output:
	// # input => Braille => back translation : "" => "" => (back-translation unavailable)
	// v 0.000 0.000 -2.000
	// v 12.200 0.000 -2.000
	// v 12.200 16.000 -2.000
	// v 0.000 16.000 -2.000
	// v 0.000 0.000 0.000
	// v 12.200 0.000 0.000
	// v 12.200 16.000 0.000
	// v 0.000 16.000 0.000
	// f 5 6 7 8
	// f 4 3 2 1
	// f 1 2 6 5
	// f 2 3 7 6
	// f 3 4 8 7
	// f 4 1 5 8
}
