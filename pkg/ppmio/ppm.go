// Package ppmio is the thin boundary between the renderer's in-memory pixel
// buffer and P3 (ASCII) PPM files, used both for final image output and for
// loading input textures. Grounded on the plain fmt.Fprintf P3-header idiom
// visible across the pack's ray tracers
// (other_examples/mccartykim-wong__main.go,
// other_examples/Anthony-Fiddes-raytracing-1w__main.go).
package ppmio

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/cwallin/lumentrace/pkg/core"
)

// WritePPM writes pixels (row-major, length width*height) as a P3 file.
// Every channel is clamped to [0,255] and truncated to an integer.
func WritePPM(w io.Writer, width, height int, pixels []core.Colour) error {
	buf := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(buf, "P3\n%d %d\n255\n", width, height); err != nil {
		return err
	}

	for _, c := range pixels {
		c = c.Clamp()
		if _, err := fmt.Fprintf(buf, "%d %d %d\n", int(c.R), int(c.G), int(c.B)); err != nil {
			return err
		}
	}

	return buf.Flush()
}

// WritePPMFile opens path and writes pixels to it as a P3 file.
func WritePPMFile(path string, width, height int, pixels []core.Colour) error {
	f, err := os.Create(path)
	if err != nil {
		return core.InputError{Op: "WritePPMFile", Detail: err.Error()}
	}
	defer f.Close()
	return WritePPM(f, width, height, pixels)
}

// ReadPPM parses a P3 file into its width, height, and row-major pixel
// slice. Used to load input textures.
func ReadPPM(r io.Reader) (width, height int, pixels []core.Colour, err error) {
	reader := bufio.NewReader(r)

	var magic string
	if _, err = fmt.Fscan(reader, &magic); err != nil {
		return 0, 0, nil, core.InputError{Op: "ReadPPM", Detail: "failed to read magic number: " + err.Error()}
	}
	if magic != "P3" {
		return 0, 0, nil, core.InputError{Op: "ReadPPM", Detail: "unsupported PPM format: " + magic}
	}

	var maxVal int
	if _, err = fmt.Fscan(reader, &width, &height, &maxVal); err != nil {
		return 0, 0, nil, core.InputError{Op: "ReadPPM", Detail: "failed to read header: " + err.Error()}
	}
	if width <= 0 || height <= 0 {
		return 0, 0, nil, core.InputError{Op: "ReadPPM", Detail: "non-positive image dimensions"}
	}

	pixels = make([]core.Colour, width*height)
	scale := 255.0 / float32(maxVal)
	for i := range pixels {
		var r, g, b int
		if _, err = fmt.Fscan(reader, &r, &g, &b); err != nil {
			return 0, 0, nil, core.InputError{Op: "ReadPPM", Detail: "truncated pixel data: " + err.Error()}
		}
		pixels[i] = core.NewColour(float32(r)*scale, float32(g)*scale, float32(b)*scale)
	}

	return width, height, pixels, nil
}

// ReadPPMFile opens path and parses it as a P3 file.
func ReadPPMFile(path string) (width, height int, pixels []core.Colour, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, nil, core.InputError{Op: "ReadPPMFile", Detail: err.Error()}
	}
	defer f.Close()
	return ReadPPM(f)
}
