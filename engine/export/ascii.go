package export

import (
	"bufio"
	"io"

	"github.com/memmaker/meshify/engine/region"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

const regionGlyphs = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// TerminalWidth returns the column count of the terminal behind fd, or 0 if
// fd is not a terminal.
func TerminalWidth(fd int) int {
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}

// WriteASCII prints one glyph per cell, each region gets the next glyph in
// discovery order. Cells outside every region print as '.'. Rows are cut at
// maxCols when maxCols is positive.
func WriteASCII(w io.Writer, result region.Result, width, height, maxCols int) error {
	cells := make([]byte, width*height)
	for i := range cells {
		cells[i] = '.'
	}
	for index, r := range result.Regions {
		glyph := regionGlyphs[index%len(regionGlyphs)]
		for _, cell := range r.Cells() {
			cells[cell.Y*width+cell.X] = glyph
		}
	}

	columns := width
	if maxCols > 0 && maxCols < columns {
		columns = maxCols
	}
	out := bufio.NewWriter(w)
	for y := 0; y < height; y++ {
		out.Write(cells[y*width : y*width+columns])
		out.WriteByte('\n')
	}
	return errors.Wrap(out.Flush(), "writing ascii preview")
}
