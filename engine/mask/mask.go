// Package mask holds the opacity grid that region decomposition consumes.
//
// A Mask has fixed dimensions; only the cell contents change, and only from
// opaque to transparent through Clear. Row 0 is the top scanline of the
// source image and y grows downward.
package mask

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrOutOfBounds = errors.New("mask: coordinate out of bounds")
	ErrDimensions  = errors.New("mask: invalid dimensions")
)

type Mask struct {
	width  int
	height int
	opaque []bool
}

// NewMask creates a fully transparent mask.
func NewMask(width, height int) *Mask {
	if width <= 0 || height <= 0 {
		panic(errors.Wrapf(ErrDimensions, "%dx%d", width, height))
	}
	return &Mask{
		width:  width,
		height: height,
		opaque: make([]bool, width*height),
	}
}

// NewMaskFromRows builds a mask from equally long rows where '#' marks an
// opaque cell and every other rune a transparent one.
func NewMaskFromRows(rows []string) (*Mask, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.Wrap(ErrDimensions, "no rows")
	}
	m := NewMask(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != m.width {
			return nil, errors.Wrapf(ErrDimensions, "row %d has length %d, expected %d", y, len(row), m.width)
		}
		for x := 0; x < len(row); x++ {
			m.opaque[m.index(x, y)] = row[x] == '#'
		}
	}
	return m, nil
}

func (m *Mask) Width() int { return m.width }

func (m *Mask) Height() int { return m.height }

func (m *Mask) Contains(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// Check returns an error wrapping ErrOutOfBounds if (x, y) is outside the grid.
func (m *Mask) Check(x, y int) error {
	if !m.Contains(x, y) {
		return errors.Wrapf(ErrOutOfBounds, "(%d,%d) not in %dx%d", x, y, m.width, m.height)
	}
	return nil
}

// IsOpaque reports whether the cell is opaque. It panics with an error
// wrapping ErrOutOfBounds for coordinates outside the grid.
func (m *Mask) IsOpaque(x, y int) bool {
	m.mustContain(x, y)
	return m.opaque[m.index(x, y)]
}

// Clear marks the cell transparent. It panics like IsOpaque.
func (m *Mask) Clear(x, y int) {
	m.mustContain(x, y)
	m.opaque[m.index(x, y)] = false
}

func (m *Mask) OpaqueCount() int {
	count := 0
	for _, o := range m.opaque {
		if o {
			count++
		}
	}
	return count
}

func (m *Mask) Clone() *Mask {
	clone := &Mask{
		width:  m.width,
		height: m.height,
		opaque: make([]bool, len(m.opaque)),
	}
	copy(clone.opaque, m.opaque)
	return clone
}

// String renders the mask row by row, '#' for opaque and '.' for transparent.
func (m *Mask) String() string {
	var sb strings.Builder
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.opaque[m.index(x, y)] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (m *Mask) GoString() string {
	return fmt.Sprintf("mask.Mask{%dx%d, %d opaque}", m.width, m.height, m.OpaqueCount())
}

func (m *Mask) index(x, y int) int {
	return y*m.width + x
}

func (m *Mask) mustContain(x, y int) {
	if err := m.Check(x, y); err != nil {
		panic(err)
	}
}
