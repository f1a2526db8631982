package region

import (
	"fmt"
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/meshify/engine/grid"
	"github.com/pkg/errors"
)

var ErrInvalidRegion = errors.New("region: empty cell list")

type Corners struct {
	TopLeft     grid.Int2
	TopRight    grid.Int2
	BottomLeft  grid.Int2
	BottomRight grid.Int2
}

// Triangle is one face of a region quad, vertices in winding order.
type Triangle [3]mgl32.Vec3

// Region is one rectangle of consumed cells. Cells are ordered column by
// column, top to bottom, so the first cell is the top of the leftmost column
// and the last cell the bottom of the rightmost one. Everything is derived
// once in NewRegion and never changes afterwards.
type Region struct {
	cells     []grid.Int2
	corners   Corners
	triangles [2]Triangle
	color     mgl32.Vec4
}

// NewRegion derives corners and triangles from an ordered cell list and
// stores c as the region's presentation color.
func NewRegion(cells []grid.Int2, c mgl32.Vec4) (*Region, error) {
	corners, triangles, err := deriveGeometry(cells)
	if err != nil {
		return nil, err
	}
	owned := make([]grid.Int2, len(cells))
	copy(owned, cells)
	return &Region{
		cells:     owned,
		corners:   corners,
		triangles: triangles,
		color:     c,
	}, nil
}

// deriveGeometry only reads the first and the last cell.
func deriveGeometry(cells []grid.Int2) (Corners, [2]Triangle, error) {
	if len(cells) == 0 {
		return Corners{}, [2]Triangle{}, ErrInvalidRegion
	}
	first, last := cells[0], cells[len(cells)-1]
	corners := Corners{
		TopLeft:     grid.Int2{X: first.X, Y: first.Y},
		BottomLeft:  grid.Int2{X: first.X, Y: last.Y},
		TopRight:    grid.Int2{X: last.X, Y: first.Y},
		BottomRight: grid.Int2{X: last.X, Y: last.Y},
	}
	tl, tr := corners.TopLeft.ToVec3(), corners.TopRight.ToVec3()
	bl, br := corners.BottomLeft.ToVec3(), corners.BottomRight.ToVec3()
	triangles := [2]Triangle{
		{tl, tr, bl},
		{bl, tr, br},
	}
	return corners, triangles, nil
}

// Cells returns a copy of the ordered member cells.
func (r *Region) Cells() []grid.Int2 {
	cells := make([]grid.Int2, len(r.cells))
	copy(cells, r.cells)
	return cells
}

func (r *Region) CellCount() int { return len(r.cells) }

func (r *Region) Corners() Corners { return r.corners }

func (r *Region) Triangles() [2]Triangle { return r.triangles }

func (r *Region) Color() mgl32.Vec4 { return r.color }

// NRGBA returns the color with 8 bit channels.
func (r *Region) NRGBA() color.NRGBA {
	c := toRGBA8(r.color)
	return color.NRGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}

// Width is the number of columns the region spans.
func (r *Region) Width() int {
	return r.corners.TopRight.X - r.corners.TopLeft.X + 1
}

// Range is the number of rows every column of the region contributes.
func (r *Region) Range() int {
	return r.corners.BottomLeft.Y - r.corners.TopLeft.Y + 1
}

// Bounds returns the covered cells as a rectangle with an exclusive Max.
func (r *Region) Bounds() image.Rectangle {
	return image.Rect(r.corners.TopLeft.X, r.corners.TopLeft.Y, r.corners.BottomRight.X+1, r.corners.BottomRight.Y+1)
}

// Diagonal is the edge both triangles share, from top right to bottom left.
func (r *Region) Diagonal() [2]mgl32.Vec3 {
	return [2]mgl32.Vec3{r.triangles[0][1], r.triangles[0][2]}
}

// Vertices flattens both triangles into six vertices.
func (r *Region) Vertices() []mgl32.Vec3 {
	return []mgl32.Vec3{
		r.triangles[0][0], r.triangles[0][1], r.triangles[0][2],
		r.triangles[1][0], r.triangles[1][1], r.triangles[1][2],
	}
}

func (r *Region) String() string {
	return fmt.Sprintf("Region{%v-%v, %dx%d}", r.corners.TopLeft, r.corners.BottomRight, r.Width(), r.Range())
}
