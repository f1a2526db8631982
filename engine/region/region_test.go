package region

import (
	"image"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/meshify/engine/grid"
	"github.com/pkg/errors"
)

func rectCells(x0, y0, width, height int) []grid.Int2 {
	var cells []grid.Int2
	for x := x0; x < x0+width; x++ {
		for y := y0; y < y0+height; y++ {
			cells = append(cells, grid.Int2{X: x, Y: y})
		}
	}
	return cells
}

func TestNewRegionEmpty(t *testing.T) {
	_, err := NewRegion(nil, fixedColor())
	if !errors.Is(err, ErrInvalidRegion) {
		t.Errorf("expected ErrInvalidRegion, got %v", err)
	}
}

func TestRegionGeometry(t *testing.T) {
	r, err := NewRegion(rectCells(2, 1, 3, 2), fixedColor())
	if err != nil {
		t.Fatal(err)
	}
	expected := Corners{
		TopLeft:     grid.Int2{X: 2, Y: 1},
		TopRight:    grid.Int2{X: 4, Y: 1},
		BottomLeft:  grid.Int2{X: 2, Y: 2},
		BottomRight: grid.Int2{X: 4, Y: 2},
	}
	if r.Corners() != expected {
		t.Errorf("expected corners %+v, got %+v", expected, r.Corners())
	}
	if r.Width() != 3 || r.Range() != 2 {
		t.Errorf("expected 3x2, got %dx%d", r.Width(), r.Range())
	}
	if r.Bounds() != image.Rect(2, 1, 5, 3) {
		t.Errorf("unexpected bounds %v", r.Bounds())
	}

	tl, tr := mgl32.Vec3{2, 1, 0}, mgl32.Vec3{4, 1, 0}
	bl, br := mgl32.Vec3{2, 2, 0}, mgl32.Vec3{4, 2, 0}
	triangles := r.Triangles()
	if triangles[0] != (Triangle{tl, tr, bl}) {
		t.Errorf("unexpected top triangle %v", triangles[0])
	}
	if triangles[1] != (Triangle{bl, tr, br}) {
		t.Errorf("unexpected bottom triangle %v", triangles[1])
	}
	if d := r.Diagonal(); d[0] != tr || d[1] != bl {
		t.Errorf("expected diagonal top right to bottom left, got %v", d)
	}
	if v := r.Vertices(); len(v) != 6 || v[0] != tl || v[5] != br {
		t.Errorf("unexpected vertices %v", v)
	}
}

func TestRegionCornersUseOnlyFirstAndLastCell(t *testing.T) {
	cells := []grid.Int2{{X: 0, Y: 0}, {X: 7, Y: 7}, {X: 1, Y: 3}}
	r, err := NewRegion(cells, fixedColor())
	if err != nil {
		t.Fatal(err)
	}
	if r.Corners().BottomRight != (grid.Int2{X: 1, Y: 3}) {
		t.Errorf("expected bottom right from the last cell, got %v", r.Corners().BottomRight)
	}
}

func TestRegionIsImmutable(t *testing.T) {
	cells := rectCells(0, 0, 1, 2)
	r, _ := NewRegion(cells, fixedColor())
	cells[0] = grid.Int2{X: 9, Y: 9}
	got := r.Cells()
	if got[0] != (grid.Int2{}) {
		t.Errorf("region aliased the caller's slice, first cell %v", got[0])
	}
	got[1] = grid.Int2{X: 5, Y: 5}
	if r.Cells()[1] != (grid.Int2{X: 0, Y: 1}) {
		t.Error("Cells returned internal storage")
	}
}

func TestMeshBufferFlat(t *testing.T) {
	regions := NewDecomposer(fixedColor).Decompose(mustRows(t, "#.#", "#.#"))
	mesh := NewMeshBuffer(Flat, 1)
	mesh.AppendRegions(regions)
	if mesh.QuadCount() != 2 {
		t.Errorf("expected 2 quads, got %d", mesh.QuadCount())
	}
	if mesh.TriangleCount() != 4 {
		t.Errorf("expected 4 triangles, got %d", mesh.TriangleCount())
	}
	if mesh.VertexCount() != 12 {
		t.Errorf("expected 12 vertices, got %d", mesh.VertexCount())
	}
	if c := mesh.Colors()[0]; c != [4]uint8{255, 0, 0, 255} {
		t.Errorf("unexpected vertex color %v", c)
	}
}

func TestMeshBufferIndexedSharesDiagonal(t *testing.T) {
	r, _ := NewRegion(rectCells(0, 0, 2, 2), fixedColor())
	mesh := NewMeshBuffer(Indexed, 1)
	mesh.AppendRegion(r)
	if mesh.VertexCount() != 4 {
		t.Errorf("expected 4 unique vertices, got %d", mesh.VertexCount())
	}
	indices := mesh.Indices()
	expected := []uint32{0, 1, 2, 2, 1, 3}
	for i := range expected {
		if indices[i] != expected[i] {
			t.Fatalf("expected indices %v, got %v", expected, indices)
		}
	}

	mesh.Reset()
	if mesh.VertexCount() != 0 || mesh.TriangleCount() != 0 || mesh.QuadCount() != 0 {
		t.Error("expected empty buffer after Reset")
	}
}

func TestMeshBufferVertexScale(t *testing.T) {
	r, _ := NewRegion(rectCells(1, 2, 2, 1), fixedColor())
	mesh := NewMeshBuffer(Flat, 4)
	mesh.AppendRegion(r)
	topRight := mesh.Positions()[1]
	if topRight != [3]float32{8, 8, 0} {
		t.Errorf("expected scaled top right (8,8,0), got %v", topRight)
	}
}
