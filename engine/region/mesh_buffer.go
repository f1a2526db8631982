package region

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type DrawMode int

const (
	Flat DrawMode = iota
	Indexed
)

type Vertex struct {
	Position mgl32.Vec3
	Color    [4]uint8
}

// MeshBuffer collects region quads as a triangle list.
type MeshBuffer struct {
	vertices    []Vertex
	indexBuffer []uint32
	indexMap    map[Vertex]uint32
	drawMode    DrawMode
	transform   mgl32.Mat4
	quadCount   int
}

func NewMeshBuffer(drawMode DrawMode, vertexScale float32) *MeshBuffer {
	m := &MeshBuffer{drawMode: drawMode}
	m.SetVertexScale(vertexScale)
	m.Reset()
	return m
}

// SetVertexScale scales X and Y of every vertex appended afterwards.
func (m *MeshBuffer) SetVertexScale(scale float32) {
	if scale <= 0 {
		scale = 1
	}
	m.transform = mgl32.Scale3D(scale, scale, 1)
}

func (m *MeshBuffer) AppendRegions(regions []*Region) {
	for _, r := range regions {
		m.AppendRegion(r)
	}
}

// AppendRegion adds both triangles of r, keeping their winding order.
func (m *MeshBuffer) AppendRegion(r *Region) {
	color := toRGBA8(r.Color())
	for _, triangle := range r.Triangles() {
		for _, position := range triangle {
			m.addVertex(Vertex{Position: m.transform.Mul4x1(position.Vec4(1)).Vec3(), Color: color})
		}
	}
	m.quadCount++
}

func (m *MeshBuffer) addVertex(vertex Vertex) {
	if m.drawMode == Indexed {
		m.addIndexedVertex(vertex)
		return
	}
	m.indexBuffer = append(m.indexBuffer, uint32(len(m.vertices)))
	m.vertices = append(m.vertices, vertex)
}

func (m *MeshBuffer) addIndexedVertex(vertex Vertex) {
	if vertexIndex, isCached := m.indexMap[vertex]; isCached {
		m.indexBuffer = append(m.indexBuffer, vertexIndex)
		return
	}
	vertexIndex := uint32(len(m.vertices))
	m.vertices = append(m.vertices, vertex)
	m.indexMap[vertex] = vertexIndex
	m.indexBuffer = append(m.indexBuffer, vertexIndex)
}

func (m *MeshBuffer) Reset() {
	m.indexMap = make(map[Vertex]uint32)
	m.indexBuffer = m.indexBuffer[:0]
	m.vertices = m.vertices[:0]
	m.quadCount = 0
}

func (m *MeshBuffer) TriangleCount() int {
	return len(m.indexBuffer) / 3
}

func (m *MeshBuffer) QuadCount() int {
	return m.quadCount
}

func (m *MeshBuffer) VertexCount() int {
	return len(m.vertices)
}

func (m *MeshBuffer) Positions() [][3]float32 {
	positions := make([][3]float32, len(m.vertices))
	for i, v := range m.vertices {
		positions[i] = v.Position
	}
	return positions
}

func (m *MeshBuffer) Colors() [][4]uint8 {
	colors := make([][4]uint8, len(m.vertices))
	for i, v := range m.vertices {
		colors[i] = v.Color
	}
	return colors
}

func (m *MeshBuffer) Indices() []uint32 {
	indices := make([]uint32, len(m.indexBuffer))
	copy(indices, m.indexBuffer)
	return indices
}

func toRGBA8(c mgl32.Vec4) [4]uint8 {
	var out [4]uint8
	for i := 0; i < 4; i++ {
		out[i] = uint8(math.Round(float64(mgl32.Clamp(c[i], 0, 1)) * 255))
	}
	return out
}
