package export

import (
	"fmt"
	"io"

	"github.com/memmaker/meshify/engine/region"
	"github.com/memmaker/meshify/engine/util"
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

var ErrEmptyMesh = errors.New("export: mesh has no triangles")

// NewDocument builds a glTF document with a single mesh node holding the
// buffer's triangles as POSITION, COLOR_0 and an index accessor.
func NewDocument(mesh *region.MeshBuffer, name string) (*gltf.Document, error) {
	if mesh.TriangleCount() == 0 {
		return nil, ErrEmptyMesh
	}
	doc := gltf.NewDocument()
	positionIndex := modeler.WritePosition(doc, mesh.Positions())
	colorIndex := modeler.WriteColor(doc, mesh.Colors())
	indicesIndex := modeler.WriteIndices(doc, mesh.Indices())

	doc.Materials = append(doc.Materials, &gltf.Material{
		Name:        name,
		DoubleSided: true,
	})
	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: name,
		Primitives: []*gltf.Primitive{
			{
				Indices: gltf.Index(indicesIndex),
				Attributes: map[string]uint32{
					"POSITION": positionIndex,
					"COLOR_0":  colorIndex,
				},
				Material: gltf.Index(0),
				Mode:     gltf.PrimitiveTriangles,
			},
		},
	})
	doc.Nodes = append(doc.Nodes, &gltf.Node{Name: name, Mesh: gltf.Index(0)})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)
	return doc, nil
}

// WriteGLB encodes the mesh as binary glTF.
func WriteGLB(w io.Writer, mesh *region.MeshBuffer, name string) error {
	doc, err := NewDocument(mesh, name)
	if err != nil {
		return err
	}
	encoder := gltf.NewEncoder(w)
	encoder.AsBinary = true
	if err := encoder.Encode(doc); err != nil {
		return errors.Wrap(err, "encoding glb")
	}
	util.LogExportInfo(fmt.Sprintf("[WriteGLB] %s: %d vertices, %d triangles", name, mesh.VertexCount(), mesh.TriangleCount()))
	return nil
}

// ReadGLBTriangles decodes a document written by WriteGLB and returns the
// triangles of its first primitive.
func ReadGLBTriangles(r io.Reader) ([][3][3]float32, error) {
	doc := new(gltf.Document)
	if err := gltf.NewDecoder(r).Decode(doc); err != nil {
		return nil, errors.Wrap(err, "decoding glb")
	}
	if len(doc.Meshes) == 0 || len(doc.Meshes[0].Primitives) == 0 {
		return nil, ErrEmptyMesh
	}
	primitive := doc.Meshes[0].Primitives[0]
	if primitive.Mode != gltf.PrimitiveTriangles {
		util.LogExportWarning("[ReadGLBTriangles] only triangles are supported")
	}
	positionIndex, ok := primitive.Attributes["POSITION"]
	if !ok || primitive.Indices == nil {
		return nil, errors.New("export: primitive lacks positions or indices")
	}

	var positions [][3]float32
	var indices []uint32
	var err error
	positions, err = modeler.ReadPosition(doc, doc.Accessors[positionIndex], positions)
	if err != nil {
		return nil, errors.Wrap(err, "reading positions")
	}
	indices, err = modeler.ReadIndices(doc, doc.Accessors[*primitive.Indices], indices)
	if err != nil {
		return nil, errors.Wrap(err, "reading indices")
	}

	triangles := make([][3][3]float32, 0, len(indices)/3)
	for i := 0; i+2 < len(indices); i += 3 {
		triangles = append(triangles, [3][3]float32{
			positions[indices[i]],
			positions[indices[i+1]],
			positions[indices[i+2]],
		})
	}
	return triangles, nil
}
