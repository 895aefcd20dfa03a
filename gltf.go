package orbis

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// LoadGLTF loads a .gltf or .glb file and converts it to a Mesh.
func LoadGLTF(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, err
	}

	var allTriangles []*Triangle
	for _, mesh := range doc.Meshes {
		for _, primitive := range mesh.Primitives {
			// We only support Triangles (mode 4)
			if primitive.Mode != gltf.PrimitiveTriangles {
				continue
			}
			triangles, err := readPrimitive(doc, primitive)
			if err != nil {
				return nil, err
			}
			allTriangles = append(allTriangles, triangles...)
		}
	}

	if len(allTriangles) == 0 {
		return nil, fmt.Errorf("no triangles found in gltf")
	}
	return NewTriangleMesh(allTriangles), nil
}

func readPrimitive(doc *gltf.Document, primitive *gltf.Primitive) ([]*Triangle, error) {
	posIdx, ok := primitive.Attributes[gltf.POSITION]
	if !ok {
		return nil, nil
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, err
	}

	var normals [][3]float32
	if normIdx, ok := primitive.Attributes[gltf.NORMAL]; ok {
		normals, _ = modeler.ReadNormal(doc, doc.Accessors[normIdx], nil)
	}
	var texCoords [][2]float32
	if texIdx, ok := primitive.Attributes[gltf.TEXCOORD_0]; ok {
		texCoords, _ = modeler.ReadTextureCoord(doc, doc.Accessors[texIdx], nil)
	}

	var indices []uint32
	if primitive.Indices != nil {
		// ReadIndices converts uint8/uint16/uint32 to []uint32
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*primitive.Indices], nil)
		if err != nil {
			return nil, err
		}
	} else {
		indices = make([]uint32, len(positions))
		for k := range indices {
			indices[k] = uint32(k)
		}
	}

	vertexAt := func(idx uint32) Vertex {
		v := Vertex{Color: White}
		p := positions[idx]
		v.Position = Vector{float64(p[0]), float64(p[1]), float64(p[2])}
		if int(idx) < len(normals) {
			n := normals[idx]
			v.Normal = Vector{float64(n[0]), float64(n[1]), float64(n[2])}
		}
		if int(idx) < len(texCoords) {
			t := texCoords[idx]
			v.Texture = Vector{float64(t[0]), float64(t[1]), 0}
		}
		return v
	}

	triangles := make([]*Triangle, 0, len(indices)/3)
	for i := 0; i+2 < len(indices); i += 3 {
		t := &Triangle{
			V1: vertexAt(indices[i]),
			V2: vertexAt(indices[i+1]),
			V3: vertexAt(indices[i+2]),
		}
		t.FixNormals()
		triangles = append(triangles, t)
	}
	return triangles, nil
}
