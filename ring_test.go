package orbis

import (
	"math"
	"testing"
)

func TestNewRingMeshTriangleCount(t *testing.T) {
	mesh := NewRingMesh(4, 9, 32, 4)
	if got, want := len(mesh.Triangles), 32*4*2; got != want {
		t.Errorf("triangle count = %d, want %d", got, want)
	}
}

func TestNewRingMeshParameterization(t *testing.T) {
	inner, outer := 4.0, 9.0
	mesh := NewRingMesh(inner, outer, 16, 2)
	for _, tri := range mesh.Triangles {
		for _, v := range []Vertex{tri.V1, tri.V2, tri.V3} {
			u, radial := v.Texture.X, v.Texture.Y
			if u < 0 || u > 1 || radial < 0 || radial > 1 {
				t.Fatalf("texture coordinate out of range: (%f, %f)", u, radial)
			}
			r := math.Hypot(v.Position.X, v.Position.Z)
			if r < inner-1e-9 || r > outer+1e-9 {
				t.Fatalf("vertex radius %f outside [%f, %f]", r, inner, outer)
			}
			want := Lerp(inner, outer, radial)
			if math.Abs(r-want) > 1e-9 {
				t.Fatalf("v must parameterize the radius: r=%f, v=%f", r, radial)
			}
			if v.Position.Y != 0 {
				t.Fatalf("ring must be flat, got y=%f", v.Position.Y)
			}
		}
	}
}

func TestNewRingMeshClampsDegenerateArgs(t *testing.T) {
	mesh := NewRingMesh(1, 2, 0, 0)
	if len(mesh.Triangles) == 0 {
		t.Fatal("degenerate segment counts must still produce a mesh")
	}
}

func TestNewSphereMesh(t *testing.T) {
	mesh := NewSphereMesh(16, 8)
	if len(mesh.Triangles) == 0 {
		t.Fatal("empty sphere mesh")
	}
	for _, tri := range mesh.Triangles {
		for _, v := range []Vertex{tri.V1, tri.V2, tri.V3} {
			if math.Abs(v.Position.Length()-1) > 1e-9 {
				t.Fatalf("sphere vertex not on unit sphere: %v", v.Position)
			}
			if v.Position.Sub(v.Normal).Length() > 1e-9 {
				t.Fatalf("sphere normal should equal position, got %v / %v", v.Normal, v.Position)
			}
		}
	}
}

func TestMeshSimplify(t *testing.T) {
	mesh := NewSphereMesh(24, 12)
	before := len(mesh.Triangles)
	mesh.Simplify(0.5)
	after := len(mesh.Triangles)
	if after == 0 || after >= before {
		t.Errorf("Simplify(0.5): %d -> %d triangles", before, after)
	}
}

func TestMeshBoundingBox(t *testing.T) {
	mesh := NewRingMesh(4, 9, 32, 2)
	box := mesh.BoundingBox()
	if box.Min.X > -8 || box.Max.X < 8 {
		t.Errorf("bounding box too small: %+v", box)
	}
	if c := box.Center(); c.Length() > 1e-9 {
		t.Errorf("ring should be centered at the origin, center = %v", c)
	}
}
