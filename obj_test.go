package orbis

import (
	"strings"
	"testing"
)

const flatPatchOBJ = `# flat ring patch
v 0 0 0
v 1 0 0
v 1 0 1
v 0 0 1
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 0 1 0
f 1/1/1 2/2/1 3/3/1 4/4/1
`

func TestLoadOBJFromReader(t *testing.T) {
	mesh, err := LoadOBJFromReader(strings.NewReader(flatPatchOBJ))
	if err != nil {
		t.Fatalf("LoadOBJFromReader: %v", err)
	}
	// One quad fan-triangulates into two triangles.
	if len(mesh.Triangles) != 2 {
		t.Fatalf("triangle count = %d, want 2", len(mesh.Triangles))
	}

	tri := mesh.Triangles[0]
	if tri.V1.Position != V(0, 0, 0) || tri.V2.Position != V(1, 0, 0) || tri.V3.Position != V(1, 0, 1) {
		t.Errorf("first fan triangle positions: %+v %+v %+v", tri.V1.Position, tri.V2.Position, tri.V3.Position)
	}
	if tri.V2.Texture != V(1, 0, 0) {
		t.Errorf("texture coordinate = %v, want (1,0)", tri.V2.Texture)
	}
	if tri.V1.Normal != V(0, 1, 0) {
		t.Errorf("normal = %v, want the declared vn", tri.V1.Normal)
	}

	second := mesh.Triangles[1]
	if second.V1.Position != V(0, 0, 0) || second.V3.Position != V(0, 0, 1) {
		t.Errorf("second fan triangle positions: %+v %+v", second.V1.Position, second.V3.Position)
	}
}

func TestLoadOBJFromBytes(t *testing.T) {
	mesh, err := LoadOBJFromBytes([]byte(flatPatchOBJ))
	if err != nil {
		t.Fatalf("LoadOBJFromBytes: %v", err)
	}
	if len(mesh.Triangles) != 2 {
		t.Errorf("triangle count = %d, want 2", len(mesh.Triangles))
	}
}

func TestLoadOBJNegativeIndices(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 0 1\nf -3 -2 -1\n"
	mesh, err := LoadOBJFromReader(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadOBJFromReader: %v", err)
	}
	if len(mesh.Triangles) != 1 {
		t.Fatalf("triangle count = %d, want 1", len(mesh.Triangles))
	}
	tri := mesh.Triangles[0]
	if tri.V1.Position != V(0, 0, 0) || tri.V2.Position != V(1, 0, 0) || tri.V3.Position != V(0, 0, 1) {
		t.Errorf("negative indices resolved wrong: %+v %+v %+v", tri.V1.Position, tri.V2.Position, tri.V3.Position)
	}
}

func TestLoadOBJPositionOnlyFacesGetFaceNormals(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 0 1\nf 1 2 3\n"
	mesh, err := LoadOBJFromReader(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadOBJFromReader: %v", err)
	}
	n := mesh.Triangles[0].V1.Normal
	if n.Length() < 0.999 {
		t.Errorf("missing vn must fall back to the face normal, got %v", n)
	}
}
