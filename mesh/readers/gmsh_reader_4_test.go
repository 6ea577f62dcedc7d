package readers

import (
	"testing"

	"github.com/meshtools/gmshkit/mesh"
)

// TestReadGmsh41Planar tests a v4.1 planar mesh with entity physical tags
func TestReadGmsh41Planar(t *testing.T) {
	content := `$MeshFormat
4.1 0 8
$EndMeshFormat
$Entities
0 0 1 0
1 0 0 0 1 1 0 1 7 0
$EndEntities
$Nodes
1 4 1 4
2 1 0 4
1
2
3
4
0.0 0.0 0.0
1.0 0.0 0.0
1.0 1.0 0.0
0.0 1.0 0.0
$EndNodes
$Elements
1 2 1 2
2 1 2 2
1 1 2 3
2 1 3 4
$EndElements`

	tmpFile := createTempMshFile(t, content)

	msh, err := ReadGmsh41(tmpFile)
	if err != nil {
		t.Fatalf("Failed to read Gmsh 4.1 file: %v", err)
	}

	if msh.FormatVersion != "4.1" {
		t.Errorf("Expected version 4.1, got %s", msh.FormatVersion)
	}
	if msh.NumVertices != 4 {
		t.Errorf("Expected 4 vertices, got %d", msh.NumVertices)
	}
	if msh.NumElements != 2 {
		t.Fatalf("Expected 2 elements, got %d", msh.NumElements)
	}
	for i := 0; i < 2; i++ {
		if msh.ElementTypes[i] != mesh.Triangle {
			t.Errorf("Element %d: expected Triangle, got %v", i, msh.ElementTypes[i])
		}
		// Physical tag 7 comes from the owning surface entity
		if msh.ElementTags[i] != 7 {
			t.Errorf("Element %d: expected physical tag 7, got %d", i, msh.ElementTags[i])
		}
	}
	if msh.Elements[1][2] != 3 {
		t.Errorf("Expected second triangle to close at vertex 3, got %d", msh.Elements[1][2])
	}
}

// TestReadGmshAuto tests format version dispatch
func TestReadGmshAuto(t *testing.T) {
	content22 := `$MeshFormat
2.2 0 8
$EndMeshFormat
$Nodes
0
$EndNodes
$Elements
0
$EndElements`

	msh, err := ReadGmshAuto(createTempMshFile(t, content22))
	if err != nil {
		t.Fatalf("Failed to auto-read 2.2 file: %v", err)
	}
	if msh.FormatVersion != "2.2" {
		t.Errorf("Expected version 2.2, got %s", msh.FormatVersion)
	}

	content41 := `$MeshFormat
4.1 0 8
$EndMeshFormat
$Nodes
0 0 0 0
$EndNodes
$Elements
0 0 0 0
$EndElements`

	msh, err = ReadGmshAuto(createTempMshFile(t, content41))
	if err != nil {
		t.Fatalf("Failed to auto-read 4.1 file: %v", err)
	}
	if msh.FormatVersion != "4.1" {
		t.Errorf("Expected version 4.1, got %s", msh.FormatVersion)
	}

	if _, err = ReadGmshAuto(createTempMshFile(t, "$MeshFormat\n9.9 0 8\n$EndMeshFormat")); err == nil {
		t.Error("Expected an error for an unsupported version")
	}
}
