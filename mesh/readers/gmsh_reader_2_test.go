package readers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/meshtools/gmshkit/mesh"
)

// Helper function to create temporary test files
func createTempMshFile(t *testing.T, content string) string {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), "test.msh")
	if err := os.WriteFile(tmpFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}

// TestReadGmsh22Version tests reading version information
func TestReadGmsh22Version(t *testing.T) {
	content := `$MeshFormat
2.2 0 8
$EndMeshFormat
$Nodes
0
$EndNodes
$Elements
0
$EndElements`

	tmpFile := createTempMshFile(t, content)

	msh, err := ReadGmsh22(tmpFile)
	if err != nil {
		t.Fatalf("Failed to read Gmsh file: %v", err)
	}

	if msh.FormatVersion != "2.2" {
		t.Errorf("Expected version 2.2, got %s", msh.FormatVersion)
	}

	if msh.IsBinary {
		t.Error("Expected ASCII format, got binary")
	}

	if msh.DataSize != 8 {
		t.Errorf("Expected data size 8, got %d", msh.DataSize)
	}
}

// TestReadGmsh22Planar tests a generated planar mesh with the point and
// line artifacts a kernel run leaves in the file
func TestReadGmsh22Planar(t *testing.T) {
	content := `$MeshFormat
2.2 0 8
$EndMeshFormat
$Nodes
5
1 0.0 0.0 0.0
2 1.0 0.0 0.0
3 1.0 1.0 0.0
4 0.0 1.0 0.0
5 0.5 0.5 0.0
$EndNodes
$Elements
9
1 15 2 0 1 1
2 1 2 0 1 1 2
3 1 2 0 2 2 3
4 1 2 0 3 3 4
5 1 2 0 4 4 1
6 2 2 0 1 1 2 5
7 2 2 0 1 2 3 5
8 2 2 0 1 3 4 5
9 2 2 0 1 4 1 5
$EndElements`

	tmpFile := createTempMshFile(t, content)

	msh, err := ReadGmsh22(tmpFile)
	if err != nil {
		t.Fatalf("Failed to read Gmsh 2.2 file: %v", err)
	}

	if msh.NumVertices != 5 {
		t.Errorf("Expected 5 vertices, got %d", msh.NumVertices)
	}
	if msh.NumElements != 9 {
		t.Errorf("Expected 9 elements, got %d", msh.NumElements)
	}

	// All artifacts are kept for the caller to filter
	counts := make(map[mesh.ElementType]int)
	for _, et := range msh.ElementTypes {
		counts[et]++
	}
	if counts[mesh.Point] != 1 || counts[mesh.Line] != 4 || counts[mesh.Triangle] != 4 {
		t.Errorf("Expected 1 point, 4 lines, 4 triangles, got %v", counts)
	}

	filtered := msh.RemoveTypes(mesh.Point, mesh.Line)
	if filtered.NumElements != 4 {
		t.Errorf("Expected 4 elements after filtering, got %d", filtered.NumElements)
	}
	if filtered.NumVertices != 5 {
		t.Errorf("Expected 5 vertices after filtering, got %d", filtered.NumVertices)
	}

	// Node tags map to dense 0-based vertex indices
	if msh.Elements[5][2] != 4 {
		t.Errorf("Expected triangle apex at vertex 4, got %d", msh.Elements[5][2])
	}
	if msh.Vertices[4][0] != 0.5 || msh.Vertices[4][1] != 0.5 {
		t.Errorf("Unexpected apex coordinates %v", msh.Vertices[4])
	}
}

// TestReadGmsh22Tets tests a volume mesh with physical names
func TestReadGmsh22Tets(t *testing.T) {
	content := `$MeshFormat
2.2 0 8
$EndMeshFormat
$PhysicalNames
1
3 1 "interior"
$EndPhysicalNames
$Nodes
5
1 0.0 0.0 0.0
2 1.0 0.0 0.0
3 0.0 1.0 0.0
4 0.0 0.0 1.0
5 1.0 1.0 1.0
$EndNodes
$Elements
2
1 4 2 1 1 1 2 3 4
2 4 2 1 1 2 3 4 5
$EndElements`

	tmpFile := createTempMshFile(t, content)

	msh, err := ReadGmsh22(tmpFile)
	if err != nil {
		t.Fatalf("Failed to read Gmsh 2.2 file: %v", err)
	}

	if msh.NumElements != 2 {
		t.Fatalf("Expected 2 elements, got %d", msh.NumElements)
	}
	for i := 0; i < 2; i++ {
		if msh.ElementTypes[i] != mesh.Tet {
			t.Errorf("Element %d: expected Tet, got %v", i, msh.ElementTypes[i])
		}
		if msh.ElementTags[i] != 1 {
			t.Errorf("Element %d: expected physical tag 1, got %d", i, msh.ElementTags[i])
		}
	}
	if msh.BoundaryTags[1] != "interior" {
		t.Errorf("Expected physical name \"interior\", got %q", msh.BoundaryTags[1])
	}
}

// TestReadGmsh22UnknownNode tests the error path for dangling node references
func TestReadGmsh22UnknownNode(t *testing.T) {
	content := `$MeshFormat
2.2 0 8
$EndMeshFormat
$Nodes
2
1 0.0 0.0 0.0
2 1.0 0.0 0.0
$EndNodes
$Elements
1
1 1 2 0 1 1 9
$EndElements`

	tmpFile := createTempMshFile(t, content)

	if _, err := ReadGmsh22(tmpFile); err == nil {
		t.Error("Expected an error for an unknown node reference")
	}
}
