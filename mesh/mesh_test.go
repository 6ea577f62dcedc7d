package mesh

import (
	"math"
	"testing"
)

func unitSquareTris() *Mesh {
	m := NewMesh()
	m.AddNode(1, []float64{0, 0, 0})
	m.AddNode(2, []float64{1, 0, 0})
	m.AddNode(3, []float64{1, 1, 0})
	m.AddNode(4, []float64{0, 1, 0})
	m.AddElement(Triangle, 0, []int{0, 1, 2})
	m.AddElement(Triangle, 0, []int{0, 2, 3})
	return m
}

func unitCubeHex() *Mesh {
	m := NewMesh()
	coords := [][]float64{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
		{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
	}
	for i, c := range coords {
		m.AddNode(i+1, c)
	}
	m.AddElement(Hex, 0, []int{0, 1, 2, 3, 4, 5, 6, 7})
	return m
}

func TestVolume(t *testing.T) {
	tol := 1.e-12

	// Two triangles tile the unit square
	if v := unitSquareTris().Volume(); math.Abs(v-1) > tol {
		t.Errorf("Expected unit area, got %v", v)
	}

	// One hexahedron fills the unit cube
	if v := unitCubeHex().Volume(); math.Abs(v-1) > tol {
		t.Errorf("Expected unit volume, got %v", v)
	}

	// A corner tet of the unit cube
	m := NewMesh()
	m.AddNode(1, []float64{0, 0, 0})
	m.AddNode(2, []float64{1, 0, 0})
	m.AddNode(3, []float64{0, 1, 0})
	m.AddNode(4, []float64{0, 0, 1})
	m.AddElement(Tet, 0, []int{0, 1, 2, 3})
	if v := m.Volume(); math.Abs(v-1./6.) > tol {
		t.Errorf("Expected volume 1/6, got %v", v)
	}

	// 3D cells dominate mixed meshes
	m.AddElement(Triangle, 0, []int{0, 1, 2})
	if v := m.Volume(); math.Abs(v-1./6.) > tol {
		t.Errorf("Expected surface cells to be excluded, got %v", v)
	}
}

func TestFilterTypes(t *testing.T) {
	m := unitSquareTris()
	m.AddNode(5, []float64{2, 2, 0})
	m.AddElement(Point, 0, []int{4})
	m.AddElement(Line, 1, []int{0, 1})

	kept := m.KeepTypes(Triangle)
	if kept.NumElements != 2 {
		t.Errorf("Expected 2 triangles, got %d", kept.NumElements)
	}
	// The vertex only the point artifact referenced is dropped
	if kept.NumVertices != 4 {
		t.Errorf("Expected 4 vertices after compaction, got %d", kept.NumVertices)
	}

	removed := m.RemoveTypes(Point, Line)
	if removed.NumElements != 2 || removed.NumVertices != 4 {
		t.Errorf("Expected 2 elements with 4 vertices, got %d with %d",
			removed.NumElements, removed.NumVertices)
	}

	// Connectivity survives renumbering
	if v := removed.Volume(); math.Abs(v-1) > 1.e-12 {
		t.Errorf("Expected unit area after filtering, got %v", v)
	}
}

func TestBuildConnectivity(t *testing.T) {
	m := unitSquareTris()
	m.BuildConnectivity()

	// 4 boundary edges plus the shared diagonal
	if m.NumFaces != 5 {
		t.Errorf("Expected 5 unique edges, got %d", m.NumFaces)
	}

	interior := 0
	for e := 0; e < m.NumElements; e++ {
		for _, nbr := range m.EToE[e] {
			if nbr >= 0 {
				interior++
			}
		}
	}
	// The diagonal is seen from both sides
	if interior != 2 {
		t.Errorf("Expected 2 interior edge references, got %d", interior)
	}
}

func TestBounds(t *testing.T) {
	b := unitCubeHex().Bounds()
	want := [6]float64{0, 1, 0, 1, 0, 1}
	if b != want {
		t.Errorf("Expected bounds %v, got %v", want, b)
	}
}

func TestGetElementFaces(t *testing.T) {
	tet := []int{10, 11, 12, 13}
	faces := GetElementFaces(Tet, tet)
	if len(faces) != 4 {
		t.Fatalf("Expected 4 faces, got %d", len(faces))
	}
	for _, f := range faces {
		if len(f) != 3 {
			t.Errorf("Expected triangular faces, got %d vertices", len(f))
		}
	}

	quad := []int{0, 1, 2, 3}
	edges := GetElementFaces(Quad, quad)
	if len(edges) != 4 {
		t.Fatalf("Expected 4 edges, got %d", len(edges))
	}
}
