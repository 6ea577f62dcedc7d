package render

import (
	"path/filepath"
	"testing"

	avsGeometry "github.com/notargets/avs/geometry"
	"github.com/stretchr/testify/assert"

	"github.com/meshtools/gmshkit/mesh"
)

func squareMesh() *mesh.Mesh {
	m := mesh.NewMesh()
	m.AddNode(1, []float64{0, 0, 0})
	m.AddNode(2, []float64{1, 0, 0})
	m.AddNode(3, []float64{1, 1, 0})
	m.AddNode(4, []float64{0, 1, 0})
	m.AddElement(mesh.Triangle, 0, []int{0, 1, 2})
	m.AddElement(mesh.Triangle, 0, []int{0, 2, 3})
	return m
}

func TestToTriMesh(t *testing.T) {
	gm, err := ToTriMesh(squareMesh())
	assert.NoError(t, err)
	assert.Equal(t, 8, len(gm.XY))
	assert.Equal(t, 2, len(gm.TriVerts))

	// Quads split into two triangles
	m := mesh.NewMesh()
	m.AddNode(1, []float64{0, 0, 0})
	m.AddNode(2, []float64{1, 0, 0})
	m.AddNode(3, []float64{1, 1, 0})
	m.AddNode(4, []float64{0, 1, 0})
	m.AddElement(mesh.Quad, 0, []int{0, 1, 2, 3})
	gm, err = ToTriMesh(m)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(gm.TriVerts))
	assert.Equal(t, [3]int64{0, 2, 3}, gm.TriVerts[1])

	// Nothing planar to show
	m = mesh.NewMesh()
	m.AddNode(1, []float64{0, 0, 0})
	m.AddElement(mesh.Point, 0, []int{0})
	_, err = ToTriMesh(m)
	assert.Error(t, err)
}

func TestBoundaryEdges(t *testing.T) {
	xySurf := BoundaryEdges(squareMesh())
	// The shared diagonal is interior, four edges remain
	assert.Equal(t, 4*4, len(xySurf))
}

func TestGraphMeshRoundTrip(t *testing.T) {
	gm, err := ToTriMesh(squareMesh())
	assert.NoError(t, err)

	group := avsGeometry.NewEdgeGroup("boundary", 1)
	group.EdgeXYs[0] = [4]float32{0, 0, 1, 0}

	tmpFile := filepath.Join(t.TempDir(), "mesh.bin")
	err = SaveGraphMesh(GraphMesh{TriMesh: gm, BCEdges: []*avsGeometry.EdgeGroup{group}}, tmpFile)
	assert.NoError(t, err)

	got, err := ReadGraphMesh(tmpFile)
	assert.NoError(t, err)
	assert.Equal(t, gm.XY, got.TriMesh.XY)
	assert.Equal(t, gm.TriVerts, got.TriMesh.TriVerts)
	assert.Equal(t, 1, len(got.BCEdges))
	assert.Equal(t, "boundary", got.BCEdges[0].GroupName)
	assert.Equal(t, avsGeometry.EdgeXY{0, 0, 1, 0}, got.BCEdges[0].EdgeXYs[0])
}

func TestReadGraphMeshMissing(t *testing.T) {
	_, err := ReadGraphMesh(filepath.Join(t.TempDir(), "absent.bin"))
	assert.Error(t, err)
}
