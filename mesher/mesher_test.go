package mesher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meshtools/gmshkit/geometry"
	"github.com/meshtools/gmshkit/kernel"
	"github.com/meshtools/gmshkit/mesh"
)

func TestPointSizes(t *testing.T) {
	sizes, err := pointSizes(nil, 3)
	assert.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, sizes)

	sizes, err = pointSizes([]float64{0.5}, 3)
	assert.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0.5, 0.5}, sizes)

	sizes, err = pointSizes([]float64{1, 2, 3}, 3)
	assert.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, sizes)

	_, err = pointSizes([]float64{1, 2}, 3)
	assert.Error(t, err)
}

func TestFrontalDelaunay2DBadSource(t *testing.T) {
	_, err := FrontalDelaunay2D(badSource{}, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported edge source")
}

type badSource struct{}

func (badSource) NumberOfPoints() int { return 0 }

func TestDelaunay3DNoFaces(t *testing.T) {
	_, err := Delaunay3D(geometry.RegularPolygon(4, 1), nil)
	assert.Error(t, err)
}

func TestMesher2DConfig(t *testing.T) {
	shell := [][3]float64{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}

	_, err := NewMesher2D(Mesher2DConfig{})
	assert.Error(t, err)

	_, err = NewMesher2D(Mesher2DConfig{
		EdgeSource: geometry.NewPolygon(shell),
		Shell:      shell,
	})
	assert.Error(t, err)

	d, err := NewMesher2D(Mesher2DConfig{Shell: shell, CellSize: Uniform(0.1)})
	assert.NoError(t, err)
	assert.Equal(t, []float64{0.1}, d.CellSize())
	_, ok := d.EdgeSource().(*geometry.Polygon)
	assert.True(t, ok)

	d.SetCellSize(Uniform(0.2))
	assert.Equal(t, []float64{0.2}, d.CellSize())
}

func TestConstrainEdgeSize(t *testing.T) {
	// A rectangle: every vertex joins a long and a short edge, so the
	// long one wins everywhere
	shell := [][3]float64{{0, 0, 0}, {3, 0, 0}, {3, 1, 0}, {0, 1, 0}}
	d, err := NewMesher2D(Mesher2DConfig{Shell: shell, ConstrainEdgeSize: true})
	assert.NoError(t, err)
	assert.Equal(t, [][]float64{{3, 3, 3, 3}}, d.ringSizes)

	// PolyData sources constrain through the first loop
	pd := geometry.RegularPolygon(4, math.Sqrt2)
	d, err = NewMesher2D(Mesher2DConfig{EdgeSource: pd, ConstrainEdgeSize: true})
	assert.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, 2, 2, 2}, d.CellSize(), 1.e-12)
}

func TestFrontalDelaunay2D(t *testing.T) {
	if !kernel.Available("") {
		t.Skip("gmsh not found on PATH")
	}

	shell := [][3]float64{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}
	msh, err := FrontalDelaunay2D(geometry.NewPolygon(shell), &Options{
		TargetSizes: Uniform(0.1),
	})
	assert.NoError(t, err)

	// Refinement adds interior points
	assert.Greater(t, msh.NumVertices, 4)
	for _, et := range msh.ElementTypes {
		assert.Equal(t, mesh.Triangle, et)
	}
	// The triangles tile the square
	assert.InDelta(t, 1, msh.Volume(), 1.e-6)
}

func TestFrontalDelaunay2DHole(t *testing.T) {
	if !kernel.Available("") {
		t.Skip("gmsh not found on PATH")
	}

	shell := [][3]float64{{0, 0, 0}, {4, 0, 0}, {4, 4, 0}, {0, 4, 0}}
	hole := [][3]float64{{1, 1, 0}, {2, 1, 0}, {2, 2, 0}, {1, 2, 0}}
	poly := geometry.NewPolygon(shell, hole)

	msh, err := FrontalDelaunay2D(poly, &Options{TargetSizes: Uniform(0.5)})
	assert.NoError(t, err)
	assert.InDelta(t, poly.Area(), msh.Volume(), 1.e-6)
}

func TestFrontalDelaunay2DRecombine(t *testing.T) {
	if !kernel.Available("") {
		t.Skip("gmsh not found on PATH")
	}

	// A single quad face with no refinement recombines to one cell
	shell := [][3]float64{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}
	msh, err := FrontalDelaunay2D(geometry.NewPolygon(shell), &Options{
		Recombine: true,
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, msh.NumElements)
	assert.Equal(t, mesh.Quad, msh.ElementTypes[0])
}

func TestDelaunay3DCube(t *testing.T) {
	if !kernel.Available("") {
		t.Skip("gmsh not found on PATH")
	}

	cube := geometry.Cube()
	msh, err := Delaunay3D(cube, &Options{TargetSizes: Uniform(0.25)})
	assert.NoError(t, err)

	assert.Greater(t, msh.NumVertices, cube.NumberOfPoints())
	for _, et := range msh.ElementTypes {
		assert.Equal(t, mesh.Tet, et)
	}
	// The tets fill the bounding surface
	assert.InDelta(t, cube.Volume(), msh.Volume(), 1.e-6)
}

func TestMesher3D(t *testing.T) {
	_, err := NewMesher3D(Mesher3DConfig{})
	assert.Error(t, err)

	d, err := NewMesher3D(Mesher3DConfig{EdgeSource: geometry.Cube()})
	assert.NoError(t, err)
	assert.Nil(t, d.CellSize())
	d.SetCellSize(Uniform(0.5))
	assert.Equal(t, []float64{0.5}, d.CellSize())
}
