// Package mesher translates boundary descriptions into external-kernel
// meshing runs: Frontal-Delaunay triangulation of planar boundaries and
// Delaunay tetrahedralization of closed polyhedral surfaces. All actual
// meshing happens inside the kernel; this package only builds the kernel
// model, selects algorithm options, and post-filters the returned cells.
package mesher

import (
	"fmt"

	"github.com/meshtools/gmshkit/geometry"
	"github.com/meshtools/gmshkit/kernel"
	"github.com/meshtools/gmshkit/mesh"
)

// EdgeSource is a boundary description the mesher accepts: either a
// *geometry.PolyData or a *geometry.Polygon.
type EdgeSource interface {
	NumberOfPoints() int
}

// Options control one generation run.
type Options struct {
	// TargetSizes drives mesh density near the boundary points. Nil
	// selects the initial-mesh-only strategy (no refinement). A single
	// value applies uniformly. Otherwise one value per boundary point
	// (PolyData sources) or per ring (Polygon sources).
	TargetSizes []float64

	// RingSizes optionally gives per-vertex sizes ring by ring for
	// Polygon sources, overriding TargetSizes.
	RingSizes [][]float64

	// Recombine merges the generated triangles into quadrangles.
	Recombine bool

	// Binary overrides the kernel executable.
	Binary string
}

// Uniform is a convenience for a single uniform target size.
func Uniform(size float64) []float64 {
	return []float64{size}
}

// FrontalDelaunay2D generates a constrained planar mesh from the edge
// source. With target sizes the kernel runs its Frontal-Delaunay
// algorithm; without, it returns the initial boundary mesh only. Vertex
// and line artifacts are removed from the result.
func FrontalDelaunay2D(edgeSource EdgeSource, opts *Options) (*mesh.Mesh, error) {
	if opts == nil {
		opts = &Options{}
	}

	s := kernel.NewSession()
	s.SetBinary(opts.Binary)
	setAlgorithm2D(s.Model, opts.TargetSizes == nil && opts.RingSizes == nil)

	var err error
	switch src := edgeSource.(type) {
	case *geometry.Polygon:
		err = buildPolygonModel(s.Model, src, opts)
	case *geometry.PolyData:
		err = buildPolyDataModel(s.Model, src, opts)
	default:
		err = fmt.Errorf("unsupported edge source %T", edgeSource)
	}
	if err != nil {
		return nil, err
	}

	if opts.Recombine {
		s.Model.Recombine(1)
	}

	msh, err := s.Generate(2)
	if err != nil {
		return nil, err
	}
	return msh.RemoveTypes(mesh.Point, mesh.Line), nil
}

// Delaunay3D generates a tetrahedral mesh bounded by the polyhedral
// surface of the edge source. Non-tetrahedral cells are discarded.
func Delaunay3D(edgeSource *geometry.PolyData, opts *Options) (*mesh.Mesh, error) {
	if opts == nil {
		opts = &Options{}
	}
	if edgeSource.NumberOfFaces() == 0 {
		return nil, fmt.Errorf("edge source has no faces")
	}

	s := kernel.NewSession()
	s.SetBinary(opts.Binary)

	m := s.Model
	if opts.TargetSizes == nil {
		m.SetNumber("Mesh.Algorithm", kernel.InitialMeshOnly3D)
		m.SetNumber("Mesh.MeshSizeExtendFromBoundary", 0)
		m.SetNumber("Mesh.MeshSizeFromPoints", 0)
		m.SetNumber("Mesh.MeshSizeFromCurvature", 0)
	} else {
		m.SetNumber("Mesh.Algorithm3D", kernel.Delaunay3D)
	}
	m.SetNumber("General.Verbosity", kernel.Silent)
	m.SetNumber("Mesh.AlgorithmSwitchOnFailure", kernel.False)
	m.SetNumber("Mesh.RecombinationAlgorithm", kernel.SimpleRecombine)
	m.SetNumber("Mesh.RecombineNodeRepositioning", kernel.False)

	sizes, err := pointSizes(opts.TargetSizes, edgeSource.NumberOfPoints())
	if err != nil {
		return nil, err
	}

	for i, p := range edgeSource.Points {
		m.AddPoint(p[0], p[1], p[2], sizes[i])
	}

	// One curve loop and plane surface per face; point tags are the
	// face's 0-based vertex indices shifted by one.
	surfaceLoop := make([]int, 0, len(edgeSource.Faces))
	for _, face := range edgeSource.Faces {
		curveTags := make([]int, 0, len(face))
		for j := range face {
			startTag := face[(j+len(face)-1)%len(face)] + 1
			endTag := face[j] + 1
			curveTags = append(curveTags, m.AddLine(startTag, endTag))
		}
		loop := m.AddCurveLoop(curveTags)
		surfaceLoop = append(surfaceLoop, m.AddPlaneSurface([]int{loop}))
	}

	m.Coherence()
	shell := m.AddSurfaceLoop(surfaceLoop)
	m.AddVolume([]int{shell})

	msh, err := s.Generate(3)
	if err != nil {
		return nil, err
	}
	return msh.KeepTypes(mesh.Tet), nil
}

func setAlgorithm2D(m *kernel.Model, initialMeshOnly bool) {
	if initialMeshOnly {
		m.SetNumber("Mesh.Algorithm", kernel.InitialMeshOnly2D)
		m.SetNumber("Mesh.MeshSizeExtendFromBoundary", 0)
		m.SetNumber("Mesh.MeshSizeFromPoints", 0)
		m.SetNumber("Mesh.MeshSizeFromCurvature", 0)
	} else {
		m.SetNumber("Mesh.Algorithm", kernel.FrontalDelaunay2D)
	}
	m.SetNumber("General.Verbosity", kernel.Silent)
}

// buildPolygonModel adds one curve loop per ring (shell first, then
// holes) and a single plane surface bounded by all of them.
func buildPolygonModel(m *kernel.Model, poly *geometry.Polygon, opts *Options) error {
	rings := poly.Rings()

	ringSizes := opts.RingSizes
	if ringSizes == nil {
		perRing, err := pointSizes(opts.TargetSizes, len(rings))
		if err != nil {
			return err
		}
		ringSizes = make([][]float64, len(rings))
		for i := range rings {
			ringSizes[i] = uniformSizes(perRing[i], len(rings[i]))
		}
	}
	if len(ringSizes) != len(rings) {
		return fmt.Errorf("got %d ring size sets for %d rings", len(ringSizes), len(rings))
	}

	wireTags := make([]int, 0, len(rings))
	for r, ring := range rings {
		sizes := ringSizes[r]
		if len(sizes) != len(ring) {
			return fmt.Errorf("ring %d: got %d sizes for %d points", r, len(sizes), len(ring))
		}
		tags := make([]int, len(ring))
		for i, coord := range ring {
			tags[i] = m.AddPoint(coord[0], coord[1], coord[2], sizes[i])
		}
		curveTags := make([]int, len(tags))
		for i := range tags {
			startTag := tags[(i+len(tags)-1)%len(tags)]
			curveTags[i] = m.AddLine(startTag, tags[i])
		}
		wireTags = append(wireTags, m.AddCurveLoop(curveTags))
	}
	m.AddPlaneSurface(wireTags)
	return nil
}

// buildPolyDataModel adds the first polyline loop as constrained edges
// and embeds every point in the surface so isolated points still drive
// the mesh size field.
func buildPolyDataModel(m *kernel.Model, pd *geometry.PolyData, opts *Options) error {
	loop, err := pd.FirstLoop()
	if err != nil {
		return err
	}

	sizes, err := pointSizes(opts.TargetSizes, pd.NumberOfPoints())
	if err != nil {
		return err
	}

	embedded := make([]int, 0, len(pd.Points))
	for i, p := range pd.Points {
		embedded = append(embedded, m.AddPoint(p[0], p[1], p[2], sizes[i]))
	}

	curveTags := make([]int, 0, len(loop)-1)
	for i := 0; i < len(loop)-1; i++ {
		curveTags = append(curveTags, m.AddLine(loop[i]+1, loop[i+1]+1))
	}

	loopTag := m.AddCurveLoop(curveTags)
	surface := m.AddPlaneSurface([]int{loopTag})
	m.Embed(embedded, surface)
	return nil
}

// pointSizes expands nil or a single uniform value to n sizes.
func pointSizes(sizes []float64, n int) ([]float64, error) {
	switch len(sizes) {
	case 0:
		return make([]float64, n), nil
	case 1:
		return uniformSizes(sizes[0], n), nil
	case n:
		return sizes, nil
	}
	return nil, fmt.Errorf("got %d target sizes for %d points", len(sizes), n)
}

func uniformSizes(size float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = size
	}
	return out
}
