// Package geospatial generates planar meshes from geospatial vector
// features: polygon layers with optional per-feature cell sizes, the
// way GIS meshing frontends consume them.
package geospatial

import (
	"fmt"
	"math"
	"sort"

	"github.com/meshtools/gmshkit/geometry"
	"github.com/meshtools/gmshkit/mesh"
	"github.com/meshtools/gmshkit/mesher"
)

// Feature is one vector feature: a polygon with an optional target cell
// size. CellSize zero means unset.
type Feature struct {
	Polygon  *geometry.Polygon
	CellSize float64
}

// GeoMesherConfig configures a GeoMesher.
type GeoMesherConfig struct {
	Features []Feature

	// DefaultCellSize applies to features without a size. Zero derives
	// it as 1/50th of the maximum extent of the layer.
	DefaultCellSize float64

	// Binary overrides the kernel executable.
	Binary string
}

// GeoMesher converts a polygon feature layer into an unstructured
// triangular mesh. Multiple features are merged under their common
// convex hull, keeping every feature's holes.
type GeoMesher struct {
	features        []Feature
	defaultCellSize float64
	binary          string
}

func NewGeoMesher(cfg GeoMesherConfig) (*GeoMesher, error) {
	if len(cfg.Features) == 0 {
		return nil, fmt.Errorf("feature layer is empty")
	}
	for i, f := range cfg.Features {
		if f.Polygon == nil {
			return nil, fmt.Errorf("feature %d has no geometry", i)
		}
	}

	g := &GeoMesher{
		features:        cfg.Features,
		defaultCellSize: cfg.DefaultCellSize,
		binary:          cfg.Binary,
	}
	if g.defaultCellSize == 0 {
		b := g.totalBounds()
		g.defaultCellSize = math.Max(b[1]-b[0], b[3]-b[2]) / 50
	}
	return g, nil
}

// CellSize returns the size the next generation run will use: the
// smallest size any feature carries, falling back to the default.
func (g *GeoMesher) CellSize() float64 {
	size := math.Inf(1)
	for _, f := range g.features {
		fs := f.CellSize
		if fs == 0 {
			fs = g.defaultCellSize
		}
		size = math.Min(size, fs)
	}
	return size
}

// GenerateMesh meshes the layer and returns the triangular mesh.
func (g *GeoMesher) GenerateMesh() (*mesh.Mesh, error) {
	d, err := mesher.NewMesher2D(mesher.Mesher2DConfig{
		Shell:    g.shell(),
		Holes:    g.holes(),
		CellSize: mesher.Uniform(g.CellSize()),
		Binary:   g.binary,
	})
	if err != nil {
		return nil, err
	}
	return d.Mesh()
}

// Generate meshes the layer and returns flat planar vertices and
// triangle connectivity.
func (g *GeoMesher) Generate() (vertices [][2]float64, faces [][3]int, err error) {
	msh, err := g.GenerateMesh()
	if err != nil {
		return nil, nil, err
	}

	vertices = make([][2]float64, msh.NumVertices)
	for i, v := range msh.Vertices {
		vertices[i] = [2]float64{v[0], v[1]}
	}
	for i := 0; i < msh.NumElements; i++ {
		if msh.ElementTypes[i] != mesh.Triangle {
			continue
		}
		e := msh.Elements[i]
		faces = append(faces, [3]int{e[0], e[1], e[2]})
	}
	return vertices, faces, nil
}

// shell returns the outer boundary: a single feature keeps its own
// shell, multiple features get the convex hull of all their shells.
func (g *GeoMesher) shell() [][3]float64 {
	if len(g.features) == 1 {
		return g.features[0].Polygon.Shell
	}

	var pts [][3]float64
	for _, f := range g.features {
		pts = append(pts, f.Polygon.Shell...)
	}
	return convexHull(pts)
}

func (g *GeoMesher) holes() [][][3]float64 {
	var holes [][][3]float64
	for _, f := range g.features {
		holes = append(holes, f.Polygon.Holes...)
	}
	return holes
}

func (g *GeoMesher) totalBounds() (b [4]float64) {
	b = [4]float64{math.Inf(1), math.Inf(-1), math.Inf(1), math.Inf(-1)}
	for _, f := range g.features {
		fb := f.Polygon.Bounds()
		b[0] = math.Min(b[0], fb[0])
		b[1] = math.Max(b[1], fb[1])
		b[2] = math.Min(b[2], fb[2])
		b[3] = math.Max(b[3], fb[3])
	}
	return
}

// convexHull computes the planar hull with the monotone chain
// algorithm, returning the ring counter clockwise without a closing
// duplicate.
func convexHull(points [][3]float64) [][3]float64 {
	pts := make([][3]float64, len(points))
	copy(pts, points)
	sort.Slice(pts, func(i, j int) bool {
		if pts[i][0] != pts[j][0] {
			return pts[i][0] < pts[j][0]
		}
		return pts[i][1] < pts[j][1]
	})

	cross := func(o, a, b [3]float64) float64 {
		return (a[0]-o[0])*(b[1]-o[1]) - (a[1]-o[1])*(b[0]-o[0])
	}

	var lower, upper [][3]float64
	for _, p := range pts {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}
	for i := len(pts) - 1; i >= 0; i-- {
		p := pts[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}
	return append(lower[:len(lower)-1], upper[:len(upper)-1]...)
}
