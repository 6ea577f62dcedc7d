// Package triangulate provides in-process planar Delaunay
// triangulation backed by Shewchuk's Triangle, used for quick previews
// and as a fallback when the external meshing kernel is not installed.
package triangulate

import (
	"fmt"

	"github.com/pradeep-pyro/triangle"

	"github.com/meshtools/gmshkit/geometry"
	"github.com/meshtools/gmshkit/mesh"
)

// Delaunay triangulates the convex hull of the point set.
func Delaunay(points [][2]float64) (*mesh.Mesh, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("need at least 3 points, got %d", len(points))
	}
	faces := triangle.Delaunay(points)
	return buildMesh(points, faces), nil
}

// ConstrainedDelaunay triangulates the polygon interior, keeping every
// ring edge as a mesh edge and leaving hole interiors empty.
func ConstrainedDelaunay(poly *geometry.Polygon) (*mesh.Mesh, error) {
	rings := poly.Rings()

	var (
		pts  [][2]float64
		segs [][2]int32
	)
	for _, ring := range rings {
		if len(ring) < 3 {
			return nil, fmt.Errorf("ring with %d points cannot bound an area", len(ring))
		}
		base := len(pts)
		for i, coord := range ring {
			pts = append(pts, [2]float64{coord[0], coord[1]})
			segs = append(segs, [2]int32{
				int32(base + i),
				int32(base + (i+1)%len(ring)),
			})
		}
	}

	holes := make([][2]float64, 0, len(poly.Holes))
	for _, hole := range poly.Holes {
		holes = append(holes, interiorPoint(hole))
	}

	verts, faces := triangle.ConstrainedDelaunay(pts, segs, holes)
	return buildMesh(verts, faces), nil
}

func buildMesh(points [][2]float64, faces [][3]int32) *mesh.Mesh {
	msh := mesh.NewMesh()
	for i, p := range points {
		msh.AddNode(i+1, []float64{p[0], p[1], 0})
	}
	for _, f := range faces {
		msh.AddElement(mesh.Triangle, 0, []int{int(f[0]), int(f[1]), int(f[2])})
	}
	return msh
}

// interiorPoint returns the vertex centroid, which lies inside the ring
// for the convex and mildly concave holes the meshers produce.
func interiorPoint(ring [][3]float64) (p [2]float64) {
	for _, coord := range ring {
		p[0] += coord[0]
		p[1] += coord[1]
	}
	p[0] /= float64(len(ring))
	p[1] /= float64(len(ring))
	return
}
