package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// PolyData is a boundary/edge source: a point set with optional polyline
// connectivity (constrained edges and loops) and optional polygonal faces
// (a closed polyhedral surface). Line connectivity is packed the same way
// throughout: cell size first, then the point indices of the polyline,
// so a closed loop over N points occupies N+2 ints.
type PolyData struct {
	Points [][3]float64
	Lines  []int
	Faces  [][]int
}

func (pd *PolyData) NumberOfPoints() int {
	return len(pd.Points)
}

func (pd *PolyData) NumberOfFaces() int {
	return len(pd.Faces)
}

// NumberOfLines counts the individual edges described by the packed
// polyline array.
func (pd *PolyData) NumberOfLines() (n int) {
	for i := 0; i < len(pd.Lines); {
		cellLen := pd.Lines[i]
		n += cellLen - 1
		i += cellLen + 1
	}
	return
}

// FirstLoop returns the point indices of the first polyline cell. The
// meshing front ends only process the first loop, matching the edge
// source convention of the wrapped kernel API.
func (pd *PolyData) FirstLoop() ([]int, error) {
	if len(pd.Lines) < 3 {
		return nil, fmt.Errorf("polydata has no line connectivity")
	}
	cellLen := pd.Lines[0]
	if cellLen+1 > len(pd.Lines) {
		return nil, fmt.Errorf("malformed line connectivity: cell size %d exceeds array", cellLen)
	}
	return pd.Lines[1 : cellLen+1], nil
}

// Bounds returns (xmin, xmax, ymin, ymax, zmin, zmax).
func (pd *PolyData) Bounds() (b [6]float64) {
	return bounds(pd.Points)
}

func bounds(points [][3]float64) (b [6]float64) {
	if len(points) == 0 {
		return
	}
	b = [6]float64{
		math.MaxFloat64, -math.MaxFloat64,
		math.MaxFloat64, -math.MaxFloat64,
		math.MaxFloat64, -math.MaxFloat64,
	}
	for _, p := range points {
		for d := 0; d < 3; d++ {
			if p[d] < b[2*d] {
				b[2*d] = p[d]
			}
			if p[d] > b[2*d+1] {
				b[2*d+1] = p[d]
			}
		}
	}
	return
}

// Area returns the planar area enclosed by the first polyline loop,
// via the shoelace formula on the XY plane.
func (pd *PolyData) Area() float64 {
	loop, err := pd.FirstLoop()
	if err != nil {
		return 0
	}
	ring := make([][3]float64, 0, len(loop))
	for _, idx := range loop {
		ring = append(ring, pd.Points[idx])
	}
	return ringArea(ring)
}

// ringArea computes the absolute shoelace area of a ring. A closed ring
// (first point repeated at the end) and an open ring give the same result.
func ringArea(ring [][3]float64) (area float64) {
	n := len(ring)
	if n < 3 {
		return 0
	}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += ring[i][0]*ring[j][1] - ring[j][0]*ring[i][1]
	}
	return math.Abs(area) / 2
}

// Volume returns the volume enclosed by the polygonal faces, computed by
// the divergence theorem with each face fan-triangulated about its first
// vertex. Faces must describe a closed, consistently oriented surface.
func (pd *PolyData) Volume() (vol float64) {
	for _, face := range pd.Faces {
		if len(face) < 3 {
			continue
		}
		p0 := vec(pd.Points[face[0]])
		for i := 1; i < len(face)-1; i++ {
			p1 := vec(pd.Points[face[i]])
			p2 := vec(pd.Points[face[i+1]])
			vol += r3.Dot(p0, r3.Cross(p1, p2)) / 6
		}
	}
	return math.Abs(vol)
}

func vec(p [3]float64) r3.Vec {
	return r3.Vec{X: p[0], Y: p[1], Z: p[2]}
}
