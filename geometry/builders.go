package geometry

import (
	"math"
)

// RegularPolygon returns the boundary of a regular polygon with nSides
// vertices on a circle of the given radius, centered at the origin in the
// z=0 plane. The line connectivity holds a single closed loop.
func RegularPolygon(nSides int, radius float64) (pd *PolyData) {
	pd = &PolyData{
		Points: make([][3]float64, nSides),
		Lines:  make([]int, 0, nSides+2),
	}
	for i := 0; i < nSides; i++ {
		theta := 2 * math.Pi * float64(i) / float64(nSides)
		pd.Points[i] = [3]float64{radius * math.Cos(theta), radius * math.Sin(theta), 0}
	}
	pd.Lines = append(pd.Lines, nSides+1)
	for i := 0; i < nSides; i++ {
		pd.Lines = append(pd.Lines, i)
	}
	pd.Lines = append(pd.Lines, 0)
	return
}

// Cube returns the surface of the unit cube centered at the origin as six
// quadrilateral faces, outward oriented.
func Cube() (pd *PolyData) {
	const h = 0.5
	pd = &PolyData{
		Points: [][3]float64{
			{-h, -h, -h}, {h, -h, -h}, {h, h, -h}, {-h, h, -h},
			{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h},
		},
		Faces: [][]int{
			{0, 3, 2, 1}, // bottom
			{4, 5, 6, 7}, // top
			{0, 1, 5, 4},
			{1, 2, 6, 5},
			{2, 3, 7, 6},
			{3, 0, 4, 7},
		},
	}
	return
}

// Cylinder returns a capped cylinder surface of the given radius and
// height, axis along z, centered at the origin. The side is resolution
// quads and each cap is a single planar polygon face.
func Cylinder(radius, height float64, resolution int) (pd *PolyData) {
	pd = &PolyData{Points: make([][3]float64, 2*resolution)}
	for i := 0; i < resolution; i++ {
		theta := 2 * math.Pi * float64(i) / float64(resolution)
		x, y := radius*math.Cos(theta), radius*math.Sin(theta)
		pd.Points[i] = [3]float64{x, y, -height / 2}
		pd.Points[i+resolution] = [3]float64{x, y, height / 2}
	}
	for i := 0; i < resolution; i++ {
		j := (i + 1) % resolution
		pd.Faces = append(pd.Faces, []int{i, j, j + resolution, i + resolution})
	}
	bottom := make([]int, resolution)
	top := make([]int, resolution)
	for i := 0; i < resolution; i++ {
		bottom[i] = resolution - 1 - i // reversed so the normal points down
		top[i] = i + resolution
	}
	pd.Faces = append(pd.Faces, bottom, top)
	return
}
