package mesh

// ElementType represents the element types the kernel can hand back

type ElementType int

const (
	Unknown ElementType = iota
	// 0D elements
	Point
	// 1D elements
	Line
	Line3 // 3-node line (quadratic)
	// 2D elements
	Triangle
	Quad
	Triangle6 // 6-node triangle (quadratic)
	Quad8     // 8-node quad (quadratic)
	Quad9     // 9-node quad
	// 3D elements
	Tet
	Hex
	Prism
	Pyramid
	Tet10 // 10-node tetrahedron (quadratic)
	Hex20 // 20-node hexahedron (quadratic)
)

// String representation of element types
func (e ElementType) String() string {
	names := []string{
		"Unknown",
		"Point",
		"Line", "Line3",
		"Triangle", "Quad", "Triangle6", "Quad8", "Quad9",
		"Tet", "Hex", "Prism", "Pyramid", "Tet10", "Hex20",
	}
	if int(e) < len(names) {
		return names[e]
	}
	return "Invalid"
}

// GetDimension returns the spatial dimension of the element
func (e ElementType) GetDimension() int {
	switch e {
	case Point:
		return 0
	case Line, Line3:
		return 1
	case Triangle, Quad, Triangle6, Quad8, Quad9:
		return 2
	case Tet, Hex, Prism, Pyramid, Tet10, Hex20:
		return 3
	}
	return -1
}

// GetNumNodes returns the number of nodes for the element type
func (e ElementType) GetNumNodes() int {
	switch e {
	case Point:
		return 1
	case Line:
		return 2
	case Line3, Triangle:
		return 3
	case Quad, Tet:
		return 4
	case Pyramid:
		return 5
	case Triangle6, Prism:
		return 6
	case Quad8, Hex:
		return 8
	case Quad9:
		return 9
	case Tet10:
		return 10
	case Hex20:
		return 20
	}
	return 0
}

// GmshElementType maps Gmsh element type numbers to our ElementType
var GmshElementType = map[int]ElementType{
	1:  Line,      // 2-node line
	2:  Triangle,  // 3-node triangle
	3:  Quad,      // 4-node quadrangle
	4:  Tet,       // 4-node tetrahedron
	5:  Hex,       // 8-node hexahedron
	6:  Prism,     // 6-node prism
	7:  Pyramid,   // 5-node pyramid
	8:  Line3,     // 3-node line
	9:  Triangle6, // 6-node triangle
	10: Quad9,     // 9-node quadrangle
	11: Tet10,     // 10-node tetrahedron
	15: Point,     // 1-node point
	16: Quad8,     // 8-node quadrangle
	17: Hex20,     // 20-node hexahedron
}

// ElementTypeToGmsh is the inverse map, used when writing MSH files
var ElementTypeToGmsh = map[ElementType]int{
	Point:     15,
	Line:      1,
	Line3:     8,
	Triangle:  2,
	Triangle6: 9,
	Quad:      3,
	Quad8:     16,
	Quad9:     10,
	Tet:       4,
	Tet10:     11,
	Hex:       5,
	Hex20:     17,
	Prism:     6,
	Pyramid:   7,
}
