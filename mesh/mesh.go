package mesh

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
)

// Face represents a face of an element
type Face struct {
	Vertices []int // Sorted vertex indices
	Element  int   // Parent element
	LocalID  int   // Local face ID within element
}

// Mesh is an unstructured mesh as read back from the meshing kernel:
// vertex coordinates plus element connectivity tagged by element type.
type Mesh struct {
	// Geometry
	Vertices [][]float64 // Vertex coordinates [nvertices][3]

	// Element data
	Elements     [][]int       // Element to vertex connectivity [nelems][nverts_per_elem]
	ElementTypes []ElementType // Element type for each element
	ElementTags  []int         // Physical group/tag for each element

	// Connectivity (built on demand)
	EToE [][]int // Element to element connectivity [nelems][nfaces_per_elem]
	EToF [][]int // Element to face connectivity [nelems][nfaces_per_elem]

	// Face data
	Faces        []Face         // All unique faces in mesh
	FaceMap      map[string]int // Map from sorted vertex string to face ID
	BoundaryTags map[int]string // Boundary condition tags

	// Format metadata from the reader
	FormatVersion string
	IsBinary      bool
	DataSize      int

	nodeIDMap map[int]int // file node tag to dense vertex index

	// Mesh statistics
	NumElements int
	NumVertices int
	NumFaces    int
}

// NewMesh creates an empty mesh
func NewMesh() *Mesh {
	return &Mesh{
		FaceMap:      make(map[string]int),
		BoundaryTags: make(map[int]string),
	}
}

// AddElement appends one element. Node indices are 0-based.
func (m *Mesh) AddElement(etype ElementType, tag int, nodes []int) {
	m.Elements = append(m.Elements, nodes)
	m.ElementTypes = append(m.ElementTypes, etype)
	m.ElementTags = append(m.ElementTags, tag)
	m.NumElements = len(m.Elements)
}

// KeepTypes returns a new mesh holding only elements whose type is in the
// keep set, with vertices no element references dropped and connectivity
// renumbered. Used to discard non-tetrahedral cells after 3D generation.
func (m *Mesh) KeepTypes(keep ...ElementType) *Mesh {
	keepSet := make(map[ElementType]bool, len(keep))
	for _, t := range keep {
		keepSet[t] = true
	}
	return m.filter(func(t ElementType) bool { return keepSet[t] })
}

// RemoveTypes is the complement of KeepTypes. Used to remove vertex and
// line artifacts after 2D generation.
func (m *Mesh) RemoveTypes(remove ...ElementType) *Mesh {
	removeSet := make(map[ElementType]bool, len(remove))
	for _, t := range remove {
		removeSet[t] = true
	}
	return m.filter(func(t ElementType) bool { return !removeSet[t] })
}

func (m *Mesh) filter(pred func(ElementType) bool) *Mesh {
	out := NewMesh()
	out.FormatVersion = m.FormatVersion
	out.IsBinary = m.IsBinary
	out.DataSize = m.DataSize

	vertMap := make(map[int]int)
	for i := 0; i < m.NumElements; i++ {
		if !pred(m.ElementTypes[i]) {
			continue
		}
		nodes := make([]int, len(m.Elements[i]))
		for j, v := range m.Elements[i] {
			nv, ok := vertMap[v]
			if !ok {
				nv = len(out.Vertices)
				vertMap[v] = nv
				out.Vertices = append(out.Vertices, m.Vertices[v])
			}
			nodes[j] = nv
		}
		out.AddElement(m.ElementTypes[i], m.ElementTags[i], nodes)
	}
	out.NumVertices = len(out.Vertices)
	return out
}

// Bounds returns (xmin, xmax, ymin, ymax, zmin, zmax).
func (m *Mesh) Bounds() (b [6]float64) {
	if len(m.Vertices) == 0 {
		return
	}
	b = [6]float64{
		math.MaxFloat64, -math.MaxFloat64,
		math.MaxFloat64, -math.MaxFloat64,
		math.MaxFloat64, -math.MaxFloat64,
	}
	for _, v := range m.Vertices {
		for d := 0; d < 3; d++ {
			if v[d] < b[2*d] {
				b[2*d] = v[d]
			}
			if v[d] > b[2*d+1] {
				b[2*d+1] = v[d]
			}
		}
	}
	return
}

// Volume sums the measure of all cells: triangle/quad areas for surface
// meshes, tet/hex/prism/pyramid volumes for volume meshes. Mixed meshes sum
// whatever measure each cell has; 3D cells dominate once any are present.
func (m *Mesh) Volume() (vol float64) {
	var vol2D, vol3D float64
	for i := 0; i < m.NumElements; i++ {
		switch m.ElementTypes[i] {
		case Triangle:
			vol2D += m.triArea(m.Elements[i][0], m.Elements[i][1], m.Elements[i][2])
		case Quad:
			vol2D += m.triArea(m.Elements[i][0], m.Elements[i][1], m.Elements[i][2])
			vol2D += m.triArea(m.Elements[i][0], m.Elements[i][2], m.Elements[i][3])
		case Tet:
			vol3D += m.tetVolume(m.Elements[i][0], m.Elements[i][1], m.Elements[i][2], m.Elements[i][3])
		case Hex:
			// Split into 6 tets about vertex 0
			n := m.Elements[i]
			for _, t := range [][3]int{{1, 2, 5}, {2, 6, 5}, {2, 3, 6}, {3, 7, 6}, {5, 6, 4}, {6, 7, 4}} {
				vol3D += m.tetVolume(n[0], n[t[0]], n[t[1]], n[t[2]])
			}
		case Prism:
			n := m.Elements[i]
			for _, t := range [][3]int{{1, 2, 4}, {2, 5, 4}, {4, 5, 3}} {
				vol3D += m.tetVolume(n[0], n[t[0]], n[t[1]], n[t[2]])
			}
		case Pyramid:
			n := m.Elements[i]
			vol3D += m.tetVolume(n[0], n[1], n[2], n[4])
			vol3D += m.tetVolume(n[0], n[2], n[3], n[4])
		}
	}
	if vol3D > 0 {
		return vol3D
	}
	return vol2D
}

func (m *Mesh) vec(i int) r3.Vec {
	v := m.Vertices[i]
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}
}

func (m *Mesh) triArea(a, b, c int) float64 {
	ab := r3.Sub(m.vec(b), m.vec(a))
	ac := r3.Sub(m.vec(c), m.vec(a))
	return r3.Norm(r3.Cross(ab, ac)) / 2
}

func (m *Mesh) tetVolume(a, b, c, d int) float64 {
	ab := r3.Sub(m.vec(b), m.vec(a))
	ac := r3.Sub(m.vec(c), m.vec(a))
	ad := r3.Sub(m.vec(d), m.vec(a))
	return math.Abs(r3.Dot(ab, r3.Cross(ac, ad))) / 6
}

// BuildConnectivity builds element-to-element and face connectivity
func (m *Mesh) BuildConnectivity() {
	m.Faces = nil
	m.FaceMap = make(map[string]int)
	m.EToE = make([][]int, m.NumElements)
	m.EToF = make([][]int, m.NumElements)

	for elemID := 0; elemID < m.NumElements; elemID++ {
		elemType := m.ElementTypes[elemID]
		vertices := m.Elements[elemID]

		faceVertices := GetElementFaces(elemType, vertices)

		m.EToE[elemID] = make([]int, len(faceVertices))
		m.EToF[elemID] = make([]int, len(faceVertices))

		// Initialize to -1 (boundary)
		for i := range m.EToE[elemID] {
			m.EToE[elemID][i] = -1
			m.EToF[elemID][i] = -1
		}

		for localFaceID, faceVerts := range faceVertices {
			sorted := make([]int, len(faceVerts))
			copy(sorted, faceVerts)
			sort.Ints(sorted)

			key := fmt.Sprintf("%v", sorted)

			if faceID, exists := m.FaceMap[key]; exists {
				// Face already exists - this is an interior face
				face := &m.Faces[faceID]
				neighborElem := face.Element
				neighborLocalID := face.LocalID

				m.EToE[elemID][localFaceID] = neighborElem
				m.EToE[neighborElem][neighborLocalID] = elemID

				m.EToF[elemID][localFaceID] = faceID
				m.EToF[neighborElem][neighborLocalID] = faceID
			} else {
				face := Face{
					Vertices: sorted,
					Element:  elemID,
					LocalID:  localFaceID,
				}

				faceID := len(m.Faces)
				m.Faces = append(m.Faces, face)
				m.FaceMap[key] = faceID
				m.EToF[elemID][localFaceID] = faceID
			}
		}
	}

	m.NumFaces = len(m.Faces)
}

// GetElementFaces returns the face (2D: edge) vertices for each element type
func GetElementFaces(elemType ElementType, vertices []int) [][]int {
	switch elemType {
	case Triangle:
		return [][]int{
			{vertices[0], vertices[1]},
			{vertices[1], vertices[2]},
			{vertices[2], vertices[0]},
		}
	case Quad:
		return [][]int{
			{vertices[0], vertices[1]},
			{vertices[1], vertices[2]},
			{vertices[2], vertices[3]},
			{vertices[3], vertices[0]},
		}
	case Tet:
		return [][]int{
			{vertices[0], vertices[2], vertices[1]}, // Face 0
			{vertices[0], vertices[1], vertices[3]}, // Face 1
			{vertices[1], vertices[2], vertices[3]}, // Face 2
			{vertices[0], vertices[3], vertices[2]}, // Face 3
		}
	case Hex:
		return [][]int{
			{vertices[0], vertices[3], vertices[2], vertices[1]}, // Face 0 (bottom)
			{vertices[4], vertices[5], vertices[6], vertices[7]}, // Face 1 (top)
			{vertices[0], vertices[1], vertices[5], vertices[4]}, // Face 2
			{vertices[1], vertices[2], vertices[6], vertices[5]}, // Face 3
			{vertices[2], vertices[3], vertices[7], vertices[6]}, // Face 4
			{vertices[3], vertices[0], vertices[4], vertices[7]}, // Face 5
		}
	case Prism:
		return [][]int{
			{vertices[0], vertices[2], vertices[1]},              // Face 0 (bottom tri)
			{vertices[3], vertices[4], vertices[5]},              // Face 1 (top tri)
			{vertices[0], vertices[1], vertices[4], vertices[3]}, // Face 2 (quad)
			{vertices[1], vertices[2], vertices[5], vertices[4]}, // Face 3 (quad)
			{vertices[2], vertices[0], vertices[3], vertices[5]}, // Face 4 (quad)
		}
	case Pyramid:
		return [][]int{
			{vertices[0], vertices[3], vertices[2], vertices[1]}, // Face 0 (base quad)
			{vertices[0], vertices[1], vertices[4]},              // Face 1 (tri)
			{vertices[1], vertices[2], vertices[4]},              // Face 2 (tri)
			{vertices[2], vertices[3], vertices[4]},              // Face 3 (tri)
			{vertices[3], vertices[0], vertices[4]},              // Face 4 (tri)
		}
	default:
		return [][]int{}
	}
}

// PrintStatistics prints mesh statistics
func (m *Mesh) PrintStatistics() {
	fmt.Printf("Mesh Statistics:\n")
	fmt.Printf("  Vertices: %d\n", m.NumVertices)
	fmt.Printf("  Elements: %d\n", m.NumElements)

	typeCounts := make(map[ElementType]int)
	for _, t := range m.ElementTypes {
		typeCounts[t]++
	}

	fmt.Printf("  Element types:\n")
	for t, count := range typeCounts {
		fmt.Printf("    %s: %d\n", t, count)
	}
}
