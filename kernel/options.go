package kernel

// Gmsh meshing algorithm selectors, set through Mesh.Algorithm and
// Mesh.Algorithm3D.
const (
	InitialMeshOnly2D = 3
	FrontalDelaunay2D = 6
	Delaunay3D        = 1
	InitialMeshOnly3D = 3
)

// Values for the on/off and enum options the mesher sets.
const (
	Silent          = 0
	SimpleRecombine = 0
	True            = 1
	False           = 0
)

// option is a single numeric kernel option assignment, kept in the order
// callers set them.
type option struct {
	Name  string
	Value float64
}
