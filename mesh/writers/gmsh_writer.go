package writers

import (
	"fmt"
	"os"
	"strings"

	"github.com/meshtools/gmshkit/mesh"
)

// WriteGmsh22 writes a mesh in Gmsh MSH 2.2 ASCII format. Node and element
// tags are emitted 1-based in storage order.
func WriteGmsh22(msh *mesh.Mesh, filename string) error {
	var sb strings.Builder

	sb.WriteString("$MeshFormat\n2.2 0 8\n$EndMeshFormat\n")

	sb.WriteString("$Nodes\n")
	fmt.Fprintf(&sb, "%d\n", len(msh.Vertices))
	for i, v := range msh.Vertices {
		fmt.Fprintf(&sb, "%d %g %g %g\n", i+1, v[0], v[1], v[2])
	}
	sb.WriteString("$EndNodes\n")

	sb.WriteString("$Elements\n")
	fmt.Fprintf(&sb, "%d\n", msh.NumElements)
	for i := 0; i < msh.NumElements; i++ {
		gmshType, ok := mesh.ElementTypeToGmsh[msh.ElementTypes[i]]
		if !ok {
			return fmt.Errorf("element %d: no Gmsh code for type %s", i, msh.ElementTypes[i])
		}
		// Format: elem-id elem-type num-tags tag1 tag2 node1 node2 ...
		tag := msh.ElementTags[i]
		fmt.Fprintf(&sb, "%d %d 2 %d %d", i+1, gmshType, tag, tag)
		for _, n := range msh.Elements[i] {
			fmt.Fprintf(&sb, " %d", n+1)
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("$EndElements\n")

	return os.WriteFile(filename, []byte(sb.String()), 0644)
}
