package triangulate

import (
	"math"

	"github.com/meshtools/gmshkit/mesh"
)

// IsIllegalEdge reports whether the shared edge pi-pj of the triangle
// pi-pj-pk should be flipped because the opposing point pr lies inside
// the circle circumscribing pi-pj-pk.
func IsIllegalEdge(prX, prY, piX, piY, pjX, pjY, pkX, pkY float64) bool {
	inCircle := func(ax, ay, bx, by, cx, cy, dx, dy float64) bool {
		// Handedness flips the sign of the determinant, counter
		// clockwise is positive.
		signBit := math.Signbit((bx-ax)*(cy-ay) - (cx-ax)*(by-ay))
		ax_ := ax - dx
		ay_ := ay - dy
		bx_ := bx - dx
		by_ := by - dy
		cx_ := cx - dx
		cy_ := cy - dy
		det := (ax_*ax_+ay_*ay_)*(bx_*cy_-cx_*by_) -
			(bx_*bx_+by_*by_)*(ax_*cy_-cx_*ay_) +
			(cx_*cx_+cy_*cy_)*(ax_*by_-bx_*ay_)
		if signBit {
			return det < 0
		}
		return det > 0
	}
	return inCircle(piX, piY, pjX, pjY, pkX, pkY, prX, prY)
}

// CountIllegalEdges walks the interior edges of a triangular mesh and
// counts those violating the Delaunay circumcircle property. Boundary
// and constrained edges are allowed to violate it, so a small nonzero
// count on a constrained triangulation is normal.
func CountIllegalEdges(msh *mesh.Mesh) (count int) {
	msh.BuildConnectivity()

	for elemID := 0; elemID < msh.NumElements; elemID++ {
		if msh.ElementTypes[elemID] != mesh.Triangle {
			continue
		}
		edges := mesh.GetElementFaces(mesh.Triangle, msh.Elements[elemID])
		for localID, edge := range edges {
			neighbor := msh.EToE[elemID][localID]
			// Visit each interior edge once.
			if neighbor < 0 || neighbor < elemID {
				continue
			}
			if msh.ElementTypes[neighbor] != mesh.Triangle {
				continue
			}
			pk, ok := oppositeVertex(msh.Elements[elemID], edge)
			if !ok {
				continue
			}
			pr, ok := oppositeVertex(msh.Elements[neighbor], edge)
			if !ok {
				continue
			}
			if IsIllegalEdge(
				msh.Vertices[pr][0], msh.Vertices[pr][1],
				msh.Vertices[edge[0]][0], msh.Vertices[edge[0]][1],
				msh.Vertices[edge[1]][0], msh.Vertices[edge[1]][1],
				msh.Vertices[pk][0], msh.Vertices[pk][1],
			) {
				count++
			}
		}
	}
	return
}

// oppositeVertex returns the triangle vertex not on the edge.
func oppositeVertex(tri, edge []int) (int, bool) {
	for _, v := range tri {
		if v != edge[0] && v != edge[1] {
			return v, true
		}
	}
	return 0, false
}
