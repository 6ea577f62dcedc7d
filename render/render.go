// Package render bridges generated meshes to the avs interactive
// graphics library and to a compact binary graph-mesh file format.
package render

import (
	"fmt"

	"github.com/notargets/avs/chart2d"
	"github.com/notargets/avs/geometry"
	avsUtils "github.com/notargets/avs/utils"

	"github.com/meshtools/gmshkit/mesh"
)

// ToTriMesh converts the planar cells of a mesh to an avs TriMesh.
// Quadrangles are split into two triangles; other cell types are
// skipped.
func ToTriMesh(msh *mesh.Mesh) (geometry.TriMesh, error) {
	xy := make([]float32, 2*msh.NumVertices)
	for i, v := range msh.Vertices {
		xy[2*i] = float32(v[0])
		xy[2*i+1] = float32(v[1])
	}

	var verts [][3]int64
	for i := 0; i < msh.NumElements; i++ {
		e := msh.Elements[i]
		switch msh.ElementTypes[i] {
		case mesh.Triangle:
			verts = append(verts, [3]int64{int64(e[0]), int64(e[1]), int64(e[2])})
		case mesh.Quad:
			verts = append(verts,
				[3]int64{int64(e[0]), int64(e[1]), int64(e[2])},
				[3]int64{int64(e[0]), int64(e[2]), int64(e[3])})
		}
	}
	if len(verts) == 0 {
		return geometry.TriMesh{}, fmt.Errorf("mesh has no planar cells to render")
	}
	return geometry.NewTriMesh(xy, verts), nil
}

// BoundaryEdges returns the boundary edges of the planar cells as
// packed line segments (x1,y1,x2,y2 per edge).
func BoundaryEdges(msh *mesh.Mesh) (xySurf []float32) {
	msh.BuildConnectivity()
	for elemID := 0; elemID < msh.NumElements; elemID++ {
		if msh.ElementTypes[elemID].GetDimension() != 2 {
			continue
		}
		edges := mesh.GetElementFaces(msh.ElementTypes[elemID], msh.Elements[elemID])
		for localID, edge := range edges {
			if msh.EToE[elemID][localID] != -1 {
				continue
			}
			xySurf = append(xySurf,
				float32(msh.Vertices[edge[0]][0]), float32(msh.Vertices[edge[0]][1]),
				float32(msh.Vertices[edge[1]][0]), float32(msh.Vertices[edge[1]][1]))
		}
	}
	return
}

// PlotMesh opens an interactive chart showing the planar mesh. The
// caller keeps the returned chart alive for as long as the window
// should stay up.
func PlotMesh(msh *mesh.Mesh) (*chart2d.Chart2D, error) {
	gm, err := ToTriMesh(msh)
	if err != nil {
		return nil, err
	}

	b := msh.Bounds()
	xMin, xMax, yMin, yMax := getSquareBoundingBox(
		float32(b[0]), float32(b[1]), float32(b[2]), float32(b[3]))
	cc := chart2d.NewChart2D(xMin, xMax, yMin, yMax, 1024, 1024,
		avsUtils.WHITE, avsUtils.BLACK, 0.9)
	cc.AddTriMesh(gm)
	return cc, nil
}

func getSquareBoundingBox(xMin, xMax, yMin, yMax float32) (xBMin,
	xBMax, yBMin, yBMax float32) {
	xRange := xMax - xMin
	yRange := yMax - yMin
	if yRange > xRange {
		yBMin = yMin
		yBMax = yMax
		xCent := xRange/2. + xMin
		xBMin = xCent - yRange/2.
		xBMax = xCent + yRange/2.
	} else {
		xBMin = xMin
		xBMax = xMax
		yCent := yRange/2. + yMin
		yBMin = yCent - xRange/2.
		yBMax = yCent + xRange/2.
	}
	return
}
