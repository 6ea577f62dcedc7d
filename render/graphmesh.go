package render

import (
	"encoding/binary"
	"fmt"
	"os"
	"strings"

	"github.com/notargets/avs/geometry"
)

// GraphMesh is the on-disk form of a rendered mesh: the triangulation
// plus its named boundary edge groups. The file layout is little-endian
// int64 dimension count, triangle vertex list, packed XY coordinates,
// then the named boundary edge groups.
type GraphMesh struct {
	TriMesh geometry.TriMesh
	BCEdges []*geometry.EdgeGroup
}

// SaveGraphMesh writes the graph mesh to fileName.
func SaveGraphMesh(gm GraphMesh, fileName string) error {
	file, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer file.Close()

	lenTriVerts := int64(3 * len(gm.TriMesh.TriVerts))
	triVerts := make([]int64, 0, lenTriVerts)
	for _, tv := range gm.TriMesh.TriVerts {
		triVerts = append(triVerts, tv[0], tv[1], tv[2])
	}
	lenVerts := int64(len(gm.TriMesh.XY) / 2)
	xy := make([]float64, 2*lenVerts)
	for i, v := range gm.TriMesh.XY {
		xy[i] = float64(v)
	}

	nDimensions := int64(2)
	binary.Write(file, binary.LittleEndian, nDimensions)
	binary.Write(file, binary.LittleEndian, lenTriVerts)
	binary.Write(file, binary.LittleEndian, triVerts)
	binary.Write(file, binary.LittleEndian, lenVerts)
	binary.Write(file, binary.LittleEndian, xy)

	nBCs := int64(len(gm.BCEdges))
	binary.Write(file, binary.LittleEndian, nBCs)
	for _, group := range gm.BCEdges {
		var fString [16]byte
		copy(fString[:], group.GroupName)
		binary.Write(file, binary.LittleEndian, fString)
		bcLen := int64(len(group.EdgeXYs))
		binary.Write(file, binary.LittleEndian, bcLen)
		for i := range group.EdgeXYs {
			binary.Write(file, binary.LittleEndian, group.EdgeXYs[i])
		}
	}
	return nil
}

// ReadGraphMesh reads a file written by SaveGraphMesh.
func ReadGraphMesh(fileName string) (gm GraphMesh, err error) {
	file, err := os.Open(fileName)
	if err != nil {
		return gm, err
	}
	defer file.Close()

	var nDimensions int64
	if err = binary.Read(file, binary.LittleEndian, &nDimensions); err != nil {
		return gm, err
	}
	if nDimensions != 2 {
		return gm, fmt.Errorf("unsupported dimension count %d", nDimensions)
	}

	var lenTriVerts int64
	if err = binary.Read(file, binary.LittleEndian, &lenTriVerts); err != nil {
		return gm, err
	}
	triVerts := make([]int64, lenTriVerts)
	if err = binary.Read(file, binary.LittleEndian, &triVerts); err != nil {
		return gm, err
	}

	var lenVerts int64
	if err = binary.Read(file, binary.LittleEndian, &lenVerts); err != nil {
		return gm, err
	}
	xy := make([]float64, 2*lenVerts)
	if err = binary.Read(file, binary.LittleEndian, &xy); err != nil {
		return gm, err
	}

	xy32 := make([]float32, len(xy))
	for i := range xy {
		xy32[i] = float32(xy[i])
	}
	verts := make([][3]int64, lenTriVerts/3)
	for i := range verts {
		verts[i][0] = triVerts[3*i]
		verts[i][1] = triVerts[3*i+1]
		verts[i][2] = triVerts[3*i+2]
	}
	gm.TriMesh = geometry.NewTriMesh(xy32, verts)

	var nBCs int64
	if err = binary.Read(file, binary.LittleEndian, &nBCs); err != nil {
		return gm, err
	}
	gm.BCEdges = make([]*geometry.EdgeGroup, nBCs)
	for n := 0; n < int(nBCs); n++ {
		var fString [16]byte
		if err = binary.Read(file, binary.LittleEndian, &fString); err != nil {
			return gm, err
		}
		bcName := strings.TrimRight(string(fString[:]), "\x00 ")
		var bcLen int64
		if err = binary.Read(file, binary.LittleEndian, &bcLen); err != nil {
			return gm, err
		}
		gm.BCEdges[n] = geometry.NewEdgeGroup(bcName, int(bcLen))
		for i := range gm.BCEdges[n].EdgeXYs {
			if err = binary.Read(file, binary.LittleEndian, &gm.BCEdges[n].EdgeXYs[i]); err != nil {
				return gm, err
			}
		}
	}
	return gm, nil
}
