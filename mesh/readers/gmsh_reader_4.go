package readers

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/meshtools/gmshkit/mesh"
)

// entityKey identifies a geometric entity by dimension and tag
type entityKey struct {
	Dim, Tag int
}

// ReadGmsh41 reads a Gmsh MSH file format version 4.x (ASCII). Entity
// physical tags are carried onto the elements they own; everything else in
// the entity blocks is skipped.
func ReadGmsh41(filename string) (*mesh.Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	msh := mesh.NewMesh()
	physByEntity := make(map[entityKey]int)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch line {
		case "$MeshFormat":
			if err := readMeshFormat(scanner, msh); err != nil {
				return nil, err
			}

		case "$PhysicalNames":
			if err := readPhysicalNames(scanner, msh); err != nil {
				return nil, err
			}

		case "$Entities":
			if err := readEntities41(scanner, physByEntity); err != nil {
				return nil, err
			}

		case "$Nodes":
			if err := readNodes41(scanner, msh); err != nil {
				return nil, err
			}

		case "$Elements":
			if err := readElements41(scanner, msh, physByEntity); err != nil {
				return nil, err
			}

		case "$NodeData", "$ElementData", "$ElementNodeData", "$Periodic",
			"$PartitionedEntities", "$GhostElements":
			endMarker := "$End" + line[1:]
			if err := skipSection(scanner, endMarker); err != nil {
				return nil, err
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner error: %v", err)
	}

	return msh, nil
}

// readEntities41 records the first physical tag of each entity. Bounding
// boxes and bounding-entity lists are not needed by the glue layer.
func readEntities41(scanner *bufio.Scanner, physByEntity map[entityKey]int) error {
	if !scanner.Scan() {
		return fmt.Errorf("unexpected EOF in Entities")
	}

	counts := strings.Fields(scanner.Text())
	if len(counts) < 4 {
		return fmt.Errorf("invalid entity counts")
	}

	for dim := 0; dim < 4; dim++ {
		n, _ := strconv.Atoi(counts[dim])
		for i := 0; i < n; i++ {
			if !scanner.Scan() {
				return fmt.Errorf("unexpected EOF reading dim %d entity", dim)
			}

			fields := strings.Fields(scanner.Text())
			if len(fields) < 4 {
				return fmt.Errorf("invalid entity line")
			}

			tag, _ := strconv.Atoi(fields[0])

			// Point entities carry x y z, others a 6-value bounding box,
			// then the physical tag count.
			pos := 4
			if dim > 0 {
				pos = 7
			}
			if pos < len(fields) {
				numPhys, _ := strconv.Atoi(fields[pos])
				if numPhys > 0 && pos+1 < len(fields) {
					phys, _ := strconv.Atoi(fields[pos+1])
					physByEntity[entityKey{dim, tag}] = phys
				}
			}
		}
	}

	return skipSection(scanner, "$EndEntities")
}

// readNodes41 reads nodes in v4 format
func readNodes41(scanner *bufio.Scanner, msh *mesh.Mesh) error {
	if !scanner.Scan() {
		return fmt.Errorf("unexpected EOF in Nodes")
	}

	// Format: numEntityBlocks numNodes minNodeTag maxNodeTag
	header := strings.Fields(scanner.Text())
	if len(header) < 4 {
		return fmt.Errorf("invalid Nodes header")
	}

	numEntityBlocks, _ := strconv.Atoi(header[0])

	for i := 0; i < numEntityBlocks; i++ {
		// Block header: entityDim entityTag parametric numNodes
		if !scanner.Scan() {
			return fmt.Errorf("unexpected EOF in node entity block %d", i)
		}

		blockHeader := strings.Fields(scanner.Text())
		if len(blockHeader) < 4 {
			return fmt.Errorf("invalid node block header")
		}

		numNodesInBlock, _ := strconv.Atoi(blockHeader[3])

		// Node tags come first, then the coordinates in the same order
		nodeTags := make([]int, numNodesInBlock)
		for j := 0; j < numNodesInBlock; j++ {
			if !scanner.Scan() {
				return fmt.Errorf("unexpected EOF reading node tags")
			}
			nodeTags[j], _ = strconv.Atoi(strings.TrimSpace(scanner.Text()))
		}

		for j := 0; j < numNodesInBlock; j++ {
			if !scanner.Scan() {
				return fmt.Errorf("unexpected EOF reading node coordinates")
			}

			fields := strings.Fields(scanner.Text())
			if len(fields) < 3 {
				return fmt.Errorf("invalid node coordinate line")
			}

			coords := make([]float64, 3)
			for k := 0; k < 3; k++ {
				coords[k], _ = strconv.ParseFloat(fields[k], 64)
			}

			msh.AddNode(nodeTags[j], coords)
		}
	}

	return skipSection(scanner, "$EndNodes")
}

// readElements41 reads elements in v4 format
func readElements41(scanner *bufio.Scanner, msh *mesh.Mesh, physByEntity map[entityKey]int) error {
	if !scanner.Scan() {
		return fmt.Errorf("unexpected EOF in Elements")
	}

	// Format: numEntityBlocks numElements minElementTag maxElementTag
	header := strings.Fields(scanner.Text())
	if len(header) < 4 {
		return fmt.Errorf("invalid Elements header")
	}

	numEntityBlocks, _ := strconv.Atoi(header[0])

	for i := 0; i < numEntityBlocks; i++ {
		// Block header: entityDim entityTag elementType numElements
		if !scanner.Scan() {
			return fmt.Errorf("unexpected EOF in element entity block %d", i)
		}

		blockHeader := strings.Fields(scanner.Text())
		if len(blockHeader) < 4 {
			return fmt.Errorf("invalid element block header")
		}

		entityDim, _ := strconv.Atoi(blockHeader[0])
		entityTag, _ := strconv.Atoi(blockHeader[1])
		gmshType, _ := strconv.Atoi(blockHeader[2])
		numElemsInBlock, _ := strconv.Atoi(blockHeader[3])

		etype, ok := mesh.GmshElementType[gmshType]
		if !ok {
			// Skip unknown element types
			for j := 0; j < numElemsInBlock; j++ {
				scanner.Scan()
			}
			continue
		}

		physicalTag := physByEntity[entityKey{entityDim, entityTag}]
		expectedNodes := etype.GetNumNodes()

		for j := 0; j < numElemsInBlock; j++ {
			if !scanner.Scan() {
				return fmt.Errorf("unexpected EOF reading elements")
			}

			fields := strings.Fields(scanner.Text())
			if len(fields) < 1+expectedNodes {
				return fmt.Errorf("invalid element line: expected at least %d fields, got %d",
					1+expectedNodes, len(fields))
			}

			nodes := make([]int, expectedNodes)
			for k := 0; k < expectedNodes; k++ {
				tag, _ := strconv.Atoi(fields[1+k])
				idx, ok := msh.GetNodeIndex(tag)
				if !ok {
					return fmt.Errorf("element block %d references unknown node %d", i, tag)
				}
				nodes[k] = idx
			}

			msh.AddElement(etype, physicalTag, nodes)
		}
	}

	return skipSection(scanner, "$EndElements")
}
