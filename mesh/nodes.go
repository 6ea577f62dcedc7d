package mesh

// Node tags in MSH files are arbitrary positive ints. The readers funnel
// them through AddNode so element connectivity can be remapped to dense
// 0-based indices.

// AddNode registers a node by its file tag and returns its index
func (m *Mesh) AddNode(tag int, coords []float64) int {
	if m.nodeIDMap == nil {
		m.nodeIDMap = make(map[int]int)
	}
	if idx, ok := m.nodeIDMap[tag]; ok {
		m.Vertices[idx] = coords
		return idx
	}
	idx := len(m.Vertices)
	m.Vertices = append(m.Vertices, coords)
	m.nodeIDMap[tag] = idx
	m.NumVertices = len(m.Vertices)
	return idx
}

// GetNodeIndex returns the dense index for a file node tag
func (m *Mesh) GetNodeIndex(tag int) (int, bool) {
	idx, ok := m.nodeIDMap[tag]
	return idx, ok
}
