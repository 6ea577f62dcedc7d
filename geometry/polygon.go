package geometry

// Polygon is a planar boundary with an exterior shell and zero or more
// interior rings (holes). Rings are stored open: the closing edge from the
// last point back to the first is implied. NewPolygon drops a duplicated
// closing point so that closed input rings are also accepted.
type Polygon struct {
	Shell [][3]float64
	Holes [][][3]float64
}

func NewPolygon(shell [][3]float64, holes ...[][3]float64) *Polygon {
	p := &Polygon{Shell: openRing(shell)}
	for _, h := range holes {
		p.Holes = append(p.Holes, openRing(h))
	}
	return p
}

func openRing(ring [][3]float64) [][3]float64 {
	n := len(ring)
	if n > 1 && ring[0] == ring[n-1] {
		return ring[:n-1]
	}
	return ring
}

// Rings returns the shell followed by the holes, the iteration order the
// mesher uses when it assigns one curve loop per ring.
func (p *Polygon) Rings() [][][3]float64 {
	rings := make([][][3]float64, 0, len(p.Holes)+1)
	rings = append(rings, p.Shell)
	rings = append(rings, p.Holes...)
	return rings
}

func (p *Polygon) NumberOfPoints() (n int) {
	for _, ring := range p.Rings() {
		n += len(ring)
	}
	return
}

// Area is the shell area minus the hole areas.
func (p *Polygon) Area() float64 {
	area := ringArea(p.Shell)
	for _, h := range p.Holes {
		area -= ringArea(h)
	}
	return area
}

func (p *Polygon) Bounds() [6]float64 {
	return bounds(p.Shell)
}
