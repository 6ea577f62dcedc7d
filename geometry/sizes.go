package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// EdgeSizes returns one target size per ring vertex: the length of the
// longer of the two edges meeting at that vertex. The ring is treated as
// closed, so the first and last vertices see the closing edge as well.
// Used when cell sizes are constrained to the local edge length.
func EdgeSizes(ring [][3]float64) (sizes []float64) {
	n := len(ring)
	if n == 0 {
		return nil
	}
	lengths := make([]float64, n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		d := r3.Sub(vec(ring[j]), vec(ring[i]))
		lengths[i] = r3.Norm(d)
	}
	sizes = make([]float64, n)
	for i := 0; i < n; i++ {
		prev := lengths[(i+n-1)%n]
		sizes[i] = math.Max(prev, lengths[i])
	}
	return
}
