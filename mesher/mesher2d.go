package mesher

import (
	"fmt"

	"github.com/meshtools/gmshkit/geometry"
	"github.com/meshtools/gmshkit/mesh"
)

// Mesher2DConfig configures a planar Delaunay mesher. Exactly one of
// EdgeSource or Shell must be set; Holes only applies with Shell.
type Mesher2DConfig struct {
	EdgeSource EdgeSource
	Shell      [][3]float64
	Holes      [][][3]float64

	// CellSize is the per-ring (Polygon sources) or per-point (PolyData
	// sources) target size, nil for no refinement.
	CellSize []float64

	// ConstrainEdgeSize derives per-vertex sizes from the boundary edge
	// lengths instead of CellSize, so short boundary edges produce a
	// finer local mesh.
	ConstrainEdgeSize bool

	// Recombine merges triangles into quadrangles.
	Recombine bool

	// Binary overrides the kernel executable.
	Binary string
}

// Mesher2D holds an edge source and sizing state and regenerates its
// planar mesh on demand.
type Mesher2D struct {
	edgeSource EdgeSource
	cellSize   []float64
	ringSizes  [][]float64
	recombine  bool
	binary     string
}

// NewMesher2D builds a mesher from the config. A Shell (with optional
// Holes) is wrapped into a Polygon edge source.
func NewMesher2D(cfg Mesher2DConfig) (*Mesher2D, error) {
	src := cfg.EdgeSource
	switch {
	case src != nil && cfg.Shell != nil:
		return nil, fmt.Errorf("edge source and shell are mutually exclusive")
	case src == nil && cfg.Shell == nil:
		return nil, fmt.Errorf("either an edge source or a shell is required")
	case cfg.Shell != nil:
		src = geometry.NewPolygon(cfg.Shell, cfg.Holes...)
	}

	d := &Mesher2D{
		edgeSource: src,
		cellSize:   cfg.CellSize,
		recombine:  cfg.Recombine,
		binary:     cfg.Binary,
	}
	if cfg.ConstrainEdgeSize {
		if err := d.constrainEdgeSize(); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// EdgeSource returns the boundary description being meshed.
func (d *Mesher2D) EdgeSource() EdgeSource { return d.edgeSource }

// CellSize returns the current target sizes.
func (d *Mesher2D) CellSize() []float64 { return d.cellSize }

// SetCellSize replaces the target sizes; the next Mesh call uses them.
func (d *Mesher2D) SetCellSize(sizes []float64) {
	d.cellSize = sizes
	d.ringSizes = nil
}

// Mesh runs the kernel and returns the triangulated (or recombined)
// surface mesh.
func (d *Mesher2D) Mesh() (*mesh.Mesh, error) {
	return FrontalDelaunay2D(d.edgeSource, &Options{
		TargetSizes: d.cellSize,
		RingSizes:   d.ringSizes,
		Recombine:   d.recombine,
		Binary:      d.binary,
	})
}

// constrainEdgeSize fills the sizing state from boundary edge lengths:
// each vertex gets the longer of its two incident edges.
func (d *Mesher2D) constrainEdgeSize() error {
	switch src := d.edgeSource.(type) {
	case *geometry.Polygon:
		rings := src.Rings()
		d.ringSizes = make([][]float64, len(rings))
		for i, ring := range rings {
			d.ringSizes[i] = geometry.EdgeSizes(ring)
		}
	case *geometry.PolyData:
		loop, err := src.FirstLoop()
		if err != nil {
			return err
		}
		ring := make([][3]float64, 0, len(loop)-1)
		for _, idx := range loop[:len(loop)-1] {
			ring = append(ring, src.Points[idx])
		}
		sizes := geometry.EdgeSizes(ring)
		d.cellSize = make([]float64, src.NumberOfPoints())
		for i, idx := range loop[:len(loop)-1] {
			d.cellSize[idx] = sizes[i]
		}
	default:
		return fmt.Errorf("unsupported edge source %T", d.edgeSource)
	}
	return nil
}
