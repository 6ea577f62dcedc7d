package mesher

import (
	"fmt"

	"github.com/meshtools/gmshkit/geometry"
	"github.com/meshtools/gmshkit/mesh"
)

// Mesher3DConfig configures a tetrahedral Delaunay mesher.
type Mesher3DConfig struct {
	// EdgeSource is the closed polyhedral surface bounding the volume.
	EdgeSource *geometry.PolyData

	// CellSize is the per-point target size, nil for no refinement.
	CellSize []float64

	// Binary overrides the kernel executable.
	Binary string
}

// Mesher3D holds a polyhedral surface and sizing state and
// regenerates its tetrahedral mesh on demand.
type Mesher3D struct {
	edgeSource *geometry.PolyData
	cellSize   []float64
	binary     string
}

func NewMesher3D(cfg Mesher3DConfig) (*Mesher3D, error) {
	if cfg.EdgeSource == nil {
		return nil, fmt.Errorf("an edge source is required")
	}
	return &Mesher3D{
		edgeSource: cfg.EdgeSource,
		cellSize:   cfg.CellSize,
		binary:     cfg.Binary,
	}, nil
}

// EdgeSource returns the bounding surface being meshed.
func (d *Mesher3D) EdgeSource() *geometry.PolyData { return d.edgeSource }

// CellSize returns the current target sizes.
func (d *Mesher3D) CellSize() []float64 { return d.cellSize }

// SetCellSize replaces the target sizes; the next Mesh call uses them.
func (d *Mesher3D) SetCellSize(sizes []float64) { d.cellSize = sizes }

// Mesh runs the kernel and returns the tetrahedral volume mesh.
func (d *Mesher3D) Mesh() (*mesh.Mesh, error) {
	return Delaunay3D(d.edgeSource, &Options{
		TargetSizes: d.cellSize,
		Binary:      d.binary,
	})
}
