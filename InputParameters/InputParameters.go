package InputParameters

import (
	"fmt"
	"time"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type MeshParameters struct {
	Title             string         `yaml:"Title"`
	Dimension         int            `yaml:"Dimension"`
	Shell             [][3]float64   `yaml:"Shell"`  // Outer boundary ring, 2D
	Holes             [][][3]float64 `yaml:"Holes"`  // Inner boundary rings, 2D
	Points            [][3]float64   `yaml:"Points"` // Surface vertices, 3D
	Faces             [][]int        `yaml:"Faces"`  // Surface facets, 3D
	CellSize          []float64      `yaml:"CellSize"`
	ConstrainEdgeSize bool           `yaml:"ConstrainEdgeSize"`
	Recombine         bool           `yaml:"Recombine"`
	GmshBinary        string         `yaml:"GmshBinary"`
}

func (mp *MeshParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, mp)
}

func (mp *MeshParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", mp.Title)
	fmt.Printf("[%d]\t\t\t\t= Dimension\n", mp.Dimension)
	fmt.Printf("%v\t\t= CellSize\n", mp.CellSize)
	fmt.Printf("[%t]\t\t\t= ConstrainEdgeSize\n", mp.ConstrainEdgeSize)
	fmt.Printf("[%t]\t\t\t= Recombine\n", mp.Recombine)
	switch mp.Dimension {
	case 3:
		fmt.Printf("Points = %d, Faces = %d\n", len(mp.Points), len(mp.Faces))
	default:
		fmt.Printf("Shell points = %d, Holes = %d\n", len(mp.Shell), len(mp.Holes))
	}
}

// PlotMeta holds the plotting parameters for a command run.
type PlotMeta struct {
	Plot      bool
	FrameTime time.Duration
}
