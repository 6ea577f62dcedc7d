/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/meshtools/gmshkit/InputParameters"
	"github.com/meshtools/gmshkit/geometry"
	"github.com/meshtools/gmshkit/mesh/writers"
	"github.com/meshtools/gmshkit/mesher"
)

type Model3D struct {
	InputFile  string
	OutputFile string
	Shape      string
	Resolution int
	CellSize   float64
}

// ThreeDCmd represents the 3D command
var ThreeDCmd = &cobra.Command{
	Use:   "3D",
	Short: "Three dimensional mesher, able to read surface files and output tetrahedral meshes",
	Long:  `Three dimensional mesher, able to read surface files and output tetrahedral meshes`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("3D called")
		m3d := &Model3D{}
		m3d.InputFile, _ = cmd.Flags().GetString("inputFile")
		m3d.OutputFile, _ = cmd.Flags().GetString("outputFile")
		m3d.Shape, _ = cmd.Flags().GetString("shape")
		m3d.Resolution, _ = cmd.Flags().GetInt("resolution")
		m3d.CellSize, _ = cmd.Flags().GetFloat64("cellSize")
		Run3D(m3d)
	},
}

func init() {
	rootCmd.AddCommand(ThreeDCmd)
	ThreeDCmd.Flags().StringP("inputFile", "I", "", "YAML file describing the bounding surface:\n\t- Points\n\t- Faces\n\t- CellSize")
	ThreeDCmd.Flags().StringP("outputFile", "o", "", "mesh output file in Gmsh MSH 2.2 format")
	ThreeDCmd.Flags().StringP("shape", "s", "", "built-in bounding shape: cube or cylinder")
	ThreeDCmd.Flags().IntP("resolution", "r", 30, "circumferential resolution for the cylinder shape")
	ThreeDCmd.Flags().Float64P("cellSize", "c", 0, "uniform target cell size, 0 for no refinement")
	ThreeDCmd.Flags().MarkHidden("resolution")
}

func Run3D(m3d *Model3D) {
	mp := processInput3D(m3d)

	edgeSource := &geometry.PolyData{Points: mp.Points, Faces: mp.Faces}
	d, err := mesher.NewMesher3D(mesher.Mesher3DConfig{
		EdgeSource: edgeSource,
		CellSize:   mp.CellSize,
		Binary:     gmshBinary(mp),
	})
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	msh, err := d.Mesh()
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}

	msh.PrintStatistics()
	fmt.Printf("boundary volume = %8.5f, mesh volume = %8.5f\n",
		edgeSource.Volume(), msh.Volume())
	if len(m3d.OutputFile) != 0 {
		if err = writers.WriteGmsh22(msh, m3d.OutputFile); err != nil {
			panic(err)
		}
		fmt.Printf("wrote %s\n", m3d.OutputFile)
	}
}

func processInput3D(m3d *Model3D) (mp *InputParameters.MeshParameters) {
	mp = &InputParameters.MeshParameters{}
	switch m3d.Shape {
	case "cube":
		pd := geometry.Cube()
		mp.Points, mp.Faces = pd.Points, pd.Faces
	case "cylinder":
		pd := geometry.Cylinder(0.5, 1, m3d.Resolution)
		mp.Points, mp.Faces = pd.Points, pd.Faces
	case "":
		if len(m3d.InputFile) == 0 {
			fmt.Println("error: must supply a surface file (-I) or a shape (-s)")
			os.Exit(1)
		}
		data, err := ioutil.ReadFile(m3d.InputFile)
		if err != nil {
			panic(err)
		}
		if err = mp.Parse(data); err != nil {
			panic(err)
		}
		mp.Print()
	default:
		fmt.Printf("error: unknown shape %q\n", m3d.Shape)
		os.Exit(1)
	}
	if m3d.CellSize > math.SmallestNonzeroFloat64 {
		mp.CellSize = mesher.Uniform(m3d.CellSize)
	}
	return
}
