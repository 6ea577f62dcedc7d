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
	"os"
	"time"

	"github.com/notargets/avs/geometry"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/meshtools/gmshkit/InputParameters"
	"github.com/meshtools/gmshkit/kernel"
	"github.com/meshtools/gmshkit/mesh"
	"github.com/meshtools/gmshkit/mesh/writers"
	"github.com/meshtools/gmshkit/mesher"
	"github.com/meshtools/gmshkit/render"
	"github.com/meshtools/gmshkit/triangulate"
	gk "github.com/meshtools/gmshkit/geometry"
)

type Model2D struct {
	InputFile     string
	OutputFile    string
	GraphMeshFile string
	Graph         bool
	Delay         time.Duration
}

// TwoDCmd represents the 2D command
var TwoDCmd = &cobra.Command{
	Use:   "2D",
	Short: "Two dimensional mesher, able to read boundary files and output meshes",
	Long:  `Two dimensional mesher, able to read boundary files and output meshes`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		fmt.Println("2D called")
		m2d := &Model2D{}
		if m2d.InputFile, err = cmd.Flags().GetString("inputFile"); err != nil {
			panic(err)
		}
		m2d.OutputFile, _ = cmd.Flags().GetString("outputFile")
		m2d.GraphMeshFile, _ = cmd.Flags().GetString("graphMeshFile")
		m2d.Graph, _ = cmd.Flags().GetBool("graph")
		dr, _ := cmd.Flags().GetInt("delay")
		m2d.Delay = time.Duration(dr) * time.Millisecond
		mp := processInput2D(m2d)
		Run2D(m2d, mp)
	},
}

func processInput2D(m2d *Model2D) (mp *InputParameters.MeshParameters) {
	var (
		err error
	)
	if len(m2d.InputFile) == 0 {
		err = fmt.Errorf("must supply a boundary file (-I, --inputFile) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Unit Square"
Dimension: 2
Shell:
  - [0, 0, 0]
  - [1, 0, 0]
  - [1, 1, 0]
  - [0, 1, 0]
CellSize: [0.1]
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	var data []byte
	if data, err = ioutil.ReadFile(m2d.InputFile); err != nil {
		panic(err)
	}
	mp = &InputParameters.MeshParameters{}
	if err = mp.Parse(data); err != nil {
		panic(err)
	}
	mp.Print()
	return
}

func init() {
	rootCmd.AddCommand(TwoDCmd)
	TwoDCmd.Flags().StringP("inputFile", "I", "", "YAML file describing the boundary:\n\t- Shell\n\t- Holes\n\t- CellSize")
	TwoDCmd.Flags().StringP("outputFile", "o", "", "mesh output file in Gmsh MSH 2.2 format")
	TwoDCmd.Flags().StringP("graphMeshFile", "m", "", "binary graph mesh output file for rendering")
	TwoDCmd.Flags().BoolP("graph", "g", false, "display the mesh after generation")
	TwoDCmd.Flags().IntP("delay", "d", 10000, "milliseconds to keep the graph window up")
}

func Run2D(m2d *Model2D, mp *InputParameters.MeshParameters) {
	binary := gmshBinary(mp)
	var (
		msh *mesh.Mesh
		err error
	)
	if kernel.Available(binary) {
		var d *mesher.Mesher2D
		d, err = mesher.NewMesher2D(mesher.Mesher2DConfig{
			Shell:             mp.Shell,
			Holes:             mp.Holes,
			CellSize:          mp.CellSize,
			ConstrainEdgeSize: mp.ConstrainEdgeSize,
			Recombine:         mp.Recombine,
			Binary:            binary,
		})
		if err == nil {
			msh, err = d.Mesh()
		}
	} else {
		fmt.Printf("kernel %s not found, falling back to constrained Delaunay\n", binary)
		msh, err = triangulate.ConstrainedDelaunay(gk.NewPolygon(mp.Shell, mp.Holes...))
	}
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}

	msh.PrintStatistics()
	finishRun(msh, m2d.OutputFile, m2d.GraphMeshFile, m2d.Graph, m2d.Delay)
}

func gmshBinary(mp *InputParameters.MeshParameters) string {
	if mp.GmshBinary != "" {
		return mp.GmshBinary
	}
	if b := viper.GetString("gmsh.binary"); b != "" {
		return b
	}
	return kernel.DefaultBinary
}

func finishRun(msh *mesh.Mesh, outputFile, graphMeshFile string, graph bool, delay time.Duration) {
	var (
		err error
	)
	if len(outputFile) != 0 {
		if err = writers.WriteGmsh22(msh, outputFile); err != nil {
			panic(err)
		}
		fmt.Printf("wrote %s\n", outputFile)
	}
	if len(graphMeshFile) != 0 {
		if err = saveGraphMesh(msh, graphMeshFile); err != nil {
			panic(err)
		}
		fmt.Printf("wrote %s\n", graphMeshFile)
	}
	if graph {
		if _, err = render.PlotMesh(msh); err != nil {
			panic(err)
		}
		time.Sleep(delay)
	}
}

func saveGraphMesh(msh *mesh.Mesh, fileName string) (err error) {
	gm := render.GraphMesh{}
	if gm.TriMesh, err = render.ToTriMesh(msh); err != nil {
		return
	}
	xySurf := render.BoundaryEdges(msh)
	group := geometry.NewEdgeGroup("boundary", len(xySurf)/4)
	for i := range group.EdgeXYs {
		group.EdgeXYs[i] = [4]float32{
			xySurf[4*i], xySurf[4*i+1], xySurf[4*i+2], xySurf[4*i+3]}
	}
	gm.BCEdges = []*geometry.EdgeGroup{group}
	return render.SaveGraphMesh(gm, fileName)
}
