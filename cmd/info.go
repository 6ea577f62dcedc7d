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
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/meshtools/gmshkit/mesh/readers"
	"github.com/meshtools/gmshkit/triangulate"
)

// InfoCmd represents the info command
var InfoCmd = &cobra.Command{
	Use:   "info [mesh file]",
	Short: "Print statistics for a Gmsh mesh file",
	Long:  `Print statistics for a Gmsh mesh file, MSH 2.2 and 4.1 formats are supported`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		graph, _ := cmd.Flags().GetBool("graph")
		dr, _ := cmd.Flags().GetInt("delay")
		quality, _ := cmd.Flags().GetBool("quality")

		msh, err := readers.ReadGmshAuto(args[0])
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		msh.PrintStatistics()
		fmt.Printf("mesh volume = %8.5f\n", msh.Volume())
		if quality {
			fmt.Printf("interior edges violating the Delaunay property: %d\n",
				triangulate.CountIllegalEdges(msh))
		}
		finishRun(msh, "", "", graph, time.Duration(dr)*time.Millisecond)
	},
}

func init() {
	rootCmd.AddCommand(InfoCmd)
	InfoCmd.Flags().BoolP("graph", "g", false, "display the mesh")
	InfoCmd.Flags().IntP("delay", "d", 10000, "milliseconds to keep the graph window up")
	InfoCmd.Flags().BoolP("quality", "q", false, "check the Delaunay property of interior edges")
}
