package main

import "github.com/meshtools/gmshkit/cmd"

func main() {
	cmd.Execute()
}
