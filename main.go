package main

import "github.com/colbench/colbench/cmd"

func main() {
	cmd.Execute()
}
