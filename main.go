package main

import "github.com/mattbfit/docforge/cmd"

func main() {
	cmd.Execute()
}
