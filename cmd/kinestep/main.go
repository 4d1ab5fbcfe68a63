package main

import "github.com/andrescamacho/kinestep/internal/adapters/cli"

func main() {
	cli.Execute()
}
