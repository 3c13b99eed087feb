package main

import "github.com/LeJamon/ordmap/internal/cli"

func main() {
	cli.Execute()
}
