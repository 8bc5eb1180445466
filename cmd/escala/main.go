package main

import (
	"fmt"
	"os"

	"github.com/pfrederiksen/escala/internal/cli"
	"go.uber.org/automaxprocs/maxprocs"
)

func main() {
	if _, err := maxprocs.Set(); err != nil {
		fmt.Fprintf(os.Stderr, "Error setting GOMAXPROCS: %v\n", err)
	}

	cli.Execute()
}
