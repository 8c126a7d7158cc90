package main

import (
	"os"

	"github.com/frontforge/frontforge/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
