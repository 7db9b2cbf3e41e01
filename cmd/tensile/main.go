package main

import (
	"os"

	"github.com/tensile-lang/tensile-lang/cmd/tensile/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
