package main

import (
	"os"

	"github.com/mkale/skillforge/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
