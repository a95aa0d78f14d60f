package main

import (
	"os"

	"github.com/rechenquiz/rechenquiz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
