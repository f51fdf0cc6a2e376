package main

import (
	"os"

	"github.com/bryancraven/rock-photo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
