package main

import (
	"os"

	"shakecalc/cmd/shakecalc/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
