package main

import (
	"os"

	"github.com/senja-dev/senja/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
