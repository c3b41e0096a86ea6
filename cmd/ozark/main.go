package main

import (
	"os"

	"github.com/varunriyer/ozark-app/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
