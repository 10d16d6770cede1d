package main

import (
	"os"

	"github.com/chconnect-dev/chconnect/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
