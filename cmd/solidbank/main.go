package main

import (
	"os"

	"github.com/dji357a-gif/BANK1/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
