package main

import (
	"os"

	"forkful/cmd/forkful/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
