package main

import (
	"os"

	"revenue-lab/internal/cli"
)

func main() {
	command := cli.NewRevlabCommand()
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}
