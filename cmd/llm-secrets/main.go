package main

import (
	"os"

	"github.com/MushroomFleet/LLM-Secrets-prototype/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
