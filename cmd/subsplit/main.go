package main

import (
	"os"

	"github.com/subsplit/subsplit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
