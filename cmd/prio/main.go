package main

import (
	"os"

	"prio/internal/interfaces/cli"
	"prio/internal/shared/logger"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
