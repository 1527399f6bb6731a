package main

import (
	"log/slog"
	"os"

	"lesiw.io/pathuri/internal/cli"
)

func main() {
	if err := cli.NewRootCmd("pathuri").Execute(); err != nil {
		slog.Error("pathuri failed", "err", err)
		os.Exit(1)
	}
}
