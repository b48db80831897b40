package main

import (
	"github.com/haytac/emoji-strip/internal/cli"
	"github.com/haytac/emoji-strip/internal/logging"
)

func main() {
	// Basic logger for anything that happens before PersistentPreRunE
	// configures it from the loaded RunConfig.
	logging.Setup(logging.Config{Level: "info", TimeFormat: "15:04:05"})

	cli.Execute()
}
