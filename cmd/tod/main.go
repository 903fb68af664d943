package main

import (
	"flag"
	"fmt"
	"os"

	"tod/internal/di"
	"tod/internal/structures"
)

func main() {
	flags := &structures.CliFlags{}
	flag.StringVar(&flags.ConfigPath, "config", "config.yaml", "path to the YAML config file")
	flag.BoolVar(&flags.DebugMode, "debug", false, "force debug log level")
	flag.Parse()

	if _, err := di.InitApp(flags); err != nil {
		fmt.Fprintf(os.Stderr, "tod: %s\n", err)
		os.Exit(1)
	}
}
