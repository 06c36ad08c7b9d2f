package main

import (
	"errors"
	"log"
	"os"

	"github.com/HicaroD/brush/cmd/brush/cmd"
	"github.com/HicaroD/brush/internal/config"
	"github.com/HicaroD/brush/internal/diagnostics"
)

// Set with -ldflags "-X main.DevMode=1"
var DevMode string

func main() {
	config.SetDevMode(DevMode == "1")
	if config.DEV {
		log.Println("[DEV MODE] initialized")
	}

	if err := cmd.Execute(); err != nil {
		// diagnostics were already printed by the collector
		if errors.Is(err, diagnostics.COMPILER_ERROR_FOUND) {
			os.Exit(1)
		}
		log.Fatal(err)
	}
}
