package main

import (
	"log"

	"lumera-client/internal/bootstrap"
	"lumera-client/internal/config"
	"lumera-client/internal/server"

	"github.com/fatih/color"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(cfg)
	defer container.Logger.Sync()

	color.Magenta("Lumera — skin analysis client")
	color.Cyan("UI:  http://localhost:%s", cfg.App.Port)
	color.Cyan("API: %s", cfg.API.BaseURL)

	// 3. Run the local web client
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
