package main

import (
	"flag"
	"log"
	"os"

	"github.com/compasshq/compass/internal/app"
	"github.com/compasshq/compass/internal/config"
)

func main() {
	configPath := flag.String("config", os.Getenv("COMPASS_CONFIG"), "path to the config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("compass failed to load config: %v", err)
	}

	a, err := app.New(cfg)
	if err != nil {
		log.Fatalf("compass failed to start: %v", err)
	}
	if err := a.Run(); err != nil {
		log.Fatalf("compass exited: %v", err)
	}
}
