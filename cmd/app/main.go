package main

import (
	"log"

	"github.com/rf-toolkit/linkbudget/config"
	"github.com/rf-toolkit/linkbudget/internal/app"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Config error: %s", err)
	}

	if err = app.Init(cfg); err != nil {
		log.Fatalf("App init error: %s", err)
	}

	app.Run(cfg)
}
