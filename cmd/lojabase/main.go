package main

import (
	"io"
	"log"
	"os"

	"lojabase/internal/config"
	"lojabase/internal/http/handlers"
	applog "lojabase/internal/log"
	"lojabase/internal/repos"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			defer f.Close()
			log.SetOutput(io.MultiWriter(os.Stdout, f))
		}
	}

	db, err := repos.OpenDB(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	deps, err := handlers.NewDeps(db, cfg)
	if err != nil {
		log.Fatal(err)
	}
	app := handlers.NewApp(deps, cfg.CORSOrigins)

	applog.Info(nil, "server.start", map[string]any{"addr": "http://localhost:" + cfg.Port})
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
