package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/co2atlas/atlas-backend/internal/importer"
)

func main() {
	_ = godotenv.Load(".env.local")

	cfg := importer.LoadFromEnv()

	var (
		dataDir    = flag.String("data", cfg.DataDir, "root of the source data tree")
		dbURL      = flag.String("db", cfg.DatabaseURL, "Postgres DSN (defaults to DATABASE_URL)")
		production = flag.Bool("production", false, "apply the production feature caps")
		wipe       = flag.Bool("wipe", false, "DANGER: truncates all atlas tables before importing")
	)
	flag.Parse()

	if !*wipe {
		log.Println("refusing to run: pass -wipe (this importer truncates the atlas tables)")
		flag.Usage()
		os.Exit(2)
	}

	cfg.DataDir = *dataDir
	cfg.DatabaseURL = *dbURL
	if *production {
		cfg.Caps = importer.ProductionCaps
	}

	if err := importer.Run(cfg); err != nil {
		log.Fatal(err)
	}
}
