package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	DBDSN        string
	DataDir      string
	Files        map[string]string // table -> CSV file name inside DataDir
	TemplatesDir string
	LogFile      string
}

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load reads .env when present, then the environment.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[warn] could not read .env: %v", err)
	}

	cfg := Config{
		Port:    env("PORT", "8081"),
		DBDSN:   env("DB_DSN", "foodwaste.db"), // sqlite file in project root
		DataDir: env("DATA_DIR", "./data"),
		Files: map[string]string{
			"providers":     env("PROVIDERS_CSV", "providers_data.csv"),
			"receivers":     env("RECEIVERS_CSV", "receivers_data.csv"),
			"food_listings": env("LISTINGS_CSV", "food_listings_data.csv"),
			"claims":        env("CLAIMS_CSV", "claims_data.csv"),
		},
		TemplatesDir: env("TEMPLATES_DIR", "./web/templates"),
		LogFile:      env("LOG_FILE", "./foodwaste.log"),
	}
	log.Printf("[config] PORT=%s DB_DSN=%s DATA_DIR=%s TEMPLATES_DIR=%s LOG_FILE=%s",
		cfg.Port, cfg.DBDSN, cfg.DataDir, cfg.TemplatesDir, cfg.LogFile)
	return cfg
}
