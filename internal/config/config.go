package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// ErrMissingSecret is returned by Load when JWT_SECRET is not set.
var ErrMissingSecret = errors.New("config: JWT_SECRET is required")

type Config struct {
	Port        string
	DBDriver    string // sqlite | postgres
	DBDSN       string
	JWTSecret   string
	BcryptCost  int
	LogFile     string
	CORSOrigins string
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("[warn] could not read .env: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	driver := strings.ToLower(os.Getenv("DB_DRIVER"))
	if driver == "" {
		driver = "sqlite"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "lojabase.db"
	} // sqlite file in project root
	cost := 10
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, errors.New("config: BCRYPT_COST must be an integer")
		}
		cost = n
	}
	origins := os.Getenv("CORS_ORIGINS")
	if origins == "" {
		origins = "*"
	}

	cfg := Config{
		Port:        port,
		DBDriver:    driver,
		DBDSN:       dsn,
		JWTSecret:   os.Getenv("JWT_SECRET"),
		BcryptCost:  cost,
		LogFile:     os.Getenv("LOG_FILE"),
		CORSOrigins: origins,
	}
	if cfg.JWTSecret == "" {
		return Config{}, ErrMissingSecret
	}
	shownDSN := cfg.DBDSN
	if cfg.DBDriver != "sqlite" {
		shownDSN = "(redacted)" // may carry credentials
	}
	log.Printf("[config] PORT=%s DB_DRIVER=%s DB_DSN=%s BCRYPT_COST=%d LOG_FILE=%s CORS_ORIGINS=%s",
		cfg.Port, cfg.DBDriver, shownDSN, cfg.BcryptCost, cfg.LogFile, cfg.CORSOrigins)
	return cfg, nil
}
