package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// Store
	StoreDriver  string // mongo, postgres or memory
	MongoURI     string
	MongoDB      string
	DatabaseURL  string // postgres DSN, used when StoreDriver is postgres
	StoreTimeout time.Duration

	// HTTP
	AllowOrigins string
	StaticDir    string
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("godotenv.Load() error: %v", err)
	}

	timeout, err := time.ParseDuration(get("STORE_TIMEOUT", "10s"))
	if err != nil {
		log.Printf("invalid STORE_TIMEOUT, using 10s: %v", err)
		timeout = 10 * time.Second
	}

	return &Config{
		Port:         get("PORT", "8081"),
		StoreDriver:  get("STORE_DRIVER", "mongo"),
		MongoURI:     os.Getenv("MONGO_URI"),
		MongoDB:      get("MONGO_DB", "factorymanage"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		StoreTimeout: timeout,
		AllowOrigins: get("ALLOW_ORIGINS", "*"),
		StaticDir:    get("STATIC_DIR", "./public"),
	}
}
