package db

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect() (*gorm.DB, error) {
	// Load environment variables from .env file, if present
	_ = godotenv.Load()

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = dsnFromParts()
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Error().Err(err).Msg("error connecting to the database")
		return nil, err
	}

	log.Info().Msg("ChronoCert DB connected successfully")

	return db, nil
}

func dsnFromParts() string {
	get := func(key, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fallback
	}

	host := get("DB_HOST", "localhost")
	port := get("DB_PORT", "5432")
	user := get("DB_USER", "postgres")
	pass := get("DB_PASSWORD", "postgres")
	name := get("DB_NAME", "chronocert")
	ssl := get("DB_SSLMODE", "disable")

	return "host=" + host + " user=" + user + " password=" + pass +
		" dbname=" + name + " port=" + port + " sslmode=" + ssl
}
