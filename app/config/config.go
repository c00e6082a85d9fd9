package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type Config struct {
	DB               *sql.DB
	JWTSecret        string
	UploadDirFinance string
	UploadDirPapers  string
	UploadDirChat    string
}

var AppConfig *Config

const defaultJWTSecret = "tatwadarsha-erp-secret"

// JWTSecret is the single source for the token signing key. Every package
// that signs or verifies tokens goes through here so they can never disagree
// on the fallback.
func JWTSecret() string {
	if AppConfig != nil && AppConfig.JWTSecret != "" {
		return AppConfig.JWTSecret
	}
	return getenv("JWT_SECRET", defaultJWTSecret)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB loads .env, opens the PostgreSQL pool and prepares upload folders.
// The pool lives here for the process lifetime; handlers receive it via
// GetDB and never open connections of their own.
func InitDB() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	psqlInfo := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getenv("DB_HOST", "localhost"),
		getenv("DB_PORT", "5432"),
		getenv("DB_USER", "postgres"),
		getenv("DB_PASSWORD", ""),
		getenv("DB_NAME", "tatwadarsha_erp"),
		getenv("DB_SSLMODE", "disable"),
	)

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	// Bounded pool shared across requests
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if err = db.Ping(); err != nil {
		log.Fatal("Cannot establish database connection: ", err)
	}

	cfg := &Config{
		DB:               db,
		JWTSecret:        getenv("JWT_SECRET", defaultJWTSecret),
		UploadDirFinance: getenv("UPLOAD_DIR_FINANCE", "./static/uploads/finance"),
		UploadDirPapers:  getenv("UPLOAD_DIR_PAPERS", "./static/exam_papers"),
		UploadDirChat:    getenv("UPLOAD_DIR_CHAT", "./static/chat_uploads"),
	}

	for _, dir := range []string{cfg.UploadDirFinance, cfg.UploadDirPapers, cfg.UploadDirChat} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("Failed to create upload dir %s: %v", dir, err)
		}
	}

	AppConfig = cfg
	log.Println("Database connected successfully")
}

func GetDB() *sql.DB {
	return AppConfig.DB
}
