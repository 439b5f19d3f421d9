package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Mail     MailConfig
	Ingest   IngestConfig
	Storage  StorageConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	Driver   string // "sqlite" or "postgres"
	Path     string // sqlite database file
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type MailConfig struct {
	Host           string
	Port           int
	SenderEmail    string
	SenderPassword string
	CompanyName    string
}

type IngestConfig struct {
	ResumeFolder  string
	JobCSV        string
	MinMatchScore float64
}

type StorageConfig struct {
	MaxFileSize int64
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, using environment and defaults")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			Driver:   getEnv("DB_DRIVER", "sqlite"),
			Path:     getEnv("DB_PATH", "candidates.db"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "job_select"),
		},
		Mail: MailConfig{
			Host:           getEnv("SMTP_HOST", "smtp.gmail.com"),
			Port:           getEnvAsInt("SMTP_PORT", 587),
			SenderEmail:    getEnv("SENDER_EMAIL", ""),
			SenderPassword: getEnv("SENDER_PASSWORD", ""),
			CompanyName:    getEnv("COMPANY_NAME", "Our Company"),
		},
		Ingest: IngestConfig{
			ResumeFolder:  getEnv("RESUME_FOLDER", "./resumes"),
			JobCSV:        getEnv("JOB_CSV", ""),
			MinMatchScore: getEnvAsFloat("MIN_MATCH_SCORE", 40),
		},
		Storage: StorageConfig{
			MaxFileSize: getEnvAsInt64("UPLOAD_MAX_SIZE", 10485760),
		},
	}
}

func (c *Config) GetDatabaseDSN() string {
	if c.Database.Driver == "sqlite" {
		// Cascading deletes need foreign-key enforcement turned on.
		return fmt.Sprintf("%s?_pragma=foreign_keys(1)", c.Database.Path)
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}
