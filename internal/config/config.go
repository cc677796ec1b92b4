package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Gemini      GeminiConfig
	DID         DIDConfig
	Transcriber TranscriberConfig
	Storage     StorageConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type GeminiConfig struct {
	APIKey string
}

// DIDConfig holds the D-ID talks API settings. APIKey is the
// "email:password" pair D-ID expects inside the Basic auth header.
type DIDConfig struct {
	APIKey         string
	BaseURL        string
	PresenterImage string
	VoiceID        string
	PollInterval   time.Duration
	PollTimeout    time.Duration
}

type TranscriberConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

type StorageConfig struct {
	UploadPath  string
	MaxFileSize int64
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "mock_interview"),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
		},
		DID: DIDConfig{
			APIKey:         getEnv("DID_API_KEY", ""),
			BaseURL:        getEnv("DID_BASE_URL", "https://api.d-id.com"),
			PresenterImage: getEnv("DID_PRESENTER_IMAGE", "https://clips-presenters.d-id.com/v2/anita/Os4oKCBIgZ/yTLykkbYHr/image.png"),
			VoiceID:        getEnv("DID_VOICE_ID", "en-IN-AartiNeural"),
			PollInterval:   getEnvAsDuration("DID_POLL_INTERVAL", "2s"),
			PollTimeout:    getEnvAsDuration("DID_POLL_TIMEOUT", "180s"),
		},
		Transcriber: TranscriberConfig{
			APIKey:  getEnv("TRANSCRIBER_API_KEY", ""),
			BaseURL: getEnv("TRANSCRIBER_BASE_URL", "https://api.openai.com/v1"),
			Model:   getEnv("TRANSCRIBER_MODEL", "whisper-1"),
		},
		Storage: StorageConfig{
			UploadPath:  getEnv("UPLOAD_PATH", "./uploads"),
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
	}
}

func (c *Config) GetDatabaseDSN() string {
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

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
