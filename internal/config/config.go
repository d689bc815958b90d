package config

import (
	"log"
	"os"
	"strconv"

	"panel-review-be/internal/constant"
	"panel-review-be/pkg/scoring"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	SMTP     SMTPConfig
	Scoring  ScoringConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	JWTSecret          string
}

type DatabaseConfig struct {
	Connection string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

// ScoringConfig is the grading policy: stage weights for the final total and
// which rank-correlation method scores the voting stage.
type ScoringConfig struct {
	QuestionWeight float64
	TagWeight      float64
	VoteWeight     float64
	VoteMethod     string // "spearman" or "kendall"
	MetricCacheTTL int    // seconds
}

func (s ScoringConfig) Weights() scoring.Weights {
	return scoring.Weights{Question: s.QuestionWeight, Tag: s.TagWeight, Vote: s.VoteWeight}
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	defaults := scoring.DefaultWeights()

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log.csv"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			JWTSecret:          getEnv("JWT_SECRET", ""),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "PanelReview"),
		},
		Scoring: ScoringConfig{
			QuestionWeight: getEnvAsFloat("SCORE_QUESTION_WEIGHT", defaults.Question),
			TagWeight:      getEnvAsFloat("SCORE_TAG_WEIGHT", defaults.Tag),
			VoteWeight:     getEnvAsFloat("SCORE_VOTE_WEIGHT", defaults.Vote),
			VoteMethod:     getEnv("SCORE_VOTE_METHOD", constant.VoteScoreSpearman),
			MetricCacheTTL: getEnvAsInt("METRIC_CACHE_TTL_SECONDS", 300),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
