package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Alerts    AlertsConfig
	FoodFacts FoodFactsConfig
	MealDB    MealDBConfig
	OpenAI    OpenAIConfig
	Telegram  TelegramConfig
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
	Database string
	Schema   string
}

// RedisConfig configures the rate limiter backend. Rate limiting is disabled
// when Host is empty.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type AlertsConfig struct {
	SoonWindowDays    int // horizon for the "expiring soon" display bucket
	NotifyWindowDays  int // horizon used by the background notification check
	LowStockThreshold int
	CheckInterval     time.Duration
}

type FoodFactsConfig struct {
	BaseURL string
}

type MealDBConfig struct {
	BaseURL string
}

// OpenAIConfig configures the nutrition-label summarizer. Summarization is
// disabled when APIKey is empty.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// TelegramConfig configures alert notification delivery. Notifications fall
// back to the log when BotToken is empty.
type TelegramConfig struct {
	BotToken string
	ChatID   int64
}

func Load() *Config {
	// Load a .env file into the process environment first so AutomaticEnv
	// sees it; missing files are fine.
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_ENV", "development")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SCHEMA", "public")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("ALERT_SOON_WINDOW_DAYS", 7)
	viper.SetDefault("ALERT_NOTIFY_WINDOW_DAYS", 3)
	viper.SetDefault("ALERT_LOW_STOCK_THRESHOLD", 2)
	viper.SetDefault("ALERT_CHECK_INTERVAL", "12h")
	viper.SetDefault("FOODFACTS_BASE_URL", "https://world.openfoodfacts.org")
	viper.SetDefault("MEALDB_BASE_URL", "https://www.themealdb.com/api/json/v1/1")
	viper.SetDefault("OPENAI_API_BASE", "https://api.openai.com/v1")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o-mini")

	return &Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
			Env:  viper.GetString("SERVER_ENV"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Database: viper.GetString("DB_DATABASE"),
			Schema:   viper.GetString("DB_SCHEMA"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Alerts: AlertsConfig{
			SoonWindowDays:    viper.GetInt("ALERT_SOON_WINDOW_DAYS"),
			NotifyWindowDays:  viper.GetInt("ALERT_NOTIFY_WINDOW_DAYS"),
			LowStockThreshold: viper.GetInt("ALERT_LOW_STOCK_THRESHOLD"),
			CheckInterval:     viper.GetDuration("ALERT_CHECK_INTERVAL"),
		},
		FoodFacts: FoodFactsConfig{
			BaseURL: viper.GetString("FOODFACTS_BASE_URL"),
		},
		MealDB: MealDBConfig{
			BaseURL: viper.GetString("MEALDB_BASE_URL"),
		},
		OpenAI: OpenAIConfig{
			APIKey:  viper.GetString("OPENAI_API_KEY"),
			BaseURL: viper.GetString("OPENAI_API_BASE"),
			Model:   viper.GetString("OPENAI_MODEL"),
		},
		Telegram: TelegramConfig{
			BotToken: viper.GetString("TELEGRAM_BOT_TOKEN"),
			ChatID:   viper.GetInt64("TELEGRAM_CHAT_ID"),
		},
	}
}
