package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"github.com/sevenam/diamondstore/internal/db"
)

const (
	BackendFile     = "file"
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendMongo    = "mongo"
)

type Config struct {
	HTTPPort string `env:"HTTP_PORT" env-default:"8080"`
	LogFile  string `env:"LOG_FILE"`

	Store    Store
	Postgres Postgres
	Mongo    Mongo
	Kafka    Kafka
	Events   Events
	Telegram Telegram
	SMTP     SMTP

	ReportSchedule     string `env:"REPORT_SCHEDULE" env-default:"0 21 * * *"`
	MaxScreenshotBytes int64  `env:"MAX_SCREENSHOT_BYTES" env-default:"5242880"`
}

type Store struct {
	Backend string `env:"STORE_BACKEND" env-default:"file"`
	Dir     string `env:"STORE_DIR" env-default:"data"`
}

type Postgres struct {
	Host     string `env:"DB_HOST" env-default:"localhost"`
	Port     int    `env:"DB_PORT" env-default:"5432"`
	User     string `env:"POSTGRES_USER" env-default:"postgres"`
	Password string `env:"POSTGRES_PASSWORD"`
	Name     string `env:"POSTGRES_DB" env-default:"diamondstore"`
}

func (p Postgres) DB() db.Config {
	return db.Config{Host: p.Host, Port: p.Port, User: p.User, Password: p.Password, Name: p.Name}
}

type Mongo struct {
	URL      string `env:"MONGO_URL" env-default:"mongodb://localhost:27017"`
	Database string `env:"MONGO_DB" env-default:"diamondstore"`
}

// Kafka with no brokers falls back to the console producer.
type Kafka struct {
	Brokers []string `env:"KAFKA_BROKERS" env-separator:","`
	Topic   string   `env:"KAFKA_TOPIC" env-default:"activity-logs"`
}

type Events struct {
	Workers      int           `env:"EVENT_WORKERS" env-default:"2"`
	BatchSize    int           `env:"EVENT_BATCH_SIZE" env-default:"5"`
	FlushTimeout time.Duration `env:"EVENT_FLUSH_TIMEOUT" env-default:"500ms"`
}

type Telegram struct {
	BotToken    string `env:"TELEGRAM_BOT_TOKEN"`
	AdminChatID int64  `env:"TELEGRAM_ADMIN_CHAT_ID"`
}

type SMTP struct {
	Host     string `env:"SMTP_HOST"`
	Port     int    `env:"SMTP_PORT" env-default:"587"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"SMTP_FROM"`
}

func (c *Config) validate() error {
	switch c.Store.Backend {
	case BackendFile, BackendMemory, BackendPostgres, BackendMongo:
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.Store.Backend)
	}
	if c.Events.Workers < 1 {
		return fmt.Errorf("EVENT_WORKERS must be positive, got %d", c.Events.Workers)
	}
	if c.Events.BatchSize < 1 {
		return fmt.Errorf("EVENT_BATCH_SIZE must be positive, got %d", c.Events.BatchSize)
	}
	if c.MaxScreenshotBytes <= 0 {
		return fmt.Errorf("MAX_SCREENSHOT_BYTES must be positive, got %d", c.MaxScreenshotBytes)
	}
	return nil
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	loadEnv()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read env config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return cfg
}

func loadEnv() {
	wd, err := os.Getwd()
	if err != nil {
		log.Printf("Error getting working directory: %v", err)
		return
	}

	possiblePaths := []string{
		filepath.Join(wd, ".env"),
		filepath.Join(wd, "..", ".env"),
		filepath.Join(wd, "..", "..", ".env"),
	}

	for _, envPath := range possiblePaths {
		if err := godotenv.Load(envPath); err == nil {
			log.Printf("Loaded environment variables from %s", envPath)
			return
		}
	}
}
