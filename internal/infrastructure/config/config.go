package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8000"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Mongo      MongoConfig
	Redis      RedisConfig
	Postgres   PostgresConfig
	Downstream DownstreamConfig
	OpenAI     OpenAIConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=dealership_gateway"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type PostgresConfig struct {
	Host     string `env:"POSTGRES_HOST,     default=localhost"`
	Port     string `env:"POSTGRES_PORT,     default=5432"`
	User     string `env:"POSTGRES_USER,     default=postgres"`
	Password string `env:"POSTGRES_PASSWORD"`
	Database string `env:"POSTGRES_DB,       default=dealership"`
	SSLMode  string `env:"POSTGRES_SSLMODE,  default=disable"`
}

// DSN renders the lib/pq connection string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode)
}

// DownstreamConfig holds the base URLs of the three proxied services.
type DownstreamConfig struct {
	DealerURL    string `env:"DEALER_SERVICE_URL,    default=http://localhost:3030"`
	SentimentURL string `env:"SENTIMENT_SERVICE_URL, default=http://localhost:5050"`
	SearchURL    string `env:"SEARCHCARS_URL,        default=http://localhost:3050"`
	// FanoutWorkers bounds the concurrent sentiment calls per request.
	FanoutWorkers int `env:"SENTIMENT_FANOUT_WORKERS, default=8"`
}

type OpenAIConfig struct {
	APIKey string `env:"OPENAI_API_KEY"`
	Model  string `env:"OPENAI_MODEL, default=gpt-3.5-turbo"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
