package datachat

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

type AppConfig struct {
	Mode          string
	ApiPort       string
	ForwarderPort string
	StaticDir     string
	OpenAIConfig  struct {
		APIKey  string
		Model   string
		BaseURL string
		Timeout time.Duration
	}
	SessionConfig struct {
		Store string
		TTL   time.Duration
	}
	RedisConfig struct {
		Host     string
		Port     string
		Password string
		DB       int
	}
	NatsURL string
}

var config AppConfig

// InitConfig loads envfile (a missing file is fine, the environment may
// already carry everything), builds the config and the shared clients.
func InitConfig(envfile string) {
	if err := godotenv.Load(envfile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatal(fmt.Sprintf("Error loading %s file: %s", envfile, err))
	}

	config = loadAppConfig()
	config.OpenAIConfig.APIKey = getEnvOrPanic("OPENAI_API_KEY")

	Logger = initLogger()
	if config.SessionConfig.Store == SessionStoreRedis {
		Redis = connectToRedis(config.RedisConfig.Host, config.RedisConfig.Port, config.RedisConfig.Password, config.RedisConfig.DB)
	}
}

// loadAppConfig reads every optional setting. The credential is checked
// separately by InitConfig.
func loadAppConfig() AppConfig {
	var cfg AppConfig
	cfg.Mode = GetEnv("RUN_MODE", "prod")
	cfg.ApiPort = GetEnv("API_PORT", ":8000")
	cfg.ForwarderPort = GetEnv("FORWARDER_PORT", ":8001")
	cfg.StaticDir = GetEnv("STATIC_DIR", "client/build")

	cfg.OpenAIConfig.APIKey = os.Getenv("OPENAI_API_KEY")
	cfg.OpenAIConfig.Model = GetEnv("OPENAI_MODEL", "gpt-4o-mini")
	cfg.OpenAIConfig.BaseURL = os.Getenv("OPENAI_BASE_URL")
	cfg.OpenAIConfig.Timeout = time.Duration(getIntEnvOrDefault("OPENAI_TIMEOUT_SECONDS", 60)) * time.Second

	cfg.SessionConfig.Store = strings.ToLower(GetEnv("SESSION_STORE", SessionStoreMemory))
	cfg.SessionConfig.TTL = time.Duration(getIntEnvOrDefault("SESSION_TTL_MINUTES", 60)) * time.Minute

	cfg.RedisConfig.Host = GetEnv("REDIS_HOST", "localhost")
	cfg.RedisConfig.Port = GetEnv("REDIS_PORT", "6379")
	cfg.RedisConfig.Password = GetEnv("REDIS_PASSWORD", "")
	cfg.RedisConfig.DB = getIntEnvOrDefault("REDIS_DB", 0)

	cfg.NatsURL = os.Getenv("NATS_URL")
	return cfg
}

func GetConfig() AppConfig {
	return config
}

func getEnvOrPanic(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("%s must be set", key)
	}
	return value
}

func GetEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntEnvOrDefault(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return value
}

func initLogger() zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "15:04:05",
		NoColor:    false,
		FormatLevel: func(i interface{}) string {
			return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
		},
		FormatMessage: func(i interface{}) string {
			return fmt.Sprintf("  %s  ", i)
		},
		FormatFieldName: func(i interface{}) string {
			return fmt.Sprintf("%s=", i)
		},
		FormatFieldValue: func(i interface{}) string {
			return fmt.Sprintf("%s", i)
		},
	}

	return zerolog.New(output).With().Timestamp().Caller().Logger()
}

func connectToRedis(host string, port string, password string, db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}

	return client
}
