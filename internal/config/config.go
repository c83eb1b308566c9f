package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"taskboard/internal/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort     string
	AppEnv      string
	DatabaseURL string
	JWTSecret   string
	TokenTTL    time.Duration
	BcryptCost  int

	LogLevel string
	LogJSON  bool

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	CORSOrigins []string

	// Rate limits
	APIRateLimit   int
	APIRateWindow  time.Duration
	AuthRateLimit  int
	AuthRateWindow time.Duration
	TaskRateLimit  int
	TaskRateWindow time.Duration
}

// Production reports whether the service runs with production settings
// (secure cookies, gin release mode).
func (c *Config) Production() bool {
	return c.AppEnv == "production"
}

// Load reads the config from the environment. A .env file in the working
// directory is loaded first when present.
func Load() *Config {
	_ = godotenv.Load()

	cfg, missing := FromEnv()
	if missing != "" {
		logger.Fatal(missing + " is not set")
	}
	return cfg
}

// FromEnv builds the config without touching .env files or exiting.
// missing names the first required variable that was empty.
func FromEnv() (cfg *Config, missing string) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, "DATABASE_URL"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, "JWT_SECRET"
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	appEnv := os.Getenv("APP_ENV")
	if appEnv == "" {
		appEnv = "development"
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	// comma separated, empty means any origin
	var origins []string
	for _, o := range strings.Split(os.Getenv("CORS_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return &Config{
		AppPort:        port,
		AppEnv:         appEnv,
		DatabaseURL:    dbURL,
		JWTSecret:      jwtSecret,
		TokenTTL:       time.Duration(positiveInt("TOKEN_TTL_HOURS", 24*7)) * time.Hour,
		BcryptCost:     positiveInt("BCRYPT_COST", 10),
		LogLevel:       logLevel,
		LogJSON:        os.Getenv("LOG_JSON") == "true",
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RedisDB:        nonNegativeInt("REDIS_DB", 0),
		CORSOrigins:    origins,
		APIRateLimit:   positiveInt("API_RATE_LIMIT", 120),
		APIRateWindow:  seconds("API_RATE_WINDOW_SECONDS", 60),
		AuthRateLimit:  positiveInt("AUTH_RATE_LIMIT", 10),
		AuthRateWindow: seconds("AUTH_RATE_WINDOW_SECONDS", 60),
		TaskRateLimit:  positiveInt("TASK_RATE_LIMIT", 120),
		TaskRateWindow: seconds("TASK_RATE_WINDOW_SECONDS", 60),
	}, ""
}

func positiveInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func nonNegativeInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

func seconds(key string, def int) time.Duration {
	return time.Duration(positiveInt(key, def)) * time.Second
}
