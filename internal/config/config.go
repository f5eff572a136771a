package config

import (
	"os"
	"strconv"
	"time"

	"taskshelf/internal/logger"

	"github.com/joho/godotenv"
)

// BookStoreKind selects the backing store for the book API.
const (
	BookStorePostgres = "postgres"
	BookStoreMemory   = "memory"
)

type Config struct {
	AppPort string

	// Todo store (MongoDB)
	MongoURL       string
	MongoDatabase  string
	TodoCollection string

	// Book store
	BookStore   string // postgres | memory
	DatabaseURL string

	// Rate limiter (optional, fail-open when unset)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	APIRateLimit  int
	APIRateWindow time.Duration

	LogLevel string
	LogJSON  bool
}

// Load reads configuration from the environment, with .env as a fallback.
// Missing required variables are fatal.
func Load() *Config {
	_ = godotenv.Load()

	mongoURL := os.Getenv("MONGO_URL")
	if mongoURL == "" {
		logger.Fatal("MONGO_URL is not set")
	}

	bookStore := os.Getenv("BOOK_STORE")
	if bookStore == "" {
		bookStore = BookStorePostgres
	}
	if bookStore != BookStorePostgres && bookStore != BookStoreMemory {
		logger.Fatal("BOOK_STORE must be postgres or memory", "got", bookStore)
	}

	dbURL := os.Getenv("DATABASE_URL")
	if bookStore == BookStorePostgres && dbURL == "" {
		logger.Fatal("DATABASE_URL is not set")
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	mongoDB := os.Getenv("MONGO_DB")
	if mongoDB == "" {
		mongoDB = "todo_db"
	}

	todoColl := os.Getenv("TODO_COLLECTION")
	if todoColl == "" {
		todoColl = "todos"
	}

	redisDB := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			redisDB = n
		}
	}

	apiRateLimit := 100
	if v := os.Getenv("API_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			apiRateLimit = n
		}
	}

	apiRateWindow := time.Minute
	if v := os.Getenv("API_RATE_WINDOW_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			apiRateWindow = time.Duration(n) * time.Second
		}
	}

	return &Config{
		AppPort:        port,
		MongoURL:       mongoURL,
		MongoDatabase:  mongoDB,
		TodoCollection: todoColl,
		BookStore:      bookStore,
		DatabaseURL:    dbURL,
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RedisDB:        redisDB,
		APIRateLimit:   apiRateLimit,
		APIRateWindow:  apiRateWindow,
		LogLevel:       envDefault("LOG_LEVEL", "info"),
		LogJSON:        os.Getenv("LOG_JSON") == "true",
	}
}

func envDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
