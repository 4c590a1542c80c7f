package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort       string // Application port
	DBDriver      string // Database driver: mysql or sqlite
	DBUser        string // Database user (mysql)
	DBPassword    string // Database password (mysql)
	DBHost        string // Database host (mysql)
	DBPort        string // Database port (mysql)
	DBName        string // Database name (mysql)
	SQLitePath    string // SQLite file path (sqlite)
	JWTSecret     string // JWT secret key
	RedisAddr     string // Redis server address
	RedisPass     string // Redis password
	RedisDB       int    // Redis database number
	PlaidClientID string // Plaid client ID
	PlaidSecret   string // Plaid secret
	PlaidEnv      string // Plaid environment: sandbox, development, production
	IsProd        bool   // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	cfg := &Config{
		AppPort:       os.Getenv("APP_PORT"),         // Application port
		DBDriver:      os.Getenv("DB_DRIVER"),        // Database driver
		DBUser:        os.Getenv("DB_USER"),          // Database user
		DBPassword:    os.Getenv("DB_PASSWORD"),      // Database password
		DBHost:        os.Getenv("DB_HOST"),          // Database host
		DBPort:        os.Getenv("DB_PORT"),          // Database port
		DBName:        os.Getenv("DB_NAME"),          // Database name
		SQLitePath:    os.Getenv("SQLITE_PATH"),      // SQLite file path
		JWTSecret:     os.Getenv("JWT_SECRET"),       // JWT secret key
		RedisAddr:     os.Getenv("REDIS_ADDR"),       // Redis server address
		RedisPass:     os.Getenv("REDIS_PASS"),       // Redis password
		RedisDB:       redisDB,                       // Redis database number
		PlaidClientID: os.Getenv("PLAID_CLIENT_ID"),  // Plaid client ID
		PlaidSecret:   os.Getenv("PLAID_SECRET"),     // Plaid secret
		PlaidEnv:      os.Getenv("PLAID_ENV"),        // Plaid environment
		IsProd:        os.Getenv("IS_PROD") == "true", // Is production environment
	}
	// Local development defaults to the bundled SQLite database
	if cfg.DBDriver == "" {
		cfg.DBDriver = "sqlite"
	}
	if cfg.SQLitePath == "" {
		cfg.SQLitePath = "piggie.db"
	}
	if cfg.PlaidEnv == "" {
		cfg.PlaidEnv = "sandbox"
	}
	return cfg
}

// DSN builds the MySQL Data Source Name
func (c *Config) DSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
}
