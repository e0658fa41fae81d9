package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Config holds the configuration values for the application.
type Config struct {
	Port              string   `validate:"required,numeric"`
	DBUser            string   `validate:"required_without=RawMongoURI"`
	DBPassword        string   `validate:"required_without=RawMongoURI"`
	DBHost            string   `validate:"required"`
	DBAppName         string
	DBName            string   `validate:"required"`
	RawMongoURI       string   `validate:"omitempty,uri"`
	AccessTokenSecret string   `validate:"required"`
	CORSOrigins       []string `validate:"dive,url"`
}

// LoadConfig loads configuration from environment variables or uses default values.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:              getEnv("PORT", "5000"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBHost:            getEnv("DB_HOST", "cluster0.z0jqk.mongodb.net"),
		DBAppName:         getEnv("DB_APP_NAME", "Cluster0"),
		DBName:            getEnv("MONGO_DATABASE", "docDB"),
		RawMongoURI:       os.Getenv("MONGO_URI"),
		AccessTokenSecret: os.Getenv("ACCESS_TOKEN_SECRET"),
		CORSOrigins:       splitList(os.Getenv("CORS_ORIGINS")),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// MongoURI returns the connection string for the Atlas cluster, unless
// MONGO_URI overrides it.
func (c *Config) MongoURI() string {
	if c.RawMongoURI != "" {
		return c.RawMongoURI
	}
	u := url.URL{
		Scheme:   "mongodb+srv",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost,
		Path:     "/",
		RawQuery: "retryWrites=true&w=majority",
	}
	if c.DBAppName != "" {
		u.RawQuery += "&appName=" + url.QueryEscape(c.DBAppName)
	}
	return u.String()
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
