package utils

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Session  SessionConfig
	OMDB     OMDBConfig
}

type AppConfig struct {
	Name      string
	Port      string
	Debug     bool
	LogPath   string
	Env       string
	SecretKey string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type SessionConfig struct {
	ExpiryHours int
}

type OMDBConfig struct {
	APIKey         string
	BaseURL        string
	TimeoutSeconds int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("PROD_DB_PORT", "5432")
	viper.SetDefault("PROD_DB_MAX_CONNS", 10)
	viper.SetDefault("SESSION_EXPIRY_HOURS", 24)
	viper.SetDefault("OMDB_BASE_URL", "http://www.omdbapi.com/")
	viper.SetDefault("OMDB_TIMEOUT_SECONDS", 10)

	// .env is optional; process env alone is enough in production.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	// The app refuses to start without a session signing key.
	secretKey := viper.GetString("SECRET_KEY")
	if secretKey == "" {
		return nil, fmt.Errorf("SECRET_KEY not set: set the environment variable SECRET_KEY before starting the app")
	}

	env := viper.GetString("ENV")

	config := &Config{
		App: AppConfig{
			Name:      viper.GetString("APP_NAME"),
			Port:      viper.GetString("PORT"),
			Debug:     viper.GetBool("DEBUG"),
			LogPath:   viper.GetString("LOG_PATH"),
			Env:       env,
			SecretKey: secretKey,
		},
		Database: databaseConfigFor(env),
		Session: SessionConfig{
			ExpiryHours: viper.GetInt("SESSION_EXPIRY_HOURS"),
		},
		OMDB: OMDBConfig{
			APIKey:         viper.GetString("OMDB_API_KEY"),
			BaseURL:        viper.GetString("OMDB_BASE_URL"),
			TimeoutSeconds: viper.GetInt("OMDB_TIMEOUT_SECONDS"),
		},
	}

	return config, nil
}

// databaseConfigFor picks the connection block matching ENV. Production reads
// the PROD_DB_* keys, everything else uses the development DB_* keys.
func databaseConfigFor(env string) DatabaseConfig {
	if env == "production" {
		return DatabaseConfig{
			Host:     viper.GetString("PROD_DB_HOST"),
			Port:     viper.GetString("PROD_DB_PORT"),
			Name:     viper.GetString("PROD_DB_NAME"),
			User:     viper.GetString("PROD_DB_USER"),
			Password: viper.GetString("PROD_DB_PASS"),
			MaxConns: viper.GetInt32("PROD_DB_MAX_CONNS"),
		}
	}

	return DatabaseConfig{
		Host:     viper.GetString("DB_HOST"),
		Port:     viper.GetString("DB_PORT"),
		Name:     viper.GetString("DB_NAME"),
		User:     viper.GetString("DB_USER"),
		Password: viper.GetString("DB_PASS"),
		MaxConns: viper.GetInt32("DB_MAX_CONNS"),
	}
}
