package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env      string         // Env is the current environment: local, development, production.
	HTTPPort string         // HTTPPort is the port the API server listens on.
	Postgres PostgresConfig // Postgres holds the database configuration.
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string // Host is the database server address.
	Port     string // Port is the database server port.
	User     string // User is the database user.
	Password string // Password is the database user's password.
	Dbname   string // Dbname is the name of the database.
}

// MustLoad loads the configuration from a YAML file pointed to by
// CONFIG_PATH, falling back to environment variables (optionally provided
// through a .env file). It panics when required values are missing.
func MustLoad() *Config {
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath != "" {
		// check if file exists
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			panic("config file does not exist: " + configPath)
		}

		viper.SetConfigFile(configPath)
		if err := viper.ReadInConfig(); err != nil {
			panic("config error: " + err.Error())
		}
	}

	viper.SetDefault("env", "local")
	viper.SetDefault("http.port", "8080")
	viper.SetDefault("postgres.port", "5432")

	_ = viper.BindEnv("env", "HRMS_ENV")
	_ = viper.BindEnv("http.port", "HTTP_PORT")
	_ = viper.BindEnv("postgres.host", "DB_HOST")
	_ = viper.BindEnv("postgres.port", "DB_PORT")
	_ = viper.BindEnv("postgres.user", "DB_USERNAME")
	_ = viper.BindEnv("postgres.password", "DB_PASSWORD")
	_ = viper.BindEnv("postgres.db_name", "DB_NAME")

	cfg := &Config{
		Env:      viper.GetString("env"),
		HTTPPort: viper.GetString("http.port"),
		Postgres: PostgresConfig{
			Host:     viper.GetString("postgres.host"),
			Port:     viper.GetString("postgres.port"),
			User:     viper.GetString("postgres.user"),
			Password: viper.GetString("postgres.password"),
			Dbname:   viper.GetString("postgres.db_name"),
		},
	}

	if cfg.Postgres.Host == "" {
		panic("postgres host is not specified")
	}
	if cfg.Postgres.Dbname == "" {
		panic("postgres database name is not specified")
	}

	return cfg
}
