package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	ErrMissingDatabaseURL = errors.New("config: DATABASE_URL is required for the postgres driver")
	ErrMissingUpstreamURL = errors.New("config: UPSTREAM_URL is required for the upstream source")
	ErrUnknownDriver      = errors.New("config: unknown DB_DRIVER")
	ErrUnknownSource      = errors.New("config: unknown SOURCE")
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	SourceStore    = "store"
	SourceUpstream = "upstream"
)

type Config struct {
	Env             string // local, development, production
	ServerAddress   string
	ShutdownTimeout time.Duration
	AdminToken      string // empty disables the admin check
	SeedFile        string

	DB        DB
	Source    Source
	Analytics Analytics
}

type DB struct {
	Driver          string
	Path            string // sqlite file
	URL             string // postgres DSN
	MaxConnections  int
	MaxConnLifetime time.Duration
}

type Source struct {
	Kind            string
	UpstreamURL     string
	UpstreamTimeout time.Duration
	Workers         int
}

type Analytics struct {
	LeaderboardSize int
	RecentLimit     int
}

// Load reads .env and config/config.yaml when present, then the process
// environment, which wins.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	v.SetDefault("env", "local")
	v.SetDefault("server_address", ":8080")
	v.SetDefault("shutdown_timeout", "10s")
	v.SetDefault("admin_token", "")
	v.SetDefault("seed_file", "")

	v.SetDefault("db_driver", DriverSQLite)
	v.SetDefault("db_path", "survey.db")
	v.SetDefault("database_url", "")
	v.SetDefault("db_max_connections", 10)
	v.SetDefault("db_max_conn_lifetime", "30m")

	v.SetDefault("source", SourceStore)
	v.SetDefault("upstream_url", "")
	v.SetDefault("upstream_timeout", "10s")
	v.SetDefault("workers", 2)

	v.SetDefault("leaderboard_size", 5)
	v.SetDefault("recent_limit", 10)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("env", "APP_ENV", "ENV")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read file: %w", err)
		}
	}

	cfg := Config{
		Env:             v.GetString("env"),
		ServerAddress:   v.GetString("server_address"),
		ShutdownTimeout: v.GetDuration("shutdown_timeout"),
		AdminToken:      v.GetString("admin_token"),
		SeedFile:        v.GetString("seed_file"),
		DB: DB{
			Driver:          strings.ToLower(v.GetString("db_driver")),
			Path:            v.GetString("db_path"),
			URL:             v.GetString("database_url"),
			MaxConnections:  v.GetInt("db_max_connections"),
			MaxConnLifetime: v.GetDuration("db_max_conn_lifetime"),
		},
		Source: Source{
			Kind:            strings.ToLower(v.GetString("source")),
			UpstreamURL:     v.GetString("upstream_url"),
			UpstreamTimeout: v.GetDuration("upstream_timeout"),
			Workers:         v.GetInt("workers"),
		},
		Analytics: Analytics{
			LeaderboardSize: v.GetInt("leaderboard_size"),
			RecentLimit:     v.GetInt("recent_limit"),
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.DB.Driver {
	case DriverSQLite:
	case DriverPostgres:
		if c.DB.URL == "" {
			return ErrMissingDatabaseURL
		}
	default:
		return fmt.Errorf("%w %q", ErrUnknownDriver, c.DB.Driver)
	}

	switch c.Source.Kind {
	case SourceStore:
	case SourceUpstream:
		if c.Source.UpstreamURL == "" {
			return ErrMissingUpstreamURL
		}
	default:
		return fmt.Errorf("%w %q", ErrUnknownSource, c.Source.Kind)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
