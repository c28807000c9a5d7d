package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"offsetpager/internal/pagination"
)

// Storage drivers accepted in DB_DRIVER.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

type AppCfg struct{ Env, Port, BaseURL string }

type DBCfg struct {
	Driver         string
	DSN            string
	ConnectTimeout time.Duration
	Seed           int
}

type RedisCfg struct {
	Addr            string
	RateLimitPerMin int
}

type LogCfg struct {
	Level  string
	Pretty bool
}

type Cfg struct {
	App   AppCfg
	DB    DBCfg
	Redis RedisCfg
	Log   LogCfg
	Page  pagination.Config
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "sandbox")
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("DB_DRIVER", DriverMemory)
	v.SetDefault("DB_CONNECT_TIMEOUT", "30s")
	v.SetDefault("RATE_LIMIT_PER_MIN", 300)
	v.SetDefault("PAGE_SIZE_DEFAULT", 10)
	v.SetDefault("PAGE_SIZE_MAX", 25)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_PRETTY", false)
	v.SetDefault("SEED_PEOPLE", 50)
}

// Read loads .env (if present) and the process environment into a Cfg.
func Read() (Cfg, error) {
	// a missing .env is fine, the process env still applies
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := Cfg{
		App: AppCfg{
			Env:     v.GetString("APP_ENV"),
			Port:    v.GetString("APP_PORT"),
			BaseURL: strings.TrimSpace(v.GetString("APP_BASE_URL")),
		},
		DB: DBCfg{
			Driver:         strings.ToLower(strings.TrimSpace(v.GetString("DB_DRIVER"))),
			DSN:            v.GetString("DB_DSN"),
			ConnectTimeout: v.GetDuration("DB_CONNECT_TIMEOUT"),
			Seed:           v.GetInt("SEED_PEOPLE"),
		},
		Redis: RedisCfg{
			Addr:            v.GetString("REDIS_ADDR"),
			RateLimitPerMin: v.GetInt("RATE_LIMIT_PER_MIN"),
		},
		Log: LogCfg{
			Level:  v.GetString("LOG_LEVEL"),
			Pretty: v.GetBool("LOG_PRETTY"),
		},
		Page: pagination.Config{
			DefaultPageSize: v.GetInt("PAGE_SIZE_DEFAULT"),
			MaxPageSize:     v.GetInt("PAGE_SIZE_MAX"),
		},
	}
	return cfg, cfg.validate()
}

func (c Cfg) validate() error {
	// without a fixed base, links echo the client's Host and X-Forwarded-Proto
	if c.App.Env == "production" && c.App.BaseURL == "" {
		return errors.New("APP_BASE_URL is required when APP_ENV=production")
	}
	switch c.DB.Driver {
	case DriverMemory:
		if c.DB.Seed < 0 {
			return fmt.Errorf("SEED_PEOPLE must not be negative, got %d", c.DB.Seed)
		}
	case DriverPostgres, DriverMySQL:
		if c.DB.DSN == "" {
			return errors.New("DB_DSN is required for driver " + c.DB.Driver)
		}
	default:
		return fmt.Errorf("DB_DRIVER %q is not one of memory, postgres, mysql", c.DB.Driver)
	}
	if c.DB.ConnectTimeout <= 0 {
		return errors.New("DB_CONNECT_TIMEOUT must be positive")
	}
	if c.Redis.Addr != "" && c.Redis.RateLimitPerMin <= 0 {
		return errors.New("RATE_LIMIT_PER_MIN must be positive when REDIS_ADDR is set")
	}
	return c.Page.Validate()
}

// Load is Read that exits the process on invalid settings.
func Load() Cfg {
	cfg, err := Read()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	return cfg
}
