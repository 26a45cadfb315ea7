// Package config loads service configuration from an optional YAML file,
// a .env file and the process environment, in that order of precedence
// (environment wins).
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Store drivers.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Store    StoreConfig    `yaml:"store"`
	Logging  LoggingConfig  `yaml:"logging"`
	Firebase FirebaseConfig `yaml:"firebase"`
	Realtime RealtimeConfig `yaml:"realtime"`
	Notify   NotifyConfig   `yaml:"notify"`
}

type ServerConfig struct {
	Port               string   `yaml:"port"`
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
	ShutdownTimeout    string   `yaml:"shutdown_timeout"`
}

type StoreConfig struct {
	Driver      string     `yaml:"driver"` // memory, sqlite, postgres
	DatabaseURL string     `yaml:"database_url"`
	SQLitePath  string     `yaml:"sqlite_path"`
	Pool        PoolConfig `yaml:"pool"`
}

// PoolConfig tunes the Postgres connection pool. Supabase's pooler caps
// connections per project, so the defaults stay small.
type PoolConfig struct {
	MaxConns          int32  `yaml:"max_conns"`
	MinConns          int32  `yaml:"min_conns"`
	MaxConnLifetime   string `yaml:"max_conn_lifetime"`
	MaxConnIdleTime   string `yaml:"max_conn_idle_time"`
	HealthCheckPeriod string `yaml:"health_check_period"`
}

func (p PoolConfig) Lifetime() time.Duration    { return mustDuration(p.MaxConnLifetime) }
func (p PoolConfig) IdleTime() time.Duration    { return mustDuration(p.MaxConnIdleTime) }
func (p PoolConfig) HealthCheck() time.Duration { return mustDuration(p.HealthCheckPeriod) }

// clamp keeps the connection bounds usable: at least one connection and
// min never above max.
func (p *PoolConfig) clamp() {
	if p.MaxConns < 1 {
		p.MaxConns = 1
	}
	if p.MinConns < 0 {
		p.MinConns = 0
	}
	if p.MinConns > p.MaxConns {
		p.MinConns = p.MaxConns
	}
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type FirebaseConfig struct {
	CredentialsPath string `yaml:"credentials_path"`
	CredentialsJSON string `yaml:"credentials_json"`
}

type RealtimeConfig struct {
	PollInterval string `yaml:"poll_interval"`
}

type NotifyConfig struct {
	Cooldown string `yaml:"cooldown"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:               "8080",
			CORSAllowedOrigins: []string{"*"},
			ShutdownTimeout:    "10s",
		},
		Store: StoreConfig{
			Driver:     DriverMemory,
			SQLitePath: "wellness.db",
			Pool: PoolConfig{
				MaxConns:          10,
				MinConns:          2,
				MaxConnLifetime:   "30m",
				MaxConnIdleTime:   "5m",
				HealthCheckPeriod: "30s",
			},
		},
		Logging:  LoggingConfig{Level: "info"},
		Realtime: RealtimeConfig{PollInterval: "5s"},
		Notify:   NotifyConfig{Cooldown: "6h"},
	}
}

// Load reads .env (if present), then the YAML file named by WELLNESS_CONFIG
// (if set), then applies environment overrides.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path := strings.TrimSpace(os.Getenv("WELLNESS_CONFIG")); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	cfg.Store.Pool.clamp()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		c.Server.CORSAllowedOrigins = origins
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.Store.DatabaseURL = v
		// A database URL implies postgres unless a driver is forced.
		if os.Getenv("STORE_DRIVER") == "" {
			c.Store.Driver = DriverPostgres
		}
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		c.Store.SQLitePath = v
	}
	if v := os.Getenv("STORE_DRIVER"); v != "" {
		c.Store.Driver = strings.ToLower(v)
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("FIREBASE_CREDENTIALS_PATH"); v != "" {
		c.Firebase.CredentialsPath = v
	}
	if v := os.Getenv("FIREBASE_CREDENTIALS_JSON"); v != "" {
		c.Firebase.CredentialsJSON = v
	}
	if v := os.Getenv("WS_POLL_INTERVAL"); v != "" {
		c.Realtime.PollInterval = v
	}
	if v := os.Getenv("NOTIFY_COOLDOWN"); v != "" {
		c.Notify.Cooldown = v
	}

	for name, dst := range map[string]*int32{
		"DB_MAX_CONNS": &c.Store.Pool.MaxConns,
		"DB_MIN_CONNS": &c.Store.Pool.MinConns,
	} {
		v := strings.TrimSpace(os.Getenv(name))
		if v == "" {
			continue
		}
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", name, v, err)
		}
		*dst = int32(n)
	}
	if v := strings.TrimSpace(os.Getenv("DB_MAX_CONN_LIFETIME")); v != "" {
		c.Store.Pool.MaxConnLifetime = v
	}
	if v := strings.TrimSpace(os.Getenv("DB_MAX_CONN_IDLE_TIME")); v != "" {
		c.Store.Pool.MaxConnIdleTime = v
	}
	if v := strings.TrimSpace(os.Getenv("DB_HEALTHCHECK_PERIOD")); v != "" {
		c.Store.Pool.HealthCheckPeriod = v
	}
	return nil
}

// Validate checks driver settings and duration strings.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverMemory:
	case DriverSQLite:
		if c.Store.SQLitePath == "" {
			return fmt.Errorf("store driver sqlite requires sqlite_path")
		}
	case DriverPostgres:
		if c.Store.DatabaseURL == "" {
			return fmt.Errorf("store driver postgres requires DATABASE_URL")
		}
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}

	for name, v := range map[string]string{
		"server.shutdown_timeout":        c.Server.ShutdownTimeout,
		"realtime.poll_interval":         c.Realtime.PollInterval,
		"notify.cooldown":                c.Notify.Cooldown,
		"store.pool.max_conn_lifetime":   c.Store.Pool.MaxConnLifetime,
		"store.pool.max_conn_idle_time":  c.Store.Pool.MaxConnIdleTime,
		"store.pool.health_check_period": c.Store.Pool.HealthCheckPeriod,
	} {
		if _, err := time.ParseDuration(v); err != nil {
			return fmt.Errorf("invalid %s %q: %w", name, v, err)
		}
	}
	return nil
}

// PollInterval returns the websocket poll interval.
func (c *Config) PollInterval() time.Duration {
	return mustDuration(c.Realtime.PollInterval)
}

// NotifyCooldown returns the per-user notification cooldown.
func (c *Config) NotifyCooldown() time.Duration {
	return mustDuration(c.Notify.Cooldown)
}

// ShutdownTimeout returns the graceful shutdown deadline.
func (c *Config) ShutdownTimeout() time.Duration {
	return mustDuration(c.Server.ShutdownTimeout)
}

// mustDuration parses a duration already checked by Validate. Invalid
// values read as zero.
func mustDuration(v string) time.Duration {
	d, _ := time.ParseDuration(v)
	return d
}
