package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ConfigFileEnv names an optional YAML file layered between the built-in
// defaults and the environment.
const ConfigFileEnv = "WITHME_CONFIG"

type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"db"`
	Redis     RedisConfig     `koanf:"redis"`
	Ideas     IdeasConfig     `koanf:"ideas"`
	RateLimit RateLimitConfig `koanf:"ratelimit"`
	Log       LogConfig       `koanf:"log"`
}

type ServerConfig struct {
	Host        string `koanf:"host"`
	Port        int    `koanf:"port"`
	Secure      bool   `koanf:"secure"`      // Send HSTS
	Environment string `koanf:"environment"` // "development", "production", "test"
	Debug       bool   `koanf:"debug"`
}

type DatabaseConfig struct {
	Host       string `koanf:"host"`
	Port       int    `koanf:"port"`
	User       string `koanf:"user"`
	Password   string `koanf:"password"`
	DBName     string `koanf:"name"`
	SSLMode    string `koanf:"sslmode"`
	Migrations string `koanf:"migrations"`
	MaxConns   int32  `koanf:"max_conns"`
	MinConns   int32  `koanf:"min_conns"`
}

type RedisConfig struct {
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
}

type IdeasConfig struct {
	DefaultCount           int `koanf:"default_count"`
	MaxCount               int `koanf:"max_count"`
	MaxKeywords            int `koanf:"max_keywords"`
	KeywordCacheTTLSeconds int `koanf:"keyword_cache_ttl"`
}

type RateLimitConfig struct {
	Requests      int `koanf:"requests"`
	WindowSeconds int `koanf:"window_seconds"`
}

type LogConfig struct {
	Level string `koanf:"level"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

func (i IdeasConfig) KeywordCacheTTL() time.Duration {
	return time.Duration(i.KeywordCacheTTLSeconds) * time.Second
}

func (r RateLimitConfig) Window() time.Duration {
	return time.Duration(r.WindowSeconds) * time.Second
}

// Load reads the defaults, the file named by WITHME_CONFIG if set, and then
// environment overrides such as SERVER_PORT or IDEAS_MAX_COUNT.
func Load() (*Config, error) {
	return LoadWithFile(os.Getenv(ConfigFileEnv))
}

// LoadWithFile is Load with an explicit config file path. An empty path skips
// the file layer.
func LoadWithFile(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(rawbytes.Provider(defaultsYAML), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

var envSections = map[string]bool{
	"server":    true,
	"db":        true,
	"redis":     true,
	"ideas":     true,
	"ratelimit": true,
	"log":       true,
}

// envKey maps SECTION_FIELD_NAME to section.field_name. Variables outside the
// known sections are ignored.
func envKey(s string) string {
	parts := strings.SplitN(strings.ToLower(s), "_", 2)
	if len(parts) != 2 || !envSections[parts[0]] || parts[1] == "" {
		return ""
	}
	return parts[0] + "." + parts[1]
}

// Validate rejects values the service cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d out of range", c.Server.Port))
	}
	if c.Ideas.MaxCount < 1 {
		errs = append(errs, errors.New("ideas.max_count must be at least 1"))
	}
	if c.Ideas.DefaultCount < 1 || c.Ideas.DefaultCount > c.Ideas.MaxCount {
		errs = append(errs, fmt.Errorf("ideas.default_count must be between 1 and %d", c.Ideas.MaxCount))
	}
	if c.Ideas.MaxKeywords < 1 {
		errs = append(errs, errors.New("ideas.max_keywords must be at least 1"))
	}
	if c.Ideas.KeywordCacheTTLSeconds < 1 {
		errs = append(errs, errors.New("ideas.keyword_cache_ttl must be at least 1 second"))
	}
	if c.Database.MaxConns < 1 || c.Database.MinConns < 0 || c.Database.MinConns > c.Database.MaxConns {
		errs = append(errs, fmt.Errorf("db.min_conns must be between 0 and db.max_conns (%d)", c.Database.MaxConns))
	}
	if c.RateLimit.Requests < 0 || c.RateLimit.WindowSeconds < 0 {
		errs = append(errs, errors.New("ratelimit values must not be negative"))
	}
	return errors.Join(errs...)
}
