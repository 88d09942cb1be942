package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/newsdesk"
	ndhttp "github.com/fwojciec/newsdesk/http"
	"gopkg.in/yaml.v3"
)

// Modes accepted in configuration.
const (
	FetchHTTP    = "http"
	FetchBrowser = "browser"

	ExtractSelectors   = "selectors"
	ExtractReadability = "readability"
	ExtractTrafilatura = "trafilatura"

	GeneratorConstant = "constant"
	GeneratorOpenAI   = "openai"
	GeneratorGemini   = "gemini"

	LogText = "text"
	LogJSON = "json"
)

// Config is the program configuration. Values come from DefaultConfig, then
// the YAML file, then the environment.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Fetch     FetchConfig     `yaml:"fetch"`
	Extract   ExtractConfig   `yaml:"extract"`
	Generator GeneratorConfig `yaml:"generator"`
	Log       LogConfig       `yaml:"log"`
}

type ServerConfig struct {
	Addr           string        `yaml:"addr"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout"`
	IdleTimeout    time.Duration `yaml:"idle_timeout"`
}

type FetchConfig struct {
	Mode      string        `yaml:"mode"`
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"user_agent"`
	// Pages served by one browser before it is restarted. Browser mode only.
	MaxPages int `yaml:"max_pages"`
}

type ExtractConfig struct {
	Mode string `yaml:"mode"`
	// Content selectors in priority order. Selectors mode only.
	Selectors []string `yaml:"selectors"`
}

type GeneratorConfig struct {
	Mode          string `yaml:"mode"`
	Model         string `yaml:"model"`
	OpenAIKey     string `yaml:"openai_api_key"`
	OpenAIBaseURL string `yaml:"openai_base_url"`
	GeminiKey     string `yaml:"gemini_api_key"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:           ":5000",
			AllowedOrigins: []string{"*"},
			ReadTimeout:    ndhttp.DefaultReadTimeout,
			WriteTimeout:   ndhttp.DefaultWriteTimeout,
			IdleTimeout:    ndhttp.DefaultIdleTimeout,
		},
		Fetch: FetchConfig{
			Mode:      FetchHTTP,
			Timeout:   ndhttp.DefaultFetchTimeout,
			UserAgent: ndhttp.DefaultUserAgent,
		},
		Extract: ExtractConfig{
			Mode: ExtractSelectors,
		},
		Generator: GeneratorConfig{
			Mode: GeneratorConstant,
		},
		Log: LogConfig{
			Level:  "info",
			Format: LogText,
		},
	}
}

// LoadConfig reads the YAML file at path, if any, over the defaults and
// applies environment overrides looked up with getenv.
func LoadConfig(path string, getenv func(string) string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(getenv); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	setString := func(dst *string, key string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}
	setDuration := func(dst *time.Duration, key string) error {
		v := getenv(key)
		if v == "" {
			return nil
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", key, err)
		}
		*dst = d
		return nil
	}

	setString(&c.Server.Addr, "NEWSDESK_ADDR")
	if v := getenv("NEWSDESK_ALLOWED_ORIGINS"); v != "" {
		c.Server.AllowedOrigins = splitList(v)
	}
	setString(&c.Fetch.Mode, "NEWSDESK_FETCH_MODE")
	if err := setDuration(&c.Fetch.Timeout, "NEWSDESK_FETCH_TIMEOUT"); err != nil {
		return err
	}
	setString(&c.Fetch.UserAgent, "NEWSDESK_USER_AGENT")
	if v := getenv("NEWSDESK_MAX_PAGES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid NEWSDESK_MAX_PAGES: %w", err)
		}
		c.Fetch.MaxPages = n
	}
	setString(&c.Extract.Mode, "NEWSDESK_EXTRACT_MODE")
	if v := getenv("NEWSDESK_SELECTORS"); v != "" {
		c.Extract.Selectors = splitList(v)
	}
	setString(&c.Generator.Mode, "NEWSDESK_GENERATOR")
	setString(&c.Generator.Model, "NEWSDESK_MODEL")
	setString(&c.Generator.OpenAIKey, "OPENAI_API_KEY")
	setString(&c.Generator.OpenAIBaseURL, "OPENAI_BASE_URL")
	setString(&c.Generator.GeminiKey, "GEMINI_API_KEY")
	setString(&c.Log.Level, "NEWSDESK_LOG_LEVEL")
	setString(&c.Log.Format, "NEWSDESK_LOG_FORMAT")
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Validate returns an EINVALID error for unknown modes or missing keys.
func (c *Config) Validate() error {
	switch c.Fetch.Mode {
	case FetchHTTP, FetchBrowser:
	default:
		return newsdesk.Errorf(newsdesk.EINVALID, "unknown fetch mode %q (want %s or %s)", c.Fetch.Mode, FetchHTTP, FetchBrowser)
	}
	if c.Fetch.Timeout <= 0 {
		return newsdesk.Errorf(newsdesk.EINVALID, "fetch timeout must be positive")
	}

	switch c.Extract.Mode {
	case ExtractSelectors, ExtractReadability, ExtractTrafilatura:
	default:
		return newsdesk.Errorf(newsdesk.EINVALID, "unknown extract mode %q (want %s, %s or %s)",
			c.Extract.Mode, ExtractSelectors, ExtractReadability, ExtractTrafilatura)
	}

	switch c.Generator.Mode {
	case GeneratorConstant:
	case GeneratorOpenAI:
		if c.Generator.OpenAIKey == "" {
			return newsdesk.Errorf(newsdesk.EINVALID, "OPENAI_API_KEY required for generator mode %q", GeneratorOpenAI)
		}
	case GeneratorGemini:
		if c.Generator.GeminiKey == "" {
			return newsdesk.Errorf(newsdesk.EINVALID, "GEMINI_API_KEY required for generator mode %q. Get a key at https://aistudio.google.com/apikey", GeneratorGemini)
		}
	default:
		return newsdesk.Errorf(newsdesk.EINVALID, "unknown generator mode %q (want %s, %s or %s)",
			c.Generator.Mode, GeneratorConstant, GeneratorOpenAI, GeneratorGemini)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return newsdesk.Errorf(newsdesk.EINVALID, "unknown log level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case LogText, LogJSON:
	default:
		return newsdesk.Errorf(newsdesk.EINVALID, "unknown log format %q (want %s or %s)", c.Log.Format, LogText, LogJSON)
	}
	return nil
}

// NewLogger creates the program logger writing to w.
func NewLogger(cfg LogConfig, w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == LogJSON {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}
