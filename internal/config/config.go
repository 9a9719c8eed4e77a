package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultEndpoint is the questions API used when none is configured.
const DefaultEndpoint = "https://apis.ccbp.in/assess/questions"

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds application configuration loaded from files, env vars and flags.
type Config struct {
	Env             string        `mapstructure:"env"`              // local, production
	Endpoint        string        `mapstructure:"endpoint"`         // questions API URL
	HTTPTimeout     time.Duration `mapstructure:"http_timeout"`     // per-request timeout for the fetch
	QuestionSeconds int           `mapstructure:"question_seconds"` // countdown per question
	PassPercent     float64       `mapstructure:"pass_percent"`     // minimum percentage for a win
	RevealDelay     time.Duration `mapstructure:"reveal_delay"`     // how long the answer marks stay up
	RedirectDelay   time.Duration `mapstructure:"redirect_delay"`   // how long "Redirecting..." is shown
	QuestionsFile   string        `mapstructure:"questions_file"`   // local JSON file instead of the endpoint
	DB              string        `mapstructure:"db"`               // SQLite path; empty means default
	Splash          bool          `mapstructure:"splash"`           // show the welcome animation
	Log             Log           `mapstructure:"log"`
}

// Log configures the file logger. The TUI owns stdout, so logs go to a file.
type Log struct {
	File  string `mapstructure:"file"`  // empty disables logging
	Level string `mapstructure:"level"` // debug, info, warn, error
}

// New returns a viper instance with defaults and env bindings applied.
// Callers may bind flags into it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir, err := configDir(); err == nil {
		v.AddConfigPath(dir)
	}

	v.SetDefault("env", "local")
	v.SetDefault("endpoint", DefaultEndpoint)
	v.SetDefault("http_timeout", "10s")
	v.SetDefault("question_seconds", 15)
	v.SetDefault("pass_percent", 60.0)
	v.SetDefault("reveal_delay", "1s")
	v.SetDefault("redirect_delay", "2s")
	v.SetDefault("questions_file", "")
	v.SetDefault("db", "")
	v.SetDefault("splash", true)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix("QUIZGAME")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads an optional .env file and config file, then unmarshals and
// validates the result. path overrides the config search when non-empty.
func Load(v *viper.Viper, path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the built-in configuration, ignoring files and env vars.
func Default() *Config {
	return &Config{
		Env:             "local",
		Endpoint:        DefaultEndpoint,
		HTTPTimeout:     10 * time.Second,
		QuestionSeconds: 15,
		PassPercent:     60,
		RevealDelay:     time.Second,
		RedirectDelay:   2 * time.Second,
		Splash:          true,
		Log:             Log{Level: "info"},
	}
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("%w: endpoint is empty", ErrInvalidConfig)
	}
	if c.QuestionSeconds <= 0 {
		return fmt.Errorf("%w: question_seconds must be positive, got %d", ErrInvalidConfig, c.QuestionSeconds)
	}
	if c.PassPercent <= 0 || c.PassPercent > 100 {
		return fmt.Errorf("%w: pass_percent must be within (0, 100], got %g", ErrInvalidConfig, c.PassPercent)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("%w: http_timeout must be positive, got %s", ErrInvalidConfig, c.HTTPTimeout)
	}
	if c.RevealDelay < 0 || c.RedirectDelay < 0 {
		return fmt.Errorf("%w: durations must not be negative", ErrInvalidConfig)
	}
	return nil
}

func configDir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "quizgame"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "quizgame"), nil
}
