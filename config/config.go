package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DefaultPath    = "config/environment.yaml"
	DefaultMode    = "production"
	DefaultVersion = "0.0.0"
)

type Config struct {
	AppName  string         `mapstructure:"app_name"`
	Mode     string         `mapstructure:"-"`
	Version  string         `mapstructure:"-"`
	LogLevel string         `mapstructure:"-"`
	Server   ServerConfig   `mapstructure:"server"`
	Model    ModelConfig    `mapstructure:"model"`
	Pipeline PipelineConfig `mapstructure:"pipeline"`
	Telegram TelegramConfig `mapstructure:"telegram"`
}

type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	Mode         string        `mapstructure:"mode"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	MaxBodyBytes int64         `mapstructure:"max_body_bytes"`
}

type ModelConfig struct {
	Path string `mapstructure:"path"`
}

type PipelineConfig struct {
	MaxConcurrent  int           `mapstructure:"max_concurrent"`
	QueueTimeout   time.Duration `mapstructure:"queue_timeout"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

type TelegramConfig struct {
	Token string `mapstructure:"token"`
}

// Load читает секцию окружения MODE_DEPLOY из YAML-файла и применяет
// переопределения из переменных окружения
func Load(path string) (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	if path == "" {
		path = DefaultPath
	}

	mode := envOr("MODE_DEPLOY", DefaultMode)

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	section := v.Sub(mode)
	if section == nil {
		return nil, fmt.Errorf("config section %q not found in %s", mode, path)
	}
	setDefaults(section)

	var cfg Config
	if err := section.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.Mode = mode
	applyEnv(&cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_name", "plant-segmentation")

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 60*time.Second)
	v.SetDefault("server.max_body_bytes", 20*1024*1024)

	v.SetDefault("model.path", "models/kmeans.json")

	v.SetDefault("pipeline.max_concurrent", 2)
	v.SetDefault("pipeline.queue_timeout", 30*time.Second)
	v.SetDefault("pipeline.request_timeout", 60*time.Second)
}

func applyEnv(cfg *Config) {
	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Port = port
	}
	if path := os.Getenv("MODEL_PATH"); path != "" {
		cfg.Model.Path = path
	}
	if token := os.Getenv("TELEGRAM_TOKEN"); token != "" {
		cfg.Telegram.Token = token
	}
	cfg.LogLevel = strings.ToLower(envOr("LOGLEVEL", "info"))
	cfg.Version = envOr("TAG", DefaultVersion)
}

func (c *Config) validate() error {
	if c.Pipeline.MaxConcurrent <= 0 {
		return fmt.Errorf("pipeline.max_concurrent must be positive, got %d", c.Pipeline.MaxConcurrent)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server.max_body_bytes must be positive, got %d", c.Server.MaxBodyBytes)
	}
	return nil
}

// Addr адрес для http.Server
func (s ServerConfig) Addr() string {
	if strings.HasPrefix(s.Port, ":") {
		return s.Port
	}
	return ":" + s.Port
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
