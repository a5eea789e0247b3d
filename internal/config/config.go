package config

import (
	"errors"
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"

	"github.com/curanest/booking-gateway/internal/domain"
	"github.com/curanest/booking-gateway/pkg/types"
)

// EnvConfigPath переменная окружения, переопределяющая путь к конфигу
const EnvConfigPath = "CURANEST_CONFIG"

// MaxCuranestTimeout верхняя граница curanest.timeout в секундах: блокировка отправки черновика живёт 2 минуты
const MaxCuranestTimeout = 60

// Draft storage backends
const (
	DraftBackendMemory = "memory"
	DraftBackendRedis  = "redis"
)

var (
	// ErrInvalidConfig возвращается при некорректных значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config корневая конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Logs       LogsConfig       `toml:"logs"`
	Database   DatabaseConfig   `toml:"database"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Curanest   CuranestConfig   `toml:"curanest"`
	Drafts     DraftsConfig     `toml:"drafts"`
	Redis      RedisConfig      `toml:"redis"`
	Catalog    CatalogConfig    `toml:"catalog"`
	Scheduling SchedulingConfig `toml:"scheduling"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// DatabaseConfig настройки PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CuranestConfig настройки клиента бэкенда CuraNest
type CuranestConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // seconds
}

// DraftsConfig настройки хранилища черновиков
type DraftsConfig struct {
	Backend  string `toml:"backend"` // memory | redis
	TTL      int    `toml:"ttl"`     // seconds
	MaxItems int    `toml:"max_items"`
	LockWait int    `toml:"lock_wait"` // seconds to wait for a busy draft
}

// TTLDuration возвращает TTL черновика
func (d DraftsConfig) TTLDuration() time.Duration {
	return time.Duration(d.TTL) * time.Second
}

// LockWaitDuration возвращает время ожидания блокировки черновика
func (d DraftsConfig) LockWaitDuration() time.Duration {
	return time.Duration(d.LockWait) * time.Second
}

// RedisConfig настройки Redis (для backend = "redis")
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Prefix   string `toml:"prefix"`
}

// CatalogConfig настройки кэша каталога задач
type CatalogConfig struct {
	CacheSize int `toml:"cache_size"`
	TTL       int `toml:"ttl"` // seconds
}

// TTLDuration возвращает время жизни записи каталога
func (c CatalogConfig) TTLDuration() time.Duration {
	return time.Duration(c.TTL) * time.Second
}

// SchedulingConfig рабочие часы и часовой пояс
type SchedulingConfig struct {
	Timezone     string `toml:"timezone"`
	DefaultStart string `toml:"default_start"`
	OpeningTime  string `toml:"opening_time"`
	ClosingTime  string `toml:"closing_time"`
}

// Location загружает часовой пояс
func (s SchedulingConfig) Location() (*time.Location, error) {
	return time.LoadLocation(s.Timezone)
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "booking_gateway",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "booking-gateway",
		},
		Curanest: CuranestConfig{
			URL:     "http://localhost:8000/api/v1",
			Timeout: 10,
		},
		Drafts: DraftsConfig{
			Backend:  DraftBackendMemory,
			TTL:      3600,
			MaxItems: 10000,
			LockWait: 5,
		},
		Redis: RedisConfig{
			Addr:   "localhost:6379",
			Prefix: "booking-gateway:draft:",
		},
		Catalog: CatalogConfig{
			CacheSize: 256,
			TTL:       300,
		},
		Scheduling: SchedulingConfig{
			Timezone:     domain.DefaultTimezone,
			DefaultStart: string(domain.DefaultStartTime),
			OpeningTime:  string(domain.DefaultOpeningTime),
			ClosingTime:  string(domain.DefaultClosingTime),
		},
	}
}

// Load читает конфигурацию из TOML файла поверх значений по умолчанию.
// Переменная окружения CURANEST_CONFIG имеет приоритет над переданным путём.
func Load(path string) (*Config, error) {
	if env := os.Getenv(EnvConfigPath); env != "" {
		path = env
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет конфигурацию
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Curanest.URL == "" {
		return fmt.Errorf("%w: curanest.url is required", ErrInvalidConfig)
	}
	if c.Curanest.Timeout <= 0 || c.Curanest.Timeout > MaxCuranestTimeout {
		return fmt.Errorf("%w: curanest.timeout=%d", ErrInvalidConfig, c.Curanest.Timeout)
	}

	switch c.Drafts.Backend {
	case DraftBackendMemory:
		if c.Drafts.MaxItems <= 0 {
			return fmt.Errorf("%w: drafts.max_items=%d", ErrInvalidConfig, c.Drafts.MaxItems)
		}
	case DraftBackendRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("%w: redis.addr is required for redis draft backend", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: drafts.backend=%q", ErrInvalidConfig, c.Drafts.Backend)
	}
	if c.Drafts.TTL <= 0 {
		return fmt.Errorf("%w: drafts.ttl=%d", ErrInvalidConfig, c.Drafts.TTL)
	}
	if c.Drafts.LockWait <= 0 {
		return fmt.Errorf("%w: drafts.lock_wait=%d", ErrInvalidConfig, c.Drafts.LockWait)
	}

	if c.Catalog.CacheSize <= 0 {
		return fmt.Errorf("%w: catalog.cache_size=%d", ErrInvalidConfig, c.Catalog.CacheSize)
	}

	if _, err := c.Scheduling.Location(); err != nil {
		return fmt.Errorf("%w: scheduling.timezone: %v", ErrInvalidConfig, err)
	}

	start, err := types.NewTimeStringFromString(c.Scheduling.DefaultStart)
	if err != nil {
		return fmt.Errorf("%w: scheduling.default_start: %v", ErrInvalidConfig, err)
	}
	opening, err := types.NewTimeStringFromString(c.Scheduling.OpeningTime)
	if err != nil {
		return fmt.Errorf("%w: scheduling.opening_time: %v", ErrInvalidConfig, err)
	}
	closing, err := types.NewTimeStringFromString(c.Scheduling.ClosingTime)
	if err != nil {
		return fmt.Errorf("%w: scheduling.closing_time: %v", ErrInvalidConfig, err)
	}
	if !opening.IsBefore(closing) {
		return fmt.Errorf("%w: scheduling.opening_time must be before closing_time", ErrInvalidConfig)
	}
	if start.IsBefore(opening) || !start.IsBefore(closing) {
		return fmt.Errorf("%w: scheduling.default_start outside working hours", ErrInvalidConfig)
	}

	return nil
}
