package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// Config конфигурация сервиса, загружается из TOML файла
type Config struct {
	Server       Server       `toml:"server"`
	Database     Database     `toml:"database"`
	Logs         Logs         `toml:"logs"`
	Metrics      Metrics      `toml:"metrics"`
	CourtService CourtService `toml:"court_service"`
	Booking      Booking      `toml:"booking"`
}

// Server настройки HTTP сервера, таймауты в секундах
type Server struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// Database настройки подключения к PostgreSQL
type Database struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN собирает строку подключения к PostgreSQL
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Logs настройки логирования
type Logs struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Metrics настройки Prometheus метрик
type Metrics struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CourtService настройки клиента реестра кортов, таймаут в секундах
type CourtService struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// Booking доменные настройки бронирования
type Booking struct {
	// Длительность бронируемого блока в минутах
	BlockDurationMinutes int `toml:"block_duration_minutes"`
	// IANA имя таймзоны площадок, например "Europe/Moscow"
	Timezone string `toml:"timezone"`
}

// Load загружает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if cfg.Booking.BlockDurationMinutes == 0 {
		cfg.Booking.BlockDurationMinutes = domain.DefaultBlockDurationMinutes
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: validate %s: %w", path, err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("server.http_port must be positive")
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("database.host and database.dbname are required")
	}
	if c.CourtService.URL == "" {
		return fmt.Errorf("court_service.url is required")
	}
	if c.Booking.BlockDurationMinutes < domain.MinBlockDurationMinutes ||
		c.Booking.BlockDurationMinutes > domain.MaxBlockDurationMinutes {
		return fmt.Errorf("booking.block_duration_minutes must be in range %d..%d",
			domain.MinBlockDurationMinutes, domain.MaxBlockDurationMinutes)
	}
	if c.Booking.Timezone == "" {
		return fmt.Errorf("booking.timezone is required")
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("metrics.path is required when metrics are enabled")
	}
	return nil
}
