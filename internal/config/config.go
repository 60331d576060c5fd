package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/VetEstetica-BookingService/internal/domain"
	"github.com/m04kA/VetEstetica-BookingService/internal/infra/storage/kv"
	"github.com/m04kA/VetEstetica-BookingService/pkg/types"
)

var (
	// ErrLoad возвращается, когда файл не читается или не парсится
	ErrLoad = errors.New("config: failed to load")

	// ErrInvalid возвращается при некорректных значениях
	ErrInvalid = errors.New("config: invalid value")
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Storage  StorageConfig  `toml:"storage"`
	Schedule ScheduleConfig `toml:"schedule"`
	Booking  BookingConfig  `toml:"booking"`
	Admin    AdminConfig    `toml:"admin"`
	Seed     SeedConfig     `toml:"seed"`
	Catalog  CatalogConfig  `toml:"catalog"`
}

type ServerConfig struct {
	HTTPPort        int  `toml:"http_port"`
	ReadTimeout     int  `toml:"read_timeout"`     // секунды
	WriteTimeout    int  `toml:"write_timeout"`    // секунды
	IdleTimeout     int  `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int  `toml:"shutdown_timeout"` // секунды
	EnableCORS      bool `toml:"enable_cors"`
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // пусто - stdout
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// StorageConfig выбор бэкенда key-value хранилища
type StorageConfig struct {
	Backend  string         `toml:"backend"` // memory, postgres, redis
	Keys     KeysConfig     `toml:"keys"`
	Postgres PostgresConfig `toml:"postgres"`
	Redis    RedisConfig    `toml:"redis"`
}

type KeysConfig struct {
	Reservations string `toml:"reservations"`
	Seeded       string `toml:"seeded"`
	AdminSession string `toml:"admin_session"`
}

type PostgresConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
	Table           string `toml:"table"`
}

// DSN строка подключения для lib/pq
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.DBName, p.SSLMode)
}

type RedisConfig struct {
	Address   string `toml:"address"`
	Password  string `toml:"password"`
	DB        int    `toml:"db"`
	PoolSize  int    `toml:"pool_size"`
	KeyPrefix string `toml:"key_prefix"`
}

// ScheduleConfig часы работы в формате HH:MM
type ScheduleConfig struct {
	WeekdayOpen   string `toml:"weekday_open"`
	WeekdayClose  string `toml:"weekday_close"`
	SaturdayOpen  string `toml:"saturday_open"`
	SaturdayClose string `toml:"saturday_close"`
}

type BookingConfig struct {
	PetTypes []string `toml:"pet_types"`
}

type AdminConfig struct {
	Username string `toml:"username"`
	Password string `toml:"password"`
}

type SeedConfig struct {
	Enabled bool `toml:"enabled"` // загрузить примеры при первом запуске
}

// CatalogConfig пустые списки заменяются встроенным каталогом
type CatalogConfig struct {
	Services      []ServiceConfig      `toml:"services"`
	Professionals []ProfessionalConfig `toml:"professionals"`
}

type ServiceConfig struct {
	ID               string  `toml:"id"`
	Label            string  `toml:"label"`
	ProfessionalType string  `toml:"pro_type"`
	Price            float64 `toml:"price"`
	ExtraNote        string  `toml:"extra_note"`
	DurationMinutes  int     `toml:"duration_min"`
}

type ProfessionalConfig struct {
	ID        string `toml:"id"`
	Type      string `toml:"type"`
	Name      string `toml:"name"`
	Specialty string `toml:"specialty"`
}

// Load читает TOML файл, подставляет значения по умолчанию и проверяет результат
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoad, path, err)
	}
	return finalize(cfg)
}

// Parse то же, что Load, но из строки
func Parse(data string) (*Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	return finalize(cfg)
}

// Default конфигурация для локального запуска без внешних зависимостей
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "vetestetica_booking",
		},
		Storage: StorageConfig{
			Backend: kv.BackendMemory,
			Postgres: PostgresConfig{
				Host:            "localhost",
				Port:            5432,
				SSLMode:         "disable",
				MaxOpenConns:    10,
				MaxIdleConns:    5,
				ConnMaxLifetime: 300,
				Table:           kv.DefaultTable,
			},
			Redis: RedisConfig{
				Address:  "localhost:6379",
				PoolSize: 10,
			},
		},
		Schedule: ScheduleConfig{
			WeekdayOpen:   "09:00",
			WeekdayClose:  "18:00",
			SaturdayOpen:  "09:00",
			SaturdayClose: "12:30",
		},
		Admin: AdminConfig{Username: "admin", Password: "1234"},
		Seed:  SeedConfig{Enabled: true},
	}
}

func finalize(cfg *Config) (*Config, error) {
	cfg.Storage.Backend = strings.ToLower(strings.TrimSpace(cfg.Storage.Backend))
	if len(cfg.Booking.PetTypes) == 0 {
		cfg.Booking.PetTypes = append([]string(nil), domain.DefaultPetTypes...)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет значения, которые нельзя исправить по умолчанию
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d", ErrInvalid, c.Server.HTTPPort)
	}

	switch c.Storage.Backend {
	case kv.BackendMemory:
	case kv.BackendPostgres:
		if c.Storage.Postgres.DBName == "" {
			return fmt.Errorf("%w: storage.postgres.dbname is required", ErrInvalid)
		}
	case kv.BackendRedis:
		if c.Storage.Redis.Address == "" {
			return fmt.Errorf("%w: storage.redis.address is required", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: storage.backend %q", ErrInvalid, c.Storage.Backend)
	}

	if c.Admin.Username == "" || c.Admin.Password == "" {
		return fmt.Errorf("%w: admin.username and admin.password are required", ErrInvalid)
	}

	if _, err := c.BuildSchedule(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := c.BuildCatalog(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// BuildSchedule конвертирует секцию [schedule] в domain.Schedule
func (c *Config) BuildSchedule() (domain.Schedule, error) {
	return domain.NewSchedule(
		types.TimeString(c.Schedule.WeekdayOpen),
		types.TimeString(c.Schedule.WeekdayClose),
		types.TimeString(c.Schedule.SaturdayOpen),
		types.TimeString(c.Schedule.SaturdayClose),
	)
}

// BuildCatalog собирает каталог; если услуги или специалисты не заданы, берутся встроенные
func (c *Config) BuildCatalog() (*domain.Catalog, error) {
	services := domain.DefaultServices()
	if len(c.Catalog.Services) > 0 {
		services = make([]domain.Service, 0, len(c.Catalog.Services))
		for _, s := range c.Catalog.Services {
			services = append(services, domain.Service{
				ID:               s.ID,
				Label:            s.Label,
				ProfessionalType: domain.ProfessionalType(s.ProfessionalType),
				Price:            s.Price,
				ExtraNote:        s.ExtraNote,
				DurationMinutes:  s.DurationMinutes,
			})
		}
	}

	pros := domain.DefaultProfessionals()
	if len(c.Catalog.Professionals) > 0 {
		pros = make([]domain.Professional, 0, len(c.Catalog.Professionals))
		for _, p := range c.Catalog.Professionals {
			pros = append(pros, domain.Professional{
				ID:        p.ID,
				Type:      domain.ProfessionalType(p.Type),
				Name:      p.Name,
				Specialty: p.Specialty,
			})
		}
	}

	return domain.NewCatalog(services, pros)
}
