package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-StorefrontService/internal/domain"
	"github.com/m04kA/SMC-StorefrontService/pkg/types"
)

// Config полная конфигурация сервиса, загружаемая из config.toml
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Checkout CheckoutConfig `toml:"checkout"`
	Schedule ScheduleConfig `toml:"schedule"`
}

// ServerConfig настройки HTTP сервера. Таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к postgres
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

// DSN собирает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логгера
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки экспорта prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CheckoutConfig ценовые настройки оформления заказа
type CheckoutConfig struct {
	// DeliveryFee фиксированная стоимость курьерской доставки десятичной
	// строкой, например "5.00". Самовывоз бесплатен
	DeliveryFee string `toml:"delivery_fee"`
}

// DeliveryFeeAmount парсит настроенную стоимость. Пустая строка - ноль
func (c CheckoutConfig) DeliveryFeeAmount() (decimal.Decimal, error) {
	if c.DeliveryFee == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(c.DeliveryFee)
}

// ScheduleConfig конфигурация рабочего расписания магазина в том виде,
// в каком она записана в config.toml
type ScheduleConfig struct {
	StartTime           string         `toml:"start_time"`
	EndTime             string         `toml:"end_time"`
	SlotDurationMinutes int            `toml:"slot_duration_minutes"`
	MinLeadTimeHours    int            `toml:"min_lead_time_hours"`
	HorizonDays         int            `toml:"horizon_days"`
	DayExceptions       []DayException `toml:"day_exceptions"`
}

// DayException одна запись переопределения для дня недели
type DayException struct {
	DayOfWeek       string `toml:"day_of_week"`
	IsClosed        bool   `toml:"is_closed"`
	CustomStartTime string `toml:"custom_start_time"`
	CustomEndTime   string `toml:"custom_end_time"`
}

// Load читает и декодирует TOML конфигурацию по указанному пути
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}
	if cfg.Schedule.HorizonDays <= 0 {
		cfg.Schedule.HorizonDays = domain.DefaultHorizonDays
	}
	return &cfg, nil
}

// ToDomain преобразует секцию расписания в доменную конфигурацию
// Дубликаты исключений по дню недели разрешаются по принципу "последний
// выигрывает"; каждый дубликат и каждое окно, не кратное длительности слота,
// возвращается как предупреждение для логирования вызывающей стороной
// Жесткие нарушения приводят к ошибке загрузки
func (s ScheduleConfig) ToDomain() (*domain.ScheduleConfig, []string, error) {
	var warnings []string

	start, err := types.NewTimeStringFromString(s.StartTime)
	if err != nil {
		return nil, nil, fmt.Errorf("config: schedule start_time: %w", err)
	}
	end, err := types.NewTimeStringFromString(s.EndTime)
	if err != nil {
		return nil, nil, fmt.Errorf("config: schedule end_time: %w", err)
	}

	cfg := &domain.ScheduleConfig{
		DefaultWindow:       domain.TimeWindow{StartTime: start, EndTime: end},
		SlotDurationMinutes: s.SlotDurationMinutes,
		MinLeadTimeHours:    s.MinLeadTimeHours,
		DayExceptions:       make(map[time.Weekday]domain.DayException, len(s.DayExceptions)),
	}

	for _, exc := range s.DayExceptions {
		day, err := parseWeekday(exc.DayOfWeek)
		if err != nil {
			return nil, nil, fmt.Errorf("config: schedule day_exceptions: %w", err)
		}

		if _, dup := cfg.DayExceptions[day]; dup {
			warnings = append(warnings,
				fmt.Sprintf("duplicate exception for %s: last-declared entry wins", day))
		}

		domainExc := domain.DayException{Weekday: day, IsClosed: exc.IsClosed}
		if !exc.IsClosed && exc.CustomStartTime != "" && exc.CustomEndTime != "" {
			cs, err := types.NewTimeStringFromString(exc.CustomStartTime)
			if err != nil {
				return nil, nil, fmt.Errorf("config: %s custom_start_time: %w", day, err)
			}
			ce, err := types.NewTimeStringFromString(exc.CustomEndTime)
			if err != nil {
				return nil, nil, fmt.Errorf("config: %s custom_end_time: %w", day, err)
			}
			domainExc.Window = &domain.TimeWindow{StartTime: cs, EndTime: ce}
		}
		cfg.DayExceptions[day] = domainExc
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	if !cfg.IsEvenlyDivisible(cfg.DefaultWindow) {
		warnings = append(warnings,
			"default window is not an exact multiple of the slot duration: trailing partial slot is truncated")
	}
	for day, exc := range cfg.DayExceptions {
		if exc.Window != nil && !cfg.IsEvenlyDivisible(*exc.Window) {
			warnings = append(warnings,
				fmt.Sprintf("%s window is not an exact multiple of the slot duration: trailing partial slot is truncated", day))
		}
	}

	return cfg, warnings, nil
}

func parseWeekday(name string) (time.Weekday, error) {
	for day := time.Sunday; day <= time.Saturday; day++ {
		if day.String() == name {
			return day, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", name)
}
