package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"timesheet-bot/internal/model"
)

type Config struct {
	TelegramToken string
	DBPath        string
	Pdftotext     string
	Rates         model.Rates
	Workers       int
	QueueSize     int
}

// LoadConfig читает .env (если есть) и переменные окружения.
// Токен здесь не обязателен: его требует только бот, см. RequireToken.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	defaults := model.DefaultRates()
	cfg := &Config{
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		DBPath:        getEnv("DB_PATH", "timesheet-bot.db"),
		Pdftotext:     getEnv("PDFTOTEXT", "pdftotext"),
	}

	var err error
	if cfg.Rates.Day, err = getEnvFloat("DAY_RATE", defaults.Day); err != nil {
		return nil, err
	}
	if cfg.Rates.Night, err = getEnvFloat("NIGHT_RATE", defaults.Night); err != nil {
		return nil, err
	}
	if cfg.Rates.NightFromHour, err = getEnvInt("NIGHT_FROM_HOUR", defaults.NightFromHour); err != nil {
		return nil, err
	}
	if cfg.Workers, err = getEnvInt("WORKERS", 4); err != nil {
		return nil, err
	}
	if cfg.QueueSize, err = getEnvInt("QUEUE_SIZE", 32); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Rates.Day < 0 || c.Rates.Night < 0 {
		return fmt.Errorf("ставки не могут быть отрицательными: day=%v night=%v", c.Rates.Day, c.Rates.Night)
	}
	if c.Rates.NightFromHour < 0 || c.Rates.NightFromHour > 24 {
		return fmt.Errorf("NIGHT_FROM_HOUR вне диапазона 0..24: %d", c.Rates.NightFromHour)
	}
	if c.Workers < 1 {
		return fmt.Errorf("WORKERS должен быть >= 1: %d", c.Workers)
	}
	return nil
}

func (c *Config) RequireToken() error {
	if c.TelegramToken == "" {
		return ErrNoToken{}
	}
	return nil
}

type ErrNoToken struct{}

func (e ErrNoToken) Error() string {
	return "TELEGRAM_TOKEN не задан в окружении"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}

func getEnvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
