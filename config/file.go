package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig: необязательный TOML-файл; заданные в нём ключи перекрывают окружение.
//
//	db_path = "shifts.db"
//
//	[rates]
//	day = 300
//	night = 400
//	night_from_hour = 22
type FileConfig struct {
	DBPath    *string     `toml:"db_path"`
	Pdftotext *string     `toml:"pdftotext"`
	Workers   *int        `toml:"workers"`
	Rates     RatesConfig `toml:"rates"`
}

type RatesConfig struct {
	Day           *float64 `toml:"day"`
	Night         *float64 `toml:"night"`
	NightFromHour *int     `toml:"night_from_hour"`
}

// LoadFile читает TOML-файл. Отсутствующий файл не считается ошибкой.
func LoadFile(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var fc FileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return fc, nil
}

// Apply накладывает заданные ключи файла и заново проверяет конфиг.
func (c *Config) Apply(fc FileConfig) error {
	if fc.DBPath != nil {
		c.DBPath = *fc.DBPath
	}
	if fc.Pdftotext != nil {
		c.Pdftotext = *fc.Pdftotext
	}
	if fc.Workers != nil {
		c.Workers = *fc.Workers
	}
	if fc.Rates.Day != nil {
		c.Rates.Day = *fc.Rates.Day
	}
	if fc.Rates.Night != nil {
		c.Rates.Night = *fc.Rates.Night
	}
	if fc.Rates.NightFromHour != nil {
		c.Rates.NightFromHour = *fc.Rates.NightFromHour
	}
	return c.Validate()
}
