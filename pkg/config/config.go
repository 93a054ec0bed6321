package config

import (
	"errors"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env string

	School  SchoolConfig
	Store   StoreConfig
	Log     LogConfig
	Exports ExportsConfig
}

// SchoolConfig carries institutional identity used in exports and logs.
type SchoolConfig struct {
	Name         string
	AcademicYear int
}

// StoreConfig locates the serialized portal document.
type StoreConfig struct {
	Path string
}

type LogConfig struct {
	Level  string
	Format string
}

// ExportsConfig controls where generated CSV and PDF files land.
type ExportsConfig struct {
	Dir string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")

	cfg.School = SchoolConfig{
		Name:         v.GetString("SCHOOL_NAME"),
		AcademicYear: v.GetInt("SCHOOL_ACADEMIC_YEAR"),
	}

	cfg.Store = StoreConfig{
		Path: v.GetString("STORE_PATH"),
	}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Exports = ExportsConfig{
		Dir: v.GetString("EXPORTS_DIR"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)

	v.SetDefault("SCHOOL_NAME", "I.E. San Martín de Porres")
	v.SetDefault("SCHOOL_ACADEMIC_YEAR", 2025)

	v.SetDefault("STORE_PATH", "./data/portal.json")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("EXPORTS_DIR", "./exports")
}
