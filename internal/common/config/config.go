package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ============================================================
// Configuration
// ============================================================

// Порты сервисов по умолчанию; переопределяются полем port в YAML или PORT
const (
	GatewayPort = "3000"
	PlannerPort = "3001"
)

// Config - конфигурация шлюза и сервиса планировщика
type Config struct {
	Port         string `yaml:"port"`
	Environment  string `yaml:"env"`
	ReadTimeout  int    `yaml:"read_timeout"`
	WriteTimeout int    `yaml:"write_timeout"`

	DBPath                string  `yaml:"db_path"`
	PlannerURL            string  `yaml:"planner_url"`
	GridSize              int     `yaml:"grid_size"`
	MaxGridCells          int     `yaml:"max_grid_cells"`
	DefaultPixelsPerMeter float64 `yaml:"default_pixels_per_meter"`
}

func defaults(port string) *Config {
	return &Config{
		Port:                  port,
		Environment:           "development",
		ReadTimeout:           10,
		WriteTimeout:          10,
		DBPath:                "data/db/planner.db",
		PlannerURL:            "http://localhost:3001",
		GridSize:              20,
		MaxGridCells:          1000000,
		DefaultPixelsPerMeter: 10,
	}
}

// Load загружает конфигурацию: значения по умолчанию, затем YAML-файл из
// PLANNER_CONFIG (если задан), затем переменные окружения.
// defaultPort используется, только если порт не задан ни в файле, ни в PORT.
func Load(defaultPort string) (*Config, error) {
	return LoadFile(os.Getenv("PLANNER_CONFIG"), defaultPort)
}

// LoadFile - то же, что Load, но с явным путем к YAML; пустой путь пропускает файл
func LoadFile(path, defaultPort string) (*Config, error) {
	cfg := defaults(defaultPort)

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.Environment = getEnv("ENV", cfg.Environment)
	cfg.ReadTimeout = getEnvAsInt("READ_TIMEOUT", cfg.ReadTimeout)
	cfg.WriteTimeout = getEnvAsInt("WRITE_TIMEOUT", cfg.WriteTimeout)
	cfg.DBPath = getEnv("PLANNER_DB_PATH", cfg.DBPath)
	cfg.PlannerURL = getEnv("PLANNER_URL", cfg.PlannerURL)
	cfg.GridSize = getEnvAsInt("GRID_SIZE", cfg.GridSize)
	cfg.MaxGridCells = getEnvAsInt("MAX_GRID_CELLS", cfg.MaxGridCells)
	cfg.DefaultPixelsPerMeter = getEnvAsFloat("DEFAULT_PIXELS_PER_METER", cfg.DefaultPixelsPerMeter)

	if cfg.GridSize <= 0 {
		return nil, fmt.Errorf("grid size must be positive, got %d", cfg.GridSize)
	}
	if cfg.MaxGridCells <= 0 {
		return nil, fmt.Errorf("max grid cells must be positive, got %d", cfg.MaxGridCells)
	}
	if cfg.DefaultPixelsPerMeter <= 0 {
		return nil, fmt.Errorf("default pixels per meter must be positive, got %v", cfg.DefaultPixelsPerMeter)
	}
	return cfg, nil
}

// getEnv получает значение переменной окружения или значение по умолчанию
func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

// getEnvAsInt получает целочисленное значение переменной окружения
func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsFloat(key string, defaultVal float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultVal
}
