// Package config loads server configuration from defaults, an optional YAML
// file and environment variables, in that order.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config defines server configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	DB     DBConfig     `yaml:"db"`
	Log    LogConfig    `yaml:"log"`
	User   UserConfig   `yaml:"user"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	// Transport selects "stdio" or "http".
	Transport string `yaml:"transport"`
}

type DBConfig struct {
	Path string `yaml:"path"`
	// Seed loads the demo dataset into empty collections at startup.
	Seed bool `yaml:"seed"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// UserConfig identifies the workspace user. Projects lists granted project
// ids; "ALL" grants everything.
type UserConfig struct {
	Name     string   `yaml:"name"`
	Role     string   `yaml:"role"`
	Projects []string `yaml:"projects"`
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host:      "0.0.0.0",
			Port:      8080,
			Transport: "stdio",
		},
		DB: DBConfig{
			Path: "buildpro.db",
			Seed: true,
		},
		Log: LogConfig{
			Level: "info",
		},
		User: UserConfig{
			Name: "John Anderson",
			Role: "super_admin",
		},
	}

	if path := os.Getenv("BUILDPRO_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("BUILDPRO_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("BUILDPRO_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid BUILDPRO_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if transport := os.Getenv("BUILDPRO_TRANSPORT"); transport != "" {
		cfg.Server.Transport = transport
	}
	if dbPath := os.Getenv("BUILDPRO_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if seedStr := os.Getenv("BUILDPRO_DB_SEED"); seedStr != "" {
		seed, err := strconv.ParseBool(seedStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid BUILDPRO_DB_SEED: %w", err)
		}
		cfg.DB.Seed = seed
	}
	if level := os.Getenv("BUILDPRO_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if name := os.Getenv("BUILDPRO_USER_NAME"); name != "" {
		cfg.User.Name = name
	}
	if role := os.Getenv("BUILDPRO_USER_ROLE"); role != "" {
		cfg.User.Role = role
	}

	if cfg.Server.Transport != "stdio" && cfg.Server.Transport != "http" {
		return Config{}, fmt.Errorf("invalid transport %q: must be stdio or http", cfg.Server.Transport)
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
