package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Database struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"database"`
}

type RabbitMQ struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	VHost    string `yaml:"vhost"`
}

type Redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type Processing struct {
	TickMS      int `yaml:"tick_ms"`
	MaxInFlight int `yaml:"max_in_flight"`
}

type Config struct {
	Database    Database   `yaml:"database"`
	RabbitMQ    RabbitMQ   `yaml:"rabbitmq"`
	Redis       Redis      `yaml:"redis"`
	Processing  Processing `yaml:"processing"`
	HistoryPath string     `yaml:"history_path"`
}

// Load reads the YAML config and applies defaults for optional sections.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.RabbitMQ.VHost == "" {
		c.RabbitMQ.VHost = "/"
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = "localhost:6379"
	}
	if c.Processing.TickMS <= 0 {
		c.Processing.TickMS = 800
	}
	if c.Processing.MaxInFlight <= 0 {
		c.Processing.MaxInFlight = 50
	}
	if c.HistoryPath == "" {
		c.HistoryPath = "order_history.txt"
	}
}

func (c *Config) validate() error {
	if c.Database.Host == "" {
		return errors.New("invalid config: missing database host")
	}
	if c.RabbitMQ.Host == "" {
		return errors.New("invalid config: missing rabbitmq host")
	}
	return nil
}

func (c *Config) Tick() time.Duration { return time.Duration(c.Processing.TickMS) * time.Millisecond }
