package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
database:
  host: db.local
  port: 5432
  user: foodflex
  password: secret
  database: foodflex

rabbitmq:
  host: mq.local
  port: 5672
  user: guest
  password: guest

processing:
  tick_ms: 100
  max_in_flight: 8
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Database.Host != "db.local" || cfg.Database.Port != 5432 {
		t.Errorf("database config: %+v", cfg.Database)
	}
	if cfg.RabbitMQ.VHost != "/" {
		t.Errorf("vhost default = %q, want /", cfg.RabbitMQ.VHost)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Errorf("redis default = %q", cfg.Redis.Addr)
	}
	if cfg.Tick() != 100*time.Millisecond {
		t.Errorf("tick = %v, want 100ms", cfg.Tick())
	}
	if cfg.Processing.MaxInFlight != 8 {
		t.Errorf("max in flight = %d, want 8", cfg.Processing.MaxInFlight)
	}
	if cfg.HistoryPath != "order_history.txt" {
		t.Errorf("history path default = %q", cfg.HistoryPath)
	}
}

func TestLoadDefaultsProcessing(t *testing.T) {
	path := writeConfig(t, `
database:
  host: db.local
rabbitmq:
  host: mq.local
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Tick() != 800*time.Millisecond {
		t.Errorf("tick default = %v, want 800ms", cfg.Tick())
	}
	if cfg.Processing.MaxInFlight != 50 {
		t.Errorf("max in flight default = %d, want 50", cfg.Processing.MaxInFlight)
	}
}

func TestLoadRejectsMissingHosts(t *testing.T) {
	path := writeConfig(t, `
rabbitmq:
  host: mq.local
`)
	if _, err := Load(path); err == nil {
		t.Error("Load accepted config without database host")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load accepted a missing file")
	}
}
