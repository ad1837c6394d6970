package database

import (
	"testing"

	"github.com/askdb-ai/askdb-engine/pkg/config"
)

func testDatabaseConfig() *config.DatabaseConfig {
	return &config.DatabaseConfig{
		Host:     "db.internal",
		Port:     5433,
		User:     "askdb",
		Password: "secret",
		Database: "askdb",
		SSLMode:  "disable",
	}
}

func TestPoolConfigFrom(t *testing.T) {
	cfg := testDatabaseConfig()
	cfg.MaxConnections = 4

	poolConfig, err := poolConfigFrom(cfg)
	if err != nil {
		t.Fatalf("poolConfigFrom failed: %v", err)
	}

	if poolConfig.MaxConns != 4 {
		t.Errorf("MaxConns = %d, want 4", poolConfig.MaxConns)
	}
	if poolConfig.MaxConnLifetime != connMaxLifetime {
		t.Errorf("MaxConnLifetime = %v, want %v", poolConfig.MaxConnLifetime, connMaxLifetime)
	}
	if poolConfig.ConnConfig.Host != "db.internal" {
		t.Errorf("Host = %s, want db.internal", poolConfig.ConnConfig.Host)
	}
	if poolConfig.ConnConfig.Port != 5433 {
		t.Errorf("Port = %d, want 5433", poolConfig.ConnConfig.Port)
	}
}

func TestPoolConfigFromDefaultsMaxConns(t *testing.T) {
	poolConfig, err := poolConfigFrom(testDatabaseConfig())
	if err != nil {
		t.Fatalf("poolConfigFrom failed: %v", err)
	}

	if poolConfig.MaxConns != defaultMaxConns {
		t.Errorf("MaxConns = %d, want default %d", poolConfig.MaxConns, defaultMaxConns)
	}
}
