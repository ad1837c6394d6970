package config

import (
	"os"
	"path/filepath"
	"testing"
)

// writeConfigAndChdir drops a config.yaml into a temp dir and makes it the
// working directory for the test, so Load() picks it up.
func writeConfigAndChdir(t *testing.T, yamlContent string) {
	t.Helper()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	originalDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("failed to change directory: %v", err)
	}
	t.Cleanup(func() {
		os.Chdir(originalDir)
	})
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	writeConfigAndChdir(t, `
port: "8080"
env: "test"
ai:
  provider: "openai"
  llm_model: "gpt-4o-mini"
database:
  host: "db.example.com"
  database: "askdb_test"
`)

	os.Unsetenv("PGHOST")
	t.Setenv("PORT", "9090")
	t.Setenv("AI_LLM_MODEL", "gpt-4o")

	cfg, err := Load("test-version")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("expected Port=9090 (from env), got %s", cfg.Port)
	}
	if cfg.AI.LLMModel != "gpt-4o" {
		t.Errorf("expected LLMModel=gpt-4o (from env), got %s", cfg.AI.LLMModel)
	}
	if cfg.Version != "test-version" {
		t.Errorf("expected Version=test-version, got %s", cfg.Version)
	}

	// YAML value used where no env override exists
	if cfg.Database.Host != "db.example.com" {
		t.Errorf("expected Database.Host=db.example.com (from yaml), got %s", cfg.Database.Host)
	}
}

func TestLoad_SecretsComeFromEnvOnly(t *testing.T) {
	writeConfigAndChdir(t, `
env: "test"
ai:
  provider: "openai"
  llm_model: "gpt-4o-mini"
`)

	t.Setenv("AI_API_KEY", "sk-test-123")
	t.Setenv("PGPASSWORD", "hunter2")

	cfg, err := Load("dev")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.AI.APIKey != "sk-test-123" {
		t.Errorf("expected APIKey from env, got %q", cfg.AI.APIKey)
	}
	if cfg.Database.Password != "hunter2" {
		t.Errorf("expected Password from env, got %q", cfg.Database.Password)
	}
}

func TestLoad_RejectsUnknownProvider(t *testing.T) {
	writeConfigAndChdir(t, `
env: "test"
ai:
  provider: "cohere"
  llm_model: "command"
`)

	if _, err := Load("dev"); err == nil {
		t.Fatal("expected error for unsupported provider")
	}
}

func TestLoad_Defaults(t *testing.T) {
	writeConfigAndChdir(t, `
env: "test"
`)

	os.Unsetenv("AI_PROVIDER")
	os.Unsetenv("AI_LLM_MODEL")
	os.Unsetenv("PORT")

	cfg, err := Load("dev")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.AI.Provider != "openai" {
		t.Errorf("expected default provider openai, got %s", cfg.AI.Provider)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.Database.Enabled {
		t.Error("database should be disabled by default")
	}
}

func TestConnectionString(t *testing.T) {
	dc := DatabaseConfig{
		Host:     "localhost",
		Port:     5433,
		User:     "askdb",
		Password: "secret",
		Database: "askdb",
		SSLMode:  "disable",
	}

	got := dc.ConnectionString()
	want := "host=localhost port=5433 user=askdb password=secret dbname=askdb sslmode=disable"
	if got != want {
		t.Errorf("ConnectionString() = %q, want %q", got, want)
	}
}
