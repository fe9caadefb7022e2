package configs

import (
	"os"
	"path/filepath"
	"testing"

	"ProjectAdminAI/app/clients"
)

const sampleYAML = `
assistant:
  client_id: client01
  sites_api: https://portal.example.com
  portal_url: https://portal.example.com/sites
  db_path: ${TEST_DB_PATH}
search:
  enabled: true
  host: localhost
  port: 6334
clients:
  - type: console
    enabled: true
  - type: discord
    enabled: false
    config:
      channel_id: "123"
`

func TestLoadConfig(t *testing.T) {
	t.Setenv("TEST_DB_PATH", "/tmp/context.db")

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	if cfg.Assistant.ClientID != "client01" {
		t.Errorf("expected client_id client01, got %q", cfg.Assistant.ClientID)
	}
	if cfg.Assistant.DBPath != "/tmp/context.db" {
		t.Errorf("expected env-expanded db_path, got %q", cfg.Assistant.DBPath)
	}
	if !cfg.Search.Enabled || cfg.Search.Port != 6334 {
		t.Errorf("unexpected search config: %+v", cfg.Search)
	}
	if len(cfg.Clients) != 2 {
		t.Fatalf("expected 2 client entries, got %d", len(cfg.Clients))
	}
	if cfg.Clients[1].Config["channel_id"] != "123" {
		t.Errorf("expected discord channel_id 123, got %q", cfg.Clients[1].Config["channel_id"])
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidateRejectsBadConfig(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
	}{
		{"missing client_id", Config{Assistant: AssistantConfig{SitesAPI: "https://x"}}},
		{"missing sites_api", Config{Assistant: AssistantConfig{ClientID: "client01"}}},
		{"client without type", Config{
			Assistant: AssistantConfig{ClientID: "client01", SitesAPI: "https://x"},
			Clients:   []clients.Config{{Enabled: true}},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}
