package configs

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"ProjectAdminAI/app/clients"
)

type Config struct {
	Assistant AssistantConfig  `yaml:"assistant"`
	Search    SearchConfig     `yaml:"search,omitempty"`
	Clients   []clients.Config `yaml:"clients,omitempty"`
}

type AssistantConfig struct {
	ClientID  string `yaml:"client_id"`
	SitesAPI  string `yaml:"sites_api"`
	PortalURL string `yaml:"portal_url,omitempty"`
	Model     string `yaml:"model,omitempty"`
	EmbModel  string `yaml:"embeddings_model,omitempty"`
	DBPath    string `yaml:"db_path,omitempty"`
}

type SearchConfig struct {
	Enabled bool   `yaml:"enabled"`
	Host    string `yaml:"host,omitempty"`
	Port    int    `yaml:"port,omitempty"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read configs file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if err := c.Assistant.Validate(); err != nil {
		return fmt.Errorf("assistant: %w", err)
	}

	for _, clientCfg := range c.Clients {
		if clientCfg.Type == "" {
			return fmt.Errorf("client entry missing type")
		}
	}

	return nil
}

func (ac AssistantConfig) Validate() error {
	if ac.ClientID == "" {
		return fmt.Errorf("client_id cannot be empty")
	}

	if ac.SitesAPI == "" {
		return fmt.Errorf("sites_api cannot be empty")
	}

	return nil
}
