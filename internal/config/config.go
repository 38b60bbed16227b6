package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const DefaultPort = 8790

type Config struct {
	ListenAddress string `yaml:"listen_address"`
	// SettleMillis is the CPU sampling window; usage deltas need two
	// samples this far apart to mean anything.
	SettleMillis int    `yaml:"settle_millis"`
	TopProcesses int    `yaml:"top_processes"`
	PublicIPURL  string `yaml:"public_ip_url"`
}

func Default() *Config {
	return &Config{
		ListenAddress: fmt.Sprintf(":%d", DefaultPort),
		SettleMillis:  200,
		TopProcesses:  10,
		PublicIPURL:   "https://ipinfo.io/json",
	}
}

func Load(filename string) (*Config, error) {
	file, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(file, &cfg); err != nil {
		return nil, err
	}

	defaults := Default()
	if cfg.ListenAddress == "" {
		cfg.ListenAddress = defaults.ListenAddress
	}
	if cfg.SettleMillis <= 0 {
		cfg.SettleMillis = defaults.SettleMillis
	}
	if cfg.TopProcesses <= 0 {
		cfg.TopProcesses = defaults.TopProcesses
	}
	if cfg.PublicIPURL == "" {
		cfg.PublicIPURL = defaults.PublicIPURL
	}

	return &cfg, nil
}

func (c *Config) Settle() time.Duration {
	return time.Duration(c.SettleMillis) * time.Millisecond
}
