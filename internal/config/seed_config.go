package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type SeedOrderStatus struct {
	ID    int64  `yaml:"id"`
	Title string `yaml:"title"`
}

type SeedConfig struct {
	OrderStatuses []SeedOrderStatus `yaml:"order_statuses"`
}

func LoadSeedConfig(path string) (*SeedConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cf SeedConfig
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}
	return &cf, nil
}
