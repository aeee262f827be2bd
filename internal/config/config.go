package config

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed config.default.yaml
var defaultConfigYAML []byte

type Config struct {
	HTTPAddr string `yaml:"http_addr"`

	Tick    Tick    `yaml:"tick"`
	History History `yaml:"history"`
	Log     Log     `yaml:"log"`
}

type Tick struct {
	Period time.Duration `yaml:"period"`
	Layout string        `yaml:"layout"`
}

type History struct {
	TickSize int `yaml:"tick_size"`
	LogSize  int `yaml:"log_size"`
}

type Log struct {
	File string `yaml:"file"`
}

func (c *Config) init() {
	if c.Tick.Period <= 0 {
		c.Tick.Period = time.Second
	}
	if c.Tick.Layout == "" {
		c.Tick.Layout = "15:04:05"
	}
}

func DefaultConfig() *Config {
	cfg := defaultConfig()
	cfg.init()
	return cfg
}

func LoadConfig(file string) (*Config, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	cfg := defaultConfig()
	if err = yaml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.init()
	return cfg, nil
}

func defaultConfig() *Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultConfigYAML, &cfg); err != nil {
		panic(fmt.Errorf("failed to load default config: %w", err))
	}
	return &cfg
}
