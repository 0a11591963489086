package cmd

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config describes the optional configuration file. Values given via flags
// or environment take precedence over the file.
type Config struct {
	DAM struct {
		Address    string `yaml:"address"`
		AccountKey string `yaml:"account_key"`
		// yaml.v3 has no duration parsing, the timeout is set via flags or env only
		Timeout time.Duration `yaml:"-"`
	} `yaml:"dam"`
	P4 struct {
		Binary string `yaml:"binary"`
		Port   string `yaml:"port"`
		User   string `yaml:"user"`
	} `yaml:"p4"`
}

// ReadConfig reads and parses the yaml configuration file.
func ReadConfig(path string) (Config, error) {
	bts, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read configuration file: %w", err)
	}

	var cfg Config
	if err = yaml.Unmarshal(bts, &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	return cfg, nil
}

// assemble merges the configuration file, if any, with the values provided
// via flags and environment, the latter winning, and fills the defaults.
func assemble(confLocation string, dam DAMOpts, p4 P4Opts) (Config, error) {
	var cfg Config

	if confLocation != "" {
		var err error
		if cfg, err = ReadConfig(confLocation); err != nil {
			return Config{}, err
		}
	}

	if dam.Address != "" {
		cfg.DAM.Address = dam.Address
	}
	if dam.AccountKey != "" {
		cfg.DAM.AccountKey = dam.AccountKey
	}
	if dam.Timeout != 0 {
		cfg.DAM.Timeout = dam.Timeout
	}

	if p4.Binary != "" {
		cfg.P4.Binary = p4.Binary
	}
	if p4.Port != "" {
		cfg.P4.Port = p4.Port
	}
	if p4.User != "" {
		cfg.P4.User = p4.User
	}

	if cfg.DAM.Timeout == 0 {
		cfg.DAM.Timeout = 10 * time.Second
	}
	if cfg.P4.Binary == "" {
		cfg.P4.Binary = "p4"
	}

	return cfg, nil
}
