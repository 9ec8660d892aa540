// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = ".ordset.yaml"

type ValuesConfig struct {
	Numeric   bool `yaml:"numeric"`
	TrimSpace bool `yaml:"trim_space"`
}

type LoaderConfig struct {
	ShowProgress bool `yaml:"show_progress"`
}

type FilterConfig struct {
	BloomBits   uint `yaml:"bloom_bits"`
	BloomHashes uint `yaml:"bloom_hashes"`
}

type BrowserConfig struct {
	CacheMinutes int `yaml:"cache_minutes"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

type Config struct {
	Values  ValuesConfig  `yaml:"values"`
	Loader  LoaderConfig  `yaml:"loader"`
	Filter  FilterConfig  `yaml:"filter"`
	Browser BrowserConfig `yaml:"browser"`
	Log     LogConfig     `yaml:"log"`
}

var defaultConfig = Config{
	Values: ValuesConfig{
		Numeric:   false,
		TrimSpace: true,
	},
	Loader: LoaderConfig{
		ShowProgress: false,
	},
	Filter: FilterConfig{
		BloomBits:   1 << 16,
		BloomHashes: 4,
	},
	Browser: BrowserConfig{
		CacheMinutes: 10,
	},
	Log: LogConfig{
		Level: "info",
		File:  "",
	},
}

// LoadConfig reads ~/.ordset.yaml, falling back to the defaults when the
// file is missing or unreadable.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return newDefaultConfig(), nil
	}
	return loadConfigFile(configPath)
}

func loadConfigFile(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return newDefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return newDefaultConfig(), nil
	}

	// start from the defaults so a partial file only overrides what it sets
	config := newDefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return newDefaultConfig(), fmt.Errorf("invalid config %s: %w", configPath, err)
	}
	config.normalise()
	return config, nil
}

func newDefaultConfig() *Config {
	c := defaultConfig
	return &c
}

// replace unusable values with their defaults
func (c *Config) normalise() {
	if c.Filter.BloomBits == 0 {
		c.Filter.BloomBits = defaultConfig.Filter.BloomBits
	}
	if c.Filter.BloomHashes == 0 {
		c.Filter.BloomHashes = defaultConfig.Filter.BloomHashes
	}
	if c.Browser.CacheMinutes <= 0 {
		c.Browser.CacheMinutes = defaultConfig.Browser.CacheMinutes
	}
	if c.Log.Level == "" {
		c.Log.Level = defaultConfig.Log.Level
	}
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func writeDefaultConfigFile(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func displaySettings() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("Configuration file not found. Creating default configuration...\n\n")

		if err := writeDefaultConfigFile(configPath); err != nil {
			return err
		}
		fmt.Printf("Created default configuration at: %s\n\n", configPath)
	}

	config, err := loadConfigFile(configPath)
	if err != nil {
		return err
	}

	fmt.Printf("ordset configuration settings\n")
	fmt.Printf("=============================\n\n")

	if configExists {
		fmt.Printf("Config file: %s\n\n", configPath)
	} else {
		fmt.Printf("Config file: %s (newly created)\n\n", configPath)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	fmt.Printf("%sEffective settings:%s\n\n%s\n", Green, Reset, data)

	if config.Values.Numeric {
		fmt.Printf("Values are parsed as integers. To order input as text, edit %s:\n", configPath)
		fmt.Printf("   values:\n     numeric: false\n")
	} else {
		fmt.Printf("Values are ordered as text. To order input as integers, edit %s:\n", configPath)
		fmt.Printf("   values:\n     numeric: true\n")
	}
	return nil
}
