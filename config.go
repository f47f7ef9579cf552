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

const configFileName = ".avlmap.yaml"

type DisplayConfig struct {
	ShowBalance bool `yaml:"show_balance"`
	ShowValues  bool `yaml:"show_values"`
	Color       bool `yaml:"color"`
}

type StressConfig struct {
	Count         int    `yaml:"count"`
	Seed          uint64 `yaml:"seed"`
	Order         string `yaml:"order"`
	ValidateEvery int    `yaml:"validate_every"`
	ShowProgress  bool   `yaml:"show_progress"`
}

type Config struct {
	Display DisplayConfig `yaml:"display"`
	Stress  StressConfig  `yaml:"stress"`
}

var defaultConfig = Config{
	Display: DisplayConfig{
		ShowBalance: true,
		ShowValues:  false,
		Color:       true,
	},
	Stress: StressConfig{
		Count:         10000,
		Seed:          1,
		Order:         OrderRandom,
		ValidateEvery: 1,
		ShowProgress:  true,
	},
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadConfig reads ~/.avlmap.yaml. A missing or unreadable file yields the
// defaults; fields absent from the file keep their default values.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		config := defaultConfig
		return &config, nil
	}
	return loadConfigFrom(configPath)
}

func loadConfigFrom(configPath string) (*Config, error) {
	config := defaultConfig

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &config, nil
		}
		return &config, fmt.Errorf("failed to read config file: %v", err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		fallback := defaultConfig
		return &fallback, fmt.Errorf("failed to parse config file %s: %v", configPath, err)
	}

	return &config, nil
}

func writeConfigFile(configPath string, config *Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %v", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

func createDefaultConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %v", err)
	}
	return writeConfigFile(configPath, &defaultConfig)
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("❌ Failed to get config path: %v\n", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := LoadConfig()
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return
	}

	fmt.Printf("🔧 avlmap Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Printf("📊 Current settings:\n\n")

	fmt.Printf("🌳 %sDisplay:%s\n", Green, Reset)
	fmt.Printf("  • %sshow_balance%s: %t\n", Green, Reset, config.Display.ShowBalance)
	fmt.Printf("  • %sshow_values%s: %t\n", Green, Reset, config.Display.ShowValues)
	fmt.Printf("  • %scolor%s: %t\n\n", Green, Reset, config.Display.Color)

	fmt.Printf("🏋️ %sStress:%s\n", Green, Reset)
	fmt.Printf("  • %scount%s: %d\n", Green, Reset, config.Stress.Count)
	fmt.Printf("  • %sseed%s: %d\n", Green, Reset, config.Stress.Seed)
	fmt.Printf("  • %sorder%s: %s\n", Green, Reset, config.Stress.Order)
	fmt.Printf("  • %svalidate_every%s: %d\n", Green, Reset, config.Stress.ValidateEvery)
	fmt.Printf("  • %sshow_progress%s: %t\n\n", Green, Reset, config.Stress.ShowProgress)

	fmt.Printf("💡 Command-line flags override these values for a single run.\n")
}
