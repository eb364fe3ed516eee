// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/rookie/pkg/board"
)

// File is the default location of the configuration file.
var File = filepath.Join(xdg.ConfigHome, "rookie", "config.yaml")

type Config struct {
	// Color enables ANSI colors in the text board.
	Color bool `yaml:"color"`

	// StrictKnight enables the exact L-shape knight rule.
	StrictKnight bool `yaml:"strict-knight"`

	// SVG is a file the board is written to after every move.
	SVG string `yaml:"svg,omitempty"`

	// Position is a custom starting layout, see board.Parse.
	Position string `yaml:"position,omitempty"`

	LogLevel string `yaml:"log-level,omitempty"`
}

// Default returns the configuration used when nothing else is provided.
func Default() *Config {
	return &Config{
		Color:    true,
		LogLevel: "info",
	}
}

// Load builds the configuration from the defaults, the YAML file at the
// given path (or File if empty) and ROOKIE_* environment variables, in that
// order. A .env file in the working directory is loaded into the
// environment first. A missing configuration file is not an error.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = File
	}

	if err := cfg.loadFile(path); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	if err := cfg.loadEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Check(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) loadFile(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	logrus.WithField("file", path).Debug("Loading configuration file")
	if err := yaml.Unmarshal(file, cfg); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}

	return nil
}

func (cfg *Config) loadEnv() error {
	if v := strings.TrimSpace(os.Getenv("ROOKIE_COLOR")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("ROOKIE_COLOR: %w", err)
		}
		cfg.Color = b
	}
	if v := strings.TrimSpace(os.Getenv("ROOKIE_STRICT_KNIGHT")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("ROOKIE_STRICT_KNIGHT: %w", err)
		}
		cfg.StrictKnight = b
	}
	if v := strings.TrimSpace(os.Getenv("ROOKIE_SVG")); v != "" {
		cfg.SVG = v
	}
	if v := strings.TrimSpace(os.Getenv("ROOKIE_POSITION")); v != "" {
		cfg.Position = v
	}
	if v := strings.TrimSpace(os.Getenv("ROOKIE_LOG_LEVEL")); v != "" {
		cfg.LogLevel = v
	}

	return nil
}

// Check reports configuration values which can't be used.
func (cfg *Config) Check() error {
	if cfg.Position != "" {
		if _, err := board.Parse(cfg.Position); err != nil {
			return fmt.Errorf("position: %w", err)
		}
	}

	if cfg.LogLevel != "" {
		if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
			return fmt.Errorf("log-level: %w", err)
		}
	}

	return nil
}

// Board returns the starting board described by the configuration.
func (cfg *Config) Board() (*board.Board, error) {
	if cfg.Position == "" {
		return board.New(), nil
	}

	return board.Parse(cfg.Position)
}
