// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config resolves the effective configuration for one invocation from
// layered sources with a well-defined precedence order (highest to lowest):
//
//  1. Command-line flags
//  2. Environment variables
//  3. YAML configuration file
//  4. Built-in defaults
//
// The master key is only ever read from a flag or an environment variable;
// the config file may name the variable to read (key_env) but never holds the
// key itself. Resolution fails closed: if any required field is missing, the
// returned error enumerates every missing field, not just the first.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	cqerrors "github.com/sirseerhq/cosmos-query/internal/errors"
)

// Environment variables recognized during resolution.
const (
	EnvAccount   = "COSMOS_ACCOUNT"
	EnvDatabase  = "COSMOS_DATABASE"
	EnvContainer = "COSMOS_CONTAINER"
	EnvKey       = "COSMOS_DB_KEY"
	EnvHost      = "COSMOS_HOST"
)

// Flags holds the raw command-line values before resolution.
type Flags struct {
	Account   string
	Database  string
	Container string
	Key       string
	Query     string
	Host      string
	Output    string

	DisableCrossPartition bool

	Indent    int
	IndentSet bool
	Compact   bool

	// ConfigFile is an explicit config file path; empty means search the
	// standard locations.
	ConfigFile string
}

// Resolve merges flags, environment variables, and the optional config file
// into a validated Config. Required fields are account, database, container,
// key, and query; if any are missing the returned error is a
// *cqerrors.MissingConfigError listing all of them.
func Resolve(flags Flags) (*Config, error) {
	file, err := loadFileConfig(flags.ConfigFile)
	if err != nil {
		return nil, err
	}

	keyEnv := file.KeyEnv
	if keyEnv == "" {
		keyEnv = EnvKey
	}

	cfg := &Config{
		Account:   firstNonEmpty(flags.Account, os.Getenv(EnvAccount), file.Account),
		Database:  firstNonEmpty(flags.Database, os.Getenv(EnvDatabase), file.Database),
		Container: firstNonEmpty(flags.Container, os.Getenv(EnvContainer), file.Container),
		Key:       firstNonEmpty(flags.Key, os.Getenv(keyEnv)),
		Query:     flags.Query,
		Host:      firstNonEmpty(flags.Host, os.Getenv(EnvHost), file.Host),
		Output:    flags.Output,
	}

	var missing []string
	for _, field := range []struct {
		name  string
		value string
	}{
		{"account", cfg.Account},
		{"database", cfg.Database},
		{"container", cfg.Container},
		{"key", cfg.Key},
		{"query", cfg.Query},
	} {
		if field.value == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return nil, &cqerrors.MissingConfigError{Fields: missing}
	}

	// Explicit disable wins over the enabled default.
	cfg.CrossPartition = !flags.DisableCrossPartition

	switch {
	case flags.Compact:
		cfg.Compact = true
		cfg.Indent = 0
	case flags.IndentSet:
		if flags.Indent < 0 {
			return nil, fmt.Errorf("indent must be non-negative, got %d", flags.Indent)
		}
		cfg.Indent = flags.Indent
	case file.Indent != nil && *file.Indent >= 0:
		cfg.Indent = *file.Indent
	default:
		cfg.Indent = DefaultIndent
	}

	return cfg, nil
}

// loadFileConfig reads the YAML config file. If path is empty, the standard
// locations are searched:
//   - .cosmos-query.yaml (current directory)
//   - .cosmos-query.yml (current directory)
//   - ~/.cosmos-query/config.yaml
//   - ~/.cosmos-query/config.yml
//
// An explicit path that cannot be loaded is an error; absence of a file in
// the standard locations is not.
func loadFileConfig(path string) (*FileConfig, error) {
	cfg := DefaultFileConfig()

	if path != "" {
		if err := parseFileConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
		return cfg, nil
	}

	defaultPaths := []string{
		".cosmos-query.yaml",
		".cosmos-query.yml",
		filepath.Join(os.Getenv("HOME"), ".cosmos-query", "config.yaml"),
		filepath.Join(os.Getenv("HOME"), ".cosmos-query", "config.yml"),
	}

	for _, p := range defaultPaths {
		if _, err := os.Stat(p); err == nil {
			if err := parseFileConfig(p, cfg); err != nil {
				return nil, fmt.Errorf("failed to load config from %s: %w", p, err)
			}
			break
		}
	}

	return cfg, nil
}

// parseFileConfig reads and parses a YAML config file
func parseFileConfig(path string, cfg *FileConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
