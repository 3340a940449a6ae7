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

// Package config types define the configuration structures used throughout
// cosmos-query. These types represent settings that can be loaded from YAML
// configuration files, environment variables, or command-line flags.
package config

// DefaultIndent is the indentation width used when neither --indent nor
// --compact is given.
const DefaultIndent = 4

// Config is the fully resolved configuration for one invocation. It is
// constructed once by Resolve and immutable thereafter.
type Config struct {
	// Target and credential.
	Account   string
	Database  string
	Container string
	Key       string

	// Query text, forwarded to the service verbatim.
	Query string

	// Host overrides endpoint synthesis when non-empty, e.g. to target an
	// emulator or an alternate region.
	Host string

	// CrossPartition is the query scoping hint. Defaults to true; an explicit
	// disable always wins.
	CrossPartition bool

	// Output is the file path for results; empty means stdout.
	Output string

	// Formatting. Compact forces Indent to zero.
	Indent  int
	Compact bool
}

// FileConfig is the optional YAML configuration file. It can pre-set the
// target identifiers and formatting defaults, and can name the environment
// variable that holds the master key. The key itself is never read from the
// file.
type FileConfig struct {
	Account   string `yaml:"account"`
	Database  string `yaml:"database"`
	Container string `yaml:"container"`
	Host      string `yaml:"host"`
	KeyEnv    string `yaml:"key_env"`
	Indent    *int   `yaml:"indent"`
}

// DefaultFileConfig returns the file configuration used when no config file
// is found.
func DefaultFileConfig() *FileConfig {
	return &FileConfig{
		KeyEnv: EnvKey,
	}
}
