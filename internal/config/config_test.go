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

package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	cqerrors "github.com/sirseerhq/cosmos-query/internal/errors"
)

// clearEnv isolates the test from ambient COSMOS_* variables and any config
// file under the real home directory.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvAccount, EnvDatabase, EnvContainer, EnvKey, EnvHost} {
		t.Setenv(key, "")
	}
	t.Setenv("HOME", t.TempDir())
}

func baseFlags() Flags {
	return Flags{
		Account:   "acct1",
		Database:  "db1",
		Container: "cont1",
		Key:       "k",
		Query:     "SELECT * FROM c",
	}
}

func TestResolveDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Resolve(baseFlags())
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if !cfg.CrossPartition {
		t.Error("CrossPartition should default to true")
	}
	if cfg.Compact {
		t.Error("Compact should default to false")
	}
	if cfg.Indent != DefaultIndent {
		t.Errorf("Indent = %d, want %d", cfg.Indent, DefaultIndent)
	}
	if cfg.Host != "" {
		t.Errorf("Host = %q, want empty", cfg.Host)
	}
	if cfg.Output != "" {
		t.Errorf("Output = %q, want empty", cfg.Output)
	}
}

func TestResolvePrecedence(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvAccount, "env-account")
	t.Setenv(EnvDatabase, "env-db")

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	configContent := `
account: file-account
database: file-db
container: file-cont
`
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	flags := Flags{
		Account:    "flag-account",
		Key:        "k",
		Query:      "SELECT 1",
		ConfigFile: configPath,
	}

	cfg, err := Resolve(flags)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	// Flag beats env beats file.
	if cfg.Account != "flag-account" {
		t.Errorf("Account = %s, want flag-account", cfg.Account)
	}
	if cfg.Database != "env-db" {
		t.Errorf("Database = %s, want env-db", cfg.Database)
	}
	if cfg.Container != "file-cont" {
		t.Errorf("Container = %s, want file-cont", cfg.Container)
	}
}

func TestResolveMissingFields(t *testing.T) {
	tests := []struct {
		name  string
		flags Flags
		want  []string
	}{
		{
			name:  "everything missing",
			flags: Flags{},
			want:  []string{"account", "database", "container", "key", "query"},
		},
		{
			name: "account and key missing reports both",
			flags: Flags{
				Database:  "db1",
				Container: "cont1",
				Query:     "SELECT 1",
			},
			want: []string{"account", "key"},
		},
		{
			name: "only query missing",
			flags: Flags{
				Account:   "acct1",
				Database:  "db1",
				Container: "cont1",
				Key:       "k",
			},
			want: []string{"query"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)

			_, err := Resolve(tt.flags)
			if err == nil {
				t.Fatal("Resolve should fail")
			}

			var missing *cqerrors.MissingConfigError
			if !errors.As(err, &missing) {
				t.Fatalf("error = %v, want *MissingConfigError", err)
			}
			if !reflect.DeepEqual(missing.Fields, tt.want) {
				t.Errorf("Fields = %v, want %v", missing.Fields, tt.want)
			}
		})
	}
}

func TestResolveCrossPartition(t *testing.T) {
	clearEnv(t)

	flags := baseFlags()
	flags.DisableCrossPartition = true

	cfg, err := Resolve(flags)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if cfg.CrossPartition {
		t.Error("explicit disable must win over the enabled default")
	}
}

func TestResolveFormatting(t *testing.T) {
	t.Run("compact overrides indent", func(t *testing.T) {
		clearEnv(t)

		flags := baseFlags()
		flags.Compact = true
		flags.Indent = 8
		flags.IndentSet = true

		cfg, err := Resolve(flags)
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}
		if !cfg.Compact {
			t.Error("Compact should be set")
		}
		if cfg.Indent != 0 {
			t.Errorf("Indent = %d, want 0 when compact", cfg.Indent)
		}
	})

	t.Run("explicit indent", func(t *testing.T) {
		clearEnv(t)

		flags := baseFlags()
		flags.Indent = 2
		flags.IndentSet = true

		cfg, err := Resolve(flags)
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}
		if cfg.Indent != 2 {
			t.Errorf("Indent = %d, want 2", cfg.Indent)
		}
	})

	t.Run("negative indent rejected", func(t *testing.T) {
		clearEnv(t)

		flags := baseFlags()
		flags.Indent = -1
		flags.IndentSet = true

		if _, err := Resolve(flags); err == nil {
			t.Error("negative indent should fail resolution")
		}
	})

	t.Run("file indent applies when no flag", func(t *testing.T) {
		clearEnv(t)

		configPath := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(configPath, []byte("indent: 2\n"), 0o644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		flags := baseFlags()
		flags.ConfigFile = configPath

		cfg, err := Resolve(flags)
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}
		if cfg.Indent != 2 {
			t.Errorf("Indent = %d, want 2 from config file", cfg.Indent)
		}
	})
}

func TestResolveKeyEnvIndirection(t *testing.T) {
	clearEnv(t)
	t.Setenv("MY_COSMOS_SECRET", "indirect-key")

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("key_env: MY_COSMOS_SECRET\n"), 0o644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	flags := baseFlags()
	flags.Key = ""
	flags.ConfigFile = configPath

	cfg, err := Resolve(flags)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if cfg.Key != "indirect-key" {
		t.Errorf("Key = %q, want value of MY_COSMOS_SECRET", cfg.Key)
	}
}

func TestResolveConfigFileErrors(t *testing.T) {
	t.Run("explicit path missing", func(t *testing.T) {
		clearEnv(t)

		flags := baseFlags()
		flags.ConfigFile = filepath.Join(t.TempDir(), "does-not-exist.yaml")

		if _, err := Resolve(flags); err == nil {
			t.Error("missing explicit config file should fail")
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		clearEnv(t)

		configPath := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(configPath, []byte("account: [unclosed\n"), 0o644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		flags := baseFlags()
		flags.ConfigFile = configPath

		if _, err := Resolve(flags); err == nil {
			t.Error("invalid yaml should fail resolution")
		}
	})
}

func TestResolveHostOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvHost, "https://env-host:8081/")

	cfg, err := Resolve(baseFlags())
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if cfg.Host != "https://env-host:8081/" {
		t.Errorf("Host = %q, want env override", cfg.Host)
	}

	flags := baseFlags()
	flags.Host = "https://localhost:8081/"
	cfg, err = Resolve(flags)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if cfg.Host != "https://localhost:8081/" {
		t.Errorf("Host = %q, want flag override", cfg.Host)
	}
}
