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

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"github.com/sirseerhq/cosmos-query/internal/config"
	cqerrors "github.com/sirseerhq/cosmos-query/internal/errors"
)

var version = "dev"

func main() {
	// A .env file in the working directory supplements the environment;
	// its absence is not an error.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := newRootCommand()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		printError(err)
		os.Exit(mapErrorToExitCode(err))
	}
}

// printError reports the failure once at the boundary. Missing-configuration
// errors are followed by a remediation list covering every missing field.
func printError(err error) {
	_, _ = color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)

	var missing *cqerrors.MissingConfigError
	if errors.As(err, &missing) {
		printRemediation(missing.Fields)
	}
}

func printRemediation(fields []string) {
	hints := map[string]struct{ flag, env string }{
		"account":   {"--account", config.EnvAccount},
		"database":  {"--database", config.EnvDatabase},
		"container": {"--container", config.EnvContainer},
		"key":       {"--key", config.EnvKey},
		"query":     {"--query", ""},
	}

	yellow := color.New(color.FgYellow)
	fmt.Fprintln(os.Stderr, "\nProvide the missing values via flags or environment variables:")
	for _, field := range fields {
		hint, ok := hints[field]
		if !ok {
			continue
		}
		if hint.env != "" {
			_, _ = yellow.Fprintf(os.Stderr, "  %-10s %s or %s\n", field, hint.flag, hint.env)
		} else {
			_, _ = yellow.Fprintf(os.Stderr, "  %-10s %s\n", field, hint.flag)
		}
	}
}

// mapErrorToExitCode maps classified errors to appropriate exit codes
func mapErrorToExitCode(err error) int {
	if err == nil {
		return 0
	}

	if errors.Is(err, cqerrors.ErrUnauthorized) ||
		errors.Is(err, cqerrors.ErrForbidden) ||
		errors.Is(err, cqerrors.ErrNotFound) ||
		errors.Is(err, cqerrors.ErrBadRequest) {
		return 2 // Remote classification errors
	}

	if errors.Is(err, cqerrors.ErrConnection) {
		return 3 // Connection errors
	}

	return 1 // General error
}
