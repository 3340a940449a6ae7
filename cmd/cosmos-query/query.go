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
	"io"

	"github.com/spf13/cobra"

	"github.com/sirseerhq/cosmos-query/internal/config"
	"github.com/sirseerhq/cosmos-query/internal/cosmos"
	"github.com/sirseerhq/cosmos-query/internal/endpoint"
	"github.com/sirseerhq/cosmos-query/internal/output"
	"github.com/sirseerhq/cosmos-query/internal/status"
)

// connectFunc opens the Cosmos client; tests swap in a mock-backed factory.
type connectFunc func(host, key string, opts cosmos.Options) (cosmos.Client, error)

func azureConnect(host, key string, opts cosmos.Options) (cosmos.Client, error) {
	return cosmos.NewClient(host, key, opts)
}

// newRootCommand builds the root command. The tool is single-purpose, so the
// root command runs the query directly instead of dispatching to subcommands.
func newRootCommand() *cobra.Command {
	var (
		flags config.Flags
		quiet bool
	)

	cmd := &cobra.Command{
		Use:   "cosmos-query",
		Short: "Query Azure Cosmos DB containers from the command line",
		Long: `cosmos-query authenticates against an Azure Cosmos DB account, runs a single
SQL query against one container, and prints the result set as JSON.

The target and credential can be provided via flags, environment variables
(COSMOS_ACCOUNT, COSMOS_DATABASE, COSMOS_CONTAINER, COSMOS_DB_KEY), or a
.cosmos-query.yaml configuration file. Flags win over the environment, which
wins over the file.`,
		Version:       version,
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // We'll handle error printing ourselves
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.IndentSet = cmd.Flags().Changed("indent")

			cfg, err := config.Resolve(flags)
			if err != nil {
				return err
			}

			reporter := status.NewConsole(cmd.ErrOrStderr(), quiet)
			return runQuery(cmd.Context(), cfg, azureConnect, reporter, cmd.OutOrStdout())
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.Account, "account", "a", "", "Cosmos DB account name (or COSMOS_ACCOUNT)")
	f.StringVarP(&flags.Database, "database", "d", "", "Database ID (or COSMOS_DATABASE)")
	f.StringVarP(&flags.Container, "container", "c", "", "Container ID (or COSMOS_CONTAINER)")
	f.StringVarP(&flags.Key, "key", "k", "", "Cosmos DB master key (or COSMOS_DB_KEY)")
	f.StringVarP(&flags.Query, "query", "q", "", "SQL query to execute")
	f.StringVar(&flags.Host, "host", "", "Endpoint URL override, e.g. an emulator (or COSMOS_HOST)")
	f.StringVarP(&flags.Output, "output", "o", "", "Write results to this file instead of stdout")
	f.IntVar(&flags.Indent, "indent", config.DefaultIndent, "Indentation width of the JSON output")
	f.BoolVar(&flags.Compact, "compact", false, "Emit compact JSON (overrides --indent)")
	f.BoolVar(&flags.DisableCrossPartition, "disable-cross-partition", false, "Restrict the query to a single partition")
	f.BoolVar(&quiet, "quiet", false, "Suppress progress output")
	f.StringVar(&flags.ConfigFile, "config", "", "Config file path (default: .cosmos-query.yaml)")

	return cmd
}

// runQuery executes the pipeline: build the endpoint, open the client, run
// the query, render the results.
func runQuery(ctx context.Context, cfg *config.Config, connect connectFunc, reporter status.Reporter, stdout io.Writer) error {
	host := endpoint.Build(cfg.Account, cfg.Host)

	reporter.Connecting(host)
	client, err := connect(host, cfg.Key, cosmos.Options{CrossPartition: cfg.CrossPartition})
	if err != nil {
		return err
	}
	reporter.Connected()

	result, err := cosmos.NewExecutor(client, reporter).Execute(ctx, cosmos.QueryRequest{
		Database:  cfg.Database,
		Container: cfg.Container,
		Query:     cfg.Query,
	})
	if err != nil {
		return err
	}

	reporter.RenderStarted(cfg.Output, len(result.Items))
	size, err := output.Write(result.Items, stdout, output.Options{
		File:    cfg.Output,
		Indent:  cfg.Indent,
		Compact: cfg.Compact,
	})
	if err != nil {
		reporter.RenderFailed(err)
		return err
	}
	reporter.RenderSucceeded(size)

	return nil
}
