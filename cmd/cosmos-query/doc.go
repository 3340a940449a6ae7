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

// Package main implements the cosmos-query command-line interface.
// This tool runs a single SQL query against an Azure Cosmos DB container
// and prints the result set as a JSON array.
//
// The CLI supports:
//   - Target and credential from flags, environment variables, or a YAML
//     config file (flags win, then environment, then file)
//   - Customizable output destinations (stdout or file)
//   - Indented or compact JSON output
//   - Cross-partition queries by default, with an explicit disable
//   - Graceful error handling with appropriate exit codes
//
// Usage:
//
//	cosmos-query -q "SELECT * FROM c" [flags]
//
// Example:
//
//	export COSMOS_ACCOUNT=my-account
//	export COSMOS_DB_KEY=...
//	cosmos-query -d mydb -c mycontainer -q "SELECT * FROM c" --output items.json
//
// Exit codes:
//   - 0: Success
//   - 1: General error (configuration, output I/O)
//   - 2: Remote classification (authentication, access, not found, bad query)
//   - 3: Connection error
package main
