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

// Package endpoint derives the Cosmos DB connection URL from an account name.
package endpoint

import "fmt"

// Cosmos DB public cloud endpoint convention.
const (
	defaultDomain = "documents.azure.com"
	defaultPort   = 443
)

// Build returns the endpoint URL for the given account. An explicit override
// is returned unchanged, which allows targeting emulators or alternate
// regions. The account is assumed non-empty (guaranteed by config.Resolve).
func Build(account, override string) string {
	if override != "" {
		return override
	}
	return fmt.Sprintf("https://%s.%s:%d/", account, defaultDomain, defaultPort)
}
