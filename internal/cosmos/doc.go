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

// Package cosmos owns the query-execution pipeline against Azure Cosmos DB.
//
// The Executor drives one invocation end to end: resolve the database,
// resolve the container, submit the query, and eagerly materialize the full
// result set, measuring wall-clock time around the query step only. Every
// failure is classified into the application error taxonomy before it leaves
// this package, so callers never inspect provider error text.
//
// The Client interface separates orchestration from transport. AzureClient is
// the production implementation on top of the azcosmos SDK; MockClient serves
// tests. The client is created for a single invocation and discarded at
// process exit — there is no pooling or session reuse across runs.
package cosmos
