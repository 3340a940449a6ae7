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

package cosmos

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sirseerhq/cosmos-query/internal/status"
)

// Executor runs one query invocation against a Client, emitting lifecycle
// events to the status reporter along the way. Each step short-circuits the
// remainder on failure; there are no retries and no partial results.
type Executor struct {
	client   Client
	reporter status.Reporter
}

// NewExecutor creates an executor. A nil reporter is replaced with status.Nop.
func NewExecutor(client Client, reporter status.Reporter) *Executor {
	if reporter == nil {
		reporter = status.Nop{}
	}
	return &Executor{client: client, reporter: reporter}
}

// Execute resolves the database and container, submits the query, and
// materializes the full result set. Elapsed time covers the query step only,
// not resource resolution.
func (e *Executor) Execute(ctx context.Context, req QueryRequest) (*QueryResult, error) {
	if err := e.client.ReadDatabase(ctx, req.Database); err != nil {
		e.reporter.QueryFailed(err)
		return nil, err
	}
	e.reporter.DatabaseResolved(req.Database)

	if err := e.client.ReadContainer(ctx, req.Database, req.Container); err != nil {
		e.reporter.QueryFailed(err)
		return nil, err
	}
	e.reporter.ContainerResolved(req.Container)

	e.reporter.QueryStarted()
	start := time.Now()
	items, err := e.client.QueryItems(ctx, req.Database, req.Container, req.Query)
	if err != nil {
		e.reporter.QueryFailed(err)
		return nil, err
	}
	elapsed := time.Since(start)

	if items == nil {
		items = []json.RawMessage{}
	}

	e.reporter.QuerySucceeded(len(items), elapsed)
	return &QueryResult{Items: items, Elapsed: elapsed}, nil
}
