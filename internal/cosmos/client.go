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
)

// Client defines the operations the executor needs from a Cosmos DB backend.
// This interface allows for easy mocking in tests.
type Client interface {
	// ReadDatabase verifies that the named database exists and is accessible.
	ReadDatabase(ctx context.Context, database string) error

	// ReadContainer verifies that the named container exists within the
	// database.
	ReadContainer(ctx context.Context, database, container string) error

	// QueryItems submits the query string verbatim against the container and
	// returns the full, eagerly materialized result sequence. Records are
	// opaque JSON values; the caller does not interpret their shape.
	QueryItems(ctx context.Context, database, container, query string) ([]json.RawMessage, error)
}
