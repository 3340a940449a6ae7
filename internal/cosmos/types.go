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
	"encoding/json"
	"time"
)

// QueryRequest identifies the target of one query execution.
type QueryRequest struct {
	Database  string
	Container string
	Query     string
}

// QueryResult is the success payload of one query execution: the ordered
// record sequence plus the wall-clock time spent materializing it. Items is
// never nil; an empty result set is an empty slice.
type QueryResult struct {
	Items   []json.RawMessage
	Elapsed time.Duration
}

// Options configures client construction.
type Options struct {
	// CrossPartition permits the query to span partitions. When false the
	// provider may reject or scope the query; that behavior is surfaced
	// as-is, not second-guessed.
	CrossPartition bool
}
