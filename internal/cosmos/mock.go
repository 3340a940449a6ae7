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

	cqerrors "github.com/sirseerhq/cosmos-query/internal/errors"
)

// MockClient is a mock implementation of the Client interface for testing.
type MockClient struct {
	// Items to return from QueryItems.
	Items []json.RawMessage

	// Errors to return from each step; nil means success.
	ReadDatabaseErr  error
	ReadContainerErr error
	QueryErr         error

	// Behavior flags for common failure scenarios.
	DatabaseMissing  bool
	ContainerMissing bool

	// Track calls for verification.
	Calls         []string
	LastDatabase  string
	LastContainer string
	LastQuery     string
}

// NewMockClient creates a mock whose query returns the given JSON records.
func NewMockClient(items ...string) *MockClient {
	m := &MockClient{Items: make([]json.RawMessage, 0, len(items))}
	for _, item := range items {
		m.Items = append(m.Items, json.RawMessage(item))
	}
	return m
}

// ReadDatabase implements the Client interface.
func (m *MockClient) ReadDatabase(ctx context.Context, database string) error {
	m.Calls = append(m.Calls, "ReadDatabase")
	m.LastDatabase = database

	if err := ctx.Err(); err != nil {
		return err
	}
	if m.DatabaseMissing {
		return &cqerrors.NotFoundError{Resource: cqerrors.ResourceDatabase, ID: database}
	}
	return m.ReadDatabaseErr
}

// ReadContainer implements the Client interface.
func (m *MockClient) ReadContainer(ctx context.Context, database, container string) error {
	m.Calls = append(m.Calls, "ReadContainer")
	m.LastDatabase = database
	m.LastContainer = container

	if err := ctx.Err(); err != nil {
		return err
	}
	if m.ContainerMissing {
		return &cqerrors.NotFoundError{Resource: cqerrors.ResourceContainer, ID: container}
	}
	return m.ReadContainerErr
}

// QueryItems implements the Client interface.
func (m *MockClient) QueryItems(ctx context.Context, database, container, query string) ([]json.RawMessage, error) {
	m.Calls = append(m.Calls, "QueryItems")
	m.LastDatabase = database
	m.LastContainer = container
	m.LastQuery = query

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.QueryErr != nil {
		return nil, m.QueryErr
	}
	return m.Items, nil
}
