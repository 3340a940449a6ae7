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
	"fmt"
	"net/http"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"

	"github.com/sirseerhq/cosmos-query/internal/coserror"
	cqerrors "github.com/sirseerhq/cosmos-query/internal/errors"
)

// Cosmos REST headers involved in cross-partition propagation. The SDK marks
// query requests with isQueryHeader and enables cross-partition execution for
// partition-key-less queries; the policy below overrides that when the user
// explicitly disabled it.
const (
	isQueryHeader        = "x-ms-documentdb-isquery"
	crossPartitionHeader = "x-ms-documentdb-query-enablecrosspartition"
)

// AzureClient implements Client on top of the azcosmos SDK.
type AzureClient struct {
	client *azcosmos.Client
}

// NewClient opens a Cosmos DB client for the given endpoint and master key.
// A key that cannot be decoded classifies as an authentication failure; the
// SDK performs no network round trip here, so credential rejection by the
// service surfaces on the first executor step instead.
func NewClient(endpoint, key string, opts Options) (*AzureClient, error) {
	cred, err := azcosmos.NewKeyCredential(key)
	if err != nil {
		return nil, fmt.Errorf("invalid account key: %w", cqerrors.ErrUnauthorized)
	}

	clientOpts := &azcosmos.ClientOptions{}
	if !opts.CrossPartition {
		clientOpts.PerCallPolicies = append(clientOpts.PerCallPolicies, &crossPartitionPolicy{})
	}

	client, err := azcosmos.NewClientWithKey(endpoint, cred, clientOpts)
	if err != nil {
		return nil, coserror.Classify(err)
	}

	return &AzureClient{client: client}, nil
}

// ReadDatabase implements Client.
func (c *AzureClient) ReadDatabase(ctx context.Context, database string) error {
	db, err := c.client.NewDatabase(database)
	if err != nil {
		return coserror.Classify(err)
	}
	if _, err := db.Read(ctx, nil); err != nil {
		return coserror.ClassifyResource(err, cqerrors.ResourceDatabase, database)
	}
	return nil
}

// ReadContainer implements Client.
func (c *AzureClient) ReadContainer(ctx context.Context, database, container string) error {
	cont, err := c.client.NewContainer(database, container)
	if err != nil {
		return coserror.Classify(err)
	}
	if _, err := cont.Read(ctx, nil); err != nil {
		return coserror.ClassifyResource(err, cqerrors.ResourceContainer, container)
	}
	return nil
}

// QueryItems implements Client. The empty partition key lets the SDK run the
// query across all partitions; results are drained from the pager into one
// slice before returning.
func (c *AzureClient) QueryItems(ctx context.Context, database, container, query string) ([]json.RawMessage, error) {
	cont, err := c.client.NewContainer(database, container)
	if err != nil {
		return nil, coserror.Classify(err)
	}

	pager := cont.NewQueryItemsPager(query, azcosmos.PartitionKey{}, nil)

	items := make([]json.RawMessage, 0)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, coserror.Classify(err)
		}
		for _, raw := range page.Items {
			items = append(items, json.RawMessage(raw))
		}
	}

	return items, nil
}

// crossPartitionPolicy forces the cross-partition header off on query
// requests, letting the service apply its single-partition semantics.
type crossPartitionPolicy struct{}

func (p *crossPartitionPolicy) Do(req *policy.Request) (*http.Response, error) {
	disableCrossPartition(req.Raw().Header)
	return req.Next()
}

func disableCrossPartition(h http.Header) {
	if strings.EqualFold(h.Get(isQueryHeader), "true") {
		h.Set(crossPartitionHeader, "false")
	}
}
