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

// Package output serializes a query result set as a single JSON array and
// writes it to a file or to an output stream. The byte-for-byte shape of the
// payload is controlled solely by the indent/compact options; an empty result
// set serializes as [].
//
// A broken pipe on the stream path is treated as a successful, early
// terminated write: partial output to a disconnected reader is expected, not
// an error. File failures are classified so that permission problems and
// missing-path problems stay distinguishable.
package output
