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

// Package errors defines sentinel and structured errors for consistent error
// handling across the application. These errors map to specific exit codes in
// the CLI for proper scripting support and are matched with errors.Is and
// errors.As rather than by inspecting message text.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for consistent error handling and exit code mapping
var (
	// ErrMissingConfig indicates one or more required configuration fields
	// could not be resolved. Maps to exit code 1.
	ErrMissingConfig = errors.New("missing required configuration")

	// ErrUnauthorized indicates the Cosmos DB master key was rejected.
	// Maps to exit code 2.
	ErrUnauthorized = errors.New("authentication failed")

	// ErrForbidden indicates the credential was accepted but access was denied.
	// Maps to exit code 2.
	ErrForbidden = errors.New("access forbidden")

	// ErrNotFound indicates a database or container does not exist or is not
	// accessible. Maps to exit code 2.
	ErrNotFound = errors.New("resource not found")

	// ErrBadRequest indicates the service rejected the request, typically a
	// query syntax error. Maps to exit code 2.
	ErrBadRequest = errors.New("request rejected")

	// ErrConnection indicates a transport-level failure reaching the service.
	// Maps to exit code 3.
	ErrConnection = errors.New("connection failed")
)

// Resource kinds carried by NotFoundError.
const (
	ResourceDatabase  = "database"
	ResourceContainer = "container"
)

// MissingConfigError reports every required configuration field that could not
// be resolved, not just the first one, so the caller can present a complete
// remediation list in a single pass.
type MissingConfigError struct {
	Fields []string
}

func (e *MissingConfigError) Error() string {
	return fmt.Sprintf("missing required configuration: %s", strings.Join(e.Fields, ", "))
}

func (e *MissingConfigError) Unwrap() error { return ErrMissingConfig }

// NotFoundError identifies which resource was missing. Resource is one of
// ResourceDatabase or ResourceContainer.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// RemoteError carries the raw status and Cosmos error code of a service
// failure. It unwraps to the matching sentinel when the status code has one,
// so callers can classify with errors.Is while retaining the diagnostics.
type RemoteError struct {
	StatusCode int
	Code       string
}

func (e *RemoteError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("cosmos request failed: HTTP %d (%s)", e.StatusCode, e.Code)
	}
	return fmt.Sprintf("cosmos request failed: HTTP %d", e.StatusCode)
}

func (e *RemoteError) Unwrap() error {
	switch e.StatusCode {
	case 401:
		return ErrUnauthorized
	case 403:
		return ErrForbidden
	case 404:
		return ErrNotFound
	case 400:
		return ErrBadRequest
	}
	return nil
}

// OutputError reports a local I/O failure writing results. It wraps the
// underlying OS error, so errors.Is(err, fs.ErrPermission) and
// errors.Is(err, fs.ErrNotExist) distinguish permission problems from
// missing-path problems.
type OutputError struct {
	Path string
	Err  error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("writing results to %s: %v", e.Path, e.Err)
}

func (e *OutputError) Unwrap() error { return e.Err }
