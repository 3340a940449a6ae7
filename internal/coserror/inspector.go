package coserror

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	cqerrors "github.com/sirseerhq/cosmos-query/internal/errors"
)

// Classify maps an error from the Cosmos client into the application taxonomy.
// Service responses become *cqerrors.RemoteError carrying the HTTP status and
// Cosmos error code. Transport failures map to cqerrors.ErrConnection. Errors
// that are already classified, and errors with no recognizable shape, pass
// through unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var respErr *azcore.ResponseError
	if errors.As(err, &respErr) {
		return &cqerrors.RemoteError{
			StatusCode: respErr.StatusCode,
			Code:       respErr.ErrorCode,
		}
	}

	if isNetworkError(err) {
		return fmt.Errorf("%w: %v", cqerrors.ErrConnection, err)
	}

	return err
}

// ClassifyResource is Classify with resource context: a 404 response becomes a
// NotFoundError naming the resource that was being resolved. The caller knows
// which step failed, so database-not-found and container-not-found stay
// distinguishable without inspecting message text.
func ClassifyResource(err error, resource, id string) error {
	if err == nil {
		return nil
	}

	var respErr *azcore.ResponseError
	if errors.As(err, &respErr) && respErr.StatusCode == http.StatusNotFound {
		return &cqerrors.NotFoundError{Resource: resource, ID: id}
	}

	return Classify(err)
}

// isNetworkError reports whether the error is a transport-level connectivity
// failure. It checks for net.Error in the chain first; the string checks are a
// fallback for wrapped errors that lost their type.
func isNetworkError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "temporary failure") ||
		strings.Contains(errStr, "dial tcp") ||
		strings.Contains(errStr, "tls handshake") ||
		strings.Contains(errStr, "network is unreachable")
}
