// Package coserror classifies errors returned by the Cosmos DB client into
// the application's error taxonomy. Classification is structural: it reads the
// status and error codes the SDK exposes through *azcore.ResponseError instead
// of matching substrings of provider message text.
package coserror
