// Package errs contains declarations of domain-level errors
// wrappers and methods to map them for client identification of the error.
package errs

import (
	"errors"
	"fmt"
)

// Standard errors.
var (
	// ErrNotConfigured indicates that the DAM server address or the account
	// key is not set, so no call to the DAM service may be issued.
	ErrNotConfigured = errors.New("dam server address and account key must be set")

	// ErrEmptyWeblink indicates that an empty weblink was requested to be attached.
	ErrEmptyWeblink = errors.New("weblink is empty")

	// ErrEmptyAssetPath indicates that the asset to attach a weblink to is not specified.
	ErrEmptyAssetPath = errors.New("asset path is required")
)

// ErrInvalidEndpoint indicates that a webhook registry entry misses
// one of the fields required for classification.
type ErrInvalidEndpoint string

// Error returns the string representation of the error.
func (e ErrInvalidEndpoint) Error() string {
	return fmt.Sprintf("webhook entry misses required field %q", string(e))
}

// ErrDAMAPI describes any error responded by the DAM API.
type ErrDAMAPI struct {
	ResponseStatus int    `json:"-"`
	Message        string `json:"message"`
}

// Error returns the string representation of the error.
func (e ErrDAMAPI) Error() string {
	return fmt.Sprintf("dam api responded error with status %d, message: %s", e.ResponseStatus, e.Message)
}
