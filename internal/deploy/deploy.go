// Package deploy publishes a rendered static portfolio to a hosting target.
package deploy

import (
	"context"
	"fmt"
)

// IndexFile is the object name every target publishes the portfolio under
const IndexFile = "index.html"

// Site is a single-file portfolio ready to publish
type Site struct {
	HTML      string
	OwnerName string
}

// Result describes where a published portfolio can be reached
type Result struct {
	URL      string `json:"url"`
	RepoURL  string `json:"repoUrl,omitempty"`
	Username string `json:"username,omitempty"`
}

// Publisher uploads a site and reports its public location
type Publisher interface {
	Publish(ctx context.Context, site Site) (*Result, error)
}

// AuthError is returned when the hosting target rejects the credentials
type AuthError struct {
	Message string
	Cause   error
}

func (e *AuthError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AuthError) Unwrap() error {
	return e.Cause
}

// APIError is a non-auth failure reported by the hosting API
type APIError struct {
	Operation  string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("failed to %s: status %d", e.Operation, e.StatusCode)
	}
	return fmt.Sprintf("failed to %s: %s", e.Operation, e.Message)
}
