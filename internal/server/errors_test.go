package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-studio/internal/deploy"
	"github.com/jonathan/resume-studio/internal/llm"
	"github.com/jonathan/resume-studio/internal/schemas"
)

func TestErrorMessages(t *testing.T) {
	userID := uuid.New()
	assert.Equal(t, "email already registered: a@b.com", (&ErrEmailAlreadyExists{Email: "a@b.com"}).Error())
	assert.Equal(t, "invalid email or password", (&ErrInvalidCredentials{}).Error())
	assert.Equal(t, "user not found: "+userID.String(), (&ErrUserNotFound{UserID: userID}).Error())
	assert.Equal(t, "portfolio not found", (&ErrNotFound{Resource: "portfolio"}).Error())
	assert.Equal(t, "validation error: email - invalid format", (&ErrValidation{Field: "email", Message: "invalid format"}).Error())
	assert.Equal(t, "validation error: invalid JSON", (&ErrValidation{Message: "invalid JSON"}).Error())
	assert.Equal(t, "AI generation is not configured", (&ErrUnavailable{Feature: "AI generation"}).Error())
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"email exists", &ErrEmailAlreadyExists{}, http.StatusConflict},
		{"invalid credentials", &ErrInvalidCredentials{}, http.StatusUnauthorized},
		{"deploy auth", &deploy.AuthError{Message: "bad token"}, http.StatusUnauthorized},
		{"user not found", &ErrUserNotFound{}, http.StatusNotFound},
		{"not found", &ErrNotFound{Resource: "portfolio"}, http.StatusNotFound},
		{"validation", &ErrValidation{}, http.StatusBadRequest},
		{"schema", &schemas.ValidationError{}, http.StatusBadRequest},
		{"empty prompt", llm.ErrEmptyPrompt, http.StatusBadRequest},
		{"unavailable", &ErrUnavailable{}, http.StatusServiceUnavailable},
		{"wrapped", fmt.Errorf("outer: %w", &ErrValidation{}), http.StatusBadRequest},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}
