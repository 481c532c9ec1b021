package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"duplicate signup", E(CodeAlreadyExists, "op", "User already exists", nil), http.StatusBadRequest},
		{"bad login", E(CodeInvalidCredentials, "op", "Invalid credentials", nil), http.StatusBadRequest},
		{"forbidden", E(CodeForbidden, "op", "Not authorized", nil), http.StatusForbidden},
		{"not found", E(CodeNotFound, "op", "Job not found", nil), http.StatusNotFound},
		{"binding", E(CodeInvalidArgument, "op", "bad", nil), http.StatusUnprocessableEntity},
		{"unauthenticated", E(CodeUnauthorized, "op", "Not authenticated", nil), http.StatusUnauthorized},
		{"wrapped app error", fmt.Errorf("outer: %w", E(CodeForbidden, "op", "x", nil)), http.StatusForbidden},
		{"bare sentinel", ErrNotFound, http.StatusNotFound},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HTTPStatus(tc.err))
		})
	}
}

func TestAppErrorUnwrapAndIsCode(t *testing.T) {
	err := E(CodeNotFound, "JobService.Get", "Job not found", ErrNotFound)

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, IsCode(err, CodeNotFound))
	assert.False(t, IsCode(err, CodeForbidden))
	assert.Equal(t, "JobService.Get: Job not found: not found", err.Error())
}
