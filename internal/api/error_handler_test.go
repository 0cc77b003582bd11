package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/taskly/task-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewHTTPErrorHandler(zerolog.Nop())
	handler(err, c)
	return rec.Code, rec.Body.String()
}

func decodeEnvelope(t *testing.T, body string) errorBody {
	t.Helper()
	var resp errorResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("invalid envelope json: %v (%s)", err, body)
	}
	return resp.Error
}

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		code     int
		errName  string
		contains string
	}{
		{"duplicate email", domain.ErrEmailExists, http.StatusBadRequest, "BadRequestError", "email already in use"},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "UnauthorizedError", "incorrect email or password"},
		{"invalid token", domain.ErrInvalidToken, http.StatusUnauthorized, "UnauthorizedError", "invalid token"},
		{"task not found", domain.ErrTaskNotFound, http.StatusNotFound, "NotFoundError", "task not found"},
		{"throttled", domain.ErrTooManyAttempts, http.StatusTooManyRequests, "TooManyRequestsError", "too many failed login attempts"},
	}

	for _, tc := range cases {
		code, body := renderError(t, tc.err)
		if code != tc.code {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.code, code)
		}
		env := decodeEnvelope(t, body)
		if env.StatusCode != tc.code {
			t.Fatalf("%s: envelope statusCode %d, want %d", tc.name, env.StatusCode, tc.code)
		}
		if env.Name != tc.errName {
			t.Fatalf("%s: envelope name %q, want %q", tc.name, env.Name, tc.errName)
		}
		if env.Message != tc.contains {
			t.Fatalf("%s: envelope message %q, want %q", tc.name, env.Message, tc.contains)
		}
	}
}

func TestErrorHandler_IdenticalInvalidCredentialBodies(t *testing.T) {
	// Unknown email and wrong password both surface as ErrInvalidCredentials
	// from the service; the rendered bodies must be byte-identical.
	_, first := renderError(t, domain.ErrInvalidCredentials)
	_, second := renderError(t, domain.ErrInvalidCredentials)
	if first != second {
		t.Fatalf("expected identical bodies, got %q vs %q", first, second)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	code, body := renderError(t, echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header"))
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
	env := decodeEnvelope(t, body)
	if env.Name != "UnauthorizedError" || env.Message != "missing authorization header" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestErrorHandler_UnexpectedErrorIsOpaque(t *testing.T) {
	code, body := renderError(t, errors.New("connection refused"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	env := decodeEnvelope(t, body)
	if env.Message != "internal server error" {
		t.Fatalf("internal details must not leak, got %q", env.Message)
	}
	if env.Name != "InternalServerError" {
		t.Fatalf("unexpected name %q", env.Name)
	}
}
