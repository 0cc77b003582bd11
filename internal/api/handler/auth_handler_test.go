package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/taskly/task-api/internal/core/domain"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, email, password, name string) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (string, *domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, email, password, name string) (*domain.User, error) {
	return s.registerFn(ctx, email, password, name)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func newAuthContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, email, password, name string) (*domain.User, error) {
			if email != "alice@example.com" || password != "secret1" || name != "Alice" {
				t.Fatalf("unexpected args: %s %s %s", email, password, name)
			}
			return &domain.User{
				ID:           "user-1",
				Email:        email,
				Name:         name,
				PasswordHash: "$2a$10$hash",
				CreatedAt:    created,
			}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthContext(t, `{"email":"alice@example.com","password":"secret1","name":"Alice"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "User registered successfully" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["id"] != "user-1" || user["email"] != "alice@example.com" || user["name"] != "Alice" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	if _, ok := user["createdAt"]; !ok {
		t.Fatalf("expected createdAt in user payload")
	}
	// The hash must never appear anywhere in the response.
	if strings.Contains(rec.Body.String(), "hash") || strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("response leaks credential material: %s", rec.Body.String())
	}
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		registerFn: func(ctx context.Context, email, password, name string) (*domain.User, error) {
			t.Fatalf("service must not be called on invalid input")
			return nil, nil
		},
	})

	c, _ := newAuthContext(t, `{"email":"alice@example.com"}`)
	err := h.Register(c)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		registerFn: func(ctx context.Context, email, password, name string) (*domain.User, error) {
			return nil, domain.ErrEmailExists
		},
	})

	c, _ := newAuthContext(t, `{"email":"bob@example.com","password":"secret1","name":"Bob"}`)
	if err := h.Register(c); !errors.Is(err, domain.ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists to propagate, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "tok.en.here", &domain.User{ID: "user-1", Email: email, Name: "Alice"}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthContext(t, `{"email":"alice@example.com","password":"secret1"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Login successful" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
	if resp["token"] != "tok.en.here" {
		t.Fatalf("unexpected token: %v", resp["token"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["id"] != "user-1" {
		t.Fatalf("unexpected user payload: %+v", resp["user"])
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	})

	c, _ := newAuthContext(t, `{"email":"ghost@example.com","password":"whatever"}`)
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
}

func TestAuthHandler_Login_MalformedBody(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			t.Fatalf("service must not be called on malformed input")
			return "", nil, nil
		},
	})

	c, _ := newAuthContext(t, `{not json`)
	err := h.Login(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
