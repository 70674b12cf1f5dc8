package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/clinichub/clinic-registry/internal/core/domain"
)

func TestAuthHandler_Authenticate_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		loginFn: func(ctx context.Context, username, password string) (string, error) {
			if username != "bob" || password != "s3cret" {
				t.Fatalf("unexpected args: %s %s", username, password)
			}
			return "token123", nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newJSONContext(e, http.MethodPost, "/api/authenticate",
		`{"username":"bob","password":"s3cret"}`)
	if err := h.Authenticate(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if auth := rec.Header().Get(echo.HeaderAuthorization); auth != "Bearer token123" {
		t.Fatalf("expected Authorization header, got %q", auth)
	}

	var resp tokenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Token != "token123" {
		t.Fatalf("expected token in body, got %+v", resp)
	}
}

func TestAuthHandler_Authenticate_InvalidCredentials(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		loginFn: func(ctx context.Context, username, password string) (string, error) {
			return "", domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newJSONContext(e, http.MethodPost, "/api/authenticate",
		`{"username":"bob","password":"bad"}`)

	if err := h.Authenticate(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Authenticate_Throttled(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		loginFn: func(ctx context.Context, username, password string) (string, error) {
			return "", domain.ErrTooManyLoginAttempts
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newJSONContext(e, http.MethodPost, "/api/authenticate",
		`{"username":"bob","password":"s3cret"}`)

	if err := h.Authenticate(c); !errors.Is(err, domain.ErrTooManyLoginAttempts) {
		t.Fatalf("expected ErrTooManyLoginAttempts, got %v", err)
	}
}

func TestAuthHandler_Authenticate_MissingFields(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		loginFn: func(ctx context.Context, username, password string) (string, error) {
			t.Fatalf("should not be called")
			return "", nil
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newJSONContext(e, http.MethodPost, "/api/authenticate", `{"username":"bob"}`)
	err := h.Authenticate(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 error, got %v", err)
	}
}

func TestAuthHandler_Authenticate_InvalidPayload(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		loginFn: func(ctx context.Context, username, password string) (string, error) {
			t.Fatalf("should not be called")
			return "", nil
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newJSONContext(e, http.MethodPost, "/api/authenticate", "{")

	err := h.Authenticate(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 error, got %v", err)
	}
}
