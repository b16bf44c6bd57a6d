package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLoginSuccess(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/login", map[string]string{
		"username": "John Doe",
		"password": "password",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login: status %d body %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool `json:"success"`
		User    struct {
			ID       uint   `json:"id"`
			Username string `json:"username"`
		} `json:"user"`
		Token string `json:"token"`
	}
	decode(t, w, &resp)

	if !resp.Success {
		t.Fatalf("expected success, got %s", w.Body.String())
	}
	if resp.User.ID == 0 || resp.User.Username != "John Doe" {
		t.Fatalf("unexpected user payload: %+v", resp.User)
	}
	if resp.Token == "" {
		t.Fatal("expected a token for the client to keep")
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	router := newTestRouter(t)

	cases := []map[string]string{
		{"username": "John Doe", "password": "wrong"},
		{"username": "Nobody", "password": "password"},
	}
	for _, body := range cases {
		w := doJSON(t, router, http.MethodPost, "/api/login", body)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 for %v, got %d", body, w.Code)
		}
		var resp struct {
			Success bool   `json:"success"`
			Error   string `json:"error"`
		}
		decode(t, w, &resp)
		if resp.Success || resp.Error == "" {
			t.Fatalf("unexpected error payload: %s", w.Body.String())
		}
	}
}

func TestLoginMissingFields(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/login", map[string]string{"username": "John Doe"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing password, got %d", w.Code)
	}
}

func TestMeEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/login", map[string]string{
		"username": "Jane Smith",
		"password": "password",
	})
	var login struct {
		Token string `json:"token"`
	}
	decode(t, w, &login)

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("me: status %d body %s", rec.Code, rec.Body.String())
	}
	var me struct {
		Username string `json:"username"`
	}
	decode(t, rec, &me)
	if me.Username != "Jane Smith" {
		t.Fatalf("me returned %q", me.Username)
	}
}

func TestMeRequiresToken(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for a bad token, got %d", rec.Code)
	}
}
