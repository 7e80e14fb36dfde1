package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func testAuth() *TokenAuth {
	return &TokenAuth{
		serverKey:    []byte("test-secret"),
		serverApiKey: "test-api-key",
	}
}

func protected(t *testing.T, auth *TokenAuth, mutate func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()
	called := false
	handler := auth.Middleware(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})
	r := httptest.NewRequest(http.MethodPost, "/admin/listings", nil)
	if mutate != nil {
		mutate(r)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	if w.Code == http.StatusOK && !called {
		t.Fatalf("200 without reaching the handler")
	}
	if w.Code != http.StatusOK && called {
		t.Fatalf("handler ran despite %d", w.Code)
	}
	return w
}

func TestMiddlewareRejectsMissingCredentials(t *testing.T) {
	w := protected(t, testAuth(), nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without cookie or key, got %d", w.Code)
	}
}

func TestMiddlewareRejectsBadSignature(t *testing.T) {
	auth := testAuth()
	forged := &TokenAuth{serverKey: []byte("other-secret"), serverApiKey: auth.serverApiKey}
	token, err := forged.createToken("intruder", "admin")
	if err != nil {
		t.Fatalf("could not sign token: %v", err)
	}
	w := protected(t, auth, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: tokenCookieName, Value: token})
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for a foreign signature, got %d", w.Code)
	}
}

func TestMiddlewareRejectsGarbageToken(t *testing.T) {
	w := protected(t, testAuth(), func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: tokenCookieName, Value: "not-a-jwt"})
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for an unparsable token, got %d", w.Code)
	}
}

func TestMiddlewareRejectsNonAdminRole(t *testing.T) {
	auth := testAuth()
	token, err := auth.createToken("viewer", "viewer")
	if err != nil {
		t.Fatalf("could not sign token: %v", err)
	}
	w := protected(t, auth, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: tokenCookieName, Value: token})
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for a non-admin role, got %d", w.Code)
	}
}

func TestMiddlewareAcceptsApiKey(t *testing.T) {
	auth := testAuth()
	w := protected(t, auth, func(r *http.Request) {
		r.Header.Set("Authorization", auth.serverApiKey)
	})
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 with the api key, got %d", w.Code)
	}
}

func TestMiddlewareAcceptsAdminCookie(t *testing.T) {
	auth := testAuth()
	token, err := auth.createToken("admin", "admin")
	if err != nil {
		t.Fatalf("could not sign token: %v", err)
	}
	w := protected(t, auth, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: tokenCookieName, Value: token})
	})
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 with a valid admin cookie, got %d", w.Code)
	}
}

func TestLoginRequiresApiKey(t *testing.T) {
	auth := testAuth()
	r := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(`{"username":"ops"}`))
	w := httptest.NewRecorder()
	auth.Login(w, r)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without the api key, got %d", w.Code)
	}

	r = httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(`{"username":"ops"}`))
	r.Header.Set("Authorization", auth.serverApiKey)
	w = httptest.NewRecorder()
	auth.Login(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with the api key, got %d", w.Code)
	}
	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != tokenCookieName || cookies[0].Value == "" {
		t.Fatalf("expected an admin cookie, got %v", cookies)
	}
	if cookies[0].Path != "/" {
		t.Errorf("admin cookie must be scoped to /")
	}
}

func TestLogoutClearsCookieOnSamePath(t *testing.T) {
	auth := testAuth()
	w := httptest.NewRecorder()
	auth.Logout(w, httptest.NewRequest(http.MethodPost, "/admin/logout", nil))
	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge != -1 {
		t.Fatalf("expected an expiring cookie, got %v", cookies)
	}
	if cookies[0].Path != "/" {
		t.Errorf("clearing cookie must use the same path as login")
	}
}
