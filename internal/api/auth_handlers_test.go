package api

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestLoginHandler_Success(t *testing.T) {
	setupAPIDB(t)
	seedAdmin(t)
	cfg := testAPIConfig()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth/login", LoginHandler(cfg, testLog))

	w := doRequest(t, r, "POST", "/auth/login",
		`{"email":"admin@koc.local","password":"admin123"}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !contains(w.Body.String(), `"role":"admin"`) {
		t.Errorf("expected admin role in response, got: %s", w.Body.String())
	}
	setCookie := w.Header().Get("Set-Cookie")
	if !contains(setCookie, "auth-token=") {
		t.Errorf("expected session cookie, got: %s", setCookie)
	}
	if !contains(setCookie, "HttpOnly") || !contains(setCookie, "SameSite=Lax") {
		t.Errorf("cookie missing scoping attributes: %s", setCookie)
	}
}

func TestLoginHandler_MissingFields(t *testing.T) {
	setupAPIDB(t)
	seedAdmin(t)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth/login", LoginHandler(testAPIConfig(), testLog))

	w := doRequest(t, r, "POST", "/auth/login", `{"email":"admin@koc.local"}`, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing password, got %d", w.Code)
	}
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	setupAPIDB(t)
	seedAdmin(t)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth/login", LoginHandler(testAPIConfig(), testLog))

	w := doRequest(t, r, "POST", "/auth/login",
		`{"email":"admin@koc.local","password":"wrongpw"}`, nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for wrong password, got %d", w.Code)
	}

	w = doRequest(t, r, "POST", "/auth/login",
		`{"email":"nobody@koc.local","password":"admin123"}`, nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for unknown email, got %d", w.Code)
	}
}

func TestMeHandler(t *testing.T) {
	setupAPIDB(t)
	admin := seedAdmin(t)
	cfg := testAPIConfig()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/auth/me", MeHandler(cfg))

	// Issued credential comes back as the same identity.
	w := doRequest(t, r, "GET", "/auth/me", "", authCookie(t, cfg, admin))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !contains(w.Body.String(), "admin@koc.local") {
		t.Errorf("expected identity echo, got: %s", w.Body.String())
	}

	// No cookie means no identity.
	w = doRequest(t, r, "GET", "/auth/me", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without cookie, got %d", w.Code)
	}
}

func TestLogoutHandler_ClearsCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth/logout", LogoutHandler(testAPIConfig()))

	w := doRequest(t, r, "POST", "/auth/logout", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	setCookie := w.Header().Get("Set-Cookie")
	if !contains(setCookie, "auth-token=") || !contains(setCookie, "Max-Age=0") {
		t.Errorf("expected expired cookie, got: %s", setCookie)
	}
}
