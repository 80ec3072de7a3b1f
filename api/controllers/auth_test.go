package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gurneepeptides/storefront-backend/api/middleware"
)

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestAdminLoginSetsCookie(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	handler := AdminLogin(env.authSvc, env.cfg, env.logg)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login",
		strings.NewReader(`{"email":"admin@example.com","password":"hunter2hunter2"}`))
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	cookie := findCookie(rec, "gp_auth")
	if cookie == nil {
		t.Fatal("session cookie not set")
	}
	if cookie.Value == "" || !cookie.HttpOnly {
		t.Fatalf("cookie = %+v", cookie)
	}
	if cookie.SameSite != http.SameSiteLaxMode {
		t.Fatalf("cookie SameSite = %v", cookie.SameSite)
	}

	var body struct {
		Email string `json:"email"`
	}
	decodeData(t, rec, &body)
	if body.Email != "admin@example.com" {
		t.Fatalf("response email = %q", body.Email)
	}
}

func TestAdminLoginRejectsWrongPassword(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	handler := AdminLogin(env.authSvc, env.cfg, env.logg)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login",
		strings.NewReader(`{"email":"admin@example.com","password":"wrong"}`))
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
	if findCookie(rec, "gp_auth") != nil {
		t.Fatal("no cookie may be set on a failed login")
	}
}

func TestAdminLoginValidatesBody(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	handler := AdminLogin(env.authSvc, env.cfg, env.logg)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login",
		strings.NewReader(`{"email":"not-an-email","password":""}`))
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestAdminLogoutClearsCookie(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	rec := httptest.NewRecorder()
	AdminLogout(env.cfg)(rec, httptest.NewRequest(http.MethodPost, "/api/admin/logout", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	cookie := findCookie(rec, "gp_auth")
	if cookie == nil {
		t.Fatal("clearing cookie not set")
	}
	if cookie.Value != "" || cookie.MaxAge >= 0 {
		t.Fatalf("cookie not cleared: %+v", cookie)
	}
}

func TestAdminMeEchoesContextIdentity(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/api/admin/me", nil)
	req = req.WithContext(middleware.WithAdminEmail(req.Context(), "admin@example.com"))

	rec := httptest.NewRecorder()
	AdminMe()(rec, req)

	var body struct {
		Email string `json:"email"`
	}
	decodeData(t, rec, &body)
	if body.Email != "admin@example.com" {
		t.Fatalf("email = %q", body.Email)
	}
}
