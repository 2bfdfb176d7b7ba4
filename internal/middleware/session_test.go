package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	authpkg "github.com/carelink/practice-api/internal/auth"
	"github.com/carelink/practice-api/internal/entity"
)

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func TestSessionMissingCookieAPIRequest(t *testing.T) {
	sessions := authpkg.NewSessionManager("test-secret", time.Hour, false)
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/patients", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handlerCalled := false
	err := Session(sessions)(func(c echo.Context) error {
		handlerCalled = true
		return okHandler(c)
	})(c)
	if err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}

	if handlerCalled {
		t.Error("handler must not run without a session")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestSessionMissingCookiePageRequestRedirects(t *testing.T) {
	sessions := authpkg.NewSessionManager("test-secret", time.Hour, false)
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := Session(sessions)(okHandler)(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}

	if rec.Code != http.StatusFound {
		t.Errorf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Errorf("expected redirect to /login, got %s", loc)
	}
}

func TestSessionInvalidTokenClearsCookie(t *testing.T) {
	sessions := authpkg.NewSessionManager("test-secret", time.Hour, false)
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/patients", nil)
	req.AddCookie(&http.Cookie{Name: authpkg.CookieName, Value: "garbage"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := Session(sessions)(okHandler)(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge != -1 {
		t.Error("expected invalid session cookie to be cleared")
	}
}

func TestSessionValidTokenPopulatesContext(t *testing.T) {
	sessions := authpkg.NewSessionManager("test-secret", time.Hour, false)
	token, err := sessions.Issue("user-42", "doc@example.com", entity.RoleDoctor)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/exams", nil)
	req.AddCookie(&http.Cookie{Name: authpkg.CookieName, Value: token})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handlerCalled := false
	err = Session(sessions)(func(c echo.Context) error {
		handlerCalled = true
		if got := c.Get(ContextKeyUserID); got != "user-42" {
			t.Errorf("expected user id user-42, got %v", got)
		}
		if got := c.Get(ContextKeyUserRole); got != entity.RoleDoctor {
			t.Errorf("expected DOCTOR role, got %v", got)
		}
		return okHandler(c)
	})(c)
	if err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}

	if !handlerCalled {
		t.Fatal("expected handler to run")
	}
	if got := rec.Header().Get("Cache-Control"); got != "no-store" {
		t.Errorf("expected Cache-Control no-store, got %q", got)
	}
}
