package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestOperator(t *testing.T) {
	e := echo.New()
	e.Use(Operator())
	e.GET("/", func(c echo.Context) error { return c.String(http.StatusOK, OperatorFrom(c)) })

	serve := func(req *http.Request) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	t.Run("default", func(t *testing.T) {
		assert.Equal(t, "system", serve(httptest.NewRequest(http.MethodGet, "/", nil)).Body.String())
	})

	t.Run("header wins over cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Operator", "alice")
		req.AddCookie(&http.Cookie{Name: operatorCookie, Value: "bob"})
		assert.Equal(t, "alice", serve(req).Body.String())
	})

	t.Run("cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: operatorCookie, Value: "bob"})
		assert.Equal(t, "bob", serve(req).Body.String())
	})

	t.Run("query is remembered", func(t *testing.T) {
		rec := serve(httptest.NewRequest(http.MethodGet, "/?operator=carol", nil))
		assert.Equal(t, "carol", rec.Body.String())
		assert.Contains(t, rec.Header().Get("Set-Cookie"), operatorCookie+"=carol")
	})
}
