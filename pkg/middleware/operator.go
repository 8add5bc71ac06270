package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	operatorCookie = "WMS_OPERATOR"
	operatorHeader = "X-Operator"
	operatorKey    = "operator"
	defaultOp      = "system"
)

// Operator resolves who is making the request (header, then cookie, then
// ?operator=) and stores it for the audit fields. A query value is
// remembered in a cookie.
func Operator() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			op := c.Request().Header.Get(operatorHeader)
			if op == "" {
				if ck, err := c.Cookie(operatorCookie); err == nil {
					op = ck.Value
				}
			}
			if op == "" {
				if q := c.QueryParam("operator"); q != "" {
					c.SetCookie(&http.Cookie{Name: operatorCookie, Value: q, Path: "/"})
					op = q
				}
			}
			if op == "" {
				op = defaultOp
			}
			c.Set(operatorKey, op)
			return next(c)
		}
	}
}

// OperatorFrom returns the operator set by Operator, or "system".
func OperatorFrom(c echo.Context) string {
	if v, ok := c.Get(operatorKey).(string); ok && v != "" {
		return v
	}
	return defaultOp
}
