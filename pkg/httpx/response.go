// Package httpx holds the JSON envelope every API handler answers with.
package httpx

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func OK(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

func Msg(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, Envelope{Success: true, Message: message})
}

func Fail(c echo.Context, status int, message string) error {
	return c.JSON(status, Envelope{Success: false, Message: message})
}

// FromError maps a repository error to a status: 404 for a missing row,
// 500 otherwise.
func FromError(c echo.Context, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Fail(c, http.StatusNotFound, "not found")
	}
	logrus.WithError(err).WithField("path", c.Path()).Error("request failed")
	return Fail(c, http.StatusInternalServerError, err.Error())
}

// ErrorHandler replaces echo's default so that framework errors (404 routes,
// bind failures, recovered panics) use the same envelope.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	status := http.StatusInternalServerError
	msg := err.Error()
	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	}
	if status >= http.StatusInternalServerError {
		logrus.WithError(err).WithField("path", c.Request().URL.Path).Error("unhandled error")
	}
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = Fail(c, status, msg)
}
