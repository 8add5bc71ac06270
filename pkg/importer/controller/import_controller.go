package controller

import "github.com/labstack/echo/v4"

type ImportController interface {
	ImportSchedules(c echo.Context) error
	DownloadTemplate(c echo.Context) error
	DefaultTemplate(c echo.Context) error
}
