package controller

import "github.com/labstack/echo/v4"

type OrderController interface {
	Calendar(c echo.Context) error
	List(c echo.Context) error
	Details(c echo.Context) error
	Export(c echo.Context) error
}
