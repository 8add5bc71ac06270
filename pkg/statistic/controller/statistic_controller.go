package controller

import "github.com/labstack/echo/v4"

type StatisticController interface {
	Overview(c echo.Context) error
	OverviewByCustomers(c echo.Context) error
	MonthlyByCustomers(c echo.Context) error
	OrderStatistics(c echo.Context) error
}
