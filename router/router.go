package router

import (
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	custCtrl "wms/pkg/customer/controller"
	healthCtrl "wms/pkg/health/controller"
	"wms/pkg/httpx"
	importCtrl "wms/pkg/importer/controller"
	ltCtrl "wms/pkg/leadtime/controller"
	"wms/pkg/metrics"
	"wms/pkg/middleware"
	orderCtrl "wms/pkg/order/controller"
	schedCtrl "wms/pkg/schedule/controller"
	statCtrl "wms/pkg/statistic/controller"
)

// Handlers groups everything the route table dispatches to.
type Handlers struct {
	Customers  custCtrl.CustomerController
	Leadtimes  ltCtrl.LeadtimeController
	Schedules  schedCtrl.ScheduleController
	Import     importCtrl.ImportController
	Orders     orderCtrl.OrderController
	Statistics statCtrl.StatisticController
	Health     healthCtrl.HealthController
	// Extra registers additional /api routes.
	Extra []func(api *echo.Group)
}

func New(e *echo.Echo, h Handlers, bodyLimit string) *echo.Echo {
	e.HideBanner = true
	e.HTTPErrorHandler = httpx.ErrorHandler
	e.Use(middleware.RequestID())
	e.Use(middleware.Operator())
	e.Use(middleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(metrics.Middleware())
	if bodyLimit != "" {
		e.Use(echoMiddleware.BodyLimit(bodyLimit))
	}

	e.GET("/health", h.Health.Health)
	e.GET("/metrics", metrics.Handler())

	api := e.Group("/api")

	api.GET("/customers", h.Customers.List)
	api.GET("/customers/:code", h.Customers.Get)
	api.POST("/customers", h.Customers.Create)
	api.POST("/customers/update", h.Customers.Update)
	api.POST("/customers/delete", h.Customers.Delete)
	api.POST("/customers/delete-all", h.Customers.DeleteAll)

	api.GET("/leadtimes", h.Leadtimes.List)
	api.POST("/leadtimes", h.Leadtimes.Create)
	api.POST("/leadtimes/update", h.Leadtimes.Update)
	api.POST("/leadtimes/delete", h.Leadtimes.Delete)
	api.POST("/leadtimes/delete-all", h.Leadtimes.DeleteAll)

	api.GET("/schedules", h.Schedules.List)
	api.POST("/schedules", h.Schedules.Create)
	api.POST("/schedules/update", h.Schedules.Update)
	api.POST("/schedules/delete", h.Schedules.Delete)
	api.POST("/schedules/delete-all", h.Schedules.DeleteAll)

	api.POST("/import/schedules", h.Import.ImportSchedules)
	api.GET("/import/template", h.Import.DownloadTemplate)
	api.GET("/import/template/default", h.Import.DefaultTemplate)

	api.GET("/calendar", h.Orders.Calendar)
	api.GET("/orders", h.Orders.List)
	api.GET("/orders/:id/details", h.Orders.Details)
	api.GET("/orders/:id/export", h.Orders.Export)

	api.GET("/statistics/overview", h.Statistics.Overview)
	api.GET("/statistics/overview/customers", h.Statistics.OverviewByCustomers)
	api.GET("/statistics/overview/customers/monthly", h.Statistics.MonthlyByCustomers)
	api.GET("/statistics/orders", h.Statistics.OrderStatistics)

	for _, register := range h.Extra {
		register(api)
	}
	return e
}
