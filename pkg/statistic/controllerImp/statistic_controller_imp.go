package controllerImp

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"wms/pkg/httpx"
	svc "wms/pkg/statistic/service"
)

// defaultWindow is how far back from "to" the window reaches when "from"
// is omitted.
const defaultWindow = 30

type StatCtrl struct {
	s   svc.StatisticService
	loc *time.Location
	now func() time.Time
}

func New(s svc.StatisticService, loc *time.Location) *StatCtrl {
	if loc == nil {
		loc = time.Local
	}
	return &StatCtrl{s: s, loc: loc, now: time.Now}
}

func (h *StatCtrl) query(c echo.Context, customersParam string) (svc.Query, error) {
	var q svc.Query
	today := h.now().In(h.loc)
	q.To = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, h.loc)
	if v := c.QueryParam("to"); v != "" {
		t, err := time.ParseInLocation("2006-01-02", v, h.loc)
		if err != nil {
			return q, echo.NewHTTPError(http.StatusBadRequest, "invalid to date, expected yyyy-MM-dd")
		}
		q.To = t
	}
	q.From = q.To.AddDate(0, 0, -defaultWindow)
	if v := c.QueryParam("from"); v != "" {
		t, err := time.ParseInLocation("2006-01-02", v, h.loc)
		if err != nil {
			return q, echo.NewHTTPError(http.StatusBadRequest, "invalid from date, expected yyyy-MM-dd")
		}
		q.From = t
	}
	for _, p := range strings.Split(c.QueryParam(customersParam), ",") {
		if p = strings.TrimSpace(p); p != "" {
			q.Customers = append(q.Customers, p)
		}
	}
	q.IncludeAll, _ = strconv.ParseBool(c.QueryParam("includeAll"))
	return q, nil
}

func (h *StatCtrl) Overview(c echo.Context) error {
	q, err := h.query(c, "customerCode")
	if err != nil {
		return err
	}
	out, err := h.s.Overview(c.Request().Context(), q)
	if err != nil {
		return httpx.FromError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *StatCtrl) OverviewByCustomers(c echo.Context) error {
	q, err := h.query(c, "customers")
	if err != nil {
		return err
	}
	out, err := h.s.OverviewByCustomers(c.Request().Context(), q)
	if err != nil {
		return httpx.FromError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *StatCtrl) MonthlyByCustomers(c echo.Context) error {
	q, err := h.query(c, "customers")
	if err != nil {
		return err
	}
	out, err := h.s.MonthlyByCustomers(c.Request().Context(), q)
	if err != nil {
		return httpx.FromError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *StatCtrl) OrderStatistics(c echo.Context) error {
	out, err := h.s.OrderStatistics(c.Request().Context())
	if err != nil {
		return httpx.FromError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
