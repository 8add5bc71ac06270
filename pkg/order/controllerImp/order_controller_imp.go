package controllerImp

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"wms/pkg/httpx"
	svc "wms/pkg/order/service"
)

type OrderCtrl struct {
	s   svc.OrderService
	loc *time.Location
	now func() time.Time
}

func New(s svc.OrderService, loc *time.Location) *OrderCtrl {
	if loc == nil {
		loc = time.Local
	}
	return &OrderCtrl{s: s, loc: loc, now: time.Now}
}

var dateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05", "01/02/2006"}

// Calendar answers the bare calendar object; an unreadable or missing date
// falls back to today.
func (h *OrderCtrl) Calendar(c echo.Context) error {
	day := h.now().In(h.loc)
	if v := c.QueryParam("date"); v != "" {
		for _, layout := range dateLayouts {
			if t, err := time.ParseInLocation(layout, v, h.loc); err == nil {
				day = t.In(h.loc)
				break
			}
		}
	}
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, h.loc)
	view, err := h.s.Calendar(c.Request().Context(), day)
	if err != nil {
		return httpx.FromError(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

func (h *OrderCtrl) List(c echo.Context) error {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		page = 1
	}
	size, err := strconv.Atoi(c.QueryParam("pageSize"))
	if err != nil {
		size = 50
	}
	out, err := h.s.List(c.Request().Context(), page, size)
	if err != nil {
		return httpx.FromError(c, err)
	}
	return httpx.OK(c, out)
}

func (h *OrderCtrl) Details(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return httpx.Fail(c, http.StatusBadRequest, "Invalid orderId format")
	}
	view, err := h.s.Details(c.Request().Context(), id)
	if err != nil {
		return httpx.FromError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success":      true,
		"data":         view.Details,
		"orderSummary": view.OrderSummary,
	})
}

func (h *OrderCtrl) Export(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return httpx.Fail(c, http.StatusBadRequest, "Invalid orderId format")
	}
	file, err := h.s.PickingList(c.Request().Context(), id)
	if err != nil {
		return httpx.FromError(c, err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", file.FileName))
	return c.Blob(http.StatusOK, file.ContentType, file.Body)
}
