package controllerImp

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"wms/pkg/delay"
	dsvc "wms/pkg/delay/service"
	"wms/pkg/httpx"
)

type HTTPCtrl struct{ s dsvc.Service }

func New(s dsvc.Service) *HTTPCtrl { return &HTTPCtrl{s: s} }

func (h *HTTPCtrl) Register(g *echo.Group) {
	g.POST("/orders/:id/delays", h.create)
	g.GET("/orders/:id/delays", h.list)
}

func (h *HTTPCtrl) create(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return httpx.Fail(c, http.StatusBadRequest, "Invalid orderId format")
	}
	var in delay.Input
	if err := c.Bind(&in); err != nil {
		return httpx.Fail(c, http.StatusBadRequest, "invalid json")
	}
	hist, order, err := h.s.Record(c.Request().Context(), id, in)
	if errors.Is(err, delay.ErrHours) || errors.Is(err, delay.ErrReason) {
		return httpx.Fail(c, http.StatusBadRequest, err.Error())
	}
	if err != nil {
		return httpx.FromError(c, err)
	}
	return c.JSON(http.StatusCreated, httpx.Envelope{Success: true, Data: echo.Map{"history": hist, "order": order}})
}

func (h *HTTPCtrl) list(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return httpx.Fail(c, http.StatusBadRequest, "Invalid orderId format")
	}
	list, err := h.s.ListByOrder(c.Request().Context(), id)
	if err != nil {
		return httpx.FromError(c, err)
	}
	return httpx.OK(c, list)
}
