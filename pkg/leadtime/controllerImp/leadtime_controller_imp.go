package controllerImp

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"wms/entities"
	"wms/pkg/httpx"
	repo "wms/pkg/leadtime/repository"
	"wms/pkg/middleware"
)

type LeadtimeCtrl struct{ repo repo.LeadtimeRepository }

func New(r repo.LeadtimeRepository) *LeadtimeCtrl { return &LeadtimeCtrl{r} }

type leadtimeBody struct {
	CustomerCode         string          `json:"customerCode"`
	TransCd              string          `json:"transCd"`
	CollectTimePerPallet decimal.Decimal `json:"collectTimePerPallet"`
	PrepareTimePerPallet decimal.Decimal `json:"prepareTimePerPallet"`
	LoadingTimePerColumn decimal.Decimal `json:"loadingTimePerColumn"`
}

func (b leadtimeBody) entity(op string) entities.LeadtimeMaster {
	return entities.LeadtimeMaster{
		CustomerCode:         b.CustomerCode,
		TransCd:              b.TransCd,
		CollectTimePerPallet: b.CollectTimePerPallet,
		PrepareTimePerPallet: b.PrepareTimePerPallet,
		LoadingTimePerColumn: b.LoadingTimePerColumn,
		CreatedBy:            op,
		UpdatedBy:            op,
	}
}

func (h *LeadtimeCtrl) List(c echo.Context) error {
	code := c.QueryParam("customerCode")
	if code == "" {
		return httpx.Fail(c, http.StatusBadRequest, "customerCode is required")
	}
	out, err := h.repo.GetAllByCustomer(c.Request().Context(), code)
	if err != nil {
		return httpx.FromError(c, err)
	}
	return httpx.OK(c, out)
}

func (h *LeadtimeCtrl) Create(c echo.Context) error {
	var body leadtimeBody
	if err := c.Bind(&body); err != nil {
		return httpx.Fail(c, http.StatusBadRequest, "invalid json")
	}
	if body.CustomerCode == "" || body.TransCd == "" {
		return httpx.Fail(c, http.StatusBadRequest, "customerCode and transCd are required")
	}
	lt := body.entity(middleware.OperatorFrom(c))
	if err := h.repo.Create(c.Request().Context(), &lt); err != nil {
		return httpx.FromError(c, err)
	}
	return c.JSON(http.StatusCreated, httpx.Envelope{Success: true, Data: lt})
}

func (h *LeadtimeCtrl) Update(c echo.Context) error {
	var body leadtimeBody
	if err := c.Bind(&body); err != nil {
		return httpx.Fail(c, http.StatusBadRequest, "invalid json")
	}
	if body.CustomerCode == "" || body.TransCd == "" {
		return httpx.Fail(c, http.StatusBadRequest, "customerCode and transCd are required")
	}
	lt := body.entity(middleware.OperatorFrom(c))
	if err := h.repo.UpdateByKey(c.Request().Context(), body.CustomerCode, body.TransCd, &lt); err != nil {
		return httpx.FromError(c, err)
	}
	return httpx.Msg(c, fmt.Sprintf("Leadtime %s-%s updated.", body.CustomerCode, body.TransCd))
}

func (h *LeadtimeCtrl) Delete(c echo.Context) error {
	code, trans := c.QueryParam("customerCode"), c.QueryParam("transCd")
	if code == "" || trans == "" {
		return httpx.Fail(c, http.StatusBadRequest, "customerCode and transCd are required")
	}
	if err := h.repo.DeleteByKey(c.Request().Context(), code, trans); err != nil {
		return httpx.FromError(c, err)
	}
	return httpx.Msg(c, fmt.Sprintf("Leadtime %s-%s deleted.", code, trans))
}

func (h *LeadtimeCtrl) DeleteAll(c echo.Context) error {
	var body struct {
		CustomerCode string `json:"customerCode"`
	}
	if err := c.Bind(&body); err != nil || body.CustomerCode == "" {
		return httpx.Fail(c, http.StatusBadRequest, "customerCode is required")
	}
	n, err := h.repo.DeleteAllByCustomer(c.Request().Context(), body.CustomerCode)
	if err != nil {
		return httpx.FromError(c, err)
	}
	return httpx.Msg(c, fmt.Sprintf("Deleted %d leadtimes of %s.", n, body.CustomerCode))
}
