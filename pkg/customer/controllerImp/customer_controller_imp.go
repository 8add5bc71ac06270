package controllerImp

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"wms/entities"
	repo "wms/pkg/customer/repository"
	"wms/pkg/httpx"
	"wms/pkg/middleware"
)

type CustomerCtrl struct{ repo repo.CustomerRepository }

func New(r repo.CustomerRepository) *CustomerCtrl { return &CustomerCtrl{r} }

type customerBody struct {
	CustomerCode string `json:"customerCode"`
	CustomerName string `json:"customerName"`
	Descriptions string `json:"descriptions"`
}

func (h *CustomerCtrl) List(c echo.Context) error {
	out, err := h.repo.GetAll(c.Request().Context())
	if err != nil {
		return httpx.FromError(c, err)
	}
	return httpx.OK(c, out)
}

func (h *CustomerCtrl) Get(c echo.Context) error {
	cust, err := h.repo.GetByCode(c.Request().Context(), c.Param("code"))
	if err != nil {
		return httpx.FromError(c, err)
	}
	return httpx.OK(c, cust)
}

func (h *CustomerCtrl) Create(c echo.Context) error {
	var body customerBody
	if err := c.Bind(&body); err != nil {
		return httpx.Fail(c, http.StatusBadRequest, "invalid json")
	}
	body.CustomerCode = strings.TrimSpace(body.CustomerCode)
	if body.CustomerCode == "" {
		return httpx.Fail(c, http.StatusBadRequest, "customerCode is required")
	}
	op := middleware.OperatorFrom(c)
	cust := entities.Customer{
		CustomerCode: body.CustomerCode,
		CustomerName: strings.TrimSpace(body.CustomerName),
		Descriptions: body.Descriptions,
		CreatedBy:    op,
		UpdatedBy:    op,
	}
	if err := h.repo.Create(c.Request().Context(), &cust); err != nil {
		return httpx.FromError(c, err)
	}
	logrus.WithFields(logrus.Fields{"customer": cust.CustomerCode, "operator": op}).Info("customer created")
	return c.JSON(http.StatusCreated, httpx.Envelope{Success: true, Data: cust})
}

func (h *CustomerCtrl) Update(c echo.Context) error {
	var body customerBody
	if err := c.Bind(&body); err != nil {
		return httpx.Fail(c, http.StatusBadRequest, "invalid json")
	}
	if body.CustomerCode == "" {
		return httpx.Fail(c, http.StatusBadRequest, "customerCode is required")
	}
	cust := entities.Customer{
		CustomerName: strings.TrimSpace(body.CustomerName),
		Descriptions: body.Descriptions,
		UpdatedBy:    middleware.OperatorFrom(c),
	}
	if err := h.repo.UpdateByCode(c.Request().Context(), body.CustomerCode, &cust); err != nil {
		return httpx.FromError(c, err)
	}
	return httpx.Msg(c, fmt.Sprintf("Customer %s updated.", body.CustomerCode))
}

func (h *CustomerCtrl) Delete(c echo.Context) error {
	code := c.QueryParam("code")
	if code == "" {
		return httpx.Fail(c, http.StatusBadRequest, "code is required")
	}
	if err := h.repo.DeleteByCode(c.Request().Context(), code); err != nil {
		return httpx.FromError(c, err)
	}
	return httpx.Msg(c, fmt.Sprintf("Customer %s deleted.", code))
}

func (h *CustomerCtrl) DeleteAll(c echo.Context) error {
	n, err := h.repo.DeleteAll(c.Request().Context())
	if err != nil {
		return httpx.FromError(c, err)
	}
	logrus.WithFields(logrus.Fields{"removed": n, "operator": middleware.OperatorFrom(c)}).Warn("all customers deleted")
	return httpx.Msg(c, fmt.Sprintf("Deleted %d customers.", n))
}
