package controllerImp

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/datatypes"

	"wms/entities"
	"wms/pkg/httpx"
	"wms/pkg/middleware"
	repo "wms/pkg/schedule/repository"
)

type SchedCtrl struct{ repo repo.ScheduleRepository }

func New(r repo.ScheduleRepository) *SchedCtrl { return &SchedCtrl{r} }

type scheduleBody struct {
	CustomerCode string `json:"customerCode"`
	TransCd      string `json:"transCd"`
	Weekday      *int   `json:"weekday"`    // 0 = Sunday
	CutOffTime   string `json:"cutOffTime"` // HH:mm or HH:mm:ss
	Description  string `json:"description"`
}

func (b scheduleBody) entity(op string) (entities.ShippingSchedule, error) {
	if b.CustomerCode == "" || b.TransCd == "" || b.Weekday == nil {
		return entities.ShippingSchedule{}, fmt.Errorf("customerCode, transCd and weekday are required")
	}
	if *b.Weekday < 0 || *b.Weekday > 6 {
		return entities.ShippingSchedule{}, fmt.Errorf("weekday must be 0-6")
	}
	cut, err := parseClock(b.CutOffTime)
	if err != nil {
		return entities.ShippingSchedule{}, err
	}
	return entities.ShippingSchedule{
		CustomerCode: b.CustomerCode,
		TransCd:      b.TransCd,
		Weekday:      time.Weekday(*b.Weekday),
		CutOffTime:   cut,
		Description:  b.Description,
		CreatedBy:    op,
		UpdatedBy:    op,
	}, nil
}

func parseClock(s string) (datatypes.Time, error) {
	if s == "" {
		return datatypes.NewTime(0, 0, 0, 0), nil
	}
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return datatypes.NewTime(t.Hour(), t.Minute(), t.Second(), 0), nil
		}
	}
	return 0, fmt.Errorf("invalid cutOffTime %q", s)
}

func (h *SchedCtrl) List(c echo.Context) error {
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

func (h *SchedCtrl) Create(c echo.Context) error {
	var body scheduleBody
	if err := c.Bind(&body); err != nil {
		return httpx.Fail(c, http.StatusBadRequest, "invalid json")
	}
	s, err := body.entity(middleware.OperatorFrom(c))
	if err != nil {
		return httpx.Fail(c, http.StatusBadRequest, err.Error())
	}
	if err := h.repo.Create(c.Request().Context(), &s); err != nil {
		return httpx.FromError(c, err)
	}
	return c.JSON(http.StatusCreated, httpx.Envelope{Success: true, Data: s})
}

func (h *SchedCtrl) Update(c echo.Context) error {
	var body scheduleBody
	if err := c.Bind(&body); err != nil {
		return httpx.Fail(c, http.StatusBadRequest, "invalid json")
	}
	s, err := body.entity(middleware.OperatorFrom(c))
	if err != nil {
		return httpx.Fail(c, http.StatusBadRequest, err.Error())
	}
	if err := h.repo.UpdateByKey(c.Request().Context(), s.CustomerCode, s.TransCd, s.Weekday, &s); err != nil {
		return httpx.FromError(c, err)
	}
	return httpx.Msg(c, fmt.Sprintf("Shipping schedule %s-%s-%d updated.", s.CustomerCode, s.TransCd, s.Weekday))
}

func (h *SchedCtrl) Delete(c echo.Context) error {
	code, trans := c.QueryParam("customerCode"), c.QueryParam("transCd")
	wd, err := strconv.Atoi(c.QueryParam("weekday"))
	if code == "" || trans == "" || err != nil || wd < 0 || wd > 6 {
		return httpx.Fail(c, http.StatusBadRequest, "customerCode, transCd and weekday (0-6) are required")
	}
	if err := h.repo.DeleteByKey(c.Request().Context(), code, trans, time.Weekday(wd)); err != nil {
		return httpx.FromError(c, err)
	}
	return httpx.Msg(c, fmt.Sprintf("Shipping schedule %s-%s-%d deleted.", code, trans, wd))
}

func (h *SchedCtrl) DeleteAll(c echo.Context) error {
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
	return httpx.Msg(c, fmt.Sprintf("Deleted %d shipping schedules of %s.", n, body.CustomerCode))
}
