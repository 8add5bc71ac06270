package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"wms/entities"
	"wms/pkg/timeline"
)

type OrderService interface {
	Calendar(ctx context.Context, day time.Time) (*CalendarView, error)
	Details(ctx context.Context, id uuid.UUID) (*DetailsView, error)
	List(ctx context.Context, page, pageSize int) (*OrderPage, error)
	PickingList(ctx context.Context, id uuid.UUID) (*File, error)
}

// CalendarOrder is one bar on the calendar. Key names follow what the
// calendar front end reads.
type CalendarOrder struct {
	UId            string               `json:"UId"`
	Resource       string               `json:"Resource"`
	ShipDate       string               `json:"ShipDate"`
	StartTime      time.Time            `json:"StartTime"`
	EndTime        time.Time            `json:"EndTime"`
	AcStartTime    *time.Time           `json:"AcStartTime"`
	AcEndTime      *time.Time           `json:"AcEndTime"`
	Status         entities.OrderStatus `json:"Status"`
	StatusText     string               `json:"StatusText"`
	ApiStatus      int16                `json:"ApiStatus"`
	TotalPallet    int                  `json:"TotalPallet"`
	CollectPallet  string               `json:"CollectPallet"`
	ThreePointScan string               `json:"ThreePointScan"`
	LoadCont       string               `json:"LoadCont"`
	TransCd        string               `json:"TransCd"`
	TransMethod    string               `json:"TransMethod"`
	ContSize       string               `json:"ContSize"`
	TotalColumn    int                  `json:"TotalColumn"`
	DelayStartTime *time.Time           `json:"DelayStartTime"`
	DelayTime      float64              `json:"DelayTime"`
	DelayIntervals []timeline.Interval  `json:"DelayIntervals"`
}

type CalendarCustomer struct {
	CustomerCode string `json:"CustomerCode"`
	CustomerName string `json:"CustomerName"`
}

type CalendarView struct {
	Orders        []CalendarOrder         `json:"orders"`
	Customers     []CalendarCustomer      `json:"customers"`
	AdvanceEvents []timeline.AdvanceEvent `json:"advanceEvents"`
	RequestedDate string                  `json:"requestedDate"`
}

type DetailsView struct {
	Details      []timeline.DetailProgress `json:"data"`
	OrderSummary *timeline.DelaySummary    `json:"orderSummary"`
}

type OrderPage struct {
	Orders     []entities.Order `json:"orders"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	TotalCount int64            `json:"totalCount"`
	TotalPages int              `json:"totalPages"`
}

type File struct {
	FileName    string
	ContentType string
	Body        []byte
}
