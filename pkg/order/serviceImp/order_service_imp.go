package serviceImp

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"wms/entities"
	custRepo "wms/pkg/customer/repository"
	"wms/pkg/metrics"
	"wms/pkg/order/repository"
	svc "wms/pkg/order/service"
	"wms/pkg/timeline"
)

type service struct {
	orders    repository.OrderRepository
	details   repository.OrderDetailRepository
	history   repository.DelayHistoryRepository
	customers custRepo.CustomerRepository
	now       func() time.Time
}

func New(o repository.OrderRepository, d repository.OrderDetailRepository, h repository.DelayHistoryRepository, c custRepo.CustomerRepository) svc.OrderService {
	return &service{orders: o, details: d, history: h, customers: c, now: time.Now}
}

// Calendar lists the orders shipping on day. Orders whose delay has run
// out are re-evaluated first and shown with their refreshed status.
func (s *service) Calendar(ctx context.Context, day time.Time) (*svc.CalendarView, error) {
	orders, err := s.orders.GetByDate(ctx, day)
	if err != nil {
		return nil, err
	}
	now := s.now()
	for i := range orders {
		if !timeline.DelayElapsed(orders[i], now) {
			continue
		}
		metrics.StatusReevaluations.Inc()
		changed, err := s.orders.UpdateStatusIfNeeded(ctx, orders[i].UId)
		if err != nil {
			logrus.WithError(err).WithField("order", orders[i].UId).Warn("status re-evaluation failed")
			continue
		}
		if changed {
			if fresh, err := s.orders.GetByID(ctx, orders[i].UId); err == nil {
				orders[i] = *fresh
			}
		}
	}

	ids := make([]uuid.UUID, 0, len(orders))
	var codes []string
	seen := map[string]bool{}
	for _, o := range orders {
		ids = append(ids, o.UId)
		if !seen[o.CustomerCode] {
			seen[o.CustomerCode] = true
			codes = append(codes, o.CustomerCode)
		}
	}
	hist, err := s.history.GetByOrderIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	custs, err := s.customers.GetByCodes(ctx, codes)
	if err != nil {
		return nil, err
	}

	view := &svc.CalendarView{
		Orders:        make([]svc.CalendarOrder, 0, len(orders)),
		Customers:     make([]svc.CalendarCustomer, 0, len(codes)),
		AdvanceEvents: []timeline.AdvanceEvent{},
		RequestedDate: day.Format("2006-01-02"),
	}
	for _, o := range orders {
		view.Orders = append(view.Orders, calendarOrder(o, hist[o.UId]))
		view.AdvanceEvents = append(view.AdvanceEvents, timeline.AdvanceEvents(o, hist[o.UId])...)
	}
	for _, code := range codes {
		if c, ok := custs[code]; ok {
			view.Customers = append(view.Customers, svc.CalendarCustomer{CustomerCode: c.CustomerCode, CustomerName: c.CustomerName})
		}
	}
	return view, nil
}

func calendarOrder(o entities.Order, hist []entities.DelayHistory) svc.CalendarOrder {
	c := timeline.CountOrder(o)
	resource := o.CustomerCode
	if resource == "" {
		resource = "Unknown"
	}
	trans := o.TransCd
	if trans == "" {
		trans = "N/A"
	}
	out := svc.CalendarOrder{
		UId:            o.UId.String(),
		Resource:       resource,
		ShipDate:       o.ShipDate.Format("2006-01-02"),
		StartTime:      o.StartTime,
		EndTime:        o.EndTime,
		AcStartTime:    o.AcStartTime,
		AcEndTime:      o.AcEndTime,
		Status:         o.OrderStatus,
		StatusText:     o.OrderStatus.String(),
		ApiStatus:      o.ApiOrderStatus,
		TotalPallet:    o.TotalPallet,
		CollectPallet:  fmt.Sprintf("%d / %d", c.Collected, o.TotalPallet),
		ThreePointScan: fmt.Sprintf("%d / %d", c.Prepared, o.TotalPallet),
		LoadCont:       fmt.Sprintf("%d / %d", c.Loaded, o.TotalPallet),
		TransCd:        trans,
		TransMethod:    strconv.Itoa(o.TransMethod),
		ContSize:       strconv.Itoa(o.ContSize),
		TotalColumn:    o.TotalColumn,
		DelayIntervals: timeline.Intervals(hist),
	}
	if o.OrderStatus == entities.OrderDelay {
		out.DelayStartTime = o.DelayStartTime
		if o.DelayTime != nil {
			out.DelayTime = *o.DelayTime
		}
	}
	return out
}

func (s *service) Details(ctx context.Context, id uuid.UUID) (*svc.DetailsView, error) {
	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	details, err := s.details.GetByOrderID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := &svc.DetailsView{
		Details:      make([]timeline.DetailProgress, 0, len(details)),
		OrderSummary: timeline.Summary(*o),
	}
	for _, d := range details {
		view.Details = append(view.Details, timeline.Detail(d))
	}
	return view, nil
}

// List pages through all orders; a non-positive pageSize returns every order
// on one page.
func (s *service) List(ctx context.Context, page, pageSize int) (*svc.OrderPage, error) {
	total, err := s.orders.GetTotalCount(ctx)
	if err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	var orders []entities.Order
	if pageSize <= 0 {
		orders, err = s.orders.GetAll(ctx)
		page, pageSize = 1, int(total)
	} else {
		orders, err = s.orders.GetPaged(ctx, page, pageSize)
	}
	if err != nil {
		return nil, err
	}
	pages := 1
	if pageSize > 0 {
		pages = int(math.Ceil(float64(total) / float64(pageSize)))
	}
	return &svc.OrderPage{
		Orders:     orders,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: total,
		TotalPages: pages,
	}, nil
}
