package serviceImp

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"wms/entities"
	orderRepo "wms/pkg/order/repository"
	"wms/pkg/statistic/repository"
	svc "wms/pkg/statistic/service"
)

type service struct {
	stats  repository.StatisticRepository
	orders orderRepo.OrderRepository
}

func New(s repository.StatisticRepository, o orderRepo.OrderRepository) svc.StatisticService {
	return &service{stats: s, orders: o}
}

func window(q svc.Query) repository.Filter {
	f := repository.Filter{Customers: q.Customers}
	if !q.IncludeAll {
		from := q.From
		to := q.To.AddDate(0, 0, 1)
		f.From, f.To = &from, &to
	}
	return f
}

func shipped(s entities.OrderStatus) bool { return s == entities.OrderCompleted || s == entities.OrderShipped }
func pending(s entities.OrderStatus) bool { return s == entities.OrderPlanned || s == entities.OrderPending }

// tally folds orders and delay rows into one Overview. Advance orders are
// the union of orders flagged on the order and orders with an advance
// history entry.
func tally(orders []repository.OrderRow, delays []repository.DelayRow) svc.Overview {
	var out svc.Overview
	advance := map[uuid.UUID]bool{}
	for _, o := range orders {
		out.TotalOrders++
		if shipped(o.OrderStatus) {
			out.Shipped++
		}
		if pending(o.OrderStatus) {
			out.Pending++
		}
		if o.IsAdvance {
			advance[o.UId] = true
		}
	}
	delayed := map[uuid.UUID]bool{}
	for _, d := range delays {
		delayed[d.OId] = true
		if d.IsAdvance {
			advance[d.OId] = true
		}
		out.TotalDelayMinutes += d.DelayTime
	}
	out.DelayedOrders = len(delayed)
	out.AdvanceOrders = len(advance)
	return out
}

func (s *service) Overview(ctx context.Context, q svc.Query) (*svc.Overview, error) {
	f := window(q)
	orders, err := s.stats.Orders(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	delays, err := s.stats.Delays(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("load delays: %w", err)
	}
	out := tally(orders, delays)
	return &out, nil
}

// customersIn lists the distinct customers with orders under f, sorted.
func customersIn(orders []repository.OrderRow) []string {
	seen := map[string]bool{}
	var out []string
	for _, o := range orders {
		if o.CustomerCode != "" && !seen[o.CustomerCode] {
			seen[o.CustomerCode] = true
			out = append(out, o.CustomerCode)
		}
	}
	sort.Strings(out)
	return out
}

func (s *service) OverviewByCustomers(ctx context.Context, q svc.Query) ([]svc.CustomerOverview, error) {
	f := window(q)
	orders, err := s.stats.Orders(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	customers := q.Customers
	if len(customers) == 0 {
		customers = customersIn(orders)
		f.Customers = customers
	}
	out := make([]svc.CustomerOverview, 0, len(customers))
	if len(customers) == 0 {
		return out, nil
	}
	delays, err := s.stats.Delays(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("load delays: %w", err)
	}
	byCustOrders := map[string][]repository.OrderRow{}
	for _, o := range orders {
		byCustOrders[o.CustomerCode] = append(byCustOrders[o.CustomerCode], o)
	}
	byCustDelays := map[string][]repository.DelayRow{}
	for _, d := range delays {
		byCustDelays[d.CustomerCode] = append(byCustDelays[d.CustomerCode], d)
	}
	for _, c := range customers {
		out = append(out, svc.CustomerOverview{CustomerCode: c, Overview: tally(byCustOrders[c], byCustDelays[c])})
	}
	return out, nil
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// MonthlyByCustomers counts orders per customer per ship month. The month
// axis covers the requested window, or every month with orders when
// IncludeAll is set.
func (s *service) MonthlyByCustomers(ctx context.Context, q svc.Query) (*svc.MonthlySeries, error) {
	empty := &svc.MonthlySeries{Labels: []string{}, Datasets: []svc.Dataset{}}
	var first, last time.Time
	if q.IncludeAll {
		lo, hi, err := s.stats.ShipDateBounds(ctx)
		if err != nil {
			return nil, err
		}
		if lo == nil || hi == nil {
			return empty, nil
		}
		first, last = monthStart(*lo), monthStart(*hi)
	} else {
		first, last = monthStart(q.From), monthStart(q.To)
	}
	from, to := first, last.AddDate(0, 1, 0)
	orders, err := s.stats.Orders(ctx, repository.Filter{From: &from, To: &to, Customers: q.Customers})
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	customers := q.Customers
	if len(customers) == 0 {
		customers = customersIn(orders)
	}
	if len(customers) == 0 {
		return empty, nil
	}

	var labels []string
	index := map[string]int{}
	for m := first; !m.After(last); m = m.AddDate(0, 1, 0) {
		key := m.Format("2006-01")
		index[key] = len(labels)
		labels = append(labels, key)
	}
	counts := map[string][]int{}
	for _, c := range customers {
		counts[c] = make([]int, len(labels))
	}
	for _, o := range orders {
		row, ok := counts[o.CustomerCode]
		if !ok {
			continue
		}
		if i, ok := index[o.ShipDate.In(first.Location()).Format("2006-01")]; ok {
			row[i]++
		}
	}
	out := &svc.MonthlySeries{Labels: labels, Datasets: make([]svc.Dataset, 0, len(customers))}
	for _, c := range customers {
		out.Datasets = append(out.Datasets, svc.Dataset{Label: c, Data: counts[c]})
	}
	return out, nil
}

// OrderStatistics is the per-customer status breakdown over every order.
// A shipped order counts as Advance when flagged, otherwise as Completed.
func (s *service) OrderStatistics(ctx context.Context) ([]svc.CustomerOrderStats, error) {
	orders, err := s.orders.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	var codes []string
	byCode := map[string]*svc.CustomerOrderStats{}
	for _, o := range orders {
		if o.CustomerCode == "" {
			continue
		}
		st, ok := byCode[o.CustomerCode]
		if !ok {
			st = &svc.CustomerOrderStats{CustomerCode: o.CustomerCode}
			byCode[o.CustomerCode] = st
			codes = append(codes, o.CustomerCode)
		}
		st.Plan++
		switch o.OrderStatus {
		case entities.OrderPending:
			st.Progress++
		case entities.OrderCompleted:
			st.Completed++
		case entities.OrderShipped:
			if o.IsAdvance {
				st.Advance++
			} else {
				st.Completed++
			}
		case entities.OrderDelay:
			st.Delay++
		}
	}
	out := make([]svc.CustomerOrderStats, 0, len(codes))
	for _, c := range codes {
		out = append(out, *byCode[c])
	}
	return out, nil
}
