package serviceImp_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"wms/database"
	"wms/entities"
	orderRepoImp "wms/pkg/order/repositoryImp"
	"wms/pkg/statistic/repositoryImp"
	svc "wms/pkg/statistic/service"
	"wms/pkg/statistic/serviceImp"
)

var day0 = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func order(t *testing.T, db *gorm.DB, customer string, shipDay int, status entities.OrderStatus, advance bool) uuid.UUID {
	t.Helper()
	o := entities.Order{
		UId:          uuid.New(),
		CustomerCode: customer,
		ShipDate:     day0.AddDate(0, 0, shipDay),
		OrderStatus:  status,
		IsAdvance:    advance,
	}
	require.NoError(t, db.Create(&o).Error)
	return o.UId
}

func history(t *testing.T, db *gorm.DB, oid uuid.UUID, startDay int, hours float64, advance bool) {
	t.Helper()
	require.NoError(t, db.Create(&entities.DelayHistory{
		OId:       oid,
		StartTime: day0.AddDate(0, 0, startDay).Add(9 * time.Hour),
		DelayTime: hours,
		IsAdvance: advance,
	}).Error)
}

func seed(t *testing.T) (*gorm.DB, svc.StatisticService) {
	t.Helper()
	db, err := database.OpenInMemory()
	require.NoError(t, err)

	a1 := order(t, db, "A", 0, entities.OrderCompleted, true)
	a2 := order(t, db, "A", 1, entities.OrderDelay, false)
	order(t, db, "A", 2, entities.OrderPlanned, false)
	b1 := order(t, db, "B", 0, entities.OrderShipped, false)
	order(t, db, "B", 40, entities.OrderPending, false)

	history(t, db, a2, 1, 2, false)
	history(t, db, a2, 1, 1.5, false)
	history(t, db, a1, 0, 1, true) // same order as the order-level flag
	history(t, db, b1, 0, 3, true)

	return db, serviceImp.New(repositoryImp.New(db), orderRepoImp.New(db))
}

func TestOverview(t *testing.T) {
	_, s := seed(t)
	q := svc.Query{From: day0, To: day0.AddDate(0, 0, 5)}

	out, err := s.Overview(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, 4, out.TotalOrders)
	assert.Equal(t, 2, out.Shipped)
	assert.Equal(t, 1, out.Pending)
	assert.Equal(t, 3, out.DelayedOrders)
	// a1 is flagged twice but counted once
	assert.Equal(t, 2, out.AdvanceOrders)
	assert.Equal(t, 7.5, out.TotalDelayMinutes)

	q.Customers = []string{"B"}
	out, err = s.Overview(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, 1, out.TotalOrders)
	assert.Equal(t, 3.0, out.TotalDelayMinutes)

	out, err = s.Overview(context.Background(), svc.Query{IncludeAll: true})
	require.NoError(t, err)
	assert.Equal(t, 5, out.TotalOrders)
}

func TestOverviewByCustomers(t *testing.T) {
	_, s := seed(t)
	out, err := s.OverviewByCustomers(context.Background(), svc.Query{From: day0, To: day0.AddDate(0, 0, 5)})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "A", out[0].CustomerCode)
	assert.Equal(t, 3, out[0].TotalOrders)
	assert.Equal(t, 2, out[0].DelayedOrders)
	assert.Equal(t, "B", out[1].CustomerCode)
	assert.Equal(t, 1, out[1].Shipped)

	out, err = s.OverviewByCustomers(context.Background(), svc.Query{From: day0.AddDate(1, 0, 0), To: day0.AddDate(1, 0, 1)})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestMonthlyByCustomers(t *testing.T) {
	_, s := seed(t)
	out, err := s.MonthlyByCustomers(context.Background(), svc.Query{IncludeAll: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-03", "2026-04"}, out.Labels)
	require.Len(t, out.Datasets, 2)
	assert.Equal(t, svc.Dataset{Label: "A", Data: []int{3, 0}}, out.Datasets[0])
	assert.Equal(t, svc.Dataset{Label: "B", Data: []int{1, 1}}, out.Datasets[1])

	out, err = s.MonthlyByCustomers(context.Background(), svc.Query{From: day0, To: day0, Customers: []string{"B"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-03"}, out.Labels)
	assert.Equal(t, []int{1}, out.Datasets[0].Data)
}

func TestMonthlyByCustomers_NoOrders(t *testing.T) {
	db, err := database.OpenInMemory()
	require.NoError(t, err)
	s := serviceImp.New(repositoryImp.New(db), orderRepoImp.New(db))
	out, err := s.MonthlyByCustomers(context.Background(), svc.Query{IncludeAll: true})
	require.NoError(t, err)
	assert.Empty(t, out.Labels)
	assert.NotNil(t, out.Datasets)
}

func TestOrderStatistics(t *testing.T) {
	db, s := seed(t)
	order(t, db, "B", 3, entities.OrderShipped, true)

	out, err := s.OrderStatistics(context.Background())
	require.NoError(t, err)
	byCode := map[string]svc.CustomerOrderStats{}
	for _, st := range out {
		byCode[st.CustomerCode] = st
	}
	assert.Equal(t, svc.CustomerOrderStats{CustomerCode: "A", Plan: 3, Completed: 1, Delay: 1}, byCode["A"])
	assert.Equal(t, svc.CustomerOrderStats{CustomerCode: "B", Plan: 3, Progress: 1, Completed: 1, Advance: 1}, byCode["B"])
}
