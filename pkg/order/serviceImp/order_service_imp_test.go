package serviceImp_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"wms/database"
	"wms/entities"
	custRepoImp "wms/pkg/customer/repositoryImp"
	"wms/pkg/order/repositoryImp"
	svc "wms/pkg/order/service"
	"wms/pkg/order/serviceImp"
)

func setup(t *testing.T) (*gorm.DB, svc.OrderService) {
	t.Helper()
	db, err := database.OpenInMemory()
	require.NoError(t, err)
	s := serviceImp.New(
		repositoryImp.New(db),
		repositoryImp.NewDetail(db),
		repositoryImp.NewDelayHistory(db),
		custRepoImp.New(db),
	)
	return db, s
}

func ptr[T any](v T) *T { return &v }

func seedOrder(t *testing.T, db *gorm.DB, o entities.Order, statuses ...entities.PLStatus) entities.Order {
	t.Helper()
	if o.UId == uuid.Nil {
		o.UId = uuid.New()
	}
	d := entities.OrderDetail{UId: uuid.New(), OId: o.UId, PartNo: "P-1", PalletSize: "1100x1100", Quantity: 40, TotalPallet: len(statuses), Warehouse: "W1"}
	for i, s := range statuses {
		d.ShoppingLists = append(d.ShoppingLists, entities.ShoppingList{UId: uuid.New(), ODId: d.UId, PalletNo: i + 1, PLStatus: s})
	}
	o.OrderDetails = []entities.OrderDetail{d}
	o.TotalPallet = len(statuses)
	require.NoError(t, db.Create(&o).Error)
	return o
}

func TestCalendar_ReevaluatesElapsedDelay(t *testing.T) {
	db, s := setup(t)
	ctx := context.Background()
	now := time.Now().UTC()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&entities.Customer{CustomerCode: "C1", CustomerName: "Customer One"}).Error)

	elapsed := seedOrder(t, db, entities.Order{
		CustomerCode:   "C1",
		ShipDate:       day,
		StartTime:      day.Add(8 * time.Hour),
		EndTime:        day.Add(10 * time.Hour),
		OrderStatus:    entities.OrderDelay,
		DelayStartTime: ptr(now.Add(-5 * time.Hour)),
		DelayTime:      ptr(2.0),
	}, entities.PLDelivered, entities.PLDelivered, entities.PLCanceled)

	running := seedOrder(t, db, entities.Order{
		CustomerCode:   "C1",
		ShipDate:       day,
		StartTime:      day.Add(9 * time.Hour),
		EndTime:        day.Add(11 * time.Hour),
		OrderStatus:    entities.OrderDelay,
		DelayStartTime: ptr(now.Add(-1 * time.Hour)),
		DelayTime:      ptr(4.0),
	}, entities.PLCollected)

	view, err := s.Calendar(ctx, day)
	require.NoError(t, err)
	require.Len(t, view.Orders, 2)
	assert.Equal(t, day.Format("2006-01-02"), view.RequestedDate)
	require.Len(t, view.Customers, 1)
	assert.Equal(t, "Customer One", view.Customers[0].CustomerName)

	byID := map[string]svc.CalendarOrder{}
	for _, o := range view.Orders {
		byID[o.UId] = o
	}
	got := byID[elapsed.UId.String()]
	assert.Equal(t, entities.OrderCompleted, got.Status)
	assert.Equal(t, "Completed", got.StatusText)
	assert.Equal(t, "2 / 3", got.LoadCont)
	assert.Nil(t, got.DelayStartTime)

	still := byID[running.UId.String()]
	assert.Equal(t, entities.OrderDelay, still.Status)
	assert.Equal(t, 4.0, still.DelayTime)
	assert.Equal(t, "1 / 1", still.CollectPallet)

	var stored entities.Order
	require.NoError(t, db.Where("uid = ?", elapsed.UId).First(&stored).Error)
	assert.Equal(t, entities.OrderCompleted, stored.OrderStatus)
	// the delay window itself is kept for history
	assert.NotNil(t, stored.DelayStartTime)
}

func TestCalendar_AdvanceEventsAndIntervals(t *testing.T) {
	db, s := setup(t)
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	o := seedOrder(t, db, entities.Order{
		CustomerCode: "C9",
		ShipDate:     day,
		StartTime:    day.Add(8 * time.Hour),
		EndTime:      day.Add(9 * time.Hour),
	}, entities.PLNone)
	h := entities.DelayHistory{UId: uuid.New(), OId: o.UId, StartTime: day.Add(6 * time.Hour), DelayTime: 1, IsAdvance: true}
	require.NoError(t, db.Create(&h).Error)

	view, err := s.Calendar(context.Background(), day)
	require.NoError(t, err)
	require.Len(t, view.Orders, 1)
	assert.Len(t, view.Orders[0].DelayIntervals, 1)
	require.Len(t, view.AdvanceEvents, 1)
	assert.Equal(t, "advance-"+o.UId.String()+"-"+h.UId.String(), view.AdvanceEvents[0].ID)
	// no customer row for C9
	assert.Empty(t, view.Customers)
}

func TestCalendar_EmptyDay(t *testing.T) {
	_, s := setup(t)
	view, err := s.Calendar(context.Background(), time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, view.Orders)
	assert.NotNil(t, view.AdvanceEvents)
}

func TestDetailsAndSummary(t *testing.T) {
	db, s := setup(t)
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	o := seedOrder(t, db, entities.Order{
		CustomerCode:   "C1",
		ShipDate:       day,
		StartTime:      day.Add(8 * time.Hour),
		EndTime:        day.Add(10 * time.Hour),
		OrderStatus:    entities.OrderDelay,
		DelayStartTime: ptr(day.Add(9 * time.Hour)),
		DelayTime:      ptr(2.0),
	}, entities.PLCollected, entities.PLNone)

	view, err := s.Details(context.Background(), o.UId)
	require.NoError(t, err)
	require.Len(t, view.Details, 1)
	assert.Equal(t, 50.0, view.Details[0].CollectPercent)
	require.NotNil(t, view.OrderSummary)
	assert.Equal(t, "08:00:00 - 12:00:00", view.OrderSummary.NewTimeRange)

	_, err = s.Details(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestList(t *testing.T) {
	db, s := setup(t)
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		seedOrder(t, db, entities.Order{CustomerCode: "C1", ShipDate: day.AddDate(0, 0, i), StartTime: day.AddDate(0, 0, i)})
	}

	page, err := s.List(context.Background(), 2, 2)
	require.NoError(t, err)
	assert.Len(t, page.Orders, 2)
	assert.Equal(t, int64(5), page.TotalCount)
	assert.Equal(t, 3, page.TotalPages)
	// newest first
	assert.True(t, page.Orders[0].ShipDate.After(page.Orders[1].ShipDate))

	all, err := s.List(context.Background(), 1, 0)
	require.NoError(t, err)
	assert.Len(t, all.Orders, 5)
	assert.Equal(t, 1, all.TotalPages)
}

func TestPickingList(t *testing.T) {
	db, s := setup(t)
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	o := seedOrder(t, db, entities.Order{CustomerCode: "C1", ShipDate: day}, entities.PLCollected, entities.PLCanceled)

	file, err := s.PickingList(context.Background(), o.UId)
	require.NoError(t, err)
	assert.Equal(t, "PickingList_Order_"+o.UId.String()+"_20260302.xlsx", file.FileName)

	f, err := excelize.OpenReader(bytes.NewReader(file.Body))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Picking List")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 7)
	assert.Equal(t, "Part No", rows[4][0])
	assert.Equal(t, serviceImp.PLStatusText(entities.PLCollected), rows[5][6])
	assert.Equal(t, "Bị Huỷ", rows[6][6])
}
