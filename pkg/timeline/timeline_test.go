package timeline

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wms/entities"
)

func lists(statuses ...entities.PLStatus) []entities.ShoppingList {
	out := make([]entities.ShoppingList, len(statuses))
	for i, s := range statuses {
		out[i] = entities.ShoppingList{PalletNo: i + 1, PLStatus: s}
	}
	return out
}

func orderWith(status entities.OrderStatus, statuses ...entities.PLStatus) entities.Order {
	return entities.Order{
		UId:          uuid.New(),
		CustomerCode: "C1",
		OrderStatus:  status,
		OrderDetails: []entities.OrderDetail{{ShoppingLists: lists(statuses...)}},
	}
}

func ptr[T any](v T) *T { return &v }

func TestCountListsExcludesCanceled(t *testing.T) {
	c := CountLists(lists(
		entities.PLNone,
		entities.PLCollected,
		entities.PLExported,
		entities.PLDelivered,
		entities.PLCanceled,
		entities.PLCanceled,
	))
	assert.Equal(t, Counts{Collected: 3, Prepared: 2, Loaded: 1, Active: 4}, c)
}

func TestDelayElapsed(t *testing.T) {
	now := time.Date(2026, 3, 2, 15, 0, 0, 0, time.UTC)

	o := orderWith(entities.OrderDelay)
	o.DelayStartTime = ptr(now.Add(-5 * time.Hour))
	o.DelayTime = ptr(2.0)
	assert.True(t, DelayElapsed(o, now))

	o.DelayTime = ptr(6.0)
	assert.False(t, DelayElapsed(o, now))

	o.DelayTime = nil
	assert.False(t, DelayElapsed(o, now))

	o.DelayTime = ptr(2.0)
	o.OrderStatus = entities.OrderPending
	assert.False(t, DelayElapsed(o, now))
}

func TestNextStatus(t *testing.T) {
	now := time.Date(2026, 3, 2, 15, 0, 0, 0, time.UTC)
	elapsed := func(o entities.Order) entities.Order {
		o.DelayStartTime = ptr(now.Add(-5 * time.Hour))
		o.DelayTime = ptr(2.0)
		return o
	}
	running := func(o entities.Order) entities.Order {
		o.DelayStartTime = ptr(now.Add(-1 * time.Hour))
		o.DelayTime = ptr(2.0)
		return o
	}
	cases := []struct {
		name  string
		order entities.Order
		want  entities.OrderStatus
	}{
		{"shipped stays", orderWith(entities.OrderShipped), entities.OrderShipped},
		{"running delay stays", running(orderWith(entities.OrderDelay, entities.PLDelivered)), entities.OrderDelay},
		{"elapsed all loaded", elapsed(orderWith(entities.OrderDelay, entities.PLDelivered, entities.PLCanceled)), entities.OrderCompleted},
		{"elapsed partly collected", elapsed(orderWith(entities.OrderDelay, entities.PLCollected, entities.PLNone)), entities.OrderPending},
		{"elapsed nothing started", elapsed(orderWith(entities.OrderDelay, entities.PLNone)), entities.OrderPlanned},
		{"only canceled pallets", orderWith(entities.OrderPending, entities.PLCanceled), entities.OrderPlanned},
		{"no pallets", orderWith(entities.OrderPlanned), entities.OrderPlanned},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NextStatus(tc.order, now))
		})
	}
}

func TestIntervals(t *testing.T) {
	start := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	got := Intervals([]entities.DelayHistory{
		{StartTime: start, DelayTime: 1.5, Reason: "truck late", DelayType: "Manual"},
		{StartTime: start.Add(48 * time.Hour), DelayTime: 2, IsAdvance: true},
	})
	require.Len(t, got, 2)
	assert.Equal(t, start.Add(90*time.Minute), got[0].End)
	assert.Equal(t, "truck late", got[0].Reason)
	assert.True(t, got[1].IsAdvance)
}

func TestAdvanceEvents(t *testing.T) {
	start := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	hist := []entities.DelayHistory{
		{UId: uuid.New(), StartTime: start, DelayTime: 1, IsAdvance: true},
		{UId: uuid.New(), StartTime: start, DelayTime: 3},
	}

	t.Run("order window wins", func(t *testing.T) {
		o := orderWith(entities.OrderPlanned)
		o.IsAdvance = true
		o.AdvanceStartTime = ptr(start)
		o.AdvanceEndTime = ptr(start.Add(4 * time.Hour))
		ev := AdvanceEvents(o, hist)
		require.Len(t, ev, 1)
		assert.Equal(t, "advance-"+o.UId.String(), ev[0].ID)
		assert.Equal(t, start.Add(4*time.Hour), ev[0].End)
		assert.Equal(t, "C1", ev[0].Resource)
	})

	t.Run("falls back to history", func(t *testing.T) {
		o := orderWith(entities.OrderPlanned)
		ev := AdvanceEvents(o, hist)
		require.Len(t, ev, 1)
		assert.Equal(t, "advance-"+o.UId.String()+"-"+hist[0].UId.String(), ev[0].ID)
		assert.Equal(t, start.Add(time.Hour), ev[0].End)
	})

	t.Run("none", func(t *testing.T) {
		assert.Empty(t, AdvanceEvents(orderWith(entities.OrderPlanned), hist[1:]))
	})
}

func TestDetail(t *testing.T) {
	d := entities.OrderDetail{
		UId:    uuid.New(),
		PartNo: "P-1",
		ShoppingLists: lists(
			entities.PLDelivered,
			entities.PLExported,
			entities.PLNone,
			entities.PLCanceled,
		),
	}
	p := Detail(d)
	assert.Equal(t, 66.67, p.CollectPercent)
	assert.Equal(t, 66.67, p.PreparePercent)
	assert.Equal(t, 33.33, p.LoadingPercent)
	assert.Equal(t, StageLoading, p.CurrentStage)
	assert.Equal(t, "Pending", p.Status)

	d.ShoppingLists = lists(entities.PLDelivered, entities.PLCanceled)
	p = Detail(d)
	assert.Equal(t, 100.0, p.LoadingPercent)
	assert.Equal(t, StageLoaded, p.CurrentStage)
	assert.Equal(t, "Completed", p.Status)

	d.ShoppingLists = nil
	p = Detail(d)
	assert.Zero(t, p.CollectPercent)
	assert.Equal(t, StageNotStarted, p.CurrentStage)
}

func TestSummary(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	o := orderWith(entities.OrderDelay)
	o.StartTime = day.Add(8 * time.Hour)
	o.EndTime = day.Add(10 * time.Hour)
	o.DelayStartTime = ptr(day.Add(9 * time.Hour))
	o.DelayTime = ptr(1.5)
	o.ApiOrderStatus = 7

	s := Summary(o)
	require.NotNil(t, s)
	assert.Equal(t, "08:00:00 - 11:30:00", s.NewTimeRange)
	assert.Equal(t, 1.5, s.DelayTime)
	assert.Equal(t, int16(7), s.ApiStatus)

	o.AcStartTime = ptr(day.Add(8*time.Hour + 15*time.Minute))
	assert.Equal(t, "08:15:00 - 11:30:00", Summary(o).NewTimeRange)

	o.OrderStatus = entities.OrderPending
	assert.Nil(t, Summary(o))
}
