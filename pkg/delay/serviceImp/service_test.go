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
	"wms/pkg/delay"
	"wms/pkg/delay/repositoryImp"
	"wms/pkg/delay/serviceImp"
)

func TestRecord(t *testing.T) {
	db, err := database.OpenInMemory()
	require.NoError(t, err)
	s := serviceImp.New(repositoryImp.New(db))
	ctx := context.Background()

	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	o := entities.Order{UId: uuid.New(), CustomerCode: "C1", ShipDate: start.Truncate(24 * time.Hour), OrderStatus: entities.OrderPending}
	require.NoError(t, db.Create(&o).Error)

	t.Run("validation", func(t *testing.T) {
		_, _, err := s.Record(ctx, o.UId, delay.Input{Hours: 0, Reason: "x"})
		assert.ErrorIs(t, err, delay.ErrHours)
		_, _, err = s.Record(ctx, o.UId, delay.Input{Hours: 1})
		assert.ErrorIs(t, err, delay.ErrReason)
	})

	t.Run("unknown order", func(t *testing.T) {
		_, _, err := s.Record(ctx, uuid.New(), delay.Input{Hours: 1, Reason: "x"})
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("delay puts order in Delay", func(t *testing.T) {
		h, got, err := s.Record(ctx, o.UId, delay.Input{StartTime: &start, Hours: 2.5, Reason: "truck late"})
		require.NoError(t, err)
		assert.Equal(t, "Manual", h.DelayType)
		assert.Equal(t, entities.OrderDelay, got.OrderStatus)
		require.NotNil(t, got.DelayTime)
		assert.Equal(t, 2.5, *got.DelayTime)
		require.NotNil(t, got.DelayStartTime)
		assert.True(t, start.Equal(*got.DelayStartTime))
	})

	t.Run("advance sets the window", func(t *testing.T) {
		_, got, err := s.Record(ctx, o.UId, delay.Input{StartTime: &start, Hours: 1, Reason: "early truck", DelayType: "Customer", IsAdvance: true})
		require.NoError(t, err)
		assert.True(t, got.IsAdvance)
		require.NotNil(t, got.AdvanceEndTime)
		assert.True(t, start.Add(time.Hour).Equal(*got.AdvanceEndTime))
	})

	list, err := s.ListByOrder(ctx, o.UId)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "truck late", list[0].Reason)
	assert.Equal(t, "Customer", list[1].DelayType)
}
