package repositoryImp_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"wms/database"
	"wms/entities"
	"wms/pkg/schedule/repositoryImp"
)

func TestScheduleRepo(t *testing.T) {
	db, err := database.OpenInMemory()
	require.NoError(t, err)
	repo := repositoryImp.New(db)
	ctx := context.Background()

	for _, day := range []time.Weekday{time.Tuesday, time.Monday} {
		require.NoError(t, repo.Create(ctx, &entities.ShippingSchedule{
			CustomerCode: "C1", TransCd: "T1", Weekday: day, CutOffTime: datatypes.NewTime(12, 0, 0, 0),
		}))
	}
	// the key is unique
	assert.Error(t, repo.Create(ctx, &entities.ShippingSchedule{CustomerCode: "C1", TransCd: "T1", Weekday: time.Monday}))

	got, err := repo.GetAllByCustomer(ctx, "C1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, time.Monday, got[0].Weekday)

	require.NoError(t, repo.UpdateByKey(ctx, "C1", "T1", time.Monday, &entities.ShippingSchedule{CutOffTime: datatypes.NewTime(16, 45, 0, 0)}))
	got, err = repo.GetAllByCustomers(ctx, []string{"C1"})
	require.NoError(t, err)
	for _, s := range got {
		if s.Weekday == time.Monday {
			assert.Equal(t, datatypes.NewTime(16, 45, 0, 0), s.CutOffTime)
		}
	}

	assert.ErrorIs(t, repo.UpdateByKey(ctx, "C1", "T1", time.Sunday, &entities.ShippingSchedule{}), gorm.ErrRecordNotFound)
	assert.ErrorIs(t, repo.DeleteByKey(ctx, "C1", "T9", time.Monday), gorm.ErrRecordNotFound)

	require.NoError(t, repo.DeleteByKey(ctx, "C1", "T1", time.Tuesday))
	n, err := repo.DeleteAllByCustomer(ctx, "C1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
