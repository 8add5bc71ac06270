package repositoryImp_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"wms/database"
	"wms/entities"
	"wms/pkg/customer/repositoryImp"
)

func TestCustomerRepo(t *testing.T) {
	db, err := database.OpenInMemory()
	require.NoError(t, err)
	repo := repositoryImp.New(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entities.Customer{CustomerCode: "B", CustomerName: "Bravo"}))
	require.NoError(t, repo.Create(ctx, &entities.Customer{CustomerCode: "A", CustomerName: "Alpha"}))
	assert.Error(t, repo.Create(ctx, &entities.Customer{CustomerCode: "A", CustomerName: "Dup"}))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "A", all[0].CustomerCode)

	found, err := repo.GetByCodes(ctx, []string{"A", "Z"})
	require.NoError(t, err)
	assert.Len(t, found, 1)
	assert.Equal(t, "Alpha", found["A"].CustomerName)

	require.NoError(t, repo.UpdateByCode(ctx, "A", &entities.Customer{CustomerName: "Alpha 2", UpdatedBy: "ops"}))
	c, err := repo.GetByCode(ctx, "A")
	require.NoError(t, err)
	assert.Equal(t, "Alpha 2", c.CustomerName)
	assert.Equal(t, "ops", c.UpdatedBy)

	_, err = repo.GetByCode(ctx, "Z")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, repo.UpdateByCode(ctx, "Z", &entities.Customer{}), gorm.ErrRecordNotFound)
	assert.ErrorIs(t, repo.DeleteByCode(ctx, "Z"), gorm.ErrRecordNotFound)

	require.NoError(t, repo.DeleteByCode(ctx, "B"))
	n, err := repo.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
