package queries_test

import (
	"testing"
	"time"

	"ordermanagement/internal/core/application/usecases/queries"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery(t *testing.T) {
	q, err := queries.NewGetOrderQuery(42)
	require.NoError(t, err)
	assert.Equal(t, kernel.ID(42), q.OrderID())
	require.NoError(t, q.Validate())

	_, err = queries.NewGetOrderQuery(0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	var zero queries.GetOrderQuery
	assert.ErrorIs(t, zero.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
}

func TestNewListOrdersQueries(t *testing.T) {
	all := queries.NewListAllOrdersQuery()
	require.NoError(t, all.Validate())
	assert.Nil(t, all.UserID())
	assert.Nil(t, all.CarID())

	byUser, err := queries.NewListOrdersByUserQuery(3)
	require.NoError(t, err)
	require.NotNil(t, byUser.UserID())
	assert.Equal(t, kernel.ID(3), *byUser.UserID())
	assert.Nil(t, byUser.CarID())

	byCar, err := queries.NewListOrdersByCarQuery(4)
	require.NoError(t, err)
	require.NotNil(t, byCar.CarID())
	assert.Equal(t, kernel.ID(4), *byCar.CarID())
	assert.Nil(t, byCar.UserID())

	_, err = queries.NewListOrdersByUserQuery(-1)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	_, err = queries.NewListOrdersByCarQuery(0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	var zero queries.ListOrdersQuery
	assert.ErrorIs(t, zero.Validate(), queries.ErrListOrdersQueryIsNotConstructed)
}

func TestNewGetOverdueOrdersQuery(t *testing.T) {
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	q := queries.NewGetOverdueOrdersQuery(now)
	require.NoError(t, q.Validate())
	assert.Equal(t, now, q.Now())

	var zero queries.GetOverdueOrdersQuery
	assert.ErrorIs(t, zero.Validate(), queries.ErrGetOverdueOrdersQueryIsNotConstructed)
}
