package queries_test

import (
	"testing"

	"printmarket/internal/core/application/usecases/queries"
	"printmarket/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery_Valid(t *testing.T) {
	orderID := kernel.NewUUID()
	actorID := kernel.NewUUID()

	query, err := queries.NewGetOrderQuery(orderID, actorID)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, orderID, query.OrderID())
	assert.Equal(t, actorID, query.ActorID())
}

func TestNewGetOrderQuery_EmptyIDs(t *testing.T) {
	_, err := queries.NewGetOrderQuery(kernel.UUID{}, kernel.NewUUID())
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = queries.NewGetOrderQuery(kernel.NewUUID(), kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetOrderQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderQuery{}

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
}
