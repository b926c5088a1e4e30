package billing_test

import (
	"testing"
	"time"

	"printmarket/internal/core/domain/model/billing"
	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeAmounts(t *testing.T) {
	t.Run("no_refunds", func(t *testing.T) {
		// When
		amounts := billing.ComputeAmounts(19.82, 0, 0.15)

		// Then
		assert.InDelta(t, 19.82, amounts.Net, 1e-9)
		assert.InDelta(t, 2.97, amounts.CommissionAmount, 1e-9)
		assert.InDelta(t, 16.85, amounts.ProducerAmount, 1e-9)
		assert.Zero(t, amounts.RefundDeduction)
	})

	t.Run("refunds_reduce_the_net", func(t *testing.T) {
		// When
		amounts := billing.ComputeAmounts(100.0, 40.0, 0.15)

		// Then
		assert.InDelta(t, 60.0, amounts.Net, 1e-9)
		assert.InDelta(t, 9.0, amounts.CommissionAmount, 1e-9)
		assert.InDelta(t, 51.0, amounts.ProducerAmount, 1e-9)
		assert.InDelta(t, 40.0, amounts.RefundDeduction, 1e-9)
	})

	t.Run("refunds_above_price_floor_at_zero", func(t *testing.T) {
		// When
		amounts := billing.ComputeAmounts(50.0, 80.0, 0.15)

		// Then
		assert.Zero(t, amounts.Net)
		assert.Zero(t, amounts.CommissionAmount)
		assert.Zero(t, amounts.ProducerAmount)
	})

	t.Run("amounts_reconcile", func(t *testing.T) {
		// Given
		amounts := billing.ComputeAmounts(123.45, 23.45, 0.15)

		// Then: producer + commission adds back up to the net.
		assert.InDelta(t, amounts.Net, amounts.ProducerAmount+amounts.CommissionAmount, 0.01)
	})
}

func TestNewPayout(t *testing.T) {
	t.Run("creates_scheduled_payout", func(t *testing.T) {
		// Given
		amounts := billing.ComputeAmounts(100, 10, 0.15)
		scheduled := time.Now().Add(billing.DefaultPayoutDelay)

		// When
		payout, err := billing.NewPayout(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			amounts, scheduled, time.Now())

		// Then
		require.NoError(t, err)
		require.NoError(t, payout.Validate())
		assert.Equal(t, billing.PayoutScheduled, payout.Status())
		assert.InDelta(t, amounts.ProducerAmount, payout.Amount(), 1e-9)
		assert.InDelta(t, 10.0, payout.RefundDeduction(), 1e-9)
		assert.Equal(t, scheduled, payout.ScheduledDate())
	})

	t.Run("requires_valid_ids", func(t *testing.T) {
		// When
		_, err := billing.NewPayout(
			kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(),
			billing.Amounts{}, time.Now(), time.Now())

		// Then
		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var payout billing.Payout
		require.ErrorIs(t, payout.Validate(), billing.ErrPayoutIsNotConstructed)
	})
}

func TestNewRefund(t *testing.T) {
	t.Run("creates_pending_refund", func(t *testing.T) {
		// When
		refund, err := billing.NewRefund(
			kernel.NewUUID(), kernel.NewUUID(), 25.504, "partial refund after dispute", time.Now())

		// Then
		require.NoError(t, err)
		require.NoError(t, refund.Validate())
		assert.Equal(t, billing.RefundPending, refund.Status())
		assert.InDelta(t, 25.50, refund.Amount(), 1e-9)
	})

	t.Run("rejects_non_positive_amount", func(t *testing.T) {
		// When
		_, err := billing.NewRefund(kernel.NewUUID(), kernel.NewUUID(), 0, "", time.Now())

		// Then
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestPayoutStatusFromString(t *testing.T) {
	parsed, err := billing.PayoutStatusFromString("scheduled")
	require.NoError(t, err)
	assert.Equal(t, billing.PayoutScheduled, parsed)

	_, err = billing.PayoutStatusFromString("queued")
	require.Error(t, err)
}
