package errs_test

import (
	"errors"
	"testing"

	"printmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvalidTransitionError(t *testing.T) {
	t.Run("NewInvalidTransitionError", func(t *testing.T) {
		err := errs.NewInvalidTransitionError("draft", "confirmed")

		assert.Equal(t, "draft", err.From)
		assert.Equal(t, "confirmed", err.To)
		require.NoError(t, err.Cause)
		assert.Equal(t, "invalid transition: draft -> confirmed", err.Error())
		assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
	})

	t.Run("NewInvalidTransitionErrorWithCause", func(t *testing.T) {
		cause := errors.New("status changed concurrently")
		err := errs.NewInvalidTransitionErrorWithCause("pending", "accepted", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"invalid transition: pending -> accepted (cause: status changed concurrently)",
			err.Error())
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestPreconditionFailedError(t *testing.T) {
	t.Run("NewPreconditionFailedError", func(t *testing.T) {
		err := errs.NewPreconditionFailedError("before photo is required")

		assert.Equal(t, "before photo is required", err.Requirement)
		require.NoError(t, err.Cause)
		assert.Equal(t, "precondition failed: before photo is required", err.Error())
		assert.Equal(t, errs.ErrPreconditionFailed, err.Unwrap())
	})

	t.Run("NewPreconditionFailedErrorWithCause", func(t *testing.T) {
		cause := errors.New("photo lookup failed")
		err := errs.NewPreconditionFailedErrorWithCause("after photo is required", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "precondition failed: after photo is required (cause: photo lookup failed)", err.Error())
		require.ErrorIs(t, err, errs.ErrPreconditionFailed)
	})
}

func TestUnauthorizedError(t *testing.T) {
	t.Run("NewUnauthorizedError", func(t *testing.T) {
		err := errs.NewUnauthorizedError("accept order")

		assert.Equal(t, "accept order", err.Action)
		assert.Equal(t, "unauthorized: accept order", err.Error())
		assert.Equal(t, errs.ErrUnauthorized, err.Unwrap())
	})
}

func TestFormatNotSupportedError(t *testing.T) {
	t.Run("NewFormatNotSupportedError", func(t *testing.T) {
		err := errs.NewFormatNotSupportedError("ascii stl")

		assert.Equal(t, "ascii stl", err.Format)
		assert.Equal(t, "format not supported: ascii stl", err.Error())
		require.ErrorIs(t, err, errs.ErrFormatNotSupported)
	})
}

func TestInvalidFormatError(t *testing.T) {
	t.Run("NewInvalidFormatErrorWithCause", func(t *testing.T) {
		cause := errors.New("unexpected EOF")
		err := errs.NewInvalidFormatErrorWithCause("stl header", cause)

		assert.Equal(t, "stl header", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "invalid format: stl header (cause: unexpected EOF)", err.Error())
		require.ErrorIs(t, err, errs.ErrInvalidFormat)
	})
}

func TestDownstreamFailureError(t *testing.T) {
	t.Run("NewDownstreamFailureError", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := errs.NewDownstreamFailureError("payment gateway", cause)

		assert.Equal(t, "payment gateway", err.System)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "downstream failure: payment gateway (cause: connection refused)", err.Error())
		require.ErrorIs(t, err, errs.ErrDownstreamFailure)
	})
}
