package validator

import (
	"testing"

	domainerrors "linkvault/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fundRequest struct {
	Amount string `json:"amount" validate:"required"`
	Limit  int    `json:"limit" validate:"omitempty,min=1,max=100"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&fundRequest{Amount: "1"}))

	err := v.Validate(&fundRequest{Limit: 500})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Amount required, Limit max", appErr.Details())
}
