package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTypedErrorsMatchSentinels(t *testing.T) {
	cfgErr := fmt.Errorf("posting invoice: %w", &ConfigurationError{Capability: "inventory", Tried: []string{"1140.01", "1140"}})
	assert.ErrorIs(t, cfgErr, ErrConfiguration)
	assert.NotErrorIs(t, cfgErr, ErrValidation)
	assert.Contains(t, cfgErr.Error(), "1140.01, 1140")

	valErr := fmt.Errorf("posting: %w", NewValidationError("total", "must be at least %s", "100"))
	assert.ErrorIs(t, valErr, ErrValidation)
	assert.Equal(t, "posting: total: must be at least 100", valErr.Error())

	unbalanced := &UnbalancedEntryError{Debit: decimal.NewFromInt(10), Credit: decimal.NewFromInt(9)}
	assert.ErrorIs(t, unbalanced, ErrUnbalanced)
	assert.Equal(t, "debits sum is 10.00 and credits sum is 9.00", unbalanced.Error())

	var target *UnbalancedEntryError
	assert.True(t, errors.As(fmt.Errorf("wrap: %w", unbalanced), &target))
}

func TestAppErrorUnwrap(t *testing.T) {
	appErr := NewAppError(500, "failed to insert entries", ErrNotFound)
	assert.ErrorIs(t, appErr, ErrNotFound)
	assert.Equal(t, "failed to insert entries: resource not found", appErr.Error())
	assert.Equal(t, "bare", NewAppError(500, "bare", nil).Error())
}
