package accounting

import (
	"fmt"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceTolerance is the largest debit/credit difference an entry group may carry.
var BalanceTolerance = decimal.NewFromFloat(0.01)

// CentPlaces is the precision of stored ledger amounts (NUMERIC(20,2)).
const CentPlaces = 2

// IsWholeCents reports whether amount is representable without rounding in a ledger column.
func IsWholeCents(amount decimal.Decimal) bool {
	return amount.Equal(amount.Round(CentPlaces))
}

// RequireCents rejects document amounts finer than a cent. Storing them would round each line
// independently and could commit a group that only balanced before rounding.
func RequireCents(field string, amounts ...decimal.Decimal) error {
	for _, amount := range amounts {
		if !IsWholeCents(amount) {
			return apperrors.NewValidationError(field, "amount %s has more than %d decimal places", amount.String(), CentPlaces)
		}
	}
	return nil
}

// SumEntries totals the debit and credit sides of a group.
func SumEntries(entries []domain.JournalEntry) (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, e := range entries {
		debit = debit.Add(e.Debit)
		credit = credit.Add(e.Credit)
	}
	return debit, credit
}

// ValidateEntryGroup checks that a group is non-empty, that every line is one-sided and
// non-negative and in whole cents, and that debits equal credits within BalanceTolerance.
func ValidateEntryGroup(entries []domain.JournalEntry) error {
	if len(entries) == 0 {
		return apperrors.NewValidationError("entries", "entry group is empty")
	}

	for i, e := range entries {
		if e.COAID == "" {
			return apperrors.NewValidationError(fmt.Sprintf("entries[%d].coaID", i), "account is required")
		}
		if e.Debit.IsNegative() || e.Credit.IsNegative() {
			return apperrors.NewValidationError(fmt.Sprintf("entries[%d]", i), "amounts must not be negative")
		}
		if e.Debit.IsPositive() && e.Credit.IsPositive() {
			return apperrors.NewValidationError(fmt.Sprintf("entries[%d]", i), "an entry is either a debit or a credit")
		}
		if !IsWholeCents(e.Debit) || !IsWholeCents(e.Credit) {
			return apperrors.NewValidationError(fmt.Sprintf("entries[%d]", i), "amounts must be whole cents")
		}
	}

	debit, credit := SumEntries(entries)
	if debit.Sub(credit).Abs().GreaterThan(BalanceTolerance) {
		return &apperrors.UnbalancedEntryError{Debit: debit, Credit: credit}
	}
	return nil
}
