package accounting

import (
	"strings"
	"unicode"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// NormalizeCode strips whitespace and punctuation so "1-1", "1.1" and "11" compare equal.
func NormalizeCode(code string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, code)
}

// CodeMatchesPrefix reports whether code starts with prefix after normalization.
func CodeMatchesPrefix(code, prefix string) bool {
	c, p := NormalizeCode(code), NormalizeCode(prefix)
	return c != "" && p != "" && strings.HasPrefix(c, p)
}

// CodeMatchesAny reports whether code starts with any of the prefixes.
func CodeMatchesAny(code string, prefixes ...string) bool {
	for _, p := range prefixes {
		if CodeMatchesPrefix(code, p) {
			return true
		}
	}
	return false
}

type currentPrefixes struct {
	current    []string
	nonCurrent []string
}

var classificationPrefixes = map[domain.AccountType]currentPrefixes{
	domain.Asset: {
		current:    []string{"1-1", "1.1", "11", "10", "101", "110"},
		nonCurrent: []string{"1-2", "1.2", "12", "13", "120", "130"},
	},
	domain.Liability: {
		current:    []string{"2-1", "2.1", "21", "210"},
		nonCurrent: []string{"2-2", "2.2", "22", "230", "24"},
	},
}

// ClassifyCurrent returns the explicit current flag of an account, or infers it from the code.
// Nil means the account cannot be classified.
func ClassifyCurrent(account domain.ChartOfAccount) *bool {
	if account.IsCurrent != nil {
		v := *account.IsCurrent
		return &v
	}
	prefixes, ok := classificationPrefixes[account.Type]
	if !ok {
		return nil
	}
	if CodeMatchesAny(account.Code, prefixes.current...) {
		v := true
		return &v
	}
	if CodeMatchesAny(account.Code, prefixes.nonCurrent...) {
		v := false
		return &v
	}
	return nil
}
