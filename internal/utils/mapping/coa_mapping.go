package mapping

import (
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/models"
)

// ToDomainChartOfAccount converts a model ChartOfAccount to a domain ChartOfAccount
func ToDomainChartOfAccount(m models.ChartOfAccount) domain.ChartOfAccount {
	return domain.ChartOfAccount{
		ID:             m.COAID,
		Code:           m.Code,
		Name:           m.Name,
		Type:           domain.AccountType(m.AccountType),
		ParentID:       m.ParentID,
		IsCurrent:      m.IsCurrent,
		IsActive:       m.IsActive,
		OpeningBalance: m.OpeningBalance,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainChartOfAccounts converts a slice of model accounts
func ToDomainChartOfAccounts(ms []models.ChartOfAccount) []domain.ChartOfAccount {
	ds := make([]domain.ChartOfAccount, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainChartOfAccount(m)
	}
	return ds
}

// ToDomainAccountActivity converts an account row with its sums
func ToDomainAccountActivity(m models.AccountActivity) domain.AccountActivity {
	return domain.AccountActivity{
		Account: ToDomainChartOfAccount(m.ChartOfAccount),
		Debit:   m.TotalDebit,
		Credit:  m.TotalCredit,
	}
}
