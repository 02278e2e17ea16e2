package mapping

import (
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/models"
)

// ToModelAuditFields copies audit columns onto a row model.
func ToModelAuditFields(d domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
		LastUpdatedAt: d.LastUpdatedAt,
		LastUpdatedBy: d.LastUpdatedBy,
	}
}

// ToDomainAuditFields copies audit columns off a row model.
func ToDomainAuditFields(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
		LastUpdatedAt: m.LastUpdatedAt,
		LastUpdatedBy: m.LastUpdatedBy,
	}
}

// ToModelDimensions spreads tags over their nullable columns.
func ToModelDimensions(d domain.Dimensions) models.Dimensions {
	return models.Dimensions{
		BranchID:     d.BranchID,
		DepartmentID: d.DepartmentID,
		ProjectID:    d.ProjectID,
	}
}

// ToDomainDimensions gathers the tag columns.
func ToDomainDimensions(m models.Dimensions) domain.Dimensions {
	return domain.Dimensions{
		BranchID:     m.BranchID,
		DepartmentID: m.DepartmentID,
		ProjectID:    m.ProjectID,
	}
}
