package models

import "time"

// AuditFields holds the audit columns shared by most tables.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	CreatedBy     string    `db:"created_by"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
	LastUpdatedBy string    `db:"last_updated_by"`
}

// Dimensions are the nullable branch, department and project tag columns.
type Dimensions struct {
	BranchID     *string `db:"branch_id"`
	DepartmentID *string `db:"department_id"`
	ProjectID    *string `db:"project_id"`
}
