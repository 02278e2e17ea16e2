package domain

// Dimension is an organizational tag carried by journal entries.
type Dimension string

const (
	DimensionBranch     Dimension = "branch"
	DimensionDepartment Dimension = "department"
	DimensionProject    Dimension = "project"
)

// AllDimensions lists every dimension in resolution order.
var AllDimensions = []Dimension{DimensionBranch, DimensionDepartment, DimensionProject}

// Dimensions holds optional branch, department and project tags.
type Dimensions struct {
	BranchID     *string `json:"branchID,omitempty"`
	DepartmentID *string `json:"departmentID,omitempty"`
	ProjectID    *string `json:"projectID,omitempty"`
}

// Get returns the tag for the given dimension.
func (d Dimensions) Get(dim Dimension) *string {
	switch dim {
	case DimensionBranch:
		return d.BranchID
	case DimensionDepartment:
		return d.DepartmentID
	case DimensionProject:
		return d.ProjectID
	}
	return nil
}

// Set assigns the tag for the given dimension.
func (d *Dimensions) Set(dim Dimension, id *string) {
	switch dim {
	case DimensionBranch:
		d.BranchID = id
	case DimensionDepartment:
		d.DepartmentID = id
	case DimensionProject:
		d.ProjectID = id
	}
}

// DocumentLinks are the relations of a source document that tag resolution walks.
type DocumentLinks struct {
	Source               SourceRef  `json:"source"`
	Tags                 Dimensions `json:"tags"`
	WarehouseID          *string    `json:"warehouseID,omitempty"`
	ManufacturingOrderID *string    `json:"manufacturingOrderID,omitempty"`
	InvoiceRef           *SourceRef `json:"invoiceRef,omitempty"`
	CreatedBy            string     `json:"createdBy,omitempty"`
}

// Warehouse is read-only configuration carrying default tags.
type Warehouse struct {
	ID   string     `json:"id"`
	Name string     `json:"name"`
	Tags Dimensions `json:"tags"`
}

// UserDefaults are the default tags configured for a user.
type UserDefaults struct {
	UserID string     `json:"userID"`
	Tags   Dimensions `json:"tags"`
}
