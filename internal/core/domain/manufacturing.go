package domain

import (
	"github.com/shopspring/decimal"
)

// MaterialMovementType distinguishes material issues from returns.
type MaterialMovementType string

const (
	MaterialIssueType  MaterialMovementType = "issue"
	MaterialReturnType MaterialMovementType = "return"
)

// MaterialIssueStatusCompleted is the only status that may be posted.
const MaterialIssueStatusCompleted = "completed"

// MaterialIssueItem is one material line at its actual unit cost.
type MaterialIssueItem struct {
	ProductID             string          `json:"productID"`
	ProductName           string          `json:"productName"`
	Quantity              decimal.Decimal `json:"quantity"`
	UnitCost              decimal.Decimal `json:"unitCost"`
	InventoryCOAID        *string         `json:"inventoryCOAID,omitempty"`
	ProductInventoryCOAID *string         `json:"productInventoryCOAID,omitempty"`
}

// Cost is quantity times the line's own unit cost.
func (i MaterialIssueItem) Cost() decimal.Decimal {
	return i.Quantity.Mul(i.UnitCost).Round(2)
}

// MaterialIssue moves raw materials into (issue) or out of (return) production.
type MaterialIssue struct {
	DocumentHeader
	Type                 MaterialMovementType `json:"type" validate:"required,oneof=issue return"`
	Status               string               `json:"status"`
	ManufacturingOrderID *string              `json:"manufacturingOrderID,omitempty"`
	WIPCOAID             *string              `json:"wipCOAID,omitempty"`
	Items                []MaterialIssueItem  `json:"items" validate:"required,min=1,dive"`
}

func (d MaterialIssue) SourceRef() SourceRef {
	return SourceRef{Kind: SourceMaterialIssue, ID: d.ID}
}

func (d MaterialIssue) Links() DocumentLinks {
	l := d.links(d.SourceRef())
	l.ManufacturingOrderID = d.ManufacturingOrderID
	return l
}

// TotalCost sums the line costs.
func (d MaterialIssue) TotalCost() decimal.Decimal {
	total := decimal.Zero
	for _, item := range d.Items {
		total = total.Add(item.Cost())
	}
	return total
}

// ManufacturingOrder is read-only production configuration with its bill of materials.
type ManufacturingOrder struct {
	ID                   string          `json:"id"`
	Number               string          `json:"number"`
	ProductName          string          `json:"productName"`
	WarehouseID          *string         `json:"warehouseID,omitempty"`
	Quantity             decimal.Decimal `json:"quantity"`
	BOMActive            bool            `json:"bomActive"`
	WIPCOAID             *string         `json:"wipCOAID,omitempty"`
	FinishedGoodsCOAID   *string         `json:"finishedGoodsCOAID,omitempty"`
	StandardMaterialCost decimal.Decimal `json:"standardMaterialCost"` // per unit
	LaborCost            decimal.Decimal `json:"laborCost"`            // per unit
	OverheadCost         decimal.Decimal `json:"overheadCost"`         // per unit
}

// ProductionStatusFinished is the only status whose completion may be posted.
const ProductionStatusFinished = "finished"

// Production records the completion of a manufacturing order.
type Production struct {
	DocumentHeader
	Status               string `json:"status"`
	ManufacturingOrderID string `json:"manufacturingOrderID" validate:"required"`
}

func (d Production) SourceRef() SourceRef { return SourceRef{Kind: SourceProduction, ID: d.ID} }

func (d Production) Links() DocumentLinks {
	l := d.links(d.SourceRef())
	moID := d.ManufacturingOrderID
	l.ManufacturingOrderID = &moID
	return l
}

// CostAllocation moves labor and overhead into work in progress.
type CostAllocation struct {
	DocumentHeader
	LaborCost            decimal.Decimal `json:"laborCost"`
	OverheadCost         decimal.Decimal `json:"overheadCost"`
	ExpenseCOAID         *string         `json:"expenseCOAID,omitempty"`
	ManufacturingOrderID *string         `json:"manufacturingOrderID,omitempty"`
}

func (d CostAllocation) SourceRef() SourceRef {
	return SourceRef{Kind: SourceCostAllocation, ID: d.ID}
}

func (d CostAllocation) Links() DocumentLinks {
	l := d.links(d.SourceRef())
	l.ManufacturingOrderID = d.ManufacturingOrderID
	return l
}

// MaterialTotals are the completed issue and return totals of a manufacturing order.
type MaterialTotals struct {
	Issued   decimal.Decimal
	Returned decimal.Decimal
}
