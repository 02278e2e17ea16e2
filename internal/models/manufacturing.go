package models

import (
	"github.com/shopspring/decimal"
)

// ManufacturingOrder represents a row of manufacturing_orders. Costs are per unit.
type ManufacturingOrder struct {
	MOID                 string          `db:"mo_id"`
	Number               string          `db:"number"`
	ProductName          string          `db:"product_name"`
	WarehouseID          *string         `db:"warehouse_id"`
	Quantity             decimal.Decimal `db:"quantity"`
	BOMActive            bool            `db:"bom_active"`
	WIPCOAID             *string         `db:"wip_coa_id"`
	FinishedGoodsCOAID   *string         `db:"finished_goods_coa_id"`
	StandardMaterialCost decimal.Decimal `db:"standard_material_cost"`
	LaborCost            decimal.Decimal `db:"labor_cost"`
	OverheadCost         decimal.Decimal `db:"overhead_cost"`
}

// DocumentLink represents a row of document_links.
type DocumentLink struct {
	SourceKind string `db:"source_kind"`
	SourceID   string `db:"source_id"`
	Dimensions
	WarehouseID          *string `db:"warehouse_id"`
	ManufacturingOrderID *string `db:"manufacturing_order_id"`
	InvoiceKind          *string `db:"invoice_kind"`
	InvoiceID            *string `db:"invoice_id"`
	CreatedBy            string  `db:"created_by"`
}
