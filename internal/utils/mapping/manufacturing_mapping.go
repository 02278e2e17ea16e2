package mapping

import (
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/models"
)

// ToDomainManufacturingOrder converts a model ManufacturingOrder to a domain ManufacturingOrder
func ToDomainManufacturingOrder(m models.ManufacturingOrder) domain.ManufacturingOrder {
	return domain.ManufacturingOrder{
		ID:                   m.MOID,
		Number:               m.Number,
		ProductName:          m.ProductName,
		WarehouseID:          m.WarehouseID,
		Quantity:             m.Quantity,
		BOMActive:            m.BOMActive,
		WIPCOAID:             m.WIPCOAID,
		FinishedGoodsCOAID:   m.FinishedGoodsCOAID,
		StandardMaterialCost: m.StandardMaterialCost,
		LaborCost:            m.LaborCost,
		OverheadCost:         m.OverheadCost,
	}
}

// ToModelDocumentLink converts domain document relations to a document_links row
func ToModelDocumentLink(d domain.DocumentLinks) models.DocumentLink {
	m := models.DocumentLink{
		SourceKind:           string(d.Source.Kind),
		SourceID:             d.Source.ID,
		Dimensions:           ToModelDimensions(d.Tags),
		WarehouseID:          d.WarehouseID,
		ManufacturingOrderID: d.ManufacturingOrderID,
		CreatedBy:            d.CreatedBy,
	}
	if d.InvoiceRef != nil && !d.InvoiceRef.IsZero() {
		kind := string(d.InvoiceRef.Kind)
		m.InvoiceKind = &kind
		m.InvoiceID = &d.InvoiceRef.ID
	}
	return m
}

// ToDomainDocumentLinks converts a document_links row to domain document relations
func ToDomainDocumentLinks(m models.DocumentLink) domain.DocumentLinks {
	d := domain.DocumentLinks{
		Source:               domain.SourceRef{Kind: domain.SourceKind(m.SourceKind), ID: m.SourceID},
		Tags:                 ToDomainDimensions(m.Dimensions),
		WarehouseID:          m.WarehouseID,
		ManufacturingOrderID: m.ManufacturingOrderID,
		CreatedBy:            m.CreatedBy,
	}
	if m.InvoiceKind != nil && m.InvoiceID != nil {
		d.InvoiceRef = &domain.SourceRef{Kind: domain.SourceKind(*m.InvoiceKind), ID: *m.InvoiceID}
	}
	return d
}
