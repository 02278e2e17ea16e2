package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
)

// maxLinkDepth caps how far tag resolution follows referenced documents.
const maxLinkDepth = 8

// tagWalk is the state of one resolution.
type tagWalk struct {
	dim     domain.Dimension
	depth   int
	visited map[domain.SourceRef]bool
}

// tagRule yields a tag for the document, or nil to let the next rule try.
type tagRule func(ctx context.Context, w *tagWalk, links domain.DocumentLinks) *string

// tagResolver implements portssvc.TagResolverSvc
type tagResolver struct {
	BaseService
	docRepo portsrepo.DocumentGraphReader
	mfgRepo portsrepo.ManufacturingReader
	// documentRules are also applied to referenced documents; the user default is not.
	documentRules []tagRule
}

// NewTagResolver creates a resolver that tries, in order: the document's own tags, its
// warehouse, its manufacturing order's warehouse, the document it settles, and the creating
// user's defaults.
func NewTagResolver(docRepo portsrepo.DocumentGraphReader, mfgRepo portsrepo.ManufacturingReader) portssvc.TagResolverSvc {
	r := &tagResolver{docRepo: docRepo, mfgRepo: mfgRepo}
	r.documentRules = []tagRule{
		r.fromDocument,
		r.fromWarehouse,
		r.fromManufacturingOrder,
		r.fromReferencedDocument,
	}
	return r
}

var _ portssvc.TagResolverSvc = (*tagResolver)(nil)

func (r *tagResolver) Resolve(ctx context.Context, links domain.DocumentLinks, dim domain.Dimension) *string {
	w := &tagWalk{dim: dim, visited: map[domain.SourceRef]bool{}}
	if !links.Source.IsZero() {
		w.visited[links.Source] = true
	}
	if v := r.applyDocumentRules(ctx, w, links); v != nil {
		return v
	}
	return r.fromUserDefaults(ctx, w, links)
}

func (r *tagResolver) ResolveAll(ctx context.Context, links domain.DocumentLinks) domain.Dimensions {
	var tags domain.Dimensions
	for _, dim := range domain.AllDimensions {
		tags.Set(dim, r.Resolve(ctx, links, dim))
	}
	return tags
}

func (r *tagResolver) applyDocumentRules(ctx context.Context, w *tagWalk, links domain.DocumentLinks) *string {
	for _, rule := range r.documentRules {
		if v := rule(ctx, w, links); v != nil {
			return v
		}
	}
	return nil
}

func (r *tagResolver) fromDocument(_ context.Context, w *tagWalk, links domain.DocumentLinks) *string {
	return nonEmpty(links.Tags.Get(w.dim))
}

func (r *tagResolver) fromWarehouse(ctx context.Context, w *tagWalk, links domain.DocumentLinks) *string {
	return r.warehouseTag(ctx, links.WarehouseID, w.dim)
}

func (r *tagResolver) fromManufacturingOrder(ctx context.Context, w *tagWalk, links domain.DocumentLinks) *string {
	if links.ManufacturingOrderID == nil || *links.ManufacturingOrderID == "" {
		return nil
	}
	mo, err := r.mfgRepo.FindManufacturingOrder(ctx, *links.ManufacturingOrderID)
	if err != nil {
		r.tolerate(ctx, err, "manufacturing_order", *links.ManufacturingOrderID)
		return nil
	}
	return r.warehouseTag(ctx, mo.WarehouseID, w.dim)
}

func (r *tagResolver) fromReferencedDocument(ctx context.Context, w *tagWalk, links domain.DocumentLinks) *string {
	ref := links.InvoiceRef
	if ref == nil || ref.IsZero() || w.visited[*ref] || w.depth >= maxLinkDepth {
		return nil
	}
	w.visited[*ref] = true

	parent, err := r.docRepo.FindLinks(ctx, *ref)
	if err != nil {
		r.tolerate(ctx, err, "document", ref.String())
		return nil
	}

	w.depth++
	defer func() { w.depth-- }()
	return r.applyDocumentRules(ctx, w, *parent)
}

func (r *tagResolver) fromUserDefaults(ctx context.Context, w *tagWalk, links domain.DocumentLinks) *string {
	if links.CreatedBy == "" {
		return nil
	}
	defaults, err := r.docRepo.FindUserDefaults(ctx, links.CreatedBy)
	if err != nil {
		r.tolerate(ctx, err, "user_defaults", links.CreatedBy)
		return nil
	}
	return nonEmpty(defaults.Tags.Get(w.dim))
}

func (r *tagResolver) warehouseTag(ctx context.Context, warehouseID *string, dim domain.Dimension) *string {
	if warehouseID == nil || *warehouseID == "" {
		return nil
	}
	wh, err := r.docRepo.FindWarehouse(ctx, *warehouseID)
	if err != nil {
		r.tolerate(ctx, err, "warehouse", *warehouseID)
		return nil
	}
	return nonEmpty(wh.Tags.Get(dim))
}

// tolerate treats lookup failures as absent tags. Not-found is expected; anything else is logged.
func (r *tagResolver) tolerate(ctx context.Context, err error, kind, id string) {
	if errors.Is(err, apperrors.ErrNotFound) {
		r.LogDebug(ctx, "Tag source not found", slog.String("kind", kind), slog.String("id", id))
		return
	}
	r.LogError(ctx, err, "Tag source lookup failed", slog.String("kind", kind), slog.String("id", id))
}

func nonEmpty(v *string) *string {
	if v == nil || *v == "" {
		return nil
	}
	return v
}
