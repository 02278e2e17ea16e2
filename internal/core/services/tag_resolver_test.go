package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TagResolverTestSuite struct {
	suite.Suite
	docRepo *MockDocumentRepository
	mfgRepo *MockManufacturingRepository
	ctx     context.Context
}

func (suite *TagResolverTestSuite) SetupTest() {
	suite.docRepo = new(MockDocumentRepository)
	suite.mfgRepo = new(MockManufacturingRepository)
	suite.ctx = context.Background()
}

func (suite *TagResolverTestSuite) resolver() portssvc.TagResolverSvc {
	return services.NewTagResolver(suite.docRepo, suite.mfgRepo)
}

func (suite *TagResolverTestSuite) TestDocumentTagWins() {
	links := domain.DocumentLinks{
		Source:      domain.SourceRef{Kind: domain.SourcePurchaseInvoice, ID: "pi-1"},
		Tags:        domain.Dimensions{BranchID: strPtr("branch-doc")},
		WarehouseID: strPtr("wh-1"),
	}

	got := suite.resolver().Resolve(suite.ctx, links, domain.DimensionBranch)

	suite.Require().NotNil(got)
	suite.Equal("branch-doc", *got)
	suite.docRepo.AssertNotCalled(suite.T(), "FindWarehouse", mock.Anything, mock.Anything)
}

func (suite *TagResolverTestSuite) TestWarehouseThenManufacturingOrder() {
	suite.docRepo.On("FindWarehouse", mock.Anything, "wh-mo").Return(&domain.Warehouse{
		ID:   "wh-mo",
		Tags: domain.Dimensions{DepartmentID: strPtr("dept-prod")},
	}, nil)
	suite.mfgRepo.On("FindManufacturingOrder", mock.Anything, "mo-1").Return(&domain.ManufacturingOrder{
		ID:          "mo-1",
		WarehouseID: strPtr("wh-mo"),
	}, nil)

	links := domain.DocumentLinks{
		Source:               domain.SourceRef{Kind: domain.SourceMaterialIssue, ID: "mi-1"},
		ManufacturingOrderID: strPtr("mo-1"),
	}
	got := suite.resolver().Resolve(suite.ctx, links, domain.DimensionDepartment)

	suite.Require().NotNil(got)
	suite.Equal("dept-prod", *got)
}

func (suite *TagResolverTestSuite) TestReferencedInvoiceBeforeUserDefaults() {
	invoiceRef := domain.SourceRef{Kind: domain.SourcePurchaseInvoice, ID: "pi-9"}
	suite.docRepo.On("FindLinks", mock.Anything, invoiceRef).Return(&domain.DocumentLinks{
		Source:    invoiceRef,
		Tags:      domain.Dimensions{ProjectID: strPtr("project-x")},
		CreatedBy: "someone-else",
	}, nil)

	links := domain.DocumentLinks{
		Source:     domain.SourceRef{Kind: domain.SourceVendorPayment, ID: "vp-1"},
		InvoiceRef: &invoiceRef,
		CreatedBy:  "user-1",
	}
	got := suite.resolver().Resolve(suite.ctx, links, domain.DimensionProject)

	suite.Require().NotNil(got)
	suite.Equal("project-x", *got)
	suite.docRepo.AssertNotCalled(suite.T(), "FindUserDefaults", mock.Anything, mock.Anything)
}

func (suite *TagResolverTestSuite) TestReferencedDocumentCreatorDefaultsIgnored() {
	invoiceRef := domain.SourceRef{Kind: domain.SourcePurchaseInvoice, ID: "pi-9"}
	suite.docRepo.On("FindLinks", mock.Anything, invoiceRef).Return(&domain.DocumentLinks{
		Source:    invoiceRef,
		CreatedBy: "invoice-author",
	}, nil)
	suite.docRepo.On("FindUserDefaults", mock.Anything, "payer").Return(&domain.UserDefaults{
		UserID: "payer",
		Tags:   domain.Dimensions{BranchID: strPtr("branch-payer")},
	}, nil).Once()

	links := domain.DocumentLinks{
		Source:     domain.SourceRef{Kind: domain.SourceVendorPayment, ID: "vp-2"},
		InvoiceRef: &invoiceRef,
		CreatedBy:  "payer",
	}
	got := suite.resolver().Resolve(suite.ctx, links, domain.DimensionBranch)

	suite.Require().NotNil(got)
	suite.Equal("branch-payer", *got)
	suite.docRepo.AssertNotCalled(suite.T(), "FindUserDefaults", mock.Anything, "invoice-author")
}

func (suite *TagResolverTestSuite) TestReferenceCycleTerminates() {
	a := domain.SourceRef{Kind: domain.SourceVendorPayment, ID: "a"}
	b := domain.SourceRef{Kind: domain.SourcePurchaseInvoice, ID: "b"}
	suite.docRepo.On("FindLinks", mock.Anything, b).Return(&domain.DocumentLinks{Source: b, InvoiceRef: &a}, nil).Once()

	links := domain.DocumentLinks{Source: a, InvoiceRef: &b}
	got := suite.resolver().Resolve(suite.ctx, links, domain.DimensionBranch)

	suite.Nil(got)
	suite.docRepo.AssertNumberOfCalls(suite.T(), "FindLinks", 1)
}

func (suite *TagResolverTestSuite) TestLookupFailuresAreAbsentTags() {
	suite.docRepo.On("FindWarehouse", mock.Anything, "wh-gone").Return(nil, apperrors.ErrNotFound)
	suite.docRepo.On("FindUserDefaults", mock.Anything, "user-1").Return(nil, errors.New("timeout"))

	links := domain.DocumentLinks{
		Source:      domain.SourceRef{Kind: domain.SourceDeposit, ID: "dep-1"},
		WarehouseID: strPtr("wh-gone"),
		CreatedBy:   "user-1",
	}
	tags := suite.resolver().ResolveAll(suite.ctx, links)

	suite.Nil(tags.BranchID)
	suite.Nil(tags.DepartmentID)
	suite.Nil(tags.ProjectID)
}

func TestTagResolverTestSuite(t *testing.T) {
	suite.Run(t, new(TagResolverTestSuite))
}
