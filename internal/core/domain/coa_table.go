package domain

// Capability is an accounting role a posting flow needs an account for.
type Capability string

const (
	CapInventory            Capability = "inventory"
	CapRawMaterialInventory Capability = "raw_material_inventory"
	CapWorkInProgress       Capability = "work_in_progress"
	CapFinishedGoods        Capability = "finished_goods"
	CapFixedAsset           Capability = "fixed_asset"
	CapInputVAT             Capability = "input_vat"
	CapPrepaidPPh22         Capability = "prepaid_pph22"
	CapCustomsDuty          Capability = "customs_duty"
	CapAccountsPayable      Capability = "accounts_payable"
	CapAssetPayable         Capability = "asset_payable"
	CapUnbilledPayable      Capability = "unbilled_payable"
	CapPurchaseFees         Capability = "purchase_fees"
	CapCashBank             Capability = "cash_bank"
	CapAccountsReceivable   Capability = "accounts_receivable"
	CapSupplierDeposit      Capability = "supplier_deposit"
	CapCustomerDeposit      Capability = "customer_deposit"
	CapDisposalGain         Capability = "disposal_gain"
	CapDisposalLoss         Capability = "disposal_loss"
	CapTransferCost         Capability = "transfer_cost"
	CapManufacturingExpense Capability = "manufacturing_expense"

	// Asset-level accounts. They have no default candidates and are normally set per asset.
	CapAccumulatedDepreciation Capability = "accumulated_depreciation"
	CapDepreciationExpense     Capability = "depreciation_expense"
)

// CapabilityTableVersion is bumped whenever DefaultCandidates changes.
const CapabilityTableVersion = 3

// DefaultCandidates maps each capability to its ordered candidate account codes.
var DefaultCandidates = map[Capability][]string{
	CapInventory:            {"1140.01", "1140"},
	CapRawMaterialInventory: {"1140.10", "1140.01", "1140"},
	CapWorkInProgress:       {"1140.02", "1140.03", "1140"},
	CapFinishedGoods:        {"1140.03"},
	CapFixedAsset:           {"1500"},
	CapInputVAT:             {"1170.06"},
	CapPrepaidPPh22:         {"1170.02"},
	CapCustomsDuty:          {"5130"},
	CapAccountsPayable:      {"2110"},
	CapAssetPayable:         {"2100"},
	CapUnbilledPayable:      {"2100.10"},
	CapPurchaseFees:         {"6100"},
	CapCashBank:             {"1112.01", "1111", "111"},
	CapAccountsReceivable:   {"1120"},
	CapSupplierDeposit:      {"1150.01", "1150"},
	CapCustomerDeposit:      {"2160.04", "1150.02", "1150"},
	CapDisposalGain:         {"7110", "7100", "4101"},
	CapDisposalLoss:         {"8110", "8100", "5201"},
	CapTransferCost:         {"8000.01"},
	CapManufacturingExpense: {"6"},
}

// AccountRequest describes one account lookup. Explicit and Default ids are tried before the
// capability's candidate codes.
type AccountRequest struct {
	Capability Capability
	ExplicitID *string
	DefaultID  *string
}

// ForCapability builds a request that only consults the candidate table.
func ForCapability(c Capability) AccountRequest {
	return AccountRequest{Capability: c}
}

// WithExplicit builds a request that tries the explicit id first.
func WithExplicit(c Capability, explicit *string) AccountRequest {
	return AccountRequest{Capability: c, ExplicitID: explicit}
}
