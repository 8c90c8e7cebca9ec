package ocf

// Transaction is the base of every OCF transaction: an id, the calendar date
// the transaction took effect, and free-form comments.
type Transaction struct {
	ID       string   `json:"id"`
	Date     string   `json:"date"`
	Comments []string `json:"comments,omitempty"`
}

// SecurityTransaction is a transaction acting on one security.
type SecurityTransaction struct {
	Transaction
	SecurityID string `json:"security_id"`
}

// --- Issuances ---

// StockIssuance issues shares of a stock class to a stakeholder.
type StockIssuance struct {
	SecurityTransaction
	StakeholderID  string    `json:"stakeholder_id"`
	StockClassID   string    `json:"stock_class_id"`
	StockPlanID    *string   `json:"stock_plan_id,omitempty"`
	Quantity       string    `json:"quantity"`
	SharePrice     *Monetary `json:"share_price,omitempty"`
	CostBasis      *Monetary `json:"cost_basis,omitempty"`
	StockLegendIDs []string  `json:"stock_legend_ids,omitempty"`
	VestingTermsID *string   `json:"vesting_terms_id,omitempty"`
	CustomID       *string   `json:"custom_id,omitempty"`
}

// WarrantIssuance issues a warrant.
type WarrantIssuance struct {
	SecurityTransaction
	StakeholderID         string              `json:"stakeholder_id"`
	Quantity              *string             `json:"quantity,omitempty"`
	PurchasePrice         Monetary            `json:"purchase_price"`
	ExercisePrice         *Monetary           `json:"exercise_price,omitempty"`
	ExerciseTriggers      []ConversionTrigger `json:"exercise_triggers"`
	WarrantExpirationDate *string             `json:"warrant_expiration_date,omitempty"`
}

// ConvertibleIssuance issues a convertible instrument.
type ConvertibleIssuance struct {
	SecurityTransaction
	StakeholderID      string              `json:"stakeholder_id"`
	InvestmentAmount   Monetary            `json:"investment_amount"`
	ConvertibleType    ConvertibleType     `json:"convertible_type"`
	ConversionTriggers []ConversionTrigger `json:"conversion_triggers"`
}

// EquityCompensationIssuance issues an equity compensation grant. The plan
// security issuance alias shares this shape.
type EquityCompensationIssuance struct {
	SecurityTransaction
	StakeholderID    string           `json:"stakeholder_id"`
	StockClassID     *string          `json:"stock_class_id,omitempty"`
	StockPlanID      *string          `json:"stock_plan_id,omitempty"`
	CompensationType CompensationType `json:"compensation_type"`
	Quantity         string           `json:"quantity"`
	ExercisePrice    *Monetary        `json:"exercise_price,omitempty"`
	BasePrice        *Monetary        `json:"base_price,omitempty"`
	ExpirationDate   *string          `json:"expiration_date"`
	VestingTermsID   *string          `json:"vesting_terms_id,omitempty"`
}

// --- Acceptances ---

// Acceptance records a stakeholder accepting a security. All acceptance
// transaction types share this shape.
type Acceptance struct {
	SecurityTransaction
}

// --- Cancellations ---

// StockCancellation cancels all or part of a stock issuance.
type StockCancellation struct {
	SecurityTransaction
	Quantity          string  `json:"quantity"`
	BalanceSecurityID *string `json:"balance_security_id,omitempty"`
	ReasonText        string  `json:"reason_text"`
}

// WarrantCancellation cancels a warrant.
type WarrantCancellation struct {
	SecurityTransaction
	Quantity          *string `json:"quantity,omitempty"`
	BalanceSecurityID *string `json:"balance_security_id,omitempty"`
	ReasonText        string  `json:"reason_text"`
}

// ConvertibleCancellation cancels all or part of a convertible.
type ConvertibleCancellation struct {
	SecurityTransaction
	Amount            *Monetary `json:"amount,omitempty"`
	BalanceSecurityID *string   `json:"balance_security_id,omitempty"`
	ReasonText        string    `json:"reason_text"`
}

// EquityCompensationCancellation cancels all or part of a grant. The plan
// security cancellation alias shares this shape.
type EquityCompensationCancellation struct {
	SecurityTransaction
	Quantity          string  `json:"quantity"`
	BalanceSecurityID *string `json:"balance_security_id,omitempty"`
	ReasonText        string  `json:"reason_text"`
}

// --- Conversions ---

// StockConversion converts stock of one class into another.
type StockConversion struct {
	SecurityTransaction
	QuantityConverted    string   `json:"quantity_converted"`
	ResultingSecurityIDs []string `json:"resulting_security_ids"`
	BalanceSecurityID    *string  `json:"balance_security_id,omitempty"`
}

// ConvertibleConversion converts a convertible instrument into stock.
type ConvertibleConversion struct {
	SecurityTransaction
	TriggerID            string    `json:"trigger_id"`
	AmountConverted      *Monetary `json:"amount_converted,omitempty"`
	ResultingSecurityIDs []string  `json:"resulting_security_ids"`
	BalanceSecurityID    *string   `json:"balance_security_id,omitempty"`
}

// --- Exercises ---

// WarrantExercise exercises a warrant into new securities.
type WarrantExercise struct {
	SecurityTransaction
	TriggerID            string   `json:"trigger_id"`
	ResultingSecurityIDs []string `json:"resulting_security_ids"`
}

// EquityCompensationExercise exercises a grant. The plan security exercise
// alias shares this shape.
type EquityCompensationExercise struct {
	SecurityTransaction
	Quantity             string   `json:"quantity"`
	ConsiderationText    *string  `json:"consideration_text,omitempty"`
	ResultingSecurityIDs []string `json:"resulting_security_ids"`
}

// --- Releases ---

// EquityCompensationRelease releases shares from a grant (e.g. RSU
// settlement). The plan security release alias shares this shape.
type EquityCompensationRelease struct {
	SecurityTransaction
	Quantity             string    `json:"quantity"`
	ReleasePrice         *Monetary `json:"release_price,omitempty"`
	SettlementDate       *string   `json:"settlement_date,omitempty"`
	ResultingSecurityIDs []string  `json:"resulting_security_ids"`
}

// --- Repurchase / reissuance ---

// StockRepurchase is the issuer buying shares back.
type StockRepurchase struct {
	SecurityTransaction
	Price             Monetary `json:"price"`
	Quantity          string   `json:"quantity"`
	ConsiderationText *string  `json:"consideration_text,omitempty"`
	BalanceSecurityID *string  `json:"balance_security_id,omitempty"`
}

// StockReissuance replaces a security with one or more new ones.
type StockReissuance struct {
	SecurityTransaction
	ResultingSecurityIDs []string `json:"resulting_security_ids"`
	ReasonText           *string  `json:"reason_text,omitempty"`
	SplitTransactionID   *string  `json:"split_transaction_id,omitempty"`
}

// --- Retractions ---

// Retraction voids a previously recorded transaction. All retraction
// transaction types share this shape.
type Retraction struct {
	SecurityTransaction
	ReasonText string `json:"reason_text"`
}

// --- Transfers ---

// StockTransfer moves shares between stakeholders.
type StockTransfer struct {
	SecurityTransaction
	Quantity             string   `json:"quantity"`
	ResultingSecurityIDs []string `json:"resulting_security_ids"`
	BalanceSecurityID    *string  `json:"balance_security_id,omitempty"`
	ConsiderationText    *string  `json:"consideration_text,omitempty"`
}

// WarrantTransfer moves a warrant between stakeholders.
type WarrantTransfer struct {
	SecurityTransaction
	Quantity             *string  `json:"quantity,omitempty"`
	ResultingSecurityIDs []string `json:"resulting_security_ids"`
	BalanceSecurityID    *string  `json:"balance_security_id,omitempty"`
	ConsiderationText    *string  `json:"consideration_text,omitempty"`
}

// ConvertibleTransfer moves all or part of a convertible between
// stakeholders.
type ConvertibleTransfer struct {
	SecurityTransaction
	Amount               *Monetary `json:"amount,omitempty"`
	ResultingSecurityIDs []string  `json:"resulting_security_ids"`
	BalanceSecurityID    *string   `json:"balance_security_id,omitempty"`
	ConsiderationText    *string   `json:"consideration_text,omitempty"`
}

// EquityCompensationTransfer moves a grant between stakeholders. The plan
// security transfer alias shares this shape.
type EquityCompensationTransfer struct {
	SecurityTransaction
	Quantity             string   `json:"quantity"`
	ResultingSecurityIDs []string `json:"resulting_security_ids"`
	BalanceSecurityID    *string  `json:"balance_security_id,omitempty"`
	ConsiderationText    *string  `json:"consideration_text,omitempty"`
}

// --- Structural transactions ---

// StockClassSplit splits (or, with a ratio below one, consolidates) a stock
// class.
type StockClassSplit struct {
	Transaction
	StockClassID string `json:"stock_class_id"`
	SplitRatio   Ratio  `json:"split_ratio"`
}

// StockConsolidation merges several securities into one.
//
// The ledger format carries a singular resulting_security_id; when more than
// one resulting id is supplied only the first is written. This narrowing is
// deliberate and covered by tests.
type StockConsolidation struct {
	Transaction
	SecurityIDs          []string `json:"security_ids"`
	ResultingSecurityIDs []string `json:"resulting_security_ids"`
	ReasonText           *string  `json:"reason_text,omitempty"`
}

// StockPlanReturnToPool returns shares from a cancelled security to a plan
// pool.
type StockPlanReturnToPool struct {
	SecurityTransaction
	StockPlanID string `json:"stock_plan_id"`
	Quantity    string `json:"quantity"`
	ReasonText  string `json:"reason_text"`
}

// --- Adjustments ---

// IssuerAuthorizedSharesAdjustment changes the issuer's authorized share
// count.
type IssuerAuthorizedSharesAdjustment struct {
	Transaction
	IssuerID                string  `json:"issuer_id"`
	NewSharesAuthorized     string  `json:"new_shares_authorized"`
	BoardApprovalDate       *string `json:"board_approval_date,omitempty"`
	StockholderApprovalDate *string `json:"stockholder_approval_date,omitempty"`
}

// StockClassAuthorizedSharesAdjustment changes a stock class's authorized
// share count.
type StockClassAuthorizedSharesAdjustment struct {
	Transaction
	StockClassID            string  `json:"stock_class_id"`
	NewSharesAuthorized     string  `json:"new_shares_authorized"`
	BoardApprovalDate       *string `json:"board_approval_date,omitempty"`
	StockholderApprovalDate *string `json:"stockholder_approval_date,omitempty"`
}

// StockPlanPoolAdjustment changes the share pool of a stock plan.
type StockPlanPoolAdjustment struct {
	Transaction
	StockPlanID       string  `json:"stock_plan_id"`
	SharesReserved    string  `json:"shares_reserved"`
	BoardApprovalDate *string `json:"board_approval_date,omitempty"`
}

// --- Vesting transactions ---

// VestingStart marks a vesting condition's start condition as met.
type VestingStart struct {
	SecurityTransaction
	VestingConditionID string `json:"vesting_condition_id"`
}

// VestingEvent marks an event-based vesting condition as met.
type VestingEvent struct {
	SecurityTransaction
	VestingConditionID string `json:"vesting_condition_id"`
}

// VestingAcceleration vests a quantity ahead of schedule.
type VestingAcceleration struct {
	SecurityTransaction
	Quantity   string `json:"quantity"`
	ReasonText string `json:"reason_text"`
}
