package ocf

// Issuer is the company whose cap table the ledger contract holds. There is
// exactly one per contract; the batch protocol only supports editing it.
type Issuer struct {
	ID                            string   `json:"id"`
	LegalName                     string   `json:"legal_name"`
	DBA                           *string  `json:"dba,omitempty"`
	FormationDate                 string   `json:"formation_date"`
	CountryOfFormation            string   `json:"country_of_formation"`
	CountrySubdivisionOfFormation *string  `json:"country_subdivision_of_formation,omitempty"`
	Email                         *Email   `json:"email,omitempty"`
	Address                       *Address `json:"address,omitempty"`
	InitialSharesAuthorized       *string  `json:"initial_shares_authorized,omitempty"`
	Comments                      []string `json:"comments,omitempty"`
}

// Stakeholder is a holder of securities.
type Stakeholder struct {
	ID                  string          `json:"id"`
	Name                Name            `json:"name"`
	StakeholderType     StakeholderType `json:"stakeholder_type"`
	IssuerAssignedID    *string         `json:"issuer_assigned_id,omitempty"`
	CurrentRelationship *string         `json:"current_relationship,omitempty"`
	Addresses           []Address       `json:"addresses,omitempty"`
	Comments            []string        `json:"comments,omitempty"`
}

// StockClass is one class of the issuer's stock.
type StockClass struct {
	ID                            string         `json:"id"`
	Name                          string         `json:"name"`
	ClassType                     StockClassType `json:"class_type"`
	DefaultIDPrefix               string         `json:"default_id_prefix"`
	InitialSharesAuthorized       string         `json:"initial_shares_authorized"`
	BoardApprovalDate             *string        `json:"board_approval_date,omitempty"`
	Votes                         string         `json:"votes"`
	ParValue                      *Monetary      `json:"par_value,omitempty"`
	PricePerShare                 *Monetary      `json:"price_per_share,omitempty"`
	LiquidationPreferenceMultiple *string        `json:"liquidation_preference_multiple,omitempty"`
	ParticipationCapMultiple      *string        `json:"participation_cap_multiple,omitempty"`
	Comments                      []string       `json:"comments,omitempty"`
}

// StockLegendTemplate is a reusable block of legend text.
type StockLegendTemplate struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Text     string   `json:"text"`
	Comments []string `json:"comments,omitempty"`
}

// StockPlan is an equity incentive plan.
//
// StockClassID is the deprecated singular predecessor of StockClassIDs. It is
// accepted on read for backward compatibility and folded into the plural
// field before anything else sees it; the singular shape never reaches the
// ledger.
type StockPlan struct {
	ID                      string   `json:"id"`
	PlanName                string   `json:"plan_name"`
	BoardApprovalDate       *string  `json:"board_approval_date,omitempty"`
	StockholderApprovalDate *string  `json:"stockholder_approval_date,omitempty"`
	InitialSharesReserved   string   `json:"initial_shares_reserved"`
	StockClassID            *string  `json:"stock_class_id,omitempty"`
	StockClassIDs           []string `json:"stock_class_ids,omitempty"`
	Comments                []string `json:"comments,omitempty"`
}

// Valuation is a priced valuation of a stock class.
type Valuation struct {
	ID            string   `json:"id"`
	StockClassID  string   `json:"stock_class_id"`
	ProviderName  *string  `json:"provider,omitempty"`
	EffectiveDate string   `json:"effective_date"`
	PricePerShare Monetary `json:"price_per_share"`
	ValuationType string   `json:"valuation_type"`
	Comments      []string `json:"comments,omitempty"`
}

// VestingTerms is a named vesting schedule.
type VestingTerms struct {
	ID                string             `json:"id"`
	Name              string             `json:"name"`
	Description       string             `json:"description"`
	AllocationType    AllocationType     `json:"allocation_type"`
	VestingConditions []VestingCondition `json:"vesting_conditions"`
	Comments          []string           `json:"comments,omitempty"`
}

// Financing groups securities issued as part of one financing round.
type Financing struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	ClosedDate *string  `json:"closed_date,omitempty"`
	Comments   []string `json:"comments,omitempty"`
}

// Document is a reference to an external file.
type Document struct {
	ID       string   `json:"id"`
	Path     *string  `json:"path,omitempty"`
	URI      *string  `json:"uri,omitempty"`
	MD5      string   `json:"md5"`
	Comments []string `json:"comments,omitempty"`
}
