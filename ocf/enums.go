package ocf

// StakeholderType distinguishes natural persons from institutions.
type StakeholderType string

const (
	StakeholderIndividual  StakeholderType = "INDIVIDUAL"
	StakeholderInstitution StakeholderType = "INSTITUTION"
)

// StockClassType is the class of stock.
type StockClassType string

const (
	StockClassCommon    StockClassType = "COMMON"
	StockClassPreferred StockClassType = "PREFERRED"
)

// CompensationType is the kind of an equity compensation grant.
type CompensationType string

const (
	CompensationOptionISO CompensationType = "OPTION_ISO"
	CompensationOptionNSO CompensationType = "OPTION_NSO"
	CompensationOption    CompensationType = "OPTION"
	CompensationRSU       CompensationType = "RSU"
	CompensationRSA       CompensationType = "RSA"
	CompensationSAR       CompensationType = "SAR"
	// CompensationOther is accepted for the general equity compensation
	// family but rejected by the plan security aliases, which have no lossy
	// fallback variant on the ledger side.
	CompensationOther CompensationType = "OTHER"
)

// ConvertibleType is the kind of a convertible instrument.
type ConvertibleType string

const (
	ConvertibleNote     ConvertibleType = "NOTE"
	ConvertibleSafe     ConvertibleType = "SAFE"
	ConvertibleSecurity ConvertibleType = "CONVERTIBLE_SECURITY"
)

// PeriodType is the unit of a vesting period.
type PeriodType string

const (
	PeriodDays   PeriodType = "DAYS"
	PeriodMonths PeriodType = "MONTHS"
	PeriodYears  PeriodType = "YEARS"
)

// AllocationType describes how a vesting schedule allocates fractional
// shares across periods.
type AllocationType string

const (
	AllocationCumulativeRounding       AllocationType = "CUMULATIVE_ROUNDING"
	AllocationCumulativeRoundDown      AllocationType = "CUMULATIVE_ROUND_DOWN"
	AllocationFrontLoaded              AllocationType = "FRONT_LOADED"
	AllocationBackLoaded               AllocationType = "BACK_LOADED"
	AllocationFrontLoadedSingleTranche AllocationType = "FRONT_LOADED_TO_SINGLE_TRANCHE"
	AllocationBackLoadedSingleTranche  AllocationType = "BACK_LOADED_TO_SINGLE_TRANCHE"
)
