package types //nolint:revive

// EntityType identifies one kind of OCF object or transaction. The catalog is
// closed: every member must have a converter pair and a tag-table row, and the
// dispatch layers fail loudly on anything outside this set.
type EntityType string

const (
	// Objects.
	EntityIssuer              EntityType = "issuer"
	EntityStakeholder         EntityType = "stakeholder"
	EntityStockClass          EntityType = "stockClass"
	EntityStockLegendTemplate EntityType = "stockLegendTemplate"
	EntityStockPlan           EntityType = "stockPlan"
	EntityValuation           EntityType = "valuation"
	EntityVestingTerms        EntityType = "vestingTerms"
	EntityFinancing           EntityType = "financing"
	EntityDocument            EntityType = "document"

	// Acceptance transactions.
	EntityStockAcceptance              EntityType = "stockAcceptance"
	EntityWarrantAcceptance            EntityType = "warrantAcceptance"
	EntityConvertibleAcceptance        EntityType = "convertibleAcceptance"
	EntityEquityCompensationAcceptance EntityType = "equityCompensationAcceptance"
	EntityPlanSecurityAcceptance       EntityType = "planSecurityAcceptance"

	// Cancellation transactions.
	EntityStockCancellation              EntityType = "stockCancellation"
	EntityWarrantCancellation            EntityType = "warrantCancellation"
	EntityConvertibleCancellation        EntityType = "convertibleCancellation"
	EntityEquityCompensationCancellation EntityType = "equityCompensationCancellation"
	EntityPlanSecurityCancellation       EntityType = "planSecurityCancellation"

	// Conversion transactions.
	EntityStockConversion       EntityType = "stockConversion"
	EntityConvertibleConversion EntityType = "convertibleConversion"

	// Exercise transactions.
	EntityWarrantExercise            EntityType = "warrantExercise"
	EntityEquityCompensationExercise EntityType = "equityCompensationExercise"
	EntityPlanSecurityExercise       EntityType = "planSecurityExercise"

	// Issuance transactions.
	EntityStockIssuance              EntityType = "stockIssuance"
	EntityWarrantIssuance            EntityType = "warrantIssuance"
	EntityConvertibleIssuance        EntityType = "convertibleIssuance"
	EntityEquityCompensationIssuance EntityType = "equityCompensationIssuance"
	EntityPlanSecurityIssuance       EntityType = "planSecurityIssuance"

	// Release transactions.
	EntityEquityCompensationRelease EntityType = "equityCompensationRelease"
	EntityPlanSecurityRelease       EntityType = "planSecurityRelease"

	// Repurchase and reissuance transactions.
	EntityStockRepurchase EntityType = "stockRepurchase"
	EntityStockReissuance EntityType = "stockReissuance"

	// Retraction transactions.
	EntityStockRetraction              EntityType = "stockRetraction"
	EntityWarrantRetraction            EntityType = "warrantRetraction"
	EntityConvertibleRetraction        EntityType = "convertibleRetraction"
	EntityEquityCompensationRetraction EntityType = "equityCompensationRetraction"
	EntityPlanSecurityRetraction       EntityType = "planSecurityRetraction"

	// Transfer transactions.
	EntityStockTransfer              EntityType = "stockTransfer"
	EntityWarrantTransfer            EntityType = "warrantTransfer"
	EntityConvertibleTransfer        EntityType = "convertibleTransfer"
	EntityEquityCompensationTransfer EntityType = "equityCompensationTransfer"
	EntityPlanSecurityTransfer       EntityType = "planSecurityTransfer"

	// Structural transactions.
	EntityStockClassSplit       EntityType = "stockClassSplit"
	EntityStockConsolidation    EntityType = "stockConsolidation"
	EntityStockPlanReturnToPool EntityType = "stockPlanReturnToPool"

	// Adjustment transactions.
	EntityIssuerAuthorizedSharesAdjustment     EntityType = "issuerAuthorizedSharesAdjustment"
	EntityStockClassAuthorizedSharesAdjustment EntityType = "stockClassAuthorizedSharesAdjustment"
	EntityStockPlanPoolAdjustment              EntityType = "stockPlanPoolAdjustment"

	// Vesting transactions.
	EntityVestingStart        EntityType = "vestingStart"
	EntityVestingEvent        EntityType = "vestingEvent"
	EntityVestingAcceleration EntityType = "vestingAcceleration"
)

// AllEntityTypes lists every member of the catalog. Tests iterate this to
// prove the converter registry and the tag table are total.
var AllEntityTypes = []EntityType{
	EntityIssuer,
	EntityStakeholder,
	EntityStockClass,
	EntityStockLegendTemplate,
	EntityStockPlan,
	EntityValuation,
	EntityVestingTerms,
	EntityFinancing,
	EntityDocument,
	EntityStockAcceptance,
	EntityWarrantAcceptance,
	EntityConvertibleAcceptance,
	EntityEquityCompensationAcceptance,
	EntityPlanSecurityAcceptance,
	EntityStockCancellation,
	EntityWarrantCancellation,
	EntityConvertibleCancellation,
	EntityEquityCompensationCancellation,
	EntityPlanSecurityCancellation,
	EntityStockConversion,
	EntityConvertibleConversion,
	EntityWarrantExercise,
	EntityEquityCompensationExercise,
	EntityPlanSecurityExercise,
	EntityStockIssuance,
	EntityWarrantIssuance,
	EntityConvertibleIssuance,
	EntityEquityCompensationIssuance,
	EntityPlanSecurityIssuance,
	EntityEquityCompensationRelease,
	EntityPlanSecurityRelease,
	EntityStockRepurchase,
	EntityStockReissuance,
	EntityStockRetraction,
	EntityWarrantRetraction,
	EntityConvertibleRetraction,
	EntityEquityCompensationRetraction,
	EntityPlanSecurityRetraction,
	EntityStockTransfer,
	EntityWarrantTransfer,
	EntityConvertibleTransfer,
	EntityEquityCompensationTransfer,
	EntityPlanSecurityTransfer,
	EntityStockClassSplit,
	EntityStockConsolidation,
	EntityStockPlanReturnToPool,
	EntityIssuerAuthorizedSharesAdjustment,
	EntityStockClassAuthorizedSharesAdjustment,
	EntityStockPlanPoolAdjustment,
	EntityVestingStart,
	EntityVestingEvent,
	EntityVestingAcceleration,
}

func (t EntityType) String() string {
	return string(t)
}

// Known reports whether t is a member of the closed catalog.
func (t EntityType) Known() bool {
	_, ok := operationTags[t]
	return ok
}

// IssuanceLike reports whether records of this type carry a security_id that
// should be snapshotted into BatchItemMeta alongside the native id.
func (t EntityType) IssuanceLike() bool {
	switch t {
	case EntityStockIssuance, EntityWarrantIssuance, EntityConvertibleIssuance,
		EntityEquityCompensationIssuance, EntityPlanSecurityIssuance:
		return true
	}

	return false
}
