// Package converters translates native OCF entities to and from the ledger's
// record representation. Every entity type in the catalog has a converter
// pair; dispatch is through a closed registry keyed by entity type, and both
// directions fail loudly on anything outside the catalog.
package converters

import (
	"fmt"

	"github.com/Fairmint/ocp-canton-sdk/ledgerapi"
	"github.com/Fairmint/ocp-canton-sdk/ocf"
	"github.com/Fairmint/ocp-canton-sdk/types"
)

// codec holds one entity type's converter pair in type-erased form.
type codec struct {
	toLedger   func(native any) (ledgerapi.Record, error)
	fromLedger func(rec ledgerapi.Record) (any, error)
}

// pair erases a typed converter pair. Passing the wrong native type to
// ToLedger is reported as a validation error naming both types.
func pair[N any](
	entityType types.EntityType,
	to func(N) (ledgerapi.Record, error),
	from func(ledgerapi.Record) (N, error),
) codec {
	return codec{
		toLedger: func(native any) (ledgerapi.Record, error) {
			n, ok := native.(N)
			if !ok {
				return nil, types.NewValidationError(string(entityType),
					fmt.Sprintf("expected %T, got %T", n, native))
			}

			return to(n)
		},
		fromLedger: func(rec ledgerapi.Record) (any, error) {
			return from(rec)
		},
	}
}

// fielded adapts a converter pair parameterized by field prefix, fixing the
// prefix to the entity type's name so error paths read like
// "planSecurityExercise.quantity".
func fielded[N any](
	entityType types.EntityType,
	to func(string, N) (ledgerapi.Record, error),
	from func(string, ledgerapi.Record) (N, error),
) codec {
	field := string(entityType)

	return pair(entityType,
		func(n N) (ledgerapi.Record, error) { return to(field, n) },
		func(rec ledgerapi.Record) (N, error) { return from(field, rec) },
	)
}

func equityCompIssuance(entityType types.EntityType, rejectOther bool) codec {
	field := string(entityType)

	return pair(entityType,
		func(n ocf.EquityCompensationIssuance) (ledgerapi.Record, error) {
			return equityCompensationIssuanceToLedger(field, n, rejectOther)
		},
		func(rec ledgerapi.Record) (ocf.EquityCompensationIssuance, error) {
			return equityCompensationIssuanceFromLedger(field, rec)
		},
	)
}

// registry is the closed converter table. Plan security transaction types are
// aliases over the equity compensation shapes, distinguished only by their
// field prefix in errors and, for issuances, by rejecting the
// COMPENSATION_OTHER compensation type.
var registry = map[types.EntityType]codec{
	// Objects.
	types.EntityIssuer:              pair(types.EntityIssuer, issuerToLedger, issuerFromLedger),
	types.EntityStakeholder:         pair(types.EntityStakeholder, stakeholderToLedger, stakeholderFromLedger),
	types.EntityStockClass:          pair(types.EntityStockClass, stockClassToLedger, stockClassFromLedger),
	types.EntityStockLegendTemplate: pair(types.EntityStockLegendTemplate, stockLegendTemplateToLedger, stockLegendTemplateFromLedger),
	types.EntityStockPlan:           pair(types.EntityStockPlan, stockPlanToLedger, stockPlanFromLedger),
	types.EntityValuation:           pair(types.EntityValuation, valuationToLedger, valuationFromLedger),
	types.EntityVestingTerms:        pair(types.EntityVestingTerms, vestingTermsToLedger, vestingTermsFromLedger),
	types.EntityFinancing:           pair(types.EntityFinancing, financingToLedger, financingFromLedger),
	types.EntityDocument:            pair(types.EntityDocument, documentToLedger, documentFromLedger),

	// Acceptances.
	types.EntityStockAcceptance:              fielded(types.EntityStockAcceptance, acceptanceToLedger, acceptanceFromLedger),
	types.EntityWarrantAcceptance:            fielded(types.EntityWarrantAcceptance, acceptanceToLedger, acceptanceFromLedger),
	types.EntityConvertibleAcceptance:        fielded(types.EntityConvertibleAcceptance, acceptanceToLedger, acceptanceFromLedger),
	types.EntityEquityCompensationAcceptance: fielded(types.EntityEquityCompensationAcceptance, acceptanceToLedger, acceptanceFromLedger),
	types.EntityPlanSecurityAcceptance:       fielded(types.EntityPlanSecurityAcceptance, acceptanceToLedger, acceptanceFromLedger),

	// Cancellations.
	types.EntityStockCancellation:              pair(types.EntityStockCancellation, stockCancellationToLedger, stockCancellationFromLedger),
	types.EntityWarrantCancellation:            pair(types.EntityWarrantCancellation, warrantCancellationToLedger, warrantCancellationFromLedger),
	types.EntityConvertibleCancellation:        pair(types.EntityConvertibleCancellation, convertibleCancellationToLedger, convertibleCancellationFromLedger),
	types.EntityEquityCompensationCancellation: fielded(types.EntityEquityCompensationCancellation, equityCompensationCancellationToLedger, equityCompensationCancellationFromLedger),
	types.EntityPlanSecurityCancellation:       fielded(types.EntityPlanSecurityCancellation, equityCompensationCancellationToLedger, equityCompensationCancellationFromLedger),

	// Conversions.
	types.EntityStockConversion:       pair(types.EntityStockConversion, stockConversionToLedger, stockConversionFromLedger),
	types.EntityConvertibleConversion: pair(types.EntityConvertibleConversion, convertibleConversionToLedger, convertibleConversionFromLedger),

	// Exercises.
	types.EntityWarrantExercise:            pair(types.EntityWarrantExercise, warrantExerciseToLedger, warrantExerciseFromLedger),
	types.EntityEquityCompensationExercise: fielded(types.EntityEquityCompensationExercise, equityCompensationExerciseToLedger, equityCompensationExerciseFromLedger),
	types.EntityPlanSecurityExercise:       fielded(types.EntityPlanSecurityExercise, equityCompensationExerciseToLedger, equityCompensationExerciseFromLedger),

	// Issuances.
	types.EntityStockIssuance:              pair(types.EntityStockIssuance, stockIssuanceToLedger, stockIssuanceFromLedger),
	types.EntityWarrantIssuance:            pair(types.EntityWarrantIssuance, warrantIssuanceToLedger, warrantIssuanceFromLedger),
	types.EntityConvertibleIssuance:        pair(types.EntityConvertibleIssuance, convertibleIssuanceToLedger, convertibleIssuanceFromLedger),
	types.EntityEquityCompensationIssuance: equityCompIssuance(types.EntityEquityCompensationIssuance, false),
	types.EntityPlanSecurityIssuance:       equityCompIssuance(types.EntityPlanSecurityIssuance, true),

	// Releases.
	types.EntityEquityCompensationRelease: fielded(types.EntityEquityCompensationRelease, equityCompensationReleaseToLedger, equityCompensationReleaseFromLedger),
	types.EntityPlanSecurityRelease:       fielded(types.EntityPlanSecurityRelease, equityCompensationReleaseToLedger, equityCompensationReleaseFromLedger),

	// Repurchase and reissuance.
	types.EntityStockRepurchase: pair(types.EntityStockRepurchase, stockRepurchaseToLedger, stockRepurchaseFromLedger),
	types.EntityStockReissuance: pair(types.EntityStockReissuance, stockReissuanceToLedger, stockReissuanceFromLedger),

	// Retractions.
	types.EntityStockRetraction:              fielded(types.EntityStockRetraction, retractionToLedger, retractionFromLedger),
	types.EntityWarrantRetraction:            fielded(types.EntityWarrantRetraction, retractionToLedger, retractionFromLedger),
	types.EntityConvertibleRetraction:        fielded(types.EntityConvertibleRetraction, retractionToLedger, retractionFromLedger),
	types.EntityEquityCompensationRetraction: fielded(types.EntityEquityCompensationRetraction, retractionToLedger, retractionFromLedger),
	types.EntityPlanSecurityRetraction:       fielded(types.EntityPlanSecurityRetraction, retractionToLedger, retractionFromLedger),

	// Transfers.
	types.EntityStockTransfer:              pair(types.EntityStockTransfer, stockTransferToLedger, stockTransferFromLedger),
	types.EntityWarrantTransfer:            pair(types.EntityWarrantTransfer, warrantTransferToLedger, warrantTransferFromLedger),
	types.EntityConvertibleTransfer:        pair(types.EntityConvertibleTransfer, convertibleTransferToLedger, convertibleTransferFromLedger),
	types.EntityEquityCompensationTransfer: fielded(types.EntityEquityCompensationTransfer, equityCompensationTransferToLedger, equityCompensationTransferFromLedger),
	types.EntityPlanSecurityTransfer:       fielded(types.EntityPlanSecurityTransfer, equityCompensationTransferToLedger, equityCompensationTransferFromLedger),

	// Structural.
	types.EntityStockClassSplit:       pair(types.EntityStockClassSplit, stockClassSplitToLedger, stockClassSplitFromLedger),
	types.EntityStockConsolidation:    pair(types.EntityStockConsolidation, stockConsolidationToLedger, stockConsolidationFromLedger),
	types.EntityStockPlanReturnToPool: pair(types.EntityStockPlanReturnToPool, stockPlanReturnToPoolToLedger, stockPlanReturnToPoolFromLedger),

	// Adjustments.
	types.EntityIssuerAuthorizedSharesAdjustment:     pair(types.EntityIssuerAuthorizedSharesAdjustment, issuerAuthorizedSharesAdjustmentToLedger, issuerAuthorizedSharesAdjustmentFromLedger),
	types.EntityStockClassAuthorizedSharesAdjustment: pair(types.EntityStockClassAuthorizedSharesAdjustment, stockClassAuthorizedSharesAdjustmentToLedger, stockClassAuthorizedSharesAdjustmentFromLedger),
	types.EntityStockPlanPoolAdjustment:              pair(types.EntityStockPlanPoolAdjustment, stockPlanPoolAdjustmentToLedger, stockPlanPoolAdjustmentFromLedger),

	// Vesting.
	types.EntityVestingStart:        pair(types.EntityVestingStart, vestingStartToLedger, vestingStartFromLedger),
	types.EntityVestingEvent:        pair(types.EntityVestingEvent, vestingEventToLedger, vestingEventFromLedger),
	types.EntityVestingAcceleration: pair(types.EntityVestingAcceleration, vestingAccelerationToLedger, vestingAccelerationFromLedger),
}

// ToLedger converts a native entity into its ledger record. The native value
// must be the struct type registered for entityType; pointers are not
// accepted.
func ToLedger(entityType types.EntityType, native any) (ledgerapi.Record, error) {
	c, ok := registry[entityType]
	if !ok {
		return nil, fmt.Errorf("no converter registered for entity type %q", entityType)
	}

	return c.toLedger(native)
}

// FromLedger converts a ledger record back into the native struct registered
// for entityType. The concrete type of the returned value matches the one
// ToLedger accepts.
func FromLedger(entityType types.EntityType, rec ledgerapi.Record) (any, error) {
	c, ok := registry[entityType]
	if !ok {
		return nil, fmt.Errorf("no converter registered for entity type %q", entityType)
	}

	return c.fromLedger(rec)
}
