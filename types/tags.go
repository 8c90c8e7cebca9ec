package types

import (
	"fmt"
	"strings"
)

// OperationKind distinguishes the three mutation lists of a batch.
type OperationKind string

const (
	OperationCreate OperationKind = "create"
	OperationEdit   OperationKind = "edit"
	OperationDelete OperationKind = "delete"
)

// OperationTags holds the three wire variant names for one entity type. An
// empty string marks an operation as unsupported for that type by design, not
// by omission.
type OperationTags struct {
	Create string
	Edit   string
	Delete string
}

// For returns the wire tag for the requested operation kind.
func (o OperationTags) For(kind OperationKind) string {
	switch kind {
	case OperationCreate:
		return o.Create
	case OperationEdit:
		return o.Edit
	case OperationDelete:
		return o.Delete
	}

	return ""
}

func standardTags(suffix string) OperationTags {
	return OperationTags{
		Create: "OcfCreate" + suffix,
		Edit:   "OcfEdit" + suffix,
		Delete: "OcfDelete" + suffix,
	}
}

// operationTags is the closed tag table. The issuer is a singleton on the
// ledger and can only be edited; its create and delete rows are intentionally
// blank.
var operationTags = map[EntityType]OperationTags{
	EntityIssuer:                               {Edit: "OcfEditIssuer"},
	EntityStakeholder:                          standardTags("Stakeholder"),
	EntityStockClass:                           standardTags("StockClass"),
	EntityStockLegendTemplate:                  standardTags("StockLegendTemplate"),
	EntityStockPlan:                            standardTags("StockPlan"),
	EntityValuation:                            standardTags("Valuation"),
	EntityVestingTerms:                         standardTags("VestingTerms"),
	EntityFinancing:                            standardTags("Financing"),
	EntityDocument:                             standardTags("Document"),
	EntityStockAcceptance:                      standardTags("StockAcceptance"),
	EntityWarrantAcceptance:                    standardTags("WarrantAcceptance"),
	EntityConvertibleAcceptance:                standardTags("ConvertibleAcceptance"),
	EntityEquityCompensationAcceptance:         standardTags("EquityCompensationAcceptance"),
	EntityPlanSecurityAcceptance:               standardTags("PlanSecurityAcceptance"),
	EntityStockCancellation:                    standardTags("StockCancellation"),
	EntityWarrantCancellation:                  standardTags("WarrantCancellation"),
	EntityConvertibleCancellation:              standardTags("ConvertibleCancellation"),
	EntityEquityCompensationCancellation:       standardTags("EquityCompensationCancellation"),
	EntityPlanSecurityCancellation:             standardTags("PlanSecurityCancellation"),
	EntityStockConversion:                      standardTags("StockConversion"),
	EntityConvertibleConversion:                standardTags("ConvertibleConversion"),
	EntityWarrantExercise:                      standardTags("WarrantExercise"),
	EntityEquityCompensationExercise:           standardTags("EquityCompensationExercise"),
	EntityPlanSecurityExercise:                 standardTags("PlanSecurityExercise"),
	EntityStockIssuance:                        standardTags("StockIssuance"),
	EntityWarrantIssuance:                      standardTags("WarrantIssuance"),
	EntityConvertibleIssuance:                  standardTags("ConvertibleIssuance"),
	EntityEquityCompensationIssuance:           standardTags("EquityCompensationIssuance"),
	EntityPlanSecurityIssuance:                 standardTags("PlanSecurityIssuance"),
	EntityEquityCompensationRelease:            standardTags("EquityCompensationRelease"),
	EntityPlanSecurityRelease:                  standardTags("PlanSecurityRelease"),
	EntityStockRepurchase:                      standardTags("StockRepurchase"),
	EntityStockReissuance:                      standardTags("StockReissuance"),
	EntityStockRetraction:                      standardTags("StockRetraction"),
	EntityWarrantRetraction:                    standardTags("WarrantRetraction"),
	EntityConvertibleRetraction:                standardTags("ConvertibleRetraction"),
	EntityEquityCompensationRetraction:         standardTags("EquityCompensationRetraction"),
	EntityPlanSecurityRetraction:               standardTags("PlanSecurityRetraction"),
	EntityStockTransfer:                        standardTags("StockTransfer"),
	EntityWarrantTransfer:                      standardTags("WarrantTransfer"),
	EntityConvertibleTransfer:                  standardTags("ConvertibleTransfer"),
	EntityEquityCompensationTransfer:           standardTags("EquityCompensationTransfer"),
	EntityPlanSecurityTransfer:                 standardTags("PlanSecurityTransfer"),
	EntityStockClassSplit:                      standardTags("StockClassSplit"),
	EntityStockConsolidation:                   standardTags("StockConsolidation"),
	EntityStockPlanReturnToPool:                standardTags("StockPlanReturnToPool"),
	EntityIssuerAuthorizedSharesAdjustment:     standardTags("IssuerAuthorizedSharesAdjustment"),
	EntityStockClassAuthorizedSharesAdjustment: standardTags("StockClassAuthorizedSharesAdjustment"),
	EntityStockPlanPoolAdjustment:              standardTags("StockPlanPoolAdjustment"),
	EntityVestingStart:                         standardTags("VestingStart"),
	EntityVestingEvent:                         standardTags("VestingEvent"),
	EntityVestingAcceleration:                  standardTags("VestingAcceleration"),
}

// TagFor resolves the wire tag for an entity type and operation kind. It
// returns an error both for types outside the catalog and for operations a
// type does not support.
func TagFor(entityType EntityType, kind OperationKind) (string, error) {
	tags, ok := operationTags[entityType]
	if !ok {
		return "", fmt.Errorf("unknown entity type %q", entityType)
	}

	tag := tags.For(kind)
	if tag == "" {
		return "", fmt.Errorf("entity type %q does not support %s", entityType, kind)
	}

	return tag, nil
}

// TagsFor returns the full tag row for an entity type.
func TagsFor(entityType EntityType) (OperationTags, bool) {
	tags, ok := operationTags[entityType]
	return tags, ok
}

// EntitySuffixFromTag strips the operation prefix from a wire tag, yielding
// the human-readable entity suffix ("OcfCreateStakeholder" -> "Stakeholder").
// Tags that do not carry a known prefix are returned unchanged.
func EntitySuffixFromTag(tag string) string {
	for _, prefix := range []string{"OcfCreate", "OcfEdit", "OcfDelete"} {
		if strings.HasPrefix(tag, prefix) {
			return strings.TrimPrefix(tag, prefix)
		}
	}

	return tag
}
