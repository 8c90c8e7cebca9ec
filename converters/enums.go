package converters

import (
	"github.com/spf13/cast"

	"github.com/Fairmint/ocp-canton-sdk/ocf"
	"github.com/Fairmint/ocp-canton-sdk/types"
)

// Enum re-encoding is table-driven and closed in both directions: an
// unrecognized native value is a validation error, an unrecognized wire tag
// is a parse error. There is no default guess.

func invert[K comparable](table map[K]string) map[string]K {
	out := make(map[string]K, len(table))
	for k, v := range table {
		out[v] = k
	}

	return out
}

func encodeEnum[K comparable](field string, table map[K]string, value K) (string, error) {
	tag, ok := table[value]
	if !ok {
		return "", types.NewValidationErrorValue(field, "unsupported value", value)
	}

	return tag, nil
}

func decodeEnum[K comparable](field string, table map[string]K, raw any) (K, error) {
	var zero K
	s, err := cast.ToStringE(raw)
	if err != nil {
		return zero, types.NewParseError(field, "expected enum tag", raw)
	}

	value, ok := table[s]
	if !ok {
		return zero, types.NewParseError(field, "unknown enum tag", s)
	}

	return value, nil
}

var stakeholderTypeToWire = map[ocf.StakeholderType]string{
	ocf.StakeholderIndividual:  "OcfStakeholderTypeIndividual",
	ocf.StakeholderInstitution: "OcfStakeholderTypeInstitution",
}

var stakeholderTypeFromWire = invert(stakeholderTypeToWire)

var stockClassTypeToWire = map[ocf.StockClassType]string{
	ocf.StockClassCommon:    "OcfStockClassTypeCommon",
	ocf.StockClassPreferred: "OcfStockClassTypePreferred",
}

var stockClassTypeFromWire = invert(stockClassTypeToWire)

var compensationTypeToWire = map[ocf.CompensationType]string{
	ocf.CompensationOptionISO: "OcfCompensationTypeOptionIso",
	ocf.CompensationOptionNSO: "OcfCompensationTypeOptionNso",
	ocf.CompensationOption:    "OcfCompensationTypeOption",
	ocf.CompensationRSU:       "OcfCompensationTypeRsu",
	ocf.CompensationRSA:       "OcfCompensationTypeRsa",
	ocf.CompensationSAR:       "OcfCompensationTypeSar",
	ocf.CompensationOther:     "OcfCompensationTypeOther",
}

var compensationTypeFromWire = invert(compensationTypeToWire)

var convertibleTypeToWire = map[ocf.ConvertibleType]string{
	ocf.ConvertibleNote:     "OcfConvertibleTypeNote",
	ocf.ConvertibleSafe:     "OcfConvertibleTypeSafe",
	ocf.ConvertibleSecurity: "OcfConvertibleTypeConvertibleSecurity",
}

var convertibleTypeFromWire = invert(convertibleTypeToWire)

var periodTypeToWire = map[ocf.PeriodType]string{
	ocf.PeriodDays:   "OcfPeriodTypeDays",
	ocf.PeriodMonths: "OcfPeriodTypeMonths",
	ocf.PeriodYears:  "OcfPeriodTypeYears",
}

var periodTypeFromWire = invert(periodTypeToWire)

var allocationTypeToWire = map[ocf.AllocationType]string{
	ocf.AllocationCumulativeRounding:       "OcfAllocationTypeCumulativeRounding",
	ocf.AllocationCumulativeRoundDown:      "OcfAllocationTypeCumulativeRoundDown",
	ocf.AllocationFrontLoaded:              "OcfAllocationTypeFrontLoaded",
	ocf.AllocationBackLoaded:               "OcfAllocationTypeBackLoaded",
	ocf.AllocationFrontLoadedSingleTranche: "OcfAllocationTypeFrontLoadedToSingleTranche",
	ocf.AllocationBackLoadedSingleTranche:  "OcfAllocationTypeBackLoadedToSingleTranche",
}

var allocationTypeFromWire = invert(allocationTypeToWire)

var vestingTriggerTagByType = map[ocf.VestingTriggerType]string{
	ocf.TriggerVestingStartDate:        "OcfVestingStartTrigger",
	ocf.TriggerVestingScheduleAbsolute: "OcfVestingScheduleAbsoluteTrigger",
	ocf.TriggerVestingScheduleRelative: "OcfVestingScheduleRelativeTrigger",
	ocf.TriggerVestingEvent:            "OcfVestingEventTrigger",
}

var vestingTriggerTypeByTag = invert(vestingTriggerTagByType)

var conversionTriggerTagByType = map[ocf.ConversionTriggerType]string{
	ocf.TriggerAutomaticOnCondition: "OcfAutomaticConversionOnConditionTrigger",
	ocf.TriggerAutomaticOnDate:      "OcfAutomaticConversionOnDateTrigger",
	ocf.TriggerElectiveOnCondition:  "OcfElectiveConversionOnConditionTrigger",
	ocf.TriggerElectiveAtWill:       "OcfElectiveConversionAtWillTrigger",
}

var conversionTriggerTypeByTag = invert(conversionTriggerTagByType)

var conversionMechanismTagByType = map[ocf.ConversionMechanismType]string{
	ocf.MechanismSafeConversion:        "OcfSafeConversionMechanism",
	ocf.MechanismNoteConversion:        "OcfNoteConversionMechanism",
	ocf.MechanismFixedAmountConversion: "OcfFixedAmountConversionMechanism",
	ocf.MechanismRatioConversion:       "OcfRatioConversionMechanism",
}

var conversionMechanismTypeByTag = invert(conversionMechanismTagByType)
