package converters

import (
	"github.com/spf13/cast"

	"github.com/Fairmint/ocp-canton-sdk/ledgerapi"
	"github.com/Fairmint/ocp-canton-sdk/ocf"
	"github.com/Fairmint/ocp-canton-sdk/types"
)

// vestingTriggerToWire converts the native discriminated union into its
// {tag, value} wire form. Each variant carries only its own payload fields.
func vestingTriggerToWire(field string, trigger ocf.VestingTrigger) (ledgerapi.Variant, error) {
	tag, ok := vestingTriggerTagByType[trigger.Type]
	if !ok {
		return ledgerapi.Variant{}, types.NewValidationErrorValue(field+".type", "unknown vesting trigger type", trigger.Type)
	}

	switch trigger.Type {
	case ocf.TriggerVestingStartDate, ocf.TriggerVestingEvent:
		return ledgerapi.Variant{Tag: tag, Value: ledgerapi.Record{}}, nil
	case ocf.TriggerVestingScheduleAbsolute:
		if trigger.Date == nil {
			return ledgerapi.Variant{}, types.NewValidationError(field+".date", "is required for absolute schedule triggers")
		}
		date, err := dateToWire(field+".date", *trigger.Date)
		if err != nil {
			return ledgerapi.Variant{}, err
		}

		return ledgerapi.Variant{Tag: tag, Value: ledgerapi.Record{"date": date}}, nil
	case ocf.TriggerVestingScheduleRelative:
		if trigger.Period == nil {
			return ledgerapi.Variant{}, types.NewValidationError(field+".period", "is required for relative schedule triggers")
		}
		periodType, err := encodeEnum(field+".period.type", periodTypeToWire, trigger.Period.Type)
		if err != nil {
			return ledgerapi.Variant{}, err
		}

		return ledgerapi.Variant{Tag: tag, Value: ledgerapi.Record{
			"period": ledgerapi.Record{
				"length":      int64(trigger.Period.Length),
				"type":        periodType,
				"occurrences": int64(trigger.Period.OccurrencesCount),
			},
			"relative_to_condition_id": optText(trigger.RelativeToConditionID),
		}}, nil
	}

	// The tag table and this switch cover the same closed set.
	return ledgerapi.Variant{}, types.NewValidationErrorValue(field+".type", "unknown vesting trigger type", trigger.Type)
}

func vestingTriggerFromWire(field string, raw any) (ocf.VestingTrigger, error) {
	tag, value, err := asVariant(field, raw)
	if err != nil {
		return ocf.VestingTrigger{}, err
	}

	triggerType, ok := vestingTriggerTypeByTag[tag]
	if !ok {
		return ocf.VestingTrigger{}, types.NewParseError(field, "unknown vesting trigger tag", tag)
	}

	trigger := ocf.VestingTrigger{Type: triggerType}
	switch triggerType {
	case ocf.TriggerVestingStartDate, ocf.TriggerVestingEvent:
		return trigger, nil
	case ocf.TriggerVestingScheduleAbsolute:
		rec, err := asRecord(field, value)
		if err != nil {
			return ocf.VestingTrigger{}, err
		}
		date, err := readDate(rec, field, "date")
		if err != nil {
			return ocf.VestingTrigger{}, err
		}
		trigger.Date = &date

		return trigger, nil
	case ocf.TriggerVestingScheduleRelative:
		rec, err := asRecord(field, value)
		if err != nil {
			return ocf.VestingTrigger{}, err
		}
		periodRec, err := asRecord(field+".period", rec["period"])
		if err != nil {
			return ocf.VestingTrigger{}, err
		}
		length, err := cast.ToIntE(periodRec["length"])
		if err != nil {
			return ocf.VestingTrigger{}, types.NewParseError(field+".period.length", "expected integer", periodRec["length"])
		}
		occurrences, err := cast.ToIntE(periodRec["occurrences"])
		if err != nil {
			return ocf.VestingTrigger{}, types.NewParseError(field+".period.occurrences", "expected integer", periodRec["occurrences"])
		}
		periodType, err := decodeEnum(field+".period.type", periodTypeFromWire, periodRec["type"])
		if err != nil {
			return ocf.VestingTrigger{}, err
		}
		trigger.Period = &ocf.VestingPeriod{Length: length, Type: periodType, OccurrencesCount: occurrences}
		trigger.RelativeToConditionID, err = readOptText(rec, field, "relative_to_condition_id")
		if err != nil {
			return ocf.VestingTrigger{}, err
		}

		return trigger, nil
	}

	return ocf.VestingTrigger{}, types.NewParseError(field, "unknown vesting trigger tag", tag)
}

func vestingConditionToWire(field string, cond ocf.VestingCondition) (ledgerapi.Record, error) {
	if err := requireText(field+".id", cond.ID); err != nil {
		return nil, err
	}

	trigger, err := vestingTriggerToWire(field+".trigger", cond.Trigger)
	if err != nil {
		return nil, err
	}
	quantity, err := optNumeric(field+".quantity", cond.Quantity)
	if err != nil {
		return nil, err
	}
	numerator, err := optNumeric(field+".portion_numerator", cond.PortionNumerator)
	if err != nil {
		return nil, err
	}
	denominator, err := optNumeric(field+".portion_denominator", cond.PortionDenominator)
	if err != nil {
		return nil, err
	}

	return ledgerapi.Record{
		"id":                  cond.ID,
		"description":         optText(cond.Description),
		"quantity":            quantity,
		"portion_numerator":   numerator,
		"portion_denominator": denominator,
		"trigger":             trigger,
		"next_condition_ids":  textList(cond.NextConditionIDs),
	}, nil
}

func vestingConditionFromWire(field string, raw any) (ocf.VestingCondition, error) {
	rec, err := asRecord(field, raw)
	if err != nil {
		return ocf.VestingCondition{}, err
	}

	var cond ocf.VestingCondition
	if cond.ID, err = readText(rec, field, "id"); err != nil {
		return ocf.VestingCondition{}, err
	}
	if cond.Description, err = readOptText(rec, field, "description"); err != nil {
		return ocf.VestingCondition{}, err
	}
	if cond.Quantity, err = readOptNumeric(rec, field, "quantity"); err != nil {
		return ocf.VestingCondition{}, err
	}
	if cond.PortionNumerator, err = readOptNumeric(rec, field, "portion_numerator"); err != nil {
		return ocf.VestingCondition{}, err
	}
	if cond.PortionDenominator, err = readOptNumeric(rec, field, "portion_denominator"); err != nil {
		return ocf.VestingCondition{}, err
	}
	if cond.Trigger, err = vestingTriggerFromWire(field+".trigger", rec["trigger"]); err != nil {
		return ocf.VestingCondition{}, err
	}
	if cond.NextConditionIDs, err = readTextList(rec, field, "next_condition_ids"); err != nil {
		return ocf.VestingCondition{}, err
	}

	return cond, nil
}
