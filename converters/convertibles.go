package converters

import (
	"github.com/Fairmint/ocp-canton-sdk/ledgerapi"
	"github.com/Fairmint/ocp-canton-sdk/ocf"
	"github.com/Fairmint/ocp-canton-sdk/types"
)

func conversionMechanismToWire(field string, m ocf.ConversionMechanism) (ledgerapi.Variant, error) {
	tag, ok := conversionMechanismTagByType[m.Type]
	if !ok {
		return ledgerapi.Variant{}, types.NewValidationErrorValue(field+".type", "unknown conversion mechanism type", m.Type)
	}

	switch m.Type {
	case ocf.MechanismSafeConversion, ocf.MechanismNoteConversion:
		discount, err := optNumeric(field+".conversion_discount", m.ConversionDiscount)
		if err != nil {
			return ledgerapi.Variant{}, err
		}
		cap, err := optMonetaryToWire(field+".conversion_valuation_cap", m.ConversionValuationCap)
		if err != nil {
			return ledgerapi.Variant{}, err
		}
		value := ledgerapi.Record{
			"conversion_discount":      discount,
			"conversion_valuation_cap": cap,
		}
		if m.Type == ocf.MechanismNoteConversion {
			rate, err := optNumeric(field+".interest_rate", m.InterestRate)
			if err != nil {
				return ledgerapi.Variant{}, err
			}
			value["interest_rate"] = rate
		}

		return ledgerapi.Variant{Tag: tag, Value: value}, nil
	case ocf.MechanismFixedAmountConversion:
		if m.ConvertsToQuantity == nil {
			return ledgerapi.Variant{}, types.NewValidationError(field+".converts_to_quantity", "is required for fixed-amount conversions")
		}
		quantity, err := numericField(field+".converts_to_quantity", *m.ConvertsToQuantity)
		if err != nil {
			return ledgerapi.Variant{}, err
		}

		return ledgerapi.Variant{Tag: tag, Value: ledgerapi.Record{"converts_to_quantity": quantity}}, nil
	case ocf.MechanismRatioConversion:
		if m.Ratio == nil {
			return ledgerapi.Variant{}, types.NewValidationError(field+".ratio", "is required for ratio conversions")
		}
		numerator, err := numericField(field+".ratio.numerator", m.Ratio.Numerator)
		if err != nil {
			return ledgerapi.Variant{}, err
		}
		denominator, err := numericField(field+".ratio.denominator", m.Ratio.Denominator)
		if err != nil {
			return ledgerapi.Variant{}, err
		}

		return ledgerapi.Variant{Tag: tag, Value: ledgerapi.Record{
			"ratio": ledgerapi.Record{"numerator": numerator, "denominator": denominator},
		}}, nil
	}

	return ledgerapi.Variant{}, types.NewValidationErrorValue(field+".type", "unknown conversion mechanism type", m.Type)
}

func conversionMechanismFromWire(field string, raw any) (ocf.ConversionMechanism, error) {
	tag, value, err := asVariant(field, raw)
	if err != nil {
		return ocf.ConversionMechanism{}, err
	}
	mechanismType, ok := conversionMechanismTypeByTag[tag]
	if !ok {
		return ocf.ConversionMechanism{}, types.NewParseError(field, "unknown conversion mechanism tag", tag)
	}

	rec, err := asRecord(field, value)
	if err != nil {
		return ocf.ConversionMechanism{}, err
	}

	m := ocf.ConversionMechanism{Type: mechanismType}
	switch mechanismType {
	case ocf.MechanismSafeConversion, ocf.MechanismNoteConversion:
		if m.ConversionDiscount, err = readOptNumeric(rec, field, "conversion_discount"); err != nil {
			return ocf.ConversionMechanism{}, err
		}
		if m.ConversionValuationCap, err = readOptMonetary(rec, field, "conversion_valuation_cap"); err != nil {
			return ocf.ConversionMechanism{}, err
		}
		if mechanismType == ocf.MechanismNoteConversion {
			if m.InterestRate, err = readOptNumeric(rec, field, "interest_rate"); err != nil {
				return ocf.ConversionMechanism{}, err
			}
		}

		return m, nil
	case ocf.MechanismFixedAmountConversion:
		quantity, err := readNumeric(rec, field, "converts_to_quantity")
		if err != nil {
			return ocf.ConversionMechanism{}, err
		}
		m.ConvertsToQuantity = &quantity

		return m, nil
	case ocf.MechanismRatioConversion:
		ratioRec, err := asRecord(field+".ratio", rec["ratio"])
		if err != nil {
			return ocf.ConversionMechanism{}, err
		}
		numerator, err := readNumeric(ratioRec, field+".ratio", "numerator")
		if err != nil {
			return ocf.ConversionMechanism{}, err
		}
		denominator, err := readNumeric(ratioRec, field+".ratio", "denominator")
		if err != nil {
			return ocf.ConversionMechanism{}, err
		}
		m.Ratio = &ocf.Ratio{Numerator: numerator, Denominator: denominator}

		return m, nil
	}

	return ocf.ConversionMechanism{}, types.NewParseError(field, "unknown conversion mechanism tag", tag)
}

func conversionTriggerToWire(field string, t ocf.ConversionTrigger) (ledgerapi.Variant, error) {
	tag, ok := conversionTriggerTagByType[t.Type]
	if !ok {
		return ledgerapi.Variant{}, types.NewValidationErrorValue(field+".type", "unknown conversion trigger type", t.Type)
	}
	if err := requireText(field+".trigger_id", t.TriggerID); err != nil {
		return ledgerapi.Variant{}, err
	}

	value := ledgerapi.Record{
		"trigger_id": t.TriggerID,
		"nickname":   optText(t.Nickname),
	}

	switch t.Type {
	case ocf.TriggerAutomaticOnCondition, ocf.TriggerElectiveOnCondition:
		if t.TriggerCondition == nil {
			return ledgerapi.Variant{}, types.NewValidationError(field+".trigger_condition", "is required for condition triggers")
		}
		value["trigger_condition"] = *t.TriggerCondition
	case ocf.TriggerAutomaticOnDate:
		if t.TriggerDate == nil {
			return ledgerapi.Variant{}, types.NewValidationError(field+".trigger_date", "is required for date triggers")
		}
		date, err := dateToWire(field+".trigger_date", *t.TriggerDate)
		if err != nil {
			return ledgerapi.Variant{}, err
		}
		value["trigger_date"] = date
	case ocf.TriggerElectiveAtWill:
		// No extra payload.
	}

	if t.Mechanism != nil {
		mechanism, err := conversionMechanismToWire(field+".conversion_right", *t.Mechanism)
		if err != nil {
			return ledgerapi.Variant{}, err
		}
		value["conversion_right"] = mechanism
	} else {
		value["conversion_right"] = nil
	}

	return ledgerapi.Variant{Tag: tag, Value: value}, nil
}

func conversionTriggerFromWire(field string, raw any) (ocf.ConversionTrigger, error) {
	tag, value, err := asVariant(field, raw)
	if err != nil {
		return ocf.ConversionTrigger{}, err
	}
	triggerType, ok := conversionTriggerTypeByTag[tag]
	if !ok {
		return ocf.ConversionTrigger{}, types.NewParseError(field, "unknown conversion trigger tag", tag)
	}

	rec, err := asRecord(field, value)
	if err != nil {
		return ocf.ConversionTrigger{}, err
	}

	t := ocf.ConversionTrigger{Type: triggerType}
	if t.TriggerID, err = readText(rec, field, "trigger_id"); err != nil {
		return ocf.ConversionTrigger{}, err
	}
	if t.Nickname, err = readOptText(rec, field, "nickname"); err != nil {
		return ocf.ConversionTrigger{}, err
	}

	switch triggerType {
	case ocf.TriggerAutomaticOnCondition, ocf.TriggerElectiveOnCondition:
		condition, err := readText(rec, field, "trigger_condition")
		if err != nil {
			return ocf.ConversionTrigger{}, err
		}
		t.TriggerCondition = &condition
	case ocf.TriggerAutomaticOnDate:
		if t.TriggerDate, err = readOptDate(rec, field, "trigger_date"); err != nil {
			return ocf.ConversionTrigger{}, err
		}
		if t.TriggerDate == nil {
			return ocf.ConversionTrigger{}, types.NewParseError(field+".trigger_date", "is required", nil)
		}
	case ocf.TriggerElectiveAtWill:
	}

	if raw, ok := rec["conversion_right"]; ok && raw != nil {
		mechanism, err := conversionMechanismFromWire(field+".conversion_right", raw)
		if err != nil {
			return ocf.ConversionTrigger{}, err
		}
		t.Mechanism = &mechanism
	}

	return t, nil
}

func conversionTriggersToWire(field string, triggers []ocf.ConversionTrigger) ([]any, error) {
	out := make([]any, 0, len(triggers))
	for i, trigger := range triggers {
		v, err := conversionTriggerToWire(indexed(field, i), trigger)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}

func conversionTriggersFromWire(field string, raw any) ([]ocf.ConversionTrigger, error) {
	if raw == nil {
		return []ocf.ConversionTrigger{}, nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, types.NewParseError(field, "expected list", raw)
	}

	out := make([]ocf.ConversionTrigger, 0, len(items))
	for i, item := range items {
		t, err := conversionTriggerFromWire(indexed(field, i), item)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}

	return out, nil
}
