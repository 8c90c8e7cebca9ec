package ocf

// ConversionMechanismType discriminates the ConversionMechanism union.
type ConversionMechanismType string

const (
	MechanismSafeConversion        ConversionMechanismType = "SAFE_CONVERSION"
	MechanismNoteConversion        ConversionMechanismType = "CONVERTIBLE_NOTE_CONVERSION"
	MechanismFixedAmountConversion ConversionMechanismType = "FIXED_AMOUNT_CONVERSION"
	MechanismRatioConversion       ConversionMechanismType = "RATIO_CONVERSION"
)

// ConversionMechanism describes how an instrument converts. Type selects the
// meaningful payload fields.
type ConversionMechanism struct {
	Type ConversionMechanismType `json:"type"`
	// ConversionDiscount and ConversionValuationCap apply to SAFE and note
	// conversions.
	ConversionDiscount     *string   `json:"conversion_discount,omitempty"`
	ConversionValuationCap *Monetary `json:"conversion_valuation_cap,omitempty"`
	// InterestRate applies to note conversions.
	InterestRate *string `json:"interest_rate,omitempty"`
	// ConvertsToQuantity applies to fixed-amount conversions.
	ConvertsToQuantity *string `json:"converts_to_quantity,omitempty"`
	// Ratio applies to ratio conversions.
	Ratio *Ratio `json:"ratio,omitempty"`
}

// ConversionTriggerType discriminates the ConversionTrigger union.
type ConversionTriggerType string

const (
	TriggerAutomaticOnCondition ConversionTriggerType = "AUTOMATIC_ON_CONDITION"
	TriggerAutomaticOnDate      ConversionTriggerType = "AUTOMATIC_ON_DATE"
	TriggerElectiveOnCondition  ConversionTriggerType = "ELECTIVE_ON_CONDITION"
	TriggerElectiveAtWill       ConversionTriggerType = "ELECTIVE_AT_WILL"
)

// ConversionTrigger describes when an instrument converts or a warrant
// becomes exercisable.
type ConversionTrigger struct {
	Type      ConversionTriggerType `json:"type"`
	TriggerID string                `json:"trigger_id"`
	Nickname  *string               `json:"nickname,omitempty"`
	// TriggerCondition applies to the *_ON_CONDITION variants.
	TriggerCondition *string `json:"trigger_condition,omitempty"`
	// TriggerDate applies to AUTOMATIC_ON_DATE.
	TriggerDate *string `json:"trigger_date,omitempty"`
	// Mechanism is the conversion mechanism engaged by this trigger.
	Mechanism *ConversionMechanism `json:"conversion_right,omitempty"`
}
