package ocf

// VestingTriggerType discriminates the VestingTrigger union. The set is
// closed; converters reject anything else.
type VestingTriggerType string

const (
	TriggerVestingStartDate        VestingTriggerType = "VESTING_START_DATE"
	TriggerVestingScheduleAbsolute VestingTriggerType = "VESTING_SCHEDULE_ABSOLUTE"
	TriggerVestingScheduleRelative VestingTriggerType = "VESTING_SCHEDULE_RELATIVE"
	TriggerVestingEvent            VestingTriggerType = "VESTING_EVENT"
)

// VestingPeriod is the cadence of a relative vesting schedule.
type VestingPeriod struct {
	Length           int        `json:"length"`
	Type             PeriodType `json:"type"`
	OccurrencesCount int        `json:"occurrences"`
}

// VestingTrigger is a discriminated union: Type selects which payload fields
// are meaningful.
type VestingTrigger struct {
	Type VestingTriggerType `json:"type"`
	// Date applies to VESTING_SCHEDULE_ABSOLUTE.
	Date *string `json:"date,omitempty"`
	// Period and RelativeToConditionID apply to VESTING_SCHEDULE_RELATIVE.
	Period                *VestingPeriod `json:"period,omitempty"`
	RelativeToConditionID *string        `json:"relative_to_condition_id,omitempty"`
}

// VestingCondition is one node of a vesting schedule graph.
type VestingCondition struct {
	ID                 string         `json:"id"`
	Description        *string        `json:"description,omitempty"`
	Quantity           *string        `json:"quantity,omitempty"`
	PortionNumerator   *string        `json:"portion_numerator,omitempty"`
	PortionDenominator *string        `json:"portion_denominator,omitempty"`
	Trigger            VestingTrigger `json:"trigger"`
	NextConditionIDs   []string       `json:"next_condition_ids"`
}
