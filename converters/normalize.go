package converters

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Fairmint/ocp-canton-sdk/ledgerapi"
	"github.com/Fairmint/ocp-canton-sdk/ocf"
	"github.com/Fairmint/ocp-canton-sdk/types"
)

// numericPattern is the only accepted input shape: optional sign, digits,
// optional single fractional part. Scientific notation in particular is
// rejected up front because decimal would otherwise accept it.
var numericPattern = regexp.MustCompile(`^[+-]?[0-9]+(\.[0-9]+)?$`)

// NormalizeNumericString re-expresses a decimal string in canonical form: no
// insignificant trailing zeros, no leading plus sign, no scientific notation.
// It is idempotent: normalizing a canonical value returns it unchanged.
func NormalizeNumericString(s string) (string, error) {
	if !numericPattern.MatchString(s) {
		return "", fmt.Errorf("not a plain decimal string: %q", s)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return "", fmt.Errorf("malformed decimal %q: %w", s, err)
	}

	return d.String(), nil
}

const (
	nativeDateLayout    = "2006-01-02"
	wireTimestampLayout = "2006-01-02T15:04:05Z"
)

// dateToWire widens a calendar date to a midnight-UTC timestamp, the shape
// the ledger format stores dates in.
func dateToWire(field, date string) (string, error) {
	t, err := time.ParseInLocation(nativeDateLayout, date, time.UTC)
	if err != nil {
		return "", types.NewValidationErrorValue(field, "expected YYYY-MM-DD date", date)
	}

	return t.Format(wireTimestampLayout), nil
}

// dateFromWire extracts the calendar date from a stored timestamp, discarding
// any time-of-day. The truncation is deliberate: the native model has no
// concept of intra-day time, and a non-midnight stored value reads back as
// its date.
func dateFromWire(field string, value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", types.NewParseError(field, "expected timestamp string", value)
	}
	if t, err := time.Parse(wireTimestampLayout, s); err == nil {
		return t.Format(nativeDateLayout), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC().Format(nativeDateLayout), nil
	}
	if t, err := time.Parse(nativeDateLayout, s); err == nil {
		return t.Format(nativeDateLayout), nil
	}

	return "", types.NewParseError(field, "unparseable timestamp", s)
}

// requireText validates a required string field, returning a field-path
// qualified error on absence.
func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return types.NewValidationError(field, "is required")
	}

	return nil
}

// numericField normalizes a required numeric string.
func numericField(field, value string) (string, error) {
	if err := requireText(field, value); err != nil {
		return "", err
	}

	n, err := NormalizeNumericString(value)
	if err != nil {
		return "", types.NewValidationErrorValue(field, err.Error(), value)
	}

	return n, nil
}

// optNumeric encodes an optional numeric string: absent becomes an explicit
// null.
func optNumeric(field string, value *string) (any, error) {
	if value == nil {
		return nil, nil
	}

	n, err := NormalizeNumericString(*value)
	if err != nil {
		return nil, types.NewValidationErrorValue(field, err.Error(), *value)
	}

	return n, nil
}

// optText encodes an optional string: absent becomes an explicit null.
func optText(value *string) any {
	if value == nil {
		return nil
	}

	return *value
}

// optDate encodes an optional date.
func optDate(field string, value *string) (any, error) {
	if value == nil {
		return nil, nil
	}

	return dateToWire(field, *value)
}

// monetaryToWire converts a {amount, currency} pair; the amount runs through
// the same numeric normalization as plain numbers.
func monetaryToWire(field string, m ocf.Monetary) (ledgerapi.Record, error) {
	amount, err := numericField(field+".amount", m.Amount)
	if err != nil {
		return nil, err
	}
	if err := requireText(field+".currency", m.Currency); err != nil {
		return nil, err
	}

	return ledgerapi.Record{"amount": amount, "currency": m.Currency}, nil
}

func optMonetaryToWire(field string, m *ocf.Monetary) (any, error) {
	if m == nil {
		return nil, nil
	}

	return monetaryToWire(field, *m)
}

// cleanComments drops empty and whitespace-only entries. The ledger list is
// always present, possibly empty.
func cleanComments(comments []string) []any {
	out := make([]any, 0, len(comments))
	for _, c := range comments {
		if strings.TrimSpace(c) == "" {
			continue
		}
		out = append(out, c)
	}

	return out
}

// textList converts a string slice to a wire list, nil becoming an empty
// list.
func textList(values []string) []any {
	out := make([]any, 0, len(values))
	for _, v := range values {
		out = append(out, v)
	}

	return out
}
