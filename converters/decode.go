package converters

import (
	"fmt"

	"github.com/spf13/cast"

	"github.com/Fairmint/ocp-canton-sdk/ledgerapi"
	"github.com/Fairmint/ocp-canton-sdk/ocf"
	"github.com/Fairmint/ocp-canton-sdk/types"
)

// The read side is tolerant about container shapes: records arriving straight
// from JSON decoding are plain maps and variants are {tag, value} maps, while
// records produced by our own encoders use the typed forms.

func indexed(field string, i int) string {
	return fmt.Sprintf("%s[%d]", field, i)
}

func asRecord(field string, value any) (ledgerapi.Record, error) {
	switch v := value.(type) {
	case ledgerapi.Record:
		return v, nil
	default:
		return nil, types.NewParseError(field, "expected record", value)
	}
}

func asVariant(field string, value any) (string, any, error) {
	switch v := value.(type) {
	case ledgerapi.Variant:
		return v.Tag, v.Value, nil
	case *ledgerapi.Variant:
		if v == nil {
			return "", nil, types.NewParseError(field, "expected variant", nil)
		}

		return v.Tag, v.Value, nil
	case map[string]any:
		tag, ok := v["tag"].(string)
		if !ok {
			return "", nil, types.NewParseError(field, "variant is missing its tag", value)
		}

		return tag, v["value"], nil
	default:
		return "", nil, types.NewParseError(field, "expected variant", value)
	}
}

func readText(rec ledgerapi.Record, field, key string) (string, error) {
	raw, ok := rec[key]
	if !ok || raw == nil {
		return "", types.NewParseError(field+"."+key, "is required", nil)
	}

	s, err := cast.ToStringE(raw)
	if err != nil {
		return "", types.NewParseError(field+"."+key, "expected text", raw)
	}

	return s, nil
}

func readOptText(rec ledgerapi.Record, field, key string) (*string, error) {
	raw, ok := rec[key]
	if !ok || raw == nil {
		return nil, nil
	}

	s, err := cast.ToStringE(raw)
	if err != nil {
		return nil, types.NewParseError(field+"."+key, "expected text", raw)
	}

	return &s, nil
}

func readNumeric(rec ledgerapi.Record, field, key string) (string, error) {
	s, err := readText(rec, field, key)
	if err != nil {
		return "", err
	}

	n, err := NormalizeNumericString(s)
	if err != nil {
		return "", types.NewParseError(field+"."+key, err.Error(), s)
	}

	return n, nil
}

func readOptNumeric(rec ledgerapi.Record, field, key string) (*string, error) {
	raw, ok := rec[key]
	if !ok || raw == nil {
		return nil, nil
	}

	s, err := cast.ToStringE(raw)
	if err != nil {
		return nil, types.NewParseError(field+"."+key, "expected numeric text", raw)
	}
	n, err := NormalizeNumericString(s)
	if err != nil {
		return nil, types.NewParseError(field+"."+key, err.Error(), s)
	}

	return &n, nil
}

func readDate(rec ledgerapi.Record, field, key string) (string, error) {
	raw, ok := rec[key]
	if !ok || raw == nil {
		return "", types.NewParseError(field+"."+key, "is required", nil)
	}

	return dateFromWire(field+"."+key, raw)
}

func readOptDate(rec ledgerapi.Record, field, key string) (*string, error) {
	raw, ok := rec[key]
	if !ok || raw == nil {
		return nil, nil
	}

	d, err := dateFromWire(field+"."+key, raw)
	if err != nil {
		return nil, err
	}

	return &d, nil
}

func readTextList(rec ledgerapi.Record, field, key string) ([]string, error) {
	raw, ok := rec[key]
	if !ok || raw == nil {
		return []string{}, nil
	}

	var items []any
	switch v := raw.(type) {
	case []any:
		items = v
	case []string:
		out := make([]string, len(v))
		copy(out, v)

		return out, nil
	default:
		return nil, types.NewParseError(field+"."+key, "expected list", raw)
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		s, err := cast.ToStringE(item)
		if err != nil {
			return nil, types.NewParseError(field+"."+key, "expected text entries", item)
		}
		out = append(out, s)
	}

	return out, nil
}

func readComments(rec ledgerapi.Record, field string) ([]string, error) {
	list, err := readTextList(rec, field, "comments")
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}

	return list, nil
}

func readMonetary(rec ledgerapi.Record, field, key string) (ocf.Monetary, error) {
	raw, ok := rec[key]
	if !ok || raw == nil {
		return ocf.Monetary{}, types.NewParseError(field+"."+key, "is required", nil)
	}
	sub, err := asRecord(field+"."+key, raw)
	if err != nil {
		return ocf.Monetary{}, err
	}

	amount, err := readNumeric(sub, field+"."+key, "amount")
	if err != nil {
		return ocf.Monetary{}, err
	}
	currency, err := readText(sub, field+"."+key, "currency")
	if err != nil {
		return ocf.Monetary{}, err
	}

	return ocf.Monetary{Amount: amount, Currency: currency}, nil
}

func readOptMonetary(rec ledgerapi.Record, field, key string) (*ocf.Monetary, error) {
	raw, ok := rec[key]
	if !ok || raw == nil {
		return nil, nil
	}

	m, err := readMonetary(rec, field, key)
	if err != nil {
		return nil, err
	}

	return &m, nil
}
