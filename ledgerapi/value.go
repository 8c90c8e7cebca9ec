// Package ledgerapi holds the wire-side value model for the Canton JSON
// Ledger API, the payload safety validator, and the transport boundary the
// batch protocol submits through.
package ledgerapi

import "errors"

// Record is the wire representation of a ledger record: a structurally typed
// map whose optional fields are present with an explicit nil rather than
// omitted.
type Record = map[string]any

// Variant is the {tag, value} encoding of a discriminated union used
// throughout the wire format, both for polymorphic sub-fields and for the
// operation entries of a batch.
type Variant struct {
	Tag   string `json:"tag"`
	Value any    `json:"value"`
}

// undefinedValue is the marker for a value that was never set, as opposed to
// one explicitly set to null. It must never reach the wire: JSON serialization
// would silently drop it and the ledger would report an unrelated schema
// mismatch. The safety validator rejects it with a local, attributable error
// instead.
type undefinedValue struct{}

// Undefined is the unset-value sentinel. Raw payloads assembled outside the
// converter layer may contain it by mistake; converters never produce it.
var Undefined = undefinedValue{}

// MarshalJSON always fails. Serializing Undefined is a bug that the safety
// validator should have caught earlier.
func (undefinedValue) MarshalJSON() ([]byte, error) {
	return nil, errors.New("ledgerapi: cannot serialize undefined value")
}
