package types

// BatchItemMeta is a diagnostic snapshot taken for every operation added to a
// batch. It is kept separate from the wire payload so that a remote failure
// can still be attributed to a concrete input even when the payload itself is
// opaque or malformed.
type BatchItemMeta struct {
	EntityType EntityType `json:"entityType"`
	ID         string     `json:"id"`
	// SecurityID is populated only for issuance-like entity types.
	SecurityID string `json:"securityId,omitempty"`
}
