// Package ocf defines the native, application-level cap-table data model the
// SDK accepts and returns. Field shapes follow the Open Cap Table Format;
// optional fields are pointers so absence is distinguishable from a zero
// value.
package ocf

// Monetary is an amount in a specific currency. Amount is a decimal string in
// native form; the converter layer canonicalizes it on the way to the ledger.
type Monetary struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// Ratio is a fraction expressed as two decimal strings.
type Ratio struct {
	Numerator   string `json:"numerator"`
	Denominator string `json:"denominator"`
}

// Name is a stakeholder's name. LegalName is the only required part.
type Name struct {
	LegalName string  `json:"legal_name"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
}

// Email is a typed email address.
type Email struct {
	EmailType    string `json:"email_type"`
	EmailAddress string `json:"email_address"`
}

// Address is a physical address. Country is an ISO 3166-1 alpha-2 code.
type Address struct {
	AddressType string  `json:"address_type"`
	StreetSuite *string `json:"street_suite,omitempty"`
	City        *string `json:"city,omitempty"`
	Subdivision *string `json:"country_subdivision,omitempty"`
	Country     string  `json:"country"`
	PostalCode  *string `json:"postal_code,omitempty"`
}
