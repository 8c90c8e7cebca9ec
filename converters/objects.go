package converters

import (
	"github.com/Fairmint/ocp-canton-sdk/ledgerapi"
	"github.com/Fairmint/ocp-canton-sdk/ocf"
	"github.com/Fairmint/ocp-canton-sdk/types"
)

func issuerToLedger(n ocf.Issuer) (ledgerapi.Record, error) {
	const field = "issuer"
	if err := requireText(field+".id", n.ID); err != nil {
		return nil, err
	}
	if err := requireText(field+".legal_name", n.LegalName); err != nil {
		return nil, err
	}

	formationDate, err := dateToWire(field+".formation_date", n.FormationDate)
	if err != nil {
		return nil, err
	}
	if err := requireText(field+".country_of_formation", n.CountryOfFormation); err != nil {
		return nil, err
	}
	sharesAuthorized, err := optNumeric(field+".initial_shares_authorized", n.InitialSharesAuthorized)
	if err != nil {
		return nil, err
	}

	var email any
	if n.Email != nil {
		email = ledgerapi.Record{
			"email_type":    n.Email.EmailType,
			"email_address": n.Email.EmailAddress,
		}
	}
	var address any
	if n.Address != nil {
		address = addressToWire(*n.Address)
	}

	return ledgerapi.Record{
		"id":                               n.ID,
		"legal_name":                       n.LegalName,
		"dba":                              optText(n.DBA),
		"formation_date":                   formationDate,
		"country_of_formation":             n.CountryOfFormation,
		"country_subdivision_of_formation": optText(n.CountrySubdivisionOfFormation),
		"email":                            email,
		"address":                          address,
		"initial_shares_authorized":        sharesAuthorized,
		"comments":                         cleanComments(n.Comments),
	}, nil
}

func issuerFromLedger(rec ledgerapi.Record) (ocf.Issuer, error) {
	const field = "issuer"
	var n ocf.Issuer
	var err error

	if n.ID, err = readText(rec, field, "id"); err != nil {
		return ocf.Issuer{}, err
	}
	if n.LegalName, err = readText(rec, field, "legal_name"); err != nil {
		return ocf.Issuer{}, err
	}
	if n.DBA, err = readOptText(rec, field, "dba"); err != nil {
		return ocf.Issuer{}, err
	}
	if n.FormationDate, err = readDate(rec, field, "formation_date"); err != nil {
		return ocf.Issuer{}, err
	}
	if n.CountryOfFormation, err = readText(rec, field, "country_of_formation"); err != nil {
		return ocf.Issuer{}, err
	}
	if n.CountrySubdivisionOfFormation, err = readOptText(rec, field, "country_subdivision_of_formation"); err != nil {
		return ocf.Issuer{}, err
	}
	if raw, ok := rec["email"]; ok && raw != nil {
		sub, err := asRecord(field+".email", raw)
		if err != nil {
			return ocf.Issuer{}, err
		}
		email := ocf.Email{}
		if email.EmailType, err = readText(sub, field+".email", "email_type"); err != nil {
			return ocf.Issuer{}, err
		}
		if email.EmailAddress, err = readText(sub, field+".email", "email_address"); err != nil {
			return ocf.Issuer{}, err
		}
		n.Email = &email
	}
	if raw, ok := rec["address"]; ok && raw != nil {
		address, err := addressFromWire(field+".address", raw)
		if err != nil {
			return ocf.Issuer{}, err
		}
		n.Address = &address
	}
	if n.InitialSharesAuthorized, err = readOptNumeric(rec, field, "initial_shares_authorized"); err != nil {
		return ocf.Issuer{}, err
	}
	if n.Comments, err = readComments(rec, field); err != nil {
		return ocf.Issuer{}, err
	}

	return n, nil
}

func addressToWire(a ocf.Address) ledgerapi.Record {
	return ledgerapi.Record{
		"address_type":        a.AddressType,
		"street_suite":        optText(a.StreetSuite),
		"city":                optText(a.City),
		"country_subdivision": optText(a.Subdivision),
		"country":             a.Country,
		"postal_code":         optText(a.PostalCode),
	}
}

func addressFromWire(field string, raw any) (ocf.Address, error) {
	rec, err := asRecord(field, raw)
	if err != nil {
		return ocf.Address{}, err
	}

	var a ocf.Address
	if a.AddressType, err = readText(rec, field, "address_type"); err != nil {
		return ocf.Address{}, err
	}
	if a.StreetSuite, err = readOptText(rec, field, "street_suite"); err != nil {
		return ocf.Address{}, err
	}
	if a.City, err = readOptText(rec, field, "city"); err != nil {
		return ocf.Address{}, err
	}
	if a.Subdivision, err = readOptText(rec, field, "country_subdivision"); err != nil {
		return ocf.Address{}, err
	}
	if a.Country, err = readText(rec, field, "country"); err != nil {
		return ocf.Address{}, err
	}
	if a.PostalCode, err = readOptText(rec, field, "postal_code"); err != nil {
		return ocf.Address{}, err
	}

	return a, nil
}

func stakeholderToLedger(n ocf.Stakeholder) (ledgerapi.Record, error) {
	const field = "stakeholder"
	if err := requireText(field+".id", n.ID); err != nil {
		return nil, err
	}
	if err := requireText(field+".name.legal_name", n.Name.LegalName); err != nil {
		return nil, err
	}
	stakeholderType, err := encodeEnum(field+".stakeholder_type", stakeholderTypeToWire, n.StakeholderType)
	if err != nil {
		return nil, err
	}

	addresses := make([]any, 0, len(n.Addresses))
	for _, a := range n.Addresses {
		addresses = append(addresses, addressToWire(a))
	}

	return ledgerapi.Record{
		"id": n.ID,
		"name": ledgerapi.Record{
			"legal_name": n.Name.LegalName,
			"first_name": optText(n.Name.FirstName),
			"last_name":  optText(n.Name.LastName),
		},
		"stakeholder_type":     stakeholderType,
		"issuer_assigned_id":   optText(n.IssuerAssignedID),
		"current_relationship": optText(n.CurrentRelationship),
		"addresses":            addresses,
		"comments":             cleanComments(n.Comments),
	}, nil
}

func stakeholderFromLedger(rec ledgerapi.Record) (ocf.Stakeholder, error) {
	const field = "stakeholder"
	var n ocf.Stakeholder
	var err error

	if n.ID, err = readText(rec, field, "id"); err != nil {
		return ocf.Stakeholder{}, err
	}
	nameRec, err := asRecord(field+".name", rec["name"])
	if err != nil {
		return ocf.Stakeholder{}, err
	}
	if n.Name.LegalName, err = readText(nameRec, field+".name", "legal_name"); err != nil {
		return ocf.Stakeholder{}, err
	}
	if n.Name.FirstName, err = readOptText(nameRec, field+".name", "first_name"); err != nil {
		return ocf.Stakeholder{}, err
	}
	if n.Name.LastName, err = readOptText(nameRec, field+".name", "last_name"); err != nil {
		return ocf.Stakeholder{}, err
	}
	if n.StakeholderType, err = decodeEnum(field+".stakeholder_type", stakeholderTypeFromWire, rec["stakeholder_type"]); err != nil {
		return ocf.Stakeholder{}, err
	}
	if n.IssuerAssignedID, err = readOptText(rec, field, "issuer_assigned_id"); err != nil {
		return ocf.Stakeholder{}, err
	}
	if n.CurrentRelationship, err = readOptText(rec, field, "current_relationship"); err != nil {
		return ocf.Stakeholder{}, err
	}
	if raw, ok := rec["addresses"]; ok && raw != nil {
		items, ok := raw.([]any)
		if !ok {
			return ocf.Stakeholder{}, types.NewParseError(field+".addresses", "expected list", raw)
		}
		for i, item := range items {
			a, err := addressFromWire(indexed(field+".addresses", i), item)
			if err != nil {
				return ocf.Stakeholder{}, err
			}
			n.Addresses = append(n.Addresses, a)
		}
	}
	if n.Comments, err = readComments(rec, field); err != nil {
		return ocf.Stakeholder{}, err
	}

	return n, nil
}

func stockClassToLedger(n ocf.StockClass) (ledgerapi.Record, error) {
	const field = "stockClass"
	if err := requireText(field+".id", n.ID); err != nil {
		return nil, err
	}
	if err := requireText(field+".name", n.Name); err != nil {
		return nil, err
	}
	classType, err := encodeEnum(field+".class_type", stockClassTypeToWire, n.ClassType)
	if err != nil {
		return nil, err
	}
	sharesAuthorized, err := numericField(field+".initial_shares_authorized", n.InitialSharesAuthorized)
	if err != nil {
		return nil, err
	}
	votes, err := numericField(field+".votes", n.Votes)
	if err != nil {
		return nil, err
	}
	boardApproval, err := optDate(field+".board_approval_date", n.BoardApprovalDate)
	if err != nil {
		return nil, err
	}
	parValue, err := optMonetaryToWire(field+".par_value", n.ParValue)
	if err != nil {
		return nil, err
	}
	pricePerShare, err := optMonetaryToWire(field+".price_per_share", n.PricePerShare)
	if err != nil {
		return nil, err
	}
	liquidation, err := optNumeric(field+".liquidation_preference_multiple", n.LiquidationPreferenceMultiple)
	if err != nil {
		return nil, err
	}
	participationCap, err := optNumeric(field+".participation_cap_multiple", n.ParticipationCapMultiple)
	if err != nil {
		return nil, err
	}

	return ledgerapi.Record{
		"id":                              n.ID,
		"name":                            n.Name,
		"class_type":                      classType,
		"default_id_prefix":               n.DefaultIDPrefix,
		"initial_shares_authorized":       sharesAuthorized,
		"board_approval_date":             boardApproval,
		"votes":                           votes,
		"par_value":                       parValue,
		"price_per_share":                 pricePerShare,
		"liquidation_preference_multiple": liquidation,
		"participation_cap_multiple":      participationCap,
		"comments":                        cleanComments(n.Comments),
	}, nil
}

func stockClassFromLedger(rec ledgerapi.Record) (ocf.StockClass, error) {
	const field = "stockClass"
	var n ocf.StockClass
	var err error

	if n.ID, err = readText(rec, field, "id"); err != nil {
		return ocf.StockClass{}, err
	}
	if n.Name, err = readText(rec, field, "name"); err != nil {
		return ocf.StockClass{}, err
	}
	if n.ClassType, err = decodeEnum(field+".class_type", stockClassTypeFromWire, rec["class_type"]); err != nil {
		return ocf.StockClass{}, err
	}
	if n.DefaultIDPrefix, err = readText(rec, field, "default_id_prefix"); err != nil {
		return ocf.StockClass{}, err
	}
	if n.InitialSharesAuthorized, err = readNumeric(rec, field, "initial_shares_authorized"); err != nil {
		return ocf.StockClass{}, err
	}
	if n.BoardApprovalDate, err = readOptDate(rec, field, "board_approval_date"); err != nil {
		return ocf.StockClass{}, err
	}
	if n.Votes, err = readNumeric(rec, field, "votes"); err != nil {
		return ocf.StockClass{}, err
	}
	if n.ParValue, err = readOptMonetary(rec, field, "par_value"); err != nil {
		return ocf.StockClass{}, err
	}
	if n.PricePerShare, err = readOptMonetary(rec, field, "price_per_share"); err != nil {
		return ocf.StockClass{}, err
	}
	if n.LiquidationPreferenceMultiple, err = readOptNumeric(rec, field, "liquidation_preference_multiple"); err != nil {
		return ocf.StockClass{}, err
	}
	if n.ParticipationCapMultiple, err = readOptNumeric(rec, field, "participation_cap_multiple"); err != nil {
		return ocf.StockClass{}, err
	}
	if n.Comments, err = readComments(rec, field); err != nil {
		return ocf.StockClass{}, err
	}

	return n, nil
}

func stockLegendTemplateToLedger(n ocf.StockLegendTemplate) (ledgerapi.Record, error) {
	const field = "stockLegendTemplate"
	if err := requireText(field+".id", n.ID); err != nil {
		return nil, err
	}
	if err := requireText(field+".name", n.Name); err != nil {
		return nil, err
	}
	if err := requireText(field+".text", n.Text); err != nil {
		return nil, err
	}

	return ledgerapi.Record{
		"id":       n.ID,
		"name":     n.Name,
		"text":     n.Text,
		"comments": cleanComments(n.Comments),
	}, nil
}

func stockLegendTemplateFromLedger(rec ledgerapi.Record) (ocf.StockLegendTemplate, error) {
	const field = "stockLegendTemplate"
	var n ocf.StockLegendTemplate
	var err error

	if n.ID, err = readText(rec, field, "id"); err != nil {
		return ocf.StockLegendTemplate{}, err
	}
	if n.Name, err = readText(rec, field, "name"); err != nil {
		return ocf.StockLegendTemplate{}, err
	}
	if n.Text, err = readText(rec, field, "text"); err != nil {
		return ocf.StockLegendTemplate{}, err
	}
	if n.Comments, err = readComments(rec, field); err != nil {
		return ocf.StockLegendTemplate{}, err
	}

	return n, nil
}

// stockPlanToLedger folds the deprecated singular stock_class_id into the
// plural list before encoding; the singular shape never reaches the ledger.
func stockPlanToLedger(n ocf.StockPlan) (ledgerapi.Record, error) {
	const field = "stockPlan"
	if err := requireText(field+".id", n.ID); err != nil {
		return nil, err
	}
	if err := requireText(field+".plan_name", n.PlanName); err != nil {
		return nil, err
	}
	sharesReserved, err := numericField(field+".initial_shares_reserved", n.InitialSharesReserved)
	if err != nil {
		return nil, err
	}
	boardApproval, err := optDate(field+".board_approval_date", n.BoardApprovalDate)
	if err != nil {
		return nil, err
	}
	stockholderApproval, err := optDate(field+".stockholder_approval_date", n.StockholderApprovalDate)
	if err != nil {
		return nil, err
	}

	stockClassIDs := n.StockClassIDs
	if len(stockClassIDs) == 0 && n.StockClassID != nil {
		stockClassIDs = []string{*n.StockClassID}
	}

	return ledgerapi.Record{
		"id":                        n.ID,
		"plan_name":                 n.PlanName,
		"board_approval_date":       boardApproval,
		"stockholder_approval_date": stockholderApproval,
		"initial_shares_reserved":   sharesReserved,
		"stock_class_ids":           textList(stockClassIDs),
		"comments":                  cleanComments(n.Comments),
	}, nil
}

func stockPlanFromLedger(rec ledgerapi.Record) (ocf.StockPlan, error) {
	const field = "stockPlan"
	var n ocf.StockPlan
	var err error

	if n.ID, err = readText(rec, field, "id"); err != nil {
		return ocf.StockPlan{}, err
	}
	if n.PlanName, err = readText(rec, field, "plan_name"); err != nil {
		return ocf.StockPlan{}, err
	}
	if n.BoardApprovalDate, err = readOptDate(rec, field, "board_approval_date"); err != nil {
		return ocf.StockPlan{}, err
	}
	if n.StockholderApprovalDate, err = readOptDate(rec, field, "stockholder_approval_date"); err != nil {
		return ocf.StockPlan{}, err
	}
	if n.InitialSharesReserved, err = readNumeric(rec, field, "initial_shares_reserved"); err != nil {
		return ocf.StockPlan{}, err
	}
	if n.StockClassIDs, err = readTextList(rec, field, "stock_class_ids"); err != nil {
		return ocf.StockPlan{}, err
	}
	if n.Comments, err = readComments(rec, field); err != nil {
		return ocf.StockPlan{}, err
	}

	return n, nil
}

func valuationToLedger(n ocf.Valuation) (ledgerapi.Record, error) {
	const field = "valuation"
	if err := requireText(field+".id", n.ID); err != nil {
		return nil, err
	}
	if err := requireText(field+".stock_class_id", n.StockClassID); err != nil {
		return nil, err
	}
	effectiveDate, err := dateToWire(field+".effective_date", n.EffectiveDate)
	if err != nil {
		return nil, err
	}
	pricePerShare, err := monetaryToWire(field+".price_per_share", n.PricePerShare)
	if err != nil {
		return nil, err
	}
	if err := requireText(field+".valuation_type", n.ValuationType); err != nil {
		return nil, err
	}

	return ledgerapi.Record{
		"id":              n.ID,
		"stock_class_id":  n.StockClassID,
		"provider":        optText(n.ProviderName),
		"effective_date":  effectiveDate,
		"price_per_share": pricePerShare,
		"valuation_type":  n.ValuationType,
		"comments":        cleanComments(n.Comments),
	}, nil
}

func valuationFromLedger(rec ledgerapi.Record) (ocf.Valuation, error) {
	const field = "valuation"
	var n ocf.Valuation
	var err error

	if n.ID, err = readText(rec, field, "id"); err != nil {
		return ocf.Valuation{}, err
	}
	if n.StockClassID, err = readText(rec, field, "stock_class_id"); err != nil {
		return ocf.Valuation{}, err
	}
	if n.ProviderName, err = readOptText(rec, field, "provider"); err != nil {
		return ocf.Valuation{}, err
	}
	if n.EffectiveDate, err = readDate(rec, field, "effective_date"); err != nil {
		return ocf.Valuation{}, err
	}
	if n.PricePerShare, err = readMonetary(rec, field, "price_per_share"); err != nil {
		return ocf.Valuation{}, err
	}
	if n.ValuationType, err = readText(rec, field, "valuation_type"); err != nil {
		return ocf.Valuation{}, err
	}
	if n.Comments, err = readComments(rec, field); err != nil {
		return ocf.Valuation{}, err
	}

	return n, nil
}

func vestingTermsToLedger(n ocf.VestingTerms) (ledgerapi.Record, error) {
	const field = "vestingTerms"
	if err := requireText(field+".id", n.ID); err != nil {
		return nil, err
	}
	if err := requireText(field+".name", n.Name); err != nil {
		return nil, err
	}
	allocationType, err := encodeEnum(field+".allocation_type", allocationTypeToWire, n.AllocationType)
	if err != nil {
		return nil, err
	}

	conditions := make([]any, 0, len(n.VestingConditions))
	for i, cond := range n.VestingConditions {
		rec, err := vestingConditionToWire(indexed(field+".vesting_conditions", i), cond)
		if err != nil {
			return nil, err
		}
		conditions = append(conditions, rec)
	}

	return ledgerapi.Record{
		"id":                 n.ID,
		"name":               n.Name,
		"description":        n.Description,
		"allocation_type":    allocationType,
		"vesting_conditions": conditions,
		"comments":           cleanComments(n.Comments),
	}, nil
}

func vestingTermsFromLedger(rec ledgerapi.Record) (ocf.VestingTerms, error) {
	const field = "vestingTerms"
	var n ocf.VestingTerms
	var err error

	if n.ID, err = readText(rec, field, "id"); err != nil {
		return ocf.VestingTerms{}, err
	}
	if n.Name, err = readText(rec, field, "name"); err != nil {
		return ocf.VestingTerms{}, err
	}
	if n.Description, err = readText(rec, field, "description"); err != nil {
		return ocf.VestingTerms{}, err
	}
	if n.AllocationType, err = decodeEnum(field+".allocation_type", allocationTypeFromWire, rec["allocation_type"]); err != nil {
		return ocf.VestingTerms{}, err
	}
	raw := rec["vesting_conditions"]
	items, ok := raw.([]any)
	if raw != nil && !ok {
		return ocf.VestingTerms{}, types.NewParseError(field+".vesting_conditions", "expected list", raw)
	}
	n.VestingConditions = make([]ocf.VestingCondition, 0, len(items))
	for i, item := range items {
		cond, err := vestingConditionFromWire(indexed(field+".vesting_conditions", i), item)
		if err != nil {
			return ocf.VestingTerms{}, err
		}
		n.VestingConditions = append(n.VestingConditions, cond)
	}
	if n.Comments, err = readComments(rec, field); err != nil {
		return ocf.VestingTerms{}, err
	}

	return n, nil
}

func financingToLedger(n ocf.Financing) (ledgerapi.Record, error) {
	const field = "financing"
	if err := requireText(field+".id", n.ID); err != nil {
		return nil, err
	}
	if err := requireText(field+".name", n.Name); err != nil {
		return nil, err
	}
	closedDate, err := optDate(field+".closed_date", n.ClosedDate)
	if err != nil {
		return nil, err
	}

	return ledgerapi.Record{
		"id":          n.ID,
		"name":        n.Name,
		"closed_date": closedDate,
		"comments":    cleanComments(n.Comments),
	}, nil
}

func financingFromLedger(rec ledgerapi.Record) (ocf.Financing, error) {
	const field = "financing"
	var n ocf.Financing
	var err error

	if n.ID, err = readText(rec, field, "id"); err != nil {
		return ocf.Financing{}, err
	}
	if n.Name, err = readText(rec, field, "name"); err != nil {
		return ocf.Financing{}, err
	}
	if n.ClosedDate, err = readOptDate(rec, field, "closed_date"); err != nil {
		return ocf.Financing{}, err
	}
	if n.Comments, err = readComments(rec, field); err != nil {
		return ocf.Financing{}, err
	}

	return n, nil
}

func documentToLedger(n ocf.Document) (ledgerapi.Record, error) {
	const field = "document"
	if err := requireText(field+".id", n.ID); err != nil {
		return nil, err
	}
	if err := requireText(field+".md5", n.MD5); err != nil {
		return nil, err
	}
	if n.Path == nil && n.URI == nil {
		return nil, types.NewValidationError(field+".path", "either path or uri is required")
	}

	return ledgerapi.Record{
		"id":       n.ID,
		"path":     optText(n.Path),
		"uri":      optText(n.URI),
		"md5":      n.MD5,
		"comments": cleanComments(n.Comments),
	}, nil
}

func documentFromLedger(rec ledgerapi.Record) (ocf.Document, error) {
	const field = "document"
	var n ocf.Document
	var err error

	if n.ID, err = readText(rec, field, "id"); err != nil {
		return ocf.Document{}, err
	}
	if n.Path, err = readOptText(rec, field, "path"); err != nil {
		return ocf.Document{}, err
	}
	if n.URI, err = readOptText(rec, field, "uri"); err != nil {
		return ocf.Document{}, err
	}
	if n.MD5, err = readText(rec, field, "md5"); err != nil {
		return ocf.Document{}, err
	}
	if n.Comments, err = readComments(rec, field); err != nil {
		return ocf.Document{}, err
	}

	return n, nil
}
