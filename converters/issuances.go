package converters

import (
	"github.com/Fairmint/ocp-canton-sdk/ledgerapi"
	"github.com/Fairmint/ocp-canton-sdk/ocf"
	"github.com/Fairmint/ocp-canton-sdk/types"
)

// txToWire encodes the shared transaction base fields.
func txToWire(field string, tx ocf.Transaction) (ledgerapi.Record, error) {
	if err := requireText(field+".id", tx.ID); err != nil {
		return nil, err
	}
	date, err := dateToWire(field+".date", tx.Date)
	if err != nil {
		return nil, err
	}

	return ledgerapi.Record{
		"id":       tx.ID,
		"date":     date,
		"comments": cleanComments(tx.Comments),
	}, nil
}

func txFromWire(field string, rec ledgerapi.Record) (ocf.Transaction, error) {
	var tx ocf.Transaction
	var err error

	if tx.ID, err = readText(rec, field, "id"); err != nil {
		return ocf.Transaction{}, err
	}
	if tx.Date, err = readDate(rec, field, "date"); err != nil {
		return ocf.Transaction{}, err
	}
	if tx.Comments, err = readComments(rec, field); err != nil {
		return ocf.Transaction{}, err
	}

	return tx, nil
}

// securityTxToWire encodes the base fields of a transaction acting on one
// security.
func securityTxToWire(field string, tx ocf.SecurityTransaction) (ledgerapi.Record, error) {
	rec, err := txToWire(field, tx.Transaction)
	if err != nil {
		return nil, err
	}
	if err := requireText(field+".security_id", tx.SecurityID); err != nil {
		return nil, err
	}
	rec["security_id"] = tx.SecurityID

	return rec, nil
}

func securityTxFromWire(field string, rec ledgerapi.Record) (ocf.SecurityTransaction, error) {
	base, err := txFromWire(field, rec)
	if err != nil {
		return ocf.SecurityTransaction{}, err
	}
	securityID, err := readText(rec, field, "security_id")
	if err != nil {
		return ocf.SecurityTransaction{}, err
	}

	return ocf.SecurityTransaction{Transaction: base, SecurityID: securityID}, nil
}

func stockIssuanceToLedger(n ocf.StockIssuance) (ledgerapi.Record, error) {
	const field = "stockIssuance"
	rec, err := securityTxToWire(field, n.SecurityTransaction)
	if err != nil {
		return nil, err
	}
	if err := requireText(field+".stakeholder_id", n.StakeholderID); err != nil {
		return nil, err
	}
	if err := requireText(field+".stock_class_id", n.StockClassID); err != nil {
		return nil, err
	}
	quantity, err := numericField(field+".quantity", n.Quantity)
	if err != nil {
		return nil, err
	}
	sharePrice, err := optMonetaryToWire(field+".share_price", n.SharePrice)
	if err != nil {
		return nil, err
	}
	costBasis, err := optMonetaryToWire(field+".cost_basis", n.CostBasis)
	if err != nil {
		return nil, err
	}

	rec["stakeholder_id"] = n.StakeholderID
	rec["stock_class_id"] = n.StockClassID
	rec["stock_plan_id"] = optText(n.StockPlanID)
	rec["quantity"] = quantity
	rec["share_price"] = sharePrice
	rec["cost_basis"] = costBasis
	rec["stock_legend_ids"] = textList(n.StockLegendIDs)
	rec["vesting_terms_id"] = optText(n.VestingTermsID)
	rec["custom_id"] = optText(n.CustomID)

	return rec, nil
}

func stockIssuanceFromLedger(rec ledgerapi.Record) (ocf.StockIssuance, error) {
	const field = "stockIssuance"
	base, err := securityTxFromWire(field, rec)
	if err != nil {
		return ocf.StockIssuance{}, err
	}

	n := ocf.StockIssuance{SecurityTransaction: base}
	if n.StakeholderID, err = readText(rec, field, "stakeholder_id"); err != nil {
		return ocf.StockIssuance{}, err
	}
	if n.StockClassID, err = readText(rec, field, "stock_class_id"); err != nil {
		return ocf.StockIssuance{}, err
	}
	if n.StockPlanID, err = readOptText(rec, field, "stock_plan_id"); err != nil {
		return ocf.StockIssuance{}, err
	}
	if n.Quantity, err = readNumeric(rec, field, "quantity"); err != nil {
		return ocf.StockIssuance{}, err
	}
	if n.SharePrice, err = readOptMonetary(rec, field, "share_price"); err != nil {
		return ocf.StockIssuance{}, err
	}
	if n.CostBasis, err = readOptMonetary(rec, field, "cost_basis"); err != nil {
		return ocf.StockIssuance{}, err
	}
	legendIDs, err := readTextList(rec, field, "stock_legend_ids")
	if err != nil {
		return ocf.StockIssuance{}, err
	}
	if len(legendIDs) > 0 {
		n.StockLegendIDs = legendIDs
	}
	if n.VestingTermsID, err = readOptText(rec, field, "vesting_terms_id"); err != nil {
		return ocf.StockIssuance{}, err
	}
	if n.CustomID, err = readOptText(rec, field, "custom_id"); err != nil {
		return ocf.StockIssuance{}, err
	}

	return n, nil
}

func warrantIssuanceToLedger(n ocf.WarrantIssuance) (ledgerapi.Record, error) {
	const field = "warrantIssuance"
	rec, err := securityTxToWire(field, n.SecurityTransaction)
	if err != nil {
		return nil, err
	}
	if err := requireText(field+".stakeholder_id", n.StakeholderID); err != nil {
		return nil, err
	}
	quantity, err := optNumeric(field+".quantity", n.Quantity)
	if err != nil {
		return nil, err
	}
	purchasePrice, err := monetaryToWire(field+".purchase_price", n.PurchasePrice)
	if err != nil {
		return nil, err
	}
	exercisePrice, err := optMonetaryToWire(field+".exercise_price", n.ExercisePrice)
	if err != nil {
		return nil, err
	}
	triggers, err := conversionTriggersToWire(field+".exercise_triggers", n.ExerciseTriggers)
	if err != nil {
		return nil, err
	}
	expiration, err := optDate(field+".warrant_expiration_date", n.WarrantExpirationDate)
	if err != nil {
		return nil, err
	}

	rec["stakeholder_id"] = n.StakeholderID
	rec["quantity"] = quantity
	rec["purchase_price"] = purchasePrice
	rec["exercise_price"] = exercisePrice
	rec["exercise_triggers"] = triggers
	rec["warrant_expiration_date"] = expiration

	return rec, nil
}

func warrantIssuanceFromLedger(rec ledgerapi.Record) (ocf.WarrantIssuance, error) {
	const field = "warrantIssuance"
	base, err := securityTxFromWire(field, rec)
	if err != nil {
		return ocf.WarrantIssuance{}, err
	}

	n := ocf.WarrantIssuance{SecurityTransaction: base}
	if n.StakeholderID, err = readText(rec, field, "stakeholder_id"); err != nil {
		return ocf.WarrantIssuance{}, err
	}
	if n.Quantity, err = readOptNumeric(rec, field, "quantity"); err != nil {
		return ocf.WarrantIssuance{}, err
	}
	if n.PurchasePrice, err = readMonetary(rec, field, "purchase_price"); err != nil {
		return ocf.WarrantIssuance{}, err
	}
	if n.ExercisePrice, err = readOptMonetary(rec, field, "exercise_price"); err != nil {
		return ocf.WarrantIssuance{}, err
	}
	if n.ExerciseTriggers, err = conversionTriggersFromWire(field+".exercise_triggers", rec["exercise_triggers"]); err != nil {
		return ocf.WarrantIssuance{}, err
	}
	if n.WarrantExpirationDate, err = readOptDate(rec, field, "warrant_expiration_date"); err != nil {
		return ocf.WarrantIssuance{}, err
	}

	return n, nil
}

func convertibleIssuanceToLedger(n ocf.ConvertibleIssuance) (ledgerapi.Record, error) {
	const field = "convertibleIssuance"
	rec, err := securityTxToWire(field, n.SecurityTransaction)
	if err != nil {
		return nil, err
	}
	if err := requireText(field+".stakeholder_id", n.StakeholderID); err != nil {
		return nil, err
	}
	investment, err := monetaryToWire(field+".investment_amount", n.InvestmentAmount)
	if err != nil {
		return nil, err
	}
	convertibleType, err := encodeEnum(field+".convertible_type", convertibleTypeToWire, n.ConvertibleType)
	if err != nil {
		return nil, err
	}
	triggers, err := conversionTriggersToWire(field+".conversion_triggers", n.ConversionTriggers)
	if err != nil {
		return nil, err
	}

	rec["stakeholder_id"] = n.StakeholderID
	rec["investment_amount"] = investment
	rec["convertible_type"] = convertibleType
	rec["conversion_triggers"] = triggers

	return rec, nil
}

func convertibleIssuanceFromLedger(rec ledgerapi.Record) (ocf.ConvertibleIssuance, error) {
	const field = "convertibleIssuance"
	base, err := securityTxFromWire(field, rec)
	if err != nil {
		return ocf.ConvertibleIssuance{}, err
	}

	n := ocf.ConvertibleIssuance{SecurityTransaction: base}
	if n.StakeholderID, err = readText(rec, field, "stakeholder_id"); err != nil {
		return ocf.ConvertibleIssuance{}, err
	}
	if n.InvestmentAmount, err = readMonetary(rec, field, "investment_amount"); err != nil {
		return ocf.ConvertibleIssuance{}, err
	}
	if n.ConvertibleType, err = decodeEnum(field+".convertible_type", convertibleTypeFromWire, rec["convertible_type"]); err != nil {
		return ocf.ConvertibleIssuance{}, err
	}
	if n.ConversionTriggers, err = conversionTriggersFromWire(field+".conversion_triggers", rec["conversion_triggers"]); err != nil {
		return ocf.ConvertibleIssuance{}, err
	}

	return n, nil
}

// equityCompensationIssuanceToLedger serves both the general equity
// compensation type and the plan security alias; the alias path sets
// rejectOther because the ledger has no variant for an unmapped compensation
// type there.
func equityCompensationIssuanceToLedger(field string, n ocf.EquityCompensationIssuance, rejectOther bool) (ledgerapi.Record, error) {
	rec, err := securityTxToWire(field, n.SecurityTransaction)
	if err != nil {
		return nil, err
	}
	if err := requireText(field+".stakeholder_id", n.StakeholderID); err != nil {
		return nil, err
	}
	if rejectOther && n.CompensationType == ocf.CompensationOther {
		return nil, types.NewValidationErrorValue(field+".compensation_type", "unsupported value for plan security transactions", n.CompensationType)
	}
	compensationType, err := encodeEnum(field+".compensation_type", compensationTypeToWire, n.CompensationType)
	if err != nil {
		return nil, err
	}
	quantity, err := numericField(field+".quantity", n.Quantity)
	if err != nil {
		return nil, err
	}
	exercisePrice, err := optMonetaryToWire(field+".exercise_price", n.ExercisePrice)
	if err != nil {
		return nil, err
	}
	basePrice, err := optMonetaryToWire(field+".base_price", n.BasePrice)
	if err != nil {
		return nil, err
	}
	expiration, err := optDate(field+".expiration_date", n.ExpirationDate)
	if err != nil {
		return nil, err
	}

	rec["stakeholder_id"] = n.StakeholderID
	rec["stock_class_id"] = optText(n.StockClassID)
	rec["stock_plan_id"] = optText(n.StockPlanID)
	rec["compensation_type"] = compensationType
	rec["quantity"] = quantity
	rec["exercise_price"] = exercisePrice
	rec["base_price"] = basePrice
	rec["expiration_date"] = expiration
	rec["vesting_terms_id"] = optText(n.VestingTermsID)

	return rec, nil
}

func equityCompensationIssuanceFromLedger(field string, rec ledgerapi.Record) (ocf.EquityCompensationIssuance, error) {
	base, err := securityTxFromWire(field, rec)
	if err != nil {
		return ocf.EquityCompensationIssuance{}, err
	}

	n := ocf.EquityCompensationIssuance{SecurityTransaction: base}
	if n.StakeholderID, err = readText(rec, field, "stakeholder_id"); err != nil {
		return ocf.EquityCompensationIssuance{}, err
	}
	if n.StockClassID, err = readOptText(rec, field, "stock_class_id"); err != nil {
		return ocf.EquityCompensationIssuance{}, err
	}
	if n.StockPlanID, err = readOptText(rec, field, "stock_plan_id"); err != nil {
		return ocf.EquityCompensationIssuance{}, err
	}
	if n.CompensationType, err = decodeEnum(field+".compensation_type", compensationTypeFromWire, rec["compensation_type"]); err != nil {
		return ocf.EquityCompensationIssuance{}, err
	}
	if n.Quantity, err = readNumeric(rec, field, "quantity"); err != nil {
		return ocf.EquityCompensationIssuance{}, err
	}
	if n.ExercisePrice, err = readOptMonetary(rec, field, "exercise_price"); err != nil {
		return ocf.EquityCompensationIssuance{}, err
	}
	if n.BasePrice, err = readOptMonetary(rec, field, "base_price"); err != nil {
		return ocf.EquityCompensationIssuance{}, err
	}
	if n.ExpirationDate, err = readOptDate(rec, field, "expiration_date"); err != nil {
		return ocf.EquityCompensationIssuance{}, err
	}
	if n.VestingTermsID, err = readOptText(rec, field, "vesting_terms_id"); err != nil {
		return ocf.EquityCompensationIssuance{}, err
	}

	return n, nil
}
