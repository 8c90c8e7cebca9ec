package converters

import (
	"github.com/Fairmint/ocp-canton-sdk/ledgerapi"
	"github.com/Fairmint/ocp-canton-sdk/ocf"
	"github.com/Fairmint/ocp-canton-sdk/types"
)

// --- Structural transactions ---

func stockClassSplitToLedger(n ocf.StockClassSplit) (ledgerapi.Record, error) {
	const field = "stockClassSplit"
	rec, err := txToWire(field, n.Transaction)
	if err != nil {
		return nil, err
	}
	if err := requireText(field+".stock_class_id", n.StockClassID); err != nil {
		return nil, err
	}
	numerator, err := numericField(field+".split_ratio.numerator", n.SplitRatio.Numerator)
	if err != nil {
		return nil, err
	}
	denominator, err := numericField(field+".split_ratio.denominator", n.SplitRatio.Denominator)
	if err != nil {
		return nil, err
	}

	rec["stock_class_id"] = n.StockClassID
	rec["split_ratio"] = ledgerapi.Record{"numerator": numerator, "denominator": denominator}

	return rec, nil
}

func stockClassSplitFromLedger(rec ledgerapi.Record) (ocf.StockClassSplit, error) {
	const field = "stockClassSplit"
	base, err := txFromWire(field, rec)
	if err != nil {
		return ocf.StockClassSplit{}, err
	}

	n := ocf.StockClassSplit{Transaction: base}
	if n.StockClassID, err = readText(rec, field, "stock_class_id"); err != nil {
		return ocf.StockClassSplit{}, err
	}
	ratioRec, err := asRecord(field+".split_ratio", rec["split_ratio"])
	if err != nil {
		return ocf.StockClassSplit{}, err
	}
	if n.SplitRatio.Numerator, err = readNumeric(ratioRec, field+".split_ratio", "numerator"); err != nil {
		return ocf.StockClassSplit{}, err
	}
	if n.SplitRatio.Denominator, err = readNumeric(ratioRec, field+".split_ratio", "denominator"); err != nil {
		return ocf.StockClassSplit{}, err
	}

	return n, nil
}

// stockConsolidationToLedger narrows resulting_security_ids to the ledger's
// singular resulting_security_id, keeping only the first entry.
func stockConsolidationToLedger(n ocf.StockConsolidation) (ledgerapi.Record, error) {
	const field = "stockConsolidation"
	rec, err := txToWire(field, n.Transaction)
	if err != nil {
		return nil, err
	}
	if len(n.SecurityIDs) == 0 {
		return nil, types.NewValidationError(field+".security_ids", "is required")
	}
	if len(n.ResultingSecurityIDs) == 0 {
		return nil, types.NewValidationError(field+".resulting_security_ids", "is required")
	}

	rec["security_ids"] = textList(n.SecurityIDs)
	rec["resulting_security_id"] = n.ResultingSecurityIDs[0]
	rec["reason_text"] = optText(n.ReasonText)

	return rec, nil
}

func stockConsolidationFromLedger(rec ledgerapi.Record) (ocf.StockConsolidation, error) {
	const field = "stockConsolidation"
	base, err := txFromWire(field, rec)
	if err != nil {
		return ocf.StockConsolidation{}, err
	}

	n := ocf.StockConsolidation{Transaction: base}
	if n.SecurityIDs, err = readTextList(rec, field, "security_ids"); err != nil {
		return ocf.StockConsolidation{}, err
	}
	resulting, err := readText(rec, field, "resulting_security_id")
	if err != nil {
		return ocf.StockConsolidation{}, err
	}
	n.ResultingSecurityIDs = []string{resulting}
	if n.ReasonText, err = readOptText(rec, field, "reason_text"); err != nil {
		return ocf.StockConsolidation{}, err
	}

	return n, nil
}

func stockPlanReturnToPoolToLedger(n ocf.StockPlanReturnToPool) (ledgerapi.Record, error) {
	const field = "stockPlanReturnToPool"
	rec, err := securityTxToWire(field, n.SecurityTransaction)
	if err != nil {
		return nil, err
	}
	if err := requireText(field+".stock_plan_id", n.StockPlanID); err != nil {
		return nil, err
	}
	quantity, err := numericField(field+".quantity", n.Quantity)
	if err != nil {
		return nil, err
	}
	if err := requireText(field+".reason_text", n.ReasonText); err != nil {
		return nil, err
	}

	rec["stock_plan_id"] = n.StockPlanID
	rec["quantity"] = quantity
	rec["reason_text"] = n.ReasonText

	return rec, nil
}

func stockPlanReturnToPoolFromLedger(rec ledgerapi.Record) (ocf.StockPlanReturnToPool, error) {
	const field = "stockPlanReturnToPool"
	base, err := securityTxFromWire(field, rec)
	if err != nil {
		return ocf.StockPlanReturnToPool{}, err
	}

	n := ocf.StockPlanReturnToPool{SecurityTransaction: base}
	if n.StockPlanID, err = readText(rec, field, "stock_plan_id"); err != nil {
		return ocf.StockPlanReturnToPool{}, err
	}
	if n.Quantity, err = readNumeric(rec, field, "quantity"); err != nil {
		return ocf.StockPlanReturnToPool{}, err
	}
	if n.ReasonText, err = readText(rec, field, "reason_text"); err != nil {
		return ocf.StockPlanReturnToPool{}, err
	}

	return n, nil
}

// --- Adjustments ---

func issuerAuthorizedSharesAdjustmentToLedger(n ocf.IssuerAuthorizedSharesAdjustment) (ledgerapi.Record, error) {
	const field = "issuerAuthorizedSharesAdjustment"
	rec, err := txToWire(field, n.Transaction)
	if err != nil {
		return nil, err
	}
	if err := requireText(field+".issuer_id", n.IssuerID); err != nil {
		return nil, err
	}
	shares, err := numericField(field+".new_shares_authorized", n.NewSharesAuthorized)
	if err != nil {
		return nil, err
	}
	board, err := optDate(field+".board_approval_date", n.BoardApprovalDate)
	if err != nil {
		return nil, err
	}
	stockholder, err := optDate(field+".stockholder_approval_date", n.StockholderApprovalDate)
	if err != nil {
		return nil, err
	}

	rec["issuer_id"] = n.IssuerID
	rec["new_shares_authorized"] = shares
	rec["board_approval_date"] = board
	rec["stockholder_approval_date"] = stockholder

	return rec, nil
}

func issuerAuthorizedSharesAdjustmentFromLedger(rec ledgerapi.Record) (ocf.IssuerAuthorizedSharesAdjustment, error) {
	const field = "issuerAuthorizedSharesAdjustment"
	base, err := txFromWire(field, rec)
	if err != nil {
		return ocf.IssuerAuthorizedSharesAdjustment{}, err
	}

	n := ocf.IssuerAuthorizedSharesAdjustment{Transaction: base}
	if n.IssuerID, err = readText(rec, field, "issuer_id"); err != nil {
		return ocf.IssuerAuthorizedSharesAdjustment{}, err
	}
	if n.NewSharesAuthorized, err = readNumeric(rec, field, "new_shares_authorized"); err != nil {
		return ocf.IssuerAuthorizedSharesAdjustment{}, err
	}
	if n.BoardApprovalDate, err = readOptDate(rec, field, "board_approval_date"); err != nil {
		return ocf.IssuerAuthorizedSharesAdjustment{}, err
	}
	if n.StockholderApprovalDate, err = readOptDate(rec, field, "stockholder_approval_date"); err != nil {
		return ocf.IssuerAuthorizedSharesAdjustment{}, err
	}

	return n, nil
}

func stockClassAuthorizedSharesAdjustmentToLedger(n ocf.StockClassAuthorizedSharesAdjustment) (ledgerapi.Record, error) {
	const field = "stockClassAuthorizedSharesAdjustment"
	rec, err := txToWire(field, n.Transaction)
	if err != nil {
		return nil, err
	}
	if err := requireText(field+".stock_class_id", n.StockClassID); err != nil {
		return nil, err
	}
	shares, err := numericField(field+".new_shares_authorized", n.NewSharesAuthorized)
	if err != nil {
		return nil, err
	}
	board, err := optDate(field+".board_approval_date", n.BoardApprovalDate)
	if err != nil {
		return nil, err
	}
	stockholder, err := optDate(field+".stockholder_approval_date", n.StockholderApprovalDate)
	if err != nil {
		return nil, err
	}

	rec["stock_class_id"] = n.StockClassID
	rec["new_shares_authorized"] = shares
	rec["board_approval_date"] = board
	rec["stockholder_approval_date"] = stockholder

	return rec, nil
}

func stockClassAuthorizedSharesAdjustmentFromLedger(rec ledgerapi.Record) (ocf.StockClassAuthorizedSharesAdjustment, error) {
	const field = "stockClassAuthorizedSharesAdjustment"
	base, err := txFromWire(field, rec)
	if err != nil {
		return ocf.StockClassAuthorizedSharesAdjustment{}, err
	}

	n := ocf.StockClassAuthorizedSharesAdjustment{Transaction: base}
	if n.StockClassID, err = readText(rec, field, "stock_class_id"); err != nil {
		return ocf.StockClassAuthorizedSharesAdjustment{}, err
	}
	if n.NewSharesAuthorized, err = readNumeric(rec, field, "new_shares_authorized"); err != nil {
		return ocf.StockClassAuthorizedSharesAdjustment{}, err
	}
	if n.BoardApprovalDate, err = readOptDate(rec, field, "board_approval_date"); err != nil {
		return ocf.StockClassAuthorizedSharesAdjustment{}, err
	}
	if n.StockholderApprovalDate, err = readOptDate(rec, field, "stockholder_approval_date"); err != nil {
		return ocf.StockClassAuthorizedSharesAdjustment{}, err
	}

	return n, nil
}

func stockPlanPoolAdjustmentToLedger(n ocf.StockPlanPoolAdjustment) (ledgerapi.Record, error) {
	const field = "stockPlanPoolAdjustment"
	rec, err := txToWire(field, n.Transaction)
	if err != nil {
		return nil, err
	}
	if err := requireText(field+".stock_plan_id", n.StockPlanID); err != nil {
		return nil, err
	}
	reserved, err := numericField(field+".shares_reserved", n.SharesReserved)
	if err != nil {
		return nil, err
	}
	board, err := optDate(field+".board_approval_date", n.BoardApprovalDate)
	if err != nil {
		return nil, err
	}

	rec["stock_plan_id"] = n.StockPlanID
	rec["shares_reserved"] = reserved
	rec["board_approval_date"] = board

	return rec, nil
}

func stockPlanPoolAdjustmentFromLedger(rec ledgerapi.Record) (ocf.StockPlanPoolAdjustment, error) {
	const field = "stockPlanPoolAdjustment"
	base, err := txFromWire(field, rec)
	if err != nil {
		return ocf.StockPlanPoolAdjustment{}, err
	}

	n := ocf.StockPlanPoolAdjustment{Transaction: base}
	if n.StockPlanID, err = readText(rec, field, "stock_plan_id"); err != nil {
		return ocf.StockPlanPoolAdjustment{}, err
	}
	if n.SharesReserved, err = readNumeric(rec, field, "shares_reserved"); err != nil {
		return ocf.StockPlanPoolAdjustment{}, err
	}
	if n.BoardApprovalDate, err = readOptDate(rec, field, "board_approval_date"); err != nil {
		return ocf.StockPlanPoolAdjustment{}, err
	}

	return n, nil
}

// --- Vesting transactions ---

func vestingStartToLedger(n ocf.VestingStart) (ledgerapi.Record, error) {
	const field = "vestingStart"
	rec, err := securityTxToWire(field, n.SecurityTransaction)
	if err != nil {
		return nil, err
	}
	if err := requireText(field+".vesting_condition_id", n.VestingConditionID); err != nil {
		return nil, err
	}
	rec["vesting_condition_id"] = n.VestingConditionID

	return rec, nil
}

func vestingStartFromLedger(rec ledgerapi.Record) (ocf.VestingStart, error) {
	const field = "vestingStart"
	base, err := securityTxFromWire(field, rec)
	if err != nil {
		return ocf.VestingStart{}, err
	}

	n := ocf.VestingStart{SecurityTransaction: base}
	if n.VestingConditionID, err = readText(rec, field, "vesting_condition_id"); err != nil {
		return ocf.VestingStart{}, err
	}

	return n, nil
}

func vestingEventToLedger(n ocf.VestingEvent) (ledgerapi.Record, error) {
	const field = "vestingEvent"
	rec, err := securityTxToWire(field, n.SecurityTransaction)
	if err != nil {
		return nil, err
	}
	if err := requireText(field+".vesting_condition_id", n.VestingConditionID); err != nil {
		return nil, err
	}
	rec["vesting_condition_id"] = n.VestingConditionID

	return rec, nil
}

func vestingEventFromLedger(rec ledgerapi.Record) (ocf.VestingEvent, error) {
	const field = "vestingEvent"
	base, err := securityTxFromWire(field, rec)
	if err != nil {
		return ocf.VestingEvent{}, err
	}

	n := ocf.VestingEvent{SecurityTransaction: base}
	if n.VestingConditionID, err = readText(rec, field, "vesting_condition_id"); err != nil {
		return ocf.VestingEvent{}, err
	}

	return n, nil
}

func vestingAccelerationToLedger(n ocf.VestingAcceleration) (ledgerapi.Record, error) {
	const field = "vestingAcceleration"
	rec, err := securityTxToWire(field, n.SecurityTransaction)
	if err != nil {
		return nil, err
	}
	quantity, err := numericField(field+".quantity", n.Quantity)
	if err != nil {
		return nil, err
	}
	if err := requireText(field+".reason_text", n.ReasonText); err != nil {
		return nil, err
	}

	rec["quantity"] = quantity
	rec["reason_text"] = n.ReasonText

	return rec, nil
}

func vestingAccelerationFromLedger(rec ledgerapi.Record) (ocf.VestingAcceleration, error) {
	const field = "vestingAcceleration"
	base, err := securityTxFromWire(field, rec)
	if err != nil {
		return ocf.VestingAcceleration{}, err
	}

	n := ocf.VestingAcceleration{SecurityTransaction: base}
	if n.Quantity, err = readNumeric(rec, field, "quantity"); err != nil {
		return ocf.VestingAcceleration{}, err
	}
	if n.ReasonText, err = readText(rec, field, "reason_text"); err != nil {
		return ocf.VestingAcceleration{}, err
	}

	return n, nil
}
