package converters

import (
	"github.com/Fairmint/ocp-canton-sdk/ledgerapi"
	"github.com/Fairmint/ocp-canton-sdk/ocf"
	"github.com/Fairmint/ocp-canton-sdk/types"
)

// --- Acceptances ---

func acceptanceToLedger(field string, n ocf.Acceptance) (ledgerapi.Record, error) {
	return securityTxToWire(field, n.SecurityTransaction)
}

func acceptanceFromLedger(field string, rec ledgerapi.Record) (ocf.Acceptance, error) {
	base, err := securityTxFromWire(field, rec)
	if err != nil {
		return ocf.Acceptance{}, err
	}

	return ocf.Acceptance{SecurityTransaction: base}, nil
}

// --- Cancellations ---

func stockCancellationToLedger(n ocf.StockCancellation) (ledgerapi.Record, error) {
	const field = "stockCancellation"
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
	rec["balance_security_id"] = optText(n.BalanceSecurityID)
	rec["reason_text"] = n.ReasonText

	return rec, nil
}

func stockCancellationFromLedger(rec ledgerapi.Record) (ocf.StockCancellation, error) {
	const field = "stockCancellation"
	base, err := securityTxFromWire(field, rec)
	if err != nil {
		return ocf.StockCancellation{}, err
	}

	n := ocf.StockCancellation{SecurityTransaction: base}
	if n.Quantity, err = readNumeric(rec, field, "quantity"); err != nil {
		return ocf.StockCancellation{}, err
	}
	if n.BalanceSecurityID, err = readOptText(rec, field, "balance_security_id"); err != nil {
		return ocf.StockCancellation{}, err
	}
	if n.ReasonText, err = readText(rec, field, "reason_text"); err != nil {
		return ocf.StockCancellation{}, err
	}

	return n, nil
}

func warrantCancellationToLedger(n ocf.WarrantCancellation) (ledgerapi.Record, error) {
	const field = "warrantCancellation"
	rec, err := securityTxToWire(field, n.SecurityTransaction)
	if err != nil {
		return nil, err
	}
	quantity, err := optNumeric(field+".quantity", n.Quantity)
	if err != nil {
		return nil, err
	}
	if err := requireText(field+".reason_text", n.ReasonText); err != nil {
		return nil, err
	}

	rec["quantity"] = quantity
	rec["balance_security_id"] = optText(n.BalanceSecurityID)
	rec["reason_text"] = n.ReasonText

	return rec, nil
}

func warrantCancellationFromLedger(rec ledgerapi.Record) (ocf.WarrantCancellation, error) {
	const field = "warrantCancellation"
	base, err := securityTxFromWire(field, rec)
	if err != nil {
		return ocf.WarrantCancellation{}, err
	}

	n := ocf.WarrantCancellation{SecurityTransaction: base}
	if n.Quantity, err = readOptNumeric(rec, field, "quantity"); err != nil {
		return ocf.WarrantCancellation{}, err
	}
	if n.BalanceSecurityID, err = readOptText(rec, field, "balance_security_id"); err != nil {
		return ocf.WarrantCancellation{}, err
	}
	if n.ReasonText, err = readText(rec, field, "reason_text"); err != nil {
		return ocf.WarrantCancellation{}, err
	}

	return n, nil
}

func convertibleCancellationToLedger(n ocf.ConvertibleCancellation) (ledgerapi.Record, error) {
	const field = "convertibleCancellation"
	rec, err := securityTxToWire(field, n.SecurityTransaction)
	if err != nil {
		return nil, err
	}
	amount, err := optMonetaryToWire(field+".amount", n.Amount)
	if err != nil {
		return nil, err
	}
	if err := requireText(field+".reason_text", n.ReasonText); err != nil {
		return nil, err
	}

	rec["amount"] = amount
	rec["balance_security_id"] = optText(n.BalanceSecurityID)
	rec["reason_text"] = n.ReasonText

	return rec, nil
}

func convertibleCancellationFromLedger(rec ledgerapi.Record) (ocf.ConvertibleCancellation, error) {
	const field = "convertibleCancellation"
	base, err := securityTxFromWire(field, rec)
	if err != nil {
		return ocf.ConvertibleCancellation{}, err
	}

	n := ocf.ConvertibleCancellation{SecurityTransaction: base}
	if n.Amount, err = readOptMonetary(rec, field, "amount"); err != nil {
		return ocf.ConvertibleCancellation{}, err
	}
	if n.BalanceSecurityID, err = readOptText(rec, field, "balance_security_id"); err != nil {
		return ocf.ConvertibleCancellation{}, err
	}
	if n.ReasonText, err = readText(rec, field, "reason_text"); err != nil {
		return ocf.ConvertibleCancellation{}, err
	}

	return n, nil
}

func equityCompensationCancellationToLedger(field string, n ocf.EquityCompensationCancellation) (ledgerapi.Record, error) {
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
	rec["balance_security_id"] = optText(n.BalanceSecurityID)
	rec["reason_text"] = n.ReasonText

	return rec, nil
}

func equityCompensationCancellationFromLedger(field string, rec ledgerapi.Record) (ocf.EquityCompensationCancellation, error) {
	base, err := securityTxFromWire(field, rec)
	if err != nil {
		return ocf.EquityCompensationCancellation{}, err
	}

	n := ocf.EquityCompensationCancellation{SecurityTransaction: base}
	if n.Quantity, err = readNumeric(rec, field, "quantity"); err != nil {
		return ocf.EquityCompensationCancellation{}, err
	}
	if n.BalanceSecurityID, err = readOptText(rec, field, "balance_security_id"); err != nil {
		return ocf.EquityCompensationCancellation{}, err
	}
	if n.ReasonText, err = readText(rec, field, "reason_text"); err != nil {
		return ocf.EquityCompensationCancellation{}, err
	}

	return n, nil
}

// --- Conversions ---

func stockConversionToLedger(n ocf.StockConversion) (ledgerapi.Record, error) {
	const field = "stockConversion"
	rec, err := securityTxToWire(field, n.SecurityTransaction)
	if err != nil {
		return nil, err
	}
	quantity, err := numericField(field+".quantity_converted", n.QuantityConverted)
	if err != nil {
		return nil, err
	}

	rec["quantity_converted"] = quantity
	rec["resulting_security_ids"] = textList(n.ResultingSecurityIDs)
	rec["balance_security_id"] = optText(n.BalanceSecurityID)

	return rec, nil
}

func stockConversionFromLedger(rec ledgerapi.Record) (ocf.StockConversion, error) {
	const field = "stockConversion"
	base, err := securityTxFromWire(field, rec)
	if err != nil {
		return ocf.StockConversion{}, err
	}

	n := ocf.StockConversion{SecurityTransaction: base}
	if n.QuantityConverted, err = readNumeric(rec, field, "quantity_converted"); err != nil {
		return ocf.StockConversion{}, err
	}
	if n.ResultingSecurityIDs, err = readTextList(rec, field, "resulting_security_ids"); err != nil {
		return ocf.StockConversion{}, err
	}
	if n.BalanceSecurityID, err = readOptText(rec, field, "balance_security_id"); err != nil {
		return ocf.StockConversion{}, err
	}

	return n, nil
}

func convertibleConversionToLedger(n ocf.ConvertibleConversion) (ledgerapi.Record, error) {
	const field = "convertibleConversion"
	rec, err := securityTxToWire(field, n.SecurityTransaction)
	if err != nil {
		return nil, err
	}
	if err := requireText(field+".trigger_id", n.TriggerID); err != nil {
		return nil, err
	}
	amount, err := optMonetaryToWire(field+".amount_converted", n.AmountConverted)
	if err != nil {
		return nil, err
	}

	rec["trigger_id"] = n.TriggerID
	rec["amount_converted"] = amount
	rec["resulting_security_ids"] = textList(n.ResultingSecurityIDs)
	rec["balance_security_id"] = optText(n.BalanceSecurityID)

	return rec, nil
}

func convertibleConversionFromLedger(rec ledgerapi.Record) (ocf.ConvertibleConversion, error) {
	const field = "convertibleConversion"
	base, err := securityTxFromWire(field, rec)
	if err != nil {
		return ocf.ConvertibleConversion{}, err
	}

	n := ocf.ConvertibleConversion{SecurityTransaction: base}
	if n.TriggerID, err = readText(rec, field, "trigger_id"); err != nil {
		return ocf.ConvertibleConversion{}, err
	}
	if n.AmountConverted, err = readOptMonetary(rec, field, "amount_converted"); err != nil {
		return ocf.ConvertibleConversion{}, err
	}
	if n.ResultingSecurityIDs, err = readTextList(rec, field, "resulting_security_ids"); err != nil {
		return ocf.ConvertibleConversion{}, err
	}
	if n.BalanceSecurityID, err = readOptText(rec, field, "balance_security_id"); err != nil {
		return ocf.ConvertibleConversion{}, err
	}

	return n, nil
}

// --- Exercises ---

func warrantExerciseToLedger(n ocf.WarrantExercise) (ledgerapi.Record, error) {
	const field = "warrantExercise"
	rec, err := securityTxToWire(field, n.SecurityTransaction)
	if err != nil {
		return nil, err
	}
	if err := requireText(field+".trigger_id", n.TriggerID); err != nil {
		return nil, err
	}

	rec["trigger_id"] = n.TriggerID
	rec["resulting_security_ids"] = textList(n.ResultingSecurityIDs)

	return rec, nil
}

func warrantExerciseFromLedger(rec ledgerapi.Record) (ocf.WarrantExercise, error) {
	const field = "warrantExercise"
	base, err := securityTxFromWire(field, rec)
	if err != nil {
		return ocf.WarrantExercise{}, err
	}

	n := ocf.WarrantExercise{SecurityTransaction: base}
	if n.TriggerID, err = readText(rec, field, "trigger_id"); err != nil {
		return ocf.WarrantExercise{}, err
	}
	if n.ResultingSecurityIDs, err = readTextList(rec, field, "resulting_security_ids"); err != nil {
		return ocf.WarrantExercise{}, err
	}

	return n, nil
}

func equityCompensationExerciseToLedger(field string, n ocf.EquityCompensationExercise) (ledgerapi.Record, error) {
	rec, err := securityTxToWire(field, n.SecurityTransaction)
	if err != nil {
		return nil, err
	}
	quantity, err := numericField(field+".quantity", n.Quantity)
	if err != nil {
		return nil, err
	}

	rec["quantity"] = quantity
	rec["consideration_text"] = optText(n.ConsiderationText)
	rec["resulting_security_ids"] = textList(n.ResultingSecurityIDs)

	return rec, nil
}

func equityCompensationExerciseFromLedger(field string, rec ledgerapi.Record) (ocf.EquityCompensationExercise, error) {
	base, err := securityTxFromWire(field, rec)
	if err != nil {
		return ocf.EquityCompensationExercise{}, err
	}

	n := ocf.EquityCompensationExercise{SecurityTransaction: base}
	if n.Quantity, err = readNumeric(rec, field, "quantity"); err != nil {
		return ocf.EquityCompensationExercise{}, err
	}
	if n.ConsiderationText, err = readOptText(rec, field, "consideration_text"); err != nil {
		return ocf.EquityCompensationExercise{}, err
	}
	if n.ResultingSecurityIDs, err = readTextList(rec, field, "resulting_security_ids"); err != nil {
		return ocf.EquityCompensationExercise{}, err
	}

	return n, nil
}

// --- Releases ---

func equityCompensationReleaseToLedger(field string, n ocf.EquityCompensationRelease) (ledgerapi.Record, error) {
	rec, err := securityTxToWire(field, n.SecurityTransaction)
	if err != nil {
		return nil, err
	}
	quantity, err := numericField(field+".quantity", n.Quantity)
	if err != nil {
		return nil, err
	}
	releasePrice, err := optMonetaryToWire(field+".release_price", n.ReleasePrice)
	if err != nil {
		return nil, err
	}
	settlement, err := optDate(field+".settlement_date", n.SettlementDate)
	if err != nil {
		return nil, err
	}

	rec["quantity"] = quantity
	rec["release_price"] = releasePrice
	rec["settlement_date"] = settlement
	rec["resulting_security_ids"] = textList(n.ResultingSecurityIDs)

	return rec, nil
}

func equityCompensationReleaseFromLedger(field string, rec ledgerapi.Record) (ocf.EquityCompensationRelease, error) {
	base, err := securityTxFromWire(field, rec)
	if err != nil {
		return ocf.EquityCompensationRelease{}, err
	}

	n := ocf.EquityCompensationRelease{SecurityTransaction: base}
	if n.Quantity, err = readNumeric(rec, field, "quantity"); err != nil {
		return ocf.EquityCompensationRelease{}, err
	}
	if n.ReleasePrice, err = readOptMonetary(rec, field, "release_price"); err != nil {
		return ocf.EquityCompensationRelease{}, err
	}
	if n.SettlementDate, err = readOptDate(rec, field, "settlement_date"); err != nil {
		return ocf.EquityCompensationRelease{}, err
	}
	if n.ResultingSecurityIDs, err = readTextList(rec, field, "resulting_security_ids"); err != nil {
		return ocf.EquityCompensationRelease{}, err
	}

	return n, nil
}

// --- Repurchase / reissuance ---

func stockRepurchaseToLedger(n ocf.StockRepurchase) (ledgerapi.Record, error) {
	const field = "stockRepurchase"
	rec, err := securityTxToWire(field, n.SecurityTransaction)
	if err != nil {
		return nil, err
	}
	price, err := monetaryToWire(field+".price", n.Price)
	if err != nil {
		return nil, err
	}
	quantity, err := numericField(field+".quantity", n.Quantity)
	if err != nil {
		return nil, err
	}

	rec["price"] = price
	rec["quantity"] = quantity
	rec["consideration_text"] = optText(n.ConsiderationText)
	rec["balance_security_id"] = optText(n.BalanceSecurityID)

	return rec, nil
}

func stockRepurchaseFromLedger(rec ledgerapi.Record) (ocf.StockRepurchase, error) {
	const field = "stockRepurchase"
	base, err := securityTxFromWire(field, rec)
	if err != nil {
		return ocf.StockRepurchase{}, err
	}

	n := ocf.StockRepurchase{SecurityTransaction: base}
	if n.Price, err = readMonetary(rec, field, "price"); err != nil {
		return ocf.StockRepurchase{}, err
	}
	if n.Quantity, err = readNumeric(rec, field, "quantity"); err != nil {
		return ocf.StockRepurchase{}, err
	}
	if n.ConsiderationText, err = readOptText(rec, field, "consideration_text"); err != nil {
		return ocf.StockRepurchase{}, err
	}
	if n.BalanceSecurityID, err = readOptText(rec, field, "balance_security_id"); err != nil {
		return ocf.StockRepurchase{}, err
	}

	return n, nil
}

func stockReissuanceToLedger(n ocf.StockReissuance) (ledgerapi.Record, error) {
	const field = "stockReissuance"
	rec, err := securityTxToWire(field, n.SecurityTransaction)
	if err != nil {
		return nil, err
	}
	if len(n.ResultingSecurityIDs) == 0 {
		return nil, types.NewValidationError(field+".resulting_security_ids", "is required")
	}

	rec["resulting_security_ids"] = textList(n.ResultingSecurityIDs)
	rec["reason_text"] = optText(n.ReasonText)
	rec["split_transaction_id"] = optText(n.SplitTransactionID)

	return rec, nil
}

func stockReissuanceFromLedger(rec ledgerapi.Record) (ocf.StockReissuance, error) {
	const field = "stockReissuance"
	base, err := securityTxFromWire(field, rec)
	if err != nil {
		return ocf.StockReissuance{}, err
	}

	n := ocf.StockReissuance{SecurityTransaction: base}
	if n.ResultingSecurityIDs, err = readTextList(rec, field, "resulting_security_ids"); err != nil {
		return ocf.StockReissuance{}, err
	}
	if n.ReasonText, err = readOptText(rec, field, "reason_text"); err != nil {
		return ocf.StockReissuance{}, err
	}
	if n.SplitTransactionID, err = readOptText(rec, field, "split_transaction_id"); err != nil {
		return ocf.StockReissuance{}, err
	}

	return n, nil
}

// --- Retractions ---

func retractionToLedger(field string, n ocf.Retraction) (ledgerapi.Record, error) {
	rec, err := securityTxToWire(field, n.SecurityTransaction)
	if err != nil {
		return nil, err
	}
	if err := requireText(field+".reason_text", n.ReasonText); err != nil {
		return nil, err
	}
	rec["reason_text"] = n.ReasonText

	return rec, nil
}

func retractionFromLedger(field string, rec ledgerapi.Record) (ocf.Retraction, error) {
	base, err := securityTxFromWire(field, rec)
	if err != nil {
		return ocf.Retraction{}, err
	}

	n := ocf.Retraction{SecurityTransaction: base}
	if n.ReasonText, err = readText(rec, field, "reason_text"); err != nil {
		return ocf.Retraction{}, err
	}

	return n, nil
}

// --- Transfers ---

func stockTransferToLedger(n ocf.StockTransfer) (ledgerapi.Record, error) {
	const field = "stockTransfer"
	rec, err := securityTxToWire(field, n.SecurityTransaction)
	if err != nil {
		return nil, err
	}
	quantity, err := numericField(field+".quantity", n.Quantity)
	if err != nil {
		return nil, err
	}

	rec["quantity"] = quantity
	rec["resulting_security_ids"] = textList(n.ResultingSecurityIDs)
	rec["balance_security_id"] = optText(n.BalanceSecurityID)
	rec["consideration_text"] = optText(n.ConsiderationText)

	return rec, nil
}

func stockTransferFromLedger(rec ledgerapi.Record) (ocf.StockTransfer, error) {
	const field = "stockTransfer"
	base, err := securityTxFromWire(field, rec)
	if err != nil {
		return ocf.StockTransfer{}, err
	}

	n := ocf.StockTransfer{SecurityTransaction: base}
	if n.Quantity, err = readNumeric(rec, field, "quantity"); err != nil {
		return ocf.StockTransfer{}, err
	}
	if n.ResultingSecurityIDs, err = readTextList(rec, field, "resulting_security_ids"); err != nil {
		return ocf.StockTransfer{}, err
	}
	if n.BalanceSecurityID, err = readOptText(rec, field, "balance_security_id"); err != nil {
		return ocf.StockTransfer{}, err
	}
	if n.ConsiderationText, err = readOptText(rec, field, "consideration_text"); err != nil {
		return ocf.StockTransfer{}, err
	}

	return n, nil
}

func warrantTransferToLedger(n ocf.WarrantTransfer) (ledgerapi.Record, error) {
	const field = "warrantTransfer"
	rec, err := securityTxToWire(field, n.SecurityTransaction)
	if err != nil {
		return nil, err
	}
	quantity, err := optNumeric(field+".quantity", n.Quantity)
	if err != nil {
		return nil, err
	}

	rec["quantity"] = quantity
	rec["resulting_security_ids"] = textList(n.ResultingSecurityIDs)
	rec["balance_security_id"] = optText(n.BalanceSecurityID)
	rec["consideration_text"] = optText(n.ConsiderationText)

	return rec, nil
}

func warrantTransferFromLedger(rec ledgerapi.Record) (ocf.WarrantTransfer, error) {
	const field = "warrantTransfer"
	base, err := securityTxFromWire(field, rec)
	if err != nil {
		return ocf.WarrantTransfer{}, err
	}

	n := ocf.WarrantTransfer{SecurityTransaction: base}
	if n.Quantity, err = readOptNumeric(rec, field, "quantity"); err != nil {
		return ocf.WarrantTransfer{}, err
	}
	if n.ResultingSecurityIDs, err = readTextList(rec, field, "resulting_security_ids"); err != nil {
		return ocf.WarrantTransfer{}, err
	}
	if n.BalanceSecurityID, err = readOptText(rec, field, "balance_security_id"); err != nil {
		return ocf.WarrantTransfer{}, err
	}
	if n.ConsiderationText, err = readOptText(rec, field, "consideration_text"); err != nil {
		return ocf.WarrantTransfer{}, err
	}

	return n, nil
}

func convertibleTransferToLedger(n ocf.ConvertibleTransfer) (ledgerapi.Record, error) {
	const field = "convertibleTransfer"
	rec, err := securityTxToWire(field, n.SecurityTransaction)
	if err != nil {
		return nil, err
	}
	amount, err := optMonetaryToWire(field+".amount", n.Amount)
	if err != nil {
		return nil, err
	}

	rec["amount"] = amount
	rec["resulting_security_ids"] = textList(n.ResultingSecurityIDs)
	rec["balance_security_id"] = optText(n.BalanceSecurityID)
	rec["consideration_text"] = optText(n.ConsiderationText)

	return rec, nil
}

func convertibleTransferFromLedger(rec ledgerapi.Record) (ocf.ConvertibleTransfer, error) {
	const field = "convertibleTransfer"
	base, err := securityTxFromWire(field, rec)
	if err != nil {
		return ocf.ConvertibleTransfer{}, err
	}

	n := ocf.ConvertibleTransfer{SecurityTransaction: base}
	if n.Amount, err = readOptMonetary(rec, field, "amount"); err != nil {
		return ocf.ConvertibleTransfer{}, err
	}
	if n.ResultingSecurityIDs, err = readTextList(rec, field, "resulting_security_ids"); err != nil {
		return ocf.ConvertibleTransfer{}, err
	}
	if n.BalanceSecurityID, err = readOptText(rec, field, "balance_security_id"); err != nil {
		return ocf.ConvertibleTransfer{}, err
	}
	if n.ConsiderationText, err = readOptText(rec, field, "consideration_text"); err != nil {
		return ocf.ConvertibleTransfer{}, err
	}

	return n, nil
}

func equityCompensationTransferToLedger(field string, n ocf.EquityCompensationTransfer) (ledgerapi.Record, error) {
	rec, err := securityTxToWire(field, n.SecurityTransaction)
	if err != nil {
		return nil, err
	}
	quantity, err := numericField(field+".quantity", n.Quantity)
	if err != nil {
		return nil, err
	}

	rec["quantity"] = quantity
	rec["resulting_security_ids"] = textList(n.ResultingSecurityIDs)
	rec["balance_security_id"] = optText(n.BalanceSecurityID)
	rec["consideration_text"] = optText(n.ConsiderationText)

	return rec, nil
}

func equityCompensationTransferFromLedger(field string, rec ledgerapi.Record) (ocf.EquityCompensationTransfer, error) {
	base, err := securityTxFromWire(field, rec)
	if err != nil {
		return ocf.EquityCompensationTransfer{}, err
	}

	n := ocf.EquityCompensationTransfer{SecurityTransaction: base}
	if n.Quantity, err = readNumeric(rec, field, "quantity"); err != nil {
		return ocf.EquityCompensationTransfer{}, err
	}
	if n.ResultingSecurityIDs, err = readTextList(rec, field, "resulting_security_ids"); err != nil {
		return ocf.EquityCompensationTransfer{}, err
	}
	if n.BalanceSecurityID, err = readOptText(rec, field, "balance_security_id"); err != nil {
		return ocf.EquityCompensationTransfer{}, err
	}
	if n.ConsiderationText, err = readOptText(rec, field, "consideration_text"); err != nil {
		return ocf.EquityCompensationTransfer{}, err
	}

	return n, nil
}
