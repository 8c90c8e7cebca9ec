package ocp

import (
	"errors"
	"fmt"
)

// ErrEmptyBatch is returned when Build or Execute is called on a batch with no
// operations.
var ErrEmptyBatch = errors.New("batch contains no operations")

// ContractError wraps a ledger submission failure with a summary of the batch
// that was in flight, so logs show what was being attempted without dumping
// payloads. Metadata carries the per-item snapshots so the failure can be
// correlated to specific entities after the batch itself is gone.
type ContractError struct {
	Summary  string
	Metadata BatchMetadata
	Err      error
}

// NewContractError creates a new ContractError.
func NewContractError(summary string, metadata BatchMetadata, err error) *ContractError {
	return &ContractError{Summary: summary, Metadata: metadata, Err: err}
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("batch submission failed %s: %v", e.Summary, e.Err)
}

func (e *ContractError) Unwrap() error {
	return e.Err
}

// ResultNotFoundError is returned when a transaction tree contains no
// exercised event for the batch choice, so no exercise result can be lifted.
type ResultNotFoundError struct {
	UpdateID string
	Choice   string
	Summary  string
	Metadata BatchMetadata
}

// NewResultNotFoundError creates a new ResultNotFoundError.
func NewResultNotFoundError(updateID, choice, summary string, metadata BatchMetadata) *ResultNotFoundError {
	return &ResultNotFoundError{UpdateID: updateID, Choice: choice, Summary: summary, Metadata: metadata}
}

func (e *ResultNotFoundError) Error() string {
	return fmt.Sprintf("result not found: no exercised event for choice %s in transaction %s %s", e.Choice, e.UpdateID, e.Summary)
}
