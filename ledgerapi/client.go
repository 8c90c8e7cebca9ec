package ledgerapi

import (
	"context"
)

// ExerciseCommand describes one contract-choice invocation.
type ExerciseCommand struct {
	TemplateID     string `json:"templateId"`
	ContractID     string `json:"contractId"`
	Choice         string `json:"choice"`
	ChoiceArgument any    `json:"choiceArgument"`
}

// SubmitRequest is a single-command submission. The batch protocol only ever
// submits exactly one exercise command; atomicity of everything inside it is
// the ledger's guarantee.
type SubmitRequest struct {
	WorkflowID string          `json:"workflowId,omitempty"`
	CommandID  string          `json:"commandId"`
	UserID     string          `json:"userId,omitempty"`
	ActAs      []string        `json:"actAs"`
	Command    ExerciseCommand `json:"command"`
}

// CreatedEvent is a contract creation in a transaction tree, or the current
// state of a contract fetched by id.
type CreatedEvent struct {
	ContractID     string `json:"contractId"`
	TemplateID     string `json:"templateId"`
	CreateArgument any    `json:"createArgument"`
}

// ExercisedEvent is a choice exercise in a transaction tree. ExerciseResult
// carries the structured return value of the choice.
type ExercisedEvent struct {
	ContractID     string   `json:"contractId"`
	TemplateID     string   `json:"templateId"`
	Choice         string   `json:"choice"`
	Consuming      bool     `json:"consuming"`
	ExerciseResult any      `json:"exerciseResult"`
	ChildEventIDs  []string `json:"childEventIds,omitempty"`
}

// TreeEvent is one node of a transaction tree. Exactly one of the two fields
// is set.
type TreeEvent struct {
	Created   *CreatedEvent   `json:"created,omitempty"`
	Exercised *ExercisedEvent `json:"exercised,omitempty"`
}

// TransactionTree is the ledger's response to a submitted command: the set of
// resulting events keyed by an opaque event id, plus the ledger-assigned
// update id.
type TransactionTree struct {
	UpdateID     string               `json:"updateId"`
	EventsByID   map[string]TreeEvent `json:"eventsById"`
	RootEventIDs []string             `json:"rootEventIds,omitempty"`
}

// Client is the transport boundary. Implementations own connection handling,
// auth, and timeouts; callers of this SDK decide retry policy. The SDK itself
// never retries.
type Client interface {
	// SubmitAndWaitForTransactionTree submits one command and blocks until
	// the ledger responds with the resulting transaction tree.
	SubmitAndWaitForTransactionTree(ctx context.Context, req *SubmitRequest) (*TransactionTree, error)

	// GetEventsByContractID returns the created event of an active contract,
	// or nil if the contract is not visible.
	GetEventsByContractID(ctx context.Context, contractID string) (*CreatedEvent, error)
}
