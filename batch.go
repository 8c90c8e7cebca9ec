// Package ocp is a client-side SDK bridging the native OCF cap-table model and
// a Canton ledger's choice-invocation wire format. A Batch accumulates
// heterogeneous create/edit/delete operations, converts each eagerly, and
// assembles them into one atomic exercise command; the all-or-nothing
// guarantee is the ledger's, not this package's.
package ocp

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Fairmint/ocp-canton-sdk/converters"
	"github.com/Fairmint/ocp-canton-sdk/ledgerapi"
	"github.com/Fairmint/ocp-canton-sdk/types"
)

const (
	// DefaultTemplateID is the compiled-in cap-table template. Deployments
	// running several package versions override it per batch.
	DefaultTemplateID = "Fairmint.OpenCapTable.CapTable:CapTable"

	// BatchChoice is the contract choice every batch exercises.
	BatchChoice = "BatchOcfOperations"
)

// BatchOption configures a Batch at construction time.
type BatchOption func(*Batch)

// WithTemplateID overrides the compiled-in template id, typically with one
// fetched live from the ledger.
func WithTemplateID(templateID string) BatchOption {
	return func(b *Batch) { b.templateID = templateID }
}

// WithWorkflowID tags submissions from this batch with a workflow id.
func WithWorkflowID(workflowID string) BatchOption {
	return func(b *Batch) { b.workflowID = workflowID }
}

// WithUserID sets the submitting user on requests built by Execute.
func WithUserID(userID string) BatchOption {
	return func(b *Batch) { b.userID = userID }
}

// Batch accumulates operations against one cap-table contract. Conversion
// happens at call time, so a bad native record fails the Create/Edit call that
// supplied it rather than the eventual Build. A Batch is a single-owner
// builder and is not safe for concurrent use.
type Batch struct {
	contractID string
	actAs      []string
	templateID string
	workflowID string
	userID     string

	creates []ledgerapi.Variant
	edits   []ledgerapi.Variant
	deletes []ledgerapi.Variant

	createMeta []types.BatchItemMeta
	editMeta   []types.BatchItemMeta
	deleteMeta []types.BatchItemMeta
}

// NewBatch creates an empty batch targeting the cap-table contract with the
// given id, acting as the given parties.
func NewBatch(contractID string, actAs []string, opts ...BatchOption) *Batch {
	b := &Batch{
		contractID: contractID,
		actAs:      actAs,
		templateID: DefaultTemplateID,
	}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Create converts a native entity and appends it to the creates list. The
// issuer is a singleton on the ledger and cannot be created.
func (b *Batch) Create(entityType types.EntityType, native any) error {
	return b.add(types.OperationCreate, entityType, native)
}

// Edit converts a native entity and appends it to the edits list. Every
// entity type in the catalog supports edit.
func (b *Batch) Edit(entityType types.EntityType, native any) error {
	return b.add(types.OperationEdit, entityType, native)
}

// Delete appends a deletion by native id. No conversion is involved; the wire
// value is the id itself.
func (b *Batch) Delete(entityType types.EntityType, id string) error {
	tag, err := types.TagFor(entityType, types.OperationDelete)
	if err != nil {
		return types.NewValidationError(string(entityType), err.Error())
	}
	if id == "" {
		return types.NewValidationError(string(entityType)+".id", "is required")
	}

	b.deletes = append(b.deletes, ledgerapi.Variant{Tag: tag, Value: id})
	b.deleteMeta = append(b.deleteMeta, types.BatchItemMeta{EntityType: entityType, ID: id})

	return nil
}

// AddRaw appends a pre-converted wire payload under the given tag, bypassing
// the conversion dispatch. Intended for payloads already in ledger shape; the
// JSON-safety validation in Build still applies.
func (b *Batch) AddRaw(kind types.OperationKind, tag string, value any, meta types.BatchItemMeta) error {
	item := ledgerapi.Variant{Tag: tag, Value: value}

	switch kind {
	case types.OperationCreate:
		b.creates = append(b.creates, item)
		b.createMeta = append(b.createMeta, meta)
	case types.OperationEdit:
		b.edits = append(b.edits, item)
		b.editMeta = append(b.editMeta, meta)
	case types.OperationDelete:
		b.deletes = append(b.deletes, item)
		b.deleteMeta = append(b.deleteMeta, meta)
	default:
		return fmt.Errorf("unknown operation kind %q", kind)
	}

	return nil
}

func (b *Batch) add(kind types.OperationKind, entityType types.EntityType, native any) error {
	tag, err := types.TagFor(entityType, kind)
	if err != nil {
		return types.NewValidationError(string(entityType), err.Error())
	}

	rec, err := converters.ToLedger(entityType, native)
	if err != nil {
		return err
	}

	item := ledgerapi.Variant{Tag: tag, Value: rec}
	meta := metaFromRecord(entityType, rec)

	if kind == types.OperationCreate {
		b.creates = append(b.creates, item)
		b.createMeta = append(b.createMeta, meta)
	} else {
		b.edits = append(b.edits, item)
		b.editMeta = append(b.editMeta, meta)
	}

	return nil
}

// Size returns the total number of accumulated operations.
func (b *Batch) Size() int {
	return len(b.creates) + len(b.edits) + len(b.deletes)
}

// IsEmpty reports whether the batch has no operations.
func (b *Batch) IsEmpty() bool {
	return b.Size() == 0
}

// Clear resets the batch to empty so it can be reused. Nothing auto-clears; a
// submitted batch keeps its contents until the caller clears it.
func (b *Batch) Clear() {
	b.creates, b.edits, b.deletes = nil, nil, nil
	b.createMeta, b.editMeta, b.deleteMeta = nil, nil, nil
}

// BatchMetadata is the per-item diagnostic snapshot grouped by operation kind.
type BatchMetadata struct {
	Creates []types.BatchItemMeta
	Edits   []types.BatchItemMeta
	Deletes []types.BatchItemMeta
}

// Metadata returns a copy of the accumulated per-item metadata.
func (b *Batch) Metadata() BatchMetadata {
	return BatchMetadata{
		Creates: append([]types.BatchItemMeta(nil), b.createMeta...),
		Edits:   append([]types.BatchItemMeta(nil), b.editMeta...),
		Deletes: append([]types.BatchItemMeta(nil), b.deleteMeta...),
	}
}

// Build assembles the accumulated operations into one immutable exercise
// command. It fails on an empty batch and runs the JSON-safety validation
// over the full payload; no network I/O happens here.
func (b *Batch) Build() (*ledgerapi.ExerciseCommand, error) {
	if b.IsEmpty() {
		return nil, ErrEmptyBatch
	}

	if err := b.validateList("creates", b.creates, b.createMeta); err != nil {
		return nil, err
	}
	if err := b.validateList("edits", b.edits, b.editMeta); err != nil {
		return nil, err
	}
	if err := b.validateList("deletes", b.deletes, b.deleteMeta); err != nil {
		return nil, err
	}

	return &ledgerapi.ExerciseCommand{
		TemplateID: b.templateID,
		ContractID: b.contractID,
		Choice:     BatchChoice,
		ChoiceArgument: ledgerapi.Record{
			"creates": variantList(b.creates),
			"edits":   variantList(b.edits),
			"deletes": variantList(b.deletes),
		},
	}, nil
}

// validateList scans one operation list for undefined or non-serializable
// values, cross-referencing the per-item metadata so the error names the
// offending entity, not just the path.
func (b *Batch) validateList(name string, items []ledgerapi.Variant, meta []types.BatchItemMeta) error {
	for i, item := range items {
		if err := ledgerapi.ValidateValue(item, fmt.Sprintf("%s[%d]", name, i)); err != nil {
			if i < len(meta) {
				return fmt.Errorf("%w (entity type %s, id %q)", err, meta[i].EntityType, meta[i].ID)
			}

			return err
		}
	}

	return nil
}

// Execute builds the batch, submits it as one command, and extracts the
// structured result from the returned transaction tree. Remote failures are
// wrapped with the batch summary; there are no retries.
func (b *Batch) Execute(ctx context.Context, client ledgerapi.Client) (*BatchResult, error) {
	cmd, err := b.Build()
	if err != nil {
		return nil, err
	}

	req := &ledgerapi.SubmitRequest{
		WorkflowID: b.workflowID,
		CommandID:  uuid.NewString(),
		UserID:     b.userID,
		ActAs:      b.actAs,
		Command:    *cmd,
	}

	summary := b.Summary()
	metadata := b.Metadata()
	ledgerapi.LoggerFrom(ctx).Infof("submitting batch %s to contract %s", summary, b.contractID)

	tree, err := client.SubmitAndWaitForTransactionTree(ctx, req)
	if err != nil {
		return nil, NewContractError(summary, metadata, err)
	}

	result, err := extractResult(tree, BatchChoice, summary, metadata)
	if err != nil {
		ledgerapi.LoggerFrom(ctx).Warnf("no exercised event for %s in transaction %s", BatchChoice, tree.UpdateID)

		return nil, err
	}

	return result, nil
}

func metaFromRecord(entityType types.EntityType, rec ledgerapi.Record) types.BatchItemMeta {
	meta := types.BatchItemMeta{EntityType: entityType}
	if id, ok := rec["id"].(string); ok {
		meta.ID = id
	}
	if entityType.IssuanceLike() {
		if sid, ok := rec["security_id"].(string); ok {
			meta.SecurityID = sid
		}
	}

	return meta
}

func variantList(items []ledgerapi.Variant) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = item
	}

	return out
}
