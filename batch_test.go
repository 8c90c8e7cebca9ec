package ocp

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fairmint/ocp-canton-sdk/ledgerapi"
	"github.com/Fairmint/ocp-canton-sdk/ocf"
	"github.com/Fairmint/ocp-canton-sdk/types"
)

type fakeClient struct {
	tree      *ledgerapi.TransactionTree
	submitErr error

	gotReq *ledgerapi.SubmitRequest
}

func (f *fakeClient) SubmitAndWaitForTransactionTree(_ context.Context, req *ledgerapi.SubmitRequest) (*ledgerapi.TransactionTree, error) {
	f.gotReq = req
	if f.submitErr != nil {
		return nil, f.submitErr
	}

	return f.tree, nil
}

func (f *fakeClient) GetEventsByContractID(_ context.Context, _ string) (*ledgerapi.CreatedEvent, error) {
	return nil, nil
}

type capturingLogger struct {
	infos []string
	warns []string
}

func (l *capturingLogger) Infof(template string, args ...any) {
	l.infos = append(l.infos, fmt.Sprintf(template, args...))
}

func (l *capturingLogger) Warnf(template string, args ...any) {
	l.warns = append(l.warns, fmt.Sprintf(template, args...))
}

func testStakeholder(id string) ocf.Stakeholder {
	return ocf.Stakeholder{
		ID:              id,
		Name:            ocf.Name{LegalName: "Jane Doe"},
		StakeholderType: ocf.StakeholderIndividual,
	}
}

func TestBatch_BuildEmpty(t *testing.T) {
	t.Parallel()

	b := NewBatch("contract-1", []string{"party::issuer"})

	_, err := b.Build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyBatch)
}

func TestBatch_BuildListLengths(t *testing.T) {
	t.Parallel()

	b := NewBatch("contract-1", []string{"party::issuer"})

	require.NoError(t, b.Create(types.EntityStakeholder, testStakeholder("sh-1")))
	require.NoError(t, b.Create(types.EntityStakeholder, testStakeholder("sh-2")))
	require.NoError(t, b.Edit(types.EntityStakeholder, testStakeholder("sh-3")))
	require.NoError(t, b.Delete(types.EntityStakeholder, "sh-4"))

	assert.Equal(t, 4, b.Size())
	assert.False(t, b.IsEmpty())

	cmd, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, DefaultTemplateID, cmd.TemplateID)
	assert.Equal(t, "contract-1", cmd.ContractID)
	assert.Equal(t, BatchChoice, cmd.Choice)

	arg, ok := cmd.ChoiceArgument.(ledgerapi.Record)
	require.True(t, ok)
	assert.Len(t, arg["creates"], 2)
	assert.Len(t, arg["edits"], 1)
	assert.Len(t, arg["deletes"], 1)
}

func TestBatch_IssuerIsEditOnly(t *testing.T) {
	t.Parallel()

	b := NewBatch("contract-1", []string{"party::issuer"})

	err := b.Create(types.EntityIssuer, ocf.Issuer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not support create")

	err = b.Delete(types.EntityIssuer, "issuer-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not support delete")

	// Neither rejected call mutated the batch.
	assert.True(t, b.IsEmpty())
}

func TestBatch_ConversionFailsAtCallTime(t *testing.T) {
	t.Parallel()

	b := NewBatch("contract-1", []string{"party::issuer"})

	err := b.Create(types.EntityStockIssuance, ocf.StockIssuance{
		SecurityTransaction: ocf.SecurityTransaction{
			Transaction: ocf.Transaction{ID: "tx-1", Date: "2024-03-15"},
		},
		StakeholderID: "sh-1",
		StockClassID:  "sc-1",
		Quantity:      "100",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stockIssuance.security_id")
	assert.True(t, b.IsEmpty())
}

func TestBatch_BuildRejectsUndefinedPayload(t *testing.T) {
	t.Parallel()

	b := NewBatch("contract-1", []string{"party::issuer"})

	require.NoError(t, b.Create(types.EntityStakeholder, testStakeholder("sh-1")))
	require.NoError(t, b.AddRaw(types.OperationCreate, "OcfCreateStockPlan",
		ledgerapi.Record{"id": "sp-1", "stock_class_ids": ledgerapi.Undefined},
		types.BatchItemMeta{EntityType: types.EntityStockPlan, ID: "sp-1"},
	))

	_, err := b.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undefined value at")
	assert.Contains(t, err.Error(), "creates[1].value.stock_class_ids")
	assert.Contains(t, err.Error(), "stockPlan")
	assert.Contains(t, err.Error(), "sp-1")
}

func TestBatch_Metadata(t *testing.T) {
	t.Parallel()

	b := NewBatch("contract-1", []string{"party::issuer"})

	require.NoError(t, b.Create(types.EntityStockIssuance, ocf.StockIssuance{
		SecurityTransaction: ocf.SecurityTransaction{
			Transaction: ocf.Transaction{ID: "tx-1", Date: "2024-03-15"},
			SecurityID:  "sec-1",
		},
		StakeholderID: "sh-1",
		StockClassID:  "sc-1",
		Quantity:      "100",
	}))
	require.NoError(t, b.Delete(types.EntityValuation, "val-1"))

	meta := b.Metadata()
	require.Len(t, meta.Creates, 1)
	assert.Equal(t, types.EntityStockIssuance, meta.Creates[0].EntityType)
	assert.Equal(t, "tx-1", meta.Creates[0].ID)
	assert.Equal(t, "sec-1", meta.Creates[0].SecurityID)

	require.Len(t, meta.Deletes, 1)
	assert.Equal(t, types.EntityValuation, meta.Deletes[0].EntityType)
	assert.Equal(t, "val-1", meta.Deletes[0].ID)
}

func TestBatch_Clear(t *testing.T) {
	t.Parallel()

	b := NewBatch("contract-1", []string{"party::issuer"})
	require.NoError(t, b.Create(types.EntityStakeholder, testStakeholder("sh-1")))
	require.Equal(t, 1, b.Size())

	b.Clear()

	assert.True(t, b.IsEmpty())
	_, err := b.Build()
	assert.ErrorIs(t, err, ErrEmptyBatch)
}

func TestBatch_Summary(t *testing.T) {
	t.Parallel()

	b := NewBatch("contract-1", []string{"party::issuer"})
	require.NoError(t, b.Delete(types.EntityStakeholder, "sh-1"))

	assert.Equal(t, "[batch: 0 creates, 0 edits, 1 deletes; types: Stakeholder]", b.Summary())
}

func TestBatch_TemplateOverride(t *testing.T) {
	t.Parallel()

	b := NewBatch("contract-1", []string{"party::issuer"},
		WithTemplateID("abc123:Fairmint.OpenCapTable.CapTable:CapTable"))
	require.NoError(t, b.Create(types.EntityStakeholder, testStakeholder("sh-1")))

	cmd, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, "abc123:Fairmint.OpenCapTable.CapTable:CapTable", cmd.TemplateID)
}

func TestBatch_ExecuteSuccess(t *testing.T) {
	t.Parallel()

	client := &fakeClient{
		tree: &ledgerapi.TransactionTree{
			UpdateID: "update-42",
			EventsByID: map[string]ledgerapi.TreeEvent{
				"#0": {Exercised: &ledgerapi.ExercisedEvent{
					Choice:         BatchChoice,
					ExerciseResult: ledgerapi.Record{"stakeholders_created": []any{"sh-1"}},
				}},
				"#1": {Created: &ledgerapi.CreatedEvent{ContractID: "c-2"}},
			},
		},
	}

	b := NewBatch("contract-1", []string{"party::issuer"}, WithUserID("ops"))
	require.NoError(t, b.Create(types.EntityStakeholder, testStakeholder("sh-1")))

	res, err := b.Execute(context.Background(), client)
	require.NoError(t, err)

	assert.Equal(t, "update-42", res.UpdateID)
	assert.NotNil(t, res.ExerciseResult)

	require.NotNil(t, client.gotReq)
	assert.NotEmpty(t, client.gotReq.CommandID)
	assert.Equal(t, "ops", client.gotReq.UserID)
	assert.Equal(t, []string{"party::issuer"}, client.gotReq.ActAs)
	assert.Equal(t, BatchChoice, client.gotReq.Command.Choice)
}

func TestBatch_ExecuteResultNotFound(t *testing.T) {
	t.Parallel()

	client := &fakeClient{
		tree: &ledgerapi.TransactionTree{
			UpdateID: "update-7",
			EventsByID: map[string]ledgerapi.TreeEvent{
				"#0": {Created: &ledgerapi.CreatedEvent{ContractID: "c-1"}},
			},
		},
	}

	b := NewBatch("contract-1", []string{"party::issuer"})
	require.NoError(t, b.Delete(types.EntityStakeholder, "sh-1"))

	logger := &capturingLogger{}
	ctx := ledgerapi.WithLogger(context.Background(), logger)

	_, err := b.Execute(ctx, client)
	require.Error(t, err)

	require.Len(t, logger.warns, 1)
	assert.Contains(t, logger.warns[0], "update-7")

	var notFound *ResultNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Contains(t, err.Error(), "result not found")
	assert.Contains(t, err.Error(), "[batch: 0 creates, 0 edits, 1 deletes; types: Stakeholder]")

	// The error carries the per-item snapshots, so a caller that no longer
	// holds the batch can still name what failed.
	require.Len(t, notFound.Metadata.Deletes, 1)
	assert.Equal(t, types.EntityStakeholder, notFound.Metadata.Deletes[0].EntityType)
	assert.Equal(t, "sh-1", notFound.Metadata.Deletes[0].ID)
}

func TestBatch_ExecuteSubmitFailure(t *testing.T) {
	t.Parallel()

	cause := errors.New("CONTRACT_NOT_ACTIVE")
	client := &fakeClient{submitErr: cause}

	b := NewBatch("contract-1", []string{"party::issuer"})
	require.NoError(t, b.Create(types.EntityStakeholder, testStakeholder("sh-1")))

	_, err := b.Execute(context.Background(), client)
	require.Error(t, err)

	var contractErr *ContractError
	require.ErrorAs(t, err, &contractErr)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "[batch: 1 creates, 0 edits, 0 deletes; types: Stakeholder]")

	require.Len(t, contractErr.Metadata.Creates, 1)
	assert.Equal(t, types.EntityStakeholder, contractErr.Metadata.Creates[0].EntityType)
	assert.Equal(t, "sh-1", contractErr.Metadata.Creates[0].ID)
}
