package ocp

import (
	"github.com/Fairmint/ocp-canton-sdk/ledgerapi"
)

// BatchResult is the outcome of a successfully applied batch: the ledger's
// structured exercise result plus the update id it assigned to the
// transaction.
type BatchResult struct {
	UpdateID       string
	ExerciseResult any
}

// extractResult walks a transaction tree for the exercised event of the batch
// choice and lifts its result. The update id comes from the top of the tree,
// never re-derived from events. A tree without a matching event is a distinct
// failure from a rejected submission.
func extractResult(tree *ledgerapi.TransactionTree, choice, summary string, metadata BatchMetadata) (*BatchResult, error) {
	for _, event := range tree.EventsByID {
		exercised := event.Exercised
		if exercised == nil || exercised.Choice != choice || exercised.ExerciseResult == nil {
			continue
		}

		return &BatchResult{
			UpdateID:       tree.UpdateID,
			ExerciseResult: exercised.ExerciseResult,
		}, nil
	}

	return nil, NewResultNotFoundError(tree.UpdateID, choice, summary, metadata)
}
