package ocp

import (
	"fmt"
	"strings"

	"github.com/Fairmint/ocp-canton-sdk/ledgerapi"
	"github.com/Fairmint/ocp-canton-sdk/types"
)

// Summary returns a one-line description of the batch's contents: counts per
// operation kind and the distinct entity types touched, in first-seen order.
// It is attached to every error raised during Execute so operational logs can
// identify what was in flight without decoding wire payloads.
func (b *Batch) Summary() string {
	return summarize(b.creates, b.edits, b.deletes)
}

func summarize(creates, edits, deletes []ledgerapi.Variant) string {
	var names []string
	seen := make(map[string]bool)

	for _, list := range [][]ledgerapi.Variant{creates, edits, deletes} {
		for _, item := range list {
			name := types.EntitySuffixFromTag(item.Tag)
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}

	touched := "none"
	if len(names) > 0 {
		touched = strings.Join(names, ", ")
	}

	return fmt.Sprintf("[batch: %d creates, %d edits, %d deletes; types: %s]",
		len(creates), len(edits), len(deletes), touched)
}
