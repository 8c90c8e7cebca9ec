package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		entityType EntityType
		kind       OperationKind
		want       string
		wantErr    string
	}{
		{name: "stakeholder create", entityType: EntityStakeholder, kind: OperationCreate, want: "OcfCreateStakeholder"},
		{name: "stakeholder edit", entityType: EntityStakeholder, kind: OperationEdit, want: "OcfEditStakeholder"},
		{name: "stakeholder delete", entityType: EntityStakeholder, kind: OperationDelete, want: "OcfDeleteStakeholder"},
		{name: "issuer edit", entityType: EntityIssuer, kind: OperationEdit, want: "OcfEditIssuer"},
		{name: "issuer create rejected", entityType: EntityIssuer, kind: OperationCreate, wantErr: `"issuer" does not support create`},
		{name: "issuer delete rejected", entityType: EntityIssuer, kind: OperationDelete, wantErr: `"issuer" does not support delete`},
		{name: "unknown type", entityType: EntityType("starfleet"), kind: OperationCreate, wantErr: `unknown entity type "starfleet"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := TagFor(tt.entityType, tt.kind)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTagTable_IsTotal(t *testing.T) {
	t.Parallel()

	for _, entityType := range AllEntityTypes {
		tags, ok := TagsFor(entityType)
		require.True(t, ok, "no tag row for %s", entityType)
		assert.True(t, entityType.Known())

		// Every type supports edit; only the issuer withholds create and
		// delete.
		assert.NotEmpty(t, tags.Edit, "%s has no edit tag", entityType)
		if entityType == EntityIssuer {
			assert.Empty(t, tags.Create)
			assert.Empty(t, tags.Delete)
		} else {
			assert.NotEmpty(t, tags.Create, "%s has no create tag", entityType)
			assert.NotEmpty(t, tags.Delete, "%s has no delete tag", entityType)
		}
	}
}

func TestEntitySuffixFromTag(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Stakeholder", EntitySuffixFromTag("OcfCreateStakeholder"))
	assert.Equal(t, "StockPlan", EntitySuffixFromTag("OcfEditStockPlan"))
	assert.Equal(t, "Valuation", EntitySuffixFromTag("OcfDeleteValuation"))
	assert.Equal(t, "SomethingElse", EntitySuffixFromTag("SomethingElse"))
}

func TestIssuanceLike(t *testing.T) {
	t.Parallel()

	issuances := map[EntityType]bool{
		EntityStockIssuance:              true,
		EntityWarrantIssuance:            true,
		EntityConvertibleIssuance:        true,
		EntityEquityCompensationIssuance: true,
		EntityPlanSecurityIssuance:       true,
	}

	for _, entityType := range AllEntityTypes {
		assert.Equal(t, issuances[entityType], entityType.IssuanceLike(), "%s", entityType)
	}
}
