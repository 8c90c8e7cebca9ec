package converters

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fairmint/ocp-canton-sdk/ledgerapi"
	"github.com/Fairmint/ocp-canton-sdk/ocf"
	"github.com/Fairmint/ocp-canton-sdk/types"
)

func strPtr(s string) *string { return &s }

func TestRegistry_CoversEveryEntityType(t *testing.T) {
	t.Parallel()

	for _, entityType := range types.AllEntityTypes {
		t.Run(string(entityType), func(t *testing.T) {
			t.Parallel()

			// A registered type rejects a wrong native value with a type
			// mismatch, never with a missing-converter error.
			_, err := ToLedger(entityType, 42)
			require.Error(t, err)
			assert.NotContains(t, err.Error(), "no converter registered")
			assert.Contains(t, err.Error(), "expected")
		})
	}
}

func TestToLedger_UnknownEntityType(t *testing.T) {
	t.Parallel()

	_, err := ToLedger(types.EntityType("spaceship"), struct{}{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no converter registered for entity type "spaceship"`)

	_, err = FromLedger(types.EntityType("spaceship"), ledgerapi.Record{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no converter registered for entity type "spaceship"`)
}

func TestRoundTrips(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		entityType types.EntityType
		native     any
	}{
		{
			name:       "stakeholder",
			entityType: types.EntityStakeholder,
			native: ocf.Stakeholder{
				ID: "sh-1",
				Name: ocf.Name{
					LegalName: "Jane Doe",
					FirstName: strPtr("Jane"),
				},
				StakeholderType:     ocf.StakeholderIndividual,
				CurrentRelationship: strPtr("EMPLOYEE"),
				Comments:            []string{"imported"},
			},
		},
		{
			name:       "stock legend template",
			entityType: types.EntityStockLegendTemplate,
			native: ocf.StockLegendTemplate{
				ID:   "slt-1",
				Name: "Restricted",
				Text: "THE SHARES REPRESENTED HEREBY...",
			},
		},
		{
			name:       "stock plan with plural class ids",
			entityType: types.EntityStockPlan,
			native: ocf.StockPlan{
				ID:                    "sp-1",
				PlanName:              "2024 Equity Incentive Plan",
				InitialSharesReserved: "1000000",
				BoardApprovalDate:     strPtr("2024-01-10"),
				StockClassIDs:         []string{"sc-common"},
			},
		},
		{
			name:       "stock issuance",
			entityType: types.EntityStockIssuance,
			native: ocf.StockIssuance{
				SecurityTransaction: ocf.SecurityTransaction{
					Transaction: ocf.Transaction{ID: "tx-1", Date: "2024-03-15"},
					SecurityID:  "sec-1",
				},
				StakeholderID: "sh-1",
				StockClassID:  "sc-common",
				Quantity:      "5000",
				SharePrice:    &ocf.Monetary{Amount: "1.25", Currency: "USD"},
			},
		},
		{
			name:       "equity compensation issuance with OTHER",
			entityType: types.EntityEquityCompensationIssuance,
			native: ocf.EquityCompensationIssuance{
				SecurityTransaction: ocf.SecurityTransaction{
					Transaction: ocf.Transaction{ID: "tx-2", Date: "2024-03-15"},
					SecurityID:  "sec-2",
				},
				StakeholderID:    "sh-1",
				StockPlanID:      strPtr("sp-1"),
				CompensationType: ocf.CompensationOther,
				Quantity:         "1000",
				ExpirationDate:   strPtr("2034-03-15"),
			},
		},
		{
			name:       "convertible issuance",
			entityType: types.EntityConvertibleIssuance,
			native: ocf.ConvertibleIssuance{
				SecurityTransaction: ocf.SecurityTransaction{
					Transaction: ocf.Transaction{ID: "tx-3", Date: "2024-02-01"},
					SecurityID:  "sec-3",
				},
				StakeholderID:    "sh-2",
				InvestmentAmount: ocf.Monetary{Amount: "250000", Currency: "USD"},
				ConvertibleType:  ocf.ConvertibleSafe,
				ConversionTriggers: []ocf.ConversionTrigger{
					{
						Type:             ocf.TriggerAutomaticOnCondition,
						TriggerID:        "trig-1",
						TriggerCondition: strPtr("qualified financing"),
						Mechanism: &ocf.ConversionMechanism{
							Type:                   ocf.MechanismSafeConversion,
							ConversionDiscount:     strPtr("0.2"),
							ConversionValuationCap: &ocf.Monetary{Amount: "10000000", Currency: "USD"},
						},
					},
				},
			},
		},
		{
			name:       "stock cancellation",
			entityType: types.EntityStockCancellation,
			native: ocf.StockCancellation{
				SecurityTransaction: ocf.SecurityTransaction{
					Transaction: ocf.Transaction{ID: "tx-4", Date: "2024-04-01"},
					SecurityID:  "sec-1",
				},
				Quantity:          "100",
				BalanceSecurityID: strPtr("sec-9"),
				ReasonText:        "buyback",
			},
		},
		{
			name:       "stock transfer",
			entityType: types.EntityStockTransfer,
			native: ocf.StockTransfer{
				SecurityTransaction: ocf.SecurityTransaction{
					Transaction: ocf.Transaction{ID: "tx-5", Date: "2024-05-20"},
					SecurityID:  "sec-1",
				},
				Quantity:             "250",
				ResultingSecurityIDs: []string{"sec-10"},
				ConsiderationText:    strPtr("secondary sale"),
			},
		},
		{
			name:       "warrant retraction",
			entityType: types.EntityWarrantRetraction,
			native: ocf.Retraction{
				SecurityTransaction: ocf.SecurityTransaction{
					Transaction: ocf.Transaction{ID: "tx-6", Date: "2024-06-01"},
					SecurityID:  "sec-4",
				},
				ReasonText: "entered in error",
			},
		},
		{
			name:       "stock class split",
			entityType: types.EntityStockClassSplit,
			native: ocf.StockClassSplit{
				Transaction:  ocf.Transaction{ID: "tx-7", Date: "2024-07-01"},
				StockClassID: "sc-common",
				SplitRatio:   ocf.Ratio{Numerator: "2", Denominator: "1"},
			},
		},
		{
			name:       "issuer authorized shares adjustment",
			entityType: types.EntityIssuerAuthorizedSharesAdjustment,
			native: ocf.IssuerAuthorizedSharesAdjustment{
				Transaction:         ocf.Transaction{ID: "tx-8", Date: "2024-08-01"},
				IssuerID:            "issuer-1",
				NewSharesAuthorized: "20000000",
				BoardApprovalDate:   strPtr("2024-07-25"),
			},
		},
		{
			name:       "vesting acceleration",
			entityType: types.EntityVestingAcceleration,
			native: ocf.VestingAcceleration{
				SecurityTransaction: ocf.SecurityTransaction{
					Transaction: ocf.Transaction{ID: "tx-9", Date: "2024-09-01"},
					SecurityID:  "sec-2",
				},
				Quantity:   "500",
				ReasonText: "change of control",
			},
		},
		{
			name:       "issuer",
			entityType: types.EntityIssuer,
			native: ocf.Issuer{
				ID:                      "issuer-1",
				LegalName:               "Acme, Inc.",
				DBA:                     strPtr("Acme"),
				FormationDate:           "2015-06-01",
				CountryOfFormation:      "US",
				Email:                   &ocf.Email{EmailType: "BUSINESS", EmailAddress: "ops@acme.com"},
				Address:                 &ocf.Address{AddressType: "LEGAL", City: strPtr("Wilmington"), Country: "US"},
				InitialSharesAuthorized: strPtr("10000000"),
			},
		},
		{
			name:       "stock class",
			entityType: types.EntityStockClass,
			native: ocf.StockClass{
				ID:                            "sc-pref-a",
				Name:                          "Series A Preferred",
				ClassType:                     ocf.StockClassPreferred,
				DefaultIDPrefix:               "PA-",
				InitialSharesAuthorized:       "4000000",
				BoardApprovalDate:             strPtr("2024-01-05"),
				Votes:                         "1",
				ParValue:                      &ocf.Monetary{Amount: "0.0001", Currency: "USD"},
				LiquidationPreferenceMultiple: strPtr("1"),
			},
		},
		{
			name:       "valuation",
			entityType: types.EntityValuation,
			native: ocf.Valuation{
				ID:            "val-1",
				StockClassID:  "sc-common",
				ProviderName:  strPtr("Carta"),
				EffectiveDate: "2024-02-01",
				PricePerShare: ocf.Monetary{Amount: "2.34", Currency: "USD"},
				ValuationType: "409A",
			},
		},
		{
			name:       "vesting terms with every trigger variant",
			entityType: types.EntityVestingTerms,
			native: ocf.VestingTerms{
				ID:             "vt-1",
				Name:           "4 year monthly, 1 year cliff",
				Description:    "Standard schedule",
				AllocationType: ocf.AllocationCumulativeRoundDown,
				VestingConditions: []ocf.VestingCondition{
					{
						ID:               "vc-start",
						Trigger:          ocf.VestingTrigger{Type: ocf.TriggerVestingStartDate},
						NextConditionIDs: []string{"vc-cliff"},
					},
					{
						ID:                 "vc-cliff",
						PortionNumerator:   strPtr("12"),
						PortionDenominator: strPtr("48"),
						Trigger: ocf.VestingTrigger{
							Type:                  ocf.TriggerVestingScheduleRelative,
							Period:                &ocf.VestingPeriod{Length: 12, Type: ocf.PeriodMonths, OccurrencesCount: 1},
							RelativeToConditionID: strPtr("vc-start"),
						},
						NextConditionIDs: []string{"vc-final"},
					},
					{
						ID:       "vc-final",
						Quantity: strPtr("1000"),
						Trigger: ocf.VestingTrigger{
							Type: ocf.TriggerVestingScheduleAbsolute,
							Date: strPtr("2028-01-01"),
						},
						NextConditionIDs: []string{},
					},
					{
						ID:               "vc-exit",
						Description:      strPtr("fully vests on acquisition"),
						Trigger:          ocf.VestingTrigger{Type: ocf.TriggerVestingEvent},
						NextConditionIDs: []string{},
					},
				},
			},
		},
		{
			name:       "financing",
			entityType: types.EntityFinancing,
			native: ocf.Financing{
				ID:         "fin-1",
				Name:       "Series A",
				ClosedDate: strPtr("2024-06-30"),
			},
		},
		{
			name:       "document",
			entityType: types.EntityDocument,
			native: ocf.Document{
				ID:   "doc-1",
				Path: strPtr("agreements/spa.pdf"),
				MD5:  "d41d8cd98f00b204e9800998ecf8427e",
			},
		},
		{
			name:       "warrant issuance with exercise triggers",
			entityType: types.EntityWarrantIssuance,
			native: ocf.WarrantIssuance{
				SecurityTransaction: ocf.SecurityTransaction{
					Transaction: ocf.Transaction{ID: "tx-10", Date: "2024-01-15"},
					SecurityID:  "sec-w1",
				},
				StakeholderID: "sh-2",
				Quantity:      strPtr("10000"),
				PurchasePrice: ocf.Monetary{Amount: "100", Currency: "USD"},
				ExercisePrice: &ocf.Monetary{Amount: "1.5", Currency: "USD"},
				ExerciseTriggers: []ocf.ConversionTrigger{
					{
						Type:        ocf.TriggerAutomaticOnDate,
						TriggerID:   "trig-date",
						Nickname:    strPtr("expiry sweep"),
						TriggerDate: strPtr("2030-01-15"),
						Mechanism: &ocf.ConversionMechanism{
							Type:  ocf.MechanismRatioConversion,
							Ratio: &ocf.Ratio{Numerator: "1", Denominator: "1"},
						},
					},
					{
						Type:      ocf.TriggerElectiveAtWill,
						TriggerID: "trig-at-will",
					},
				},
				WarrantExpirationDate: strPtr("2030-01-15"),
			},
		},
		{
			name:       "convertible acceptance",
			entityType: types.EntityConvertibleAcceptance,
			native: ocf.Acceptance{
				SecurityTransaction: ocf.SecurityTransaction{
					Transaction: ocf.Transaction{ID: "tx-11", Date: "2024-02-10"},
					SecurityID:  "sec-3",
				},
			},
		},
		{
			name:       "warrant cancellation without quantity",
			entityType: types.EntityWarrantCancellation,
			native: ocf.WarrantCancellation{
				SecurityTransaction: ocf.SecurityTransaction{
					Transaction: ocf.Transaction{ID: "tx-12", Date: "2024-03-01"},
					SecurityID:  "sec-w1",
				},
				ReasonText: "expired unexercised",
			},
		},
		{
			name:       "stock conversion",
			entityType: types.EntityStockConversion,
			native: ocf.StockConversion{
				SecurityTransaction: ocf.SecurityTransaction{
					Transaction: ocf.Transaction{ID: "tx-13", Date: "2024-04-10"},
					SecurityID:  "sec-1",
				},
				QuantityConverted:    "1000",
				ResultingSecurityIDs: []string{"sec-20"},
			},
		},
		{
			name:       "convertible conversion",
			entityType: types.EntityConvertibleConversion,
			native: ocf.ConvertibleConversion{
				SecurityTransaction: ocf.SecurityTransaction{
					Transaction: ocf.Transaction{ID: "tx-14", Date: "2024-04-12"},
					SecurityID:  "sec-3",
				},
				TriggerID:            "trig-1",
				AmountConverted:      &ocf.Monetary{Amount: "250000", Currency: "USD"},
				ResultingSecurityIDs: []string{"sec-21"},
			},
		},
		{
			name:       "warrant exercise",
			entityType: types.EntityWarrantExercise,
			native: ocf.WarrantExercise{
				SecurityTransaction: ocf.SecurityTransaction{
					Transaction: ocf.Transaction{ID: "tx-15", Date: "2024-05-01"},
					SecurityID:  "sec-w1",
				},
				TriggerID:            "trig-at-will",
				ResultingSecurityIDs: []string{"sec-22"},
			},
		},
		{
			name:       "equity compensation exercise",
			entityType: types.EntityEquityCompensationExercise,
			native: ocf.EquityCompensationExercise{
				SecurityTransaction: ocf.SecurityTransaction{
					Transaction: ocf.Transaction{ID: "tx-16", Date: "2024-05-15"},
					SecurityID:  "sec-2",
				},
				Quantity:             "400",
				ConsiderationText:    strPtr("cash exercise"),
				ResultingSecurityIDs: []string{"sec-23"},
			},
		},
		{
			name:       "equity compensation release",
			entityType: types.EntityEquityCompensationRelease,
			native: ocf.EquityCompensationRelease{
				SecurityTransaction: ocf.SecurityTransaction{
					Transaction: ocf.Transaction{ID: "tx-17", Date: "2024-06-01"},
					SecurityID:  "sec-2",
				},
				Quantity:             "250",
				ReleasePrice:         &ocf.Monetary{Amount: "3.1", Currency: "USD"},
				SettlementDate:       strPtr("2024-06-05"),
				ResultingSecurityIDs: []string{"sec-24"},
			},
		},
		{
			name:       "stock repurchase",
			entityType: types.EntityStockRepurchase,
			native: ocf.StockRepurchase{
				SecurityTransaction: ocf.SecurityTransaction{
					Transaction: ocf.Transaction{ID: "tx-18", Date: "2024-07-01"},
					SecurityID:  "sec-1",
				},
				Price:             ocf.Monetary{Amount: "2", Currency: "USD"},
				Quantity:          "500",
				ConsiderationText: strPtr("departing employee"),
			},
		},
		{
			name:       "stock reissuance",
			entityType: types.EntityStockReissuance,
			native: ocf.StockReissuance{
				SecurityTransaction: ocf.SecurityTransaction{
					Transaction: ocf.Transaction{ID: "tx-19", Date: "2024-07-10"},
					SecurityID:  "sec-1",
				},
				ResultingSecurityIDs: []string{"sec-25", "sec-26"},
				ReasonText:           strPtr("certificate correction"),
			},
		},
		{
			name:       "convertible transfer",
			entityType: types.EntityConvertibleTransfer,
			native: ocf.ConvertibleTransfer{
				SecurityTransaction: ocf.SecurityTransaction{
					Transaction: ocf.Transaction{ID: "tx-20", Date: "2024-08-01"},
					SecurityID:  "sec-3",
				},
				Amount:               &ocf.Monetary{Amount: "100000", Currency: "USD"},
				ResultingSecurityIDs: []string{"sec-27"},
				BalanceSecurityID:    strPtr("sec-28"),
			},
		},
		{
			name:       "plan security transfer alias",
			entityType: types.EntityPlanSecurityTransfer,
			native: ocf.EquityCompensationTransfer{
				SecurityTransaction: ocf.SecurityTransaction{
					Transaction: ocf.Transaction{ID: "tx-21", Date: "2024-08-15"},
					SecurityID:  "sec-2",
				},
				Quantity:             "300",
				ResultingSecurityIDs: []string{"sec-29"},
			},
		},
		{
			name:       "stock plan return to pool",
			entityType: types.EntityStockPlanReturnToPool,
			native: ocf.StockPlanReturnToPool{
				SecurityTransaction: ocf.SecurityTransaction{
					Transaction: ocf.Transaction{ID: "tx-22", Date: "2024-09-10"},
					SecurityID:  "sec-2",
				},
				StockPlanID: "sp-1",
				Quantity:    "600",
				ReasonText:  "grant cancelled",
			},
		},
		{
			name:       "stock class authorized shares adjustment",
			entityType: types.EntityStockClassAuthorizedSharesAdjustment,
			native: ocf.StockClassAuthorizedSharesAdjustment{
				Transaction:             ocf.Transaction{ID: "tx-23", Date: "2024-10-01"},
				StockClassID:            "sc-common",
				NewSharesAuthorized:     "15000000",
				StockholderApprovalDate: strPtr("2024-09-28"),
			},
		},
		{
			name:       "stock plan pool adjustment",
			entityType: types.EntityStockPlanPoolAdjustment,
			native: ocf.StockPlanPoolAdjustment{
				Transaction:       ocf.Transaction{ID: "tx-24", Date: "2024-10-15"},
				StockPlanID:       "sp-1",
				SharesReserved:    "1500000",
				BoardApprovalDate: strPtr("2024-10-10"),
			},
		},
		{
			name:       "vesting start",
			entityType: types.EntityVestingStart,
			native: ocf.VestingStart{
				SecurityTransaction: ocf.SecurityTransaction{
					Transaction: ocf.Transaction{ID: "tx-25", Date: "2024-11-01"},
					SecurityID:  "sec-2",
				},
				VestingConditionID: "vc-start",
			},
		},
		{
			name:       "vesting event",
			entityType: types.EntityVestingEvent,
			native: ocf.VestingEvent{
				SecurityTransaction: ocf.SecurityTransaction{
					Transaction: ocf.Transaction{ID: "tx-26", Date: "2024-11-15"},
					SecurityID:  "sec-2",
				},
				VestingConditionID: "vc-exit",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec, err := ToLedger(tt.entityType, tt.native)
			require.NoError(t, err)

			back, err := FromLedger(tt.entityType, rec)
			require.NoError(t, err)

			if diff := cmp.Diff(tt.native, back, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestToLedger_NormalizesNumericsAndDates(t *testing.T) {
	t.Parallel()

	rec, err := ToLedger(types.EntityStockIssuance, ocf.StockIssuance{
		SecurityTransaction: ocf.SecurityTransaction{
			Transaction: ocf.Transaction{ID: "tx-1", Date: "2024-03-15"},
			SecurityID:  "sec-1",
		},
		StakeholderID: "sh-1",
		StockClassID:  "sc-1",
		Quantity:      "+1.500",
	})
	require.NoError(t, err)

	assert.Equal(t, "1.5", rec["quantity"])
	assert.Equal(t, "2024-03-15T00:00:00Z", rec["date"])
	// Absent optionals are explicit nulls, never elided keys.
	assert.Contains(t, rec, "stock_plan_id")
	assert.Nil(t, rec["stock_plan_id"])
}

func TestToLedger_MissingSecurityID(t *testing.T) {
	t.Parallel()

	_, err := ToLedger(types.EntityStockIssuance, ocf.StockIssuance{
		SecurityTransaction: ocf.SecurityTransaction{
			Transaction: ocf.Transaction{ID: "tx-1", Date: "2024-03-15"},
		},
		StakeholderID: "sh-1",
		StockClassID:  "sc-1",
		Quantity:      "100",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stockIssuance.security_id")
}

func TestPlanSecurityIssuance_RejectsCompensationOther(t *testing.T) {
	t.Parallel()

	issuance := ocf.EquityCompensationIssuance{
		SecurityTransaction: ocf.SecurityTransaction{
			Transaction: ocf.Transaction{ID: "tx-1", Date: "2024-03-15"},
			SecurityID:  "sec-1",
		},
		StakeholderID:    "sh-1",
		CompensationType: ocf.CompensationOther,
		Quantity:         "100",
	}

	_, err := ToLedger(types.EntityPlanSecurityIssuance, issuance)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "planSecurityIssuance.compensation_type")

	// The general equity compensation family accepts the same value.
	_, err = ToLedger(types.EntityEquityCompensationIssuance, issuance)
	require.NoError(t, err)
}

func TestStockPlan_FoldsDeprecatedSingularClassID(t *testing.T) {
	t.Parallel()

	rec, err := ToLedger(types.EntityStockPlan, ocf.StockPlan{
		ID:                    "sp-1",
		PlanName:              "Legacy Plan",
		InitialSharesReserved: "500000",
		StockClassID:          strPtr("sc-common"),
	})
	require.NoError(t, err)

	assert.Equal(t, []any{"sc-common"}, rec["stock_class_ids"])
	assert.NotContains(t, rec, "stock_class_id")

	back, err := FromLedger(types.EntityStockPlan, rec)
	require.NoError(t, err)

	plan, ok := back.(ocf.StockPlan)
	require.True(t, ok)
	assert.Nil(t, plan.StockClassID)
	assert.Equal(t, []string{"sc-common"}, plan.StockClassIDs)
}

func TestStockConsolidation_NarrowsResultingSecurityIDs(t *testing.T) {
	t.Parallel()

	rec, err := ToLedger(types.EntityStockConsolidation, ocf.StockConsolidation{
		Transaction:          ocf.Transaction{ID: "tx-1", Date: "2024-03-15"},
		SecurityIDs:          []string{"sec-1", "sec-2"},
		ResultingSecurityIDs: []string{"sec-10", "sec-11"},
	})
	require.NoError(t, err)

	// The ledger shape is singular; only the first resulting id survives.
	assert.Equal(t, "sec-10", rec["resulting_security_id"])
	assert.NotContains(t, rec, "resulting_security_ids")

	back, err := FromLedger(types.EntityStockConsolidation, rec)
	require.NoError(t, err)

	consolidation, ok := back.(ocf.StockConsolidation)
	require.True(t, ok)
	assert.Equal(t, []string{"sec-10"}, consolidation.ResultingSecurityIDs)
}

func TestDateReadBack_TruncatesTimeOfDay(t *testing.T) {
	t.Parallel()

	rec, err := ToLedger(types.EntityStockAcceptance, ocf.Acceptance{
		SecurityTransaction: ocf.SecurityTransaction{
			Transaction: ocf.Transaction{ID: "tx-1", Date: "2024-03-15"},
			SecurityID:  "sec-1",
		},
	})
	require.NoError(t, err)

	rec["date"] = "2024-03-15T17:45:09Z"

	back, err := FromLedger(types.EntityStockAcceptance, rec)
	require.NoError(t, err)

	acceptance, ok := back.(ocf.Acceptance)
	require.True(t, ok)
	assert.Equal(t, "2024-03-15", acceptance.Date)
}

func TestFromLedger_UnknownEnumTag(t *testing.T) {
	t.Parallel()

	rec, err := ToLedger(types.EntityStakeholder, ocf.Stakeholder{
		ID:              "sh-1",
		Name:            ocf.Name{LegalName: "Acme Fund LP"},
		StakeholderType: ocf.StakeholderInstitution,
	})
	require.NoError(t, err)

	rec["stakeholder_type"] = "OcfStakeholderTypeAlien"

	_, err = FromLedger(types.EntityStakeholder, rec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stakeholder.stakeholder_type")
}
