package ledgerapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		config  ClientConfig
		wantErr string
	}{
		{
			name:   "valid",
			config: ClientConfig{BaseURL: "http://localhost:7575", UserID: "ops"},
		},
		{
			name:    "missing base url",
			config:  ClientConfig{UserID: "ops"},
			wantErr: "BaseURL",
		},
		{
			name:    "malformed base url",
			config:  ClientConfig{BaseURL: "not-a-url", UserID: "ops"},
			wantErr: "BaseURL",
		},
		{
			name:    "missing user id",
			config:  ClientConfig{BaseURL: "http://localhost:7575"},
			wantErr: "UserID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.config.Validate()

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestHTTPClient_SubmitAndWaitForTransactionTree(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/commands/submit-and-wait-for-transaction-tree", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "cmd-1", body["commandId"])
		assert.Equal(t, "ops", body["userId"])

		commands, ok := body["commands"].([]any)
		require.True(t, ok)
		require.Len(t, commands, 1)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"transactionTree": {
				"updateId": "update-1",
				"eventsById": {
					"#0": {"exercised": {"choice": "BatchOcfOperations", "exerciseResult": {}}}
				}
			}
		}`))
	}))
	defer server.Close()

	client, err := NewHTTPClient(ClientConfig{BaseURL: server.URL, UserID: "ops"})
	require.NoError(t, err)

	tree, err := client.SubmitAndWaitForTransactionTree(context.Background(), &SubmitRequest{
		CommandID: "cmd-1",
		ActAs:     []string{"party::issuer"},
		Command: ExerciseCommand{
			TemplateID:     "pkg:Mod:Tpl",
			ContractID:     "c-1",
			Choice:         "BatchOcfOperations",
			ChoiceArgument: Record{"creates": []any{}},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "update-1", tree.UpdateID)
	require.Contains(t, tree.EventsByID, "#0")
	require.NotNil(t, tree.EventsByID["#0"].Exercised)
	assert.Equal(t, "BatchOcfOperations", tree.EventsByID["#0"].Exercised.Choice)
}

func TestHTTPClient_SubmitRejected(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"code": "CONTRACT_NOT_ACTIVE"}`))
	}))
	defer server.Close()

	client, err := NewHTTPClient(ClientConfig{BaseURL: server.URL, UserID: "ops"})
	require.NoError(t, err)

	_, err = client.SubmitAndWaitForTransactionTree(context.Background(), &SubmitRequest{
		CommandID: "cmd-1",
		ActAs:     []string{"party::issuer"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 409")
	assert.Contains(t, err.Error(), "CONTRACT_NOT_ACTIVE")
}

func TestHTTPClient_GetEventsByContractID(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v2/events/events-by-contract-id", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"created": {"createdEvent": {"contractId": "c-1", "templateId": "pkg:Mod:Tpl", "createArgument": {"id": "sh-1"}}}
			}`))
		}))
		defer server.Close()

		client, err := NewHTTPClient(ClientConfig{BaseURL: server.URL, UserID: "ops"})
		require.NoError(t, err)

		event, err := client.GetEventsByContractID(context.Background(), "c-1")
		require.NoError(t, err)
		require.NotNil(t, event)
		assert.Equal(t, "c-1", event.ContractID)
	})

	t.Run("not visible", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client, err := NewHTTPClient(ClientConfig{BaseURL: server.URL, UserID: "ops"})
		require.NoError(t, err)

		event, err := client.GetEventsByContractID(context.Background(), "c-gone")
		require.NoError(t, err)
		assert.Nil(t, event)
	})
}
