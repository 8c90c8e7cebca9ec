package ledgerapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-resty/resty/v2"
)

// ClientConfig configures the JSON Ledger API HTTP client.
type ClientConfig struct {
	// BaseURL is the JSON Ledger API endpoint, e.g. "http://localhost:7575".
	BaseURL string `validate:"required,url"`
	// UserID identifies the submitting user on the ledger.
	UserID string `validate:"required"`
	// AuthToken, when set, is sent as a bearer token on every request.
	AuthToken string
	// Timeout bounds each HTTP round trip. Zero means no client-side timeout;
	// cancellation is then entirely up to the caller's context.
	Timeout time.Duration
}

// Validate runs tag-based validation on the config.
func (c ClientConfig) Validate() error {
	return validator.New().Struct(c)
}

// HTTPClient talks to the Canton JSON Ledger API v2 over HTTP. It performs no
// retries and no pooling beyond what the underlying HTTP transport provides.
type HTTPClient struct {
	rest   *resty.Client
	userID string
}

var _ Client = &HTTPClient{}

// NewHTTPClient builds a client from the given config.
func NewHTTPClient(cfg ClientConfig) (*HTTPClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid ledger client config: %w", err)
	}

	rest := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("Content-Type", "application/json")
	if cfg.AuthToken != "" {
		rest.SetAuthToken(cfg.AuthToken)
	}
	if cfg.Timeout > 0 {
		rest.SetTimeout(cfg.Timeout)
	}

	return &HTTPClient{rest: rest, userID: cfg.UserID}, nil
}

type submitAndWaitBody struct {
	Commands   []Record `json:"commands"`
	WorkflowID string   `json:"workflowId,omitempty"`
	CommandID  string   `json:"commandId"`
	UserID     string   `json:"userId,omitempty"`
	ActAs      []string `json:"actAs"`
}

type transactionTreeResponse struct {
	TransactionTree *TransactionTree `json:"transactionTree"`
}

// SubmitAndWaitForTransactionTree implements Client.
func (c *HTTPClient) SubmitAndWaitForTransactionTree(ctx context.Context, req *SubmitRequest) (*TransactionTree, error) {
	userID := req.UserID
	if userID == "" {
		userID = c.userID
	}

	body := submitAndWaitBody{
		Commands: []Record{{
			"ExerciseCommand": req.Command,
		}},
		WorkflowID: req.WorkflowID,
		CommandID:  req.CommandID,
		UserID:     userID,
		ActAs:      req.ActAs,
	}

	var out transactionTreeResponse
	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&out).
		Post("/v2/commands/submit-and-wait-for-transaction-tree")
	if err != nil {
		return nil, fmt.Errorf("submit-and-wait request failed: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("submit-and-wait rejected: status %d: %s", resp.StatusCode(), resp.String())
	}
	if out.TransactionTree == nil {
		return nil, fmt.Errorf("submit-and-wait response carried no transaction tree")
	}

	return out.TransactionTree, nil
}

type eventsByContractIDResponse struct {
	Created *struct {
		CreatedEvent *CreatedEvent `json:"createdEvent"`
	} `json:"created"`
}

// GetEventsByContractID implements Client.
func (c *HTTPClient) GetEventsByContractID(ctx context.Context, contractID string) (*CreatedEvent, error) {
	var out eventsByContractIDResponse
	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(Record{"contractId": contractID}).
		SetResult(&out).
		Post("/v2/events/events-by-contract-id")
	if err != nil {
		return nil, fmt.Errorf("events-by-contract-id request failed: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("events-by-contract-id rejected: status %d: %s", resp.StatusCode(), resp.String())
	}
	if out.Created == nil || out.Created.CreatedEvent == nil {
		return nil, nil
	}

	return out.Created.CreatedEvent, nil
}
