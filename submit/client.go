package submit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/robinvdvleuten/invoicecheck/invoice"
)

// DefaultTimeout bounds one submission round trip, including connection
// setup and reading the response.
const DefaultTimeout = 10 * time.Second

// Client posts report rows as JSON to a fixed endpoint.
type Client struct {
	endpoint string
	client   *http.Client
}

// NewClient returns a Client posting to endpoint with DefaultTimeout.
func NewClient(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		client:   &http.Client{Timeout: DefaultTimeout},
	}
}

// Submit posts the row. Any 2xx response is SUCCESS, any other response
// FAILED with a status_<code> detail, and a transport error FAILED with
// the error text.
func (c *Client) Submit(ctx context.Context, row invoice.Record) Result {
	body, err := json.Marshal(row)
	if err != nil {
		return Result{Status: invoice.SubmissionFailed, Detail: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return Result{Status: invoice.SubmissionFailed, Detail: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return Result{Status: invoice.SubmissionFailed, Detail: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return Result{Status: invoice.SubmissionSuccess}
	}

	return Result{Status: invoice.SubmissionFailed, Detail: fmt.Sprintf("status_%d", resp.StatusCode)}
}
