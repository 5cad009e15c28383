package broker

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
)

// DefaultEndpoint is the portal's batch query endpoint.
const DefaultEndpoint = "https://de.scalable.capital/broker/api/data"

// refererBase names the portfolio page on whose behalf the requests are
// made; the API rejects requests without it.
const refererBase = "https://de.scalable.capital/broker/transactions?portfolioId="

// featureFlags mirror what the web app sends; without them some transaction
// variants are absent from the responses.
const (
	featureHeader = "x-scacap-features-enabled"
	featureFlags  = "CRYPTO_MULTI_ETP,UNIQUE_SECURITY_ID"
)

// Client issues batch operations against the portal API using the captured
// session headers.
type Client struct {
	Endpoint   string
	Headers    http.Header
	HTTPClient *http.Client // defaults to http.DefaultClient
}

// NewClient returns a client bound to the captured session, addressing the
// live portal endpoint.
func NewClient(s *Session) *Client {
	return &Client{Endpoint: DefaultEndpoint, Headers: s.Headers}
}

// operation is one named query of a batch request.
type operation struct {
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
	Query         string         `json:"query"`
}

// post sends a single-operation batch and decodes the JSON response into a
// generic value for jsonpath digging.
func (c *Client) post(portfolioID string, op operation) (any, error) {
	body, err := json.Marshal([]operation{op})
	if err != nil {
		return nil, fmt.Errorf("cannot marshal %s request: %w", op.OperationName, err)
	}

	req, err := http.NewRequest(http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("cannot create http request %q: %w", c.Endpoint, err)
	}
	req.Header = c.Headers.Clone()
	if req.Header == nil {
		req.Header = make(http.Header)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Referer", refererBase+portfolioID)
	if req.Header.Get(featureHeader) == "" {
		req.Header.Set(featureHeader, featureFlags)
	}

	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cannot execute http request: %w", err)
	}
	defer resp.Body.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return nil, fmt.Errorf("cannot read http body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned %s", op.OperationName, resp.Status)
	}

	var jobj any
	if err := json.Unmarshal(buf.Bytes(), &jobj); err != nil {
		return nil, fmt.Errorf("cannot decode %s response: %w", op.OperationName, err)
	}
	return jobj, nil
}

// dig extracts the sub-object of a decoded response at path and re-decodes
// it into out. A missing or null sub-object is an error: the expected
// payload shape was not there.
func dig(jobj any, path string, out any) error {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return fmt.Errorf("unexpected response shape at %q: %w", path, err)
	}
	if jval == nil {
		return fmt.Errorf("no payload at %q", path)
	}
	data, err := json.Marshal(jval)
	if err != nil {
		return fmt.Errorf("cannot remarshal payload at %q: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("cannot decode payload at %q: %w", path, err)
	}
	return nil
}
