package tibber

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const DefaultEndpoint = "https://api.tibber.com/v1-beta/gql"

type queryRequest struct {
	Query string `json:"query"`
}

type queryResponse[T any] struct {
	Data struct {
		Viewer T `json:"viewer"`
	} `json:"data"`
}

// StatusError is returned when the api answers with anything but 200 OK.
// The body is never decoded in that case.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status from tibber: %s", e.Status)
}

type Tibber struct {
	apiToken string
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

type Option func(*Tibber)

func WithEndpoint(endpoint string) Option {
	return func(t *Tibber) {
		if endpoint != "" {
			t.endpoint = endpoint
		}
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(t *Tibber) { t.client.Timeout = timeout }
}

func WithLogger(logger *slog.Logger) Option {
	return func(t *Tibber) { t.logger = logger }
}

func New(apiToken string, opts ...Option) *Tibber {
	t := &Tibber{
		apiToken: apiToken,
		endpoint: DefaultEndpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
		logger:   slog.Default().With(slog.String("module", "tibber")),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// doQuery posts a GraphQL document and returns the raw response body.
func (t *Tibber) doQuery(ctx context.Context, query string) ([]byte, error) {
	reqBody, err := json.Marshal(queryRequest{Query: query})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", t.apiToken))
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	t.logger.Debug("querying tibber", slog.String("endpoint", t.endpoint))
	res, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query tibber: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: res.StatusCode, Status: res.Status}
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read tibber response: %w", err)
	}
	t.logger.Debug("tibber responded", slog.Int("bytes", len(body)))

	return body, nil
}

// logParseFailure logs everything needed to figure out why a response didn't
// have the expected shape.
func (t *Tibber) logParseFailure(err error, body []byte) {
	attrs := []any{
		slog.Any("error", err),
		slog.String("response", string(body)),
	}
	if messages := graphqlErrors(body); len(messages) > 0 {
		attrs = append(attrs, slog.Any("graphqlErrors", messages))
	}
	t.logger.Error("failed to parse tibber response", attrs...)
}
