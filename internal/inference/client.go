// Package inference implements the client for the hosted NER inference
// endpoint. It owns the single outbound HTTP call and the validation
// boundary that turns loosely-shaped JSON token records into typed
// predictions, so no dynamic maps escape into the core.
package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/turtacn/ner-spotlight/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/ner-spotlight/internal/ner"
	"github.com/turtacn/ner-spotlight/pkg/errors"
)

// Recognizer is the boundary the application layer consumes. The production
// implementation is Client; tests substitute fakes.
type Recognizer interface {
	Recognize(ctx context.Context, text string) (*Result, error)
}

// Result carries the validated token predictions of one inference call
// together with the label scheme the response shape indicated: responses
// using entity_group were aggregated upstream, responses using entity carry
// B-/I- markers.
type Result struct {
	Tokens []ner.TokenPrediction
	Scheme ner.LabelScheme
}

// Config holds the endpoint parameters.
type Config struct {
	Endpoint string
	Token    string
	Model    string
	Timeout  time.Duration

	// AggregationStrategy, when non-empty, is forwarded in the request
	// parameters so the endpoint groups sub-word tokens itself.
	AggregationStrategy string
}

// Client issues one synchronous POST per call. No retry, no streaming.
type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     logging.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient substitutes the underlying HTTP client; used by tests and
// callers that need custom transports.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient validates the configuration and constructs a Client. A missing
// endpoint or credential is a configuration error; callers treat it as
// fatal at startup.
func NewClient(cfg Config, logger logging.Logger, opts ...Option) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, errors.InvalidConfig("inference endpoint is required")
	}
	if cfg.Token == "" {
		return nil, errors.InvalidConfig("inference bearer token is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	c := &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger.Named("inference"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// inferenceRequest is the JSON body sent to the endpoint.
type inferenceRequest struct {
	Inputs     string                 `json:"inputs"`
	Parameters map[string]interface{} `json:"parameters,omitempty"`
}

// rawToken mirrors one record of the endpoint response. Pointer fields make
// missing keys detectable, which validate converts into typed
// malformed-token errors at this single point.
type rawToken struct {
	Entity      *string  `json:"entity"`
	EntityGroup *string  `json:"entity_group"`
	Word        *string  `json:"word"`
	Start       *int     `json:"start"`
	End         *int     `json:"end"`
	Score       *float64 `json:"score"`
}

func (r rawToken) validate(index int) (ner.TokenPrediction, bool, error) {
	aggregated := false
	var label string
	switch {
	case r.EntityGroup != nil:
		label = *r.EntityGroup
		aggregated = true
	case r.Entity != nil:
		label = *r.Entity
	default:
		return ner.TokenPrediction{}, false, errors.MalformedToken(index, "missing entity field")
	}
	if r.Word == nil {
		return ner.TokenPrediction{}, false, errors.MalformedToken(index, "missing word field")
	}
	if r.Start == nil {
		return ner.TokenPrediction{}, false, errors.MalformedToken(index, "missing start field")
	}
	if r.End == nil {
		return ner.TokenPrediction{}, false, errors.MalformedToken(index, "missing end field")
	}
	if r.Score == nil {
		return ner.TokenPrediction{}, false, errors.MalformedToken(index, "missing score field")
	}

	return ner.TokenPrediction{
		Entity: label,
		Word:   *r.Word,
		Start:  *r.Start,
		End:    *r.End,
		Score:  *r.Score,
	}, aggregated, nil
}

// Recognize sends text to the endpoint and returns the validated token
// predictions sorted into non-decreasing start order. Network and HTTP
// failures surface as transport errors, undecodable responses as decode
// errors, and invalid token records as malformed-token errors naming the
// record index.
func (c *Client) Recognize(ctx context.Context, text string) (*Result, error) {
	reqBody := inferenceRequest{Inputs: text}
	if c.cfg.AggregationStrategy != "" {
		reqBody.Parameters = map[string]interface{}{
			"aggregation_strategy": c.cfg.AggregationStrategy,
		}
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to marshal inference request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to build inference request")
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.Wrap(ctx.Err(), errors.CodeTimeout, "inference request cancelled")
		}
		return nil, errors.Transport("inference endpoint unreachable").WithCause(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Transport("failed to read inference response").WithCause(err)
	}

	c.logger.Debug("inference call completed",
		logging.String("model", c.cfg.Model),
		logging.Int("status", resp.StatusCode),
		logging.Duration("elapsed", time.Since(start)),
		logging.Int("body_bytes", len(body)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Transport("inference endpoint returned an error status").
			WithDetail(fmt.Sprintf("status=%d body=%s", resp.StatusCode, truncate(body, 256)))
	}

	var raw []rawToken
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, errors.Decode("inference response is not a token prediction list").
			WithCause(err).
			WithDetail(truncate(body, 256))
	}

	tokens := make([]ner.TokenPrediction, 0, len(raw))
	scheme := ner.SchemeBIO
	for i, r := range raw {
		tok, aggregated, err := r.validate(i)
		if err != nil {
			return nil, err
		}
		if aggregated {
			scheme = ner.SchemeAggregated
		}
		tokens = append(tokens, tok)
	}

	sort.SliceStable(tokens, func(i, j int) bool {
		return tokens[i].Start < tokens[j].Start
	})

	return &Result{Tokens: tokens, Scheme: scheme}, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
