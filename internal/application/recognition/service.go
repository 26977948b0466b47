// Package recognition wires the recognition pipeline: one inference call,
// token merging, and highlight formatting, with logging and metrics around
// each stage.
package recognition

import (
	"context"
	"strings"
	"time"

	"github.com/turtacn/ner-spotlight/internal/inference"
	"github.com/turtacn/ner-spotlight/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/ner-spotlight/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/ner-spotlight/internal/ner"
	"github.com/turtacn/ner-spotlight/pkg/errors"
)

// MaxTextLength bounds the accepted input so a single request cannot push an
// arbitrarily large payload to the inference endpoint.
const MaxTextLength = 10000

// Result is the full output of one recognition run.
type Result struct {
	Text     string        `json:"text"`
	Spans    []ner.Span    `json:"entities"`
	Segments []ner.Segment `json:"segments"`
	Scheme   string        `json:"scheme"`
}

// Options control how the pipeline merges tokens.
type Options struct {
	// Scheme is the continuation rule applied when the endpoint response
	// carries raw B-/I- labels. Responses already aggregated upstream
	// always merge under the aggregated rule regardless of this value.
	Scheme ner.LabelScheme

	// SkipMalformed drops invalid token predictions instead of failing
	// the whole request.
	SkipMalformed bool
}

// Service runs the recognition pipeline.
type Service struct {
	recognizer inference.Recognizer
	opts       Options
	logger     logging.Logger
	metrics    *prometheus.AppMetrics
}

// NewService constructs a Service. Metrics may be nil when the metrics
// surface is disabled.
func NewService(recognizer inference.Recognizer, opts Options, logger logging.Logger, metrics *prometheus.AppMetrics) *Service {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Service{
		recognizer: recognizer,
		opts:       opts,
		logger:     logger.Named("recognition"),
		metrics:    metrics,
	}
}

// Recognize runs the full pipeline on text: validate input, call the
// inference endpoint, merge token predictions into entity spans, and format
// the highlight segments.
func (s *Service) Recognize(ctx context.Context, text string) (*Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.InvalidParam("text must not be empty")
	}
	if len(text) > MaxTextLength {
		return nil, errors.InvalidParam("text exceeds the maximum length")
	}

	start := time.Now()
	res, err := s.recognizer.Recognize(ctx, text)
	if err != nil {
		s.recordFailure(err)
		return nil, err
	}
	s.observeInference(len(res.Tokens), time.Since(start))

	scheme := res.Scheme
	if s.opts.Scheme == ner.SchemeAggregated {
		scheme = ner.SchemeAggregated
	}

	spans, err := ner.Merge(res.Tokens, ner.MergeOptions{
		Scheme:        scheme,
		SkipMalformed: s.opts.SkipMalformed,
	})
	if err != nil {
		s.recordFailure(err)
		return nil, err
	}

	segments, err := ner.FormatHighlights(text, spans)
	if err != nil {
		s.recordFailure(err)
		return nil, err
	}

	s.recordSuccess(spans)
	s.logger.Info("recognition completed",
		logging.Int("tokens", len(res.Tokens)),
		logging.Int("spans", len(spans)),
		logging.Int("segments", len(segments)),
		logging.String("scheme", scheme.String()),
		logging.Duration("elapsed", time.Since(start)),
	)

	return &Result{
		Text:     text,
		Spans:    spans,
		Segments: segments,
		Scheme:   scheme.String(),
	}, nil
}

func (s *Service) observeInference(tokens int, elapsed time.Duration) {
	if s.metrics == nil {
		return
	}
	s.metrics.InferenceRequestsTotal.WithLabelValues("default", "ok").Inc()
	s.metrics.InferenceDuration.WithLabelValues("default").Observe(elapsed.Seconds())
	s.metrics.InferenceTokensTotal.WithLabelValues("default").Add(float64(tokens))
}

func (s *Service) recordSuccess(spans []ner.Span) {
	if s.metrics == nil {
		return
	}
	s.metrics.RecognizeRequestsTotal.WithLabelValues("ok").Inc()
	for _, span := range spans {
		s.metrics.MergedSpansTotal.WithLabelValues(span.Entity).Inc()
	}
}

func (s *Service) recordFailure(err error) {
	code := errors.GetCode(err)
	s.logger.Error("recognition failed",
		logging.String("code", string(code)),
		logging.Err(err),
	)
	if s.metrics == nil {
		return
	}
	s.metrics.RecognizeRequestsTotal.WithLabelValues("error").Inc()
	s.metrics.ErrorsTotal.WithLabelValues(string(code)).Inc()
	if code == errors.CodeMalformedToken {
		s.metrics.MalformedTokensTotal.WithLabelValues("validation").Inc()
	}
}
