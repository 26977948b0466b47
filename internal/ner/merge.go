package ner

import (
	"fmt"
	"math"

	"github.com/turtacn/ner-spotlight/pkg/errors"
)

// MergeOptions controls the token-merging pass.
type MergeOptions struct {
	// Scheme selects the continuation-detection rule.
	Scheme LabelScheme

	// SkipMalformed drops invalid tokens instead of failing the whole merge.
	// The default aborts on the first malformed token.
	SkipMalformed bool
}

// Merge coalesces an ordered sequence of token predictions into merged
// entity spans. Adjacent continuation tokens of the same category are folded
// into the preceding span: the token's text (sub-word markers stripped) is
// appended to the span's word, the span's end is extended to the token's
// end, and the span's score becomes the mean of its previous score and the
// token's score. Every other token starts a new span with its continuation
// marker stripped from the stored label.
//
// Adjacency is purely positional: two same-category entities separated by
// any other token are never merged. A continuation token with no preceding
// span starts its own span. An empty input returns an empty, non-nil slice.
func Merge(tokens []TokenPrediction, opts MergeOptions) ([]Span, error) {
	out := make([]Span, 0, len(tokens))

	for i, tok := range tokens {
		if err := validateToken(i, tok); err != nil {
			if opts.SkipMalformed {
				continue
			}
			return nil, err
		}

		if len(out) > 0 {
			last := &out[len(out)-1]
			if opts.Scheme.Continues(tok.Entity, last.Entity) {
				last.Word += stripSubword(tok.Word)
				last.End = tok.End
				last.Score = (last.Score + tok.Score) / 2
				continue
			}
		}

		out = append(out, Span{
			Entity: opts.Scheme.Category(tok.Entity),
			Word:   stripSubword(tok.Word),
			Start:  tok.Start,
			End:    tok.End,
			Score:  tok.Score,
		})
	}

	return out, nil
}

// validateToken rejects tokens that would corrupt the merge invariants.
// Field presence is enforced at the inference-client boundary; this guards
// the semantic constraints for tokens constructed in-process.
func validateToken(index int, tok TokenPrediction) error {
	if tok.Entity == "" {
		return errors.MalformedToken(index, "missing entity label")
	}
	if tok.Word == "" {
		return errors.MalformedToken(index, "missing word")
	}
	if tok.Start < 0 || tok.End < tok.Start {
		return errors.MalformedToken(index,
			fmt.Sprintf("invalid offsets [%d, %d)", tok.Start, tok.End))
	}
	if math.IsNaN(tok.Score) || tok.Score < 0 || tok.Score > 1 {
		return errors.MalformedToken(index,
			fmt.Sprintf("score %v outside [0, 1]", tok.Score))
	}
	return nil
}
