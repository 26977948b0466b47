package ner

import (
	"strings"

	"github.com/turtacn/ner-spotlight/pkg/errors"
)

// LabelScheme selects the continuation-detection rule the merger applies.
// The two hosted-model variants differ here: token-level output tags each
// sub-word with B-/I- prefixed labels, while pipelines running a simple
// aggregation strategy return flat entity_group categories that are already
// coalesced upstream.
type LabelScheme int

const (
	// SchemeBIO expects B-<CAT> / I-<CAT> labels; an I- token continues the
	// preceding span of the same category.
	SchemeBIO LabelScheme = iota

	// SchemeAggregated expects bare category labels pre-grouped by the
	// endpoint; the merger never re-merges adjacent spans.
	SchemeAggregated
)

const (
	beginMarker  = "B-"
	insideMarker = "I-"

	// subwordMarker prefixes WordPiece continuation fragments ("##ly").
	subwordMarker = "##"
)

func (s LabelScheme) String() string {
	switch s {
	case SchemeBIO:
		return "bio"
	case SchemeAggregated:
		return "aggregated"
	default:
		return "unknown"
	}
}

// ParseLabelScheme converts a configuration string into a LabelScheme.
func ParseLabelScheme(s string) (LabelScheme, error) {
	switch strings.ToLower(s) {
	case "bio":
		return SchemeBIO, nil
	case "aggregated":
		return SchemeAggregated, nil
	default:
		return SchemeBIO, errors.InvalidParam("unknown label scheme " + s)
	}
}

// Category returns the bare entity category for a raw label, stripping any
// continuation marker. Under the aggregated scheme labels are already bare.
func (s LabelScheme) Category(label string) string {
	if s == SchemeBIO {
		if strings.HasPrefix(label, beginMarker) || strings.HasPrefix(label, insideMarker) {
			return label[len(beginMarker):]
		}
	}
	return label
}

// Continues reports whether a token labeled label extends an immediately
// preceding span of category prevCategory. Under SchemeBIO only an I- label
// of the same category continues; under SchemeAggregated the endpoint has
// already grouped tokens, so nothing is ever re-merged.
func (s LabelScheme) Continues(label, prevCategory string) bool {
	if s != SchemeBIO {
		return false
	}
	if !strings.HasPrefix(label, insideMarker) {
		return false
	}
	return label[len(insideMarker):] == prevCategory
}

// stripSubword removes the WordPiece continuation marker from a token text.
func stripSubword(word string) string {
	return strings.ReplaceAll(word, subwordMarker, "")
}
