package ner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/ner-spotlight/pkg/errors"
)

func TestFormatHighlights_SingleEntity(t *testing.T) {
	text := "My name is Andrew"
	spans := []Span{{Entity: "PER", Word: "Andrew", Start: 11, End: 17, Score: 0.99}}

	segments, err := FormatHighlights(text, spans)
	require.NoError(t, err)

	assert.Equal(t, []Segment{
		{Text: "My name is "},
		{Text: "Andrew", Label: "PER"},
	}, segments)
}

func TestFormatHighlights_NoSpans(t *testing.T) {
	segments, err := FormatHighlights("nothing to see here", nil)
	require.NoError(t, err)
	assert.Equal(t, []Segment{{Text: "nothing to see here"}}, segments)
}

func TestFormatHighlights_EmptyTextEmptySpans(t *testing.T) {
	segments, err := FormatHighlights("", nil)
	require.NoError(t, err)
	assert.Empty(t, segments)
}

func TestFormatHighlights_AdjacentSpansNoGap(t *testing.T) {
	text := "HuggingFace"
	spans := []Span{
		{Entity: "ORG", Start: 0, End: 7, Score: 0.9},
		{Entity: "MISC", Start: 7, End: 11, Score: 0.8},
	}

	segments, err := FormatHighlights(text, spans)
	require.NoError(t, err)
	assert.Equal(t, []Segment{
		{Text: "Hugging", Label: "ORG"},
		{Text: "Face", Label: "MISC"},
	}, segments)
}

func TestFormatHighlights_TrailingGap(t *testing.T) {
	text := "Berlin is lovely"
	spans := []Span{{Entity: "LOC", Start: 0, End: 6, Score: 0.99}}

	segments, err := FormatHighlights(text, spans)
	require.NoError(t, err)
	assert.Equal(t, []Segment{
		{Text: "Berlin", Label: "LOC"},
		{Text: " is lovely"},
	}, segments)
}

func TestFormatHighlights_RoundTripLaw(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		spans []Span
	}{
		{"no spans", "just plain text", nil},
		{"leading gap", "see Paris and die", []Span{{Entity: "LOC", Start: 4, End: 9}}},
		{"full cover", "Paris", []Span{{Entity: "LOC", Start: 0, End: 5}}},
		{
			"multiple with gaps",
			"Alice met Bob in Oslo",
			[]Span{
				{Entity: "PER", Start: 0, End: 5},
				{Entity: "PER", Start: 10, End: 13},
				{Entity: "LOC", Start: 17, End: 21},
			},
		},
		{
			"unicode text byte offsets",
			"Zürich is in Europe",
			// "Zürich" spans 7 bytes: 'ü' encodes as two bytes.
			[]Span{{Entity: "LOC", Start: 0, End: 7}},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			segments, err := FormatHighlights(tc.text, tc.spans)
			require.NoError(t, err)

			var sb strings.Builder
			for _, seg := range segments {
				sb.WriteString(seg.Text)
			}
			assert.Equal(t, tc.text, sb.String())
		})
	}
}

func TestFormatHighlights_OverlapFails(t *testing.T) {
	text := "overlapping entities"
	spans := []Span{
		{Entity: "MISC", Start: 0, End: 11},
		{Entity: "MISC", Start: 8, End: 16},
	}

	_, err := FormatHighlights(text, spans)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeSpanOverlap))
}

func TestFormatHighlights_UnsortedRejected(t *testing.T) {
	text := "Alice met Bob"
	spans := []Span{
		{Entity: "PER", Start: 10, End: 13},
		{Entity: "PER", Start: 0, End: 5},
	}

	_, err := FormatHighlights(text, spans)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeSpanOverlap))
}

func TestFormatHighlights_OutOfRangeFails(t *testing.T) {
	cases := []struct {
		name string
		span Span
	}{
		{"end past text", Span{Entity: "PER", Start: 2, End: 99}},
		{"negative start", Span{Entity: "PER", Start: -3, End: 2}},
		{"end before start", Span{Entity: "PER", Start: 5, End: 2}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := FormatHighlights("short text", []Span{tc.span})
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.CodeSpanOutOfRange))
		})
	}
}
