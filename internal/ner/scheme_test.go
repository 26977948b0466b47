package ner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLabelScheme(t *testing.T) {
	s, err := ParseLabelScheme("bio")
	require.NoError(t, err)
	assert.Equal(t, SchemeBIO, s)

	s, err = ParseLabelScheme("AGGREGATED")
	require.NoError(t, err)
	assert.Equal(t, SchemeAggregated, s)

	_, err = ParseLabelScheme("iob2")
	assert.Error(t, err)
}

func TestLabelScheme_String(t *testing.T) {
	assert.Equal(t, "bio", SchemeBIO.String())
	assert.Equal(t, "aggregated", SchemeAggregated.String())
	assert.Equal(t, "unknown", LabelScheme(42).String())
}

func TestCategory(t *testing.T) {
	cases := []struct {
		scheme LabelScheme
		label  string
		want   string
	}{
		{SchemeBIO, "B-PER", "PER"},
		{SchemeBIO, "I-LOC", "LOC"},
		{SchemeBIO, "MISC", "MISC"},
		{SchemeAggregated, "PER", "PER"},
		// Aggregated labels are taken verbatim even if they look prefixed.
		{SchemeAggregated, "B-PER", "B-PER"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.scheme.Category(tc.label),
			"scheme=%s label=%s", tc.scheme, tc.label)
	}
}

func TestContinues(t *testing.T) {
	cases := []struct {
		scheme       LabelScheme
		label        string
		prevCategory string
		want         bool
	}{
		{SchemeBIO, "I-PER", "PER", true},
		{SchemeBIO, "I-PER", "LOC", false},
		{SchemeBIO, "B-PER", "PER", false},
		{SchemeBIO, "PER", "PER", false},
		{SchemeBIO, "I-", "", true},
		{SchemeAggregated, "PER", "PER", false},
		{SchemeAggregated, "I-PER", "PER", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.scheme.Continues(tc.label, tc.prevCategory),
			"scheme=%s label=%s prev=%s", tc.scheme, tc.label, tc.prevCategory)
	}
}

func TestStripSubword(t *testing.T) {
	assert.Equal(t, "rew", stripSubword("##rew"))
	assert.Equal(t, "plain", stripSubword("plain"))
	assert.Equal(t, "ab", stripSubword("a##b"))
}
