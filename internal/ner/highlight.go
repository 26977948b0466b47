package ner

import "github.com/turtacn/ner-spotlight/pkg/errors"

// FormatHighlights slices the original text into an ordered sequence of
// segments covering the whole input: for each span (ordered by start) the
// gap since the previous span is emitted unlabeled, followed by the span's
// text under its entity label, and any trailing text closes the sequence.
// Empty gaps are omitted. Labeled segment text is sliced from the original
// text by offset, so concatenating all segment texts in order reconstructs
// the input exactly.
//
// Fails with a span-overlap error when two spans' ranges collide (which also
// rejects unsorted input) and an out-of-range error when a span extends past
// the text.
func FormatHighlights(text string, spans []Span) ([]Segment, error) {
	segments := make([]Segment, 0, 2*len(spans)+1)
	cursor := 0

	for _, sp := range spans {
		if sp.Start < 0 || sp.End < sp.Start || sp.End > len(text) {
			return nil, errors.OutOfRange(sp.End, len(text))
		}
		if sp.Start < cursor {
			return nil, errors.Overlap(cursor, sp.Start)
		}
		if sp.Start > cursor {
			segments = append(segments, Segment{Text: text[cursor:sp.Start]})
		}
		segments = append(segments, Segment{Text: text[sp.Start:sp.End], Label: sp.Entity})
		cursor = sp.End
	}

	if cursor < len(text) {
		segments = append(segments, Segment{Text: text[cursor:]})
	}

	return segments, nil
}
