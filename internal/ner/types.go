// Package ner contains the core recognition types and the token-merging and
// highlight-formatting logic. Everything here is pure in-memory computation;
// talking to the inference endpoint lives in internal/inference.
package ner

// TokenPrediction is one recognized token from the raw model output, already
// validated at the inference-client boundary. Entity carries the raw label
// as returned by the model (possibly with a B-/I- continuation marker);
// Start/End are byte offsets into the original text; Score is the model's
// confidence in [0, 1].
type TokenPrediction struct {
	Entity string  `json:"entity"`
	Word   string  `json:"word"`
	Start  int     `json:"start"`
	End    int     `json:"end"`
	Score  float64 `json:"score"`
}

// Span is a merged entity span. Entity holds the bare category (continuation
// markers stripped), Word the concatenation of constituent token texts with
// sub-word markers stripped, End the last constituent's end offset, and
// Score the running average of constituent scores.
type Span struct {
	Entity string  `json:"entity"`
	Word   string  `json:"word"`
	Start  int     `json:"start"`
	End    int     `json:"end"`
	Score  float64 `json:"score"`
}

// Segment is one slice of the original text paired with an entity label.
// An empty Label marks the unlabeled gaps between entities, including
// leading and trailing text. Concatenating all segment texts in order
// reconstructs the original input exactly.
type Segment struct {
	Text  string `json:"text"`
	Label string `json:"label,omitempty"`
}
