package client

import (
	"context"
	"fmt"
	"strings"
)

// RecognitionClient groups the recognition API methods.
type RecognitionClient struct {
	client *Client
}

// Entity is one merged entity span.
type Entity struct {
	Entity string  `json:"entity"`
	Word   string  `json:"word"`
	Start  int     `json:"start"`
	End    int     `json:"end"`
	Score  float64 `json:"score"`
}

// Segment is one highlight segment. Label is empty for plain text between
// entities.
type Segment struct {
	Text  string `json:"text"`
	Label string `json:"label,omitempty"`
}

// RecognitionResult is the full response of one recognize call.
type RecognitionResult struct {
	Text     string    `json:"text"`
	Entities []Entity  `json:"entities"`
	Segments []Segment `json:"segments"`
	Scheme   string    `json:"scheme"`
}

type recognizeRequest struct {
	Text string `json:"text"`
}

// Recognize submits text for entity recognition and returns the merged
// spans and highlight segments.
func (rc *RecognitionClient) Recognize(ctx context.Context, text string) (*RecognitionResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("spotlight: text must not be empty")
	}

	var result RecognitionResult
	if err := rc.client.post(ctx, "/api/v1/recognize", recognizeRequest{Text: text}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
