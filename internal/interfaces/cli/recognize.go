package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/turtacn/ner-spotlight/internal/application/recognition"
	"github.com/turtacn/ner-spotlight/internal/inference"
	"github.com/turtacn/ner-spotlight/internal/ner"
	"github.com/turtacn/ner-spotlight/pkg/client"
)

// labelColors maps entity categories to terminal colors. Unknown categories
// fall back to cyan.
var labelColors = map[string]*color.Color{
	"PER":  color.New(color.FgYellow, color.Bold),
	"ORG":  color.New(color.FgGreen, color.Bold),
	"LOC":  color.New(color.FgBlue, color.Bold),
	"MISC": color.New(color.FgMagenta, color.Bold),
}

var fallbackColor = color.New(color.FgCyan, color.Bold)

// NewRecognizeCmd creates the recognize command. It runs the pipeline
// against a running spotlight server when --server is set, and calls the
// inference endpoint directly otherwise.
func NewRecognizeCmd(opts *RootOptions) *cobra.Command {
	var (
		serverAddr string
		output     string
		timeout    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "recognize [text]",
		Short: "Recognize named entities in text and highlight them",
		Example: `  spotlight recognize "My name is Andrew and I live in California"
  spotlight recognize --server http://localhost:8080 --output json "Alice works at Acme"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			var segments []ner.Segment
			var result interface{}

			if serverAddr != "" {
				res, err := recognizeViaServer(ctx, serverAddr, text)
				if err != nil {
					return err
				}
				for _, seg := range res.Segments {
					segments = append(segments, ner.Segment{Text: seg.Text, Label: seg.Label})
				}
				result = res
			} else {
				res, err := recognizeDirect(ctx, opts, text)
				if err != nil {
					return err
				}
				segments = res.Segments
				result = res
			}

			switch output {
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			case "text":
				printHighlighted(cmd, segments)
				return nil
			default:
				return fmt.Errorf("unknown output format %q; expected text|json", output)
			}
		},
	}

	cmd.Flags().StringVar(&serverAddr, "server", "", "address of a running spotlight server; calls the inference endpoint directly when empty")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text|json")
	cmd.Flags().DurationVar(&timeout, "timeout", 60*time.Second, "overall request timeout")

	return cmd
}

func recognizeViaServer(ctx context.Context, addr, text string) (*client.RecognitionResult, error) {
	sdk, err := client.NewClient(addr)
	if err != nil {
		return nil, err
	}
	return sdk.Recognition().Recognize(ctx, text)
}

func recognizeDirect(ctx context.Context, opts *RootOptions, text string) (*recognition.Result, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}
	infClient, err := inference.NewClient(inference.Config{
		Endpoint:            cfg.Inference.Endpoint,
		Token:               cfg.Inference.Token,
		Model:               cfg.Inference.Model,
		Timeout:             cfg.Inference.Timeout,
		AggregationStrategy: cfg.Inference.AggregationStrategy,
	}, logger)
	if err != nil {
		return nil, err
	}

	scheme, err := ner.ParseLabelScheme(cfg.Inference.LabelScheme)
	if err != nil {
		return nil, err
	}
	svc := recognition.NewService(infClient, recognition.Options{
		Scheme:        scheme,
		SkipMalformed: cfg.Inference.SkipMalformed,
	}, logger, nil)

	return svc.Recognize(ctx, text)
}

// printHighlighted renders the segments, coloring labeled ones and tagging
// them with their category.
func printHighlighted(cmd *cobra.Command, segments []ner.Segment) {
	out := cmd.OutOrStdout()
	for _, seg := range segments {
		if seg.Label == "" {
			fmt.Fprint(out, seg.Text)
			continue
		}
		c, ok := labelColors[seg.Label]
		if !ok {
			c = fallbackColor
		}
		fmt.Fprint(out, c.Sprintf("%s", seg.Text))
		fmt.Fprintf(out, "[%s]", seg.Label)
	}
	fmt.Fprintln(out)
}
