package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"

	"github.com/justsurfingit/jobtrack-dashboard/internal/dashboard"
)

// ErrInsightsDisabled is returned when no LLM is configured.
var ErrInsightsDisabled = errors.New("insights are disabled: GEMINI_API_KEY is not set")

// InsightService turns a dashboard summary into a short coaching note.
type InsightService struct {
	Client llms.Model
}

// NewInsightService builds a Gemini-backed service. An empty apiKey gives a
// disabled service rather than an error, so the rest of the API still runs.
func NewInsightService(ctx context.Context, apiKey, model string) (*InsightService, error) {
	if apiKey == "" {
		return &InsightService{}, nil
	}

	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &InsightService{Client: llm}, nil
}

func (s *InsightService) Enabled() bool {
	return s != nil && s.Client != nil
}

const insightPrompt = `
You are a supportive career coach reviewing a candidate's job-application funnel.

### DATA:
%s

### INSTRUCTIONS:
1. Write 3-4 sentences on how the search is going. Mention the success and rejection rates.
2. Suggest 2 concrete next steps based on where applications are piling up.
3. Plain text only. No markdown headings, no JSON.
`

// Summarize asks the model for a coaching note on summary.
func (s *InsightService) Summarize(ctx context.Context, summary dashboard.AggregateResult) (string, error) {
	if !s.Enabled() {
		return "", ErrInsightsDisabled
	}
	if summary.Total == 0 {
		return "No applications tracked yet. Add your first application to get feedback on your search.", nil
	}

	resp, err := llms.GenerateFromSinglePrompt(ctx, s.Client, fmt.Sprintf(insightPrompt, describeFunnel(summary)))
	if err != nil {
		return "", fmt.Errorf("generate insight: %w", err)
	}
	return strings.TrimSpace(resp), nil
}

// describeFunnel renders summary as the plain-text block embedded in the prompt.
func describeFunnel(summary dashboard.AggregateResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total applications: %d\n", summary.Total)
	fmt.Fprintf(&b, "Success rate: %.2f%%\n", summary.SuccessRate)
	fmt.Fprintf(&b, "Rejection rate: %.2f%%\n", summary.RejectionRate)
	for _, m := range summary.Milestones {
		fmt.Fprintf(&b, "%s: %d\n", m.Title, m.Count)
	}
	b.WriteString("By status:\n")
	for _, sc := range summary.StatusCounts {
		fmt.Fprintf(&b, "- %s: %d\n", sc.Label, sc.Count)
	}
	return b.String()
}
