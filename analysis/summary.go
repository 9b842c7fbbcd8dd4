package analysis

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/complyboard/complyboard/model"
)

// LLMClient defines the interface for LLM operations
// This allows for easy mocking and testing
type LLMClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// SummaryConfig holds configuration for review summary generation
type SummaryConfig struct {
	Model     string // LLM model to use (default: gpt-4o-mini)
	MaxTokens int    // Max tokens for response (default: 250)
}

// DefaultSummaryConfig returns default configuration
func DefaultSummaryConfig() SummaryConfig {
	return SummaryConfig{
		Model:     "gpt-4o-mini",
		MaxTokens: 250,
	}
}

const reviewSummarySystemPrompt = `You are a contract compliance analyst.
Generate a concise executive summary (2-3 sentences) of a completed contract compliance review.

Requirements:
- Lead with the overall outcome and risk level
- Name the specific compliance terms that are missing or only partially met
- Mention the matching rates only when they change the conclusion
- Maximum 400 characters
- Do not restate the contract name or vendor, the reader already sees them

Example good summary: "Review passed with low residual risk. Breach notification timing and subprocessor disclosure remain partially met; both trace to Section 7 gaps."
Example bad summary: "This contract was reviewed for compliance and the results are summarized below."
`

// GenerateReviewSummary uses LLM to generate an executive summary of a
// completed review: the contract outcome plus each term's derived status.
func GenerateReviewSummary(ctx context.Context, client LLMClient, contract *model.Contract, terms []model.ComplianceTerm, config SummaryConfig) (string, error) {
	if client == nil {
		return "", fmt.Errorf("LLM client is nil")
	}
	if contract == nil {
		return "", fmt.Errorf("contract is nil")
	}

	// Apply defaults
	if config.Model == "" {
		config.Model = "gpt-4o-mini"
	}
	if config.MaxTokens <= 0 {
		config.MaxTokens = 250
	}

	userPrompt := fmt.Sprintf("Summarize this compliance review:\n\n%s", buildReviewDigest(contract, terms))

	resp, err := client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: config.Model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: reviewSummarySystemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: userPrompt},
			},
			MaxTokens: config.MaxTokens,
		},
	)

	if err != nil {
		return "", fmt.Errorf("LLM request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from LLM")
	}

	return resp.Choices[0].Message.Content, nil
}

// buildReviewDigest flattens the review into the plain-text form the prompt
// expects: one header line, then one line per term with its status and the
// headings of any unmet subpoints.
func buildReviewDigest(contract *model.Contract, terms []model.ComplianceTerm) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Status: %s, risk: %s, terms matching %.1f%%, points matching %.1f%%\n",
		contract.Status, contract.RiskLevel, contract.TermMatchingRate, contract.PointsMatchingRate)

	for i := range terms {
		term := &terms[i]
		fmt.Fprintf(&b, "- %s: %s", term.Heading, term.Status())

		var unmet []string
		for j := range term.SubPoints {
			if !term.SubPoints[j].Met {
				unmet = append(unmet, term.SubPoints[j].Heading)
			}
		}
		if len(unmet) > 0 {
			fmt.Fprintf(&b, " (unmet: %s)", strings.Join(unmet, ", "))
		}
		b.WriteString("\n")
	}

	return b.String()
}
