package analysis

import (
	"context"
	"strings"
	"testing"

	"github.com/sashabaranov/go-openai"

	"github.com/complyboard/complyboard/model"
)

type stubLLMClient struct {
	lastRequest openai.ChatCompletionRequest
	response    string
	err         error
}

func (c *stubLLMClient) CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	c.lastRequest = request
	if c.err != nil {
		return openai.ChatCompletionResponse{}, c.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: c.response}},
		},
	}, nil
}

func testReviewInput() (*model.Contract, []model.ComplianceTerm) {
	contract := &model.Contract{
		ID:                 "c1",
		Name:               "Master Service Agreement",
		Vendor:             "Acme Corp",
		Status:             model.StatusNeedsReview,
		RiskLevel:          model.RiskMedium,
		TermMatchingRate:   72.5,
		PointsMatchingRate: 81.0,
	}
	terms := []model.ComplianceTerm{
		{
			ID:      "encryption",
			Heading: "Data Encryption Requirements",
			SubPoints: []model.SubPoint{
				{Heading: "Encryption in Transit", Met: true},
				{Heading: "Key Management", Met: false},
			},
		},
		{
			ID:      "breach",
			Heading: "Breach Notification",
			SubPoints: []model.SubPoint{
				{Heading: "Notification Timeline", Met: true},
			},
		},
	}
	return contract, terms
}

func TestGenerateReviewSummary(t *testing.T) {
	contract, terms := testReviewInput()
	client := &stubLLMClient{response: "Review passed with medium risk."}

	summary, err := GenerateReviewSummary(context.Background(), client, contract, terms, DefaultSummaryConfig())
	if err != nil {
		t.Fatalf("Failed to generate summary: %v", err)
	}
	if summary != "Review passed with medium risk." {
		t.Errorf("Unexpected summary: %q", summary)
	}

	if client.lastRequest.Model != "gpt-4o-mini" {
		t.Errorf("Expected default model, got %q", client.lastRequest.Model)
	}
	if len(client.lastRequest.Messages) != 2 {
		t.Fatalf("Expected system and user messages, got %d", len(client.lastRequest.Messages))
	}

	userPrompt := client.lastRequest.Messages[1].Content
	for _, want := range []string{
		"risk: medium",
		"Data Encryption Requirements: partially-met",
		"unmet: Key Management",
		"Breach Notification: met",
	} {
		if !strings.Contains(userPrompt, want) {
			t.Errorf("User prompt missing %q", want)
		}
	}
}

func TestGenerateReviewSummaryNilClient(t *testing.T) {
	contract, terms := testReviewInput()

	if _, err := GenerateReviewSummary(context.Background(), nil, contract, terms, SummaryConfig{}); err == nil {
		t.Error("Expected error for nil client")
	}
}

func TestGenerateReviewSummaryEmptyResponse(t *testing.T) {
	contract, terms := testReviewInput()
	client := &stubLLMClient{}

	// Empty content is still a response; only zero choices is an error
	if _, err := GenerateReviewSummary(context.Background(), client, contract, terms, SummaryConfig{}); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}
