package evaluator

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/packages/param"

	"github.com/gutcheck/backend/internal/scoring"
)

// LLMClient is the interface all evaluator backends satisfy.
type LLMClient interface {
	Complete(ctx context.Context, systemPrompt string, userPrompt string) (*LLMResponse, error)
}

// LLMResponse holds the raw response content and token usage.
type LLMResponse struct {
	Content      string
	PromptTokens int
	OutputTokens int
}

// Evaluator scores open-ended assessment answers through an LLM backend.
// Implements the scoring engine's evaluator port.
type Evaluator struct {
	llm   LLMClient
	model string
}

func NewEvaluator() *Evaluator {
	var llm LLMClient
	model := "mock"

	if os.Getenv("USE_CLI_EVALUATOR") == "true" {
		cliPath := os.Getenv("CLAUDE_CLI_PATH")
		if cliPath == "" {
			cliPath = "claude"
		}
		llm = NewCLIClient(cliPath)
		model = "claude-cli"
		log.Println("Evaluator using Claude CLI (local plan)")
	} else if os.Getenv("MOCK_EVALUATOR") == "true" {
		llm = NewMockClient()
		log.Println("Evaluator using mock scores")
	} else {
		model = os.Getenv("ANTHROPIC_MODEL")
		if model == "" {
			model = "claude-opus-4-5-20251101"
		}
		llm = NewAPIClient(model)
		log.Println("Evaluator using Anthropic API:", model)
	}

	return &Evaluator{llm: llm, model: model}
}

func (e *Evaluator) ModelName() string {
	return e.model
}

// ScoreOpenEnded evaluates one free-text answer against its rubric and
// returns the 1-5 score.
func (e *Evaluator) ScoreOpenEnded(ctx context.Context, req scoring.EvalRequest) (*scoring.EvalResult, error) {
	systemPrompt := SystemPrompt()
	userPrompt := BuildScoringPrompt(req.RubricKey, req.QuestionText, req.ResponseText)

	resp, err := e.llm.Complete(ctx, systemPrompt, userPrompt)
	if err != nil {
		return nil, fmt.Errorf("evaluate %s: %w", req.QuestionID, err)
	}

	eval, err := ParseEvaluation(resp.Content)
	if err != nil {
		return nil, fmt.Errorf("parse evaluation for %s: %w", req.QuestionID, err)
	}

	return &scoring.EvalResult{Score: eval.Score, Explanation: eval.Explanation}, nil
}

// ── APIClient — Anthropic SDK (Production) ─────────────────

type APIClient struct {
	client *anthropic.Client
	model  string
}

func NewAPIClient(model string) *APIClient {
	client := anthropic.NewClient(
		option.WithAPIKey(os.Getenv("ANTHROPIC_API_KEY")),
	)
	return &APIClient{client: &client, model: model}
}

func (c *APIClient) Complete(ctx context.Context, systemPrompt string, userPrompt string) (*LLMResponse, error) {
	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   1024,
		Temperature: param.NewOpt(0.2),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	}

	message, err := c.callWithRetry(ctx, params)
	if err != nil {
		return nil, err
	}

	var responseText string
	for _, block := range message.Content {
		if block.Type == "text" {
			responseText = block.Text
			break
		}
	}

	if responseText == "" {
		return nil, fmt.Errorf("no text content in API response")
	}

	return &LLMResponse{
		Content:      responseText,
		PromptTokens: int(message.Usage.InputTokens),
		OutputTokens: int(message.Usage.OutputTokens),
	}, nil
}

func (c *APIClient) callWithRetry(ctx context.Context, params anthropic.MessageNewParams) (*anthropic.Message, error) {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			sleepDuration := time.Duration(1<<uint(attempt)) * time.Second
			log.Printf("Retrying Anthropic API call in %v (attempt %d)", sleepDuration, attempt+1)
			select {
			case <-time.After(sleepDuration):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		message, err := c.client.Messages.New(ctx, params)
		if err == nil {
			return message, nil
		}
		lastErr = err
		log.Printf("Anthropic API attempt %d failed: %v", attempt+1, err)
	}
	return nil, fmt.Errorf("anthropic API failed after retries: %w", lastErr)
}

// ── MockClient — Local Development ─────────────────────────

// MockClient scores every answer a 3. Good enough for exercising the full
// submission path locally without an API key.
type MockClient struct{}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) Complete(ctx context.Context, systemPrompt string, userPrompt string) (*LLMResponse, error) {
	return &LLMResponse{
		Content:      `{"score": 3, "explanation": "[Mock] Decent clarity with some evidence of execution."}`,
		PromptTokens: 400,
		OutputTokens: 40,
	}, nil
}
