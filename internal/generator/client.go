package generator

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/packages/param"
	"github.com/teachassist/backend/internal/models"
)

// LLMClient is the interface all generation backends satisfy. The model is
// an unreliable, non-deterministic text producer: two calls with identical
// prompts may return different text, different JSON validity, different
// day counts.
type LLMClient interface {
	Generate(ctx context.Context, systemPrompt string, userPrompt string) (*LLMResponse, error)
}

// LLMResponse holds the raw response content and token usage.
type LLMResponse struct {
	Content      string
	PromptTokens int
	OutputTokens int
}

// Generator wraps an LLMClient and adds tool-specific generation methods.
type Generator struct {
	llm   LLMClient
	model string
}

func NewGenerator() *Generator {
	var llm LLMClient
	model := "mock"

	if os.Getenv("USE_CLI_GENERATOR") == "true" {
		cliPath := os.Getenv("CLAUDE_CLI_PATH")
		if cliPath == "" {
			cliPath = "claude"
		}
		llm = NewCLIClient(cliPath)
		model = "claude-cli"
		log.Println("Generator using Claude CLI (local plan)")
	} else if os.Getenv("MOCK_GENERATOR") == "true" {
		llm = NewMockClient()
		log.Println("Generator using mock data")
	} else {
		model = os.Getenv("ANTHROPIC_MODEL")
		if model == "" {
			model = "claude-opus-4-5-20251101"
		}
		llm = NewAPIClient(model)
		log.Println("Generator using Anthropic API:", model)
	}

	return &Generator{llm: llm, model: model}
}

// NewGeneratorWith builds a Generator around an explicit client. Used by
// services that inject a test double.
func NewGeneratorWith(llm LLMClient, model string) *Generator {
	return &Generator{llm: llm, model: model}
}

func (g *Generator) ModelName() string {
	return g.model
}

// GeneratePacingGuide runs one model call for a pacing-guide request and
// parses the reply. On a model failure it returns a nil LLMResponse; on a
// parse failure it returns the non-nil LLMResponse alongside the error so
// the caller can tell the two apart and fall back to synthesis.
func (g *Generator) GeneratePacingGuide(ctx context.Context, req models.PacingRequest) (*models.PacingDocument, *LLMResponse, error) {
	systemPrompt := PacingSystemPrompt()
	userPrompt := BuildPacingPrompt(req)

	resp, err := g.llm.Generate(ctx, systemPrompt, userPrompt)
	if err != nil {
		return nil, nil, fmt.Errorf("generate pacing guide: %w", err)
	}

	doc, err := ParsePacingResponse(resp.Content)
	if err != nil {
		return nil, resp, fmt.Errorf("parse pacing response: %w", err)
	}

	return doc, resp, nil
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

func (c *APIClient) Generate(ctx context.Context, systemPrompt string, userPrompt string) (*LLMResponse, error) {
	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   8192,
		Temperature: param.NewOpt(0.7),
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
			time.Sleep(sleepDuration)
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

type MockClient struct{}

func NewMockClient() *MockClient {
	return &MockClient{}
}

// Generate returns a canned five-day pacing guide wrapped in conversational
// prose, so local development exercises the extractor the same way real
// model replies do.
func (m *MockClient) Generate(ctx context.Context, systemPrompt string, userPrompt string) (*LLMResponse, error) {
	return &LLMResponse{
		Content:      "Here is your pacing guide:\n\n" + buildMockPacingJSON() + "\n\nLet me know if you need any adjustments!",
		PromptTokens: 1200,
		OutputTokens: 2400,
	}, nil
}

func buildMockPacingJSON() string {
	topics := []string{
		"Introducing the unit", "Building core vocabulary", "Guided practice",
		"Collaborative investigation", "Review and assessment",
	}

	days := ""
	for i, topic := range topics {
		if i > 0 {
			days += ","
		}
		days += fmt.Sprintf(`{"day":%d,"topic":"[Mock] %s","objective":"Students will be able to explain the key concepts covered on day %d.","reading":"Selected chapter, pages %d-%d","activities":"Warm-up discussion, mini-lesson, small-group work, exit ticket","standards":"","assessment":"Exit ticket","materials":"Chart paper, student notebooks","homework":"Review today's notes","notes":""}`,
			i+1, topic, i+1, i*10+1, i*10+10)
	}

	return fmt.Sprintf(`{
  "unitOverview": {
    "title": "[Mock] Sample Unit",
    "gradeSubject": "Sample Grade and Subject",
    "duration": "5 days",
    "essentialQuestions": ["What are the central ideas of this unit?", "How do these ideas connect to what students already know?"],
    "enduringUnderstandings": ["Students build durable understanding through structured daily practice."]
  },
  "standards": [{"code": "SAMPLE.1", "description": "[Mock] A representative standard for this unit.", "type": "content"}],
  "textsOverview": [{"title": "[Mock] Core Text", "author": "Sample Author", "schedule": "Days 1-5"}],
  "dailyPlan": [%s],
  "assessmentPlan": [{"name": "Unit Check", "type": "formative", "day": 5, "description": "[Mock] Short constructed-response check."}],
  "differentiation": {"struggling": "Provide sentence frames and partner support.", "advanced": "Offer an extension investigation.", "flexDays": "Day 5 can absorb overflow."},
  "materials": ["Chart paper", "Student notebooks"],
  "teacherNotes": "[Mock] Adjust pacing based on formative results."
}`, days)
}
