package generativeAI

import (
	"context"
	"fmt"
	"os"
	"time"

	"google.golang.org/genai"

	"github.com/selinamariefuchs/brain-trip-planner/app/observability/metrics"
)

const defaultModel = "gemini-2.0-flash"

// CallTimeout bounds every generation call. The provider SDK has no timeout
// of its own and an unbounded call risks request-handler starvation.
const CallTimeout = 20 * time.Second

// AIClient wraps the Gemini client used for trivia and enrichment
// generation. All callers treat generation errors as soft failures.
type AIClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewAIClient builds the client from GOOGLE_GEMINI_API_KEY. A missing key is
// an error the caller may choose to degrade on, not a fatal condition.
func NewAIClient(ctx context.Context, model string, timeout time.Duration) (*AIClient, error) {
	apiKey := os.Getenv("GOOGLE_GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GOOGLE_GEMINI_API_KEY environment variable is not set")
	}
	if model == "" {
		model = defaultModel
	}
	if timeout <= 0 {
		timeout = CallTimeout
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &AIClient{
		client:  client,
		model:   model,
		timeout: timeout,
	}, nil
}

// GenerateContent sends one prompt and returns the raw model text.
func (ai *AIClient) GenerateContent(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, ai.timeout)
	defer cancel()

	result, err := ai.client.Models.GenerateContent(ctx, ai.model, genai.Text(prompt), config)
	if err != nil {
		metrics.Get().LlmCallErrorsTotal.Add(ctx, 1)
		return "", fmt.Errorf("generate content failed: %w", err)
	}
	return result.Text(), nil
}
