package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrAdvisorUnavailable indicates the advice LLM is not configured or unavailable.
	ErrAdvisorUnavailable = errors.New("advisor unavailable")
	// ErrAdvisorRequest indicates an error during the LLM API request.
	ErrAdvisorRequest = errors.New("advisor request failed")
	// ErrAdvisorResponse indicates an unusable LLM response.
	ErrAdvisorResponse = errors.New("empty advisor response")
)

const systemPrompt = `Ты — ассистент по здоровому образу жизни в трекере сна, калорий и тренировок.

Тебе передают записи пользователя за последнюю неделю: сон по датам, калории по датам и тренировки с типом активности.

Правила:
- Опирайся только на переданные данные; если данных мало, скажи это прямо.
- Не ставь диагнозов и не давай медицинских рекомендаций; только привычки и режим.
- Совет должен быть кратким: два-три конкретных предложения на русском языке.`

// AdvisorLLM produces free-text advice from a fully-built prompt.
// Implementations own all transport concerns; callers treat the response as
// opaque text and do not retry.
type AdvisorLLM interface {
	Advise(ctx context.Context, prompt string) (string, error)
}

// OpenAIClient implements AdvisorLLM using the OpenAI chat completions API.
type OpenAIClient struct {
	client openai.Client
	model  string
}

// NewOpenAIClient creates a new client for generating advice.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIClient{
		client: client,
		model:  model,
	}
}

// Advise sends the prompt and returns the model's reply verbatim.
func (c *OpenAIClient) Advise(ctx context.Context, prompt string) (string, error) {
	if c == nil {
		return "", ErrAdvisorUnavailable
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAdvisorRequest, err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrAdvisorResponse
	}

	return resp.Choices[0].Message.Content, nil
}
