package pipeline

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const defaultChatTimeout = 30 * time.Second

// OpenAIClient emulates the summarization and QA pipelines with the OpenAI
// Chat Completions API. The selected pretrained model only steers the prompt;
// all requests go to the one configured chat model. Temperature 0 approximates
// the pipelines' greedy decoding.
type OpenAIClient struct {
	model  openai.ChatModel
	client *openai.Client
}

// NewOpenAIClient builds a client with defaults against api.openai.com.
func NewOpenAIClient(apiKey string, model openai.ChatModel) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key required")
	}
	if model == "" {
		model = openai.ChatModelGPT4oMini
	}
	cli := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIClient{
		model:  model,
		client: &cli,
	}, nil
}

func (c *OpenAIClient) Summarize(ctx context.Context, text string, opts SummarizeOptions) (string, error) {
	if c == nil || c.client == nil {
		return "", fmt.Errorf("nil openai client")
	}
	system := fmt.Sprintf(
		"You are a summarizer in the style of %s. Produce a summary of the user's text between %d and %d words. Output the summary only, as plain prose.",
		opts.Model.Label(), opts.MinLength, opts.MaxLength,
	)
	content, err := c.complete(ctx, system, text)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(content), nil
}

func (c *OpenAIClient) Answer(ctx context.Context, question, contextText string, model QAModel) (Answer, error) {
	if c == nil || c.client == nil {
		return Answer{}, fmt.Errorf("nil openai client")
	}
	system := "You are an extractive question-answering system. Answer with the shortest span from the context that answers the question. If the context does not contain the answer, say so briefly."
	user := fmt.Sprintf("Context:\n%s\n\nQuestion: %s", contextText, question)
	content, err := c.complete(ctx, system, user)
	if err != nil {
		return Answer{}, err
	}
	answer := strings.TrimSpace(content)
	return Answer{Text: answer, Score: deriveConfidence(answer)}, nil
}

func (c *OpenAIClient) complete(ctx context.Context, system, user string) (string, error) {
	reqCtx, cancel := context.WithTimeout(ctx, defaultChatTimeout)
	defer cancel()
	resp, err := c.client.Chat.Completions.New(reqCtx, openai.ChatCompletionNewParams{
		Model:       c.model,
		Messages:    buildMessages(system, user),
		Temperature: openai.Float(0),
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai: no choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}

func buildMessages(system, user string) []openai.ChatCompletionMessageParamUnion {
	return []openai.ChatCompletionMessageParamUnion{
		{
			OfSystem: &openai.ChatCompletionSystemMessageParam{
				Content: openai.ChatCompletionSystemMessageParamContentUnion{
					OfString: openai.String(system),
				},
			},
		},
		{
			OfUser: &openai.ChatCompletionUserMessageParam{
				Content: openai.ChatCompletionUserMessageParamContentUnion{
					OfString: openai.String(user),
				},
			},
		},
	}
}

// deriveConfidence returns a heuristic confidence scaled by answer length.
// Chat completions expose no span probability, unlike the QA pipelines.
func deriveConfidence(answer string) float64 {
	if answer == "" {
		return 0
	}
	return 0.5 + 0.5*math.Tanh(float64(len(answer))/200.0)
}
