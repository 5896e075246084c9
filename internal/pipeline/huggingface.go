package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultHFBaseURL is the public Hugging Face Inference API endpoint.
const DefaultHFBaseURL = "https://api-inference.huggingface.co"

const defaultInferenceTimeout = 60 * time.Second

// HFClient calls the Hugging Face Inference API for summarization and
// question answering. One client serves both pipelines; the model id is
// part of the request path.
type HFClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewHFClient builds a client. An empty baseURL selects the public API;
// an empty token sends unauthenticated (rate-limited) requests.
func NewHFClient(baseURL, token string) *HFClient {
	if baseURL == "" {
		baseURL = DefaultHFBaseURL
	}
	return &HFClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: defaultInferenceTimeout},
	}
}

type hfSummaryRequest struct {
	Inputs     string             `json:"inputs"`
	Parameters hfSummaryParams    `json:"parameters"`
	Options    hfInferenceOptions `json:"options"`
}

type hfSummaryParams struct {
	MinLength int  `json:"min_length"`
	MaxLength int  `json:"max_length"`
	DoSample  bool `json:"do_sample"`
}

type hfInferenceOptions struct {
	WaitForModel bool `json:"wait_for_model"`
}

type hfSummaryResponse struct {
	SummaryText string `json:"summary_text"`
}

// Summarize runs the summarization pipeline with greedy decoding
// (do_sample=false) and the caller's length bounds.
func (c *HFClient) Summarize(ctx context.Context, text string, opts SummarizeOptions) (string, error) {
	body := hfSummaryRequest{
		Inputs: text,
		Parameters: hfSummaryParams{
			MinLength: opts.MinLength,
			MaxLength: opts.MaxLength,
			DoSample:  false,
		},
		Options: hfInferenceOptions{WaitForModel: true},
	}

	var results []hfSummaryResponse
	if err := c.post(ctx, string(opts.Model), body, &results); err != nil {
		return "", err
	}
	if len(results) == 0 {
		return "", fmt.Errorf("model %s returned no summary", opts.Model)
	}
	return results[0].SummaryText, nil
}

type hfQARequest struct {
	Inputs  hfQAInputs         `json:"inputs"`
	Options hfInferenceOptions `json:"options"`
}

type hfQAInputs struct {
	Question string `json:"question"`
	Context  string `json:"context"`
}

type hfQAResponse struct {
	Answer string  `json:"answer"`
	Score  float64 `json:"score"`
}

// Answer runs the question-answering pipeline with the full text as context.
func (c *HFClient) Answer(ctx context.Context, question, contextText string, model QAModel) (Answer, error) {
	body := hfQARequest{
		Inputs:  hfQAInputs{Question: question, Context: contextText},
		Options: hfInferenceOptions{WaitForModel: true},
	}

	var result hfQAResponse
	if err := c.post(ctx, string(model), body, &result); err != nil {
		return Answer{}, err
	}
	return Answer{Text: result.Answer, Score: result.Score}, nil
}

func (c *HFClient) post(ctx context.Context, model string, payload, out any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s", c.baseURL, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call model %s: %w", model, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("model %s: %s", model, apiError(resp.Body, resp.StatusCode))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response from %s: %w", model, err)
	}
	return nil
}

// apiError extracts the API's error message, falling back to the HTTP status.
func apiError(body io.Reader, status int) string {
	var e struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(body).Decode(&e); err == nil && e.Error != "" {
		return e.Error
	}
	return fmt.Sprintf("unexpected status: %d", status)
}
