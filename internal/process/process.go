package process

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"textlens/internal/chunker"
	"textlens/internal/extract"
	"textlens/internal/keywords"
	"textlens/internal/metrics"
	"textlens/internal/pipeline"
)

// Literals shown when a run has nothing to work on.
const (
	NoInput     = "No input provided."
	NoQuestions = "No questions provided."
)

// Request carries all form values of one run. Input precedence is
// file > URL > raw text; the sources are mutually exclusive.
type Request struct {
	Text        string
	FileName    string
	FileContent []byte
	URL         string

	SummaryModel pipeline.SummaryModel
	QAModel      pipeline.QAModel
	MinLength    int
	MaxLength    int
	Format       Format
	Questions    string
}

// Result holds the five display fields of one run.
type Result struct {
	Summary  string `json:"summary"`
	Keywords string `json:"keywords"`
	Answers  string `json:"answers"`
	Metrics  string `json:"metrics"`
	Original string `json:"original"`
}

// Orchestrator wires extraction, summarization, keyword extraction, question
// answering and metrics into one sequential run.
type Orchestrator struct {
	summarizer   pipeline.Summarizer
	answerer     pipeline.Answerer
	fetcher      *http.Client
	keywordCount int
	log          *slog.Logger
}

// New builds an orchestrator. fetcher is used for URL inputs only.
func New(s pipeline.Summarizer, a pipeline.Answerer, fetcher *http.Client, keywordCount int, log *slog.Logger) *Orchestrator {
	if fetcher == nil {
		fetcher = http.DefaultClient
	}
	if keywordCount <= 0 {
		keywordCount = keywords.DefaultCount
	}
	return &Orchestrator{
		summarizer:   s,
		answerer:     a,
		fetcher:      fetcher,
		keywordCount: keywordCount,
		log:          log,
	}
}

// Run executes the full pipeline for one request. All stages are sequential;
// the first failing stage aborts the run.
func (o *Orchestrator) Run(ctx context.Context, req Request) (Result, error) {
	log := o.log.With("job_id", uuid.NewString())
	start := time.Now()

	text, err := o.resolveInput(ctx, req)
	if err != nil {
		return Result{}, err
	}
	if text == "" {
		return Result{Summary: NoInput}, nil
	}

	summary, err := o.summarize(ctx, text, req)
	if err != nil {
		return Result{}, fmt.Errorf("summarize: %w", err)
	}

	kw := keywords.Top(text, o.keywordCount)

	answers, err := o.answerQuestions(ctx, text, req)
	if err != nil {
		return Result{}, fmt.Errorf("answer questions: %w", err)
	}

	snap := metrics.Compute(text, summary)
	log.Info("run complete",
		"input_words", snap.InputWords,
		"summary_words", snap.SummaryWords,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return Result{
		Summary:  summary,
		Keywords: kw,
		Answers:  answers,
		Metrics:  formatMetrics(snap),
		Original: text,
	}, nil
}

func (o *Orchestrator) resolveInput(ctx context.Context, req Request) (string, error) {
	switch {
	case req.FileName != "":
		return extract.FromFile(req.FileName, req.FileContent)
	case req.URL != "":
		return extract.FromURL(ctx, o.fetcher, req.URL)
	default:
		return req.Text, nil
	}
}

// summarize chunks the text into fixed windows, summarizes each window
// independently and joins the chunk summaries with a space.
func (o *Orchestrator) summarize(ctx context.Context, text string, req Request) (string, error) {
	opts := pipeline.SummarizeOptions{
		Model:     req.SummaryModel,
		MinLength: req.MinLength,
		MaxLength: req.MaxLength,
	}

	var parts []string
	for _, chunk := range chunker.Split(text, chunker.DefaultWindow) {
		part, err := o.summarizer.Summarize(ctx, chunk.Text, opts)
		if err != nil {
			return "", fmt.Errorf("chunk %d: %w", chunk.Index, err)
		}
		parts = append(parts, part)
	}

	summary := strings.Join(parts, " ")
	if req.Format == FormatBulletPoints {
		summary = bulletPoints(summary)
	}
	return summary, nil
}

// answerQuestions runs the QA model once per non-empty question line against
// the full, unchunked text.
func (o *Orchestrator) answerQuestions(ctx context.Context, text string, req Request) (string, error) {
	if req.Questions == "" {
		return NoQuestions, nil
	}

	var lines []string
	for _, q := range strings.Split(req.Questions, "\n") {
		if strings.TrimSpace(q) == "" {
			continue
		}
		ans, err := o.answerer.Answer(ctx, q, text, req.QAModel)
		if err != nil {
			return "", fmt.Errorf("question %q: %w", q, err)
		}
		lines = append(lines, fmt.Sprintf("%s: %s (score: %.2f)", q, ans.Text, ans.Score))
	}
	return strings.Join(lines, "\n"), nil
}

func formatMetrics(snap metrics.Snapshot) string {
	return fmt.Sprintf(
		"Input Word Count: %d\nSummary Word Count: %d\nCompression Rate: %s%%\nReadability Score (Flesch): %s",
		snap.InputWords,
		snap.SummaryWords,
		formatFloat(snap.CompressionRate),
		formatFloat(snap.Readability),
	)
}

// formatFloat renders without trailing zeros: 0, 100, 33.33.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
