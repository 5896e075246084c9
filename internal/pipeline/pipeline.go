package pipeline

import (
	"context"
	"fmt"
)

// SummaryModel identifies a pretrained summarization model.
type SummaryModel string

const (
	SummaryT5Small      SummaryModel = "t5-small"
	SummaryBARTLargeCNN SummaryModel = "facebook/bart-large-cnn"
	SummaryPegasusXSum  SummaryModel = "google/pegasus-xsum"
)

// DefaultSummaryModel is the UI's preselected summarizer.
const DefaultSummaryModel = SummaryBARTLargeCNN

// SummaryModels lists all selectable summarization models in display order.
var SummaryModels = []SummaryModel{SummaryT5Small, SummaryBARTLargeCNN, SummaryPegasusXSum}

// Label returns the display name shown in the model dropdown.
func (m SummaryModel) Label() string {
	switch m {
	case SummaryT5Small:
		return "T5 (t5-small)"
	case SummaryBARTLargeCNN:
		return "BART (bart-large-cnn)"
	case SummaryPegasusXSum:
		return "Pegasus (xsum)"
	}
	return string(m)
}

// ParseSummaryModel maps a display label or model id to its SummaryModel.
func ParseSummaryModel(s string) (SummaryModel, error) {
	for _, m := range SummaryModels {
		if s == m.Label() || s == string(m) {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown summarization model %q", s)
}

// QAModel identifies a pretrained extractive question-answering model.
type QAModel string

const (
	QADistilBERT QAModel = "distilbert-base-uncased-distilled-squad"
	QABERT       QAModel = "deepset/bert-base-cased-squad2"
)

// DefaultQAModel is the UI's preselected QA model.
const DefaultQAModel = QADistilBERT

// QAModels lists all selectable QA models in display order.
var QAModels = []QAModel{QADistilBERT, QABERT}

// Label returns the display name shown in the model dropdown.
func (m QAModel) Label() string {
	switch m {
	case QADistilBERT:
		return "DistilBERT QA"
	case QABERT:
		return "BERT QA"
	}
	return string(m)
}

// ParseQAModel maps a display label or model id to its QAModel.
func ParseQAModel(s string) (QAModel, error) {
	for _, m := range QAModels {
		if s == m.Label() || s == string(m) {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown QA model %q", s)
}

// SummarizeOptions bounds the generated summary length.
type SummarizeOptions struct {
	Model     SummaryModel
	MinLength int
	MaxLength int
}

// Summarizer produces an abridged version of a text using greedy decoding.
type Summarizer interface {
	Summarize(ctx context.Context, text string, opts SummarizeOptions) (string, error)
}

// Answer is an extracted answer span with the model's confidence.
type Answer struct {
	Text  string
	Score float64
}

// Answerer answers a question against a context text.
type Answerer interface {
	Answer(ctx context.Context, question, contextText string, model QAModel) (Answer, error)
}
