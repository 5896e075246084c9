package pipeline

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockSummarizer is a mock implementation of Summarizer using testify/mock.
type MockSummarizer struct {
	mock.Mock
}

func (m *MockSummarizer) Summarize(ctx context.Context, text string, opts SummarizeOptions) (string, error) {
	args := m.Called(ctx, text, opts)
	return args.String(0), args.Error(1)
}

// MockAnswerer is a mock implementation of Answerer using testify/mock.
type MockAnswerer struct {
	mock.Mock
}

func (m *MockAnswerer) Answer(ctx context.Context, question, contextText string, model QAModel) (Answer, error) {
	args := m.Called(ctx, question, contextText, model)
	return args.Get(0).(Answer), args.Error(1)
}
