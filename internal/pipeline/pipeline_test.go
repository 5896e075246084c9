package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSummaryModel(t *testing.T) {
	tests := []struct {
		in       string
		expected SummaryModel
	}{
		{"T5 (t5-small)", SummaryT5Small},
		{"BART (bart-large-cnn)", SummaryBARTLargeCNN},
		{"Pegasus (xsum)", SummaryPegasusXSum},
		{"t5-small", SummaryT5Small},
		{"facebook/bart-large-cnn", SummaryBARTLargeCNN},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			m, err := ParseSummaryModel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, m)
		})
	}

	_, err := ParseSummaryModel("gpt-7")
	assert.Error(t, err)
}

func TestParseQAModel(t *testing.T) {
	m, err := ParseQAModel("DistilBERT QA")
	require.NoError(t, err)
	assert.Equal(t, QADistilBERT, m)

	m, err = ParseQAModel("BERT QA")
	require.NoError(t, err)
	assert.Equal(t, QABERT, m)

	_, err = ParseQAModel("nope")
	assert.Error(t, err)
}

func TestLabelsRoundTrip(t *testing.T) {
	for _, m := range SummaryModels {
		parsed, err := ParseSummaryModel(m.Label())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
	for _, m := range QAModels {
		parsed, err := ParseQAModel(m.Label())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
}
