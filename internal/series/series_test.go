package series

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seo-forecast-api/internal/models"
)

func TestParse(t *testing.T) {
	testData := map[string]struct {
		input    string
		expected []models.TrafficPoint
		err      error
		errText  string
	}{
		"empty file": {
			input: "",
			err:   ErrEmptyFile,
		},
		"header only": {
			input: "Month,Organic Traffic\n",
			err:   ErrEmptyFile,
		},
		"single row": {
			input: "Month,Organic Traffic\nJan-25,1000\n",
			err:   ErrTooFewRows,
		},
		"wrong column count": {
			input: "Month,Organic Traffic\nJan-25,1000\nFeb-25,1100,extra\n",
			err:   ErrColumnCount,
		},
		"non numeric traffic": {
			input:   "Month,Organic Traffic\nJan-25,1000\nFeb-25,lots\n",
			errText: "not a whole number",
		},
		"negative traffic": {
			input:   "Month,Organic Traffic\nJan-25,1000\nFeb-25,-5\n",
			errText: "negative",
		},
		"bad month": {
			input:   "Month,Organic Traffic\nJan-25,1000\nSmarch-25,1100\n",
			errText: "unrecognized month",
		},
		"duplicate month": {
			input: "Month,Organic Traffic\nJan-25,1000\nJan-25,1100\n",
			err:   ErrDuplicateMonth,
		},
		"valid with header": {
			input: "Month,Organic Traffic\nJan-25,1000\nFeb-25,1100\n",
			expected: []models.TrafficPoint{
				{Month: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), Label: "Jan-25", Traffic: 1000},
				{Month: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), Label: "Feb-25", Traffic: 1100},
			},
		},
		"valid without header": {
			input: "Jan-25,1000\nFeb-25,1100\n",
			expected: []models.TrafficPoint{
				{Month: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), Label: "Jan-25", Traffic: 1000},
				{Month: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), Label: "Feb-25", Traffic: 1100},
			},
		},
		"unsorted input is sorted": {
			input: "Month,Organic Traffic\nMar-25,1200\nJan-25,1000\nFeb-25,1100\n",
			expected: []models.TrafficPoint{
				{Month: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), Label: "Jan-25", Traffic: 1000},
				{Month: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), Label: "Feb-25", Traffic: 1100},
				{Month: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), Label: "Mar-25", Traffic: 1200},
			},
		},
		"iso months and thousands separators": {
			input: "Month,Organic Traffic\n2025-01,\"12,345\"\n2025-02,13000\n",
			expected: []models.TrafficPoint{
				{Month: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), Label: "Jan-25", Traffic: 12345},
				{Month: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), Label: "Feb-25", Traffic: 13000},
			},
		},
		"blank rows skipped": {
			input: "Month,Organic Traffic\nJan-25,1000\n\nFeb-25,1100\n",
			expected: []models.TrafficPoint{
				{Month: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), Label: "Jan-25", Traffic: 1000},
				{Month: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), Label: "Feb-25", Traffic: 1100},
			},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			points, err := Parse(strings.NewReader(td.input))
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			if td.errText != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), td.errText)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, td.expected, points)
		})
	}
}

func TestParseRowNumberInError(t *testing.T) {
	_, err := Parse(strings.NewReader("Month,Organic Traffic\nJan-25,1000\nFeb-25,oops\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 3")
}

func TestHorizon(t *testing.T) {
	points := []models.TrafficPoint{
		{Month: time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)},
		{Month: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)},
	}

	horizon := Horizon(points, 6)
	require.Len(t, horizon, 6)
	expected := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, month := range horizon {
		assert.Equal(t, expected.AddDate(0, i, 0), month)
	}
}

func TestSummarize(t *testing.T) {
	points := []models.TrafficPoint{
		{Label: "Jan-25"},
		{Label: "Feb-25"},
		{Label: "Mar-25"},
	}
	assert.Equal(t, models.SeriesSummary{Rows: 3, FirstMonth: "Jan-25", LastMonth: "Mar-25"}, Summarize(points))
}
