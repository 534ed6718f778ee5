package chart

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seo-forecast-api/internal/models"
)

func sampleResponse() *models.ForecastResponse {
	return &models.ForecastResponse{
		Summary: models.SeriesSummary{Rows: 2, FirstMonth: "Nov-24", LastMonth: "Dec-24"},
		History: []models.TrafficPoint{
			{Label: "Nov-24", Traffic: 900},
			{Label: "Dec-24", Traffic: 1000},
		},
		Forecast: []models.ForecastRow{
			{Label: "Jan-25", Forecast: 1100, Lower: 1000, Upper: 1200},
			{Label: "Feb-25", Forecast: 1150, Lower: 1040, Upper: 1260},
		},
		GeneratedAt: time.Now(),
	}
}

func TestForecastLine(t *testing.T) {
	line := ForecastLine(sampleResponse())
	require.NotNil(t, line)
	assert.Len(t, line.MultiSeries, 4)
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, sampleResponse()))

	html := buf.String()
	assert.Contains(t, html, "SEO Traffic Forecast")
	assert.Contains(t, html, "Forecasted Traffic")
	assert.Contains(t, html, "Jan-25")
	assert.Contains(t, html, "1100")
	// table must land inside the document
	assert.Contains(t, html, "</table>")
	assert.NotContains(t, html, "</body></body>")
}
