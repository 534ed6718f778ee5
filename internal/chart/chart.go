// Package chart renders forecast results as an echarts HTML report.
package chart

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"seo-forecast-api/internal/models"
)

// gap marks a missing point so echarts breaks the line instead of
// interpolating across it.
const gap = "-"

var tableTmpl = template.Must(template.New("table").Parse(`
<div style="max-width:720px;margin:24px auto;font-family:sans-serif">
<h3>Forecasted Traffic for the Next {{len .Forecast}} Months</h3>
<table border="1" cellpadding="6" cellspacing="0" style="border-collapse:collapse;width:100%">
<tr><th>Month</th><th>Forecasted Traffic</th><th>Minimum Traffic</th><th>Maximum Traffic</th></tr>
{{range .Forecast}}<tr><td>{{.Label}}</td><td>{{.Forecast}}</td><td>{{.Lower}}</td><td>{{.Upper}}</td></tr>
{{end}}</table>
<p>Based on {{.Summary.Rows}} months of history ({{.Summary.FirstMonth}} to {{.Summary.LastMonth}}).</p>
</div>
`))

// ForecastLine builds a line chart of the historical series followed by the
// forecast with its uncertainty bounds.
func ForecastLine(resp *models.ForecastResponse) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title:    "SEO Traffic Forecast",
				Subtitle: "Organic traffic by month",
			},
		),
	)

	labels := make([]string, 0, len(resp.History)+len(resp.Forecast))
	actual := make([]opts.LineData, 0, cap(labels))
	forecast := make([]opts.LineData, 0, cap(labels))
	upper := make([]opts.LineData, 0, cap(labels))
	lower := make([]opts.LineData, 0, cap(labels))

	for _, p := range resp.History {
		labels = append(labels, p.Label)
		actual = append(actual, opts.LineData{Value: p.Traffic})
		forecast = append(forecast, opts.LineData{Value: gap})
		upper = append(upper, opts.LineData{Value: gap})
		lower = append(lower, opts.LineData{Value: gap})
	}
	for _, r := range resp.Forecast {
		labels = append(labels, r.Label)
		actual = append(actual, opts.LineData{Value: gap})
		forecast = append(forecast, opts.LineData{Value: r.Forecast})
		upper = append(upper, opts.LineData{Value: r.Upper})
		lower = append(lower, opts.LineData{Value: r.Lower})
	}

	line.SetXAxis(labels).
		AddSeries("Actual", actual).
		AddSeries("Forecast", forecast).
		AddSeries("Upper", upper).
		AddSeries("Lower", lower)
	return line
}

// WriteReport renders the full HTML report: the forecast chart followed by
// the forecast table.
func WriteReport(w io.Writer, resp *models.ForecastResponse) error {
	page := components.NewPage()
	page.AddCharts(ForecastLine(resp))

	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		return fmt.Errorf("unable to render forecast chart, %w", err)
	}

	var tbl bytes.Buffer
	if err := tableTmpl.Execute(&tbl, resp); err != nil {
		return fmt.Errorf("unable to render forecast table, %w", err)
	}

	// splice the table into the rendered chart page
	html := strings.Replace(buf.String(), "</body>", tbl.String()+"</body>", 1)
	_, err := io.WriteString(w, html)
	return err
}
