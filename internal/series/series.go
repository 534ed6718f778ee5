// Package series parses and validates uploaded monthly traffic CSVs.
package series

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"seo-forecast-api/internal/models"
)

var (
	ErrEmptyFile      = errors.New("uploaded file contains no data rows")
	ErrTooFewRows     = errors.New("at least two monthly data points are required")
	ErrColumnCount    = errors.New("each row must have exactly two columns: month and traffic")
	ErrDuplicateMonth = errors.New("duplicate month in uploaded data")
)

// Accepted month formats, tried in order. The first matches the original
// export format ("Jan-25").
var monthLayouts = []string{
	models.MonthLayout,
	"2006-01",
	"01/2006",
	"Jan 2006",
}

// Parse reads a two-column CSV of (month, traffic) rows and returns the
// validated series sorted chronologically. A header row is detected and
// skipped. Validation errors cite the offending row number.
func Parse(r io.Reader) ([]models.TrafficPoint, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("unable to read CSV, %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyFile
	}

	start := 0
	if isHeader(records[0]) {
		start = 1
	}

	points := make([]models.TrafficPoint, 0, len(records)-start)
	for i := start; i < len(records); i++ {
		row := records[i]
		if isBlank(row) {
			continue
		}
		if len(row) != 2 {
			return nil, fmt.Errorf("row %d has %d columns, %w", i+1, len(row), ErrColumnCount)
		}

		month, err := parseMonth(row[0])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		traffic, err := parseTraffic(row[1])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}

		points = append(points, models.TrafficPoint{
			Month:   month,
			Label:   month.Format(models.MonthLayout),
			Traffic: traffic,
		})
	}

	if len(points) == 0 {
		return nil, ErrEmptyFile
	}
	if len(points) < 2 {
		return nil, ErrTooFewRows
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Month.Before(points[j].Month)
	})
	for i := 1; i < len(points); i++ {
		if points[i].Month.Equal(points[i-1].Month) {
			return nil, fmt.Errorf("%s appears more than once, %w", points[i].Label, ErrDuplicateMonth)
		}
	}

	return points, nil
}

// Summarize describes a validated series for echoing back to the user.
func Summarize(points []models.TrafficPoint) models.SeriesSummary {
	return models.SeriesSummary{
		Rows:       len(points),
		FirstMonth: points[0].Label,
		LastMonth:  points[len(points)-1].Label,
	}
}

// Horizon returns the n calendar months following the last historical month.
func Horizon(points []models.TrafficPoint, n int) []time.Time {
	last := points[len(points)-1].Month
	horizon := make([]time.Time, 0, n)
	for i := 1; i <= n; i++ {
		horizon = append(horizon, last.AddDate(0, i, 0))
	}
	return horizon
}

func parseMonth(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range monthLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized month %q, expected a format like %q", s, "Jan-25")
}

func parseTraffic(s string) (int64, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("traffic value %q is not a whole number", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("traffic value %d is negative", n)
	}
	return n, nil
}

func isHeader(row []string) bool {
	if len(row) != 2 {
		return true
	}
	if _, err := parseMonth(row[0]); err == nil {
		return false
	}
	if _, err := parseTraffic(row[1]); err == nil {
		return false
	}
	return true
}

func isBlank(row []string) bool {
	for _, field := range row {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}
