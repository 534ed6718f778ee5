package models

import "time"

// MonthLayout is the month format used in uploads and responses, e.g. "Jan-25".
const MonthLayout = "Jan-06"

// TrafficPoint is one historical observation from the uploaded CSV
type TrafficPoint struct {
	Month   time.Time `json:"-"`
	Label   string    `json:"month"`
	Traffic int64     `json:"traffic"`
}

// ForecastRow is one predicted month with its confidence interval
type ForecastRow struct {
	Month    time.Time `json:"-"`
	Label    string    `json:"month"`
	Forecast int64     `json:"forecastedTraffic"`
	Lower    int64     `json:"minimumTraffic"`
	Upper    int64     `json:"maximumTraffic"`
}

// ForecastResponse represents the forecast result for one upload
type ForecastResponse struct {
	Summary     SeriesSummary  `json:"summary"`
	History     []TrafficPoint `json:"history"`
	Forecast    []ForecastRow  `json:"forecast"`
	GeneratedAt time.Time      `json:"generatedAt"`
	CacheHit    bool           `json:"cacheHit"`
}

// SeriesSummary describes the validated upload echoed back to the user
type SeriesSummary struct {
	Rows       int    `json:"rows"`
	FirstMonth string `json:"firstMonth"`
	LastMonth  string `json:"lastMonth"`
}

// ErrorResponse represents API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code"`
}
