package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/aouyang1/go-forecaster"
	"github.com/aouyang1/go-forecaster/feature"
	"github.com/aouyang1/go-forecaster/forecast/options"
	"github.com/rs/zerolog/log"

	"seo-forecast-api/internal/config"
	"seo-forecast-api/internal/models"
	"seo-forecast-api/internal/series"
)

// ForecastService fits the forecasting model on an uploaded series and
// produces the next-six-months prediction
type ForecastService struct {
	config *config.Config
	cache  *ForecastCache
}

func NewForecastService(cfg *config.Config, cache *ForecastCache) *ForecastService {
	return &ForecastService{
		config: cfg,
		cache:  cache,
	}
}

// GenerateForecast fits the model on a validated series and predicts the
// next months. The fit is deterministic, so identical uploads produce
// identical forecasts whether or not the cache answers. upload is the raw
// file content and only feeds the cache key.
func (s *ForecastService) GenerateForecast(ctx context.Context, upload []byte, points []models.TrafficPoint) (*models.ForecastResponse, error) {
	cacheKey := s.cache.Key(upload)
	if cached, found := s.cache.Get(cacheKey); found {
		return cached, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	horizon := series.Horizon(points, s.config.ForecastMonths)
	rows, err := s.predict(points, horizon)
	if err != nil {
		return nil, err
	}

	response := &models.ForecastResponse{
		Summary:     series.Summarize(points),
		History:     points,
		Forecast:    rows,
		GeneratedAt: time.Now(),
		CacheHit:    false,
	}

	s.cache.Set(cacheKey, response)

	log.Info().
		Int("historyRows", len(points)).
		Int("forecastRows", len(rows)).
		Str("lastMonth", response.Summary.LastMonth).
		Msg("forecast generated")

	return response, nil
}

func (s *ForecastService) predict(points []models.TrafficPoint, horizon []time.Time) ([]models.ForecastRow, error) {
	t := make([]time.Time, len(points))
	y := make([]float64, len(points))
	for i, p := range points {
		t[i] = p.Month
		y[i] = float64(p.Traffic)
	}

	f, err := forecaster.New(s.modelOptions())
	if err != nil {
		return nil, fmt.Errorf("unable to initialize forecaster, %w", err)
	}
	if err := f.Fit(t, y); err != nil {
		return nil, fmt.Errorf("unable to fit traffic series, %w", err)
	}

	res, err := f.Predict(horizon)
	if err != nil {
		return nil, fmt.Errorf("unable to predict traffic horizon, %w", err)
	}

	rows := make([]models.ForecastRow, 0, len(horizon))
	for i, month := range res.T {
		lower := int64(math.Round(res.Lower[i]))
		if lower < 0 {
			lower = 0
		}
		rows = append(rows, models.ForecastRow{
			Month:    month,
			Label:    month.Format(models.MonthLayout),
			Forecast: int64(math.Round(res.Forecast[i])),
			Lower:    lower,
			Upper:    int64(math.Round(res.Upper[i])),
		})
	}
	return rows, nil
}

// modelOptions configures the library for monthly data: yearly seasonality
// with three Fourier orders (under the Nyquist limit of six at twelve points
// per cycle), linear growth, and a 95% uncertainty band.
func (s *ForecastService) modelOptions() *forecaster.Options {
	return &forecaster.Options{
		SeriesOptions: &forecaster.SeriesOptions{
			ForecastOptions: &options.Options{
				Regularization: []float64{0.0},
				SeasonalityOptions: options.SeasonalityOptions{
					SeasonalityConfigs: []options.SeasonalityConfig{
						options.NewSeasonalityConfig("yearly", 365*24*time.Hour, 3),
					},
				},
				GrowthType: feature.GrowthLinear,
			},
		},
		UncertaintyOptions: &forecaster.UncertaintyOptions{
			ForecastOptions: &options.Options{
				Regularization: []float64{0.0},
				GrowthType:     feature.GrowthLinear,
			},
			ResidualWindow: 4,
			ResidualZscore: 1.96,
		},
	}
}
