package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"ulascansenturk/occupancy-service/internal/db/readings"
	"ulascansenturk/occupancy-service/internal/providers"
	apperrors "ulascansenturk/occupancy-service/pkg/errors"
)

// CollectionResult reports one fetch-merge-persist cycle.
type CollectionResult struct {
	CycleID    string `json:"cycleId"`
	Success    bool   `json:"success"`
	Percentage *int   `json:"percentage,omitempty"`
	Level      string `json:"level,omitempty"`
	Weather    bool   `json:"weather"`
	Error      string `json:"error,omitempty"`
	Code       string `json:"code,omitempty"`
}

type Collector interface {
	CollectOnce(ctx context.Context) CollectionResult
}

type CollectorOption func(*collector)

// WithClock overrides the time source used to stamp readings.
func WithClock(now func() time.Time) CollectorOption {
	return func(c *collector) {
		c.now = now
	}
}

type collector struct {
	occupancy providers.OccupancyProvider
	weather   providers.WeatherProvider
	repo      readings.Repository
	location  *time.Location
	now       func() time.Time
}

func NewCollector(
	occupancy providers.OccupancyProvider,
	weather providers.WeatherProvider,
	repo readings.Repository,
	location *time.Location,
	opts ...CollectorOption,
) Collector {
	c := &collector{
		occupancy: occupancy,
		weather:   weather,
		repo:      repo,
		location:  location,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CollectOnce fetches occupancy and weather concurrently and writes one row.
// Concurrent calls are independent and each may write its own row.
func (c *collector) CollectOnce(ctx context.Context) CollectionResult {
	result := CollectionResult{CycleID: uuid.NewString()}
	logger := log.With().Str("cycle_id", result.CycleID).Logger()

	var (
		slot    providers.Slot
		weather *providers.WeatherSnapshot
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s, err := c.occupancy.FetchCurrentSlot(gctx)
		if err != nil {
			return err
		}
		slot = s
		return nil
	})
	g.Go(func() error {
		// weather is optional and never fails the group; it runs on the parent
		// context so an occupancy failure does not abort it
		weather = c.weather.FetchCurrent(ctx)
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Str("code", apperrors.CodeOf(err)).Msg("failed to fetch utilization")
		return c.fail(result, err)
	}

	now := c.now().In(c.location)
	reading := &readings.UtilizationReading{
		RecordedAt: now,
		Weekday:    int(now.Weekday()),
		Hour:       now.Hour(),
		Percentage: slot.Percentage,
		Level:      slot.Level,
	}
	if weather != nil {
		reading.Temperature = &weather.Temperature
		reading.Precipitation = &weather.Precipitation
		reading.CloudCover = &weather.CloudCover
		reading.IsRaining = &weather.IsRaining
	}

	if err := c.repo.Insert(ctx, reading); err != nil {
		logger.Error().Err(err).Msg("failed to store reading")
		return c.fail(result, err)
	}

	event := logger.Info().
		Int("percentage", slot.Percentage).
		Str("level", slot.Level).
		Int("weekday", reading.Weekday).
		Int("hour", reading.Hour)
	if weather != nil {
		event = event.Float64("temperature", weather.Temperature).Bool("raining", weather.IsRaining)
	} else {
		event = event.Bool("weather", false)
	}
	event.Msg("stored reading")

	percentage := slot.Percentage
	result.Success = true
	result.Percentage = &percentage
	result.Level = slot.Level
	result.Weather = weather != nil
	return result
}

func (c *collector) fail(result CollectionResult, err error) CollectionResult {
	result.Success = false
	result.Error = err.Error()
	result.Code = apperrors.CodeOf(err)
	return result
}
