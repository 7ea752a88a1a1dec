package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"ulascansenturk/occupancy-service/internal/db/readings"
)

const (
	dateLayout     = "2006-01-02"
	timeLabel      = "15:04"
	formattedDay   = "Monday, 2 January"
	DefaultWeeks   = 4
	hoursPerDay    = 24
	weekdaysInWeek = 7
)

// Aggregator derives the read views from stored readings. Calendar days and
// the heatmap window are evaluated in the configured location.
type Aggregator interface {
	Latest(ctx context.Context) (LatestView, error)
	Hourly(ctx context.Context, date time.Time) (HourlyView, error)
	RawDay(ctx context.Context, date time.Time) (RawDayView, error)
	Heatmap(ctx context.Context, weeks int) (HeatmapView, error)
	AvailableDates(ctx context.Context) (AvailableDatesView, error)
	// ParseDate parses YYYY-MM-DD in the configured location; empty means today.
	ParseDate(value string) (time.Time, error)
}

type AggregatorOption func(*aggregator)

func WithAggregatorClock(now func() time.Time) AggregatorOption {
	return func(a *aggregator) {
		a.now = now
	}
}

type aggregator struct {
	repo     readings.Repository
	location *time.Location
	now      func() time.Time
}

func NewAggregator(repo readings.Repository, location *time.Location, opts ...AggregatorOption) Aggregator {
	a := &aggregator{
		repo:     repo,
		location: location,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *aggregator) ParseDate(value string) (time.Time, error) {
	if value == "" {
		return a.today(), nil
	}
	date, err := time.ParseInLocation(dateLayout, value, a.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return date, nil
}

func (a *aggregator) Latest(ctx context.Context) (LatestView, error) {
	reading, err := a.repo.QueryLatest(ctx)
	if errors.Is(err, readings.ErrNoReadings) {
		return LatestView{Message: noDataMessage}, nil
	}
	if err != nil {
		return LatestView{}, err
	}

	percentage := reading.Percentage
	level := reading.Level
	lastUpdated := reading.RecordedAt.In(a.location)
	return LatestView{
		Percentage:  &percentage,
		Level:       &level,
		LastUpdated: &lastUpdated,
		Temperature: reading.Temperature,
		IsRaining:   reading.IsRaining,
	}, nil
}

func (a *aggregator) Hourly(ctx context.Context, date time.Time) (HourlyView, error) {
	start, end := a.dayBounds(date)
	rows, err := a.repo.QueryRange(ctx, start, end)
	if err != nil {
		return HourlyView{}, err
	}

	view := HourlyView{
		Date:       start.Format(dateLayout),
		HourlyData: make([]HourlyPoint, hoursPerDay),
		HasData:    len(rows) > 0,
	}
	for hour := range view.HourlyData {
		view.HourlyData[hour].Hour = hour
	}
	if !view.HasData {
		view.Message = noDataMessage
		return view, nil
	}

	for i := range rows {
		row := &rows[i]
		if row.Hour < 0 || row.Hour >= hoursPerDay {
			continue
		}
		point := &view.HourlyData[row.Hour]
		point.DataPoints++
		// strictly greater keeps the first row on ties
		if point.Percentage == nil || row.Percentage > *point.Percentage {
			percentage := row.Percentage
			level := row.Level
			point.Percentage = &percentage
			point.Level = &level
		}
	}
	return view, nil
}

func (a *aggregator) RawDay(ctx context.Context, date time.Time) (RawDayView, error) {
	start, end := a.dayBounds(date)
	rows, err := a.repo.QueryRange(ctx, start, end)
	if err != nil {
		return RawDayView{}, err
	}

	view := RawDayView{
		Date:          start.Format(dateLayout),
		DateFormatted: start.Format(formattedDay),
		IsToday:       start.Equal(a.today()),
		Readings:      make([]RawReading, 0, len(rows)),
		Count:         len(rows),
	}
	for _, row := range rows {
		local := row.RecordedAt.In(a.location)
		view.Readings = append(view.Readings, RawReading{
			Time:        local.Format(timeLabel),
			Timestamp:   local,
			Hour:        local.Hour(),
			Minute:      local.Minute(),
			Percentage:  row.Percentage,
			Level:       row.Level,
			Temperature: row.Temperature,
			IsRaining:   row.IsRaining,
		})
	}
	return view, nil
}

func (a *aggregator) Heatmap(ctx context.Context, weeks int) (HeatmapView, error) {
	if weeks < 1 {
		weeks = DefaultWeeks
	}
	now := a.now().In(a.location)
	cutoff := now.AddDate(0, 0, -weeks*7)

	stats, err := a.repo.AggregateByWeekdayHour(ctx, cutoff)
	if err != nil {
		return HeatmapView{}, err
	}

	view := HeatmapView{
		Weeks:     weeks,
		StartDate: cutoff.Format(dateLayout),
		EndDate:   now.Format(dateLayout),
		Data:      make([]HeatmapDay, weekdaysInWeek),
	}
	for weekday := range view.Data {
		day := &view.Data[weekday]
		day.Weekday = weekday
		day.WeekdayName = time.Weekday(weekday).String()
		day.Hours = make([]HeatmapCell, hoursPerDay)
		for hour := range day.Hours {
			day.Hours[hour].Hour = hour
		}
	}

	for _, bucket := range stats {
		if bucket.Weekday < 0 || bucket.Weekday >= weekdaysInWeek || bucket.Hour < 0 || bucket.Hour >= hoursPerDay {
			continue
		}
		avg := roundTenth(bucket.AvgPercentage)
		maxPercentage := bucket.MaxPercentage
		minPercentage := bucket.MinPercentage
		view.Data[bucket.Weekday].Hours[bucket.Hour] = HeatmapCell{
			Hour:          bucket.Hour,
			AvgPercentage: &avg,
			MaxPercentage: &maxPercentage,
			MinPercentage: &minPercentage,
			DataPoints:    bucket.DataPoints,
		}
	}
	return view, nil
}

func (a *aggregator) AvailableDates(ctx context.Context) (AvailableDatesView, error) {
	dates, err := a.repo.DistinctDates(ctx, a.location)
	if err != nil {
		return AvailableDatesView{}, err
	}
	if dates == nil {
		dates = []readings.DateCount{}
	}
	return AvailableDatesView{Dates: dates, Count: len(dates)}, nil
}

func (a *aggregator) today() time.Time {
	now := a.now().In(a.location)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, a.location)
}

// dayBounds returns local midnight of date and of the following day.
func (a *aggregator) dayBounds(date time.Time) (time.Time, time.Time) {
	local := date.In(a.location)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, a.location)
	return start, start.AddDate(0, 0, 1)
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
