package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"ulascansenturk/occupancy-service/internal/db/readings"
	"ulascansenturk/occupancy-service/internal/mocks"
	"ulascansenturk/occupancy-service/internal/service"
	apperrors "ulascansenturk/occupancy-service/pkg/errors"
)

type AggregatorTestSuite struct {
	suite.Suite
	repo       *mocks.MockRepository
	location   *time.Location
	now        time.Time
	aggregator service.Aggregator
	ctx        context.Context
}

func (s *AggregatorTestSuite) SetupTest() {
	var err error
	s.location, err = time.LoadLocation("Europe/Berlin")
	s.Require().NoError(err)

	// Monday 19 October 2026, 14:05 local
	s.now = time.Date(2026, 10, 19, 14, 5, 0, 0, s.location)
	s.repo = mocks.NewMockRepository(s.T())
	s.aggregator = service.NewAggregator(s.repo, s.location,
		service.WithAggregatorClock(func() time.Time { return s.now }))
	s.ctx = context.Background()
}

func (s *AggregatorTestSuite) at(hour, minute int) time.Time {
	return time.Date(2026, 10, 19, hour, minute, 0, 0, s.location).UTC()
}

func (s *AggregatorTestSuite) dayRange(year int, month time.Month, day int) (interface{}, interface{}) {
	start := time.Date(year, month, day, 0, 0, 0, 0, s.location)
	end := start.AddDate(0, 0, 1)
	return mock.MatchedBy(func(t time.Time) bool { return t.Equal(start) }),
		mock.MatchedBy(func(t time.Time) bool { return t.Equal(end) })
}

func intPtr(v int) *int { return &v }

func (s *AggregatorTestSuite) TestLatest() {
	s.Run("Returns the most recent reading", func() {
		temperature := 11.0
		s.repo.On("QueryLatest", mock.Anything).Return(&readings.UtilizationReading{
			RecordedAt:  s.at(14, 0),
			Percentage:  64,
			Level:       "HIGH",
			Temperature: &temperature,
		}, nil).Once()

		view, err := s.aggregator.Latest(s.ctx)

		s.Require().NoError(err)
		s.Require().NotNil(view.Percentage)
		s.Equal(64, *view.Percentage)
		s.Equal("HIGH", *view.Level)
		s.True(view.LastUpdated.Equal(s.at(14, 0)))
		s.Equal(&temperature, view.Temperature)
		s.Empty(view.Message)
	})

	s.Run("Reports no data on an empty store", func() {
		s.repo.On("QueryLatest", mock.Anything).Return(nil, readings.ErrNoReadings).Once()

		view, err := s.aggregator.Latest(s.ctx)

		s.Require().NoError(err)
		s.Nil(view.Percentage)
		s.Nil(view.Level)
		s.Nil(view.LastUpdated)
		s.Equal("No data available yet", view.Message)
	})

	s.Run("Surfaces storage failures", func() {
		s.repo.On("QueryLatest", mock.Anything).
			Return(nil, apperrors.Wrap(apperrors.CodeStorage, "failed to query latest reading", errors.New("connection reset"))).Once()

		_, err := s.aggregator.Latest(s.ctx)

		s.True(apperrors.IsCode(err, apperrors.CodeStorage))
	})
}

func (s *AggregatorTestSuite) TestHourly() {
	s.Run("Keeps the max per hour and the first level on ties", func() {
		start, end := s.dayRange(2026, time.October, 19)
		s.repo.On("QueryRange", mock.Anything, start, end).Return([]readings.UtilizationReading{
			{RecordedAt: s.at(9, 0), Hour: 9, Percentage: 30, Level: "LOW"},
			{RecordedAt: s.at(9, 15), Hour: 9, Percentage: 55, Level: "MEDIUM"},
			{RecordedAt: s.at(9, 30), Hour: 9, Percentage: 55, Level: "HIGH"},
			{RecordedAt: s.at(10, 0), Hour: 10, Percentage: 20, Level: "LOW"},
		}, nil).Once()

		view, err := s.aggregator.Hourly(s.ctx, s.now)

		s.Require().NoError(err)
		s.True(view.HasData)
		s.Equal("2026-10-19", view.Date)
		s.Require().Len(view.HourlyData, 24)

		nine := view.HourlyData[9]
		s.Equal(9, nine.Hour)
		s.Equal(intPtr(55), nine.Percentage)
		s.Equal("MEDIUM", *nine.Level)
		s.Equal(3, nine.DataPoints)

		s.Equal(20, *view.HourlyData[10].Percentage)
		s.Equal(1, view.HourlyData[10].DataPoints)

		s.Nil(view.HourlyData[0].Percentage)
		s.Nil(view.HourlyData[0].Level)
		s.Equal(0, view.HourlyData[0].DataPoints)
		s.Equal(23, view.HourlyData[23].Hour)
	})

	s.Run("Counts rows per hour", func() {
		start, end := s.dayRange(2026, time.October, 19)
		s.repo.On("QueryRange", mock.Anything, start, end).Return([]readings.UtilizationReading{
			{RecordedAt: s.at(9, 10), Hour: 9, Percentage: 40, Level: "MEDIUM"},
			{RecordedAt: s.at(9, 40), Hour: 9, Percentage: 65, Level: "HIGH"},
			{RecordedAt: s.at(14, 0), Hour: 14, Percentage: 20, Level: "LOW"},
		}, nil).Once()

		view, err := s.aggregator.Hourly(s.ctx, s.now)

		s.Require().NoError(err)
		for _, point := range view.HourlyData {
			switch point.Hour {
			case 9:
				s.Equal(intPtr(65), point.Percentage)
				s.Equal(2, point.DataPoints)
			case 14:
				s.Equal(intPtr(20), point.Percentage)
				s.Equal(1, point.DataPoints)
			default:
				s.Nil(point.Percentage)
				s.Equal(0, point.DataPoints)
			}
		}
	})

	s.Run("Reports an explicit no data state for an empty day", func() {
		start, end := s.dayRange(2026, time.October, 12)
		s.repo.On("QueryRange", mock.Anything, start, end).Return([]readings.UtilizationReading{}, nil).Once()

		date, err := s.aggregator.ParseDate("2026-10-12")
		s.Require().NoError(err)

		view, err := s.aggregator.Hourly(s.ctx, date)

		s.Require().NoError(err)
		s.False(view.HasData)
		s.Equal("No data available yet", view.Message)
		s.Len(view.HourlyData, 24)
	})

	s.Run("Surfaces storage failures", func() {
		s.repo.On("QueryRange", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, apperrors.Wrap(apperrors.CodeStorage, "failed to query readings", errors.New("timeout"))).Once()

		_, err := s.aggregator.Hourly(s.ctx, s.now)

		s.True(apperrors.IsCode(err, apperrors.CodeStorage))
	})
}

func (s *AggregatorTestSuite) TestRawDay() {
	s.Run("Labels readings in local time", func() {
		raining := false
		start, end := s.dayRange(2026, time.October, 19)
		s.repo.On("QueryRange", mock.Anything, start, end).Return([]readings.UtilizationReading{
			{RecordedAt: s.at(6, 1), Hour: 6, Percentage: 4, Level: "LOW"},
			{RecordedAt: s.at(13, 47), Hour: 13, Percentage: 61, Level: "HIGH", IsRaining: &raining},
		}, nil).Once()

		view, err := s.aggregator.RawDay(s.ctx, s.now)

		s.Require().NoError(err)
		s.Equal("2026-10-19", view.Date)
		s.Equal("Monday, 19 October", view.DateFormatted)
		s.True(view.IsToday)
		s.Equal(2, view.Count)
		s.Require().Len(view.Readings, 2)

		s.Equal("06:01", view.Readings[0].Time)
		s.Equal(6, view.Readings[0].Hour)
		s.Equal(1, view.Readings[0].Minute)

		s.Equal("13:47", view.Readings[1].Time)
		s.Equal(47, view.Readings[1].Minute)
		s.Equal(&raining, view.Readings[1].IsRaining)
	})

	s.Run("Past days are not today and may be empty", func() {
		start, end := s.dayRange(2026, time.October, 18)
		s.repo.On("QueryRange", mock.Anything, start, end).Return(nil, nil).Once()

		date, err := s.aggregator.ParseDate("2026-10-18")
		s.Require().NoError(err)

		view, err := s.aggregator.RawDay(s.ctx, date)

		s.Require().NoError(err)
		s.False(view.IsToday)
		s.Equal(0, view.Count)
		s.NotNil(view.Readings)
	})
}

func (s *AggregatorTestSuite) TestHeatmap() {
	s.Run("Always returns a full week of hours", func() {
		cutoff := s.now.AddDate(0, 0, -28)
		s.repo.On("AggregateByWeekdayHour", mock.Anything, mock.MatchedBy(func(t time.Time) bool {
			return t.Equal(cutoff)
		})).Return([]readings.BucketStats{
			{Weekday: 1, Hour: 9, AvgPercentage: 52.46, MaxPercentage: 65, MinPercentage: 40, DataPoints: 2},
			{Weekday: 6, Hour: 23, AvgPercentage: 7, MaxPercentage: 7, MinPercentage: 7, DataPoints: 1},
		}, nil).Once()

		view, err := s.aggregator.Heatmap(s.ctx, 4)

		s.Require().NoError(err)
		s.Equal(4, view.Weeks)
		s.Equal("2026-09-21", view.StartDate)
		s.Equal("2026-10-19", view.EndDate)
		s.Require().Len(view.Data, 7)

		cells := 0
		for weekday, day := range view.Data {
			s.Equal(weekday, day.Weekday)
			s.Len(day.Hours, 24)
			cells += len(day.Hours)
		}
		s.Equal(168, cells)
		s.Equal("Sunday", view.Data[0].WeekdayName)
		s.Equal("Saturday", view.Data[6].WeekdayName)

		cell := view.Data[1].Hours[9]
		s.Require().NotNil(cell.AvgPercentage)
		s.Equal(52.5, *cell.AvgPercentage)
		s.Equal(65, *cell.MaxPercentage)
		s.Equal(40, *cell.MinPercentage)
		s.Equal(int64(2), cell.DataPoints)

		empty := view.Data[0].Hours[0]
		s.Nil(empty.AvgPercentage)
		s.Nil(empty.MaxPercentage)
		s.Nil(empty.MinPercentage)
		s.Equal(int64(0), empty.DataPoints)
	})

	s.Run("Defaults to four weeks", func() {
		s.repo.On("AggregateByWeekdayHour", mock.Anything, mock.Anything).Return(nil, nil).Once()

		view, err := s.aggregator.Heatmap(s.ctx, 0)

		s.Require().NoError(err)
		s.Equal(service.DefaultWeeks, view.Weeks)
		s.Len(view.Data, 7)
	})
}

func (s *AggregatorTestSuite) TestAvailableDates() {
	s.Run("Lists dates newest first", func() {
		dates := []readings.DateCount{{Date: "2026-10-19", Count: 3}, {Date: "2026-10-17", Count: 80}}
		s.repo.On("DistinctDates", mock.Anything, s.location).Return(dates, nil).Once()

		view, err := s.aggregator.AvailableDates(s.ctx)

		s.Require().NoError(err)
		s.Equal(dates, view.Dates)
		s.Equal(2, view.Count)
	})

	s.Run("Empty store yields an empty list", func() {
		s.repo.On("DistinctDates", mock.Anything, s.location).Return(nil, nil).Once()

		view, err := s.aggregator.AvailableDates(s.ctx)

		s.Require().NoError(err)
		s.NotNil(view.Dates)
		s.Equal(0, view.Count)
	})
}

func (s *AggregatorTestSuite) TestParseDate() {
	s.Run("Empty value means today", func() {
		date, err := s.aggregator.ParseDate("")

		s.Require().NoError(err)
		s.True(date.Equal(time.Date(2026, 10, 19, 0, 0, 0, 0, s.location)))
	})

	s.Run("Rejects malformed dates", func() {
		_, err := s.aggregator.ParseDate("19.10.2026")

		s.Error(err)
	})
}

func TestAggregatorSuite(t *testing.T) {
	suite.Run(t, new(AggregatorTestSuite))
}
