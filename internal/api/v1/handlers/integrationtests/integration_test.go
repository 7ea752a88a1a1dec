package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	pgTestContainers "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"ulascansenturk/occupancy-service/internal/api/v1/handlers"
	"ulascansenturk/occupancy-service/internal/db/readings"
	"ulascansenturk/occupancy-service/internal/inmemorycache"
	"ulascansenturk/occupancy-service/internal/mocks"
	"ulascansenturk/occupancy-service/internal/predictor"
	"ulascansenturk/occupancy-service/internal/providers"
	"ulascansenturk/occupancy-service/internal/service"
)

var (
	postgresContainer *pgTestContainers.PostgresContainer
	sharedDB          *gorm.DB
)

type testSetup struct {
	handler   *handlers.Handler
	occupancy *mocks.MockOccupancyProvider
	weather   *mocks.MockWeatherProvider
	predictor *mocks.MockPredictor
	batcher   service.PredictionBatcher
	cache     *inmemorycache.InMemoryCache
	clock     *fakeClock
	db        *gorm.DB
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

const (
	dbName     = "test_api_database"
	dbUser     = "test_user"
	dbPassword = "test_password"
)

func init() {
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

func SetupPostgres(t *testing.T) (*gorm.DB, func()) {
	if sharedDB != nil {
		err := sharedDB.Migrator().DropTable(&readings.UtilizationReading{})
		require.NoError(t, err)

		err = readings.Migrate(sharedDB)
		require.NoError(t, err)

		return sharedDB, func() {}
	}

	log.Info().Msg("Setting up new PostgreSQL container")

	ctx := context.Background()

	var err error
	postgresContainer, err = pgTestContainers.Run(ctx,
		"postgres:16-alpine",
		pgTestContainers.WithDatabase(dbName),
		pgTestContainers.WithUsername(dbUser),
		pgTestContainers.WithPassword(dbPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)

	host, err := postgresContainer.Host(ctx)
	require.NoError(t, err)

	endpoint, err := postgresContainer.Endpoint(ctx, "")
	require.NoError(t, err)

	parts := strings.Split(endpoint, ":")
	port := parts[len(parts)-1]

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, dbUser, dbPassword, dbName,
	)

	sharedDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	log.Info().Msgf("Connected to database: %s on %s:%s", dbName, host, port)

	err = readings.Migrate(sharedDB)
	require.NoError(t, err)

	return sharedDB, func() {
		if postgresContainer != nil {
			log.Info().Msg("Terminating PostgreSQL container")
			if err := postgresContainer.Terminate(context.Background()); err != nil {
				log.Error().Err(err).Msg("Failed to terminate PostgreSQL container")
			}
		}
	}
}

func setupTest(t *testing.T, location *time.Location) *testSetup {
	db, _ := SetupPostgres(t)

	clock := &fakeClock{}
	occupancy := mocks.NewMockOccupancyProvider(t)
	weather := mocks.NewMockWeatherProvider(t)
	predictorMock := mocks.NewMockPredictor(t)
	cache := inmemorycache.NewInMemoryCacheProvider(time.Minute)

	repository := readings.NewRepository(db)
	collector := service.NewCollector(occupancy, weather, repository, location, service.WithClock(clock.Now))
	aggregator := service.NewAggregator(repository, location, service.WithAggregatorClock(clock.Now))
	batcher := service.NewPredictionBatcher(predictorMock, cache, time.Minute, 10, 50*time.Millisecond)
	predictions := service.NewPredictionService(cache, batcher)

	handler := handlers.NewHandler(aggregator, predictions, collector, nil, 10*time.Second)

	return &testSetup{
		handler:   handler,
		occupancy: occupancy,
		weather:   weather,
		predictor: predictorMock,
		batcher:   batcher,
		cache:     cache,
		clock:     clock,
		db:        db,
	}
}

func (ts *testSetup) close() {
	ts.batcher.Shutdown()
	ts.cache.Close()
}

func (ts *testSetup) do(t *testing.T, method, target string, out interface{}) int {
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	ts.handler.ServeHTTP(w, req)
	if out != nil {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
	}
	return w.Code
}

func TestOccupancyService(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test needs docker")
	}

	location, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	db, cleanup := SetupPostgres(t)
	defer cleanup()

	t.Run("EmptyStore", func(t *testing.T) {
		ts := setupTest(t, location)
		defer ts.close()
		ts.clock.Set(time.Date(2026, 10, 19, 12, 0, 0, 0, location))

		var latest service.LatestView
		assert.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/api/current", &latest))
		assert.Nil(t, latest.Percentage)
		assert.Equal(t, "No data available yet", latest.Message)

		var hourly service.HourlyView
		assert.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/api/today", &hourly))
		assert.False(t, hourly.HasData)
		assert.Len(t, hourly.HourlyData, 24)

		var heatmap service.HeatmapView
		assert.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/api/heatmap", &heatmap))
		require.Len(t, heatmap.Data, 7)
		for _, day := range heatmap.Data {
			require.Len(t, day.Hours, 24)
			for _, cell := range day.Hours {
				assert.Nil(t, cell.AvgPercentage)
				assert.Equal(t, int64(0), cell.DataPoints)
			}
		}

		var dates service.AvailableDatesView
		assert.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/api/available-dates", &dates))
		assert.Equal(t, 0, dates.Count)
	})

	t.Run("CollectAndAggregate", func(t *testing.T) {
		ts := setupTest(t, location)
		defer ts.close()

		ts.weather.On("FetchCurrent", mock.Anything).
			Return(&providers.WeatherSnapshot{Temperature: 9.5, Precipitation: 0, CloudCover: 40, IsRaining: false})
		ts.occupancy.On("FetchCurrentSlot", mock.Anything).
			Return(providers.Slot{Percentage: 30, Level: "LOW", IsCurrent: true}, nil).Once()
		ts.occupancy.On("FetchCurrentSlot", mock.Anything).
			Return(providers.Slot{Percentage: 70, Level: "HIGH", IsCurrent: true}, nil).Once()
		ts.occupancy.On("FetchCurrentSlot", mock.Anything).
			Return(providers.Slot{Percentage: 50, Level: "MEDIUM", IsCurrent: true}, nil).Once()

		steps := []time.Time{
			time.Date(2026, 10, 19, 9, 5, 0, 0, location),
			time.Date(2026, 10, 19, 9, 50, 0, 0, location),
			time.Date(2026, 10, 19, 18, 20, 0, 0, location),
		}
		for _, at := range steps {
			ts.clock.Set(at)
			var result service.CollectionResult
			require.Equal(t, http.StatusOK, ts.do(t, http.MethodPost, "/api/collect", &result))
			require.True(t, result.Success)
			require.True(t, result.Weather)
		}

		var count int64
		require.NoError(t, db.Model(&readings.UtilizationReading{}).Count(&count).Error)
		assert.Equal(t, int64(3), count)

		var latest service.LatestView
		assert.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/api/current", &latest))
		require.NotNil(t, latest.Percentage)
		assert.Equal(t, 50, *latest.Percentage)
		assert.Equal(t, "MEDIUM", *latest.Level)

		var hourly service.HourlyView
		assert.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/api/today?date=2026-10-19", &hourly))
		assert.True(t, hourly.HasData)
		require.NotNil(t, hourly.HourlyData[9].Percentage)
		assert.Equal(t, 70, *hourly.HourlyData[9].Percentage)
		assert.Equal(t, 2, hourly.HourlyData[9].DataPoints)
		assert.Equal(t, 50, *hourly.HourlyData[18].Percentage)

		var raw service.RawDayView
		assert.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/api/today-raw", &raw))
		assert.True(t, raw.IsToday)
		require.Equal(t, 3, raw.Count)
		assert.Equal(t, "09:05", raw.Readings[0].Time)
		assert.Equal(t, "18:20", raw.Readings[2].Time)

		var heatmap service.HeatmapView
		assert.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/api/heatmap?weeks=1", &heatmap))
		cell := heatmap.Data[1].Hours[9]
		require.NotNil(t, cell.AvgPercentage)
		assert.Equal(t, 50.0, *cell.AvgPercentage)
		assert.Equal(t, 70, *cell.MaxPercentage)
		assert.Equal(t, 30, *cell.MinPercentage)
		assert.Equal(t, int64(2), cell.DataPoints)

		var dates service.AvailableDatesView
		assert.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/api/available-dates", &dates))
		require.Equal(t, 1, dates.Count)
		assert.Equal(t, "2026-10-19", dates.Dates[0].Date)
		assert.Equal(t, int64(3), dates.Dates[0].Count)
	})

	t.Run("AvailableDatesFollowLocalMidnight", func(t *testing.T) {
		ts := setupTest(t, location)
		defer ts.close()

		ts.weather.On("FetchCurrent", mock.Anything).Return(nil)
		ts.occupancy.On("FetchCurrentSlot", mock.Anything).
			Return(providers.Slot{Percentage: 40, Level: "MEDIUM", IsCurrent: true}, nil)

		steps := []time.Time{
			time.Date(2026, 10, 16, 12, 0, 0, 0, location),
			// 01:30 on the 18th in Berlin
			time.Date(2026, 10, 17, 23, 30, 0, 0, time.UTC),
			time.Date(2026, 10, 19, 8, 0, 0, 0, location),
			time.Date(2026, 10, 19, 21, 45, 0, 0, location),
		}
		for _, at := range steps {
			ts.clock.Set(at)
			var result service.CollectionResult
			require.Equal(t, http.StatusOK, ts.do(t, http.MethodPost, "/api/collect", &result))
			require.True(t, result.Success)
		}

		var dates service.AvailableDatesView
		assert.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/api/available-dates", &dates))
		require.Equal(t, 3, dates.Count)
		require.Len(t, dates.Dates, 3)
		assert.Equal(t, "2026-10-19", dates.Dates[0].Date)
		assert.Equal(t, int64(2), dates.Dates[0].Count)
		assert.Equal(t, "2026-10-18", dates.Dates[1].Date)
		assert.Equal(t, int64(1), dates.Dates[1].Count)
		assert.Equal(t, "2026-10-16", dates.Dates[2].Date)
		assert.Equal(t, int64(1), dates.Dates[2].Count)

		ts.clock.Set(time.Date(2026, 10, 19, 22, 0, 0, 0, location))
		var hourly service.HourlyView
		assert.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/api/today?date=2026-10-18", &hourly))
		assert.True(t, hourly.HasData)
		require.NotNil(t, hourly.HourlyData[1].Percentage)
		assert.Equal(t, 40, *hourly.HourlyData[1].Percentage)
	})

	t.Run("FailedCollectionWritesNothing", func(t *testing.T) {
		ts := setupTest(t, location)
		defer ts.close()
		ts.clock.Set(time.Date(2026, 10, 19, 10, 0, 0, 0, location))

		ts.weather.On("FetchCurrent", mock.Anything).Return(nil)
		ts.occupancy.On("FetchCurrentSlot", mock.Anything).
			Return(providers.Slot{}, fmt.Errorf("wrapped: %w", providers.ErrAmbiguousCurrentSlot)).Once()

		var result service.CollectionResult
		ts.do(t, http.MethodPost, "/api/collect", &result)
		assert.False(t, result.Success)

		var count int64
		require.NoError(t, db.Model(&readings.UtilizationReading{}).Count(&count).Error)
		assert.Equal(t, int64(0), count)
	})

	t.Run("PredictionsAreCoalescedAndCached", func(t *testing.T) {
		ts := setupTest(t, location)
		defer ts.close()
		ts.clock.Set(time.Date(2026, 10, 19, 10, 0, 0, 0, location))

		date := time.Date(2026, 10, 20, 0, 0, 0, 0, location)
		ts.predictor.On("IsReady", mock.Anything).Return(true).Once()
		ts.predictor.On("Predict", mock.Anything, mock.MatchedBy(func(d time.Time) bool { return d.Equal(date) })).
			Return(predictor.Result{
				Date:        "2026-10-20",
				Weekday:     2,
				Predictions: []predictor.Prediction{{Hour: 18, Minute: 15, Percentage: 66}},
				OK:          true,
			}).Once()

		var wg sync.WaitGroup
		wg.Add(3)
		for i := 0; i < 3; i++ {
			go func() {
				defer wg.Done()
				var result predictor.Result
				assert.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/api/predictions?date=2026-10-20", &result))
				assert.Len(t, result.Predictions, 1)
			}()
		}
		wg.Wait()

		var cached predictor.Result
		assert.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/api/predictions?date=2026-10-20", &cached))
		assert.Equal(t, 66, cached.Predictions[0].Percentage)
	})

	t.Run("PredictorNotReady", func(t *testing.T) {
		ts := setupTest(t, location)
		defer ts.close()
		ts.clock.Set(time.Date(2026, 10, 19, 10, 0, 0, 0, location))

		ts.predictor.On("IsReady", mock.Anything).Return(false).Once()

		var result predictor.Result
		assert.Equal(t, http.StatusServiceUnavailable, ts.do(t, http.MethodGet, "/api/predictions?date=2026-10-22", &result))
		assert.Empty(t, result.Predictions)
		require.NotNil(t, result.Error)
		ts.predictor.AssertNotCalled(t, "Predict", mock.Anything, mock.Anything)
	})
}
