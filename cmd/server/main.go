package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"ulascansenturk/occupancy-service/config"
	"ulascansenturk/occupancy-service/internal/api/v1/handlers"
	"ulascansenturk/occupancy-service/internal/db/readings"
	"ulascansenturk/occupancy-service/internal/inmemorycache"
	"ulascansenturk/occupancy-service/internal/predictor"
	"ulascansenturk/occupancy-service/internal/providers"
	"ulascansenturk/occupancy-service/internal/scheduler"
	"ulascansenturk/occupancy-service/internal/service"
)

func main() {
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logLevel, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	log.Logger = zerolog.New(os.Stdout).
		Level(logLevel).
		With().
		Str("service_name", conf.ServiceName).
		Timestamp().
		Logger()

	ctx, mainCtxStop := context.WithCancel(context.Background())

	db, err := initializeDatabase(conf)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}

	location := conf.Location()
	repository := readings.NewRepository(db)

	occupancyProvider := providers.NewOccupancyProvider(conf.OccupancyAPIURL, conf.OccupancyTimeout)
	weatherProvider := providers.NewWeatherProvider(
		conf.WeatherAPIURL,
		conf.WeatherLatitude,
		conf.WeatherLongitude,
		conf.WeatherTimeout,
	)

	collector := service.NewCollector(occupancyProvider, weatherProvider, repository, location)
	aggregator := service.NewAggregator(repository, location)

	cacheProvider := inmemorycache.NewInMemoryCacheProvider(time.Minute)
	batcher := service.NewPredictionBatcher(
		predictor.NewClient(conf.PredictorURL),
		cacheProvider,
		conf.PredictionCacheTTL,
		conf.MaxQueueSize,
		conf.MaxWaitTime,
	)
	predictions := service.NewPredictionService(cacheProvider, batcher)

	collectionScheduler := scheduler.New(collector, location)
	if err := collectionScheduler.Start(conf.PollIntervalMinutes); err != nil {
		log.Fatal().Err(err).Msg("failed to start scheduler")
	}

	handler := handlers.NewHandler(aggregator, predictions, collector, collectionScheduler, conf.HTTPTimeoutDuration())

	httpServer := &http.Server{
		Addr:              conf.ServerAddress,
		Handler:           handler,
		ReadHeaderTimeout: conf.HTTPTimeoutDuration(),
	}

	handleSignals(ctx, mainCtxStop, func() {
		collectionScheduler.Stop()
		batcher.Shutdown()
		cacheProvider.Close()

		if shutdownErr := httpServer.Shutdown(ctx); shutdownErr != nil {
			log.Fatal().Err(shutdownErr).Msg("server shutdown failed")
		}
	})

	log.Info().
		Str("timezone", location.String()).
		Int("poll_interval_minutes", conf.PollIntervalMinutes).
		Msgf("started server on %s", conf.ServerAddress)

	serverErr := httpServer.ListenAndServe()
	if serverErr != nil && !errors.Is(serverErr, http.ErrServerClosed) {
		log.Err(serverErr).Msg("server stopped")
	}
	<-ctx.Done()
}

func initializeDatabase(config *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := readings.Migrate(db); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(3 * time.Minute)

	return db, nil
}

func handleSignals(ctx context.Context, cancelCtx context.CancelFunc, callback func()) {
	sig := make(chan os.Signal, 1)

	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	const shutdownDuration = 30 * time.Second

	go func() {
		<-sig
		log.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownDuration)

		go func() {
			<-shutdownCtx.Done()

			if shutdownCtx.Err() == context.DeadlineExceeded {
				panic("graceful shutdown timed out, forcing exit")
			}
		}()

		callback()

		cancel()
		cancelCtx()
	}()
}
