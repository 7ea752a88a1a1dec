package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"ulascansenturk/occupancy-service/internal/inmemorycache"
	"ulascansenturk/occupancy-service/internal/predictor"
)

var errBatcherClosed = errors.New("prediction batcher shut down")

type PredictionService interface {
	Predict(ctx context.Context, date time.Time) (predictor.Result, error)
}

type predictionService struct {
	cache   inmemorycache.Cache
	batcher PredictionBatcher
}

func NewPredictionService(cache inmemorycache.Cache, batcher PredictionBatcher) PredictionService {
	return &predictionService{
		cache:   cache,
		batcher: batcher,
	}
}

// Predict serves a cached forecast when one exists, otherwise joins the batch
// for date. A not-ready predictor yields the empty result and a NOT_READY error.
func (s *predictionService) Predict(ctx context.Context, date time.Time) (predictor.Result, error) {
	key := date.Format(predictor.DateLayout)

	cached, found, err := s.cache.Get(key)
	if err != nil {
		log.Warn().Err(err).Str("date", key).Msg("prediction cache lookup failed")
	}
	if found {
		return *cached, nil
	}

	responseChan, err := s.batcher.AddRequest(ctx, date)
	if err != nil {
		return predictor.Empty(date, err.Error()), err
	}

	select {
	case outcome, ok := <-responseChan:
		if !ok {
			return predictor.Empty(date, errBatcherClosed.Error()), errBatcherClosed
		}
		return outcome.Result, outcome.Err
	case <-ctx.Done():
		return predictor.Empty(date, ctx.Err().Error()), ctx.Err()
	}
}
