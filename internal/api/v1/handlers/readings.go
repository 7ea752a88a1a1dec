package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"ulascansenturk/occupancy-service/internal/predictor"
	"ulascansenturk/occupancy-service/internal/service"
	apperrors "ulascansenturk/occupancy-service/pkg/errors"
)

var validate = validator.New()

// RunningReporter reports whether background collection is active.
type RunningReporter interface {
	IsRunning() bool
}

type Handler struct {
	aggregator  service.Aggregator
	predictions service.PredictionService
	collector   service.Collector
	scheduler   RunningReporter
	timeout     time.Duration
}

func NewHandler(
	aggregator service.Aggregator,
	predictions service.PredictionService,
	collector service.Collector,
	scheduler RunningReporter,
	timeout time.Duration,
) *Handler {
	return &Handler{
		aggregator:  aggregator,
		predictions: predictions,
		collector:   collector,
		scheduler:   scheduler,
		timeout:     timeout,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/health":
		h.only(http.MethodGet, h.Health)(w, r)
	case "/api/current":
		h.only(http.MethodGet, h.GetCurrent)(w, r)
	case "/api/today":
		h.only(http.MethodGet, h.GetHourly)(w, r)
	case "/api/today-raw":
		h.only(http.MethodGet, h.GetRawDay)(w, r)
	case "/api/heatmap":
		h.only(http.MethodGet, h.GetHeatmap)(w, r)
	case "/api/available-dates":
		h.only(http.MethodGet, h.GetAvailableDates)(w, r)
	case "/api/predictions":
		h.only(http.MethodGet, h.GetPredictions)(w, r)
	case "/api/collect":
		h.only(http.MethodPost, h.TriggerCollection)(w, r)
	default:
		respondWithError(w, http.StatusNotFound, "not found")
	}
}

func (h *Handler) only(method string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		next(w, r)
	}
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	running := false
	if h.scheduler != nil {
		running = h.scheduler.IsRunning()
	}
	respondWithJSON(w, http.StatusOK, HealthResponse{Status: "ok", SchedulerRunning: running})
}

func (h *Handler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	view, err := h.aggregator.Latest(ctx)
	if err != nil {
		h.fail(w, err, "failed to get current utilization")
		return
	}
	respondWithJSON(w, http.StatusOK, view)
}

func (h *Handler) GetHourly(w http.ResponseWriter, r *http.Request) {
	date, ok := h.parseDate(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	view, err := h.aggregator.Hourly(ctx, date)
	if err != nil {
		h.fail(w, err, "failed to get hourly utilization")
		return
	}
	respondWithJSON(w, http.StatusOK, view)
}

func (h *Handler) GetRawDay(w http.ResponseWriter, r *http.Request) {
	date, ok := h.parseDate(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	view, err := h.aggregator.RawDay(ctx, date)
	if err != nil {
		h.fail(w, err, "failed to get raw readings")
		return
	}
	respondWithJSON(w, http.StatusOK, view)
}

func (h *Handler) GetHeatmap(w http.ResponseWriter, r *http.Request) {
	query := heatmapQuery{Weeks: service.DefaultWeeks}
	if raw := r.URL.Query().Get("weeks"); raw != "" {
		weeks, err := strconv.Atoi(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "weeks must be an integer")
			return
		}
		query.Weeks = weeks
	}
	if err := validate.Struct(query); err != nil {
		respondWithError(w, http.StatusBadRequest, "weeks must be between 1 and 52")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	view, err := h.aggregator.Heatmap(ctx, query.Weeks)
	if err != nil {
		h.fail(w, err, "failed to build heatmap")
		return
	}
	respondWithJSON(w, http.StatusOK, view)
}

func (h *Handler) GetAvailableDates(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	view, err := h.aggregator.AvailableDates(ctx)
	if err != nil {
		h.fail(w, err, "failed to list available dates")
		return
	}
	respondWithJSON(w, http.StatusOK, view)
}

// GetPredictions answers 503 with the empty result while the predictor is not
// ready; any other gateway failure is a 200 carrying the result's error.
func (h *Handler) GetPredictions(w http.ResponseWriter, r *http.Request) {
	date, ok := h.parseDate(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	result, err := h.predictions.Predict(ctx, date)
	if err != nil {
		if apperrors.IsCode(err, apperrors.CodeNotReady) {
			respondWithJSON(w, http.StatusServiceUnavailable, result)
			return
		}
		log.Warn().Err(err).Str("date", date.Format(predictor.DateLayout)).Msg("prediction request degraded")
		if result.Error == nil {
			result = predictor.Empty(date, "Predictor service unavailable")
		}
	}
	respondWithJSON(w, http.StatusOK, result)
}

func (h *Handler) TriggerCollection(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	result := h.collector.CollectOnce(ctx)
	if !result.Success {
		respondWithJSON(w, statusFor(result.Code), result)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

func (h *Handler) parseDate(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	query := dateQuery{Date: r.URL.Query().Get("date")}
	if err := validate.Struct(query); err != nil {
		respondWithError(w, http.StatusBadRequest, "date must be formatted as YYYY-MM-DD")
		return time.Time{}, false
	}

	date, err := h.aggregator.ParseDate(query.Date)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return time.Time{}, false
	}
	return date, true
}

func (h *Handler) fail(w http.ResponseWriter, err error, message string) {
	log.Error().Err(err).Str("code", apperrors.CodeOf(err)).Msg(message)
	respondWithError(w, statusFor(apperrors.CodeOf(err)), message+": "+err.Error())
}
