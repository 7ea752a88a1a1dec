package predictor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"
)

const (
	DateLayout = "2006-01-02"

	healthTimeout  = 5 * time.Second
	predictTimeout = 10 * time.Second

	// CallBudget is the longest a readiness check followed by a predict can take.
	CallBudget = healthTimeout + predictTimeout

	unavailableMessage = "Predictor service unavailable"
)

// Prediction is the forecast occupancy for one 15 minute slot.
type Prediction struct {
	Hour       int `json:"hour"`
	Minute     int `json:"minute"`
	Percentage int `json:"percentage"`
}

// Result is the outcome of a predict call. OK is false whenever the forecast
// could not be obtained; Error then carries the cause and Predictions is empty.
type Result struct {
	Date        string       `json:"date"`
	Weekday     int          `json:"weekday"`
	IsHoliday   bool         `json:"isHoliday"`
	HolidayName *string      `json:"holidayName"`
	Predictions []Prediction `json:"predictions"`
	Error       *string      `json:"error,omitempty"`
	OK          bool         `json:"-"`
}

// Empty builds the deterministic failure result for date.
func Empty(date time.Time, message string) Result {
	return Result{
		Date:        date.Format(DateLayout),
		Weekday:     int(date.Weekday()),
		IsHoliday:   false,
		HolidayName: nil,
		Predictions: []Prediction{},
		Error:       &message,
		OK:          false,
	}
}

type Predictor interface {
	IsReady(ctx context.Context) bool
	Predict(ctx context.Context, date time.Time) Result
}

type Client struct {
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

type healthResponse struct {
	ModelTrained *bool `json:"model_trained"`
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{},
		circuit: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "predictor",
			MaxRequests: 1,
			Interval:    5 * time.Minute,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 3
			},
		}),
	}
}

func (c *Client) IsReady(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return false
	}

	resp, err := c.client.Do(req)
	if err != nil {
		log.Debug().Err(err).Msg("predictor health probe failed")
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false
	}

	var health healthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return false
	}
	return health.ModelTrained != nil && *health.ModelTrained
}

func (c *Client) Predict(ctx context.Context, date time.Time) Result {
	ctx, cancel := context.WithTimeout(ctx, predictTimeout)
	defer cancel()

	out, err := c.circuit.Execute(func() (interface{}, error) {
		return c.predict(ctx, date)
	})
	if err != nil {
		log.Error().Err(err).Str("date", date.Format(DateLayout)).Msg("failed to fetch predictions")
		return Empty(date, unavailableMessage)
	}

	result := out.(Result)
	result.OK = true
	if result.Predictions == nil {
		result.Predictions = []Prediction{}
	}
	return result
}

func (c *Client) predict(ctx context.Context, date time.Time) (Result, error) {
	endpoint := fmt.Sprintf("%s/predict?date=%s", c.baseURL, url.QueryEscape(date.Format(DateLayout)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return Result{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("predictor returned status code: %d", resp.StatusCode)
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return Result{}, fmt.Errorf("predictor returned malformed JSON: %w", err)
	}
	if result.Error != nil && *result.Error != "" {
		return Result{}, fmt.Errorf("predictor error: %s", *result.Error)
	}
	return result, nil
}
