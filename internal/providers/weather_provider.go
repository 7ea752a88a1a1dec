package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"
)

const weatherSource = "weather"

// WeatherSnapshot holds the current conditions at the configured location.
type WeatherSnapshot struct {
	Temperature   float64
	Precipitation float64
	CloudCover    float64
	IsRaining     bool
}

type WeatherProvider interface {
	// FetchCurrent never fails; a nil snapshot means no weather data this cycle.
	FetchCurrent(ctx context.Context) *WeatherSnapshot
	GetHTTPClient() *http.Client
}

type openMeteoProvider struct {
	endpoint string
	client   *http.Client
	circuit  *gobreaker.CircuitBreaker
}

type OpenMeteoResponse struct {
	Current *struct {
		Temperature2m *float64 `json:"temperature_2m"`
		Precipitation *float64 `json:"precipitation"`
		CloudCover    *float64 `json:"cloud_cover"`
		Rain          *float64 `json:"rain"`
	} `json:"current"`
}

func NewWeatherProvider(baseURL string, latitude, longitude float64, timeout time.Duration) WeatherProvider {
	values := url.Values{}
	values.Set("latitude", strconv.FormatFloat(latitude, 'f', 4, 64))
	values.Set("longitude", strconv.FormatFloat(longitude, 'f', 4, 64))
	values.Set("current", "temperature_2m,precipitation,cloud_cover,rain")

	return &openMeteoProvider{
		endpoint: fmt.Sprintf("%s?%s", baseURL, values.Encode()),
		client: &http.Client{
			Timeout: timeout,
		},
		circuit: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "openmeteo",
			MaxRequests: 1,
			Interval:    10 * time.Minute,
			Timeout:     1 * time.Minute,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
			// a cycle abandoned by its caller says nothing about the weather source
			IsSuccessful: func(err error) bool {
				return err == nil || errors.Is(err, context.Canceled)
			},
		}),
	}
}

func (p *openMeteoProvider) FetchCurrent(ctx context.Context) *WeatherSnapshot {
	result, err := p.circuit.Execute(func() (interface{}, error) {
		return p.fetch(ctx)
	})
	if err != nil {
		log.Warn().Err(err).Str("source", weatherSource).Msg("weather unavailable, continuing without it")
		return nil
	}

	snapshot, ok := result.(*WeatherSnapshot)
	if !ok {
		return nil
	}
	return snapshot
}

func (p *openMeteoProvider) fetch(ctx context.Context) (*WeatherSnapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpoint, nil)
	if err != nil {
		return nil, &FetchError{Source: weatherSource, Err: err}
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, &FetchError{Source: weatherSource, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(weatherSource, resp)
	}

	var apiResp OpenMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("weather returned malformed JSON: %w", err)
	}

	current := apiResp.Current
	if current == nil || current.Temperature2m == nil || current.Precipitation == nil ||
		current.CloudCover == nil || current.Rain == nil {
		return nil, fmt.Errorf("weather response is missing current conditions")
	}

	return &WeatherSnapshot{
		Temperature:   *current.Temperature2m,
		Precipitation: *current.Precipitation,
		CloudCover:    *current.CloudCover,
		IsRaining:     *current.Rain > 0,
	}, nil
}

func (p *openMeteoProvider) GetHTTPClient() *http.Client {
	return p.client
}
