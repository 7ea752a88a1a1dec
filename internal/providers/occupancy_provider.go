package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	apperrors "ulascansenturk/occupancy-service/pkg/errors"
)

const occupancySource = "occupancy"

var (
	ErrNoCurrentSlot        = errors.New("no current slot found in API response")
	ErrAmbiguousCurrentSlot = errors.New("more than one current slot in API response")
)

// Slot is one time window reported by the occupancy source.
type Slot struct {
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	Percentage int    `json:"percentage"`
	Level      string `json:"level"`
	IsCurrent  bool   `json:"isCurrent"`
}

type UtilizationResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Items     []Slot `json:"items"`
}

type OccupancyProvider interface {
	FetchCurrentSlot(ctx context.Context) (Slot, error)
	GetHTTPClient() *http.Client
}

type occupancyProvider struct {
	url    string
	client *http.Client
}

func NewOccupancyProvider(url string, timeout time.Duration) OccupancyProvider {
	return &occupancyProvider{
		url: url,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (p *occupancyProvider) FetchCurrentSlot(ctx context.Context) (Slot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return Slot{}, apperrors.Wrap(apperrors.CodeTransport, "build occupancy request", &FetchError{Source: occupancySource, Err: err})
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return Slot{}, apperrors.Wrap(apperrors.CodeTransport, "fetch occupancy", &FetchError{Source: occupancySource, Err: err})
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Slot{}, apperrors.Wrap(apperrors.CodeTransport, "fetch occupancy", statusError(occupancySource, resp))
	}

	var apiResp UtilizationResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return Slot{}, apperrors.Wrap(apperrors.CodeTransport, "occupancy returned malformed JSON", &FetchError{Source: occupancySource, Err: err})
	}

	return currentSlot(apiResp.Items)
}

// currentSlot enforces the source contract: exactly one item flagged current,
// carrying a percentage in [0,100].
func currentSlot(items []Slot) (Slot, error) {
	var (
		found Slot
		count int
	)
	for _, item := range items {
		if item.IsCurrent {
			found = item
			count++
		}
	}

	switch {
	case count == 0:
		return Slot{}, apperrors.Wrap(apperrors.CodeDataContract, "select current slot", ErrNoCurrentSlot)
	case count > 1:
		return Slot{}, apperrors.Wrap(apperrors.CodeDataContract, "select current slot", ErrAmbiguousCurrentSlot)
	case found.Percentage < 0 || found.Percentage > 100:
		return Slot{}, apperrors.Wrap(apperrors.CodeDataContract, fmt.Sprintf("current slot percentage %d outside [0,100]", found.Percentage), nil)
	}
	return found, nil
}

func (p *occupancyProvider) GetHTTPClient() *http.Client {
	return p.client
}
