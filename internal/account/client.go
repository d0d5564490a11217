package account

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/compasshq/compass/internal/domain"
	"github.com/compasshq/compass/internal/logger"
	"github.com/compasshq/compass/internal/utils"
)

// Record is the wire shape returned by the remote account service.
type Record struct {
	ID          string    `json:"id"`
	Login       string    `json:"login"`
	Email       string    `json:"email"`
	CompanyName string    `json:"companyName"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Phone       string    `json:"phone"`
	Created     time.Time `json:"created"`
	Updated     time.Time `json:"updated"`
}

// Fetcher retrieves account records. It is injected so tests can substitute
// deterministic fakes without touching global state. Retry policy, if any,
// belongs behind this interface; the provider never retries.
type Fetcher interface {
	Fetch(ctx context.Context, path string) (*Record, error)
}

// HTTPFetcher is the production Fetcher, talking JSON over HTTP to the
// account service.
type HTTPFetcher struct {
	baseURL string
	client  *http.Client
	logger  logger.Logger
}

func NewHTTPFetcher(baseURL string, timeout time.Duration, log logger.Logger) *HTTPFetcher {
	return &HTTPFetcher{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  log,
	}
}

// Fetch performs one GET against the account service. Every failure mode
// (transport, non-200, bad payload) surfaces as a *domain.UpstreamError.
func (f *HTTPFetcher) Fetch(ctx context.Context, path string) (*Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+path, nil)
	if err != nil {
		return nil, &domain.UpstreamError{Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &domain.UpstreamError{Err: err}
	}
	defer utils.Close(resp.Body)

	if resp.StatusCode != http.StatusOK {
		f.logger.Warn("account service returned non-200",
			logger.String("path", path),
			logger.Int("status", resp.StatusCode))
		return nil, &domain.UpstreamError{Err: fmt.Errorf("account service returned %d", resp.StatusCode)}
	}

	var record Record
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return nil, &domain.UpstreamError{Err: fmt.Errorf("decode account record: %w", err)}
	}
	return &record, nil
}
