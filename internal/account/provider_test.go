package account

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compasshq/compass/internal/domain"
	"github.com/compasshq/compass/internal/logger"
	"github.com/compasshq/compass/internal/session"
)

type fakeFetcher struct {
	record *Record
	err    error
	calls  int
	path   string
}

func (f *fakeFetcher) Fetch(_ context.Context, path string) (*Record, error) {
	f.calls++
	f.path = path
	if f.err != nil {
		return nil, f.err
	}
	return f.record, nil
}

func testLogger() logger.Logger {
	return logger.New("error", false)
}

func TestProviderCurrent(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	fetcher := &fakeFetcher{record: &Record{
		ID:          "4fc1d638",
		Login:       "jdoe",
		Email:       "  JDoe@Example.com ",
		CompanyName: "Example Inc",
		FirstName:   "Jane",
		LastName:    "Doe",
		Phone:       "+1 555 0100",
		Created:     created,
		Updated:     created,
	}}
	provider := NewProvider(fetcher, testLogger())

	ctx := session.WithIdentity(context.Background(), "4fc1d638")
	acct, err := provider.Current(ctx)
	require.NoError(t, err)

	assert.Equal(t, "4fc1d638", acct.ID)
	assert.Equal(t, "jdoe", acct.Login)
	assert.Equal(t, domain.EmailHash("jdoe@example.com"), acct.EmailHash)
	assert.Equal(t, created, acct.Created)
	assert.Equal(t, "/accounts/4fc1d638", fetcher.path)
	assert.Equal(t, 1, fetcher.calls, "exactly one upstream call per invocation")
}

func TestProviderCurrentUnauthenticated(t *testing.T) {
	fetcher := &fakeFetcher{}
	provider := NewProvider(fetcher, testLogger())

	_, err := provider.Current(context.Background())
	require.Error(t, err)
	assert.True(t, domain.IsUnauthenticated(err))
	assert.Zero(t, fetcher.calls, "no upstream call without an identity")
}

func TestProviderCurrentUpstreamFailure(t *testing.T) {
	fetcher := &fakeFetcher{err: &domain.UpstreamError{Err: assert.AnError}}
	provider := NewProvider(fetcher, testLogger())

	ctx := session.WithIdentity(context.Background(), "4fc1d638")
	_, err := provider.Current(ctx)
	require.Error(t, err)
	assert.True(t, domain.IsUpstream(err))
}

func TestHTTPFetcher(t *testing.T) {
	record := Record{ID: "4fc1d638", Login: "jdoe", Email: "jdoe@example.com"}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts/4fc1d638", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(record)
	}))
	defer srv.Close()

	fetcher := NewHTTPFetcher(srv.URL+"/", time.Second, testLogger())
	got, err := fetcher.Fetch(context.Background(), "/accounts/4fc1d638")
	require.NoError(t, err)
	assert.Equal(t, "jdoe", got.Login)
}

func TestHTTPFetcherNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	fetcher := NewHTTPFetcher(srv.URL, time.Second, testLogger())
	_, err := fetcher.Fetch(context.Background(), "/accounts/4fc1d638")
	require.Error(t, err)
	assert.True(t, domain.IsUpstream(err))
}

func TestHTTPFetcherConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	fetcher := NewHTTPFetcher(srv.URL, time.Second, testLogger())
	_, err := fetcher.Fetch(context.Background(), "/accounts/any")
	require.Error(t, err)
	assert.True(t, domain.IsUpstream(err))
}
