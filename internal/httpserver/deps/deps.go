package deps

import (
	"time"

	"github.com/graphql-go/graphql"
	"github.com/redis/go-redis/v9"

	"github.com/compasshq/compass/internal/catalog"
	"github.com/compasshq/compass/internal/logger"
	"github.com/compasshq/compass/internal/metrics"
	"github.com/compasshq/compass/internal/session"
)

// Deps is everything the route registrars need, assembled once in app.New.
type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string

	Schema   graphql.Schema   // executable navigation schema
	Catalog  *catalog.Catalog // immutable navigation model
	Sessions session.Store    // token -> account id resolution

	RedisClient *redis.Client // nil when sessions are in-memory
	Metrics     *metrics.Metrics

	LoginURL   string // empty selects 401 mode for unauthenticated account queries
	CookieName string // session cookie read by the auth middleware
	TrustProxy bool

	RateLimitBurst  int // 0 disables rate limiting
	RateLimitPerMin int
	MetricsEnabled  bool
}
