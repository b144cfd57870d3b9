package main

import "time"

// Store drivers for stale profile data.
const (
	storeDriverBolt  = "bolt"
	storeDriverRedis = "redis"
	storeDriverNone  = "none"
)

// Config is the container for app configuration
type Config struct {
	// LogLevel - logrus level name
	LogLevel string `default:"info"`

	// HTTPServerAddress - listen address for http server
	HTTPServerAddress string `default:"0.0.0.0:8080"`

	// HTTPProfileServerAddress - listen address for profiler http server. If empty, profiler server is disabled
	HTTPProfileServerAddress string `default:""`

	// GRPCServerAddress - listen address for grpc server. If empty, grpc server is disabled
	GRPCServerAddress string `default:"0.0.0.0:9090"`

	// ServiceResponseTimeout - timeout for service execution
	ServiceResponseTimeout time.Duration `default:"30s"`

	// GithubAPIAddress - address for github api with protocol
	GithubAPIAddress string `default:"https://api.github.com"`

	// GithubAPIToken - auth token for github graphql api (required)
	GithubAPIToken string `default:"" envconfig:"GITHUB_TOKEN"`

	// GithubAPIRateLimit - max frequency for github api calls
	GithubAPIRateLimit float64 `default:"1"`

	// GithubClientCacheSize - maximum number of profiles in memory cache
	GithubClientCacheSize int `default:"10000"`

	// GithubClientCacheTTL - maximum lifetime for memory cache entries
	GithubClientCacheTTL time.Duration `default:"10m"`

	// StoreDriver - stale data store: bolt, redis or none
	StoreDriver string `default:"bolt"`

	// GithubDBPath - filepath for bolt db data
	GithubDBPath string `default:"./github.data"`

	// GithubDBBucketName - bolt db bucket name, also used as redis key prefix
	GithubDBBucketName string `default:"github"`

	// RedisAddress - redis server address, used with redis store driver
	RedisAddress string `default:"localhost:6379"`

	// GithubDBDataTTL - maximum lifetime for staled data in db
	GithubDBDataTTL time.Duration `default:"8h"`

	// GithubDBDataRefreshTTL - maximum lifetime for staled data to be queued for refresh
	GithubDBDataRefreshTTL time.Duration `default:"1h"`

	// ClientRateLimit - max number of api requests per minute for a single client ip
	ClientRateLimit int `default:"30"`

	// ClientRateBurst - max burst of api requests for a single client ip
	ClientRateBurst int `default:"30"`

	// ClientLimiterSize - max number of tracked client ips
	ClientLimiterSize int `default:"10000"`

	// TrustProxyHeaders - take client ip for rate limiting from X-Forwarded-For / X-Real-IP headers.
	// Enable only behind a reverse proxy that sets them
	TrustProxyHeaders bool `default:"false"`

	// CardCacheMaxAge - browser cache lifetime for cards
	CardCacheMaxAge time.Duration `default:"10m"`
}
