package main

import (
	"context"
	"fmt"
	netHttp "net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/m-zajac/ghcard/internal/adapter/github"
	"github.com/m-zajac/ghcard/internal/api/grpc"
	"github.com/m-zajac/ghcard/internal/api/http"
	"github.com/m-zajac/ghcard/internal/api/http/limiter"
	"github.com/m-zajac/ghcard/internal/app"
	"github.com/m-zajac/ghcard/internal/card"
	"github.com/m-zajac/ghcard/internal/database"
	"github.com/sirupsen/logrus"
)

func main() {
	l := logrus.New()
	l.Level = logrus.InfoLevel

	// .env is optional, real environment wins.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		l.Fatalf("couldn't load .env file: %v", err)
	}

	var conf Config
	if err := envconfig.Process("", &conf); err != nil {
		l.Fatalf("couldn't parse config: %v", err)
	}
	level, err := logrus.ParseLevel(conf.LogLevel)
	if err != nil {
		l.Fatalf("invalid log level: %v", err)
	}
	l.Level = level

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpClient := &netHttp.Client{
		Timeout: 30 * time.Second,
	}
	limitedHTTPClient := limiter.NewHTTPDoer(
		httpClient,
		conf.GithubAPIRateLimit,
	)

	var profileClient app.ProfileClient = github.NewClient(
		limitedHTTPClient,
		conf.GithubAPIAddress,
		conf.GithubAPIToken,
	)

	kvStore, closeStore, err := newKVStore(ctx, conf)
	if err != nil {
		l.Fatalf("couldn't create kv store: %v", err)
	}
	defer closeStore()

	if kvStore != nil {
		githubStaleDataClient, err := github.NewClientWithStaleData(
			profileClient,
			kvStore,
			conf.GithubDBDataTTL,
			conf.GithubDBDataRefreshTTL,
			l.WithField("component", "githubStaleDataClient"),
		)
		if err != nil {
			l.Fatalf("couldn't create github db client: %v", err)
		}
		githubStaleDataClient.RunScheduler()
		defer githubStaleDataClient.Close()

		profileClient = githubStaleDataClient
	}

	githubCachedClient, err := github.NewCachedClient(
		profileClient,
		conf.GithubClientCacheSize,
		conf.GithubClientCacheTTL,
	)
	if err != nil {
		l.Fatalf("couldn't create github client cache: %v", err)
	}

	service := app.NewService(
		githubCachedClient,
		card.NewRenderer(),
		conf.ServiceResponseTimeout,
	)

	clientLimiter, err := limiter.NewClientLimiter(
		conf.ClientRateLimit,
		time.Minute,
		conf.ClientRateBurst,
		conf.ClientLimiterSize,
	)
	if err != nil {
		l.Fatalf("couldn't create client limiter: %v", err)
	}

	mux := http.NewMux(
		service,
		http.MuxConfig{
			Timeout:    conf.ServiceResponseTimeout + 5*time.Second,
			CardMaxAge: conf.CardCacheMaxAge,
			Limiter:    clientLimiter,
			CacheLen:   githubCachedClient.Len,

			TrustProxyHeaders: conf.TrustProxyHeaders,
		},
		l.WithField("component", "mux"),
	)
	server := http.NewServer(
		conf.HTTPServerAddress,
		conf.HTTPProfileServerAddress,
		mux,
		l.WithField("component", "httpServer"),
	)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.Run(ctx); err != nil {
			l.Errorf("http server failed: %v", err)
			stop()
		}
	}()

	if conf.GRPCServerAddress != "" {
		grpcService := grpc.NewService(service, l.WithField("component", "grpcService"))
		grpcServer := grpc.NewServer(
			grpcService,
			conf.GRPCServerAddress,
			l.WithField("component", "grpcServer"),
		)

		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := grpcServer.Run(ctx); err != nil {
				l.Errorf("grpc server failed: %v", err)
				stop()
			}
		}()
	}

	wg.Wait()
}

// newKVStore creates stale data store for configured driver.
// Returns nil store for "none" driver.
func newKVStore(ctx context.Context, conf Config) (github.KVStore, func(), error) {
	switch conf.StoreDriver {
	case storeDriverBolt:
		store, err := database.NewBoltKVStore(conf.GithubDBPath, conf.GithubDBBucketName)
		if err != nil {
			return nil, nil, fmt.Errorf("creating bolt kv store: %w", err)
		}
		return store, func() { store.Close() }, nil
	case storeDriverRedis:
		store, err := database.NewRedisKVStore(ctx, conf.RedisAddress, conf.GithubDBBucketName+"/", conf.GithubDBDataTTL)
		if err != nil {
			return nil, nil, fmt.Errorf("creating redis kv store: %w", err)
		}
		return store, func() { store.Close() }, nil
	case storeDriverNone:
		return nil, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", conf.StoreDriver)
	}
}
