package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/fortuna/courtside/internal/aggregate"
	"github.com/fortuna/courtside/internal/api/rest"
	"github.com/fortuna/courtside/internal/cache"
	"github.com/fortuna/courtside/internal/chat"
	"github.com/fortuna/courtside/internal/publisher"
	"github.com/fortuna/courtside/internal/reconcile"
	"github.com/fortuna/courtside/internal/refresh"
	"github.com/fortuna/courtside/internal/upstream"
	"github.com/fortuna/courtside/internal/upstream/ergast"
	"github.com/fortuna/courtside/internal/upstream/espn"
	"github.com/fortuna/courtside/internal/upstream/oddsapi"
	"github.com/fortuna/courtside/internal/upstream/scrape"
	"github.com/fortuna/courtside/internal/upstream/social"
)

const (
	serviceName    = "courtside"
	serviceVersion = "1.0.0"
)

func main() {
	log.Printf("Starting %s v%s - Sports Data Aggregation Service", serviceName, serviceVersion)

	// Load .env if present, then environment
	if err := godotenv.Load(); err == nil {
		log.Println("✓ Loaded .env file")
	}
	config := loadConfig()

	// Upstream clients
	upstreamClient := upstream.NewClient()
	espnClient := espn.New(config.ESPNAPIBase, upstreamClient)

	aggService := aggregate.NewService(espnClient, aggregate.DefaultConfig())

	if config.OddsAPIKey != "" {
		aggService.WithOdds(oddsapi.New("", config.OddsAPIKey, upstreamClient))
		log.Println("✓ Odds enrichment enabled")
	} else {
		log.Println("⚠️  ODDS_API_KEY not set, games will be served without odds")
	}

	if config.TwitterToken != "" {
		aggService.WithSocial(social.New("", config.TwitterToken))
		log.Println("✓ Social feed enabled")
	} else {
		log.Println("⚠️  TWITTER_BEARER_TOKEN not set, social feed disabled")
	}

	aggService.WithErgast(ergast.New("", config.F1Season, upstreamClient))

	if config.NewsScrapeURL != "" {
		browser, err := scrape.NewBrowser()
		if err != nil {
			log.Printf("⚠️  Headless browser unavailable, news scrape fallback disabled: %v", err)
		} else {
			defer browser.Close()
			aggService.WithNewsFallback(scrape.NewNewsScraper(browser, config.NewsScrapeURL))
			log.Println("✓ News scrape fallback enabled")
		}
	}

	// Completed-games cache: Redis when configured, in-process otherwise
	var store reconcile.Store = reconcile.NewMemoryStore()
	var redisCache *cache.RedisCache
	if config.RedisURL != "" {
		var err error
		maxRetries := 10
		retryDelay := 2 * time.Second

		log.Println("Connecting to Redis...")
		for i := 0; i < maxRetries; i++ {
			redisCache, err = cache.NewRedisCache(config.RedisURL)
			if err == nil {
				break
			}
			if i < maxRetries-1 {
				log.Printf("Redis connection attempt %d/%d failed: %v (retrying in %v)", i+1, maxRetries, err, retryDelay)
				time.Sleep(retryDelay)
			}
		}
		if redisCache != nil {
			defer redisCache.Close()
			store = reconcile.NewRedisStore(redisCache, "")
			log.Println("✓ Connected to Redis, completed games persisted")
		} else {
			log.Printf("⚠️  Redis unavailable after %d attempts, using in-memory cache: %v", maxRetries, err)
		}
	} else {
		log.Println("⚠️  REDIS_URL not set, completed games cached in memory only")
	}

	reconciler := reconcile.New(store)

	// Live game polling
	refreshManager := refresh.NewManager(aggService)
	if redisCache != nil {
		refreshManager.WithPublisher(publisher.NewRedisStreamPublisher(redisCache.Client()))
		log.Println("✓ Live updates published to Redis streams")
	}
	defer refreshManager.StopAll()

	// Chat relay
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := chat.NewHub()
	go hub.Run(ctx)
	chatHandler := chat.NewHandler(hub)
	log.Println("✓ Chat relay started")

	// REST server carries the API and the chat endpoint on one port
	handler := rest.NewHandler(aggService, reconciler, refreshManager)
	if redisCache != nil {
		handler.WithHealthCheck(redisCache)
	}
	server := rest.NewServer(config.Port, handler, chatHandler)

	go func() {
		log.Printf("✓ Listening on :%s", config.Port)
		if err := server.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("✓ %s v%s started successfully", serviceName, serviceVersion)
	log.Printf("  REST API: http://0.0.0.0:%s/api", config.Port)
	log.Printf("  Chat:     ws://0.0.0.0:%s/ws/chat", config.Port)

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutting down gracefully...")

	cancel()
	refreshManager.StopAll()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Printf("%s stopped", serviceName)
}

type Config struct {
	Port          string
	RedisURL      string
	ESPNAPIBase   string
	OddsAPIKey    string
	TwitterToken  string
	F1Season      string
	NewsScrapeURL string
}

func loadConfig() Config {
	return Config{
		Port:          getEnv("PORT", "8080"),
		RedisURL:      getEnv("REDIS_URL", ""),
		ESPNAPIBase:   getEnv("ESPN_API_BASE", espn.BaseURL),
		OddsAPIKey:    getEnv("ODDS_API_KEY", ""),
		TwitterToken:  getEnv("TWITTER_BEARER_TOKEN", ""),
		F1Season:      getEnv("F1_SEASON", ""),
		NewsScrapeURL: getEnv("PWHL_NEWS_URL", "https://www.thepwhl.com/en/news"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
