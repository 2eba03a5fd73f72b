package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	papi "github.com/radieske/parlay-pricing-poc/internal/parlay-service/http"

	pcache "github.com/radieske/parlay-pricing-poc/internal/parlay-service/cache"
	kpub "github.com/radieske/parlay-pricing-poc/internal/parlay-service/producer"
	"github.com/radieske/parlay-pricing-poc/internal/parlay-service/repo"
	"github.com/radieske/parlay-pricing-poc/internal/parlay-service/ws"
	"github.com/radieske/parlay-pricing-poc/internal/pricing/correlation"
	"github.com/radieske/parlay-pricing-poc/internal/pricing/parlay"
	sharedcache "github.com/radieske/parlay-pricing-poc/internal/shared/cache"
	"github.com/radieske/parlay-pricing-poc/internal/shared/config"
	"github.com/radieske/parlay-pricing-poc/internal/shared/db"
	"github.com/radieske/parlay-pricing-poc/internal/shared/kafka"
	"github.com/radieske/parlay-pricing-poc/internal/shared/logger"
)

func main() {
	cfg := config.Load()
	log, err := logger.New(cfg.ServiceName, cfg.Env)
	if err != nil {
		panic(fmt.Errorf("logger init: %w", err))
	}
	defer log.Sync()

	log.Info("starting service", zap.String("service", cfg.ServiceName), zap.String("env", cfg.Env))

	// Postgres
	pg, err := db.ConnectPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()
	log.Info("postgres connected")

	// Redis
	redisClient, err := sharedcache.ConnectRedis(cfg.RedisAddr)
	if err != nil {
		log.Fatal("failed to connect redis", zap.Error(err))
	}
	defer redisClient.Close()
	log.Info("redis connected")

	// Kafka writer (topic parlay_quoted)
	writer := kafka.NewWriter(cfg.KafkaBrokers, cfg.TopicParlayQuoted)
	defer writer.Close()
	log.Info("kafka writer ready", zap.String("topic", cfg.TopicParlayQuoted))

	// deps
	engine := correlation.NewDefaultEngine()
	pricer := parlay.NewPricer(engine)
	repository := repo.NewPostgres(pg)
	quoteCache := pcache.New(redisClient, time.Duration(cfg.QuoteCacheTTLSeconds)*time.Second)
	publ := kpub.NewKafkaPublisher(writer, cfg.TopicParlayQuoted)

	// WebSocket hub alimentado pelo Redis Pub/Sub do quote-history-worker
	hub := ws.NewHub(func(r *http.Request) bool { return true })
	wsCtx, wsCancel := context.WithCancel(context.Background())
	defer wsCancel()
	ws.StartRedisSubscriber(wsCtx, redisClient, hub)

	// HTTP público
	api := &papi.API{
		Log:    log,
		Pricer: pricer,
		Engine: engine,
		Repo:   repository,
		Cache:  quoteCache,
		Publ:   publ,
		WS:     hub.HandleWS,
	}
	apiSrv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler: api.Router(),
	}

	// metrics/health
	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())
	metricsMux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := pg.PingContext(ctx); err != nil {
			http.Error(w, "postgres not healthy: "+err.Error(), http.StatusServiceUnavailable)
			return
		}
		if err := redisClient.Ping(ctx).Err(); err != nil {
			http.Error(w, "redis not healthy: "+err.Error(), http.StatusServiceUnavailable)
			return
		}

		start := time.Now()
		if err := kafkaWriteTest(ctx, writer); err != nil {
			log.Warn("kafka health check failed",
				zap.Error(err),
				zap.Duration("latency", time.Since(start)),
			)
			http.Error(w, "kafka not healthy: "+err.Error(), http.StatusServiceUnavailable)
			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	go func() {
		addr := fmt.Sprintf(":%s", cfg.MetricsPort)
		log.Info("metrics/health", zap.String("addr", addr))
		_ = http.ListenAndServe(addr, metricsMux)
	}()

	log.Info("parlay-service listening", zap.String("addr", fmt.Sprintf(":%s", cfg.HTTPPort)))
	if err := apiSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("api", zap.Error(err))
	}
}

func kafkaWriteTest(ctx context.Context, w *kafka.Writer) error {
	payload := []byte(`{"ping":"ok"}`)
	return kafka.WriteJSON(ctx, w, "healthcheck", payload)
}
