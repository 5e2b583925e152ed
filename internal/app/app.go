package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gigledger/internal/catalog"
	"github.com/GlebRadaev/gigledger/internal/config"
	"github.com/GlebRadaev/gigledger/internal/handlers"
	"github.com/GlebRadaev/gigledger/internal/kafka"
	"github.com/GlebRadaev/gigledger/internal/metrics"
	"github.com/GlebRadaev/gigledger/internal/outbox"
	"github.com/GlebRadaev/gigledger/internal/pg"
	"github.com/GlebRadaev/gigledger/internal/repo"
	"github.com/GlebRadaev/gigledger/internal/service"
	"github.com/GlebRadaev/gigledger/pkg/auth"
	"github.com/GlebRadaev/gigledger/pkg/clients"
	"github.com/GlebRadaev/gigledger/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg       *config.Config
	api       *handlers.Handlers
	srv       *service.Services
	repo      *repo.Repositories
	relay     *outbox.Relay
	publisher *kafka.KafkaPublisher

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	conn := pg.New(pool)
	ledgerMetrics := metrics.New(prometheus.DefaultRegisterer)
	listings := catalog.New(cfg.CatalogAddress, clients.NewHTTPClient())

	a.cfg = cfg
	a.repo = repo.New(conn)
	a.srv = service.New(a.repo, listings, txManager, ledgerMetrics)
	a.api = handlers.New(a.srv, auth.NewJWTService(cfg.JWTSecret))
	a.publisher = kafka.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
	a.relay = outbox.New(cfg, a.repo.EventRepo, a.publisher, ledgerMetrics)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startOutboxRelay(ctx)
	a.closeOnShutdown(ctx, pool)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startOutboxRelay(ctx context.Context) {
	a.relay.Start(ctx)
}

// closeOnShutdown releases the broker writer and the pool once the relay has drained
// its in-flight tasks. Events whose publish was cut short stay unpublished and go out
// on the next start.
func (a *Application) closeOnShutdown(ctx context.Context, pool *pgxpool.Pool) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()
		<-a.relay.Done()

		if err := a.publisher.Close(); err != nil {
			zap.L().Error("failed to close kafka writer", zap.Error(err))
		}
		pool.Close()
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
