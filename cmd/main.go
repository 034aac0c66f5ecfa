package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/shenikar/relief_coordination_system/internal/config"
	v1 "github.com/shenikar/relief_coordination_system/internal/handler/http/v1"
	"github.com/shenikar/relief_coordination_system/internal/hierarchy"
	"github.com/shenikar/relief_coordination_system/internal/lock"
	"github.com/shenikar/relief_coordination_system/internal/repository"
	"github.com/shenikar/relief_coordination_system/internal/repository/memory"
	"github.com/shenikar/relief_coordination_system/internal/service"
	"github.com/shenikar/relief_coordination_system/internal/webhook"
	"github.com/shenikar/relief_coordination_system/pkg/logger"
	"github.com/shenikar/relief_coordination_system/pkg/postgres"
	redisclient "github.com/shenikar/relief_coordination_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/relief_coordination_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Relief Coordination System API
// @version 1.0
// @description NDMA / PDMA / District relief coordination: SOS intake, missing persons, case tracking and resource allocation.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(cfg.MigrationsPath, migrationURL)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// storage - репозитории и инфраструктура выбранного драйвера
type storage struct {
	directory   *hierarchy.Directory
	stock       service.StockRepository
	allocations service.AllocationRepository
	sos         service.SOSRepository
	missing     service.MissingPersonRepository
	tracking    service.TrackingRepository
	badgeCache  service.BadgeCache
	locker      service.Locker
	publisher   webhook.Publisher
	closers     []func()
}

func (s *storage) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

// newPostgresStorage подключает PostgreSQL и Redis; справочник органов читается из бд
func newPostgresStorage(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*storage, *redis.Client, error) {
	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		return nil, nil, err
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		dbpool.Close()
		return nil, nil, err
	}
	log.Info("Successfully connected to Redis")

	authorities, err := repository.NewAuthorityRepository(dbpool).ListAuthorities(ctx)
	if err != nil {
		dbpool.Close()
		_ = redisClient.Close()
		return nil, nil, err
	}
	directory, err := hierarchy.New(authorities)
	if err != nil {
		dbpool.Close()
		_ = redisClient.Close()
		return nil, nil, fmt.Errorf("invalid authority tree: %w", err)
	}

	return &storage{
		directory:   directory,
		stock:       repository.NewStockRepository(dbpool),
		allocations: repository.NewAllocationRepository(dbpool),
		sos:         repository.NewSOSRepository(dbpool),
		missing:     repository.NewMissingPersonRepository(dbpool),
		tracking:    repository.NewTrackingRepository(dbpool),
		badgeCache:  repository.NewBadgeCache(redisClient),
		locker:      lock.NewRedisLocker(redisClient, cfg.LockWait, cfg.LockTTL),
		publisher:   webhook.NewRedisPublisher(redisClient),
		closers: []func(){
			dbpool.Close,
			func() { _ = redisClient.Close() },
		},
	}, redisClient, nil
}

// newMemoryStorage - всё в памяти процесса, без Redis; события только пишутся в лог
func newMemoryStorage(log *logrus.Logger, cfg *config.Config) *storage {
	log.Warn("STORAGE_DRIVER=memory: state is lost on restart")
	return &storage{
		directory:   hierarchy.MustDefault(),
		stock:       memory.NewStockStore(),
		allocations: memory.NewAllocationStore(),
		sos:         memory.NewSOSStore(),
		missing:     memory.NewMissingPersonStore(),
		tracking:    memory.NewTrackingStore(),
		locker:      lock.NewLocalLocker(cfg.LockWait),
		publisher:   webhook.NewLogPublisher(log),
	}
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var store *storage
	switch cfg.StorageDriver {
	case config.StorageMemory:
		store = newMemoryStorage(log, cfg)
	default:
		var redisClient *redis.Client
		store, redisClient, err = newPostgresStorage(ctx, cfg, log)
		if err != nil {
			log.Fatalf("Failed to initialize storage: %v", err)
		}
		// Инициализация и запуск воркера вебхуков
		webhook.NewWorker(redisClient, log, cfg).Start(ctx)
	}
	defer store.Close()

	// Инициализация сервисов
	tracking := service.NewTrackingRegistry(store.tracking, log)
	ledger := service.NewStockLedger(store.stock, store.directory, log, cfg)
	allocations := service.NewAllocationService(store.allocations, ledger, store.directory, store.locker, log, store.publisher)
	sos := service.NewSOSService(store.sos, tracking, store.directory, store.locker, log, store.publisher)
	missing := service.NewMissingPersonService(store.missing, tracking, store.directory, store.locker, log, store.publisher)
	lookup := service.NewCaseLookupService(tracking, store.sos, store.missing, store.directory, log)
	badges := service.NewBadgeService(allocations, sos, ledger, store.directory, store.badgeCache, log, cfg)

	// Инициализация хэндлеров
	handler := v1.NewHandler(v1.Services{
		SOS:         sos,
		Missing:     missing,
		Lookup:      lookup,
		Allocations: allocations,
		Ledger:      ledger,
		Badges:      badges,
		Authorities: store.directory,
	}, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	router.Use(v1.MetricsMiddleware())
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Метрики Prometheus и Swagger UI
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.WithField("storage", cfg.StorageDriver).Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	// останавливаем воркер вебхуков до закрытия соединений
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
