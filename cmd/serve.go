package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/emergensys/internal/config"
	"github.com/shenikar/emergensys/internal/geocode"
	v1 "github.com/shenikar/emergensys/internal/handler/http/v1"
	"github.com/shenikar/emergensys/internal/repository"
	"github.com/shenikar/emergensys/internal/service"
	"github.com/shenikar/emergensys/internal/storage"
	"github.com/shenikar/emergensys/internal/stream"
	"github.com/shenikar/emergensys/internal/webhook"
	minioclient "github.com/shenikar/emergensys/pkg/minio"
	natsclient "github.com/shenikar/emergensys/pkg/nats"
	"github.com/shenikar/emergensys/pkg/postgres"
	redisclient "github.com/shenikar/emergensys/pkg/redis"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	_ "github.com/shenikar/emergensys/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	shutdownTimeout    = 5 * time.Second
	maxMultipartMemory = 32 << 20
)

var skipMigrations bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API, change stream subscriber and webhook worker",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := bootstrap()
		if err != nil {
			return err
		}
		return serve(cmd.Context(), cfg, log)
	},
}

func init() {
	serveCmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "do not apply migrations on startup")
}

func serve(ctx context.Context, cfg *config.Config, log *logrus.Logger) error {
	// Запуск миграций
	if !skipMigrations {
		log.Info("Running database migrations...")
		if _, err := postgres.Migrate(cfg.DatabaseURL, migrationsSource); err != nil {
			return err
		}
		log.Info("Database migrations applied successfully")
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		return err
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Объектное хранилище: без него заявки принимаются, вложения уходят в предупреждения
	var media service.MediaUploader
	minioClient, err := minioclient.NewMinioClient(ctx, cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL)
	if err != nil {
		log.WithError(err).Warn("Object storage unavailable, media uploads disabled")
	} else {
		media = storage.NewMediaStore(minioClient, cfg.MinioBucket, cfg.MinioPublicURL)
		log.Info("Successfully connected to object storage")
	}

	// Поток изменений: без него экземпляр видит только собственные записи
	var notifier *stream.Notifier
	var changeNotifier service.ChangeNotifier
	natsConn, err := natsclient.NewNATSConn(cfg.NATSURL, "emergensys", log)
	if err != nil {
		log.WithError(err).Warn("Change stream unavailable, running standalone")
	} else {
		defer natsConn.Drain()
		notifier = stream.NewNotifier(natsConn, cfg.NATSSubject, log)
		changeNotifier = notifier
		log.Info("Successfully connected to NATS")
	}

	geocoder := geocode.NewClient(cfg.GeocoderURL, cfg.GeocoderUserAgent, cfg.GeocoderTimeout, cfg.GeocodeCacheTTL)

	// Инициализация издателя и воркера вебхуков
	webhookPublisher := webhook.NewRedisWebhookPublisher(redisClient)
	webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg)

	// Инициализация репозиториев и сервисов
	incidentRepo := repository.NewIncidentRepository(dbpool, redisClient, cfg.SnapshotCacheTTL)
	incidentService, err := service.NewIncidentService(incidentRepo, media, geocoder, changeNotifier, webhookPublisher, log, cfg)
	if err != nil {
		return err
	}

	// Первичная загрузка панели
	if snap, err := incidentService.Refresh(ctx); err != nil {
		log.WithError(err).Error("Initial incident load failed, board starts empty")
	} else {
		log.WithField("count", len(snap.Incidents)).Info("Incident board loaded")
	}

	if notifier != nil {
		unsubscribe, err := notifier.Subscribe(func(event stream.ChangeEvent) {
			incidentService.HandleChange(ctx, event)
		})
		if err != nil {
			return err
		}
		defer func() { _ = unsubscribe() }()
	}

	// Инициализация хэндлеров
	handler := v1.NewHandler(incidentService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	router.MaxMultipartMemory = maxMultipartMemory
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler: router,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infof("HTTP server started on port %s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error starting HTTP server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return webhookWorker.Run(gctx)
	})
	g.Go(func() error {
		return geocoder.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Received shutdown signal, shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("Server gracefully stopped")
	return nil
}
