package main

import (
	"context"
	"datachat"
	"datachat/internal/api/handler/endpoints"
	"datachat/internal/api/handler/middleware"
	"datachat/internal/api/repo"
	"datachat/internal/api/service"
	"datachat/pkg"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/graceful"
	"github.com/gin-gonic/gin"
)

func main() {
	datachat.InitConfig(".env")
	cfg := datachat.GetConfig()
	gin.SetMode(gin.ReleaseMode)
	if cfg.Mode == "dev" {
		gin.SetMode(gin.DebugMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	router, err := graceful.Default(graceful.WithAddr(cfg.ApiPort))
	if err != nil {
		panic(err)
	}
	defer stop()
	defer router.Close()

	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", middleware.SessionHeader},
		ExposeHeaders: []string{"Content-Length", middleware.SessionHeader},
		MaxAge:        12 * time.Hour,
	}))

	publisher := newPublisher(cfg)
	defer publisher.Close()

	chat := pkg.NewOpenAIChat(cfg.OpenAIConfig.APIKey, cfg.OpenAIConfig.BaseURL, cfg.OpenAIConfig.Model, cfg.OpenAIConfig.Timeout)
	store := newTableStore(cfg)

	initAPI(router, cfg, service.NewTableService(store, publisher), service.NewQueryService(chat, store, publisher))

	datachat.Logger.Debug().Msgf("Starting visualizer on port %s (model %s, %s session store)", cfg.ApiPort, chat.Model(), cfg.SessionConfig.Store)
	if err = router.RunWithContext(ctx); err != nil && !errors.Is(err, context.Canceled) {
		datachat.Logger.Fatal().Msg(err.Error())
	}
}

func initAPI(router *graceful.Graceful, cfg datachat.AppConfig, tableService *service.TableService, queryService *service.QueryService) {
	endpoints.RootHandler(router, cfg.StaticDir, "Data visualization assistant is running. Upload a CSV to /upload-csv, then POST a prompt to /query.")
	endpoints.VisualizerHandler(router, tableService, queryService, cfg.SessionConfig.TTL)
}

func newTableStore(cfg datachat.AppConfig) repo.TableStore {
	if cfg.SessionConfig.Store == datachat.SessionStoreRedis {
		return repo.NewRedisTableStore(datachat.Redis, cfg.SessionConfig.TTL)
	}
	return repo.NewMemoryTableStore(cfg.SessionConfig.TTL)
}

func newPublisher(cfg datachat.AppConfig) pkg.EventPublisher {
	if cfg.NatsURL == "" {
		return pkg.NopPublisher{}
	}
	publisher, err := pkg.NewNATSPublisher(cfg.NatsURL)
	if err != nil {
		datachat.Logger.Warn().Err(err).Msg("Event publishing disabled")
		return pkg.NopPublisher{}
	}
	datachat.Logger.Info().Str("url", cfg.NatsURL).Msg("Publishing events to NATS")
	return publisher
}
