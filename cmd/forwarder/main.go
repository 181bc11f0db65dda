package main

import (
	"context"
	"datachat"
	"datachat/internal/api/handler/endpoints"
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
	router, err := graceful.Default(graceful.WithAddr(cfg.ForwarderPort))
	if err != nil {
		panic(err)
	}
	defer stop()
	defer router.Close()

	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}))

	chat := pkg.NewOpenAIChat(cfg.OpenAIConfig.APIKey, cfg.OpenAIConfig.BaseURL, cfg.OpenAIConfig.Model, cfg.OpenAIConfig.Timeout)

	endpoints.RootHandler(router, cfg.StaticDir, "Prompt forwarder is running. POST a prompt to /query.")
	endpoints.ForwarderHandler(router, service.NewForwarderService(chat))

	datachat.Logger.Debug().Msgf("Starting forwarder on port %s (model %s)", cfg.ForwarderPort, chat.Model())
	if err = router.RunWithContext(ctx); err != nil && !errors.Is(err, context.Canceled) {
		datachat.Logger.Fatal().Msg(err.Error())
	}
}
