package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"lumina-path/internal/api/telegram"
	"lumina-path/internal/api/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web form and, if TELEGRAM_TOKEN is set, the Telegram bot",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	c, err := buildContainer()
	if err != nil {
		return err
	}

	server, err := web.NewServer(web.Options{
		Addr:           cfg.HTTPAddr,
		MaxUploadBytes: cfg.MaxUploadBytes(),
		CORSOrigins:    cfg.CORSOrigins,
	}, c.AnalysisService, logger)
	if err != nil {
		return err
	}

	var bot *telegram.Bot
	if cfg.TelegramToken != "" {
		bot, err = telegram.NewBot(cfg.TelegramToken, c.AnalysisService, logger)
		if err != nil {
			return err
		}
	} else {
		logger.Info("TELEGRAM_TOKEN is not set, bot disabled")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Run(ctx)
	})
	if bot != nil {
		g.Go(func() error {
			return bot.Run(ctx)
		})
	}

	return g.Wait()
}
