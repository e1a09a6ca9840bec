package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/irikhenry/topbreeze/internal/api"
	"github.com/irikhenry/topbreeze/internal/catalog"
	"github.com/irikhenry/topbreeze/internal/config"
	"github.com/irikhenry/topbreeze/internal/notify"
	"github.com/irikhenry/topbreeze/internal/order"
	"github.com/irikhenry/topbreeze/internal/session"
)

func main() {
	// Logger
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	log.Info().
		Str("addr", cfg.ListenAddr).
		Str("contact", cfg.WhatsAppContact).
		Dur("session_ttl", cfg.SessionTTL).
		Msg("starting storefront")

	cat := catalog.Default()
	formatter := order.NewFormatter(cfg.WhatsAppContact)

	var publisher notify.Publisher = notify.NopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		publisher = notify.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		log.Info().Strs("brokers", cfg.KafkaBrokers).Str("topic", cfg.KafkaTopic).Msg("hand-off publishing enabled")
	}
	defer publisher.Close()

	// The server cannot open a browser tab; handing the link back to the
	// client is the real open. The opener records that the hand-off left
	// this system.
	opener := order.OpenerFunc(func(url string) {
		log.Info().Str("url", url).Msg("order link handed off")
	})

	sessions := session.NewManager(cat, opener, cfg.SubmitDebounce, cfg.SessionTTL)
	defer sessions.Close()

	tokens := session.NewTokenService(cfg.SessionSecret, cfg.SessionTTL)

	router := api.NewRouter(api.RouterConfig{
		Handlers:       api.NewHandlers(cat, formatter, publisher),
		Tokens:         tokens,
		Sessions:       sessions,
		AllowedOrigins: cfg.AllowedOrigins,
		WebDir:         cfg.WebDir,
	})

	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", cfg.ListenAddr).Msg("server started")
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Warn().Msg("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}
