package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	ghandlers "github.com/gorilla/handlers"

	"github.com/danielhkuo/codevault/cliparse"
	"github.com/danielhkuo/codevault/metrics"
	"github.com/danielhkuo/codevault/middleware"
	"github.com/danielhkuo/codevault/router"
	"github.com/danielhkuo/codevault/stego"
)

const shutdownTimeout = 10 * time.Second

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Filler pools, built-in unless a file is configured
	var fillers *stego.FillerPools
	if cfg.FillerFile != "" {
		fillers, err = stego.LoadFillerFile(cfg.FillerFile)
		if err != nil {
			slog.Error("filler pools failed to load", "path", cfg.FillerFile, "error", err)
			os.Exit(1)
		}
		slog.Info("Filler pools loaded", "path", cfg.FillerFile, "lines", len(fillers.Lines), "words", len(fillers.Words))
	}

	metrics.Bind()

	// Create router
	mux := router.NewRouter(cfg, fillers, nil)

	// Outermost first: recover, CORS, HTTP metrics, rate limit
	limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateBurst, cfg.IPHashSalt, nil)
	var handler http.Handler = limiter.Middleware(mux)
	handler = metrics.Instrument(handler)
	handler = middleware.CORS(handler)
	handler = ghandlers.RecoveryHandler(
		ghandlers.RecoveryLogger(slog.NewLogLogger(slog.Default().Handler(), slog.LevelError)),
		ghandlers.PrintRecoveryStack(true),
	)(handler)

	// Create server
	server := http.Server{
		Handler:           handler,
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("graceful shutdown failed", "error", err)
			server.Close()
		}
	}()

	// Start server
	slog.Info("Listening",
		"port", cfg.Port,
		"max_message", humanize.Comma(int64(cfg.MaxMessageLength)),
		"max_carrier", humanize.Comma(int64(cfg.MaxCarrierLength)),
		"rate_limit", cfg.RateLimit,
		"cache_size", cfg.AnalysisCacheSize,
	)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
