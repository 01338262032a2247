// Command flagserver is the standalone control-plane binary: it wires
// internal/flags' in-memory store into internal/flagserver's chi
// router and internal/metricsink's Prometheus registry, and serves them
// over net/http with a graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/rbergman/fretengine/internal/flags"
	"github.com/rbergman/fretengine/internal/flagserver"
	"github.com/rbergman/fretengine/internal/metricsink"
	"github.com/rbergman/fretengine/internal/obs"
)

func main() {
	addr := flag.String("addr", ":8080", "address to listen on")
	seedPath := flag.String("flags-seed", "", "optional flag-store seed YAML file")
	jsonLog := flag.Bool("json-log", false, "emit logs as JSON instead of console format")
	flag.Parse()

	obs.Configure(obs.DefaultLevel, *jsonLog)

	store := flags.NewStore()
	if *seedPath != "" {
		data, err := os.ReadFile(*seedPath)
		if err != nil {
			obs.L().Fatal().Err(err).Str("path", *seedPath).Msg("failed to read flags seed")
		}
		if err := flags.LoadSeed(store, data); err != nil {
			obs.L().Fatal().Err(err).Msg("failed to parse flags seed")
		}
	}

	// Registering the metricsink collectors on the default registry makes
	// them visible at /metrics; nothing in this binary feeds the sink
	// events, so they stay at zero here.
	_ = metricsink.New(prometheus.DefaultRegisterer)

	router := flagserver.New(store)

	srv := &http.Server{
		Addr:    *addr,
		Handler: router,
	}

	go func() {
		obs.L().Info().Str("addr", *addr).Msg("flagserver listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			obs.L().Fatal().Err(err).Msg("flagserver failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	obs.L().Info().Msg("flagserver shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		obs.L().Error().Err(err).Msg("flagserver shutdown error")
	}
}
