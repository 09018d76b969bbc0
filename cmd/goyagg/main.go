package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/goydb/goyagg/pkg/goyagg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := goyagg.NewConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	cfg.ParseFlags()
	zerolog.SetGlobalLevel(cfg.Level())

	g, err := cfg.Build()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build")
	}
	defer g.Close()

	if cfg.Run != "" {
		result, err := g.Registry.Run(context.Background(), cfg.Run)
		if err != nil {
			log.Fatal().Err(err).Msg("example failed")
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			log.Fatal().Err(err).Msg("failed to print result")
		}
		return
	}

	loggedRouter := handlers.LoggingHandler(os.Stdout, g.Handler)

	log.Info().Str("addr", cfg.ListenAddress).Msg("Listening...")
	err = http.ListenAndServe(cfg.ListenAddress, loggedRouter)
	if err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
