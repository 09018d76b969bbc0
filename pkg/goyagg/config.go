package goyagg

import (
	"flag"
	"fmt"
	"os"

	"github.com/caarlos0/env/v6"
	"github.com/gorilla/mux"
	"github.com/goydb/goyagg/internal/adapter/docs"
	"github.com/goydb/goyagg/internal/adapter/search"
	"github.com/goydb/goyagg/internal/catalogue"
	"github.com/goydb/goyagg/internal/handler"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Config struct {
	ListenAddress string `env:"GOYAGG_LISTEN_ADDRESS" envDefault:":7070"`
	LogLevel      string `env:"GOYAGG_LOG_LEVEL" envDefault:"info"`
	SearchLimit   int    `env:"GOYAGG_SEARCH_LIMIT" envDefault:"10"`
	// Run names an example to print instead of serving http.
	Run string `env:"GOYAGG_RUN"`
}

func NewConfig() (*Config, error) {
	var cfg Config
	err := env.Parse(&cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ParseFlags overrides the environment with command line flags.
func (c *Config) ParseFlags() {
	c.parseFlags(flag.CommandLine, os.Args[1:]) // nolint: errcheck
}

func (c *Config) parseFlags(fs *flag.FlagSet, args []string) error {
	fs.StringVar(&c.ListenAddress, "addr", c.ListenAddress, "address to listen on")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
	fs.IntVar(&c.SearchLimit, "search-limit", c.SearchLimit, "default number of search hits")
	fs.StringVar(&c.Run, "run", c.Run, "print the result of the named example and exit")
	return fs.Parse(args)
}

func (c *Config) Validate() error {
	if c.SearchLimit <= 0 {
		return fmt.Errorf("search limit must be positive, got %d", c.SearchLimit)
	}
	_, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return nil
}

// Level returns the configured log level, info if it is invalid.
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		return zerolog.InfoLevel
	}
	return level
}

func (c *Config) Build() (*Goyagg, error) {
	err := c.Validate()
	if err != nil {
		return nil, err
	}

	registry := catalogue.Default()
	idx, err := search.NewIndex(registry.Infos())
	if err != nil {
		return nil, fmt.Errorf("search index: %w", err)
	}
	n, err := idx.Count()
	if err != nil {
		idx.Close()
		return nil, fmt.Errorf("search index: %w", err)
	}
	log.Debug().Uint64("examples", n).Msg("catalogue indexed")

	r := mux.NewRouter()
	err = handler.Router{
		Registry:    registry,
		Search:      idx,
		Collections: docs.Fixtures{},
		SearchLimit: c.SearchLimit,
	}.Build(r)
	if err != nil {
		idx.Close()
		return nil, err
	}

	return &Goyagg{
		Registry: registry,
		Search:   idx,
		Handler:  r,
	}, nil
}
