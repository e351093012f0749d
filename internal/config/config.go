// Package config reads server settings from flags, falling back to the
// environment and then to defaults.
package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/benbeisheim/robchess/internal/engine"
)

type Config struct {
	Addr         string
	AllowOrigins string
	LogLevel     log.Level
	DatabaseDSN  string
	Search       engine.Config
}

func Default() Config {
	return Config{
		Addr:         ":3000",
		AllowOrigins: "http://localhost:5173",
		LogLevel:     log.InfoLevel,
		Search:       engine.DefaultConfig(),
	}
}

// Load parses args (without the program name). Flags win over environment
// variables, which win over defaults. lookup is normally os.LookupEnv.
func Load(name string, args []string, lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup("ROBCHESS_ADDR"); ok {
		cfg.Addr = v
	}
	if v, ok := lookup("ROBCHESS_ORIGINS"); ok {
		cfg.AllowOrigins = v
	}
	if v, ok := lookup("PGDATABASE"); ok && v != "" {
		cfg.DatabaseDSN = fmt.Sprintf("dbname=%s", v)
	}
	if v, ok := lookup("ROBCHESS_DSN"); ok {
		cfg.DatabaseDSN = v
	}
	level := cfg.LogLevel.String()
	if v, ok := lookup("ROBCHESS_LOG_LEVEL"); ok {
		level = v
	}
	for key, dst := range map[string]*int{
		"ROBCHESS_MIN_DEPTH": &cfg.Search.MinDepth,
		"ROBCHESS_MAX_DEPTH": &cfg.Search.MaxDepth,
	} {
		if v, ok := lookup(key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return cfg, fmt.Errorf("%s: %w", key, err)
			}
			*dst = n
		}
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	fs.StringVar(&cfg.AllowOrigins, "origins", cfg.AllowOrigins, "comma separated CORS origins")
	fs.StringVar(&cfg.DatabaseDSN, "dsn", cfg.DatabaseDSN, "postgres connection string; games are kept in memory when empty")
	fs.StringVar(&level, "log-level", level, "debug, info, warn, error or fatal")
	fs.IntVar(&cfg.Search.MinDepth, "min-depth", cfg.Search.MinDepth, "first iterative deepening depth")
	fs.IntVar(&cfg.Search.MaxDepth, "max-depth", cfg.Search.MaxDepth, "last iterative deepening depth")
	fs.BoolVar(&cfg.Search.Pruning, "pruning", cfg.Search.Pruning, "alpha-beta pruning")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	lvl, err := log.ParseLevel(level)
	if err != nil {
		return cfg, err
	}
	cfg.LogLevel = lvl

	if err := cfg.Search.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// FromOS loads the configuration of the running process.
func FromOS() (Config, error) {
	return Load(os.Args[0], os.Args[1:], os.LookupEnv)
}

// Origins splits AllowOrigins for the websocket origin check.
func (c Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
