package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"blogsphere/internal/adapter/bolt"
	"blogsphere/internal/adapter/memory"
	"blogsphere/internal/adapter/postgres"
	"blogsphere/internal/adapter/sqlite"
	"blogsphere/internal/app"
	"blogsphere/internal/cli"
	"blogsphere/internal/config"
	"blogsphere/internal/domain"
	"blogsphere/internal/logger"
	"blogsphere/internal/password"
	"blogsphere/internal/store"

	"github.com/rs/zerolog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("config: %v", err)
	}
	log := logger.New(cfg.Log, nil)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, cfg, log, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, cfg config.Config, log zerolog.Logger, args []string, stdout, stderr io.Writer) int {
	kv, closeKV, err := openKV(cfg.Store)
	if err != nil {
		log.Error().Err(err).Str("store", cfg.Store.Backend).Msg("open store")
		cli.PrintError(stderr, err)
		return 1
	}
	defer func() {
		if err := closeKV(); err != nil {
			log.Warn().Err(err).Msg("close store")
		}
	}()

	st, err := store.Load(ctx, kv, time.Now())
	if err != nil {
		log.Error().Err(err).Msg("load store")
		cli.PrintError(stderr, err)
		return 1
	}

	hasher, err := password.NewBcrypt(cfg.BcryptCost)
	if err != nil {
		cli.PrintError(stderr, err)
		return 1
	}

	a := app.New(st, hasher, log, nil)
	root := cli.NewRootCmd(a)
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		cli.PrintError(stderr, err)
		return 1
	}
	if err := a.Flush(ctx); err != nil {
		log.Error().Err(err).Msg("flush")
		cli.PrintError(stderr, err)
		return 1
	}
	return 0
}

// openKV opens the configured backend and returns it with its closer.
func openKV(cfg config.StoreConfig) (domain.KVStore, func() error, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return memory.New(), func() error { return nil }, nil
	case config.BackendBolt:
		s, err := bolt.Open(cfg.BoltPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open bolt store: %w", err)
		}
		return s, s.Close, nil
	case config.BackendSQLite:
		s, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return s, s.Close, nil
	case config.BackendPostgres:
		db, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres store: %w", err)
		}
		return db, db.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store %q", cfg.Backend)
	}
}
