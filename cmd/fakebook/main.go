package main

import (
	"os"

	"log/slog"

	"fakebook/internal/cli"
	"fakebook/internal/config"
	"fakebook/internal/service"
	"fakebook/internal/store/textfile"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	logger := newLogger(cfg)

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		logger.Error("create data dir failed", "dir", cfg.DataDir, "err", err)
		os.Exit(1)
	}

	store := textfile.New(logger, cfg.DataDir)
	store.LoadAll()

	authSvc := &service.AuthService{Users: store}
	friendsSvc := &service.FriendsService{Users: store, Friendships: store}
	feedSvc := &service.FeedService{Store: store}
	usersSvc := &service.UsersService{Store: store}

	cli.New(os.Stdin, os.Stdout, authSvc, friendsSvc, feedSvc, usersSvc).Run()
}

func newLogger(cfg config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info", "":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.IsProd() {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
