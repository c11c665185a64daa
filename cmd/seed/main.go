package main

import (
	"os"

	"log/slog"

	"fakebook/internal/config"
	"fakebook/internal/seed"
)

// Regenerates the data files with synthetic users, friendships, pending
// requests and posts. Counts come from FAKEBOOK_SEED_* env keys.
func main() {
	cfg, err := config.Load()
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	gen := seed.New(logger, cfg.DataDir, cfg.SeedUsers, cfg.SeedMaxPostsEach, cfg.SeedRandom)
	if err := gen.Run(); err != nil {
		logger.Error("seed failed", "err", err)
		os.Exit(1)
	}
	logger.Info("seed complete", "dir", cfg.DataDir)
}
