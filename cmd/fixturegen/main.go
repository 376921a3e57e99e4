package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/rickgao/ledger-fixtures/internal/config"
	"github.com/rickgao/ledger-fixtures/internal/generator"
	"github.com/rickgao/ledger-fixtures/internal/version"
	"github.com/rickgao/ledger-fixtures/internal/writer"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	outPath := flag.String("out", "", "output file path (overrides config)")
	assetCount := flag.Int("assets", 0, "number of assets (overrides config)")
	accountCount := flag.Int("accounts", 0, "number of accounts (overrides config)")
	seed := flag.Int64("seed", 0, "RNG seed for reproducible output; 0 derives one from the clock")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)
	logger = logger.With("run_id", uuid.NewString())

	logger.Info("starting fixturegen",
		"version", version.Version,
		"commit", version.Commit,
	)

	// Load configuration
	var cfg *config.GeneratorConfig
	if *configPath != "" {
		var err error
		cfg, err = config.LoadAndValidate(*configPath)
		if err != nil {
			logger.Error("failed to load config", "error", err)
			os.Exit(1)
		}
	} else {
		cfg = config.Default()
	}

	// Flag overrides
	if *assetCount != 0 {
		cfg.Assets.Count = *assetCount
	}
	if *accountCount != 0 {
		cfg.Accounts.Count = *accountCount
	}
	if *outPath != "" {
		cfg.Output.Path = *outPath
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	runSeed := cfg.Seed
	if runSeed == 0 {
		runSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewPCG(uint64(runSeed), uint64(runSeed)))

	logger.Info("generating dataset",
		"assets", cfg.Assets.Count,
		"accounts", cfg.Accounts.Count,
		"seed", runSeed,
	)

	ds, err := generator.Generate(rng, generator.Params{
		AssetCount:   cfg.Assets.Count,
		AccountCount: cfg.Accounts.Count,
	})
	if err != nil {
		logger.Error("failed to generate dataset", "error", err)
		os.Exit(1)
	}

	bytes, err := writer.Save(ds, cfg.Output.Path)
	if err != nil {
		logger.Error("failed to write dataset", "error", err)
		os.Exit(1)
	}

	logger.Info("dataset written",
		"path", cfg.Output.Path,
		"bytes", bytes,
		"assets", len(ds.Assets),
		"accounts", len(ds.Accounts),
		"balances", len(ds.Assets)*len(ds.Accounts),
	)
	fmt.Printf("Test data saved to %s\n", cfg.Output.Path)
}
