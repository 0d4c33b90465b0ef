// questgen generates the quest plugin's category documents from subject lists.
//
// Usage:
//
//	go run ./cmd/questgen -config questgen.yaml -seed 1234
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lawnchairsociety/questgen/internal/config"
	"github.com/lawnchairsociety/questgen/internal/logger"
)

func main() {
	// Parse command-line flags
	configFile := flag.String("config", "questgen.yaml", "Path to generator config YAML file")
	envFile := flag.String("env", ".env", "Path to .env file with QUESTGEN_* overrides")
	listsDir := flag.String("lists", "", "Directory containing the subject lists (overrides config)")
	outputDir := flag.String("out", "", "Directory the quest documents are written to (overrides config)")
	seed := flag.Int64("seed", 0, "Generation seed (default: config value, or random based on current time)")
	reportPath := flag.String("report", "", "Write a spreadsheet report to this path")
	dbPath := flag.String("db", "", "Record the run in this SQLite catalog index")
	noValidate := flag.Bool("no-validate", false, "Skip schema validation of generated documents")
	flag.Parse()

	cfg, err := config.LoadConfig(*configFile, *envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Flags given on the command line win over file and environment
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "lists":
			cfg.Lists.Dir = *listsDir
		case "out":
			cfg.Output.Dir = *outputDir
		case "seed":
			cfg.Seed = *seed
		case "report":
			cfg.Report.Enabled = true
			cfg.Report.Path = *reportPath
		case "db":
			cfg.Database.Enabled = true
			cfg.Database.Driver = "sqlite"
			cfg.Database.SQLitePath = *dbPath
		case "no-validate":
			cfg.ValidateSchema = !*noValidate
		}
	})

	// Initialize logger first (before any logging)
	logConfig, err := logger.LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading logging config: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Initialize(logConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	summary, err := run(ctx, cfg)
	if err != nil {
		logger.Error("Generation failed", "error", err)
		stop()
		logger.Close()
		os.Exit(1)
	}

	for _, doc := range summary.Documents {
		logger.Debug("Document written", "name", doc.Name, "quests", doc.Records, "digest", doc.Digest)
	}
	logger.Always("Quest catalog generated",
		"seed", summary.Seed,
		"quests", summary.Quests,
		"documents", len(summary.Documents),
		"output", cfg.Output.Dir,
	)
}
