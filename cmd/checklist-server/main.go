package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/XiaoConstantine/checklist-go/internal/server"
	"github.com/XiaoConstantine/checklist-go/pkg/checklist"
	"github.com/XiaoConstantine/checklist-go/pkg/config"
	"github.com/XiaoConstantine/checklist-go/pkg/logging"
	"github.com/XiaoConstantine/checklist-go/pkg/tools"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	outputs := []logging.Output{logging.NewConsoleOutput(true, logging.WithColor(true))}
	if cfg.Logging.File != "" {
		fileOutput, err := logging.NewFileOutput(cfg.Logging.File)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
			os.Exit(1)
		}
		outputs = append(outputs, fileOutput)
	}
	logger := logging.NewLogger(logging.Config{
		Severity: logging.ParseSeverity(cfg.Logging.Level),
		Outputs:  outputs,
	})
	logging.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog, err := checklist.CatalogForLocale(cfg.Checklist.Locale)
	if err != nil {
		logger.Fatal(ctx, "failed to load catalog: %v", err)
	}
	generator := checklist.NewGenerator(catalog, cfg.Checklist.GeneratorOptions())

	registry := tools.NewInMemoryToolRegistry()
	if err := registry.Register(tools.NewChecklistTool(generator)); err != nil {
		logger.Fatal(ctx, "failed to register checklist tool: %v", err)
	}

	srv := server.New(cfg, registry, logger)
	if err := srv.Run(ctx); err != nil {
		logger.Fatal(ctx, "server exited: %v", err)
	}
}
