package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"dashboard-customization/internal/adapters/cli"
	"dashboard-customization/internal/adapters/repl"
	"dashboard-customization/internal/app"
	"dashboard-customization/internal/customization"
	"dashboard-customization/internal/logger"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg := app.LoadConfig()
	log, err := logger.New(cfg.LogLevel, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx := logger.WithLogger(context.Background(), log.Logger)
	svc := app.NewAppService(customization.New())

	if len(os.Args) < 2 {
		if err := repl.Run(ctx, svc, bufio.NewReader(os.Stdin), os.Stdout); err != nil {
			log.Error(err, "repl")
			log.Sync()
			os.Exit(1)
		}
		return
	}

	if err := cli.Run(ctx, svc, os.Stdout, os.Args[1:]); err != nil {
		log.Sync()
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
