package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"degrees/backend/internal/cli"
	"degrees/backend/internal/dataset"
	"degrees/backend/internal/degrees"
	"degrees/backend/pkg/config"
	"degrees/backend/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	discipline := flag.String("discipline", "", "Traversal to use (breadth or depth); prompts when empty")
	verbose := flag.Bool("v", false, "Log search details to stderr")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "Usage: degrees [flags] [directory]")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Keep the terminal clean for prompts unless asked otherwise
	if err := logger.Init(cfg.Env, !*verbose); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()
	log := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Println("Loading data...")
	g, err := dataset.Load(ctx, cfg, flag.Arg(0))
	if err != nil {
		log.Error("Failed to load data", zap.Error(err))
		exit(err.Error())
	}
	fmt.Println("Data loaded.")

	svc := degrees.NewService(g, time.Duration(cfg.SearchTimeoutMS)*time.Millisecond)
	session := cli.NewSession(svc, os.Stdin, os.Stdout)
	session.Discipline = *discipline

	if err := session.Run(ctx); err != nil {
		log.Debug("Session ended with error", zap.Error(err))
		exit(cli.Message(err))
	}
}

func exit(msg string) {
	logger.Sync()
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
