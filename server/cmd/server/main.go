package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cozypark/cozypark/config"
	"github.com/cozypark/cozypark/logging"
	"github.com/cozypark/cozypark/server/core"
)

func main() {
	addr := flag.String("addr", ":8080", "Listen address")
	logFile := flag.String("log", "", "Log file (stderr only when empty)")
	flag.Parse()

	env, err := config.LoadEnv()
	if err != nil {
		log.Fatalf("Failed to load environment: %v", err)
	}

	logger, err := logging.Init(logging.Options{File: *logFile, Level: env.LogLevel, Console: true})
	if err != nil {
		log.Fatalf("Failed to init logging: %v", err)
	}
	defer logging.Sync()

	server := core.NewServer(logger)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Infow("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Stop(ctx); err != nil {
			logger.Warnw("Shutdown failed", "error", err)
		}
	}()

	logger.Infow("Starting park relay", "addr", *addr)
	if err := server.Start(*addr); err != nil {
		logger.Fatalw("Server error", "error", err)
	}
}
