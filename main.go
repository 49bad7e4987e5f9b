package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/launchkit/site/config"
	h "github.com/launchkit/site/handlers"
	"github.com/launchkit/site/server"
)

func main() {
	config.Load()

	// Initialize rendered page cache
	if err := h.InitPageCache(); err != nil {
		log.Fatalf("Failed to initialize page cache: %v", err)
	}

	app := server.New(server.Options{RequestLogging: true, RateLimit: true})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		fmt.Printf("Starting server on port %s...\n", config.ServerPort)
		serverErr <- app.Listen(":" + config.ServerPort)
	}()

	select {
	case err := <-serverErr:
		log.Fatal(err)
	case <-ctx.Done():
		log.Println("Shutting down server...")
	}

	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Fatalf("error shutting down server: %v", err)
	}
}
