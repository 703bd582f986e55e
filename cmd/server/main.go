package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/archdash/backend/internal/infrastructure/config"
	"github.com/archdash/backend/internal/infrastructure/server"
)

func main() {
	// Flags override environment configuration
	port := flag.String("port", "", "Server port")
	probeCmd := flag.String("probe", "", "System info probe command")
	storagePath := flag.String("storage", "", "SQLite catalog path (empty for in-memory)")
	flag.Parse()

	cfg := config.LoadOrDefault()
	if *port != "" {
		cfg.Server.Port = *port
	}
	if *probeCmd != "" {
		cfg.Probe.Command = *probeCmd
	}
	if *storagePath != "" {
		cfg.Storage.Path = *storagePath
	}

	srv, err := server.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := srv.Run(); err != nil {
			errChan <- err
		}
	}()

	select {
	case <-sigChan:
		log.Println("Shutting down gracefully...")
		if err := srv.Close(); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
	case err := <-errChan:
		log.Fatalf("Server error: %v", err)
	}
}
