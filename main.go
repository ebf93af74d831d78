package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"weather-mcp/api"
	"weather-mcp/datasource"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	// Stdout carries the MCP protocol stream, so logging goes to
	// stderr, optionally duplicated to a file.
	log.SetOutput(os.Stderr)
	if path := os.Getenv("WEATHER_LOG_FILE"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file %s: %v", path, err)
		}
		defer f.Close()
		log.SetOutput(io.MultiWriter(os.Stderr, f))
	}

	// Load configuration
	cfg, err := datasource.FromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	provider := datasource.NewAmapProvider(cfg)
	server := api.NewServer(provider)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Println("Starting weather MCP server")
	if err := server.Run(ctx); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}

	log.Println("Shutdown complete")
}
