package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/rgdevment/phone-tracer/internal/platform/api"
	"github.com/rgdevment/phone-tracer/internal/tui"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	}

	baseURL := os.Getenv("TRACER_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8000"
	}

	logger, err := buildLogger(os.Getenv("TRACER_LOG"))
	if err != nil {
		log.Fatalf("❌ Could not open log file: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting tracer", zap.String("backend", baseURL))

	client := api.NewClient(baseURL)

	p := tea.NewProgram(tui.NewModel(client), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("tui exited", zap.Error(err))
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}

// buildLogger writes structured logs to the given file. The terminal
// belongs to the TUI, so without a file nothing is logged.
func buildLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}
