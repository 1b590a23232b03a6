package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/homescout/internal/config"
	"github.com/csheth/homescout/internal/predictor"
	"github.com/csheth/homescout/internal/tui"
)

func main() {
	defaultHistory := filepath.Join(".", "homescout_history.json")
	endpoint := flag.String("endpoint", "", "prediction service base URL (overrides HOMESCOUT_BASE_URL)")
	apiKey := flag.String("api-key", "", "prediction service API key (overrides HOMESCOUT_API_KEY)")
	envFile := flag.String("env-file", "", "path to a .env file with HOMESCOUT_* settings")
	historyPath := flag.String("history", defaultHistory, "path to the prediction history JSON file")
	noAltScreen := flag.Bool("no-alt-screen", false, "disable the alternate screen buffer")
	flag.Parse()

	cfg, err := config.Load(*endpoint, *apiKey, *envFile)
	if err != nil {
		fmt.Println("failed to load configuration:", err)
		os.Exit(1)
	}

	absHistory, err := filepath.Abs(*historyPath)
	if err != nil {
		fmt.Println("failed to resolve history path:", err)
		os.Exit(1)
	}

	opts := []tea.ProgramOption{}
	if !*noAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	program := tea.NewProgram(
		tui.New(tui.Config{
			Client:      predictor.New(cfg),
			HistoryPath: absHistory,
		}),
		opts...,
	)

	if _, err := program.Run(); err != nil {
		fmt.Println("program error:", err)
		os.Exit(1)
	}
}
