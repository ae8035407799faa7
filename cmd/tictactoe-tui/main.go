package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictactoe-tutorial/internal/config"
	"github.com/rocketscienceinc/tictactoe-tutorial/internal/entity"
	"github.com/rocketscienceinc/tictactoe-tutorial/internal/render/terminal"
	"github.com/rocketscienceinc/tictactoe-tutorial/internal/tictactoe"
)

const terminalMountID = "terminal"

func main() {
	configPath := flag.String("config", "config.yml", "path to the config file")
	logPath := flag.String("log", "tictactoe-tui.log", "file that receives the click log")
	flag.Parse()

	if err := run(*configPath, *logPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, logPath string) error {
	conf, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// the screen belongs to bubbletea, so logs go to a file
	logFile, err := tea.LogToFile(logPath, "tictactoe")
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()

	logger := slog.New(slog.NewJSONHandler(logFile, &slog.HandlerOptions{Level: config.ParseLevel(conf.LogLevel)}))

	page := tictactoe.Shell(conf.CourseTitle, tictactoe.Page(terminalMountID, entity.NewBoard(), tictactoe.NewLogObserver(logger)))

	if _, err = tea.NewProgram(terminal.New(page), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("terminal program failed: %w", err)
	}

	return nil
}
