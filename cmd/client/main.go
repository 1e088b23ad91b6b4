package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/iudanet/todosync/internal/client/api"
	"github.com/iudanet/todosync/internal/client/cli"
	"github.com/iudanet/todosync/internal/client/iocli"
	"github.com/iudanet/todosync/internal/client/storage/boltdb"
	"github.com/iudanet/todosync/internal/client/todolist"
	"github.com/iudanet/todosync/internal/config"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

var errNoCommand = errors.New("no command given")

// logFileName файл журнала интерактивного режима, лежит рядом с базой
const logFileName = "client.log"

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("todosync", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "Path to TOML config file (default: "+config.DefaultClientConfigPath+")")
	serverURL := fs.String("server", "", "Server URL (overrides config)")
	dbPath := fs.String("db", "", "Path to local preferences database (overrides config)")
	authToken := fs.String("token", "", "Bearer token (overrides config)")
	showVersion := fs.Bool("version", false, "Show version information")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		printVersion(stdout)
		return nil
	}

	cfg, err := config.LoadClient(*configPath)
	if err != nil {
		return err
	}

	// Флаги имеют наивысший приоритет
	if *serverURL != "" {
		cfg.ServerURL = *serverURL
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}
	if *authToken != "" {
		cfg.Token = *authToken
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := config.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	stdio := iocli.NewStdioWith(stdin, stdout)
	command, commandArgs := resolveCommand(fs.Args(), stdio.IsTerminal())

	// TUI занимает весь экран, поэтому журнал уходит в файл
	logOut, closeLog := logOutput(command, cfg.DBPath, stderr)
	defer closeLog()
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Открываем BoltDB storage
	prefs, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := prefs.Close(); err != nil {
			logger.Error("Failed to close database", "error", err)
		}
	}()

	apiClient := api.NewClient(cfg.ServerURL, api.Options{
		Logger:          logger,
		Token:           cfg.Token,
		Timeout:         cfg.RequestTimeout.Std(),
		BreakerFailures: uint32(cfg.BreakerFailures),
	})
	engine := todolist.NewEngine(apiClient, logger)
	client := cli.New(engine, prefs, apiClient, stdio, logger)

	if command == "" {
		client.PrintUsage()
		return errNoCommand
	}

	return client.Run(ctx, command, commandArgs)
}

// resolveCommand выделяет команду из аргументов.
// Без аргументов в терминале запускается интерактивный режим, иначе команда пустая.
func resolveCommand(args []string, terminal bool) (string, []string) {
	if len(args) == 0 {
		if terminal {
			return "tui", nil
		}
		return "", nil
	}
	return args[0], args[1:]
}

// logOutput возвращает приемник журнала для команды и функцию его закрытия.
// Для tui журнал пишется в client.log рядом с базой, при ошибке отбрасывается.
func logOutput(command, dbPath string, stderr io.Writer) (io.Writer, func()) {
	if command != "tui" {
		return stderr, func() {}
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return io.Discard, func() {}
	}

	file, err := tea.LogToFile(filepath.Join(dir, logFileName), "todosync")
	if err != nil {
		return io.Discard, func() {}
	}
	return file, func() { _ = file.Close() }
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "todosync client\n")
	fmt.Fprintf(w, "Version:    %s\n", Version)
	fmt.Fprintf(w, "Build Date: %s\n", BuildDate)
	fmt.Fprintf(w, "Git Commit: %s\n", GitCommit)
}
