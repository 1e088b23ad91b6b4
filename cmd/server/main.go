package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/todosync/internal/config"
	"github.com/iudanet/todosync/internal/server"
	"github.com/iudanet/todosync/internal/server/token"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("todosync-server", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "Path to TOML config file")
	addr := fs.String("addr", "", "Listen address (overrides config)")
	dbPath := fs.String("db", "", "SQLite database path (overrides config)")
	showVersion := fs.Bool("version", false, "Show version information")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		printVersion(stdout)
		return nil
	}

	cfg, err := config.LoadServer(*configPath)
	if err != nil {
		return err
	}

	// Флаги имеют наивысший приоритет
	if *addr != "" {
		cfg.ListenAddr = *addr
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if fs.NArg() > 0 {
		switch fs.Arg(0) {
		case "token":
			return runToken(cfg, fs.Args()[1:], stdout, stderr)
		default:
			return fmt.Errorf("unknown command: %s", fs.Arg(0))
		}
	}

	level, err := config.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewJSONHandler(stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(ctx, cfg, logger, Version)
	if err != nil {
		return err
	}
	defer func() {
		if err := srv.Close(); err != nil {
			logger.Error("Failed to close server", "error", err)
		}
	}()

	return srv.Run(ctx)
}

// runToken выпускает API токен для клиента: todosync-server token -subject NAME
func runToken(cfg config.Server, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	fs.SetOutput(stderr)
	subject := fs.String("subject", "", "Token subject (client name)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if !cfg.AuthEnabled() {
		return fmt.Errorf("token_secret is not configured")
	}

	signed, err := token.NewService(cfg.TokenSecret, cfg.TokenTTL.Std()).Issue(*subject)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(stdout, signed)
	return err
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "todosync server\n")
	fmt.Fprintf(w, "Version:    %s\n", Version)
	fmt.Fprintf(w, "Build Date: %s\n", BuildDate)
	fmt.Fprintf(w, "Git Commit: %s\n", GitCommit)
}
