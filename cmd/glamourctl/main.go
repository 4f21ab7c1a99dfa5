// glamourctl decodes, encodes and migrates design strings.
//
// Usage:
//
//	glamourctl decode <base64>            # YAML dump of a design
//	glamourctl encode <file.yaml | ->     # YAML view back to a v5 design string
//	glamourctl migrate <in> <out>         # re-encode every line to v5, drop duplicates
//	glamourctl items <query>              # fuzzy item search
//	glamourctl seed-db                    # write the built-in catalog into PostgreSQL
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/udisondev/glamourgo/internal/config"
)

const ConfigPath = "config/glamour.yaml"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) == 0 {
		printUsage(stdout)
		return fmt.Errorf("no command given")
	}

	cfgPath := ConfigPath
	if p := os.Getenv("GLAMOUR_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Логи идут в stderr, stdout занят результатами команд.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	cmd, ok := lookupCommand(args[0])
	if !ok {
		printUsage(stdout)
		return fmt.Errorf("unknown command %q", args[0])
	}

	a := newApp(cfg, stdin, stdout)
	defer a.Close()

	return cmd.run(ctx, a, args[1:])
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
