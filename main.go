package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/soocke/digitpad-go/app"
	"github.com/soocke/digitpad-go/config"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("digitpad", flag.ContinueOnError)
	cfgPath := fs.String("config", "digitpad.json", "path to the JSON config file")
	modelPath := fs.String("model", "", "model file (overrides model_path)")
	fontPath := fs.String("font", "", "TTF font file (overrides font_path)")
	frontend := fs.String("frontend", "", "window, terminal or tk (overrides frontend)")
	debugFlag := fs.Bool("debug", false, "debug logging and runtime stats")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, cfgErr := config.Load(*cfgPath)
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "model":
			cfg.ModelPath = *modelPath
		case "font":
			cfg.FontPath = *fontPath
		case "frontend":
			cfg.Frontend = *frontend
		case "debug":
			cfg.Debug = *debugFlag
		}
	})
	_ = cfg.Validate()

	var out io.Writer = os.Stdout
	if cfg.Frontend == config.FrontendTerminal {
		f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
			return 1
		}
		defer f.Close()
		out = f
	}
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(out, level)
	if cfgErr != nil {
		logger.Warn("config load failed, using defaults", "path", *cfgPath, "error", cfgErr)
	}
	logger.Info("starting", "frontend", cfg.Frontend, "model", cfg.ModelPath, "debug", cfg.Debug)

	a, err := app.NewApp(cfg, logger)
	if err != nil {
		logger.Error("startup failed", "error", err)
		if out != os.Stdout {
			fmt.Fprintf(os.Stderr, "startup failed: %v\n", err)
		}
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := a.Run(ctx); err != nil {
		logger.Error("frame loop failed", "error", err)
		if out != os.Stdout {
			fmt.Fprintf(os.Stderr, "%v\n", err)
		}
		return 1
	}
	return 0
}
