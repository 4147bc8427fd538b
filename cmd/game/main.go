package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/tomz197/invaders/internal/asset"
	"github.com/tomz197/invaders/internal/audio"
	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/loop"
)

func main() {
	settings := config.Load()
	logger := newLogger(settings.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	player, closeAudio := audio.Open(settings.Audio, settings.Volume, logger)
	defer closeAudio()

	opts := loop.Options{
		Assets: asset.NewLibrary(logger),
		Audio:  player,
		Seed:   settings.Seed,
		Logger: logger,
	}

	var err error
	switch settings.Frontend {
	case config.FrontendANSI:
		err = runANSI(ctx, opts)
	default:
		err = runTcell(ctx, opts)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "invaders"})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", level)
		lvl = log.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}

func runTcell(ctx context.Context, opts loop.Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	return loop.RunScreen(ctx, screen, opts)
}

func runANSI(ctx context.Context, opts loop.Options) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	return loop.Run(ctx, bufio.NewReader(os.Stdin), os.Stdout, opts)
}
