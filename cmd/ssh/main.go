package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"

	"github.com/tomz197/invaders/internal/asset"
	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/draw"
	"github.com/tomz197/invaders/internal/loop"
)

// host runs one independent game per SSH session.
type host struct {
	ctx      context.Context // canceled on shutdown, ends every running game
	assets   *asset.Library  // shared by all sessions
	idle     time.Duration
	logger   *log.Logger
	sessions sync.WaitGroup
}

func main() {
	settings := config.Load()
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "invaders-ssh"})
	if lvl, err := log.ParseLevel(settings.LogLevel); err == nil {
		logger.SetLevel(lvl)
	}

	workingDir, workErr := os.Getwd()
	if workErr != nil {
		logger.Warn("failed to get working directory", "err", workErr)
	}
	logger.Info("ssh config", "host", settings.SSHHost, "port", settings.SSHPort,
		"hostKeyPath", settings.SSHHostKey, "workingDir", workingDir, "idle", settings.IdleSeconds)

	ctx, cancelGames := context.WithCancel(context.Background())
	h := &host{
		ctx:    ctx,
		assets: asset.NewLibrary(logger),
		idle:   time.Duration(settings.IdleSeconds) * time.Second,
		logger: logger,
	}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(settings.SSHHost, settings.SSHPort)),
		wish.WithMiddleware(
			h.middleware,
			activeterm.Middleware(),
			logging.Middleware(),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if settings.SSHHostKey != "" {
		opts = append(opts, wish.WithHostKeyPath(settings.SSHHostKey))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("starting ssh server", "addr", s.Addr)
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("shutting down server")

	// End every game, then give sessions a moment to restore their terminals.
	cancelGames()
	waitTimeout(&h.sessions, config.ShutdownGrace)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownGrace)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("shutdown error", "err", err)
	}
}

// middleware handles SSH sessions and runs a game on each.
func (h *host) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		h.sessions.Add(1)
		defer h.sessions.Done()

		logger := h.logger.With("user", sess.User(), "remote", sess.RemoteAddr().String())
		logger.Info("new game session", "term", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

		sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)
		go func() {
			for win := range winCh {
				sizeTracker.update(win.Width, win.Height)
			}
		}()

		ctx, cancel := context.WithCancel(sess.Context())
		defer cancel()
		stop := context.AfterFunc(h.ctx, cancel)
		defer stop()

		err := loop.Run(ctx, bufio.NewReader(sess), sess, loop.Options{
			TermSizeFunc: sizeTracker.getSize,
			Assets:       h.assets,
			IdleTimeout:  h.idle,
			Logger:       logger,
		})
		if err != nil {
			logger.Error("game error", "err", err)
		}
		next(sess)
	}
}

func waitTimeout(wg *sync.WaitGroup, d time.Duration) {
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(d):
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
