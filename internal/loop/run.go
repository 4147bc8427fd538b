// Package loop runs game sessions: the per-frame simulation and the frame
// loops that connect a session to a terminal.
package loop

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/tomz197/invaders/internal/asset"
	"github.com/tomz197/invaders/internal/audio"
	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/draw"
	"github.com/tomz197/invaders/internal/input"
	"github.com/tomz197/invaders/internal/render"
)

// Options configures a game run.
type Options struct {
	TermSizeFunc draw.TermSizeFunc // ANSI frontend only; defaults to the process terminal
	Assets       asset.Loader
	Audio        audio.Player
	Seed         uint64        // 0 picks a time based seed
	IdleTimeout  time.Duration // 0 disables the idle disconnect
	Logger       *log.Logger
}

func (o Options) withDefaults() Options {
	if o.TermSizeFunc == nil {
		o.TermSizeFunc = draw.DefaultTermSizeFunc
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	if o.Assets == nil {
		o.Assets = asset.NewLibrary(o.Logger)
	}
	if o.Audio == nil {
		o.Audio = audio.Silent{}
	}
	if o.Seed == 0 {
		o.Seed = uint64(time.Now().UnixNano())
	}
	return o
}

// NewRand returns the deterministic random source used by a session.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Run plays one game on an ANSI terminal, reading raw key bytes from r and
// writing frames to w. It returns when the player quits, the input closes,
// the idle timeout passes or ctx is done.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) error {
	opts = opts.withDefaults()
	out := render.NewANSI(w, opts.TermSizeFunc)
	out.Start()
	defer out.Stop()
	return run(ctx, input.StartStream(r), out, out.Present, opts)
}

// RunScreen plays one game on a tcell screen. The caller owns the screen and
// finalizes it afterwards.
func RunScreen(ctx context.Context, screen tcell.Screen, opts Options) error {
	opts = opts.withDefaults()
	out := render.NewScreen(screen)
	present := func() error {
		out.Present()
		return nil
	}
	return run(ctx, input.StartScreenStream(screen), out, present, opts)
}

// run is the frame loop shared by both frontends: Input -> Update -> Draw.
func run(ctx context.Context, stream *input.Stream, out render.Renderer, present func() error, opts Options) error {
	logger := opts.Logger
	s := NewSession(opts.Assets, opts.Audio, NewRand(opts.Seed))
	var tracker input.Tracker
	lastInput := time.Now()

	logger.Debug("session started", "seed", opts.Seed)
	defer func() {
		logger.Info("session ended", "score", s.Score(), "level", s.Level(), "state", s.State())
	}()

	for {
		frameStart := time.Now()

		select {
		case <-ctx.Done():
			return nil
		default:
		}

		// ===== INPUT PHASE =====
		in := stream.Read(frameStart)
		if in.Pressed > 0 {
			lastInput = frameStart
		} else if opts.IdleTimeout > 0 && frameStart.Sub(lastInput) > opts.IdleTimeout {
			logger.Info("disconnecting idle player", "idle", opts.IdleTimeout)
			return nil
		}
		for _, it := range tracker.Intents(in) {
			if it == input.Quit {
				return nil
			}
			s.Handle(it)
		}

		// ===== UPDATE PHASE =====
		prev := s.State()
		s.Update()
		if st := s.State(); st != prev {
			logger.Debug("state changed", "from", prev, "to", st, "score", s.Score(), "level", s.Level())
		}

		// ===== DRAW PHASE =====
		s.Draw(out)
		if err := present(); err != nil {
			return fmt.Errorf("present frame: %w", err)
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < config.TargetFrameTime {
			time.Sleep(config.TargetFrameTime - elapsed)
		}
	}
}
