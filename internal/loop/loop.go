// Package loop runs the terminal frontend: it reads keys, ticks a game
// session at a fixed rate and renders every frame with half-block graphics.
package loop

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/asteroides/internal/draw"
	"github.com/tomz197/asteroides/internal/game"
	"github.com/tomz197/asteroides/internal/game/config"
	"github.com/tomz197/asteroides/internal/input"
)

// Options configures a terminal game.
type Options struct {
	TermSizeFunc draw.TermSizeFunc
	Seed         uint64 // Zero seeds from the clock
	RespawnGrace int    // Ticks of invulnerability after a respawn
	Logger       *log.Logger
}

// frontend owns one session and everything needed to show it on one terminal.
type frontend struct {
	session      *game.Session
	stream       *input.Stream
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter
	writer       io.Writer
	termSizeFunc draw.TermSizeFunc
	screens      *screens
	debris       *debris
	logger       *log.Logger
	seed         uint64
	cols, rows   int
}

// Run plays one game on the terminal behind r and w. It blocks until the
// player quits, the input closes or ctx is cancelled.
func Run(ctx context.Context, r io.ByteReader, w io.Writer, opts Options) error {
	f := newFrontend(ctx, r, w, opts)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	ticker := time.NewTicker(config.TickTime)
	defer ticker.Stop()

	f.logger.Debug("terminal session started")
	for {
		select {
		case <-ctx.Done():
			f.logger.Debug("terminal session cancelled", "score", f.session.Score())
			draw.ClearScreen(w)
			return nil
		case <-ticker.C:
		}

		done, err := f.frame()
		if err != nil {
			return err
		}
		if done {
			break
		}
	}

	f.logger.Debug("terminal session ended", "score", f.session.Score(), "mode", f.session.Mode())
	draw.ClearScreen(w)
	return nil
}

func newFrontend(ctx context.Context, r io.ByteReader, w io.Writer, opts Options) *frontend {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	// One seed drives both the session and the debris so a zero seed is
	// clock-seeded for both.
	seed := game.ResolveSeed(opts.Seed)

	return &frontend{
		session: game.New(game.Options{
			Rand:         game.NewRand(seed),
			Logger:       logger,
			RespawnGrace: opts.RespawnGrace,
		}),
		stream:       input.StartStream(ctx, r),
		canvas:       draw.NewScaledCanvas(1, 1, config.FieldWidth, config.FieldHeight),
		chunkWriter:  draw.NewChunkWriter(w),
		writer:       w,
		termSizeFunc: termSizeFunc,
		screens:      newScreens(w),
		debris:       newDebris(seed),
		logger:       logger,
		seed:         seed,
	}
}

// frame runs input, update and draw once. It reports true when the game is over
// for good.
func (f *frontend) frame() (bool, error) {
	c := f.stream.Read()
	f.session.Tick(c)

	if f.session.Mode() == game.ModeExit || f.stream.Closed() {
		return true, nil
	}

	f.debris.absorb(f.session.Events())
	f.debris.update()
	if f.session.Mode() == game.ModeMenu {
		f.debris.reset()
	}

	f.updateScreen()
	return false, f.drawFrame(f.session.Snapshot())
}

// updateScreen refits the canvas when the terminal size changes, keeping one
// row and column free on each side for the border.
func (f *frontend) updateScreen() {
	cols, rows, err := f.termSizeFunc()
	if err != nil || (cols == f.cols && rows == f.rows) {
		return
	}
	f.cols, f.rows = cols, rows
	f.canvas.Fit(cols-2, rows-2)
	f.canvas.SetOffset(f.canvas.OffsetCol()+1, f.canvas.OffsetRow()+1)
}

func (f *frontend) drawFrame(snap game.Snapshot) error {
	draw.ClearScreen(f.chunkWriter)
	f.canvas.Clear()

	if snap.Mode != game.ModeMenu {
		drawWorld(f.canvas, snap)
		f.debris.draw(f.canvas)
	}

	if err := f.canvas.Render(f.chunkWriter); err != nil {
		return err
	}
	if err := f.canvas.RenderBorder(f.chunkWriter); err != nil {
		return err
	}

	f.screens.draw(f.chunkWriter, f.canvas, snap)
	return f.chunkWriter.Flush()
}
