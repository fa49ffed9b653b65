// Package input turns raw terminal bytes into per-tick game controls.
package input

import (
	"context"
	"io"
	"time"

	"github.com/tomz197/asteroides/internal/game"
)

// Terminals only report key presses, never releases, so a key counts as held
// for a short window after its last byte. Auto-repeat keeps it alive.
const (
	moveHoldDuration   = 60 * time.Millisecond
	actionHoldDuration = 120 * time.Millisecond
)

type key int

const (
	keyUp key = iota
	keyDown
	keyLeft
	keyRight
	keyFire
	keyRestart
	keyStart
	keyQuit
	keyCount
)

// Stream delivers input bytes via a channel and tracks key state between reads.
type Stream struct {
	ch      chan byte
	closed  bool
	seen    [keyCount]time.Time
	held    [keyCount]bool // Action keys held on the previous read
	pending []byte         // Incomplete escape sequence held over from the last read
}

func newStream() *Stream {
	return &Stream{ch: make(chan byte, 128)}
}

// StartStream spawns a goroutine that reads from r and feeds the stream.
// The goroutine exits when r returns an error or ctx is done, after which the
// stream reports Closed.
func StartStream(ctx context.Context, r io.ByteReader) *Stream {
	s := newStream()
	go func() {
		defer close(s.ch)
		for ctx.Err() == nil {
			b, err := r.ReadByte()
			if err != nil {
				return
			}
			select {
			case s.ch <- b:
			case <-ctx.Done():
				return
			}
		}
	}()
	return s
}

// Closed reports whether the underlying reader has ended.
func (s *Stream) Closed() bool {
	return s.closed
}

// Read drains all available bytes without blocking and returns the controls
// for this tick.
func (s *Stream) Read() game.Controls {
	held := s.pending
	s.pending = nil

	var buf []byte
drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	now := time.Now()
	s.apply(s.joinPending(held, buf), now)
	return s.controls(now)
}

// joinPending prepends bytes held over from the previous read. A trailing ESC
// or ESC [ may be the start of an arrow key sequence split across reads, so it
// is held back while new bytes keep arriving. A read with no new bytes flushes
// whatever is held, which lets a lone ESC through as quit.
func (s *Stream) joinPending(held, buf []byte) []byte {
	joined := append(held, buf...)
	if len(buf) == 0 {
		return joined
	}

	n := len(joined)
	switch {
	case n >= 2 && joined[n-2] == '\x1b' && joined[n-1] == '[':
		s.pending = []byte{'\x1b', '['}
		return joined[:n-2]
	case joined[n-1] == '\x1b':
		s.pending = []byte{'\x1b'}
		return joined[:n-1]
	}
	return joined
}

// apply records the time each key in buf was seen.
func (s *Stream) apply(buf []byte, now time.Time) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			if k, ok := arrowKey(buf[i+2]); ok {
				s.seen[k] = now
				i += 2
				continue
			}
		}

		if k, ok := byteKey(b); ok {
			s.seen[k] = now
		}
	}
}

func (s *Stream) controls(now time.Time) game.Controls {
	fire := s.edge(keyFire, now)
	enter := s.edge(keyStart, now)
	return game.Controls{
		Up:      s.isHeld(keyUp, now),
		Down:    s.isHeld(keyDown, now),
		Left:    s.isHeld(keyLeft, now),
		Right:   s.isHeld(keyRight, now),
		Fire:    fire,
		Start:   enter || fire,
		Restart: s.edge(keyRestart, now) || enter,
		Quit:    s.edge(keyQuit, now),
	}
}

func (s *Stream) isHeld(k key, now time.Time) bool {
	return !s.seen[k].IsZero() && now.Sub(s.seen[k]) < moveHoldDuration
}

// edge is true only on the read where an action key goes from released to
// held, so holding fire does not auto-repeat shots.
func (s *Stream) edge(k key, now time.Time) bool {
	pressed := !s.seen[k].IsZero() && now.Sub(s.seen[k]) < actionHoldDuration
	rising := pressed && !s.held[k]
	s.held[k] = pressed
	return rising
}

func arrowKey(code byte) (key, bool) {
	switch code {
	case 'A':
		return keyUp, true
	case 'B':
		return keyDown, true
	case 'C':
		return keyRight, true
	case 'D':
		return keyLeft, true
	}
	return 0, false
}

func byteKey(b byte) (key, bool) {
	switch b {
	case 'w', 'W', 'k', 'K':
		return keyUp, true
	case 's', 'S', 'j', 'J':
		return keyDown, true
	case 'a', 'A', 'h', 'H':
		return keyLeft, true
	case 'd', 'D', 'l', 'L':
		return keyRight, true
	case ' ':
		return keyFire, true
	case 'r', 'R':
		return keyRestart, true
	case '\n', '\r':
		return keyStart, true
	case 'q', 'Q', '\x1b', '\x03':
		return keyQuit, true
	}
	return 0, false
}
