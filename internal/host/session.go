package host

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wasm-arcade/internal/draw"
	"github.com/vovakirdan/wasm-arcade/internal/input"
	"github.com/vovakirdan/wasm-arcade/internal/wire"
)

// Session drives one guest for one player. It is not safe for concurrent use.
type Session struct {
	mod     Module
	logger  *log.Logger
	info    Info
	frames  int64
	started time.Time
}

// NewSession initialises mod and reads its init header.
// The session owns mod from then on and closes it in Close.
func NewSession(ctx context.Context, mod Module, logger *log.Logger) (*Session, error) {
	addr, err := mod.Init(ctx)
	if err != nil {
		return nil, err
	}
	info, err := ReadInfo(mod.Memory(), addr)
	if err != nil {
		return nil, err
	}

	logger.Debug("guest initialised", "title", info.Title, "width", info.Width, "height", info.Height)
	return &Session{
		mod:     mod,
		logger:  logger,
		info:    info,
		started: time.Now(),
	}, nil
}

// Info returns the guest's init header.
func (s *Session) Info() Info {
	return s.info
}

// Frame runs one cycle: allocate input space, write f, update, draw, and
// decode the resulting commands.
func (s *Session) Frame(ctx context.Context, f input.Frame) ([]draw.Command, error) {
	size := f.Size()
	addr, err := s.mod.Alloc(ctx, size)
	if err != nil {
		return nil, err
	}

	v := wire.NewView(s.mod.Memory(), addr)
	input.Encode(v, f)
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("host: writing input at 0x%x: %w", addr, err)
	}

	if err := s.mod.Update(ctx, addr, size); err != nil {
		return nil, err
	}

	cmdAddr, err := s.mod.Draw(ctx)
	if err != nil {
		return nil, err
	}
	cmds, err := draw.Decode(s.mod.Memory(), cmdAddr)
	if err != nil {
		return nil, fmt.Errorf("host: decoding frame %d: %w", s.frames, err)
	}

	s.frames++
	return cmds, nil
}

// Frames returns the number of completed frames.
func (s *Session) Frames() int64 {
	return s.frames
}

// Elapsed returns the time since the session started.
func (s *Session) Elapsed() time.Duration {
	return time.Since(s.started)
}

// Score returns the guest's score if the module exposes it.
func (s *Session) Score() (score int, over, ok bool) {
	sc, ok := s.mod.(Scorer)
	if !ok {
		return 0, false, false
	}
	score, over = sc.Score()
	return score, over, true
}

// Close releases the module.
func (s *Session) Close(ctx context.Context) error {
	s.logger.Debug("session closed", "title", s.info.Title, "frames", s.frames, "elapsed", s.Elapsed())
	return s.mod.Close(ctx)
}
