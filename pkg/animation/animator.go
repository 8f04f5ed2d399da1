// Package animation paces step-by-step rendering of a grid onto a display.
package animation

import (
	"context"

	"github.com/lintang-b-s/mazex/pkg/maze"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Renderable is anything that can draw its current state as one frame.
type Renderable interface {
	Render(styled bool, st maze.Styler) string
}

// Animator pushes one frame per step to a display, then blocks until the pacer allows the
// next step. A nil *Animator is a valid no-op.
type Animator struct {
	display maze.Display
	styler  maze.Styler
	styled  bool
	limiter *rate.Limiter
	logger  *zap.Logger

	frames int
}

type Option func(a *Animator)

// WithStyled controls whether transient phase markers are drawn.
func WithStyled(styled bool) Option {
	return func(a *Animator) {
		a.styled = styled
	}
}

func WithStyler(st maze.Styler) Option {
	return func(a *Animator) {
		a.styler = st
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(a *Animator) {
		a.logger = logger
	}
}

// NewAnimator creates an animator emitting stepsPerSecond frames per second. A non-positive
// rate disables pacing.
func NewAnimator(display maze.Display, stepsPerSecond float64, opts ...Option) *Animator {
	limit := rate.Inf
	if stepsPerSecond > 0 {
		limit = rate.Limit(stepsPerSecond)
	}
	a := &Animator{
		display: display,
		styler:  maze.PlainStyler{},
		styled:  true,
		limiter: rate.NewLimiter(limit, 1),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Step renders r onto the display and waits for the pacer. The wait cannot be cancelled.
func (a *Animator) Step(r Renderable) {
	if a == nil {
		return
	}
	a.display.Display(r.Render(a.styled, a.styler))
	a.frames++
	if err := a.limiter.Wait(context.Background()); err != nil {
		a.logger.Warn("pacer wait failed", zap.Error(err), zap.Int("frame", a.frames))
	}
}

// Show renders r once without pacing, with an explicit styled flag.
func (a *Animator) Show(r Renderable, styled bool) {
	if a == nil {
		return
	}
	a.display.Display(r.Render(styled, a.styler))
}

// Frames is the number of paced frames emitted so far.
func (a *Animator) Frames() int {
	if a == nil {
		return 0
	}
	return a.frames
}
