// Package narrator turns an assembled profile into a short prose biography
// using a language model. Narration reads a frozen profile and never feeds
// back into generation.
package narrator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/npcgen/internal/game/npc"
)

// ErrDisabled is returned by the Disabled narrator.
var ErrDisabled = errors.New("narration disabled")

// ErrRateLimited is returned when the per-minute call budget is spent.
var ErrRateLimited = errors.New("narration rate limit exceeded")

// DefaultMaxPerMinute bounds completion calls made by one Biographer.
const DefaultMaxPerMinute = 20

// Narrator renders a biography for a profile.
type Narrator interface {
	Narrate(ctx context.Context, p npc.Profile) (string, error)
}

// Completer sends one system prompt and one user prompt to a model.
type Completer interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// Disabled is the Narrator used when narration is turned off.
type Disabled struct{}

// Narrate always returns ErrDisabled.
func (Disabled) Narrate(context.Context, npc.Profile) (string, error) {
	return "", ErrDisabled
}

// Biographer is a rate-limited Narrator over a Completer.
type Biographer struct {
	completer Completer
	logger    *zap.Logger
	now       func() time.Time

	mu        sync.Mutex
	callCount int
	resetAt   time.Time
	maxPerMin int
}

// Option configures a Biographer.
type Option func(*Biographer)

// WithMaxPerMinute overrides DefaultMaxPerMinute.
func WithMaxPerMinute(n int) Option {
	return func(b *Biographer) { b.maxPerMin = n }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(b *Biographer) { b.now = now }
}

// NewBiographer creates a Biographer.
//
// Precondition: c must be non-nil.
func NewBiographer(c Completer, logger *zap.Logger, opts ...Option) *Biographer {
	if logger == nil {
		logger = zap.NewNop()
	}
	b := &Biographer{
		completer: c,
		logger:    logger,
		now:       time.Now,
		maxPerMin: DefaultMaxPerMinute,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Narrate returns a biography of p.
//
// Postcondition: on success the text is trimmed and non-empty.
func (b *Biographer) Narrate(ctx context.Context, p npc.Profile) (string, error) {
	if err := b.take(); err != nil {
		return "", err
	}
	start := b.now()
	text, err := b.completer.Complete(ctx, SystemPrompt, Prompt(p))
	if err != nil {
		return "", fmt.Errorf("narrating profile %s: %w", p.ID, err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("narrating profile %s: empty completion", p.ID)
	}
	b.logger.Debug("profile narrated",
		zap.String("profile_id", p.ID),
		zap.Int("chars", len(text)),
		zap.Duration("elapsed", b.now().Sub(start)),
	)
	return text, nil
}

func (b *Biographer) take() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	now := b.now()
	if now.After(b.resetAt) {
		b.callCount = 0
		b.resetAt = now.Add(time.Minute)
	}
	if b.callCount >= b.maxPerMin {
		return fmt.Errorf("%w (%d calls/min)", ErrRateLimited, b.maxPerMin)
	}
	b.callCount++
	return nil
}
