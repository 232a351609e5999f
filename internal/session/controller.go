package session

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"wishgallery/internal/gift"
	"wishgallery/internal/lang"
	"wishgallery/internal/logging"
)

// ErrGiftCount is logged when a generator returns other than gift.Count gifts.
var ErrGiftCount = errors.New("generator returned wrong number of gifts")

// Generator produces the gifts for a wish. It is expected to always return
// gift.Count messages; a panic or any other count is treated as a failure.
type Generator interface {
	Generate(ctx context.Context, wish string, preference lang.Language) []gift.Message
}

// GeneratorFunc adapts a function to Generator.
type GeneratorFunc func(ctx context.Context, wish string, preference lang.Language) []gift.Message

func (f GeneratorFunc) Generate(ctx context.Context, wish string, preference lang.Language) []gift.Message {
	return f(ctx, wish, preference)
}

// Option configures a Controller.
type Option func(*Controller)

// WithPacer replaces the default reveal delay gate.
func WithPacer(p Pacer) Option {
	return func(c *Controller) { c.pacer = p }
}

// WithLanguage sets the initial display language.
func WithLanguage(l lang.Language) Option {
	return func(c *Controller) {
		if l.Valid() {
			c.rec.language = l
		}
	}
}

// WithLogger replaces the session category logger.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithObserver registers fn to receive an Update after every change. fn is
// called outside the controller lock, possibly from the generation goroutine;
// it must not block.
func WithObserver(fn func(Update)) Option {
	return func(c *Controller) { c.observer = fn }
}

// Controller owns one wish session. It is safe for concurrent use.
type Controller struct {
	gen      Generator
	pacer    Pacer
	observer func(Update)
	logger   *zap.SugaredLogger
	id       string

	mu    sync.Mutex
	rec   record
	epoch uint64 // bumped by Submit and Reset; stale results carry an old value

	wg sync.WaitGroup
}

// New creates a controller in the Idle state.
func New(gen Generator, opts ...Option) *Controller {
	c := &Controller{
		gen:   gen,
		pacer: DelayPacer(DefaultRevealDelay),
		id:    uuid.NewString(),
		rec: record{
			chosen:   NoChoice,
			language: lang.Primary,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ID identifies the controller in logs.
func (c *Controller) ID() string {
	return c.id
}

func (c *Controller) log() *zap.SugaredLogger {
	l := c.logger
	if l == nil {
		l = logging.Get(logging.CategorySession)
	}
	return l.With("session", c.id)
}

func (c *Controller) notify(u Update) {
	if c.observer != nil {
		c.observer(u)
	}
}

// commit snapshots the record; callers hold the lock.
func (c *Controller) commit(cue Cue) Update {
	return Update{Snapshot: c.rec.snapshot(c.id, c.epoch), Cue: cue}
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rec.snapshot(c.id, c.epoch)
}

// SetWish replaces the wish text. Only allowed while Idle.
func (c *Controller) SetWish(text string) bool {
	c.mu.Lock()
	if c.rec.state != StateIdle {
		c.mu.Unlock()
		return false
	}
	c.rec.wish = text
	u := c.commit(CueNone)
	c.mu.Unlock()

	c.notify(u)
	return true
}

// Submit starts generation for the current wish and moves to Wishing. It is a
// no-op returning false unless the session is Idle with a non-blank wish.
// ctx bounds the generation call and the reveal delay. Once the generator
// has answered, a done ctx skips the rest of the delay but the gifts are
// still revealed.
func (c *Controller) Submit(ctx context.Context) bool {
	c.mu.Lock()
	if c.rec.state != StateIdle || strings.TrimSpace(c.rec.wish) == "" {
		c.mu.Unlock()
		return false
	}
	c.rec.state = StateWishing
	c.epoch++
	token := c.epoch
	wish, language := c.rec.wish, c.rec.language
	u := c.commit(CueNone)
	c.mu.Unlock()

	c.log().Debugw("wish submitted", "epoch", token, "language", language, "wish_len", len(wish))
	c.notify(u)

	c.wg.Add(1)
	go c.fulfil(ctx, token, wish, language)
	return true
}

// SubmitWish sets the wish text and submits it.
func (c *Controller) SubmitWish(ctx context.Context, text string) bool {
	return c.SetWish(text) && c.Submit(ctx)
}

func (c *Controller) fulfil(ctx context.Context, token uint64, wish string, language lang.Language) {
	defer c.wg.Done()
	log := c.log()

	gifts, err := c.generate(ctx, wish, language)
	if err != nil {
		log.Warnw("gift generation failed, returning to idle", "error", err, "epoch", token)
		c.abandon(token)
		return
	}

	// The gifts are already in hand; a done ctx only shortens the wait.
	if err := c.pacer.Pace(ctx); err != nil {
		log.Debugw("reveal delay cut short", "error", err, "epoch", token)
	}

	c.mu.Lock()
	if token != c.epoch || c.rec.state != StateWishing {
		current := c.epoch
		c.mu.Unlock()
		log.Infow("discarding stale gifts", "epoch", token, "current_epoch", current)
		return
	}
	c.rec.state = StateOpening
	c.rec.gifts = gifts
	c.rec.chosen = NoChoice
	u := c.commit(CueReveal)
	c.mu.Unlock()

	log.Debugw("gifts revealed", "epoch", token)
	c.notify(u)
}

func (c *Controller) generate(ctx context.Context, wish string, language lang.Language) (gifts []gift.Message, err error) {
	defer func() {
		if r := recover(); r != nil {
			gifts, err = nil, fmt.Errorf("generator panicked: %v", r)
		}
	}()

	gifts = c.gen.Generate(ctx, wish, language)
	if len(gifts) != gift.Count {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrGiftCount, len(gifts), gift.Count)
	}
	return slices.Clone(gifts), nil
}

// abandon returns a still-current Wishing session to Idle, dropping the wish.
func (c *Controller) abandon(token uint64) {
	c.mu.Lock()
	if token != c.epoch || c.rec.state != StateWishing {
		c.mu.Unlock()
		return
	}
	c.rec.clear()
	u := c.commit(CueNone)
	c.mu.Unlock()

	c.notify(u)
}

// Choose opens gift i. Only the first valid choice in Opening is accepted.
func (c *Controller) Choose(i int) bool {
	c.mu.Lock()
	if c.rec.state != StateOpening || c.rec.chosen != NoChoice || i < 0 || i >= len(c.rec.gifts) {
		c.mu.Unlock()
		return false
	}
	c.rec.chosen = i
	u := c.commit(CueChosen)
	c.mu.Unlock()

	c.log().Debugw("gift chosen", "index", i)
	c.notify(u)
	return true
}

// Reset clears wish, gifts and choice and returns to Idle from any state.
// A generation still in flight is not cancelled; its result is discarded.
func (c *Controller) Reset() {
	c.mu.Lock()
	from := c.rec.state
	c.epoch++
	c.rec.clear()
	u := c.commit(CueNone)
	c.mu.Unlock()

	c.log().Debugw("session reset", "from", from.String())
	c.notify(u)
}

// ToggleLanguage flips the display language and returns the new one. Wish,
// gifts, state and choice are untouched; nothing is regenerated.
func (c *Controller) ToggleLanguage() lang.Language {
	c.mu.Lock()
	c.rec.language = c.rec.language.Toggle()
	l := c.rec.language
	u := c.commit(CueNone)
	c.mu.Unlock()

	c.notify(u)
	return l
}

// Language returns the active display language.
func (c *Controller) Language() lang.Language {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rec.language
}

// Wait blocks until every submitted generation has finished.
func (c *Controller) Wait() {
	c.wg.Wait()
}

// Close resets the session and waits for in-flight work. Cancel the context
// given to Submit first if the generator may block.
func (c *Controller) Close() {
	c.Reset()
	c.Wait()
}
