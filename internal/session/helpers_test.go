package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"wishgallery/internal/gift"
	"wishgallery/internal/lang"
)

func sampleGifts() []gift.Message {
	return []gift.Message{
		{Title: "Quiet Mind", Message: "Rest is part of the work.", Emoji: "🌙"},
		{Title: "Small Steps", Message: "Begin where you stand.", Emoji: "👣"},
		{Title: "Kind Heart", Message: "Give what you hope to receive.", Emoji: "💝"},
	}
}

type genCall struct {
	wish     string
	language lang.Language
}

// stubGen returns fixed gifts and records every call.
type stubGen struct {
	mu    sync.Mutex
	calls []genCall
	gifts []gift.Message
}

func (g *stubGen) Generate(_ context.Context, wish string, l lang.Language) []gift.Message {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = append(g.calls, genCall{wish, l})
	return g.gifts
}

func (g *stubGen) Calls() []genCall {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]genCall(nil), g.calls...)
}

// gatedGen blocks each call until a value is sent on release.
type gatedGen struct {
	started chan genCall
	release chan []gift.Message
}

func newGatedGen() *gatedGen {
	return &gatedGen{
		started: make(chan genCall, 8),
		release: make(chan []gift.Message),
	}
}

func (g *gatedGen) Generate(ctx context.Context, wish string, l lang.Language) []gift.Message {
	g.started <- genCall{wish, l}
	select {
	case gifts := <-g.release:
		return gifts
	case <-ctx.Done():
		return nil
	}
}

// gatedPacer blocks until released.
type gatedPacer struct {
	entered chan struct{}
	release chan struct{}
}

func newGatedPacer() *gatedPacer {
	return &gatedPacer{entered: make(chan struct{}, 8), release: make(chan struct{})}
}

func (p *gatedPacer) Pace(ctx context.Context) error {
	p.entered <- struct{}{}
	select {
	case <-p.release:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// recorder collects observer updates.
type recorder struct {
	mu      sync.Mutex
	updates []Update
}

func (r *recorder) observe(u Update) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updates = append(r.updates, u)
}

func (r *recorder) All() []Update {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Update(nil), r.updates...)
}

func (r *recorder) Cues() []Cue {
	var cues []Cue
	for _, u := range r.All() {
		if u.Cue != CueNone {
			cues = append(cues, u.Cue)
		}
	}
	return cues
}

func (r *recorder) SawState(s State) bool {
	for _, u := range r.All() {
		if u.Snapshot.State == s {
			return true
		}
	}
	return false
}

func recv[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting on channel")
	}
	var zero T
	return zero
}

// openSession returns a controller already in Opening with sampleGifts.
func openSession(t *testing.T, opts ...Option) *Controller {
	t.Helper()
	c := New(&stubGen{gifts: sampleGifts()}, append([]Option{WithPacer(NoPacer{})}, opts...)...)
	if !c.SubmitWish(context.Background(), "I wish for a calm new year") {
		t.Fatal("submit rejected")
	}
	c.Wait()
	if s := c.Snapshot(); s.State != StateOpening {
		t.Fatalf("expected opening, got %s", s.State)
	}
	return c
}
