package main

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"wishgallery/cmd/wish/gallery"
	"wishgallery/cmd/wish/ui"
	"wishgallery/internal/audio"
	"wishgallery/internal/gift"
	"wishgallery/internal/logging"
	"wishgallery/internal/session"
)

func newGiftClient(ctx context.Context) (*gift.Client, error) {
	return gift.NewClient(ctx, gift.Config{
		APIKey:  cfg.Gemini.APIKey,
		Model:   cfg.Gemini.Model,
		BaseURL: cfg.Gemini.BaseURL,
	})
}

// runGallery runs the interactive gallery until the user quits.
func runGallery(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	client, err := newGiftClient(ctx)
	if err != nil {
		return err
	}

	updates := gallery.NewUpdates()
	ctrl := session.New(client,
		session.WithPacer(session.DelayPacer(cfg.GetRevealDelay())),
		session.WithLanguage(cfg.GetLanguage()),
		session.WithObserver(updates.Observe),
	)
	player := audio.NewPlayer(cfg.Audio)

	logging.Boot("gallery starting", "session", ctrl.ID(), "model", client.Model())

	p := tea.NewProgram(
		gallery.New(ctx, gallery.Config{
			Controller: ctrl,
			Updates:    updates,
			Player:     player,
			Styles:     ui.DefaultStyles(),
		}),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, runErr := p.Run()

	// Shut down in reverse order: stop generation, then playback.
	cancel()
	updates.Stop()
	ctrl.Close()
	player.Close()

	logging.Boot("gallery stopped", "session", ctrl.ID())
	// A signal cancels the parent context; that is a normal exit.
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return fmt.Errorf("gallery: %w", runErr)
	}
	return nil
}
