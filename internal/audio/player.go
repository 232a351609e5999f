// Package audio plays the gallery's looping ambient track through an external
// player process. Playback problems are logged and never reach the session.
package audio

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"sync"

	"wishgallery/internal/config"
	"wishgallery/internal/logging"
)

var (
	ErrDisabled  = errors.New("audio disabled")
	ErrNoTrack   = errors.New("no audio track configured")
	ErrNoCommand = errors.New("no player command configured")
)

// Player toggles a single background playback process.
type Player struct {
	cfg config.AudioConfig

	mu   sync.Mutex
	cmd  *exec.Cmd
	done chan struct{}
}

// NewPlayer creates a stopped player.
func NewPlayer(cfg config.AudioConfig) *Player {
	return &Player{cfg: cfg}
}

// Playing reports whether the player process is running.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cmd != nil
}

// Toggle starts playback if stopped and stops it if playing. It returns the
// new playing state. A failed start is logged and leaves the player stopped.
func (p *Player) Toggle(ctx context.Context) bool {
	log := logging.Get(logging.CategoryAudio)

	if p.Playing() {
		p.stop()
		log.Debugw("playback stopped")
		return false
	}

	if err := p.start(ctx); err != nil {
		log.Warnw("playback unavailable", "error", err, "track", p.cfg.Track)
		return false
	}
	log.Debugw("playback started", "track", p.cfg.Track)
	return true
}

func (p *Player) start(ctx context.Context) error {
	if !p.cfg.Enabled {
		return ErrDisabled
	}
	if p.cfg.Track == "" {
		return ErrNoTrack
	}
	if len(p.cfg.Command) == 0 {
		return ErrNoCommand
	}
	if !isRemote(p.cfg.Track) {
		if _, err := os.Stat(p.cfg.Track); err != nil {
			return fmt.Errorf("track: %w", err)
		}
	}
	bin, err := exec.LookPath(p.cfg.Command[0])
	if err != nil {
		return fmt.Errorf("player: %w", err)
	}

	args := append(append([]string(nil), p.cfg.Command[1:]...), p.cfg.Track)

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cmd != nil {
		return nil
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start player: %w", err)
	}
	done := make(chan struct{})
	p.cmd, p.done = cmd, done

	go p.reap(cmd, done)
	return nil
}

// isRemote reports whether track is a URL the player streams itself.
func isRemote(track string) bool {
	u, err := url.Parse(track)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// reap waits for the process and clears the player if it exits on its own.
func (p *Player) reap(cmd *exec.Cmd, done chan struct{}) {
	err := cmd.Wait()
	close(done)

	p.mu.Lock()
	exited := p.cmd == cmd
	if exited {
		p.cmd, p.done = nil, nil
	}
	p.mu.Unlock()

	if exited {
		logging.Get(logging.CategoryAudio).Infow("player exited", "error", err)
	}
}

func (p *Player) stop() {
	p.mu.Lock()
	cmd, done := p.cmd, p.done
	p.cmd, p.done = nil, nil
	p.mu.Unlock()

	if cmd == nil {
		return
	}
	if cmd.Process != nil {
		_ = cmd.Process.Kill()
	}
	<-done
}

// Close stops playback and waits for the player process to exit.
func (p *Player) Close() {
	p.stop()
}
