// Package gallery is the interactive terminal front end of the wish gallery.
// It renders controller snapshots and turns key presses into controller
// transitions; it never mutates session state itself.
package gallery

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"wishgallery/cmd/wish/ui"
	"wishgallery/internal/logging"
	"wishgallery/internal/session"
)

// typeInterval paces the typewriter reveal of an opened gift.
const typeInterval = 30 * time.Millisecond

// Player is the ambient music toggle.
type Player interface {
	Toggle(ctx context.Context) bool
	Playing() bool
}

// Config wires a Model to its collaborators.
type Config struct {
	Controller *session.Controller
	Updates    *Updates
	Player     Player // optional
	Styles     ui.Styles
}

type typeTickMsg struct {
	epoch uint64
}

// Model is the Bubble Tea model for the gallery.
type Model struct {
	ctx     context.Context
	ctrl    *session.Controller
	updates *Updates
	player  Player
	keys    keyMap

	styles   ui.Styles
	input    textarea.Model
	spinner  spinner.Model
	viewport viewport.Model
	renderer *glamour.TermRenderer

	snap     session.Snapshot
	selected int // highlighted gift box while choosing
	typed    int // runes of the opened gift message revealed so far
	music    bool
	giftLine int // viewport line where the gift row starts

	width  int
	height int
}

// New creates the gallery model. ctx bounds generation and playback.
func New(ctx context.Context, cfg Config) Model {
	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.CharLimit = 500
	ta.SetWidth(60)
	ta.SetHeight(3)
	ta.KeyMap.InsertNewline.SetEnabled(false)
	ta.Focus()

	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(cfg.Styles.Spinner))

	style := "light"
	if cfg.Styles.Theme.IsDark {
		style = "dark"
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(52),
	)
	if err != nil {
		logging.Get(logging.CategoryUI).Warnw("markdown renderer unavailable", "error", err)
	}

	m := Model{
		ctx:      ctx,
		ctrl:     cfg.Controller,
		updates:  cfg.Updates,
		player:   cfg.Player,
		keys:     defaultKeyMap(),
		styles:   cfg.Styles,
		input:    ta,
		spinner:  sp,
		viewport: viewport.New(80, 20),
		renderer: renderer,
		snap:     cfg.Controller.Snapshot(),
		width:    80,
		height:   24,
	}
	if m.player != nil {
		m.music = m.player.Playing()
	}
	m.applyLanguage()
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.listen())
}

func (m Model) listen() tea.Cmd {
	if m.updates == nil {
		return nil
	}
	return m.updates.wait()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case updateMsg:
		cmd := m.handleUpdate(session.Update(msg))
		return m, tea.Batch(cmd, m.listen())

	case spinner.TickMsg:
		if m.snap.State != session.StateWishing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.refresh()
		return m, cmd

	case typeTickMsg:
		return m, m.advanceTypewriter(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	m.viewport.Width = w
	m.viewport.Height = max(h-4, 5)
	m.input.SetWidth(min(max(w-8, 20), 70))
	m.refresh()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Language):
		m.ctrl.ToggleLanguage()
		m.sync()
		m.applyLanguage()
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Music):
		if m.player != nil {
			m.music = m.player.Toggle(m.ctx)
			m.refresh()
		}
		return m, nil
	}

	switch m.snap.State {
	case session.StateIdle:
		return m.handleIdleKey(msg)
	case session.StateOpening:
		return m.handleOpeningKey(msg)
	}
	// Wishing: input is frozen.
	return m, nil
}

func (m Model) handleIdleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Submit) {
		if !m.ctrl.SubmitWish(m.ctx, m.input.Value()) {
			return m, nil
		}
		m.input.Blur()
		m.sync()
		m.refresh()
		return m, m.spinner.Tick
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.ctrl.SetWish(m.input.Value())
	m.sync()
	m.refresh()
	return m, cmd
}

func (m Model) handleOpeningKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.snap.HasChoice() {
		if key.Matches(msg, m.keys.Reset) {
			m.ctrl.Reset()
			return m, m.afterReset()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Left):
		m.selected = (m.selected + len(m.snap.Gifts) - 1) % max(len(m.snap.Gifts), 1)
	case key.Matches(msg, m.keys.Right):
		m.selected = (m.selected + 1) % max(len(m.snap.Gifts), 1)
	case key.Matches(msg, m.keys.Pick):
		m.selected = int(msg.Runes[0] - '1')
		m.ctrl.Choose(m.selected)
	case key.Matches(msg, m.keys.Open):
		m.ctrl.Choose(m.selected)
	default:
		return m, nil
	}
	m.sync()
	m.refresh()
	return m, nil
}

func (m *Model) afterReset() tea.Cmd {
	m.input.Reset()
	m.selected = 0
	m.typed = 0
	m.sync()
	m.refresh()
	m.viewport.GotoTop()
	return m.input.Focus()
}

// handleUpdate reacts to a controller notification. The snapshot is always
// re-read so out-of-order updates cannot roll the view back.
func (m *Model) handleUpdate(u session.Update) tea.Cmd {
	m.sync()

	var cmd tea.Cmd
	switch u.Cue {
	case session.CueReveal:
		if m.snap.State == session.StateOpening {
			m.selected = 0
			m.refresh()
			m.viewport.SetYOffset(m.giftLine)
			return nil
		}
	case session.CueChosen:
		if m.snap.HasChoice() {
			m.typed = 0
			cmd = m.typeTick()
			m.refresh()
			m.viewport.GotoTop()
			return cmd
		}
	}

	// The input is only blurred between submit and reset, so Idle with a
	// blurred input means a failed generation dropped the wish.
	if m.snap.State == session.StateIdle && !m.input.Focused() {
		cmd = m.afterReset()
	}
	m.refresh()
	return cmd
}

func (m Model) typeTick() tea.Cmd {
	epoch := m.snap.Epoch
	return tea.Tick(typeInterval, func(time.Time) tea.Msg {
		return typeTickMsg{epoch: epoch}
	})
}

func (m *Model) advanceTypewriter(msg typeTickMsg) tea.Cmd {
	g, ok := m.snap.ChosenGift()
	if !ok || msg.epoch != m.snap.Epoch {
		return nil
	}
	total := len([]rune(g.Message))
	if m.typed >= total {
		return nil
	}
	m.typed++
	m.refresh()
	if m.typed >= total {
		return nil
	}
	return m.typeTick()
}

// sync pulls the latest snapshot from the controller.
func (m *Model) sync() {
	m.snap = m.ctrl.Snapshot()
	if m.selected >= len(m.snap.Gifts) {
		m.selected = 0
	}
}

func (m *Model) applyLanguage() {
	m.input.Placeholder = m.strings().Placeholder
}

// Snapshot exposes the last rendered controller state.
func (m Model) Snapshot() session.Snapshot {
	return m.snap
}
