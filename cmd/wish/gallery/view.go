package gallery

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"wishgallery/cmd/wish/ui"
	"wishgallery/internal/gift"
	"wishgallery/internal/lang"
	"wishgallery/internal/session"
)

func (m Model) strings() lang.Strings {
	return lang.Lookup(m.snap.Language)
}

func (m Model) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTopBar(),
		m.viewport.View(),
		m.renderFooter(),
	)
}

// refresh rebuilds the scrollable body and records where the gift row starts.
func (m *Model) refresh() {
	var sections []string
	chosen, hasChoice := m.snap.ChosenGift()

	if hasChoice {
		sections = append(sections, m.renderOpened(chosen))
		m.giftLine = 0
	} else {
		sections = append(sections,
			ui.Santa(m.styles, m.snap.State == session.StateWishing),
			m.styles.Title.Render(m.strings().Title),
			m.styles.Subtitle.Render(m.strings().Subtitle),
			m.renderInput(),
			m.renderButton(),
		)
		m.giftLine = lipgloss.Height(lipgloss.JoinVertical(lipgloss.Left, sections...))
		switch m.snap.State {
		case session.StateOpening:
			sections = append(sections, "", m.renderGifts())
		case session.StateWishing:
			sections = append(sections, "", m.renderLocked())
		}
	}

	body := lipgloss.JoinVertical(lipgloss.Center, sections...)
	if m.width > 0 {
		body = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body)
	}
	m.viewport.SetContent(body)
}

func (m Model) renderTopBar() string {
	music := ""
	if m.player != nil {
		label := m.strings().MusicOff
		if m.music {
			label = m.strings().MusicOn
		}
		music = m.styles.Muted.Render(label) + "  "
	}
	toggle := m.styles.ToggleLabel.Render("[" + lang.ToggleLabel(m.snap.Language) + "]")
	bar := music + toggle
	return m.styles.Header.Width(m.width).Align(lipgloss.Right).Render(bar)
}

func (m Model) renderInput() string {
	if m.snap.State == session.StateIdle {
		return m.styles.Input.Render(m.input.View())
	}
	// Frozen after submission.
	return m.styles.Input.Width(m.input.Width() + 2).Render(m.styles.Muted.Render(m.snap.Wish))
}

func (m Model) renderButton() string {
	s := m.strings()
	switch m.snap.State {
	case session.StateWishing:
		return m.styles.ButtonBusy.Render(m.spinner.View() + " " + s.ButtonWishing)
	case session.StateIdle:
		return m.styles.Button.Render(s.ButtonIdle)
	default:
		return ""
	}
}

func (m Model) renderGifts() string {
	s := m.strings()
	boxes := make([]string, 0, len(m.snap.Gifts))
	for i := range m.snap.Gifts {
		style := m.styles.Gift
		if i == m.selected {
			style = m.styles.GiftSelected
		}
		boxes = append(boxes, style.Render(m.giftBox(i+1, s.GiftOpen)))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
	return lipgloss.JoinVertical(lipgloss.Center, row, m.styles.Reminder.Render(s.ChooseOne))
}

// renderLocked shows closed boxes while Santa is preparing.
func (m Model) renderLocked() string {
	boxes := make([]string, gift.Count)
	for i := range boxes {
		boxes[i] = m.styles.Gift.Render(m.giftBox(i+1, m.strings().GiftLocked))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func (m Model) giftBox(n int, caption string) string {
	return lipgloss.JoinVertical(lipgloss.Center,
		m.styles.GiftEmoji.Render("🎁"),
		m.styles.GiftTitle.Render(fmt.Sprintf("%d", n)),
		m.styles.Muted.Render(caption),
	)
}

func (m Model) renderOpened(g gift.Message) string {
	runes := []rune(g.Message)
	shown := string(runes[:min(m.typed, len(runes))])

	md := fmt.Sprintf("# %s %s\n\n%s", g.Emoji, g.Title, shown)
	text := m.renderMarkdown(md)

	card := m.styles.GiftOpened.Render(strings.TrimSpace(text))
	return lipgloss.JoinVertical(lipgloss.Center, card, "", m.styles.Button.Render(m.strings().Reset))
}

// renderMarkdown falls back to plain text if glamour fails or panics.
func (m Model) renderMarkdown(content string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = content
		}
	}()

	if m.renderer != nil && content != "" {
		if rendered, err := m.renderer.Render(content); err == nil {
			return rendered
		}
	}
	return content
}

func (m Model) renderFooter() string {
	s := m.strings()
	help := s.HelpIdle
	switch {
	case m.snap.HasChoice():
		help = s.HelpChosen
	case m.snap.State == session.StateOpening:
		help = s.HelpOpening
	case m.snap.State == session.StateWishing:
		help = s.ButtonWishing
	}
	return m.styles.Footer.Render(help)
}
