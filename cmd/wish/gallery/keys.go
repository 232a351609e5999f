package gallery

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Submit   key.Binding
	Left     key.Binding
	Right    key.Binding
	Open     key.Binding
	Pick     key.Binding
	Reset    key.Binding
	Language key.Binding
	Music    key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "make a wish")),
		Left:     key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←", "previous gift")),
		Right:    key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→", "next gift")),
		Open:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open")),
		Pick:     key.NewBinding(key.WithKeys("1", "2", "3"), key.WithHelp("1-3", "open gift")),
		Reset:    key.NewBinding(key.WithKeys("r", "enter"), key.WithHelp("r", "make another wish")),
		Language: key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "language")),
		Music:    key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "music")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}
