package report

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	Open        key.Binding
	More        key.Binding
	PrevQuarter key.Binding
	NextQuarter key.Binding
	Chart1      key.Binding
	Chart2      key.Binding
	Chart3      key.Binding
	NextChart   key.Binding
	Tab         key.Binding
	Division    key.Binding
	District    key.Binding
	Subject     key.Binding
	Clear       key.Binding
}

var keys = keyMap{
	Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓", "Navigate")),
	Down:        key.NewBinding(key.WithKeys("down", "j")),
	Open:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Open")),
	More:        key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "More")),
	PrevQuarter: key.NewBinding(key.WithKeys("["), key.WithHelp("[ ]", "Quarter")),
	NextQuarter: key.NewBinding(key.WithKeys("]")),
	Chart1:      key.NewBinding(key.WithKeys("1")),
	Chart2:      key.NewBinding(key.WithKeys("2")),
	Chart3:      key.NewBinding(key.WithKeys("3")),
	NextChart:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c/1-3", "Chart")),
	Tab:         key.NewBinding(key.WithKeys("tab"), key.WithHelp("Tab", "Leaderboard")),
	Division:    key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "Division")),
	District:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "District")),
	Subject:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "Subject")),
	Clear:       key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "Clear")),
}
