package dropdown

import (
	"encoding/json"

	"github.com/a-h/templ"
	"github.com/evantbyrne/dropdown/templates/widgets"
	"golang.org/x/exp/slices"
)

const (
	DefaultSelected = "---None---"
	DefaultTitle    = "Chose your language"
)

var DefaultOptions = []string{"German", "English", "France"}

type Dropdown struct {
	EventTarget
	ID       string
	Open     bool
	Options  []string
	Selected string
	Title    string
}

func New(id string) *Dropdown {
	return &Dropdown{
		ID:       id,
		Options:  slices.Clone(DefaultOptions),
		Selected: DefaultSelected,
		Title:    DefaultTitle,
	}
}

func (dropdown *Dropdown) ToggleOpen() {
	dropdown.Open = !dropdown.Open
}

// SelectOption records option, notifies listeners and collapses the list.
// Listeners observe the new selection while the list is still open.
func (dropdown *Dropdown) SelectOption(option string) {
	dropdown.Selected = option
	dropdown.Dispatch(&Event{
		Bubbles:  true,
		Composed: true,
		Detail:   SelectionChanged{Option: option},
		Type:     EventSelectionChanged,
	})
	if dropdown.Open {
		dropdown.ToggleOpen()
	}
}

// Component renders the widget with interaction routes under prefix.
func (dropdown *Dropdown) Component(prefix string) templ.Component {
	return widgets.Dropdown(widgets.Props{
		Attributes: dropdown.Attributes(),
		Endpoint:   prefix + "/" + dropdown.ID,
		ID:         dropdown.ID,
		Open:       dropdown.Open,
		Options:    slices.Clone(dropdown.Options),
		Selected:   dropdown.Selected,
		Title:      dropdown.Title,
	})
}

func (dropdown *Dropdown) MarshalJSON() ([]byte, error) {
	options := dropdown.Options
	if options == nil {
		options = []string{}
	}
	return json.Marshal(map[string]any{
		"id":       dropdown.ID,
		"open":     dropdown.Open,
		"options":  options,
		"selected": dropdown.Selected,
		"title":    dropdown.Title,
	})
}
