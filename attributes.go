package dropdown

import (
	"encoding/json"
	"net/url"

	"github.com/a-h/templ"
	"github.com/gorilla/schema"
	"golang.org/x/exp/slices"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

// Attributes reflects state onto the host element. The closed attribute is
// present only while the list is collapsed.
func (dropdown *Dropdown) Attributes() templ.Attributes {
	return templ.Attributes{
		"closed":   !dropdown.Open,
		"selected": dropdown.Selected,
		"title":    dropdown.Title,
	}
}

// Config carries the host-settable inputs. Nil options, a nil selection and
// an empty title keep the defaults. A selection set to "" clears the
// placeholder.
type Config struct {
	Options  []string `schema:"options" json:"options"`
	Selected *string  `schema:"selected" json:"selected"`
	Title    string   `schema:"title" json:"title"`
}

func (config Config) Apply(dropdown *Dropdown) {
	if config.Options != nil {
		dropdown.Options = slices.Clone(config.Options)
	}
	if config.Selected != nil {
		dropdown.Selected = *config.Selected
	}
	if config.Title != "" {
		dropdown.Title = config.Title
	}
}

func DecodeConfig(values url.Values) (Config, error) {
	var config Config
	if err := decoder.Decode(&config, values); err != nil {
		return config, ErrorBadRequest{Message: "dropdown: " + err.Error()}
	}
	if config.Selected == nil && values.Has("selected") {
		selected := values.Get("selected")
		config.Selected = &selected
	}
	return config, nil
}

// ParseAttributes reads markup attributes. The options attribute holds a JSON
// array of strings.
func ParseAttributes(attributes map[string]string) (Config, error) {
	config := Config{Title: attributes["title"]}
	if selected, ok := attributes["selected"]; ok {
		config.Selected = &selected
	}
	if raw, ok := attributes["options"]; ok && raw != "" {
		if err := json.Unmarshal([]byte(raw), &config.Options); err != nil {
			return config, ErrorBadRequest{Message: "dropdown: options attribute: " + err.Error()}
		}
		if config.Options == nil {
			config.Options = []string{}
		}
	}
	return config, nil
}
