package dropdown

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/evantbyrne/dropdown/templates/widgets"
)

const (
	DefaultPrefix     = "/dropdowns"
	StylesheetPath    = "/dropdown.css"
	selectOptionField = "option"
)

// Handlers exposes the registry's instances over HTTP for htmx.
type Handlers struct {
	Prefix   string
	Registry *Registry
}

func (handlers *Handlers) AddHandlers(app *App) {
	if handlers.Prefix == "" {
		handlers.Prefix = DefaultPrefix
	}
	app.Post(handlers.Prefix, handlers.create)
	app.Post(handlers.Prefix+"/embed", handlers.embed)
	app.Get(handlers.Prefix+"/{id}", handlers.get)
	app.Delete(handlers.Prefix+"/{id}", handlers.delete)
	app.Post(handlers.Prefix+"/{id}/toggle", handlers.toggle)
	app.Post(handlers.Prefix+"/{id}/select", handlers.selectOption)
	app.Get(StylesheetPath, handlers.stylesheet)
}

func (handlers *Handlers) create(strand *Strand) error {
	config, err := decodeCreateRequest(strand.Request())
	if err != nil {
		return err
	}
	dropdown := handlers.Registry.Create(config)
	if strand.IsHtmx() {
		return strand.Render(dropdown.Component(handlers.Prefix))
	}
	if strand.WantsJson() {
		strand.Response.Header().Set("Content-Type", "application/json")
		strand.Response.WriteHeader(http.StatusCreated)
		return strand.WriteJson(dropdown)
	}
	return strand.RedirectWithStatus(handlers.Prefix+"/"+dropdown.ID, http.StatusSeeOther)
}

func decodeCreateRequest(request *http.Request) (Config, error) {
	var config Config
	if strings.HasPrefix(request.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(request.Body).Decode(&config); err != nil {
			return config, ErrorBadRequest{Message: "dropdown: " + err.Error()}
		}
		return config, nil
	}
	if err := request.ParseForm(); err != nil {
		return config, ErrorBadRequest{Message: "dropdown: " + err.Error()}
	}
	return DecodeConfig(request.PostForm)
}

func (handlers *Handlers) delete(strand *Strand) error {
	if err := handlers.Registry.Delete(strand.PathValue("id")); err != nil {
		return err
	}
	return strand.WriteJson(StatusOK{})
}

// embed creates an instance from markup attributes posted by a host
// placeholder, typically one carrying hx-trigger="load". The options field is
// a JSON array.
func (handlers *Handlers) embed(strand *Strand) error {
	request := strand.Request()
	if err := request.ParseForm(); err != nil {
		return ErrorBadRequest{Message: "dropdown: " + err.Error()}
	}
	attributes := make(map[string]string, len(request.PostForm))
	for name := range request.PostForm {
		attributes[name] = request.PostForm.Get(name)
	}
	config, err := ParseAttributes(attributes)
	if err != nil {
		return err
	}
	dropdown := handlers.Registry.Create(config)
	return strand.Render(dropdown.Component(handlers.Prefix))
}

func (handlers *Handlers) get(strand *Strand) error {
	dropdown, err := handlers.Registry.Get(strand.PathValue("id"))
	if err != nil {
		return err
	}
	if strand.WantsJson() {
		return strand.WriteJson(&dropdown)
	}
	return strand.Render(dropdown.Component(handlers.Prefix))
}

func (handlers *Handlers) selectOption(strand *Strand) error {
	request := strand.Request()
	if err := request.ParseForm(); err != nil {
		return ErrorBadRequest{Message: "dropdown: " + err.Error()}
	}
	if !request.PostForm.Has(selectOptionField) {
		return ErrorBadRequest{Message: "dropdown: missing form field '" + selectOptionField + "'"}
	}
	option := request.PostForm.Get(selectOptionField)

	var rendered Dropdown
	err := handlers.Registry.Update(strand.PathValue("id"), func(dropdown *Dropdown) {
		dropdown.SelectOption(option)
		rendered = *dropdown
	})
	if err != nil {
		return err
	}
	if err := strand.Trigger(EventSelectionChanged, SelectionChanged{Option: option}); err != nil {
		return err
	}
	return strand.Render(rendered.Component(handlers.Prefix))
}

func (handlers *Handlers) stylesheet(strand *Strand) error {
	return strand.WriteBody("text/css; charset=utf-8", widgets.Stylesheet)
}

func (handlers *Handlers) toggle(strand *Strand) error {
	var rendered Dropdown
	err := handlers.Registry.Update(strand.PathValue("id"), func(dropdown *Dropdown) {
		dropdown.ToggleOpen()
		rendered = *dropdown
	})
	if err != nil {
		return err
	}
	return strand.Render(rendered.Component(handlers.Prefix))
}
