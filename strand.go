package dropdown

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/a-h/templ"
)

type requestKey struct{}

type Strand struct {
	Context  context.Context
	Error    error
	Response http.ResponseWriter
}

// IsHtmx reports whether the request was issued by htmx.
func (strand *Strand) IsHtmx() bool {
	return strand.Request().Header.Get("HX-Request") == "true"
}

func (strand *Strand) PathValue(name string) string {
	return strand.Request().PathValue(name)
}

func (strand *Strand) RedirectWithStatus(url string, status int) error {
	strand.Response.Header().Set("Location", url)
	strand.Response.WriteHeader(status)
	return nil
}

func (strand *Strand) Render(component templ.Component) error {
	strand.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(strand.Context, strand.Response)
}

func (strand *Strand) Request() *http.Request {
	return strand.Context.Value(requestKey{}).(*http.Request)
}

// Trigger asks htmx to dispatch a client-side event named eventType with
// detail as its payload. Must be called before the body is written.
func (strand *Strand) Trigger(eventType string, detail any) error {
	encoded, err := json.Marshal(map[string]any{eventType: detail})
	if err != nil {
		return err
	}
	strand.Response.Header().Set("HX-Trigger", string(encoded))
	return nil
}

func (strand *Strand) WantsJson() bool {
	return strand.Response.Header().Get("Content-Type") == "application/json" ||
		strand.Request().Header.Get("Content-Type") == "application/json" ||
		strings.Contains(strand.Request().Header.Get("Accept"), "application/json")
}

func (strand *Strand) WriteBody(contentType string, body any) error {
	strand.Response.Header().Set("Content-Type", contentType)
	switch bv := body.(type) {
	case []byte:
		_, err := strand.Response.Write(bv)
		return err
	}
	_, err := fmt.Fprint(strand.Response, body)
	return err
}

func (strand *Strand) WriteJson(body any) error {
	strand.Response.Header().Set("Content-Type", "application/json")
	encoded, err := json.Marshal(body)
	if err != nil {
		return err
	}
	_, err = strand.Response.Write(encoded)
	return err
}
