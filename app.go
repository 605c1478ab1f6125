package dropdown

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"

	"github.com/felixge/httpsnoop"
	"github.com/go-logr/logr"
)

type App struct {
	ErrorHandler func(*Strand)
	Logger       logr.Logger
	Middleware   []func(*Strand) error
	mux          *http.ServeMux
	routes       map[string]map[string]func(*Strand) error
}

func (app *App) defaultErrorHandler(strand *Strand) {
	if strand.Error == nil {
		return
	}
	status := http.StatusInternalServerError
	if errWithStatus, ok := strand.Error.(ErrorWithStatus); ok {
		status = errWithStatus.Status()
	}
	message := strand.Error.Error()
	if status == http.StatusInternalServerError {
		app.Logger.Error(strand.Error, "handling request", "method", strand.Request().Method, "path", strand.Request().URL.Path)
		message = ErrorInternalServer{}.Error()
	}
	if notAllowed, ok := strand.Error.(ErrorMethodNotAllowed); ok {
		for _, method := range notAllowed.AllowedMethods {
			strand.Response.Header().Add("Allow", method)
		}
	}

	if strand.WantsJson() {
		strand.Response.Header().Set("Content-Type", "application/json")
		strand.Response.WriteHeader(status)
		if jsonError, ok := strand.Error.(json.Marshaler); ok {
			encoded, _ := json.Marshal(jsonError)
			strand.Response.Write(encoded)
		} else {
			encoded, _ := json.Marshal(map[string]string{"error": message})
			strand.Response.Write(encoded)
		}
	} else {
		http.Error(strand.Response, message, status)
	}
}

func (app *App) Delete(path string, handler func(*Strand) error) {
	app.Route(http.MethodDelete, path, handler)
}

func (app *App) Get(path string, handler func(*Strand) error) {
	app.Route(http.MethodGet, path, handler)
}

func (app *App) Post(path string, handler func(*Strand) error) {
	app.Route(http.MethodPost, path, handler)
}

func (app *App) init() {
	if app.ErrorHandler == nil {
		app.ErrorHandler = app.defaultErrorHandler
	}
	if app.mux == nil {
		app.mux = http.NewServeMux()
		app.routes = make(map[string]map[string]func(*Strand) error, 0)
		// Unmatched paths land here with no methods and get ErrorNotFound.
		app.handle("/")
	}
}

func (app *App) handle(path string) map[string]func(*Strand) error {
	methods, ok := app.routes[path]
	if !ok {
		methods = make(map[string]func(*Strand) error, 0)
		app.routes[path] = methods
		app.mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			app.serve(methods, w, r)
		})
	}
	return methods
}

// Route registers handler for method on a http.ServeMux pattern. Requests with
// a method that has no handler on the pattern get ErrorMethodNotAllowed.
func (app *App) Route(method string, path string, handler func(*Strand) error) {
	app.init()
	app.handle(path)[method] = handler
}

func (app *App) serve(methods map[string]func(*Strand) error, w http.ResponseWriter, r *http.Request) {
	strand := &Strand{
		Context:  context.WithValue(r.Context(), requestKey{}, r),
		Response: w,
	}
	if len(methods) == 0 {
		strand.Error = ErrorNotFound{}
		app.ErrorHandler(strand)
		return
	}
	handler, ok := methods[r.Method]
	if !ok && r.Method == http.MethodHead {
		handler, ok = methods[http.MethodGet]
	}
	if !ok {
		allowed := make([]string, 0, len(methods))
		for method := range methods {
			allowed = append(allowed, method)
		}
		sort.Strings(allowed)
		strand.Error = ErrorMethodNotAllowed{AllowedMethods: allowed}
		app.ErrorHandler(strand)
		return
	}
	for _, middleware := range app.Middleware {
		if strand.Error = middleware(strand); strand.Error != nil {
			app.ErrorHandler(strand)
			return
		}
	}
	if strand.Error = handler(strand); strand.Error != nil {
		app.ErrorHandler(strand)
	}
}

func (app *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	app.init()
	m := httpsnoop.CaptureMetrics(app.mux, w, r)
	app.Logger.V(1).Info("request",
		"duration", fmt.Sprintf("%dms", m.Duration.Milliseconds()),
		"status", m.Code,
		"method", r.Method,
		"path", r.URL.Path)
}

func (app *App) UseMiddleware(middleware ...func(*Strand) error) {
	app.Middleware = append(app.Middleware, middleware...)
}
