package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/evantbyrne/dropdown"
	"github.com/evantbyrne/dropdown/internal/logr"
	"github.com/evantbyrne/dropdown/templates/widgets"
	"github.com/gorilla/handlers"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	DefaultAddress            = ":8080"
	EnvironmentVariablePrefix = "DROPDOWN_"
	shutdownTimeout           = 10 * time.Second
)

type config struct {
	address  string
	logger   logr.Config
	options  []string
	selected string
	title    string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	var cfg config
	cmd := &cobra.Command{
		Use:           "dropdown",
		Short:         "dropdown widget demo server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), cfg)
		},
	}
	cmd.SetOut(out)
	cmd.SetArgs(args)

	cmd.Flags().StringVar(&cfg.address, "address", DefaultAddress, "Listening address")
	cmd.Flags().StringVar(&cfg.title, "title", dropdown.DefaultTitle, "Demo widget title")
	cmd.Flags().StringSliceVar(&cfg.options, "option", dropdown.DefaultOptions, "Demo widget option (repeatable)")
	cmd.Flags().StringVar(&cfg.selected, "selected", dropdown.DefaultSelected, "Demo widget initial selection")
	logr.LoadConfigFromFlags(cmd.Flags(), &cfg.logger)

	if err := setFlagsFromEnvVariables(cmd.Flags()); err != nil {
		return err
	}
	return cmd.ExecuteContext(ctx)
}

// Each flag can also be set with an env variable whose name starts with
// DROPDOWN_.
func setFlagsFromEnvVariables(fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if val, present := os.LookupEnv(flagToEnvVarName(f)); present && err == nil {
			err = fs.Set(f.Name, val)
		}
	})
	return err
}

func flagToEnvVarName(f *pflag.Flag) string {
	return EnvironmentVariablePrefix + strings.ReplaceAll(strings.ToUpper(f.Name), "-", "_")
}

// mount registers the widget routes and a demo page showing one widget built
// from cfg.
func mount(cfg config, app *dropdown.App) *dropdown.Registry {
	registry := dropdown.NewRegistry()
	registry.AddEventListener(dropdown.EventSelectionChanged, func(event *dropdown.Event) {
		if changed, ok := event.Detail.(dropdown.SelectionChanged); ok {
			app.Logger.Info("selection changed", "option", changed.Option)
		}
	})
	demo := registry.Create(dropdown.Config{
		Options:  cfg.options,
		Selected: &cfg.selected,
		Title:    cfg.title,
	})

	h := &dropdown.Handlers{Registry: registry}
	h.AddHandlers(app)
	app.Get("/{$}", func(strand *dropdown.Strand) error {
		snapshot, err := registry.Get(demo.ID)
		if err != nil {
			return err
		}
		return strand.Render(widgets.Page(snapshot.Title, snapshot.Component(h.Prefix)))
	})
	return registry
}

func serve(ctx context.Context, cfg config) error {
	logger, err := logr.New(&cfg.logger)
	if err != nil {
		return err
	}
	app := &dropdown.App{Logger: logger}
	mount(cfg, app)

	ln, err := net.Listen("tcp", cfg.address)
	if err != nil {
		return err
	}
	server := &http.Server{Handler: handlers.CompressHandler(app)}
	errch := make(chan error, 1)
	go func() {
		errch <- server.Serve(ln)
	}()
	logger.Info("started server", "address", ln.Addr().String())

	select {
	case err := <-errch:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("gracefully shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			return server.Close()
		}
		return nil
	}
}
