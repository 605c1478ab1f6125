package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/antchfx/htmlquery"
	"github.com/evantbyrne/dropdown"
	"github.com/spf13/pflag"
)

func TestMountDemoPage(t *testing.T) {
	app := &dropdown.App{}
	registry := mount(config{
		options:  []string{"Go", "Rust"},
		selected: dropdown.DefaultSelected,
		title:    "Favourite language",
	}, app)
	if registry.Len() != 1 {
		t.Fatalf("Expected 1 demo instance, got %d", registry.Len())
	}

	r := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	app.ServeHTTP(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	doc, err := htmlquery.Parse(w.Body)
	if err != nil {
		t.Fatal("Unexpected error:", err)
	}
	rows := htmlquery.Find(doc, "//div[@class='dd-option']")
	if len(rows) != 2 || htmlquery.InnerText(rows[0]) != "Go" || htmlquery.InnerText(rows[1]) != "Rust" {
		t.Errorf("Expected demo options, got %d rows", len(rows))
	}

	r = httptest.NewRequest("GET", "/unknown", nil)
	w = httptest.NewRecorder()
	app.ServeHTTP(w, r)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func TestSetFlagsFromEnvVariables(t *testing.T) {
	t.Setenv("DROPDOWN_ADDRESS", ":9090")
	t.Setenv("DROPDOWN_LOG_FORMAT", "json")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	address := fs.String("address", ":8080", "")
	format := fs.String("log-format", "default", "")
	if err := setFlagsFromEnvVariables(fs); err != nil {
		t.Fatal("Unexpected error:", err)
	}
	if *address != ":9090" || *format != "json" {
		t.Errorf("Expected env overrides, got '%s' and '%s'", *address, *format)
	}
}

func TestRunRejectsUnknownLogFormat(t *testing.T) {
	var out strings.Builder
	err := run(context.Background(), []string{"--log-format", "xml", "--address", "127.0.0.1:0"}, &out)
	if err == nil || !strings.Contains(err.Error(), "unrecognised logging format") {
		t.Errorf("Expected logging format error, got '%v'", err)
	}
}
