package dropdown

import (
	"net/url"
	"testing"

	"golang.org/x/exp/slices"
)

func TestAttributesReflection(t *testing.T) {
	dropdown := New("a")
	attributes := dropdown.Attributes()
	if attributes["closed"] != true {
		t.Errorf("Expected closed attribute while collapsed, got '%v'", attributes["closed"])
	}
	if attributes["selected"] != DefaultSelected || attributes["title"] != DefaultTitle {
		t.Errorf("Expected reflected title and selected, got '%v'", attributes)
	}

	dropdown.ToggleOpen()
	if dropdown.Attributes()["closed"] != false {
		t.Error("Expected closed attribute to be dropped while open")
	}
}

func TestDecodeConfig(t *testing.T) {
	config, err := DecodeConfig(url.Values{
		"title":    {"Pick"},
		"options":  {"x", "y", "x"},
		"selected": {"y"},
		"ignored":  {"1"},
	})
	if err != nil {
		t.Fatal("Unexpected error:", err)
	}
	if config.Title != "Pick" || config.Selected == nil || *config.Selected != "y" {
		t.Errorf("Expected title and selected, got '%+v'", config)
	}
	if expected := []string{"x", "y", "x"}; !slices.Equal(config.Options, expected) {
		t.Errorf("Expected '%v', got '%v'", expected, config.Options)
	}

	config, err = DecodeConfig(url.Values{"title": {"Pick"}})
	if err != nil {
		t.Fatal("Unexpected error:", err)
	}
	if config.Selected != nil {
		t.Errorf("Expected absent selection, got '%v'", *config.Selected)
	}
}

func TestDecodeConfigEmptySelection(t *testing.T) {
	config, err := DecodeConfig(url.Values{"selected": {""}})
	if err != nil {
		t.Fatal("Unexpected error:", err)
	}
	if config.Selected == nil || *config.Selected != "" {
		t.Fatalf("Expected empty selection, got '%+v'", config)
	}
	dropdown := New("a")
	config.Apply(dropdown)
	if dropdown.Selected != "" {
		t.Errorf("Expected '', got '%s'", dropdown.Selected)
	}
}

func TestConfigApplyKeepsDefaults(t *testing.T) {
	dropdown := New("a")
	Config{}.Apply(dropdown)
	if dropdown.Title != DefaultTitle || dropdown.Selected != DefaultSelected || !slices.Equal(dropdown.Options, DefaultOptions) {
		t.Errorf("Expected defaults, got '%+v'", dropdown)
	}

	options := []string{"a"}
	Config{Options: options, Title: "T"}.Apply(dropdown)
	options[0] = "mutated"
	if dropdown.Options[0] != "a" || dropdown.Title != "T" {
		t.Errorf("Expected copied options and title, got '%+v'", dropdown)
	}

	empty := ""
	Config{Selected: &empty}.Apply(dropdown)
	if dropdown.Selected != "" {
		t.Errorf("Expected placeholder to be cleared, got '%s'", dropdown.Selected)
	}
}

func TestParseAttributes(t *testing.T) {
	config, err := ParseAttributes(map[string]string{
		"title":   "Language",
		"options": `["de","en"]`,
	})
	if err != nil {
		t.Fatal("Unexpected error:", err)
	}
	if config.Title != "Language" || config.Selected != nil {
		t.Errorf("Expected title only, got '%+v'", config)
	}
	if expected := []string{"de", "en"}; !slices.Equal(config.Options, expected) {
		t.Errorf("Expected '%v', got '%v'", expected, config.Options)
	}

	if config, _ := ParseAttributes(map[string]string{"options": "[]"}); config.Options == nil || len(config.Options) != 0 {
		t.Errorf("Expected empty options, got '%#v'", config.Options)
	}

	if config, _ := ParseAttributes(map[string]string{"selected": ""}); config.Selected == nil || *config.Selected != "" {
		t.Errorf("Expected empty selection to be kept, got '%+v'", config)
	}

	_, err = ParseAttributes(map[string]string{"options": "German"})
	if _, ok := err.(ErrorBadRequest); !ok {
		t.Errorf("Expected ErrorBadRequest, got '%v'", err)
	}
}
