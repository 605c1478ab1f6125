package widgets

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
)

func render(t *testing.T, component templ.Component) *html.Node {
	t.Helper()
	var buf bytes.Buffer
	if err := component.Render(context.Background(), &buf); err != nil {
		t.Fatal("Unexpected error:", err)
	}
	doc, err := htmlquery.Parse(&buf)
	if err != nil {
		t.Fatal("Unexpected error:", err)
	}
	return doc
}

func TestDropdownOptionOrder(t *testing.T) {
	doc := render(t, Dropdown(Props{
		Endpoint: "/dropdowns/1",
		Open:     true,
		Options:  []string{"x", "y", "z", "y"},
	}))
	rows := htmlquery.Find(doc, "//div[@class='dd-body open']/div[@class='dd-option']")
	actual := make([]string, 0, len(rows))
	for _, row := range rows {
		actual = append(actual, htmlquery.InnerText(row))
	}
	if strings.Join(actual, ",") != "x,y,z,y" {
		t.Errorf("Expected 'x,y,z,y', got '%s'", strings.Join(actual, ","))
	}
	if hxVals := htmlquery.SelectAttr(rows[1], "hx-vals"); hxVals != `{"option":"y"}` {
		t.Errorf("Expected option payload, got '%s'", hxVals)
	}
	if hxPost := htmlquery.SelectAttr(rows[0], "hx-post"); hxPost != "/dropdowns/1/select" {
		t.Errorf("Expected select route, got '%s'", hxPost)
	}
}

func TestDropdownStateClasses(t *testing.T) {
	cases := map[bool]string{true: "open", false: "closed"}
	for open, class := range cases {
		doc := render(t, Dropdown(Props{Open: open, Options: []string{"a"}}))
		for _, element := range []string{"dd-toggle", "dd-body"} {
			if htmlquery.FindOne(doc, "//div[@class='"+element+" "+class+"']") == nil {
				t.Errorf("Expected '%s %s' when open=%v", element, class, open)
			}
		}
	}
}

func TestDropdownHead(t *testing.T) {
	doc := render(t, Dropdown(Props{
		Attributes: templ.Attributes{"closed": true, "selected": "<None>", "title": "Lang"},
		Endpoint:   "/dropdowns/abc",
		ID:         "abc",
		Selected:   "<None>",
		Title:      "Lang",
	}))
	host := htmlquery.FindOne(doc, "//lit-element-drop-down")
	if host == nil {
		t.Fatal("Expected host element")
	}
	if htmlquery.SelectAttr(host, "id") != "dd-abc" || !htmlquery.ExistsAttr(host, "closed") || htmlquery.SelectAttr(host, "selected") != "<None>" {
		t.Errorf("Expected reflected attributes, got '%s'", htmlquery.OutputHTML(host, false))
	}
	if label := htmlquery.FindOne(doc, "//div[@class='dd-label']"); htmlquery.InnerText(label) != "Lang" {
		t.Errorf("Expected 'Lang', got '%s'", htmlquery.InnerText(label))
	}
	head := htmlquery.FindOne(doc, "//div[@class='dd-head']")
	if htmlquery.SelectAttr(head, "hx-post") != "/dropdowns/abc/toggle" {
		t.Errorf("Expected toggle route, got '%s'", htmlquery.SelectAttr(head, "hx-post"))
	}
	if choice := htmlquery.FindOne(head, "div[@class='dd-choice']"); htmlquery.InnerText(choice) != "<None>" {
		t.Errorf("Expected escaped selection to round trip, got '%s'", htmlquery.InnerText(choice))
	}
}

func TestDropdownEscapesText(t *testing.T) {
	var buf bytes.Buffer
	if err := Dropdown(Props{Options: []string{"<script>alert(1)</script>"}}).Render(context.Background(), &buf); err != nil {
		t.Fatal("Unexpected error:", err)
	}
	if strings.Contains(buf.String(), "<script>") {
		t.Errorf("Expected escaped option, got '%s'", buf.String())
	}
}

func TestDropdownWithoutEndpoint(t *testing.T) {
	doc := render(t, Dropdown(Props{Options: []string{"a"}}))
	if htmlquery.FindOne(doc, "//*[@hx-post]") != nil {
		t.Error("Expected no htmx routes without an endpoint")
	}
}

func TestPage(t *testing.T) {
	doc := render(t, Page("Demo", Dropdown(Props{Title: "Inside"}), Dropdown(Props{Title: "Second"})))
	if title := htmlquery.FindOne(doc, "//title"); htmlquery.InnerText(title) != "Demo" {
		t.Errorf("Expected 'Demo', got '%s'", htmlquery.InnerText(title))
	}
	if style := htmlquery.FindOne(doc, "//head/style"); style == nil || !strings.Contains(htmlquery.InnerText(style), ".dd-body.open") {
		t.Error("Expected inline stylesheet in head")
	}
	if htmlquery.FindOne(doc, "//head/script[@src]") == nil {
		t.Error("Expected htmx script")
	}
	if widgets := htmlquery.Find(doc, "//body/lit-element-drop-down"); len(widgets) != 2 {
		t.Errorf("Expected 2 widgets inside body, got %d", len(widgets))
	}
}

func TestDropdownAttributesSpread(t *testing.T) {
	doc := render(t, Dropdown(Props{
		Attributes: templ.Attributes{"closed": false, "title": `a "quoted" title`},
	}))
	host := htmlquery.FindOne(doc, "//lit-element-drop-down")
	if htmlquery.ExistsAttr(host, "closed") {
		t.Error("Expected false boolean attribute to be omitted")
	}
	if title := htmlquery.SelectAttr(host, "title"); title != `a "quoted" title` {
		t.Errorf("Expected quoted title to round trip, got '%s'", title)
	}
}

func TestTernary(t *testing.T) {
	if Ternary(true, "open", "closed") != "open" || Ternary(false, 1, 2) != 2 {
		t.Error("Expected Ternary to pick by condition")
	}
}
