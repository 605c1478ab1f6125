package widgets

import (
	_ "embed"

	"github.com/a-h/templ"
)

//go:generate templ generate

//go:embed dropdown.css
var Stylesheet string

type Props struct {
	Attributes templ.Attributes
	Endpoint   string
	ID         string
	Open       bool
	Options    []string
	Selected   string
	Title      string
}

func Ternary[T any](condition bool, truthy T, falsy T) T {
	if condition {
		return truthy
	}
	return falsy
}
