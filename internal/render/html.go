package render

import (
	_ "embed"
	"html/template"
	"io"
)

//go:embed screen.html.tmpl
var screenTemplate string

var screenHTML = template.Must(template.New("screen").Parse(screenTemplate))

// HTML выводит экран HTML-страницей со списком карточек.
func HTML(w io.Writer, s Screen) error {
	return screenHTML.Execute(w, s)
}
