package internal

import (
	_ "embed"
	"html/template"

	"github.com/a-h/templ"
)

//go:embed templates/index.html
var indexHTML string

var indexTemplate = template.Must(template.New("index").Parse(indexHTML))

type localeLink struct {
	ID     string
	Name   string
	Active bool
}

type counterLink struct {
	Label string
	Count int
}

type pageView struct {
	Lang     string
	Hue      int
	Greeting template.HTML
	Counter  template.HTML
	Uptime   string
	Queue    template.HTML
	Language string
	Locales  []localeLink
	Counters []counterLink
}

func indexPage(v pageView) templ.Component {
	return templ.FromGoHTML(indexTemplate, v)
}
