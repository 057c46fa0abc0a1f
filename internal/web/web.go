// Package web holds the HTML templates of the site.
package web

import (
	"embed"
	"html/template"
	"time"

	"resume/pkg/utils"
)

//go:embed templates/*.html
var templateFS embed.FS

func Funcs() template.FuncMap {
	return template.FuncMap{
		"date": utils.FormatDate,
		"datetime": func(t time.Time) string {
			return utils.FormatDisplay(t)
		},
	}
}

// Load parses every embedded template into one set, addressed by file name.
func Load() (*template.Template, error) {
	return template.New("").Funcs(Funcs()).ParseFS(templateFS, "templates/*.html")
}
