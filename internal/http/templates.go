package http

import (
	"embed"
	"html/template"
	"path/filepath"
	"time"
)

//go:embed templates/*.html
var embeddedTemplates embed.FS

var templateFuncs = template.FuncMap{
	"formatTime": func(t time.Time) string {
		return t.Local().Format("2006-01-02 15:04")
	},
}

// loadTemplates parses the embedded templates, or the *.html files in dir
// when it is set.
func loadTemplates(dir string) (*template.Template, error) {
	tmpl := template.New("").Funcs(templateFuncs)
	if dir != "" {
		return tmpl.ParseGlob(filepath.Join(dir, "*.html"))
	}
	return tmpl.ParseFS(embeddedTemplates, "templates/*.html")
}
