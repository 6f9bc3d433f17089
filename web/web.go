// Package web holds the server-rendered page templates.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"time"

	"zipsea/models"
	"zipsea/services/cruise"
	"zipsea/services/pricing"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses every page template with the shared helpers.
func Templates() (*template.Template, error) {
	t, err := template.New("").Funcs(Funcs()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("web.Templates: %w", err)
	}
	return t, nil
}

// MustTemplates is Templates for program start-up.
func MustTemplates() *template.Template {
	return template.Must(Templates())
}

func Funcs() template.FuncMap {
	return template.FuncMap{
		"price": func(p *float64) string {
			if p == nil {
				return ""
			}
			return cruise.FormatPrice(models.NewAmount(*p))
		},
		"str": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
		// markup descriptions render sanitized; plain text stays escaped
		"description": func(s string) any {
			if pricing.IsHTML(s) {
				return template.HTML(pricing.SanitizeHTML(s))
			}
			return s
		},
		"sailDate": func(s string) string {
			d, err := time.Parse("2006-01-02", firstN(s, 10))
			if err != nil {
				return s
			}
			return d.Format("January 2, 2006")
		},
		"year": func() int { return time.Now().Year() },
	}
}

func firstN(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
