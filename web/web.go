// Package web содержит встроенные в бинарник шаблоны страницы дашборда.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates
var templates embed.FS

// DashboardPage разбирает шаблон главной страницы
func DashboardPage() (*template.Template, error) {
	return template.ParseFS(templates, "templates/index.html")
}
