// Package web bundles the server-rendered pages and static assets into the
// binary. Templates are plain html/template files rendered through Gin.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed templates static
var files embed.FS

// Templates parses every page template. Panics on a malformed template,
// which is a build defect, not a runtime condition.
func Templates() *template.Template {
	return template.Must(template.ParseFS(files, "templates/pages/*.html"))
}

// StaticFS exposes the embedded static assets for mounting under /static.
func StaticFS() http.FileSystem {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
