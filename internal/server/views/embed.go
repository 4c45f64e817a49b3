// Package views holds the HTML page shells of the dashboard. Charts are drawn
// client-side by the scripts under /static/js.
package views

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed pages/*.html
var pages embed.FS

// Engine returns a template engine over the embedded page shells.
func Engine() *html.Engine {
	sub, err := fs.Sub(pages, "pages")
	if err != nil {
		panic(err)
	}
	return html.NewFileSystem(http.FS(sub), ".html")
}
