// Package views holds the HTML templates rendered by the controllers.
package views

import (
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templates embed.FS

// Template names passed to gin's HTML renderer
const (
	BookList = "index.html"
	AddBook  = "add-book.html"
	EditBook = "edit-book.html"
	NoteList = "notes.html"
)

// Parse parses every embedded template. Each page is registered under its
// file name; header and footer are shared partials.
func Parse() (*template.Template, error) {
	return template.New("").ParseFS(templates, "templates/*.html")
}

// Load installs the parsed templates on router
func Load(router *gin.Engine) error {
	t, err := Parse()
	if err != nil {
		return err
	}
	router.SetHTMLTemplate(t)
	return nil
}
