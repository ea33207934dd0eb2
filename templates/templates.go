// Package templates renders the embedded HTML pages through gin.
package templates

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin/render"
	"github.com/microcosm-cc/bluemonday"
)

//go:embed html
var files embed.FS

// layout is the entry template every page is executed through.
const layout = "base"

var ugc = bluemonday.UGCPolicy()

// Renderer is a gin render.HTMLRender holding one parsed set per page:
// the layout, the shared includes and the page itself.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses every page under html/ except the layout and includes.
func New() (*Renderer, error) {
	r := &Renderer{pages: map[string]*template.Template{}}
	err := fs.WalkDir(files, "html", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		name := strings.TrimPrefix(path, "html/")
		if name == "base.html" || strings.HasPrefix(name, "includes/") {
			return nil
		}
		t, err := template.New(name).Funcs(Funcs()).ParseFS(files, "html/base.html", "html/includes/*.html", path)
		if err != nil {
			return fmt.Errorf("parse %s: %w", name, err)
		}
		r.pages[name] = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

// MustNew is New that panics; templates are embedded so a failure is a build defect.
func MustNew() *Renderer {
	r, err := New()
	if err != nil {
		panic(err)
	}
	return r
}

// Has reports whether page was parsed.
func (r *Renderer) Has(page string) bool {
	_, ok := r.pages[page]
	return ok
}

// Instance implements render.HTMLRender.
func (r *Renderer) Instance(page string, data any) render.Render {
	t, ok := r.pages[page]
	if !ok {
		return missingPage(page)
	}
	return render.HTML{Template: t, Name: layout, Data: data}
}

type missingPage string

func (m missingPage) Render(w http.ResponseWriter) error {
	return fmt.Errorf("template %q not found", string(m))
}

func (m missingPage) WriteContentType(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
}

// Funcs are the helpers available to every page.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"linebreaksbr": linebreaksbr,
		"formatDate":   formatDate,
		"pageURL":      pageURL,
		"itoa":         func(v uint) string { return fmt.Sprint(v) },
	}
}

// linebreaksbr sanitizes user text and turns newlines into <br>.
func linebreaksbr(s string) template.HTML {
	clean := ugc.Sanitize(strings.ReplaceAll(s, "\r\n", "\n"))
	return template.HTML(strings.ReplaceAll(clean, "\n", "<br>"))
}

func formatDate(t time.Time) string {
	return t.Format("2 January 2006")
}

func pageURL(n int) string {
	return fmt.Sprintf("?page=%d", n)
}
