// Package render turns the portfolio content into the HTML page.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/tsenadheera/portfolio/internal/content"
	"github.com/tsenadheera/portfolio/internal/lightbox"
)

//go:embed templates/*.html
var templateFS embed.FS

// Sections are the page anchors in document order. Navigation links and the
// scroll spy use the same IDs.
var Sections = []string{"home", "about", "skills", "projects", "certifications", "contact"}

const NotFoundTitle = "404 - Page Not Found"

// Page carries the per-request values. Everything else comes from the
// portfolio the Renderer was built with.
type Page struct {
	Title string
	// Error, when set, is shown as a banner above the content.
	Error string
	Year  int
}

// Renderer is safe for concurrent use. Markdown descriptions are converted
// once, in New.
type Renderer struct {
	tmpl      *template.Template
	portfolio *content.Portfolio
	projects  []projectView
	total     int
}

type projectView struct {
	content.Project
	Index       int
	Body        template.HTML
	Slides      []slideView
	Rotates     bool
	LiveLink    string
	HasLiveLink bool
}

type slideView struct {
	Image         string
	Alt           string
	Index         int
	LightboxIndex int
	Active        bool
}

type viewData struct {
	Page
	Portfolio *content.Portfolio
	Projects  []projectView
	Total     int
	Sections  []string
}

// New parses the embedded templates and prepares the project views.
func New(p *content.Portfolio) (*Renderer, error) {
	if p == nil {
		return nil, fmt.Errorf("render: nil portfolio")
	}

	tmpl, err := template.New("page").Funcs(template.FuncMap{
		"join":  strings.Join,
		"title": sectionTitle,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}

	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	entries := lightbox.BuildEntries(p.Projects)

	views := make([]projectView, 0, len(p.Projects))
	for pi, proj := range p.Projects {
		var buf bytes.Buffer
		if err := md.Convert([]byte(proj.Description), &buf); err != nil {
			return nil, fmt.Errorf("converting description of %s: %w", proj.ID, err)
		}

		v := projectView{
			Project: proj,
			Index:   pi,
			// goldmark drops raw HTML unless WithUnsafe is set.
			Body:    template.HTML(buf.String()),
			Rotates: len(proj.Images) > 1,
		}
		if proj.Links.Live != nil {
			v.LiveLink = *proj.Links.Live
			v.HasLiveLink = true
		}
		for si, img := range proj.Images {
			gi := lightbox.GlobalIndex(entries, pi, si)
			v.Slides = append(v.Slides, slideView{
				Image:         img,
				Alt:           entries[gi].Alt,
				Index:         si,
				LightboxIndex: gi,
				Active:        si == 0,
			})
		}
		views = append(views, v)
	}

	return &Renderer{
		tmpl:      tmpl,
		portfolio: p,
		projects:  views,
		total:     len(entries),
	}, nil
}

// Render writes the page. The output depends only on the portfolio and pg.
func (r *Renderer) Render(w io.Writer, pg Page) error {
	if pg.Title == "" {
		pg.Title = r.DefaultTitle()
	}

	var buf bytes.Buffer
	err := r.tmpl.ExecuteTemplate(&buf, "index.html", viewData{
		Page:      pg,
		Portfolio: r.portfolio,
		Projects:  r.projects,
		Total:     r.total,
		Sections:  Sections,
	})
	if err != nil {
		return fmt.Errorf("executing page template: %w", err)
	}

	_, err = buf.WriteTo(w)
	return err
}

// DefaultTitle is "<name> - Portfolio".
func (r *Renderer) DefaultTitle() string {
	return r.portfolio.Personal.Name + " - Portfolio"
}

func sectionTitle(id string) string {
	if id == "" {
		return ""
	}
	return strings.ToUpper(id[:1]) + id[1:]
}
