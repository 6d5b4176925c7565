package web

import (
	"fmt"
	"html/template"
	"log/slog"

	"github.com/gafarajao/portfolio/internal/anim"
	"github.com/gafarajao/portfolio/internal/content"
	"github.com/gafarajao/portfolio/internal/dom"
	"github.com/gafarajao/portfolio/internal/plan"
)

const (
	projectCardWidth = 520
	underlineLength  = 600
)

// Home is the pre-computed home page: the split hero tagline markup, the
// rendered summary and the animation plan the browser replays.
type Home struct {
	Resume  content.Snapshot
	Tagline template.HTML
	Summary template.HTML
	Plan    plan.Plan
}

// BuildHome lays the home page out for viewport and records its effects.
func BuildHome(resume content.Snapshot, viewport dom.Viewport, logger *slog.Logger) (*Home, error) {
	rec := plan.NewRecorder()
	tk := anim.New(rec, viewport, logger)
	tk.Init()

	doc := dom.NewDocument("w")
	page := newHomePage(doc, resume, viewport)

	words := anim.SplitTextToSpans(doc, page.tagline)
	tk.RevealOnLoad(anim.Elements(words), anim.RevealOptions{Delay: 0.3, Stagger: 0.05})
	tk.LineDraw(anim.Path(page.underline), anim.LineDrawOptions{Delay: 0.6})

	scope := tk.NewScope()
	scope.Parallax(page.backdrop, anim.ParallaxOptions{Speed: 0.3})
	scope.StaggerChildrenOnScroll(page.stats, ".stat", anim.StaggerOptions{})
	scope.FadeUpOnScroll(page.about, anim.FadeUpOptions{})
	scope.StaggerChildrenOnScroll(page.experience, ".experience-card", anim.StaggerOptions{Stagger: 0.15})
	scope.HorizontalScroll(page.projects, page.track, anim.HorizontalOptions{})
	scope.ScaleOnScroll(page.skills, anim.ScaleOptions{})
	scope.FadeUpOnScroll(page.education, anim.FadeUpOptions{Y: 40})
	scope.FadeUpOnScroll(page.contact, anim.FadeUpOptions{Start: "top 90%"})

	tagline, err := page.tagline.InnerHTML()
	if err != nil {
		return nil, fmt.Errorf("render tagline: %w", err)
	}

	return &Home{
		Resume:  resume,
		Tagline: template.HTML(tagline),
		Summary: renderMarkdown(resume.Person.Summary),
		Plan:    rec.Plan(),
	}, nil
}

// homePage mirrors the element ids of index.html.
type homePage struct {
	tagline    *dom.Element
	underline  *dom.Path
	backdrop   *dom.Element
	stats      *dom.Element
	about      *dom.Element
	experience *dom.Element
	projects   *dom.Element
	track      *dom.Element
	skills     *dom.Element
	education  *dom.Element
	contact    *dom.Element
}

func newHomePage(doc *dom.Document, resume content.Snapshot, viewport dom.Viewport) *homePage {
	p := &homePage{
		tagline:    doc.Element("p", "hero-tagline"),
		underline:  doc.Path("hero-underline", underlineLength),
		backdrop:   doc.Element("div", "hero-backdrop"),
		stats:      doc.Element("section", "stats"),
		about:      doc.Element("section", "about"),
		experience: doc.Element("section", "experience"),
		projects:   doc.Element("section", "projects"),
		track:      doc.Element("div", "projects-track"),
		skills:     doc.Element("section", "skills"),
		education:  doc.Element("section", "education"),
		contact:    doc.Element("section", "contact"),
	}
	p.tagline.SetTextContent(resume.Person.Tagline)

	name := doc.Element("h1", "hero-name")
	name.SetTextContent(resume.Person.Name)
	doc.Element("section", "hero").Append(name, p.underline.Element, p.tagline, p.backdrop)

	for i := range resume.Stats {
		p.stats.Append(doc.Element("div", fmt.Sprintf("stat-%d", i)).AddClass("stat"))
	}
	for _, e := range resume.Experiences {
		p.experience.Append(doc.Element("article", "experience-"+e.ID).AddClass("experience-card"))
	}
	for _, pr := range resume.Projects {
		p.track.Append(doc.Element("article", "project-"+pr.ID).AddClass("project-card"))
	}

	p.projects.SetBox(dom.Box{
		Rect:        anim.Rect{Width: viewport.Width, Height: viewport.Height},
		ClientWidth: viewport.Width,
	})
	p.track.SetBox(dom.Box{ScrollWidth: float64(len(resume.Projects)) * projectCardWidth})
	p.projects.Append(p.track)

	return p
}
