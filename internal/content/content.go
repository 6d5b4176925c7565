// Package content holds the resume records rendered by the site.
//
// All records are compiled in. Accessors hand out copies so the store
// itself is never mutated after package initialisation.
package content

// Person is the owner of the portfolio.
type Person struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Tagline  string `json:"tagline"`
	Email    string `json:"email"`
	Location string `json:"location"`
	Summary  string `json:"summary"`
}

// Experience is one position in the work history.
type Experience struct {
	ID           string   `json:"id"`
	Role         string   `json:"role"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	Period       string   `json:"period"`
	Highlights   []string `json:"highlights"`
	Technologies []string `json:"technologies"`
}

// Project is a delivered piece of work with its measured impact.
type Project struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Impact       string   `json:"impact"`
	Technologies []string `json:"technologies"`
	Image        string   `json:"image,omitempty"`
}

type SkillGroup struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

type Education struct {
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	Institution string `json:"institution"`
	Location    string `json:"location"`
	Period      string `json:"period"`
}

type Stat struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type SocialLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Snapshot bundles every collection for a single render or JSON response.
type Snapshot struct {
	Person      Person       `json:"person"`
	Experiences []Experience `json:"experiences"`
	Projects    []Project    `json:"projects"`
	Skills      []SkillGroup `json:"skills"`
	Education   Education    `json:"education"`
	Stats       []Stat       `json:"stats"`
	SocialLinks []SocialLink `json:"socialLinks"`
}

func PersonalInfo() Person { return personalInfo }

// Experiences returns the work history in display order, most recent first.
func Experiences() []Experience {
	out := make([]Experience, len(experiences))
	for i, e := range experiences {
		out[i] = e.clone()
	}
	return out
}

func Projects() []Project {
	out := make([]Project, len(projects))
	for i, p := range projects {
		out[i] = p.clone()
	}
	return out
}

func Skills() []SkillGroup {
	out := make([]SkillGroup, len(skills))
	for i, s := range skills {
		out[i] = SkillGroup{Category: s.Category, Items: cloneStrings(s.Items)}
	}
	return out
}

func EducationRecord() Education { return education }

// Stats returns the headline figures in display order.
func Stats() []Stat { return append([]Stat(nil), stats...) }

func SocialLinks() []SocialLink { return append([]SocialLink(nil), socialLinks...) }

// ExperienceByID looks up a single experience entry.
func ExperienceByID(id string) (Experience, bool) {
	for _, e := range experiences {
		if e.ID == id {
			return e.clone(), true
		}
	}
	return Experience{}, false
}

// ProjectByID looks up a single project entry.
func ProjectByID(id string) (Project, bool) {
	for _, p := range projects {
		if p.ID == id {
			return p.clone(), true
		}
	}
	return Project{}, false
}

// Resume returns a copy of the whole store.
func Resume() Snapshot {
	return Snapshot{
		Person:      PersonalInfo(),
		Experiences: Experiences(),
		Projects:    Projects(),
		Skills:      Skills(),
		Education:   EducationRecord(),
		Stats:       Stats(),
		SocialLinks: SocialLinks(),
	}
}

func (e Experience) clone() Experience {
	e.Highlights = cloneStrings(e.Highlights)
	e.Technologies = cloneStrings(e.Technologies)
	return e
}

func (p Project) clone() Project {
	p.Technologies = cloneStrings(p.Technologies)
	return p
}

func cloneStrings(in []string) []string {
	return append([]string(nil), in...)
}
