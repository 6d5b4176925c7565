package content

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks that the compiled-in records are well formed: identifiers
// are unique within their collection, required fields are set, and list
// entries are non-empty. Every violation found is reported.
func Validate() error {
	var errs []error

	required := func(where, field, value string) {
		if strings.TrimSpace(value) == "" {
			errs = append(errs, fmt.Errorf("%s: %s is empty", where, field))
		}
	}
	entries := func(where, field string, values []string) {
		if len(values) == 0 {
			errs = append(errs, fmt.Errorf("%s: %s has no entries", where, field))
		}
		for i, v := range values {
			if strings.TrimSpace(v) == "" {
				errs = append(errs, fmt.Errorf("%s: %s[%d] is empty", where, field, i))
			}
		}
	}

	required("person", "name", personalInfo.Name)
	required("person", "title", personalInfo.Title)
	required("person", "tagline", personalInfo.Tagline)
	required("person", "email", personalInfo.Email)
	required("person", "summary", personalInfo.Summary)

	seen := make(map[string]bool, len(experiences))
	for i, e := range experiences {
		where := fmt.Sprintf("experience[%d]", i)
		required(where, "id", e.ID)
		if seen[e.ID] {
			errs = append(errs, fmt.Errorf("%s: duplicate id %q", where, e.ID))
		}
		seen[e.ID] = true
		required(where, "role", e.Role)
		required(where, "company", e.Company)
		required(where, "location", e.Location)
		required(where, "period", e.Period)
		entries(where, "highlights", e.Highlights)
		entries(where, "technologies", e.Technologies)
	}

	seen = make(map[string]bool, len(projects))
	for i, p := range projects {
		where := fmt.Sprintf("project[%d]", i)
		required(where, "id", p.ID)
		if seen[p.ID] {
			errs = append(errs, fmt.Errorf("%s: duplicate id %q", where, p.ID))
		}
		seen[p.ID] = true
		required(where, "title", p.Title)
		required(where, "description", p.Description)
		required(where, "impact", p.Impact)
		entries(where, "technologies", p.Technologies)
	}

	for i, s := range skills {
		where := fmt.Sprintf("skills[%d]", i)
		required(where, "category", s.Category)
		entries(where, "items", s.Items)
	}

	required("education", "degree", education.Degree)
	required("education", "institution", education.Institution)
	required("education", "period", education.Period)

	for i, s := range stats {
		where := fmt.Sprintf("stats[%d]", i)
		required(where, "value", s.Value)
		required(where, "label", s.Label)
	}

	for i, l := range socialLinks {
		where := fmt.Sprintf("socialLinks[%d]", i)
		required(where, "name", l.Name)
		if !strings.HasPrefix(l.URL, "https://") {
			errs = append(errs, fmt.Errorf("%s: url %q is not https", where, l.URL))
		}
	}

	return errors.Join(errs...)
}
