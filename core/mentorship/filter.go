package mentorship

import (
	"strings"

	"github.com/mentorhub/mentorhub/core"
)

// FacetAll is the sentinel categorical value that matches every record.
// An unset ("") facet is treated the same way.
const FacetAll = "all"

func facetIsAll(v string) bool {
	return v == "" || v == FacetAll
}

// matchesSearch reports whether the query is a case-insensitive substring of any
// of the given fields. An empty query matches everything.
func matchesSearch(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	query = strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

func containsValue(values []string, v string) bool {
	for _, val := range values {
		if val == v {
			return true
		}
	}
	return false
}

// MentorFilter applies AND composition of its active predicates.
// All string facets treat "" and FacetAll as "no restriction".
type MentorFilter struct {
	Search       string `query:"search"`
	Expertise    string `query:"expertise"`
	Job          string `query:"job"`
	Status       Status `query:"status"`
	WithCapacity bool   `query:"with_capacity"`
}

func (f *MentorFilter) Clean() {
	f.Search = core.CleanString(f.Search)
}

func (f MentorFilter) IsEmpty() bool {
	return f.Search == "" && facetIsAll(f.Expertise) && facetIsAll(f.Job) &&
		facetIsAll(string(f.Status)) && !f.WithCapacity
}

func (f MentorFilter) Match(m Mentor) bool {
	fields := append([]string{m.Name, m.Job, m.Company}, m.Expertise...)
	if !matchesSearch(f.Search, fields...) {
		return false
	}
	if !facetIsAll(f.Expertise) && !containsValue(m.Expertise, f.Expertise) {
		return false
	}
	if !facetIsAll(f.Job) && m.Job != f.Job {
		return false
	}
	if !facetIsAll(string(f.Status)) && m.Status != f.Status {
		return false
	}
	if f.WithCapacity && !m.HasCapacity() {
		return false
	}
	return true
}

// FilterMentors returns the mentors for which all active predicates hold,
// preserving the original relative order. Pure; safe to call on every keystroke.
func FilterMentors(mentors []Mentor, f MentorFilter) []Mentor {
	out := make([]Mentor, 0, len(mentors))
	for _, m := range mentors {
		if f.Match(m) {
			out = append(out, m)
		}
	}
	return out
}

// MenteeFilter applies AND composition of its active predicates.
type MenteeFilter struct {
	Search     string `query:"search"`
	College    string `query:"college"`
	Interest   string `query:"interest"`
	Unassigned bool   `query:"unassigned"`
}

func (f *MenteeFilter) Clean() {
	f.Search = core.CleanString(f.Search)
}

func (f MenteeFilter) IsEmpty() bool {
	return f.Search == "" && facetIsAll(f.College) && facetIsAll(f.Interest) && !f.Unassigned
}

func (f MenteeFilter) Match(m Mentee) bool {
	if !matchesSearch(f.Search, m.Name, m.Email, m.Program) {
		return false
	}
	if !facetIsAll(f.College) && m.College != f.College {
		return false
	}
	if !facetIsAll(f.Interest) && !containsValue(m.Interests, f.Interest) {
		return false
	}
	if f.Unassigned && m.Assigned() {
		return false
	}
	return true
}

// FilterMentees returns the mentees for which all active predicates hold,
// preserving the original relative order.
func FilterMentees(mentees []Mentee, f MenteeFilter) []Mentee {
	out := make([]Mentee, 0, len(mentees))
	for _, m := range mentees {
		if f.Match(m) {
			out = append(out, m)
		}
	}
	return out
}

// appendUnique appends values not yet seen, preserving first-appearance order.
func appendUnique(out []string, seen map[string]struct{}, values ...string) []string {
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Colleges derives the college facet options from the mentee collection.
func Colleges(mentees []Mentee) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, len(mentees))
	for _, m := range mentees {
		out = appendUnique(out, seen, m.College)
	}
	return out
}

// Interests derives the interest facet options across mentees and mentors.
func Interests(mentees []Mentee, mentors []Mentor) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, m := range mentees {
		out = appendUnique(out, seen, m.Interests...)
	}
	for _, m := range mentors {
		out = appendUnique(out, seen, m.Expertise...)
	}
	return out
}

// ExpertiseAreas derives the expertise facet options from the mentor collection.
func ExpertiseAreas(mentors []Mentor) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, m := range mentors {
		out = appendUnique(out, seen, m.Expertise...)
	}
	return out
}

// Jobs derives the job-title facet options from the mentor collection.
func Jobs(mentors []Mentor) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, len(mentors))
	for _, m := range mentors {
		out = appendUnique(out, seen, m.Job)
	}
	return out
}
