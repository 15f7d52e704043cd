package mentorship

import (
	"reflect"
	"testing"

	"github.com/volatiletech/null/v8"
)

var testMentors = []Mentor{
	{ID: 1, Name: "John Smith", Job: "Senior Software Engineer", Company: "TechCorp",
		Expertise: []string{"Web Development", "Career Guidance"}, Status: StatusActive, MenteeCount: 5, MaxMentees: 8},
	{ID: 2, Name: "Sarah Johnson", Job: "Data Scientist", Company: "DataWorks",
		Expertise: []string{"Data Science", "Machine Learning"}, Status: StatusActive, MenteeCount: 3, MaxMentees: 3},
	{ID: 6, Name: "David Brown", Job: "Systems Analyst", Company: "InfraCo",
		Expertise: []string{"Node.js", "Databases", "System Analysis"}, Status: StatusActive, MenteeCount: 1, MaxMentees: 3},
	{ID: 7, Name: "Priya Sharma", Job: "Data Scientist", Company: "DataWorks",
		Expertise: []string{"Databases"}, Status: StatusPending, MenteeCount: 0, MaxMentees: 5},
}

func mentorIDs(mentors []Mentor) []int {
	ids := make([]int, 0, len(mentors))
	for _, m := range mentors {
		ids = append(ids, m.ID)
	}
	return ids
}

func TestFilterMentors(t *testing.T) {
	tests := []struct {
		name   string
		filter MentorFilter
		want   []int
	}{
		{name: "empty filter returns all in order", filter: MentorFilter{}, want: []int{1, 2, 6, 7}},
		{name: "all sentinel is no restriction", filter: MentorFilter{Expertise: FacetAll, Job: "all"}, want: []int{1, 2, 6, 7}},
		{name: "search matches name case-insensitively", filter: MentorFilter{Search: "david"}, want: []int{6}},
		{name: "search matches substring of job", filter: MentorFilter{Search: "software"}, want: []int{1}},
		{name: "search matches expertise", filter: MentorFilter{Search: "machine"}, want: []int{2}},
		{name: "search misses", filter: MentorFilter{Search: "blockchain"}, want: []int{}},
		{name: "expertise facet is exact", filter: MentorFilter{Expertise: "Databases"}, want: []int{6, 7}},
		{name: "job facet", filter: MentorFilter{Job: "Data Scientist"}, want: []int{2, 7}},
		{name: "status facet", filter: MentorFilter{Status: StatusPending}, want: []int{7}},
		{name: "with capacity drops full mentors", filter: MentorFilter{WithCapacity: true}, want: []int{1, 6, 7}},
		{name: "expertise and capacity combined", filter: MentorFilter{Expertise: "Databases", WithCapacity: true}, want: []int{6, 7}},
		{name: "all predicates AND", filter: MentorFilter{Search: "data", Job: "Data Scientist", WithCapacity: true}, want: []int{7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mentorIDs(FilterMentors(testMentors, tt.filter))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FilterMentors() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestMentor_HasCapacity(t *testing.T) {
	m := Mentor{MenteeCount: 2, MaxMentees: 3}
	if !m.HasCapacity() {
		t.Error("HasCapacity() = false; want true")
	}
	m.MenteeCount = 3
	if m.HasCapacity() {
		t.Error("HasCapacity() = true; want false at the limit")
	}
	m.MenteeCount = 4
	if m.HasCapacity() {
		t.Error("HasCapacity() = true; want false above the limit")
	}
}

func TestFilterMentees(t *testing.T) {
	mentees := []Mentee{
		{ID: 1, Name: "Ryan Davis", Email: "ryan@student.edu", College: "PESCE Mandya", Program: "Computer Science",
			Interests: []string{"Web Development"}},
		{ID: 2, Name: "Maya Patel", Email: "maya@student.edu", College: "VVCE Mys", Program: "Information Science",
			Interests: []string{"Data Science", "Machine Learning"}},
		{ID: 3, Name: "Alex Johnson", Email: "alex@student.edu", College: "PESCE Mandya", Program: "Computer Science",
			Interests: []string{"Web Development"}, MentorID: null.IntFrom(1)},
	}

	ids := func(ms []Mentee) []int {
		out := make([]int, 0, len(ms))
		for _, m := range ms {
			out = append(out, m.ID)
		}
		return out
	}

	tests := []struct {
		name   string
		filter MenteeFilter
		want   []int
	}{
		{name: "empty filter", filter: MenteeFilter{}, want: []int{1, 2, 3}},
		{name: "search on name", filter: MenteeFilter{Search: "maya"}, want: []int{2}},
		{name: "search on program", filter: MenteeFilter{Search: "information"}, want: []int{2}},
		{name: "college facet", filter: MenteeFilter{College: "PESCE Mandya"}, want: []int{1, 3}},
		{name: "interest facet", filter: MenteeFilter{Interest: "Machine Learning"}, want: []int{2}},
		{name: "unassigned only", filter: MenteeFilter{Unassigned: true}, want: []int{1, 2}},
		{name: "college and unassigned", filter: MenteeFilter{College: "PESCE Mandya", Unassigned: true}, want: []int{1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(FilterMentees(mentees, tt.filter))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FilterMentees() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestFacetDerivation(t *testing.T) {
	mentees := []Mentee{
		{College: "PESCE Mandya", Interests: []string{"Web Development", "UI/UX"}},
		{College: "VVCE Mys", Interests: []string{"Web Development"}},
		{College: "PESCE Mandya"},
	}
	mentors := []Mentor{
		{Job: "Data Scientist", Expertise: []string{"Data Science", "UI/UX"}},
		{Job: "Data Scientist", Expertise: []string{"Databases"}},
	}

	if got, want := Colleges(mentees), []string{"PESCE Mandya", "VVCE Mys"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Colleges() = %v; want %v", got, want)
	}
	wantInterests := []string{"Web Development", "UI/UX", "Data Science", "Databases"}
	if got := Interests(mentees, mentors); !reflect.DeepEqual(got, wantInterests) {
		t.Errorf("Interests() = %v; want %v", got, wantInterests)
	}
	if got, want := ExpertiseAreas(mentors), []string{"Data Science", "UI/UX", "Databases"}; !reflect.DeepEqual(got, want) {
		t.Errorf("ExpertiseAreas() = %v; want %v", got, want)
	}
	if got, want := Jobs(mentors), []string{"Data Scientist"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Jobs() = %v; want %v", got, want)
	}
}
