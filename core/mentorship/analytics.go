package mentorship

// NameCount is one bucket of a distribution aggregate.
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// CollegeDistribution counts mentees per college, first-appearance order.
func CollegeDistribution(mentees []Mentee) []NameCount {
	return countBy(func(emit func(string)) {
		for _, m := range mentees {
			emit(m.College)
		}
	})
}

// InterestDistribution counts interest occurrences across mentees and mentors.
func InterestDistribution(mentees []Mentee, mentors []Mentor) []NameCount {
	return countBy(func(emit func(string)) {
		for _, m := range mentees {
			for _, i := range m.Interests {
				emit(i)
			}
		}
		for _, m := range mentors {
			for _, e := range m.Expertise {
				emit(e)
			}
		}
	})
}

// ProgramDistribution counts mentees per program, first-appearance order.
func ProgramDistribution(mentees []Mentee) []NameCount {
	return countBy(func(emit func(string)) {
		for _, m := range mentees {
			emit(m.Program)
		}
	})
}

func countBy(visit func(emit func(string))) []NameCount {
	idx := make(map[string]int)
	var out []NameCount
	visit(func(name string) {
		if name == "" {
			return
		}
		if i, ok := idx[name]; ok {
			out[i].Count++
			return
		}
		idx[name] = len(out)
		out = append(out, NameCount{Name: name, Count: 1})
	})
	return out
}
