package meeting

// MonthlyAttendance aggregates held vs cancelled sessions per calendar month.
type MonthlyAttendance struct {
	Month     string `json:"month"` // "2025-03"
	Completed int    `json:"completed"`
	Cancelled int    `json:"cancelled"`
	Scheduled int    `json:"scheduled"`
}

// AttendanceByMonth buckets meetings by their start month, preserving
// first-appearance order.
func AttendanceByMonth(meetings []Meeting) []MonthlyAttendance {
	idx := make(map[string]int)
	var out []MonthlyAttendance
	for _, m := range meetings {
		month := m.StartsAt.Format("2006-01")
		i, ok := idx[month]
		if !ok {
			i = len(out)
			idx[month] = i
			out = append(out, MonthlyAttendance{Month: month})
		}
		switch m.Status {
		case StatusCompleted:
			out[i].Completed++
		case StatusCancelled:
			out[i].Cancelled++
		case StatusScheduled:
			out[i].Scheduled++
		}
	}
	return out
}

// MentorRating is the average submitted feedback rating for one mentor.
type MentorRating struct {
	MentorID   int     `json:"mentor_id"`
	MentorName string  `json:"mentor_name"`
	Average    float64 `json:"average"`
	Count      int     `json:"count"`
}

// AverageRatingByMentor aggregates feedback ratings per mentor; meetings
// without submitted feedback are skipped.
func AverageRatingByMentor(meetings []Meeting) []MentorRating {
	idx := make(map[int]int)
	var out []MentorRating
	sums := make(map[int]int)
	for _, m := range meetings {
		if !m.FeedbackSubmitted() {
			continue
		}
		i, ok := idx[m.MentorID]
		if !ok {
			i = len(out)
			idx[m.MentorID] = i
			out = append(out, MentorRating{MentorID: m.MentorID, MentorName: m.MentorName})
		}
		sums[m.MentorID] += m.Feedback.Rating.Int
		out[i].Count++
	}
	for i := range out {
		out[i].Average = float64(sums[out[i].MentorID]) / float64(out[i].Count)
	}
	return out
}
