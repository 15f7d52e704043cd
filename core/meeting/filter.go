package meeting

import (
	"strings"
	"time"

	"github.com/mentorhub/mentorhub/core"
)

// Bucket groups meetings by calendar proximity to a reference day.
type Bucket string

const (
	BucketAll      Bucket = "all"
	BucketToday    Bucket = "today"
	BucketTomorrow Bucket = "tomorrow"
	BucketWeek     Bucket = "week" // next 7 days: [todayStart, todayStart+7d)
)

// QueryFilter applies AND composition of its active predicates.
// "" and "all" both mean "no restriction" for the string facets.
type QueryFilter struct {
	Search  string `query:"search"`
	Status  Status `query:"status"`
	College string `query:"college"`
	Bucket  Bucket `query:"date"`
}

func (f *QueryFilter) Clean() {
	f.Search = core.CleanString(f.Search)
}

func facetIsAll(v string) bool {
	return v == "" || v == "all"
}

// Match evaluates the filter against one meeting. The reference time is an
// explicit argument so that the date buckets are deterministic under test.
func (f QueryFilter) Match(m Meeting, now time.Time) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !(strings.Contains(strings.ToLower(m.MentorName), q) ||
			strings.Contains(strings.ToLower(m.MenteeName), q) ||
			strings.Contains(strings.ToLower(m.Topic), q)) {
			return false
		}
	}
	if !facetIsAll(string(f.Status)) && m.Status != f.Status {
		return false
	}
	if !facetIsAll(f.College) && m.College != f.College {
		return false
	}
	return f.matchBucket(m.StartsAt, now)
}

func (f QueryFilter) matchBucket(t, now time.Time) bool {
	today := truncateDay(now)
	switch f.Bucket {
	case BucketToday:
		return truncateDay(t).Equal(today)
	case BucketTomorrow:
		return truncateDay(t).Equal(today.AddDate(0, 0, 1))
	case BucketWeek:
		nextWeek := today.AddDate(0, 0, 7)
		return !t.Before(today) && t.Before(nextWeek)
	}
	return true
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Filter returns the meetings for which all active predicates hold,
// preserving the original relative order. Pure.
func Filter(meetings []Meeting, f QueryFilter, now time.Time) []Meeting {
	out := make([]Meeting, 0, len(meetings))
	for _, m := range meetings {
		if f.Match(m, now) {
			out = append(out, m)
		}
	}
	return out
}
