package mentorship

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// Mentor application/account statuses.
// Transitions are one-directional: pending -> active|rejected, active <-> inactive.
type Status string

const (
	StatusPending  Status = "pending"
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusRejected Status = "rejected"
)

// DayAvailability is one bookable calendar day of a mentor's schedule.
// A day with no slots is effectively unavailable.
type DayAvailability struct {
	Date  string   `json:"date"`  // ISO calendar day, e.g. "2025-03-15"
	Slots []string `json:"slots"` // 24-hour "HH:MM" values
}

type Mentor struct {
	ID           int               `json:"id"`
	Name         string            `json:"name"`
	Email        string            `json:"email"`
	Job          string            `json:"job"`
	Company      string            `json:"company"`
	Expertise    []string          `json:"expertise"`
	Status       Status            `json:"status"`
	Rating       float64           `json:"rating"`
	MenteeCount  int               `json:"mentee_count"`
	MaxMentees   int               `json:"max_mentees"`
	Availability []DayAvailability `json:"availability,omitempty"`
	CreatedAt    time.Time         `json:"created_at"` // UTC
	UpdatedAt    time.Time         `json:"updated_at"` // UTC
}

func (m Mentor) HasCapacity() bool {
	return m.MenteeCount < m.MaxMentees
}

// AvailableDates returns the mentor's dates that still have at least one open slot,
// preserving schedule order.
func (m Mentor) AvailableDates() []string {
	dates := make([]string, 0, len(m.Availability))
	for _, day := range m.Availability {
		if len(day.Slots) > 0 {
			dates = append(dates, day.Date)
		}
	}
	return dates
}

func (m Mentor) SlotsOn(date string) []string {
	for _, day := range m.Availability {
		if day.Date == date {
			return day.Slots
		}
	}
	return nil
}

func (m Mentor) HasSlot(date, slot string) bool {
	for _, s := range m.SlotsOn(date) {
		if s == slot {
			return true
		}
	}
	return false
}

type Mentee struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	College   string    `json:"college"`
	Program   string    `json:"program"`
	Year      string    `json:"year"`
	Interests []string  `json:"interests"`
	MentorID  null.Int  `json:"mentor_id"`
	CreatedAt time.Time `json:"created_at"` // UTC
	UpdatedAt time.Time `json:"updated_at"` // UTC
}

func (m Mentee) Assigned() bool {
	return m.MentorID.Valid
}

// NewMentor contains information needed to submit a mentor application.
// Applications start out pending and only become active through Service.Approve.
type NewMentor struct {
	Name       string   `json:"name" validate:"required"`
	Email      string   `json:"email" validate:"required,email"`
	Job        string   `json:"job" validate:"required"`
	Company    string   `json:"company"`
	Expertise  []string `json:"expertise" validate:"required,min=1"`
	MaxMentees int      `json:"max_mentees" validate:"omitempty,min=1"`
}

// NewMentee contains information needed to register a mentee.
type NewMentee struct {
	Name      string   `json:"name" validate:"required"`
	Email     string   `json:"email" validate:"required,email"`
	College   string   `json:"college" validate:"required"`
	Program   string   `json:"program"`
	Year      string   `json:"year"`
	Interests []string `json:"interests"`
}
