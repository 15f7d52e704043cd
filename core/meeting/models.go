package meeting

import (
	"errors"
	"time"

	"github.com/volatiletech/null/v8"
)

var (
	// errors
	ErrNotFound       = errors.New("meeting not found")
	ErrFinalStatus    = errors.New("meeting is already completed or cancelled")
	ErrNotCompleted   = errors.New("feedback requires a completed meeting")
	ErrFeedbackExists = errors.New("feedback has already been submitted")
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
)

// Status is the meeting lifecycle state. Transitions are one-directional:
// scheduled -> completed|cancelled; there is no path back to scheduled.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Feedback is owned 1:1 by a completed meeting; both fields stay null until
// the mentee submits.
type Feedback struct {
	Rating   null.Int    `json:"rating"` // 1..5
	Comments null.String `json:"comments"`
}

type Meeting struct {
	ID              int       `json:"id"`
	MentorID        int       `json:"mentor_id"`
	MenteeID        int       `json:"mentee_id"`
	MentorName      string    `json:"mentor_name"`
	MenteeName      string    `json:"mentee_name"`
	College         string    `json:"college"`
	StartsAt        time.Time `json:"starts_at"` // UTC
	DurationMinutes int       `json:"duration_minutes"`
	Status          Status    `json:"status"`
	Topic           string    `json:"topic"`
	Notes           string    `json:"notes"`
	MeetingLink     string    `json:"meeting_link"`
	Feedback        Feedback  `json:"feedback"`
	CreatedAt       time.Time `json:"created_at"` // UTC
	UpdatedAt       time.Time `json:"updated_at"` // UTC
}

func (m Meeting) FeedbackSubmitted() bool {
	return m.Feedback.Rating.Valid
}

// Complete marks a scheduled meeting as held.
func (m *Meeting) Complete() error {
	if m.Status != StatusScheduled {
		return ErrFinalStatus
	}
	m.Status = StatusCompleted
	return nil
}

// Cancel marks a scheduled meeting as cancelled. Rescheduling is cancel plus a
// fresh booking through the booking workflow; a cancelled meeting never
// returns to scheduled.
func (m *Meeting) Cancel() error {
	if m.Status != StatusScheduled {
		return ErrFinalStatus
	}
	m.Status = StatusCancelled
	return nil
}

// SubmitFeedback attaches a one-time rating to a completed meeting.
func (m *Meeting) SubmitFeedback(rating int, comments string) error {
	if m.Status != StatusCompleted {
		return ErrNotCompleted
	}
	if m.FeedbackSubmitted() {
		return ErrFeedbackExists
	}
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}
	m.Feedback.Rating = null.IntFrom(rating)
	if comments != "" {
		m.Feedback.Comments = null.StringFrom(comments)
	}
	return nil
}
