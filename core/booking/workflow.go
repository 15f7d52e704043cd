package booking

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/mentorhub/mentorhub/core/mentorship"
)

var (
	// errors
	ErrWrongStep           = errors.New("operation not allowed at this step")
	ErrDateUnavailable     = errors.New("date is not available for this mentor")
	ErrSlotUnavailable     = errors.New("slot is not available")
	ErrIncompleteSelection = errors.New("both a date and a time slot must be selected")
	ErrTopicRequired       = errors.New("a session topic is required")
	ErrInvalidDuration     = errors.New("invalid session duration")
)

// Step is the booking workflow position. One linear pass:
// select mentor -> select slot -> enter details -> submitted (workflow resets).
type Step int

const (
	StepSelectMentor Step = iota
	StepSelectSlot
	StepDetails
)

func (s Step) String() string {
	switch s {
	case StepSelectMentor:
		return "select_mentor"
	case StepSelectSlot:
		return "select_slot"
	case StepDetails:
		return "details"
	}
	return "unknown"
}

// DefaultDurationMinutes is used when no duration is picked.
const DefaultDurationMinutes = 30

// Durations are the selectable session lengths, in minutes.
var Durations = []int{15, 30, 45, 60}

func validDuration(d int) bool {
	for _, v := range Durations {
		if v == d {
			return true
		}
	}
	return false
}

// Workflow is the serializable state of a single in-flight booking attempt.
// All transitions are synchronous methods on this value; nothing outside the
// workflow is mutated until the submitted Request is handed to a Service.
// The zero value is a fresh workflow at StepSelectMentor.
type Workflow struct {
	Step            Step                         `json:"step"`
	MentorID        int                          `json:"mentor_id"`
	Availability    []mentorship.DayAvailability `json:"availability,omitempty"`
	Date            string                       `json:"date"`
	Slot            string                       `json:"slot"`
	Topic           string                       `json:"topic"`
	Notes           string                       `json:"notes"`
	DurationMinutes int                          `json:"duration_minutes"`
}

// Request is the immutable outcome of a completed workflow.
type Request struct {
	MentorID        int    `json:"mentorId"`
	Date            string `json:"date"` // ISO-8601 calendar day
	Time            string `json:"time"` // 24-hour "HH:MM"
	Topic           string `json:"topic"`
	Notes           string `json:"notes,omitempty"`
	DurationMinutes int    `json:"durationMinutes"`
	IdempotencyKey  string `json:"idempotencyKey"`
}

// SelectMentor records the chosen mentor and snapshots their availability.
// Picking a different mentor than before resets every downstream choice, since
// date/slot are only meaningful relative to that mentor's schedule; re-picking
// the same mentor preserves them.
func (w *Workflow) SelectMentor(m mentorship.Mentor) error {
	if w.Step != StepSelectMentor {
		return ErrWrongStep
	}
	if m.ID != w.MentorID {
		*w = Workflow{}
	}
	w.MentorID = m.ID
	w.Availability = m.Availability
	w.Step = StepSelectSlot
	return nil
}

// AvailableDates lists the snapshot's dates that still have open slots.
func (w *Workflow) AvailableDates() []string {
	m := mentorship.Mentor{Availability: w.Availability}
	return m.AvailableDates()
}

// SlotsOn lists the open slots of a snapshot date.
func (w *Workflow) SlotsOn(date string) []string {
	m := mentorship.Mentor{Availability: w.Availability}
	return m.SlotsOn(date)
}

// SelectDate picks a calendar day. Changing the date invalidates a previously
// chosen slot: the two are dependent fields, never independent.
func (w *Workflow) SelectDate(date string) error {
	if w.Step != StepSelectSlot {
		return ErrWrongStep
	}
	if len(w.SlotsOn(date)) == 0 {
		return ErrDateUnavailable
	}
	if date != w.Date {
		w.Slot = ""
	}
	w.Date = date
	return nil
}

// SelectSlot picks a time slot belonging to the chosen date.
func (w *Workflow) SelectSlot(slot string) error {
	if w.Step != StepSelectSlot {
		return ErrWrongStep
	}
	if w.Date == "" {
		return ErrIncompleteSelection
	}
	for _, s := range w.SlotsOn(w.Date) {
		if s == slot {
			w.Slot = slot
			return nil
		}
	}
	return ErrSlotUnavailable
}

// Next advances from slot selection to the details step; permitted only when
// both date and slot are set.
func (w *Workflow) Next() error {
	if w.Step != StepSelectSlot {
		return ErrWrongStep
	}
	if w.Date == "" || w.Slot == "" {
		return ErrIncompleteSelection
	}
	w.Step = StepDetails
	return nil
}

// Back moves one step backwards, preserving every choice already made at the
// step being returned to. A no-op at the first step.
func (w *Workflow) Back() {
	switch w.Step {
	case StepDetails:
		w.Step = StepSelectSlot
	case StepSelectSlot:
		w.Step = StepSelectMentor
	}
}

// Submit completes the workflow: the topic is required (non-empty after trim),
// the duration must be one of Durations (0 means DefaultDurationMinutes).
// On success it returns the immutable Request and resets the workflow to its
// zero state, ready for the next booking.
func (w *Workflow) Submit(topic, notes string, durationMinutes int) (Request, error) {
	if w.Step != StepDetails {
		return Request{}, ErrWrongStep
	}
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return Request{}, ErrTopicRequired
	}
	if durationMinutes == 0 {
		durationMinutes = DefaultDurationMinutes
	}
	if !validDuration(durationMinutes) {
		return Request{}, ErrInvalidDuration
	}

	req := Request{
		MentorID:        w.MentorID,
		Date:            w.Date,
		Time:            w.Slot,
		Topic:           topic,
		Notes:           strings.TrimSpace(notes),
		DurationMinutes: durationMinutes,
		IdempotencyKey:  uuid.New().String(),
	}
	*w = Workflow{}
	return req, nil
}
