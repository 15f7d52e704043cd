package booking

import (
	"context"

	"github.com/pkg/errors"

	"github.com/mentorhub/mentorhub/core/mentorship"
)

// BookingRequested is emitted once per validated booking submission.
// Fire-and-forget; the caller assumes success (no acknowledgement contract).
type BookingRequested struct {
	MentorID        int    `json:"mentorId"`
	Date            string `json:"date"` // ISO-8601 calendar day
	Time            string `json:"time"` // 24-hour "HH:MM"
	Topic           string `json:"topic"`
	Notes           string `json:"notes,omitempty"`
	DurationMinutes int    `json:"durationMinutes"`
}

type Notifier interface {
	BookingRequested(ctx context.Context, ev BookingRequested)
}

type (
	ServiceInterface interface {
		SubmitRequest(ctx context.Context, req Request) error
	}

	Service struct {
		repo     mentorship.Repository
		notifier Notifier
	}
)

var _ ServiceInterface = (*Service)(nil)

func NewService(repo mentorship.Repository, notifier Notifier) *Service {
	return &Service{repo: repo, notifier: notifier}
}

// SubmitRequest re-validates a completed workflow Request against the mentor's
// live availability, then emits exactly one BookingRequested event. The
// workflow validated against an availability snapshot; this catches snapshots
// gone stale between selection and submission.
func (svc *Service) SubmitRequest(ctx context.Context, req Request) error {
	mentor, err := svc.repo.GetMentorByID(ctx, req.MentorID)
	if err != nil {
		return err
	}
	if !mentor.HasSlot(req.Date, req.Time) {
		return errors.Wrapf(ErrSlotUnavailable, "mentor %d on %s at %s", req.MentorID, req.Date, req.Time)
	}

	svc.notifier.BookingRequested(ctx, BookingRequested{
		MentorID:        req.MentorID,
		Date:            req.Date,
		Time:            req.Time,
		Topic:           req.Topic,
		Notes:           req.Notes,
		DurationMinutes: req.DurationMinutes,
	})
	return nil
}
