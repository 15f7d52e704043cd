package meeting

import (
	"context"
	"time"

	"github.com/mentorhub/mentorhub/core"
	"github.com/mentorhub/mentorhub/core/mentorship"
)

type (
	Repository interface {
		QueryAllMeetings(ctx context.Context) ([]Meeting, error)
		GetMeetingByID(ctx context.Context, id int) (Meeting, error)
		// CreateMeeting must reject mentor/mentee ids that do not exist
		// (mentorship.ErrMentorNotFound / mentorship.ErrMenteeNotFound).
		CreateMeeting(ctx context.Context, m Meeting) (Meeting, error)
		UpdateMeeting(ctx context.Context, m Meeting) (Meeting, error)
	}

	ServiceInterface interface {
		Query(ctx context.Context, f QueryFilter) ([]Meeting, error)
		Get(ctx context.Context, id int) (Meeting, error)
		Schedule(ctx context.Context, nm NewMeeting) (Meeting, error)
		Complete(ctx context.Context, id int) (Meeting, error)
		Cancel(ctx context.Context, id int) (Meeting, error)
		SubmitFeedback(ctx context.Context, id, rating int, comments string) (Meeting, error)
	}

	Service struct {
		repo Repository

		nowFunc func() time.Time // mockable
	}
)

var _ ServiceInterface = (*Service)(nil)

func NewService(repo Repository) *Service {
	return &Service{repo: repo, nowFunc: time.Now}
}

func (svc *Service) Query(ctx context.Context, f QueryFilter) ([]Meeting, error) {
	meetings, err := svc.repo.QueryAllMeetings(ctx)
	if err != nil {
		return nil, err
	}
	f.Clean()
	return Filter(meetings, f, svc.nowFunc()), nil
}

func (svc *Service) Get(ctx context.Context, id int) (Meeting, error) {
	return svc.repo.GetMeetingByID(ctx, id)
}

// NewMeeting contains information needed to schedule a session, typically
// materialized from a BookingRequested event once the pairing service
// resolves the mentee.
type NewMeeting struct {
	MentorID        int       `json:"mentor_id" validate:"required"`
	MenteeID        int       `json:"mentee_id" validate:"required"`
	StartsAt        time.Time `json:"starts_at" validate:"required"`
	DurationMinutes int       `json:"duration_minutes" validate:"omitempty,min=15,max=60"`
	Topic           string    `json:"topic" validate:"required"`
	Notes           string    `json:"notes"`
	MeetingLink     string    `json:"meeting_link" validate:"omitempty,url"`
}

func (nm *NewMeeting) Validate() error {
	nm.Topic = core.CleanString(nm.Topic)
	return core.Validate.Struct(nm)
}

func (svc *Service) Schedule(ctx context.Context, nm NewMeeting) (Meeting, error) {
	duration := nm.DurationMinutes
	if duration == 0 {
		duration = 30
	}
	now := svc.nowFunc().UTC()
	return svc.repo.CreateMeeting(ctx, Meeting{
		MentorID:        nm.MentorID,
		MenteeID:        nm.MenteeID,
		StartsAt:        nm.StartsAt.UTC(),
		DurationMinutes: duration,
		Status:          StatusScheduled,
		Topic:           nm.Topic,
		Notes:           nm.Notes,
		MeetingLink:     nm.MeetingLink,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
}

func (svc *Service) Complete(ctx context.Context, id int) (Meeting, error) {
	return svc.transition(ctx, id, (*Meeting).Complete)
}

func (svc *Service) Cancel(ctx context.Context, id int) (Meeting, error) {
	return svc.transition(ctx, id, (*Meeting).Cancel)
}

func (svc *Service) transition(ctx context.Context, id int, apply func(*Meeting) error) (Meeting, error) {
	m, err := svc.repo.GetMeetingByID(ctx, id)
	if err != nil {
		return Meeting{}, err
	}
	if err := apply(&m); err != nil {
		return Meeting{}, err
	}
	m.UpdatedAt = svc.nowFunc().UTC()
	return svc.repo.UpdateMeeting(ctx, m)
}

func (svc *Service) SubmitFeedback(ctx context.Context, id, rating int, comments string) (Meeting, error) {
	m, err := svc.repo.GetMeetingByID(ctx, id)
	if err != nil {
		return Meeting{}, err
	}
	if err := m.SubmitFeedback(rating, core.CleanString(comments)); err != nil {
		return Meeting{}, err
	}
	m.UpdatedAt = svc.nowFunc().UTC()
	return svc.repo.UpdateMeeting(ctx, m)
}

// referential integrity helpers shared by repository implementations

// CheckParticipants verifies that a meeting's mentor and mentee exist.
func CheckParticipants(ctx context.Context, people mentorship.Repository, m Meeting) error {
	if _, err := people.GetMentorByID(ctx, m.MentorID); err != nil {
		return err
	}
	_, err := people.GetMenteeByID(ctx, m.MenteeID)
	return err
}
