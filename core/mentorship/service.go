package mentorship

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/mentorhub/mentorhub/core"
)

var (
	// errors
	ErrMentorNotFound   = errors.New("mentor not found")
	ErrMenteeNotFound   = errors.New("mentee not found")
	ErrEmailExists      = errors.New("this email is already registered")
	ErrCapacityExceeded = errors.New("mentor has no remaining capacity")
	ErrAlreadyAssigned  = errors.New("mentee already has a mentor")
	ErrNothingSelected  = errors.New("both a mentee and a mentor must be selected")
	ErrNotPending       = errors.New("application is not pending")
)

// AssignmentRequested is emitted once per confirmed admin pairing.
// Fire-and-forget; no acknowledgement contract exists.
type AssignmentRequested struct {
	MentorID int `json:"mentorId"`
	MenteeID int `json:"menteeId"`
}

type Notifier interface {
	AssignmentRequested(ctx context.Context, ev AssignmentRequested)
}

type (
	Repository interface {
		QueryAllMentors(ctx context.Context) ([]Mentor, error)
		GetMentorByID(ctx context.Context, id int) (Mentor, error)
		GetMentorByEmail(ctx context.Context, email string) (Mentor, error)
		CreateMentor(ctx context.Context, m Mentor) (Mentor, error)
		UpdateMentorStatus(ctx context.Context, id int, status Status) (Mentor, error)
		SetMentorAvailability(ctx context.Context, id int, avail []DayAvailability) (Mentor, error)

		QueryAllMentees(ctx context.Context) ([]Mentee, error)
		GetMenteeByID(ctx context.Context, id int) (Mentee, error)
		CreateMentee(ctx context.Context, m Mentee) (Mentee, error)

		// AssignMentor links the mentee to the mentor and bumps the mentor's
		// mentee count in the same transaction; fails with ErrCapacityExceeded
		// when the mentor is already full.
		AssignMentor(ctx context.Context, menteeID, mentorID int) (Mentee, error)
	}

	ServiceInterface interface {
		QueryMentors(ctx context.Context, f MentorFilter) ([]Mentor, error)
		QueryMentees(ctx context.Context, f MenteeFilter) ([]Mentee, error)
		GetMentor(ctx context.Context, id int) (Mentor, error)
		GetMentee(ctx context.Context, id int) (Mentee, error)
		FacetOptions(ctx context.Context) (FacetOptions, error)
		SubmitApplication(ctx context.Context, nm NewMentor) (Mentor, error)
		RegisterMentee(ctx context.Context, nm NewMentee) (Mentee, error)
		Approve(ctx context.Context, id int) (Mentor, error)
		Reject(ctx context.Context, id int) (Mentor, error)
		SetAvailability(ctx context.Context, mentorID int, avail []DayAvailability) (Mentor, error)
		Assign(ctx context.Context, menteeID, mentorID int) (Mentee, error)
	}

	Service struct {
		repo     Repository
		notifier Notifier
		mailSvc  core.EmailService
	}
)

var _ ServiceInterface = (*Service)(nil)

func NewService(repo Repository, notifier Notifier, mailSvc core.EmailService) *Service {
	return &Service{repo: repo, notifier: notifier, mailSvc: mailSvc}
}

func (svc *Service) QueryMentors(ctx context.Context, f MentorFilter) ([]Mentor, error) {
	mentors, err := svc.repo.QueryAllMentors(ctx)
	if err != nil {
		return nil, err
	}
	f.Clean()
	return FilterMentors(mentors, f), nil
}

func (svc *Service) QueryMentees(ctx context.Context, f MenteeFilter) ([]Mentee, error) {
	mentees, err := svc.repo.QueryAllMentees(ctx)
	if err != nil {
		return nil, err
	}
	f.Clean()
	return FilterMentees(mentees, f), nil
}

func (svc *Service) GetMentor(ctx context.Context, id int) (Mentor, error) {
	return svc.repo.GetMentorByID(ctx, id)
}

func (svc *Service) GetMentee(ctx context.Context, id int) (Mentee, error) {
	return svc.repo.GetMenteeByID(ctx, id)
}

// FacetOptions are the derived dropdown option lists for the directory views.
type FacetOptions struct {
	Colleges  []string `json:"colleges"`
	Interests []string `json:"interests"`
	Expertise []string `json:"expertise"`
	Jobs      []string `json:"jobs"`
}

func (svc *Service) FacetOptions(ctx context.Context) (FacetOptions, error) {
	mentors, err := svc.repo.QueryAllMentors(ctx)
	if err != nil {
		return FacetOptions{}, err
	}
	mentees, err := svc.repo.QueryAllMentees(ctx)
	if err != nil {
		return FacetOptions{}, err
	}
	return FacetOptions{
		Colleges:  Colleges(mentees),
		Interests: Interests(mentees, mentors),
		Expertise: ExpertiseAreas(mentors),
		Jobs:      Jobs(mentors),
	}, nil
}

func (nm *NewMentor) Validate() error {
	nm.Name = core.CleanString(nm.Name)
	nm.Email = core.CleanString(nm.Email, true /* lower */)
	nm.Job = core.CleanString(nm.Job)
	nm.Company = core.CleanString(nm.Company)
	return core.Validate.Struct(nm)
}

func (nm *NewMentee) Validate() error {
	nm.Name = core.CleanString(nm.Name)
	nm.Email = core.CleanString(nm.Email, true /* lower */)
	nm.College = core.CleanString(nm.College)
	return core.Validate.Struct(nm)
}

// SubmitApplication records a pending mentor application.
// The mentor only appears in capacity-filtered directories once approved.
func (svc *Service) SubmitApplication(ctx context.Context, nm NewMentor) (Mentor, error) {
	if _, err := svc.repo.GetMentorByEmail(ctx, nm.Email); err == nil {
		return Mentor{}, core.NewValidationError(ErrEmailExists, core.FieldError{Field: "email", Error: ErrEmailExists.Error()})
	} else if err != ErrMentorNotFound {
		return Mentor{}, err
	}

	maxMentees := nm.MaxMentees
	if maxMentees == 0 {
		maxMentees = 5
	}
	now := time.Now().UTC()
	return svc.repo.CreateMentor(ctx, Mentor{
		Name:       nm.Name,
		Email:      nm.Email,
		Job:        nm.Job,
		Company:    nm.Company,
		Expertise:  nm.Expertise,
		Status:     StatusPending,
		MaxMentees: maxMentees,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
}

func (svc *Service) RegisterMentee(ctx context.Context, nm NewMentee) (Mentee, error) {
	now := time.Now().UTC()
	return svc.repo.CreateMentee(ctx, Mentee{
		Name:      nm.Name,
		Email:     nm.Email,
		College:   nm.College,
		Program:   nm.Program,
		Year:      nm.Year,
		Interests: nm.Interests,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

// Approve transitions a pending application to active; terminal otherwise.
func (svc *Service) Approve(ctx context.Context, id int) (Mentor, error) {
	mentor, err := svc.transitionApplication(ctx, id, StatusActive)
	if err != nil {
		return Mentor{}, err
	}
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{{Name: mentor.Name, Address: mentor.Email}},
		Subject: "Your mentor application has been approved",
		BodyStr: fmt.Sprintf(
			"Hi %s,\n\nYour mentor application has been approved. "+
				"You can now sign in and set your availability:\n%s/login\n",
			mentor.Name, core.Conf.FrontendBaseURL,
		),
	})
	return mentor, nil
}

// Reject transitions a pending application to rejected; terminal otherwise.
func (svc *Service) Reject(ctx context.Context, id int) (Mentor, error) {
	return svc.transitionApplication(ctx, id, StatusRejected)
}

func (svc *Service) transitionApplication(ctx context.Context, id int, to Status) (Mentor, error) {
	mentor, err := svc.repo.GetMentorByID(ctx, id)
	if err != nil {
		return Mentor{}, err
	}
	if mentor.Status != StatusPending {
		return Mentor{}, ErrNotPending
	}
	return svc.repo.UpdateMentorStatus(ctx, id, to)
}

func (svc *Service) SetAvailability(ctx context.Context, mentorID int, avail []DayAvailability) (Mentor, error) {
	return svc.repo.SetMentorAvailability(ctx, mentorID, avail)
}

// Assign pairs an unassigned mentee with a mentor that still has capacity and
// emits exactly one AssignmentRequested event. Interest overlap is never
// validated; it only ranks/filters directory views. Calling with either id
// unset is a no-op guard surfaced as ErrNothingSelected.
func (svc *Service) Assign(ctx context.Context, menteeID, mentorID int) (Mentee, error) {
	if menteeID == 0 || mentorID == 0 {
		return Mentee{}, ErrNothingSelected
	}

	mentee, err := svc.repo.GetMenteeByID(ctx, menteeID)
	if err != nil {
		return Mentee{}, err
	}
	if mentee.Assigned() {
		return Mentee{}, ErrAlreadyAssigned
	}

	mentor, err := svc.repo.GetMentorByID(ctx, mentorID)
	if err != nil {
		return Mentee{}, err
	}
	if !mentor.HasCapacity() {
		return Mentee{}, ErrCapacityExceeded
	}

	mentee, err = svc.repo.AssignMentor(ctx, menteeID, mentorID)
	if err != nil {
		return Mentee{}, err
	}

	svc.notifier.AssignmentRequested(ctx, AssignmentRequested{MentorID: mentorID, MenteeID: menteeID})
	return mentee, nil
}
