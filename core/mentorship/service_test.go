package mentorship_test

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/pkg/errors"

	"github.com/mentorhub/mentorhub/core"
	"github.com/mentorhub/mentorhub/core/mentorship"
	emailsvc "github.com/mentorhub/mentorhub/services/email"
	notifsvc "github.com/mentorhub/mentorhub/services/notifier"
	inmemdb "github.com/mentorhub/mentorhub/storage/database/inmem"
	testutil "github.com/mentorhub/mentorhub/tests"
)

func newTestService(t *testing.T) (*mentorship.Service, mentorship.Repository, *notifsvc.LogNotifier) {
	t.Helper()
	repo := inmemdb.NewMentorshipRepository(inmemdb.NewDB())
	notifier := notifsvc.NewLogNotifier(core.NewStdLogger(log.New(os.Stdout, "TEST : ", log.LstdFlags)))
	svc := mentorship.NewService(repo, notifier, emailsvc.NewConsoleServiceMock())
	return svc, repo, notifier
}

func TestService_Assign(t *testing.T) {
	svc, repo, notifier := newTestService(t)
	ctx := context.Background()

	mentor := testutil.CreateMentor(t, repo, "John Smith", "john@corp.com", "Senior Engineer", []string{"Databases"}, 0, 1)
	mentee := testutil.CreateMentee(t, repo, "Ryan Davis", "ryan@student.edu", "PESCE Mandya", "Computer Science", nil)

	// no-op guard: either id unset
	for _, pair := range [][2]int{{0, 0}, {mentee.ID, 0}, {0, mentor.ID}} {
		if _, err := svc.Assign(ctx, pair[0], pair[1]); err != mentorship.ErrNothingSelected {
			t.Errorf("Assign(%d, %d) err = %v; want %v", pair[0], pair[1], err, mentorship.ErrNothingSelected)
		}
	}
	if len(notifier.Assignments) != 0 {
		t.Fatalf("no events expected after guard; got %d", len(notifier.Assignments))
	}

	got, err := svc.Assign(ctx, mentee.ID, mentor.ID)
	if err != nil {
		t.Fatalf("Assign() failed: %v", err)
	}
	if !got.Assigned() || got.MentorID.Int != mentor.ID {
		t.Errorf("mentee not linked: %+v", got.MentorID)
	}
	updated, err := repo.GetMentorByID(ctx, mentor.ID)
	if err != nil {
		t.Fatalf("GetMentorByID() failed: %v", err)
	}
	if updated.MenteeCount != 1 {
		t.Errorf("MenteeCount = %d; want 1", updated.MenteeCount)
	}

	// exactly one event per confirmed pairing
	if len(notifier.Assignments) != 1 {
		t.Fatalf("len(Assignments) = %d; want 1", len(notifier.Assignments))
	}
	want := mentorship.AssignmentRequested{MentorID: mentor.ID, MenteeID: mentee.ID}
	if notifier.Assignments[0] != want {
		t.Errorf("event = %+v; want %+v", notifier.Assignments[0], want)
	}

	// mentee already has a mentor
	if _, err = svc.Assign(ctx, mentee.ID, mentor.ID); errors.Cause(err) != mentorship.ErrAlreadyAssigned {
		t.Errorf("re-assign err = %v; want %v", err, mentorship.ErrAlreadyAssigned)
	}

	// mentor is now full
	other := testutil.CreateMentee(t, repo, "Maya Patel", "maya@student.edu", "VVCE Mys", "Information Science", nil)
	if _, err = svc.Assign(ctx, other.ID, mentor.ID); errors.Cause(err) != mentorship.ErrCapacityExceeded {
		t.Errorf("full mentor err = %v; want %v", err, mentorship.ErrCapacityExceeded)
	}

	if len(notifier.Assignments) != 1 {
		t.Errorf("failed assignments emitted events; len = %d", len(notifier.Assignments))
	}
}

func TestService_Assign_unknownIDs(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	mentor := testutil.CreateMentor(t, repo, "John Smith", "john@corp.com", "Senior Engineer", nil, 0, 5)
	mentee := testutil.CreateMentee(t, repo, "Ryan Davis", "ryan@student.edu", "PESCE Mandya", "", nil)

	if _, err := svc.Assign(ctx, 99, mentor.ID); errors.Cause(err) != mentorship.ErrMenteeNotFound {
		t.Errorf("unknown mentee err = %v; want %v", err, mentorship.ErrMenteeNotFound)
	}
	if _, err := svc.Assign(ctx, mentee.ID, 99); errors.Cause(err) != mentorship.ErrMentorNotFound {
		t.Errorf("unknown mentor err = %v; want %v", err, mentorship.ErrMentorNotFound)
	}
}

func TestService_SubmitApplication(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	mentor, err := svc.SubmitApplication(ctx, mentorship.NewMentor{
		Name:      "Priya Sharma",
		Email:     "priya@corp.com",
		Job:       "Data Scientist",
		Expertise: []string{"Databases"},
	})
	if err != nil {
		t.Fatalf("SubmitApplication() failed: %v", err)
	}
	if mentor.Status != mentorship.StatusPending {
		t.Errorf("Status = %v; want %v", mentor.Status, mentorship.StatusPending)
	}
	if mentor.MaxMentees != 5 {
		t.Errorf("MaxMentees = %d; want default 5", mentor.MaxMentees)
	}

	// duplicate email
	_, err = svc.SubmitApplication(ctx, mentorship.NewMentor{
		Name:      "Priya S",
		Email:     "priya@corp.com",
		Job:       "Data Scientist",
		Expertise: []string{"Databases"},
	})
	var vErr *core.ValidationError
	if !errors.As(err, &vErr) {
		t.Errorf("duplicate email err = %v; want *core.ValidationError", err)
	}
}

func TestService_ApproveReject(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()
	emailsvc.ClearSentMessages()

	pending, err := svc.SubmitApplication(ctx, mentorship.NewMentor{
		Name:      "Priya Sharma",
		Email:     "priya@corp.com",
		Job:       "Data Scientist",
		Expertise: []string{"Databases"},
	})
	if err != nil {
		t.Fatalf("SubmitApplication() failed: %v", err)
	}

	mentor, err := svc.Approve(ctx, pending.ID)
	if err != nil {
		t.Fatalf("Approve() failed: %v", err)
	}
	if mentor.Status != mentorship.StatusActive {
		t.Errorf("Status = %v; want %v", mentor.Status, mentorship.StatusActive)
	}
	if len(emailsvc.SentMessages) != 1 {
		t.Errorf("len(SentMessages) = %d; want 1", len(emailsvc.SentMessages))
	}

	// approved and rejected are terminal
	if _, err = svc.Approve(ctx, pending.ID); errors.Cause(err) != mentorship.ErrNotPending {
		t.Errorf("Approve() on active err = %v; want %v", err, mentorship.ErrNotPending)
	}
	if _, err = svc.Reject(ctx, pending.ID); errors.Cause(err) != mentorship.ErrNotPending {
		t.Errorf("Reject() on active err = %v; want %v", err, mentorship.ErrNotPending)
	}

	rejected := testutil.CreateMentor(t, repo, "Mike Wilson", "mike@corp.com", "Engineer", nil, 0, 5)
	if _, err = repo.UpdateMentorStatus(ctx, rejected.ID, mentorship.StatusRejected); err != nil {
		t.Fatalf("UpdateMentorStatus() failed: %v", err)
	}
	if _, err = svc.Approve(ctx, rejected.ID); errors.Cause(err) != mentorship.ErrNotPending {
		t.Errorf("Approve() on rejected err = %v; want %v", err, mentorship.ErrNotPending)
	}
}
