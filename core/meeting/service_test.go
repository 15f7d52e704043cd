package meeting_test

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/mentorhub/mentorhub/core/meeting"
	"github.com/mentorhub/mentorhub/core/mentorship"
	inmemdb "github.com/mentorhub/mentorhub/storage/database/inmem"
	testutil "github.com/mentorhub/mentorhub/tests"
)

func newTestService(t *testing.T) (*meeting.Service, meeting.Repository, mentorship.Mentor, mentorship.Mentee) {
	t.Helper()
	db := inmemdb.NewDB()
	people := inmemdb.NewMentorshipRepository(db)
	repo := inmemdb.NewMeetingRepository(db, people)

	mentor := testutil.CreateMentor(t, people, "John Smith", "john@corp.com", "Senior Engineer", nil, 0, 5)
	mentee := testutil.CreateMentee(t, people, "Alex Johnson", "alex@student.edu", "PESCE Mandya", "Computer Science", nil)
	return meeting.NewService(repo), repo, mentor, mentee
}

func TestService_Schedule(t *testing.T) {
	svc, _, mentor, mentee := newTestService(t)
	ctx := context.Background()
	startsAt := time.Date(2025, 3, 15, 14, 0, 0, 0, time.UTC)

	m, err := svc.Schedule(ctx, meeting.NewMeeting{
		MentorID: mentor.ID,
		MenteeID: mentee.ID,
		StartsAt: startsAt,
		Topic:    "Career advice",
	})
	if err != nil {
		t.Fatalf("Schedule() failed: %v", err)
	}
	if m.Status != meeting.StatusScheduled {
		t.Errorf("Status = %v; want %v", m.Status, meeting.StatusScheduled)
	}
	if m.DurationMinutes != 30 {
		t.Errorf("DurationMinutes = %d; want default 30", m.DurationMinutes)
	}
	if m.MentorName != mentor.Name || m.MenteeName != mentee.Name {
		t.Errorf("names not resolved: %q / %q", m.MentorName, m.MenteeName)
	}
	if m.College != mentee.College {
		t.Errorf("College = %q; want %q", m.College, mentee.College)
	}

	// unknown participants are rejected
	_, err = svc.Schedule(ctx, meeting.NewMeeting{MentorID: 99, MenteeID: mentee.ID, StartsAt: startsAt, Topic: "T"})
	if errors.Cause(err) != mentorship.ErrMentorNotFound {
		t.Errorf("unknown mentor err = %v; want %v", err, mentorship.ErrMentorNotFound)
	}
	_, err = svc.Schedule(ctx, meeting.NewMeeting{MentorID: mentor.ID, MenteeID: 99, StartsAt: startsAt, Topic: "T"})
	if errors.Cause(err) != mentorship.ErrMenteeNotFound {
		t.Errorf("unknown mentee err = %v; want %v", err, mentorship.ErrMenteeNotFound)
	}
}

func TestService_transitions(t *testing.T) {
	svc, repo, mentor, mentee := newTestService(t)
	ctx := context.Background()
	startsAt := time.Date(2025, 3, 15, 14, 0, 0, 0, time.UTC)

	m1 := testutil.CreateMeeting(t, repo, mentor.ID, mentee.ID, startsAt, "Career advice")
	m2 := testutil.CreateMeeting(t, repo, mentor.ID, mentee.ID, startsAt.Add(24*time.Hour), "Follow-up")

	completed, err := svc.Complete(ctx, m1.ID)
	if err != nil {
		t.Fatalf("Complete() failed: %v", err)
	}
	if completed.Status != meeting.StatusCompleted {
		t.Errorf("Status = %v; want %v", completed.Status, meeting.StatusCompleted)
	}

	cancelled, err := svc.Cancel(ctx, m2.ID)
	if err != nil {
		t.Fatalf("Cancel() failed: %v", err)
	}
	if cancelled.Status != meeting.StatusCancelled {
		t.Errorf("Status = %v; want %v", cancelled.Status, meeting.StatusCancelled)
	}

	// completed and cancelled are terminal
	if _, err = svc.Complete(ctx, m1.ID); errors.Cause(err) != meeting.ErrFinalStatus {
		t.Errorf("Complete() on completed err = %v; want %v", err, meeting.ErrFinalStatus)
	}
	if _, err = svc.Cancel(ctx, m1.ID); errors.Cause(err) != meeting.ErrFinalStatus {
		t.Errorf("Cancel() on completed err = %v; want %v", err, meeting.ErrFinalStatus)
	}
	if _, err = svc.Complete(ctx, m2.ID); errors.Cause(err) != meeting.ErrFinalStatus {
		t.Errorf("Complete() on cancelled err = %v; want %v", err, meeting.ErrFinalStatus)
	}

	if _, err = svc.Complete(ctx, 99); errors.Cause(err) != meeting.ErrNotFound {
		t.Errorf("Complete(99) err = %v; want %v", err, meeting.ErrNotFound)
	}
}

func TestService_SubmitFeedback(t *testing.T) {
	svc, repo, mentor, mentee := newTestService(t)
	ctx := context.Background()
	startsAt := time.Date(2025, 3, 15, 14, 0, 0, 0, time.UTC)

	m := testutil.CreateMeeting(t, repo, mentor.ID, mentee.ID, startsAt, "Career advice")

	// feedback requires a completed meeting
	if _, err := svc.SubmitFeedback(ctx, m.ID, 5, ""); errors.Cause(err) != meeting.ErrNotCompleted {
		t.Errorf("feedback on scheduled err = %v; want %v", err, meeting.ErrNotCompleted)
	}

	if _, err := svc.Complete(ctx, m.ID); err != nil {
		t.Fatalf("Complete() failed: %v", err)
	}

	// rating bounds
	for _, rating := range []int{0, 6, -1} {
		if _, err := svc.SubmitFeedback(ctx, m.ID, rating, ""); errors.Cause(err) != meeting.ErrInvalidRating {
			t.Errorf("rating %d err = %v; want %v", rating, err, meeting.ErrInvalidRating)
		}
	}

	got, err := svc.SubmitFeedback(ctx, m.ID, 5, "Great session")
	if err != nil {
		t.Fatalf("SubmitFeedback() failed: %v", err)
	}
	if !got.FeedbackSubmitted() || got.Feedback.Rating.Int != 5 {
		t.Errorf("Rating = %+v; want 5", got.Feedback.Rating)
	}
	if got.Feedback.Comments.String != "Great session" {
		t.Errorf("Comments = %+v", got.Feedback.Comments)
	}

	// feedback is one-time
	if _, err = svc.SubmitFeedback(ctx, m.ID, 4, ""); errors.Cause(err) != meeting.ErrFeedbackExists {
		t.Errorf("second feedback err = %v; want %v", err, meeting.ErrFeedbackExists)
	}
}
