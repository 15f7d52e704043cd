package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/mentorhub/mentorhub/core/meeting"
	"github.com/mentorhub/mentorhub/core/mentorship"
	"github.com/mentorhub/mentorhub/core/user"
)

func CreateUser(
	t *testing.T,
	repo user.Repository,
	name, uname, email, pwd string,
	roles []string,
	isActive bool,
	createdAt ...time.Time,
) user.User {
	t.Helper()

	tstamp := time.Now().UTC()
	if len(createdAt) > 0 {
		tstamp = createdAt[0].UTC()
	}
	usr := user.User{
		ID:        uuid.New().String(),
		Name:      name,
		Username:  uname,
		Email:     email,
		Roles:     roles,
		IsActive:  isActive,
		CreatedAt: tstamp,
		UpdatedAt: tstamp,
	}
	if pwd != "" {
		if err := usr.SetPassword(pwd); err != nil {
			t.Fatalf("CreateUser() failed: %v", err)
		}
	}
	usr, err := repo.CreateUser(context.Background(), usr)
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	return usr
}

func CreateMentor(
	t *testing.T,
	repo mentorship.Repository,
	name, email, job string,
	expertise []string,
	menteeCount, maxMentees int,
	availability ...mentorship.DayAvailability,
) mentorship.Mentor {
	t.Helper()

	now := time.Now().UTC()
	mentor, err := repo.CreateMentor(context.Background(), mentorship.Mentor{
		Name:         name,
		Email:        email,
		Job:          job,
		Expertise:    expertise,
		Status:       mentorship.StatusActive,
		MenteeCount:  menteeCount,
		MaxMentees:   maxMentees,
		Availability: availability,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		t.Fatalf("CreateMentor() failed: %v", err)
	}
	return mentor
}

func CreateMentee(
	t *testing.T,
	repo mentorship.Repository,
	name, email, college, program string,
	interests []string,
) mentorship.Mentee {
	t.Helper()

	now := time.Now().UTC()
	mentee, err := repo.CreateMentee(context.Background(), mentorship.Mentee{
		Name:      name,
		Email:     email,
		College:   college,
		Program:   program,
		Interests: interests,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("CreateMentee() failed: %v", err)
	}
	return mentee
}

func CreateMeeting(
	t *testing.T,
	repo meeting.Repository,
	mentorID, menteeID int,
	startsAt time.Time,
	topic string,
) meeting.Meeting {
	t.Helper()

	now := time.Now().UTC()
	m, err := repo.CreateMeeting(context.Background(), meeting.Meeting{
		MentorID:        mentorID,
		MenteeID:        menteeID,
		StartsAt:        startsAt.UTC(),
		DurationMinutes: 30,
		Status:          meeting.StatusScheduled,
		Topic:           topic,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		t.Fatalf("CreateMeeting() failed: %v", err)
	}
	return m
}
