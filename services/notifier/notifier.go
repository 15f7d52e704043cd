// Package notifsvc delivers workflow events to the coordination team.
package notifsvc

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/mentorhub/mentorhub/core"
	"github.com/mentorhub/mentorhub/core/booking"
	"github.com/mentorhub/mentorhub/core/mentorship"
)

// EmailNotifier turns BookingRequested and AssignmentRequested events into
// coordination emails. Delivery is fire-and-forget via the email service.
type EmailNotifier struct {
	mailSvc core.EmailService
	people  mentorship.Repository
	to      mail.Address
	log     core.Logger
}

var (
	_ booking.Notifier    = (*EmailNotifier)(nil)
	_ mentorship.Notifier = (*EmailNotifier)(nil)
)

func NewEmailNotifier(mailSvc core.EmailService, people mentorship.Repository, to mail.Address, log core.Logger) *EmailNotifier {
	return &EmailNotifier{mailSvc: mailSvc, people: people, to: to, log: log}
}

func (n *EmailNotifier) BookingRequested(ctx context.Context, ev booking.BookingRequested) {
	mentorName := fmt.Sprintf("mentor %d", ev.MentorID)
	if mentor, err := n.people.GetMentorByID(ctx, ev.MentorID); err == nil {
		mentorName = mentor.Name
	}

	n.mailSvc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{n.to},
		Subject: "New session booking request",
		BodyStr: fmt.Sprintf(
			"A session with %s has been requested.\n\nDate: %s at %s\nDuration: %d minutes\nTopic: %s\nNotes: %s\n",
			mentorName, ev.Date, ev.Time, ev.DurationMinutes, ev.Topic, ev.Notes,
		),
	})
	n.log.Info("booking requested", ev)
}

func (n *EmailNotifier) AssignmentRequested(ctx context.Context, ev mentorship.AssignmentRequested) {
	mentorName := fmt.Sprintf("mentor %d", ev.MentorID)
	menteeName := fmt.Sprintf("mentee %d", ev.MenteeID)
	if mentor, err := n.people.GetMentorByID(ctx, ev.MentorID); err == nil {
		mentorName = mentor.Name
	}
	if mentee, err := n.people.GetMenteeByID(ctx, ev.MenteeID); err == nil {
		menteeName = mentee.Name
	}

	n.mailSvc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{n.to},
		Subject: "New mentor assignment",
		BodyStr: fmt.Sprintf("%s has been assigned as mentor to %s.\n", mentorName, menteeName),
	})
	n.log.Info("assignment requested", ev)
}

// LogNotifier records events on the application log only. Used in dev and tests.
type LogNotifier struct {
	log core.Logger

	Bookings    []booking.BookingRequested
	Assignments []mentorship.AssignmentRequested
}

var (
	_ booking.Notifier    = (*LogNotifier)(nil)
	_ mentorship.Notifier = (*LogNotifier)(nil)
)

func NewLogNotifier(log core.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) BookingRequested(_ context.Context, ev booking.BookingRequested) {
	n.Bookings = append(n.Bookings, ev)
	n.log.Info("booking requested", ev)
}

func (n *LogNotifier) AssignmentRequested(_ context.Context, ev mentorship.AssignmentRequested) {
	n.Assignments = append(n.Assignments, ev)
	n.log.Info("assignment requested", ev)
}
