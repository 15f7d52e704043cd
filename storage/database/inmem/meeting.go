package inmemdb

import (
	"context"
	"sort"

	"github.com/mentorhub/mentorhub/core/meeting"
	"github.com/mentorhub/mentorhub/core/mentorship"
)

type meetingRepository struct {
	meetings *meetingTable
	people   mentorship.Repository
}

// NewMeetingRepository wires the meeting table with the mentorship repository
// used to resolve participant names and enforce referential integrity.
func NewMeetingRepository(db *DB, people mentorship.Repository) meeting.Repository {
	return &meetingRepository{meetings: db.meeting, people: people}
}

func (repo *meetingRepository) query() []meeting.Meeting {
	meetings := make([]meeting.Meeting, 0, len(repo.meetings.rows))
	for _, m := range repo.meetings.rows {
		meetings = append(meetings, *m)
	}
	sort.Slice(meetings, func(i, j int) bool { return meetings[i].ID < meetings[j].ID })
	return meetings
}

func (repo *meetingRepository) QueryAllMeetings(_ context.Context) ([]meeting.Meeting, error) {
	repo.meetings.mutex.RLock()
	defer repo.meetings.mutex.RUnlock()
	return repo.query(), nil
}

func (repo *meetingRepository) GetMeetingByID(_ context.Context, id int) (meeting.Meeting, error) {
	repo.meetings.mutex.RLock()
	defer repo.meetings.mutex.RUnlock()

	if m, ok := repo.meetings.rows[id]; ok {
		return *m, nil
	}
	return meeting.Meeting{}, meeting.ErrNotFound
}

func (repo *meetingRepository) CreateMeeting(ctx context.Context, m meeting.Meeting) (meeting.Meeting, error) {
	mentor, err := repo.people.GetMentorByID(ctx, m.MentorID)
	if err != nil {
		return meeting.Meeting{}, err
	}
	mentee, err := repo.people.GetMenteeByID(ctx, m.MenteeID)
	if err != nil {
		return meeting.Meeting{}, err
	}
	m.MentorName = mentor.Name
	m.MenteeName = mentee.Name
	m.College = mentee.College

	repo.meetings.mutex.Lock()
	defer repo.meetings.mutex.Unlock()

	repo.meetings.seq++
	m.ID = repo.meetings.seq
	repo.meetings.rows[m.ID] = &m
	return m, nil
}

func (repo *meetingRepository) UpdateMeeting(_ context.Context, m meeting.Meeting) (meeting.Meeting, error) {
	repo.meetings.mutex.Lock()
	defer repo.meetings.mutex.Unlock()

	orig, ok := repo.meetings.rows[m.ID]
	if !ok {
		return meeting.Meeting{}, meeting.ErrNotFound
	}
	orig.Status = m.Status
	orig.Topic = m.Topic
	orig.Notes = m.Notes
	orig.MeetingLink = m.MeetingLink
	orig.Feedback = m.Feedback
	orig.UpdatedAt = m.UpdatedAt
	return *orig, nil
}
