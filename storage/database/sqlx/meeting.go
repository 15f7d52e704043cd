package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/friendsofgo/errors"
	"github.com/jmoiron/sqlx"
	"github.com/volatiletech/null/v8"

	"github.com/mentorhub/mentorhub/core/meeting"
	"github.com/mentorhub/mentorhub/core/mentorship"
)

type meetingRepository struct {
	db *sqlx.DB
}

func NewMeetingRepository(db *sqlx.DB) meeting.Repository {
	return &meetingRepository{db: db}
}

type meetingRow struct {
	ID              int         `db:"id"`
	MentorID        int         `db:"mentor_id"`
	MenteeID        int         `db:"mentee_id"`
	MentorName      string      `db:"mentor_name"`
	MenteeName      string      `db:"mentee_name"`
	College         string      `db:"college"`
	StartsAt        null.Time   `db:"starts_at"`
	DurationMinutes int         `db:"duration_minutes"`
	Status          string      `db:"status"`
	Topic           string      `db:"topic"`
	Notes           string      `db:"notes"`
	MeetingLink     string      `db:"meeting_link"`
	Rating          null.Int    `db:"rating"`
	Comments        null.String `db:"comments"`
	CreatedAt       null.Time   `db:"created_at"`
	UpdatedAt       null.Time   `db:"updated_at"`
}

// Participant names and the mentee's college are denormalized into the read
// model via JOINs.
const meetingSelect = `
SELECT m.id, m.mentor_id, m.mentee_id,
       mr.name AS mentor_name, me.name AS mentee_name, me.college,
       m.starts_at, m.duration_minutes, m.status, m.topic, m.notes, m.meeting_link,
       m.rating, m.comments, m.created_at, m.updated_at
FROM meeting m
JOIN mentor mr ON mr.id = m.mentor_id
JOIN mentee me ON me.id = m.mentee_id`

func (r meetingRow) toMeeting() meeting.Meeting {
	return meeting.Meeting{
		ID:              r.ID,
		MentorID:        r.MentorID,
		MenteeID:        r.MenteeID,
		MentorName:      r.MentorName,
		MenteeName:      r.MenteeName,
		College:         r.College,
		StartsAt:        r.StartsAt.Time,
		DurationMinutes: r.DurationMinutes,
		Status:          meeting.Status(r.Status),
		Topic:           r.Topic,
		Notes:           r.Notes,
		MeetingLink:     r.MeetingLink,
		Feedback:        meeting.Feedback{Rating: r.Rating, Comments: r.Comments},
		CreatedAt:       r.CreatedAt.Time,
		UpdatedAt:       r.UpdatedAt.Time,
	}
}

func (repo *meetingRepository) QueryAllMeetings(ctx context.Context) ([]meeting.Meeting, error) {
	var rows []meetingRow
	if err := repo.db.SelectContext(ctx, &rows, meetingSelect+` ORDER BY m.starts_at`); err != nil {
		return nil, errors.Wrap(err, "querying meetings")
	}
	meetings := make([]meeting.Meeting, 0, len(rows))
	for _, r := range rows {
		meetings = append(meetings, r.toMeeting())
	}
	return meetings, nil
}

func (repo *meetingRepository) GetMeetingByID(ctx context.Context, id int) (meeting.Meeting, error) {
	var row meetingRow
	if err := repo.db.GetContext(ctx, &row, meetingSelect+` WHERE m.id = $1`, id); err != nil {
		if err == sql.ErrNoRows {
			return meeting.Meeting{}, meeting.ErrNotFound
		}
		return meeting.Meeting{}, errors.Wrap(err, "getting meeting")
	}
	return row.toMeeting(), nil
}

func (repo *meetingRepository) CreateMeeting(ctx context.Context, m meeting.Meeting) (meeting.Meeting, error) {
	q := `
INSERT INTO meeting (mentor_id, mentee_id, starts_at, duration_minutes, status, topic, notes, meeting_link, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id`
	err := repo.db.GetContext(ctx, &m.ID, q,
		m.MentorID, m.MenteeID, m.StartsAt, m.DurationMinutes, string(m.Status),
		m.Topic, m.Notes, m.MeetingLink, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isFKViolation(err, "meeting_mentor_id_fkey") {
			return meeting.Meeting{}, mentorship.ErrMentorNotFound
		}
		if isFKViolation(err, "meeting_mentee_id_fkey") {
			return meeting.Meeting{}, mentorship.ErrMenteeNotFound
		}
		return meeting.Meeting{}, errors.Wrap(err, "inserting meeting")
	}
	return repo.GetMeetingByID(ctx, m.ID)
}

func (repo *meetingRepository) UpdateMeeting(ctx context.Context, m meeting.Meeting) (meeting.Meeting, error) {
	res, err := repo.db.ExecContext(ctx, `
UPDATE meeting
SET status = $1, topic = $2, notes = $3, meeting_link = $4, rating = $5, comments = $6, updated_at = $7
WHERE id = $8`,
		string(m.Status), m.Topic, m.Notes, m.MeetingLink,
		m.Feedback.Rating, m.Feedback.Comments, m.UpdatedAt, m.ID,
	)
	if err != nil {
		return meeting.Meeting{}, errors.Wrap(err, "updating meeting")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return meeting.Meeting{}, meeting.ErrNotFound
	}
	return repo.GetMeetingByID(ctx, m.ID)
}
