package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/friendsofgo/errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/volatiletech/null/v8"

	"github.com/mentorhub/mentorhub/core/mentorship"
)

type mentorshipRepository struct {
	db *sqlx.DB
}

func NewMentorshipRepository(db *sqlx.DB) mentorship.Repository {
	return &mentorshipRepository{db: db}
}

type mentorRow struct {
	ID           int              `db:"id"`
	Name         string           `db:"name"`
	Email        string           `db:"email"`
	Job          string           `db:"job"`
	Company      string           `db:"company"`
	Expertise    pq.StringArray   `db:"expertise"`
	Status       string           `db:"status"`
	Rating       float64          `db:"rating"`
	MenteeCount  int              `db:"mentee_count"`
	MaxMentees   int              `db:"max_mentees"`
	Availability availabilityJSON `db:"availability"`
	CreatedAt    null.Time        `db:"created_at"`
	UpdatedAt    null.Time        `db:"updated_at"`
}

const mentorColumns = `id, name, email, job, company, expertise, status, rating, mentee_count, max_mentees, availability, created_at, updated_at`

func (r mentorRow) toMentor() mentorship.Mentor {
	return mentorship.Mentor{
		ID:           r.ID,
		Name:         r.Name,
		Email:        r.Email,
		Job:          r.Job,
		Company:      r.Company,
		Expertise:    r.Expertise,
		Status:       mentorship.Status(r.Status),
		Rating:       r.Rating,
		MenteeCount:  r.MenteeCount,
		MaxMentees:   r.MaxMentees,
		Availability: r.Availability,
		CreatedAt:    r.CreatedAt.Time,
		UpdatedAt:    r.UpdatedAt.Time,
	}
}

type menteeRow struct {
	ID        int            `db:"id"`
	Name      string         `db:"name"`
	Email     string         `db:"email"`
	College   string         `db:"college"`
	Program   string         `db:"program"`
	Year      string         `db:"year"`
	Interests pq.StringArray `db:"interests"`
	MentorID  null.Int       `db:"mentor_id"`
	CreatedAt null.Time      `db:"created_at"`
	UpdatedAt null.Time      `db:"updated_at"`
}

const menteeColumns = `id, name, email, college, program, year, interests, mentor_id, created_at, updated_at`

func (r menteeRow) toMentee() mentorship.Mentee {
	return mentorship.Mentee{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		College:   r.College,
		Program:   r.Program,
		Year:      r.Year,
		Interests: r.Interests,
		MentorID:  r.MentorID,
		CreatedAt: r.CreatedAt.Time,
		UpdatedAt: r.UpdatedAt.Time,
	}
}

// Mentors

func (repo *mentorshipRepository) QueryAllMentors(ctx context.Context) ([]mentorship.Mentor, error) {
	var rows []mentorRow
	if err := repo.db.SelectContext(ctx, &rows, `SELECT `+mentorColumns+` FROM mentor ORDER BY id`); err != nil {
		return nil, errors.Wrap(err, "querying mentors")
	}
	mentors := make([]mentorship.Mentor, 0, len(rows))
	for _, r := range rows {
		mentors = append(mentors, r.toMentor())
	}
	return mentors, nil
}

func (repo *mentorshipRepository) getMentor(ctx context.Context, where string, args ...interface{}) (mentorship.Mentor, error) {
	var row mentorRow
	q := `SELECT ` + mentorColumns + ` FROM mentor WHERE ` + where
	if err := repo.db.GetContext(ctx, &row, q, args...); err != nil {
		if err == sql.ErrNoRows {
			return mentorship.Mentor{}, mentorship.ErrMentorNotFound
		}
		return mentorship.Mentor{}, errors.Wrap(err, "getting mentor")
	}
	return row.toMentor(), nil
}

func (repo *mentorshipRepository) GetMentorByID(ctx context.Context, id int) (mentorship.Mentor, error) {
	return repo.getMentor(ctx, "id = $1", id)
}

func (repo *mentorshipRepository) GetMentorByEmail(ctx context.Context, email string) (mentorship.Mentor, error) {
	return repo.getMentor(ctx, "email = $1", email)
}

func (repo *mentorshipRepository) CreateMentor(ctx context.Context, m mentorship.Mentor) (mentorship.Mentor, error) {
	q := `
INSERT INTO mentor (name, email, job, company, expertise, status, rating, mentee_count, max_mentees, availability, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING id`
	err := repo.db.GetContext(ctx, &m.ID, q,
		m.Name, m.Email, m.Job, m.Company, pq.Array(m.Expertise), string(m.Status),
		m.Rating, m.MenteeCount, m.MaxMentees, availabilityJSON(m.Availability), m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return mentorship.Mentor{}, errors.Wrap(err, "inserting mentor")
	}
	return m, nil
}

func (repo *mentorshipRepository) UpdateMentorStatus(ctx context.Context, id int, status mentorship.Status) (mentorship.Mentor, error) {
	res, err := repo.db.ExecContext(ctx,
		`UPDATE mentor SET status = $1, updated_at = now() WHERE id = $2`, string(status), id)
	if err != nil {
		return mentorship.Mentor{}, errors.Wrap(err, "updating mentor status")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return mentorship.Mentor{}, mentorship.ErrMentorNotFound
	}
	return repo.GetMentorByID(ctx, id)
}

func (repo *mentorshipRepository) SetMentorAvailability(ctx context.Context, id int, avail []mentorship.DayAvailability) (mentorship.Mentor, error) {
	res, err := repo.db.ExecContext(ctx,
		`UPDATE mentor SET availability = $1, updated_at = now() WHERE id = $2`, availabilityJSON(avail), id)
	if err != nil {
		return mentorship.Mentor{}, errors.Wrap(err, "updating mentor availability")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return mentorship.Mentor{}, mentorship.ErrMentorNotFound
	}
	return repo.GetMentorByID(ctx, id)
}

// Mentees

func (repo *mentorshipRepository) QueryAllMentees(ctx context.Context) ([]mentorship.Mentee, error) {
	var rows []menteeRow
	if err := repo.db.SelectContext(ctx, &rows, `SELECT `+menteeColumns+` FROM mentee ORDER BY id`); err != nil {
		return nil, errors.Wrap(err, "querying mentees")
	}
	mentees := make([]mentorship.Mentee, 0, len(rows))
	for _, r := range rows {
		mentees = append(mentees, r.toMentee())
	}
	return mentees, nil
}

func (repo *mentorshipRepository) GetMenteeByID(ctx context.Context, id int) (mentorship.Mentee, error) {
	var row menteeRow
	q := `SELECT ` + menteeColumns + ` FROM mentee WHERE id = $1`
	if err := repo.db.GetContext(ctx, &row, q, id); err != nil {
		if err == sql.ErrNoRows {
			return mentorship.Mentee{}, mentorship.ErrMenteeNotFound
		}
		return mentorship.Mentee{}, errors.Wrap(err, "getting mentee")
	}
	return row.toMentee(), nil
}

func (repo *mentorshipRepository) CreateMentee(ctx context.Context, m mentorship.Mentee) (mentorship.Mentee, error) {
	q := `
INSERT INTO mentee (name, email, college, program, year, interests, mentor_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id`
	err := repo.db.GetContext(ctx, &m.ID, q,
		m.Name, m.Email, m.College, m.Program, m.Year, pq.Array(m.Interests), m.MentorID, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return mentorship.Mentee{}, errors.Wrap(err, "inserting mentee")
	}
	return m, nil
}

// AssignMentor links the mentee to the mentor and bumps the mentor's mentee
// count in one transaction. The capacity guard lives in the UPDATE predicate
// so concurrent assignments cannot overfill a mentor.
func (repo *mentorshipRepository) AssignMentor(ctx context.Context, menteeID, mentorID int) (mentorship.Mentee, error) {
	tx, err := repo.db.BeginTxx(ctx, nil)
	if err != nil {
		return mentorship.Mentee{}, errors.Wrap(err, "beginning assignment")
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		`UPDATE mentor SET mentee_count = mentee_count + 1, updated_at = now()
		 WHERE id = $1 AND mentee_count < max_mentees`, mentorID)
	if err != nil {
		return mentorship.Mentee{}, errors.Wrap(err, "incrementing mentee count")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return mentorship.Mentee{}, mentorship.ErrCapacityExceeded
	}

	res, err = tx.ExecContext(ctx,
		`UPDATE mentee SET mentor_id = $1, updated_at = now()
		 WHERE id = $2 AND mentor_id IS NULL`, mentorID, menteeID)
	if err != nil {
		return mentorship.Mentee{}, errors.Wrap(err, "assigning mentor")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return mentorship.Mentee{}, mentorship.ErrAlreadyAssigned
	}

	if err = tx.Commit(); err != nil {
		return mentorship.Mentee{}, errors.Wrap(err, "committing assignment")
	}
	return repo.GetMenteeByID(ctx, menteeID)
}
