package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/friendsofgo/errors"
	"github.com/jmoiron/sqlx"
	"github.com/volatiletech/null/v8"

	"github.com/mentorhub/mentorhub/core/college"
)

type collegeRepository struct {
	db *sqlx.DB
}

func NewCollegeRepository(db *sqlx.DB) college.Repository {
	return &collegeRepository{db: db}
}

type collegeRow struct {
	ID           int       `db:"id"`
	Name         string    `db:"name"`
	Code         string    `db:"code"`
	Location     string    `db:"location"`
	StudentCount int       `db:"student_count"`
	MentorCount  int       `db:"mentor_count"`
	Active       bool      `db:"active"`
	CreatedAt    null.Time `db:"created_at"`
	UpdatedAt    null.Time `db:"updated_at"`
}

const collegeColumns = `id, name, code, location, student_count, mentor_count, active, created_at, updated_at`

func (r collegeRow) toCollege() college.College {
	return college.College{
		ID:           r.ID,
		Name:         r.Name,
		Code:         r.Code,
		Location:     r.Location,
		StudentCount: r.StudentCount,
		MentorCount:  r.MentorCount,
		Active:       r.Active,
		CreatedAt:    r.CreatedAt.Time,
		UpdatedAt:    r.UpdatedAt.Time,
	}
}

func (repo *collegeRepository) QueryAllColleges(ctx context.Context) ([]college.College, error) {
	var rows []collegeRow
	if err := repo.db.SelectContext(ctx, &rows, `SELECT `+collegeColumns+` FROM college ORDER BY id`); err != nil {
		return nil, errors.Wrap(err, "querying colleges")
	}
	colleges := make([]college.College, 0, len(rows))
	for _, r := range rows {
		colleges = append(colleges, r.toCollege())
	}
	return colleges, nil
}

func (repo *collegeRepository) getCollege(ctx context.Context, where string, args ...interface{}) (college.College, error) {
	var row collegeRow
	q := `SELECT ` + collegeColumns + ` FROM college WHERE ` + where
	if err := repo.db.GetContext(ctx, &row, q, args...); err != nil {
		if err == sql.ErrNoRows {
			return college.College{}, college.ErrNotFound
		}
		return college.College{}, errors.Wrap(err, "getting college")
	}
	return row.toCollege(), nil
}

func (repo *collegeRepository) GetCollegeByID(ctx context.Context, id int) (college.College, error) {
	return repo.getCollege(ctx, "id = $1", id)
}

func (repo *collegeRepository) GetCollegeByCode(ctx context.Context, code string) (college.College, error) {
	return repo.getCollege(ctx, "code = $1", code)
}

func (repo *collegeRepository) CreateCollege(ctx context.Context, c college.College) (college.College, error) {
	q := `
INSERT INTO college (name, code, location, student_count, mentor_count, active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id`
	err := repo.db.GetContext(ctx, &c.ID, q,
		c.Name, c.Code, c.Location, c.StudentCount, c.MentorCount, c.Active, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return college.College{}, errors.Wrap(err, "inserting college")
	}
	return c, nil
}

func (repo *collegeRepository) UpdateCollege(ctx context.Context, c college.College, active *bool) (college.College, error) {
	q := `UPDATE college SET name = $1, location = $2, updated_at = $3 WHERE id = $4`
	args := []interface{}{c.Name, c.Location, c.UpdatedAt, c.ID}
	if active != nil {
		q = `UPDATE college SET name = $1, location = $2, updated_at = $3, active = $5 WHERE id = $4`
		args = append(args, *active)
	}

	res, err := repo.db.ExecContext(ctx, q, args...)
	if err != nil {
		return college.College{}, errors.Wrap(err, "updating college")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return college.College{}, college.ErrNotFound
	}
	return repo.GetCollegeByID(ctx, c.ID)
}
