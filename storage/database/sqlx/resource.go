package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/friendsofgo/errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/volatiletech/null/v8"

	"github.com/mentorhub/mentorhub/core/resource"
)

type resourceRepository struct {
	db *sqlx.DB
}

func NewResourceRepository(db *sqlx.DB) resource.Repository {
	return &resourceRepository{db: db}
}

type resourceRow struct {
	ID          int            `db:"id"`
	Title       string         `db:"title"`
	Description string         `db:"description"`
	URL         string         `db:"url"`
	Type        string         `db:"type"`
	Tags        pq.StringArray `db:"tags"`
	AddedBy     null.String    `db:"added_by"`
	Recommended bool           `db:"recommended"`
	CreatedAt   null.Time      `db:"created_at"`
	UpdatedAt   null.Time      `db:"updated_at"`
}

const resourceColumns = `id, title, description, url, type, tags, added_by, recommended, created_at, updated_at`

func (r resourceRow) toResource() resource.Resource {
	return resource.Resource{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		URL:         r.URL,
		Type:        resource.Type(r.Type),
		Tags:        r.Tags,
		AddedBy:     r.AddedBy.String,
		Recommended: r.Recommended,
		CreatedAt:   r.CreatedAt.Time,
		UpdatedAt:   r.UpdatedAt.Time,
	}
}

func (repo *resourceRepository) QueryAllResources(ctx context.Context) ([]resource.Resource, error) {
	var rows []resourceRow
	if err := repo.db.SelectContext(ctx, &rows, `SELECT `+resourceColumns+` FROM resource ORDER BY id`); err != nil {
		return nil, errors.Wrap(err, "querying resources")
	}
	resources := make([]resource.Resource, 0, len(rows))
	for _, r := range rows {
		resources = append(resources, r.toResource())
	}
	return resources, nil
}

func (repo *resourceRepository) GetResourceByID(ctx context.Context, id int) (resource.Resource, error) {
	var row resourceRow
	if err := repo.db.GetContext(ctx, &row, `SELECT `+resourceColumns+` FROM resource WHERE id = $1`, id); err != nil {
		if err == sql.ErrNoRows {
			return resource.Resource{}, resource.ErrNotFound
		}
		return resource.Resource{}, errors.Wrap(err, "getting resource")
	}
	return row.toResource(), nil
}

func (repo *resourceRepository) CreateResource(ctx context.Context, r resource.Resource) (resource.Resource, error) {
	q := `
INSERT INTO resource (title, description, url, type, tags, added_by, recommended, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id`
	err := repo.db.GetContext(ctx, &r.ID, q,
		r.Title, r.Description, r.URL, string(r.Type), pq.Array(r.Tags),
		null.NewString(r.AddedBy, r.AddedBy != ""), r.Recommended, r.CreatedAt, r.UpdatedAt,
	)
	if err != nil {
		return resource.Resource{}, errors.Wrap(err, "inserting resource")
	}
	return r, nil
}

func (repo *resourceRepository) UpdateResource(ctx context.Context, r resource.Resource) (resource.Resource, error) {
	res, err := repo.db.ExecContext(ctx, `
UPDATE resource
SET title = $1, description = $2, url = $3, type = $4, tags = $5, recommended = $6, updated_at = $7
WHERE id = $8`,
		r.Title, r.Description, r.URL, string(r.Type), pq.Array(r.Tags), r.Recommended, r.UpdatedAt, r.ID,
	)
	if err != nil {
		return resource.Resource{}, errors.Wrap(err, "updating resource")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return resource.Resource{}, resource.ErrNotFound
	}
	return repo.GetResourceByID(ctx, r.ID)
}

func (repo *resourceRepository) DeleteResource(ctx context.Context, id int) error {
	if _, err := repo.db.ExecContext(ctx, `DELETE FROM resource WHERE id = $1`, id); err != nil {
		return errors.Wrap(err, "deleting resource")
	}
	return nil
}
