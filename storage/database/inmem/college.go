package inmemdb

import (
	"context"
	"sort"

	"github.com/mentorhub/mentorhub/core/college"
)

type collegeRepository struct {
	db *collegeTable
}

func NewCollegeRepository(db *DB) college.Repository {
	return &collegeRepository{db: db.college}
}

func (repo *collegeRepository) query() []college.College {
	colleges := make([]college.College, 0, len(repo.db.rows))
	for _, c := range repo.db.rows {
		colleges = append(colleges, *c)
	}
	sort.Slice(colleges, func(i, j int) bool { return colleges[i].ID < colleges[j].ID })
	return colleges
}

func (repo *collegeRepository) QueryAllColleges(_ context.Context) ([]college.College, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.query(), nil
}

func (repo *collegeRepository) GetCollegeByID(_ context.Context, id int) (college.College, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if c, ok := repo.db.rows[id]; ok {
		return *c, nil
	}
	return college.College{}, college.ErrNotFound
}

func (repo *collegeRepository) GetCollegeByCode(_ context.Context, code string) (college.College, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, c := range repo.query() {
		if c.Code == code {
			return c, nil
		}
	}
	return college.College{}, college.ErrNotFound
}

func (repo *collegeRepository) CreateCollege(_ context.Context, c college.College) (college.College, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.seq++
	c.ID = repo.db.seq
	repo.db.rows[c.ID] = &c
	return c, nil
}

func (repo *collegeRepository) UpdateCollege(_ context.Context, c college.College, active *bool) (college.College, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	orig, ok := repo.db.rows[c.ID]
	if !ok {
		return college.College{}, college.ErrNotFound
	}
	if c.Name != "" {
		orig.Name = c.Name
	}
	if c.Location != "" {
		orig.Location = c.Location
	}
	if active != nil {
		orig.Active = *active
	}
	orig.UpdatedAt = c.UpdatedAt
	return *orig, nil
}
