package inmemdb

import (
	"context"
	"sort"

	"github.com/mentorhub/mentorhub/core/resource"
)

type resourceRepository struct {
	db *resourceTable
}

func NewResourceRepository(db *DB) resource.Repository {
	return &resourceRepository{db: db.resource}
}

func (repo *resourceRepository) query() []resource.Resource {
	resources := make([]resource.Resource, 0, len(repo.db.rows))
	for _, r := range repo.db.rows {
		resources = append(resources, *r)
	}
	sort.Slice(resources, func(i, j int) bool { return resources[i].ID < resources[j].ID })
	return resources
}

func (repo *resourceRepository) QueryAllResources(_ context.Context) ([]resource.Resource, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.query(), nil
}

func (repo *resourceRepository) GetResourceByID(_ context.Context, id int) (resource.Resource, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if r, ok := repo.db.rows[id]; ok {
		return *r, nil
	}
	return resource.Resource{}, resource.ErrNotFound
}

func (repo *resourceRepository) CreateResource(_ context.Context, r resource.Resource) (resource.Resource, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.seq++
	r.ID = repo.db.seq
	repo.db.rows[r.ID] = &r
	return r, nil
}

func (repo *resourceRepository) UpdateResource(_ context.Context, r resource.Resource) (resource.Resource, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.rows[r.ID]; !ok {
		return resource.Resource{}, resource.ErrNotFound
	}
	repo.db.rows[r.ID] = &r
	return r, nil
}

func (repo *resourceRepository) DeleteResource(_ context.Context, id int) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()
	delete(repo.db.rows, id)
	return nil
}
