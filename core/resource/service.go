package resource

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("resource not found")

type (
	Repository interface {
		QueryAllResources(ctx context.Context) ([]Resource, error)
		GetResourceByID(ctx context.Context, id int) (Resource, error)
		CreateResource(ctx context.Context, r Resource) (Resource, error)
		UpdateResource(ctx context.Context, r Resource) (Resource, error)
		DeleteResource(ctx context.Context, id int) error
	}

	ServiceInterface interface {
		Query(ctx context.Context, qf QueryFilter) ([]Resource, error)
		GetByID(ctx context.Context, id int) (Resource, error)
		TagOptions(ctx context.Context) ([]string, error)
		Publish(ctx context.Context, nr NewResource, addedBy string) (Resource, error)
		SetRecommended(ctx context.Context, id int, recommended bool) (Resource, error)
		Delete(ctx context.Context, id int) error
	}

	Service struct {
		repo Repository
	}
)

var _ ServiceInterface = (*Service)(nil)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Query(ctx context.Context, qf QueryFilter) ([]Resource, error) {
	resources, err := svc.repo.QueryAllResources(ctx)
	if err != nil {
		return nil, err
	}
	qf.Clean()
	return Filter(resources, qf), nil
}

func (svc *Service) GetByID(ctx context.Context, id int) (Resource, error) {
	return svc.repo.GetResourceByID(ctx, id)
}

func (svc *Service) TagOptions(ctx context.Context) ([]string, error) {
	resources, err := svc.repo.QueryAllResources(ctx)
	if err != nil {
		return nil, err
	}
	return Tags(resources), nil
}

func (svc *Service) Publish(ctx context.Context, nr NewResource, addedBy string) (Resource, error) {
	now := time.Now().UTC()
	return svc.repo.CreateResource(ctx, Resource{
		Title:       nr.Title,
		Description: nr.Description,
		URL:         nr.URL,
		Type:        nr.Type,
		Tags:        nr.Tags,
		AddedBy:     addedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func (svc *Service) SetRecommended(ctx context.Context, id int, recommended bool) (Resource, error) {
	r, err := svc.repo.GetResourceByID(ctx, id)
	if err != nil {
		return Resource{}, err
	}
	r.Recommended = recommended
	r.UpdatedAt = time.Now().UTC()
	return svc.repo.UpdateResource(ctx, r)
}

func (svc *Service) Delete(ctx context.Context, id int) error {
	return svc.repo.DeleteResource(ctx, id)
}
