package college

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/mentorhub/mentorhub/core"
)

var (
	// errors
	ErrNotFound   = errors.New("college not found")
	ErrCodeExists = errors.New("a college with this code already exists")
)

type (
	Repository interface {
		QueryAllColleges(ctx context.Context) ([]College, error)
		GetCollegeByID(ctx context.Context, id int) (College, error)
		GetCollegeByCode(ctx context.Context, code string) (College, error)
		CreateCollege(ctx context.Context, c College) (College, error)
		UpdateCollege(ctx context.Context, c College, active *bool) (College, error)
	}

	ServiceInterface interface {
		Query(ctx context.Context, qf QueryFilter) ([]College, error)
		GetByID(ctx context.Context, id int) (College, error)
		Create(ctx context.Context, nc NewCollege) (College, error)
		Update(ctx context.Context, id int, uc UpdateCollege) (College, error)
	}

	Service struct {
		repo Repository
	}
)

var _ ServiceInterface = (*Service)(nil)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Query(ctx context.Context, qf QueryFilter) ([]College, error) {
	colleges, err := svc.repo.QueryAllColleges(ctx)
	if err != nil {
		return nil, err
	}
	qf.Clean()
	return Filter(colleges, qf), nil
}

func (svc *Service) GetByID(ctx context.Context, id int) (College, error) {
	return svc.repo.GetCollegeByID(ctx, id)
}

func (svc *Service) Create(ctx context.Context, nc NewCollege) (College, error) {
	if _, err := svc.repo.GetCollegeByCode(ctx, nc.Code); err == nil {
		return College{}, core.NewValidationError(ErrCodeExists, core.FieldError{Field: "code", Error: ErrCodeExists.Error()})
	} else if errors.Cause(err) != ErrNotFound {
		return College{}, err
	}

	now := time.Now().UTC()
	return svc.repo.CreateCollege(ctx, College{
		Name:      nc.Name,
		Code:      nc.Code,
		Location:  nc.Location,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (svc *Service) Update(ctx context.Context, id int, uc UpdateCollege) (College, error) {
	return svc.repo.UpdateCollege(ctx, College{
		ID:        id,
		Name:      uc.Name,
		Location:  uc.Location,
		UpdatedAt: time.Now().UTC(),
	}, uc.Active)
}
