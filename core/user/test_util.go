package user

import (
	"context"

	"github.com/mentorhub/mentorhub/core"
)

type serviceMock struct {
	Service
}

func NewServiceMock(repo Repository, mailSvc core.EmailService, log core.Logger) ServiceInterface {
	return &serviceMock{
		Service: Service{
			repo:    repo,
			mailSvc: mailSvc,
			log:     log,
		},
	}
}

func (svc *serviceMock) RequestPasswordReset(ctx context.Context, email string) error {
	usr, err := svc.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	// run synchronously
	svc.sendPasswordResetMail(usr)
	return nil
}
