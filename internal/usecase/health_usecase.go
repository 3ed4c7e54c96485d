package usecase

import "context"

type HealthUsecase interface {
	Check(ctx context.Context) map[string]bool
}

type healthUsecase struct{}

func NewHealthUsecase() HealthUsecase {
	return &healthUsecase{}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]bool {
	return map[string]bool{
		"ok": true,
	}
}
