package service

import (
	"context"

	"github.com/mpetrov/lectern/internal/canvas"
)

// selfAPI is the slice of the client the identity service needs.
type selfAPI interface {
	Self(ctx context.Context) (*canvas.User, error)
}

type identityService struct {
	api selfAPI
}

func NewIdentityService(api selfAPI) IdentityService {
	return &identityService{api: api}
}

func (s *identityService) Whoami(ctx context.Context) (*canvas.User, error) {
	return s.api.Self(ctx)
}
