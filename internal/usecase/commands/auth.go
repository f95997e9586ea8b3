package commands

import (
	"context"

	"salon-booking-api/internal/domain/user"
	"salon-booking-api/internal/infra"
	"salon-booking-api/internal/pkg/errs"
	"salon-booking-api/internal/pkg/jwt"
	"salon-booking-api/internal/pkg/password"
	"salon-booking-api/internal/usecase/queries"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
)

type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (string, *queries.UserView, error)
}

type authCommandsImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
}

func NewAuthCommands(userRepo UserRepository, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (string, *queries.UserView, error) {
	snapshot, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, errs.Wrap(err, "failed to find user")
	}

	if err := password.VerifyPassword(snapshot.PasswordHash, plainPassword); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(snapshot.ID, user.Role(snapshot.Role))
	if err != nil {
		return "", nil, errs.Wrap(err, "failed to generate token")
	}

	view := &queries.UserView{
		ID:    snapshot.ID,
		Email: snapshot.Email,
		Role:  snapshot.Role,
	}
	return token, view, nil
}
