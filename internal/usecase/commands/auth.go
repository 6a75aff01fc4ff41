package commands

import (
	"context"
	"errors"

	"padelbook/internal/domain/user"
	"padelbook/internal/infra"
	"padelbook/internal/pkg/errs"
	"padelbook/internal/pkg/jwt"
	"padelbook/internal/pkg/password"
	"padelbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDuplicateDNI       = errs.New("dni already registered")
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type RegisterRequest struct {
	DNI      string
	Name     string
	Surname  string
	Password string
}

type RegisterResult struct {
	UserID uuid.UUID
}

type LoginResult struct {
	UserID uuid.UUID
	Token  string
}

type AuthCommands interface {
	Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error)
	Login(ctx context.Context, dni, plainPassword string) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{uow: uow, jwtService: jwtService}
}

// Register creates a user with an empty wallet and the entry tier. The DNI is
// the stable external key; a duplicate registration fails.
func (a *authCommandsImpl) Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error) {
	dni, err := user.NewDNI(req.DNI)
	if err != nil {
		return nil, err
	}
	hash, err := password.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	u := user.NewUser(dni, req.Name, req.Surname, hash)

	var result RegisterResult
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Users().Create(ctx, tx.DB(), u)
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrDuplicateDNI
			}
			return derr
		}
		result = RegisterResult{UserID: id}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Login verifies the password and issues a signed token. An unknown DNI and a
// wrong password are indistinguishable to the caller.
func (a *authCommandsImpl) Login(ctx context.Context, dni, plainPassword string) (*LoginResult, error) {
	var snap *shared.UserSnapshot
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, derr := tx.Users().FindByDNI(ctx, tx.DB(), dni)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrInvalidCredentials
			}
			return derr
		}
		snap = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := password.ComparePassword(snap.PasswordHash, plainPassword); err != nil {
		if errors.Is(err, password.ErrComparisonFailed) || errors.Is(err, password.ErrInvalidPassword) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	token, err := a.jwtService.GenerateToken(snap.ID, snap.DNI)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &LoginResult{UserID: snap.ID, Token: token}, nil
}
