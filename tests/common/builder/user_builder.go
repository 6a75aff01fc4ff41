//go:build unit || e2e

package builder

import (
	reqdto "padelbook/internal/handler/dto/request"
	"padelbook/internal/domain/skill"
	"padelbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID           uuid.UUID
	DNI          string
	Name         string
	Surname      string
	Tier         string
	BalanceCents int64
	Password     string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		DNI:          "12345678Z",
		Name:         "Maria",
		Surname:      "Lopez",
		Tier:         "B",
		BalanceCents: 500,
		Password:     "password123",
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) BuildSnapshot() shared.UserSnapshot {
	return shared.UserSnapshot{
		ID:           u.ID,
		DNI:          u.DNI,
		Name:         u.Name,
		Surname:      u.Surname,
		Tier:         skill.Tier(u.Tier),
		BalanceCents: u.BalanceCents,
	}
}

func (u *UserBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		DNI:      u.DNI,
		Name:     u.Name,
		Surname:  u.Surname,
		Password: u.Password,
	}
}

func (u *UserBuilder) BuildLoginDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		DNI:      u.DNI,
		Password: u.Password,
	}
}
