package user

import (
	"time"

	"padelbook/internal/domain/skill"
	"padelbook/internal/domain/wallet"

	"github.com/google/uuid"
)

type User struct {
	id           uuid.UUID
	dni          DNI
	name         string
	surname      string
	passwordHash string
	postalCode   *int32
	tier         skill.Tier
	balance      wallet.Balance
	rating       float64
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser registers a user with an empty wallet and the entry tier. Rating
// starts at zero and is only ever recomputed from rating rows.
func NewUser(dni DNI, name, surname, passwordHash string) *User {
	return &User{
		id:           uuid.New(),
		dni:          dni,
		name:         name,
		surname:      surname,
		passwordHash: passwordHash,
		tier:         skill.TierF,
		balance:      wallet.ZeroBalance(),
	}
}

func ReconstructUser(
	id uuid.UUID,
	dni DNI,
	name, surname, passwordHash string,
	postalCode *int32,
	tier skill.Tier,
	balance wallet.Balance,
	rating float64,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		dni:          dni,
		name:         name,
		surname:      surname,
		passwordHash: passwordHash,
		postalCode:   postalCode,
		tier:         tier,
		balance:      balance,
		rating:       rating,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() uuid.UUID           { return u.id }
func (u *User) DNI() DNI                { return u.dni }
func (u *User) Name() string            { return u.name }
func (u *User) Surname() string         { return u.surname }
func (u *User) PasswordHash() string    { return u.passwordHash }
func (u *User) PostalCode() *int32      { return u.postalCode }
func (u *User) Tier() skill.Tier        { return u.tier }
func (u *User) Balance() wallet.Balance { return u.balance }
func (u *User) Rating() float64         { return u.rating }
func (u *User) CreatedAt() time.Time    { return u.createdAt }
func (u *User) UpdatedAt() time.Time    { return u.updatedAt }
