package response

import (
	"padelbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserSettingsResponse struct {
	ID           uuid.UUID `json:"id"`
	DNI          string    `json:"dni"`
	Name         string    `json:"name"`
	Surname      string    `json:"surname"`
	PostalCode   *int32    `json:"postalCode,omitempty"`
	Tier         string    `json:"tier"`
	BalanceCents int64     `json:"balanceCents"`
	Rating       float64   `json:"rating"`
}

func FromUserSettingsView(v *queries.UserSettingsView) *UserSettingsResponse {
	return &UserSettingsResponse{
		ID:           v.ID,
		DNI:          v.DNI,
		Name:         v.Name,
		Surname:      v.Surname,
		PostalCode:   v.PostalCode,
		Tier:         v.Tier,
		BalanceCents: v.BalanceCents,
		Rating:       v.Rating,
	}
}
