package request

import (
	"padelbook/internal/domain/skill"
	"padelbook/internal/usecase/shared"
)

type UpdateProfileRequest struct {
	Name       *string `json:"name,omitempty"`
	Surname    *string `json:"surname,omitempty"`
	PostalCode *int32  `json:"postal_code,omitempty"`
	Tier       *string `json:"tier,omitempty"`
}

func (r UpdateProfileRequest) ToPatch() shared.ProfilePatch {
	patch := shared.ProfilePatch{
		Name:       r.Name,
		Surname:    r.Surname,
		PostalCode: r.PostalCode,
	}
	if r.Tier != nil {
		t := skill.Tier(*r.Tier)
		patch.Tier = &t
	}
	return patch
}
