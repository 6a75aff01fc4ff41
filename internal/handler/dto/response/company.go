package response

import (
	"time"

	"padelbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type CompanyResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	OpeningHour string    `json:"openingHour"`
	ClosingHour string    `json:"closingHour"`
}

type BusySlotResponse struct {
	StartTime       time.Time `json:"startTime"`
	DurationMinutes int32     `json:"durationMinutes"`
	Status          string    `json:"status"`
}

type CourtResponse struct {
	ID        uuid.UUID          `json:"id"`
	Surface   string             `json:"surface"`
	Indoor    bool               `json:"indoor"`
	BusySlots []BusySlotResponse `json:"busySlots,omitempty"`
}

type CompanyDetailResponse struct {
	CompanyResponse
	Courts []CourtResponse `json:"courts"`
}

func FromCompanyView(v *queries.CompanyView) *CompanyResponse {
	return &CompanyResponse{
		ID:          v.ID,
		Name:        v.Name,
		Address:     v.Address,
		OpeningHour: v.OpeningHour,
		ClosingHour: v.ClosingHour,
	}
}

func FromCompanyDetailView(v *queries.CompanyDetailView) *CompanyDetailResponse {
	resp := &CompanyDetailResponse{
		CompanyResponse: *FromCompanyView(&v.CompanyView),
		Courts:          make([]CourtResponse, len(v.Courts)),
	}
	for i, court := range v.Courts {
		cr := CourtResponse{ID: court.ID, Surface: court.Surface, Indoor: court.Indoor}
		for _, slot := range court.BusySlots {
			cr.BusySlots = append(cr.BusySlots, BusySlotResponse{
				StartTime:       slot.StartTime,
				DurationMinutes: slot.DurationMinutes,
				Status:          slot.Status,
			})
		}
		resp.Courts[i] = cr
	}
	return resp
}
