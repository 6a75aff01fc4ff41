//go:build unit || e2e

package builder

import (
	"time"

	reqdto "padelbook/internal/handler/dto/request"
	"padelbook/internal/usecase/commands"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	CourtID         uuid.UUID
	StartTime       time.Time
	DurationMinutes int32
	Mode            string
	RequiredTier    string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		CourtID:         uuid.New(),
		StartTime:       time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
		Mode:            "exclusive",
		RequiredTier:    "B",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		CourtID:         b.CourtID,
		StartTime:       b.StartTime,
		DurationMinutes: b.DurationMinutes,
		Mode:            b.Mode,
		RequiredTier:    b.RequiredTier,
	}
}

func (b *BookingBuilder) BuildCommand() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		CourtID:         b.CourtID,
		StartTime:       b.StartTime,
		DurationMinutes: b.DurationMinutes,
		Mode:            b.Mode,
		RequiredTier:    b.RequiredTier,
	}
}
