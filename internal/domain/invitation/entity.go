package invitation

import (
	"time"

	"github.com/google/uuid"
)

type State string

const (
	// StateRequested is the only persisted state: acceptance and rejection
	// both destroy the invitation instead of transitioning it.
	StateRequested State = "requested"
)

// Invitation is a pending join request against a booking's open seats.
type Invitation struct {
	id        uuid.UUID
	bookingID uuid.UUID
	userID    uuid.UUID
	state     State
	createdAt time.Time
}

func NewInvitation(bookingID, userID uuid.UUID) *Invitation {
	return &Invitation{
		id:        uuid.New(),
		bookingID: bookingID,
		userID:    userID,
		state:     StateRequested,
	}
}

func ReconstructInvitation(id, bookingID, userID uuid.UUID, state State, createdAt time.Time) *Invitation {
	return &Invitation{
		id:        id,
		bookingID: bookingID,
		userID:    userID,
		state:     state,
		createdAt: createdAt,
	}
}

func (i *Invitation) ID() uuid.UUID        { return i.id }
func (i *Invitation) BookingID() uuid.UUID { return i.bookingID }
func (i *Invitation) UserID() uuid.UUID    { return i.userID }
func (i *Invitation) State() State         { return i.state }
func (i *Invitation) CreatedAt() time.Time { return i.createdAt }
