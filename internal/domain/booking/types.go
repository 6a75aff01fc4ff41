package booking

type Mode string

const (
	// ModeShared splits the court between up to four players who each pay a
	// quarter of the base price.
	ModeShared Mode = "shared"
	// ModeExclusive books the whole court for one payer at full price.
	ModeExclusive Mode = "exclusive"
)

func (m Mode) String() string {
	return string(m)
}

func (m Mode) IsValid() bool {
	switch m {
	case ModeShared, ModeExclusive:
		return true
	default:
		return false
	}
}

// InitialOpenSeats is the seat counter at creation: the creator always takes
// one seat, a shared booking leaves three joinable, an exclusive one none.
func (m Mode) InitialOpenSeats() int32 {
	if m == ModeShared {
		return 3
	}
	return 0
}

func (m Mode) MaxOpenSeats() int32 {
	return m.InitialOpenSeats()
}

type Status string

const (
	// StatusPending bookings are active and block their slot.
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// Blocking reports whether a booking in this status occupies its court slot.
func (s Status) Blocking() bool {
	return s == StatusPending
}
