//go:build unit

package commands_test

import (
	"context"
	"time"

	"padelbook/internal/domain/booking"
	"padelbook/internal/domain/invitation"
	"padelbook/internal/domain/skill"
	"padelbook/internal/domain/user"
	"padelbook/internal/infra"
	"padelbook/internal/infra/db"
	"padelbook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// In-memory stand-in for the postgres unit of work. Within stages all writes
// on a copy of the store and publishes them only when the callback succeeds,
// mirroring the commit/rollback behavior the commands rely on.

func skillTier(s string) skill.Tier {
	return skill.Tier(s)
}

type participantKey struct {
	bookingID uuid.UUID
	userID    uuid.UUID
}

type fakeStore struct {
	users        map[uuid.UUID]shared.UserSnapshot
	bookings     map[uuid.UUID]shared.BookingSnapshot
	participants map[participantKey]shared.ParticipantSnapshot
	invitations  map[uuid.UUID]shared.InvitationSnapshot
	entries      []shared.WalletEntry
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:        map[uuid.UUID]shared.UserSnapshot{},
		bookings:     map[uuid.UUID]shared.BookingSnapshot{},
		participants: map[participantKey]shared.ParticipantSnapshot{},
		invitations:  map[uuid.UUID]shared.InvitationSnapshot{},
	}
}

func (s *fakeStore) clone() *fakeStore {
	out := newFakeStore()
	for k, v := range s.users {
		out.users[k] = v
	}
	for k, v := range s.bookings {
		out.bookings[k] = v
	}
	for k, v := range s.participants {
		out.participants[k] = v
	}
	for k, v := range s.invitations {
		out.invitations[k] = v
	}
	out.entries = append(out.entries, s.entries...)
	return out
}

func (s *fakeStore) addUser(tier string, balanceCents int64) uuid.UUID {
	id := uuid.New()
	s.users[id] = shared.UserSnapshot{
		ID:           id,
		DNI:          "00000000A",
		Name:         "Test",
		Surname:      "User",
		Tier:         skillTier(tier),
		BalanceCents: balanceCents,
	}
	return id
}

func (s *fakeStore) addBooking(courtID uuid.UUID, start time.Time, durationMin int32, mode booking.Mode, tier string, openSeats int32, priceCents int64) uuid.UUID {
	id := uuid.New()
	s.bookings[id] = shared.BookingSnapshot{
		ID:              id,
		CourtID:         courtID,
		StartTime:       start,
		DurationMinutes: durationMin,
		Mode:            mode,
		RequiredTier:    skillTier(tier),
		Status:          booking.StatusPending,
		OpenSeats:       openSeats,
		PriceCents:      priceCents,
		CreatedAt:       start.Add(-24 * time.Hour),
	}
	return id
}

func (s *fakeStore) addParticipant(bookingID, userID uuid.UUID, isCreator bool) {
	s.participants[participantKey{bookingID, userID}] = shared.ParticipantSnapshot{
		BookingID: bookingID,
		UserID:    userID,
		IsCreator: isCreator,
		Paid:      true,
	}
}

func (s *fakeStore) addInvitation(bookingID, userID uuid.UUID) uuid.UUID {
	id := uuid.New()
	s.invitations[id] = shared.InvitationSnapshot{
		ID:        id,
		BookingID: bookingID,
		UserID:    userID,
		State:     invitation.StateRequested,
	}
	return id
}

type fakeUoW struct {
	store *fakeStore
}

func newFakeUoW(store *fakeStore) *fakeUoW {
	return &fakeUoW{store: store}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	staged := u.store.clone()
	if err := fn(ctx, &fakeTx{store: staged}); err != nil {
		return err
	}
	*u.store = *staged
	return nil
}

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) Bookings() shared.BookingRepository         { return &fakeBookingRepo{t.store} }
func (t *fakeTx) Participants() shared.ParticipantRepository { return &fakeParticipantRepo{t.store} }
func (t *fakeTx) Invitations() shared.InvitationRepository   { return &fakeInvitationRepo{t.store} }
func (t *fakeTx) Users() shared.UserRepository               { return &fakeUserRepo{t.store} }
func (t *fakeTx) WalletEntries() shared.WalletEntryRepository {
	return &fakeWalletEntryRepo{t.store}
}
func (t *fakeTx) Ratings() shared.RatingRepository { return &fakeRatingRepo{} }
func (t *fakeTx) DB() db.DBTX                      { return nil }

type fakeBookingRepo struct{ store *fakeStore }

func (r *fakeBookingRepo) HasOverlap(_ context.Context, _ db.DBTX, courtID uuid.UUID, slot booking.TimeSlot, excludeID *uuid.UUID) (bool, error) {
	for id, b := range r.store.bookings {
		if b.CourtID != courtID || !b.Status.Blocking() {
			continue
		}
		if excludeID != nil && id == *excludeID {
			continue
		}
		other, err := b.Slot()
		if err != nil {
			return false, err
		}
		if slot.Overlaps(other) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeBookingRepo) Create(_ context.Context, _ db.DBTX, b *booking.Booking, seatPriceCents int64) (uuid.UUID, error) {
	r.store.bookings[b.ID()] = shared.BookingSnapshot{
		ID:              b.ID(),
		CourtID:         b.CourtID(),
		StartTime:       b.Slot().Start(),
		DurationMinutes: b.Slot().DurationMinutes(),
		Mode:            b.Mode(),
		RequiredTier:    b.RequiredTier(),
		Status:          b.Status(),
		OpenSeats:       b.OpenSeats(),
		PriceCents:      seatPriceCents,
	}
	return b.ID(), nil
}

func (r *fakeBookingRepo) FindForUpdate(_ context.Context, _ db.DBTX, id uuid.UUID) (*shared.BookingSnapshot, error) {
	b, ok := r.store.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", pgx.ErrNoRows)
	}
	return &b, nil
}

func (r *fakeBookingRepo) UpdateFields(_ context.Context, _ db.DBTX, id uuid.UUID, patch shared.BookingPatch) (int64, error) {
	b, ok := r.store.bookings[id]
	if !ok {
		return 0, nil
	}
	if patch.StartTime != nil {
		b.StartTime = *patch.StartTime
	}
	if patch.DurationMinutes != nil {
		b.DurationMinutes = *patch.DurationMinutes
	}
	if patch.RequiredTier != nil {
		b.RequiredTier = *patch.RequiredTier
	}
	if patch.Mode != nil {
		b.Mode = *patch.Mode
	}
	if patch.OpenSeats != nil {
		b.OpenSeats = *patch.OpenSeats
	}
	if patch.Status != nil {
		b.Status = *patch.Status
	}
	r.store.bookings[id] = b
	return 1, nil
}

func (r *fakeBookingRepo) SetOpenSeats(_ context.Context, _ db.DBTX, id uuid.UUID, seats int32) error {
	b, ok := r.store.bookings[id]
	if !ok {
		return infra.WrapRepoErr("booking not found", pgx.ErrNoRows)
	}
	b.OpenSeats = seats
	r.store.bookings[id] = b
	return nil
}

func (r *fakeBookingRepo) Delete(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	delete(r.store.bookings, id)
	return nil
}

type fakeParticipantRepo struct{ store *fakeStore }

func (r *fakeParticipantRepo) Insert(_ context.Context, _ db.DBTX, p booking.Participant) error {
	key := participantKey{p.BookingID, p.UserID}
	if _, exists := r.store.participants[key]; exists {
		return infra.WrapRepoErr("participant exists", nil, infra.KindDuplicateKey)
	}
	r.store.participants[key] = shared.ParticipantSnapshot{
		BookingID: p.BookingID,
		UserID:    p.UserID,
		IsCreator: p.IsCreator,
		Paid:      p.Paid,
	}
	return nil
}

func (r *fakeParticipantRepo) Find(_ context.Context, _ db.DBTX, bookingID, userID uuid.UUID) (*shared.ParticipantSnapshot, error) {
	p, ok := r.store.participants[participantKey{bookingID, userID}]
	if !ok {
		return nil, infra.WrapRepoErr("participant not found", pgx.ErrNoRows)
	}
	return &p, nil
}

func (r *fakeParticipantRepo) Delete(_ context.Context, _ db.DBTX, bookingID, userID uuid.UUID) (int64, error) {
	key := participantKey{bookingID, userID}
	if _, ok := r.store.participants[key]; !ok {
		return 0, nil
	}
	delete(r.store.participants, key)
	return 1, nil
}

func (r *fakeParticipantRepo) CountByBooking(_ context.Context, _ db.DBTX, bookingID uuid.UUID) (int64, error) {
	var n int64
	for key := range r.store.participants {
		if key.bookingID == bookingID {
			n++
		}
	}
	return n, nil
}

type fakeInvitationRepo struct{ store *fakeStore }

func (r *fakeInvitationRepo) Insert(_ context.Context, _ db.DBTX, inv *invitation.Invitation) (uuid.UUID, error) {
	for _, existing := range r.store.invitations {
		if existing.BookingID == inv.BookingID() && existing.UserID == inv.UserID() {
			return uuid.Nil, infra.WrapRepoErr("invitation exists", nil, infra.KindDuplicateKey)
		}
	}
	r.store.invitations[inv.ID()] = shared.InvitationSnapshot{
		ID:        inv.ID(),
		BookingID: inv.BookingID(),
		UserID:    inv.UserID(),
		State:     inv.State(),
	}
	return inv.ID(), nil
}

func (r *fakeInvitationRepo) FindForUpdate(_ context.Context, _ db.DBTX, id uuid.UUID) (*shared.InvitationSnapshot, error) {
	inv, ok := r.store.invitations[id]
	if !ok {
		return nil, infra.WrapRepoErr("invitation not found", pgx.ErrNoRows)
	}
	return &inv, nil
}

func (r *fakeInvitationRepo) Exists(_ context.Context, _ db.DBTX, bookingID, userID uuid.UUID) (bool, error) {
	for _, inv := range r.store.invitations {
		if inv.BookingID == bookingID && inv.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeInvitationRepo) Delete(_ context.Context, _ db.DBTX, id uuid.UUID) (int64, error) {
	if _, ok := r.store.invitations[id]; !ok {
		return 0, nil
	}
	delete(r.store.invitations, id)
	return 1, nil
}

func (r *fakeInvitationRepo) DeleteByBooking(_ context.Context, _ db.DBTX, bookingID uuid.UUID) error {
	for id, inv := range r.store.invitations {
		if inv.BookingID == bookingID {
			delete(r.store.invitations, id)
		}
	}
	return nil
}

type fakeUserRepo struct{ store *fakeStore }

func (r *fakeUserRepo) Create(_ context.Context, _ db.DBTX, u *user.User) (uuid.UUID, error) {
	for _, existing := range r.store.users {
		if existing.DNI == u.DNI().String() {
			return uuid.Nil, infra.WrapRepoErr("dni exists", nil, infra.KindDuplicateKey)
		}
	}
	r.store.users[u.ID()] = shared.UserSnapshot{
		ID:           u.ID(),
		DNI:          u.DNI().String(),
		Name:         u.Name(),
		Surname:      u.Surname(),
		PasswordHash: u.PasswordHash(),
		PostalCode:   u.PostalCode(),
		Tier:         u.Tier(),
		BalanceCents: u.Balance().Cents(),
		Rating:       u.Rating(),
	}
	return u.ID(), nil
}

func (r *fakeUserRepo) FindForUpdate(_ context.Context, _ db.DBTX, id uuid.UUID) (*shared.UserSnapshot, error) {
	u, ok := r.store.users[id]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", pgx.ErrNoRows)
	}
	return &u, nil
}

func (r *fakeUserRepo) FindByDNI(_ context.Context, _ db.DBTX, dni string) (*shared.UserSnapshot, error) {
	for _, u := range r.store.users {
		if u.DNI == dni {
			snap := u
			return &snap, nil
		}
	}
	return nil, infra.WrapRepoErr("user not found", pgx.ErrNoRows)
}

func (r *fakeUserRepo) UpdateBalance(_ context.Context, _ db.DBTX, id uuid.UUID, balanceCents int64) error {
	u, ok := r.store.users[id]
	if !ok {
		return infra.WrapRepoErr("user not found", pgx.ErrNoRows)
	}
	u.BalanceCents = balanceCents
	r.store.users[id] = u
	return nil
}

func (r *fakeUserRepo) UpdateProfile(_ context.Context, _ db.DBTX, id uuid.UUID, patch shared.ProfilePatch) (int64, error) {
	u, ok := r.store.users[id]
	if !ok {
		return 0, nil
	}
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Surname != nil {
		u.Surname = *patch.Surname
	}
	if patch.PostalCode != nil {
		u.PostalCode = patch.PostalCode
	}
	if patch.Tier != nil {
		u.Tier = *patch.Tier
	}
	r.store.users[id] = u
	return 1, nil
}

type fakeWalletEntryRepo struct{ store *fakeStore }

func (r *fakeWalletEntryRepo) Insert(_ context.Context, _ db.DBTX, entry shared.WalletEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	r.store.entries = append(r.store.entries, entry)
	return nil
}

type fakeRatingRepo struct{}

func (r *fakeRatingRepo) RecalcUserRating(_ context.Context, _ db.DBTX, _ uuid.UUID) error {
	return nil
}
