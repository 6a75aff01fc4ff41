//go:build unit

package commands_test

import (
	"context"
	"testing"

	"padelbook/internal/domain/booking"
	"padelbook/internal/pkg/clock"
	"padelbook/internal/usecase/commands"
	"padelbook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInvitationCommands(store *fakeStore) commands.InvitationCommands {
	return commands.NewInvitationUseCase(newFakeUoW(store), booking.DefaultPriceTable(), clock.NewMockClock(testStart))
}

func TestRequestInvitation(t *testing.T) {
	ctx := context.Background()
	courtID := uuid.New()

	t.Run("records a pending request", func(t *testing.T) {
		store := newFakeStore()
		bookingID := store.addBooking(courtID, testStart, 90, booking.ModeShared, "B", 3, 175)
		targetID := store.addUser("B", 175)

		result, err := newInvitationCommands(store).RequestInvitation(ctx, bookingID, targetID)
		require.NoError(t, err)

		inv := store.invitations[result.InvitationID]
		assert.Equal(t, bookingID, inv.BookingID)
		assert.Equal(t, targetID, inv.UserID)

		// Requesting never charges; payment happens at acceptance.
		assert.Equal(t, int64(175), store.users[targetID].BalanceCents)
		assert.Empty(t, store.entries)
	})

	t.Run("unknown booking", func(t *testing.T) {
		store := newFakeStore()
		targetID := store.addUser("B", 500)

		_, err := newInvitationCommands(store).RequestInvitation(ctx, uuid.New(), targetID)
		assert.ErrorIs(t, err, commands.ErrBookingNotFound)
	})

	t.Run("unknown target user", func(t *testing.T) {
		store := newFakeStore()
		bookingID := store.addBooking(courtID, testStart, 90, booking.ModeShared, "B", 3, 175)

		_, err := newInvitationCommands(store).RequestInvitation(ctx, bookingID, uuid.New())
		assert.ErrorIs(t, err, commands.ErrUserNotFound)
	})

	t.Run("funds are checked before tier", func(t *testing.T) {
		store := newFakeStore()
		bookingID := store.addBooking(courtID, testStart, 90, booking.ModeShared, "B", 3, 175)
		// Fails both checks; the funds error must win.
		targetID := store.addUser("F", 100)

		_, err := newInvitationCommands(store).RequestInvitation(ctx, bookingID, targetID)
		assert.ErrorIs(t, err, commands.ErrInsufficientFunds)
	})

	t.Run("tier outside the allowed window", func(t *testing.T) {
		store := newFakeStore()
		bookingID := store.addBooking(courtID, testStart, 90, booking.ModeShared, "B", 3, 175)
		targetID := store.addUser("F", 500)

		_, err := newInvitationCommands(store).RequestInvitation(ctx, bookingID, targetID)
		assert.ErrorIs(t, err, commands.ErrTierNotAllowed)
	})

	t.Run("duplicate request for the same booking", func(t *testing.T) {
		store := newFakeStore()
		bookingID := store.addBooking(courtID, testStart, 90, booking.ModeShared, "B", 3, 175)
		targetID := store.addUser("B", 500)
		store.addInvitation(bookingID, targetID)

		_, err := newInvitationCommands(store).RequestInvitation(ctx, bookingID, targetID)
		assert.ErrorIs(t, err, commands.ErrDuplicateInvitation)
	})

	t.Run("existing participant cannot be invited again", func(t *testing.T) {
		store := newFakeStore()
		bookingID := store.addBooking(courtID, testStart, 90, booking.ModeShared, "B", 3, 175)
		targetID := store.addUser("B", 500)
		store.addParticipant(bookingID, targetID, false)

		_, err := newInvitationCommands(store).RequestInvitation(ctx, bookingID, targetID)
		assert.ErrorIs(t, err, commands.ErrAlreadyParticipant)
	})
}

func TestAcceptInvitation(t *testing.T) {
	ctx := context.Background()
	courtID := uuid.New()

	t.Run("debits the joiner and consumes a seat atomically", func(t *testing.T) {
		store := newFakeStore()
		creatorID := store.addUser("B", 0)
		bookingID := store.addBooking(courtID, testStart, 60, booking.ModeShared, "B", 3, 125)
		store.addParticipant(bookingID, creatorID, true)
		joinerID := store.addUser("B", 500)
		invID := store.addInvitation(bookingID, joinerID)

		err := newInvitationCommands(store).AcceptInvitation(ctx, invID)
		require.NoError(t, err)

		assert.Equal(t, int64(375), store.users[joinerID].BalanceCents)
		assert.Equal(t, int32(2), store.bookings[bookingID].OpenSeats)
		assert.Contains(t, store.participants, participantKey{bookingID, joinerID})
		assert.False(t, store.participants[participantKey{bookingID, joinerID}].IsCreator)
		assert.NotContains(t, store.invitations, invID)

		require.Len(t, store.entries, 1)
		assert.Equal(t, int64(-125), store.entries[0].AmountCents)
		assert.Equal(t, shared.EntryReasonInvitationJoin, store.entries[0].Reason)
	})

	t.Run("zero seats voids the invitation but keeps the deletion", func(t *testing.T) {
		store := newFakeStore()
		creatorID := store.addUser("B", 0)
		bookingID := store.addBooking(courtID, testStart, 60, booking.ModeShared, "B", 0, 125)
		store.addParticipant(bookingID, creatorID, true)
		joinerID := store.addUser("B", 500)
		invID := store.addInvitation(bookingID, joinerID)

		err := newInvitationCommands(store).AcceptInvitation(ctx, invID)
		assert.ErrorIs(t, err, commands.ErrNoSeatsAvailable)

		// The voided invitation is gone even though the accept failed.
		assert.NotContains(t, store.invitations, invID)
		assert.NotContains(t, store.participants, participantKey{bookingID, joinerID})
		assert.Equal(t, int64(500), store.users[joinerID].BalanceCents)
		assert.Empty(t, store.entries)
	})

	t.Run("funds re-check at acceptance keeps the invitation", func(t *testing.T) {
		store := newFakeStore()
		creatorID := store.addUser("B", 0)
		bookingID := store.addBooking(courtID, testStart, 60, booking.ModeShared, "B", 3, 125)
		store.addParticipant(bookingID, creatorID, true)
		// Balance dropped below the seat price after the request was made.
		joinerID := store.addUser("B", 100)
		invID := store.addInvitation(bookingID, joinerID)

		err := newInvitationCommands(store).AcceptInvitation(ctx, invID)
		assert.ErrorIs(t, err, commands.ErrInsufficientFunds)

		assert.Contains(t, store.invitations, invID)
		assert.Equal(t, int64(100), store.users[joinerID].BalanceCents)
		assert.Equal(t, int32(3), store.bookings[bookingID].OpenSeats)
		assert.NotContains(t, store.participants, participantKey{bookingID, joinerID})
	})

	t.Run("unknown invitation", func(t *testing.T) {
		store := newFakeStore()
		err := newInvitationCommands(store).AcceptInvitation(ctx, uuid.New())
		assert.ErrorIs(t, err, commands.ErrInvitationNotFound)
	})

	t.Run("filling the last seat then accepting another invitation voids it", func(t *testing.T) {
		store := newFakeStore()
		creatorID := store.addUser("B", 0)
		bookingID := store.addBooking(courtID, testStart, 60, booking.ModeShared, "B", 1, 125)
		store.addParticipant(bookingID, creatorID, true)

		first := store.addUser("B", 500)
		second := store.addUser("B", 500)
		firstInv := store.addInvitation(bookingID, first)
		secondInv := store.addInvitation(bookingID, second)

		uc := newInvitationCommands(store)
		require.NoError(t, uc.AcceptInvitation(ctx, firstInv))
		assert.Equal(t, int32(0), store.bookings[bookingID].OpenSeats)

		err := uc.AcceptInvitation(ctx, secondInv)
		assert.ErrorIs(t, err, commands.ErrNoSeatsAvailable)
		assert.NotContains(t, store.invitations, secondInv)
		assert.Equal(t, int64(500), store.users[second].BalanceCents)
	})
}

func TestRejectInvitation(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes the invitation", func(t *testing.T) {
		store := newFakeStore()
		bookingID := store.addBooking(uuid.New(), testStart, 60, booking.ModeShared, "B", 3, 125)
		invID := store.addInvitation(bookingID, store.addUser("B", 500))

		require.NoError(t, newInvitationCommands(store).RejectInvitation(ctx, invID))
		assert.NotContains(t, store.invitations, invID)
	})

	t.Run("rejecting twice is not an error", func(t *testing.T) {
		store := newFakeStore()
		bookingID := store.addBooking(uuid.New(), testStart, 60, booking.ModeShared, "B", 3, 125)
		invID := store.addInvitation(bookingID, store.addUser("B", 500))

		uc := newInvitationCommands(store)
		require.NoError(t, uc.RejectInvitation(ctx, invID))
		assert.NoError(t, uc.RejectInvitation(ctx, invID))
	})

	t.Run("rejecting an unknown id is not an error", func(t *testing.T) {
		store := newFakeStore()
		assert.NoError(t, newInvitationCommands(store).RejectInvitation(ctx, uuid.New()))
	})
}
