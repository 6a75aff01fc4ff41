//go:build e2e

package invitation_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"padelbook/internal/handler/dto/request"
	resdto "padelbook/internal/handler/dto/response"
	"padelbook/tests/common/authtest"
	"padelbook/tests/common/dbtest"
	"padelbook/tests/common/httptest"
	"padelbook/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL    = "/api/bookings"
	invitationsURL = "/api/invitations"
)

type invitationSuite struct {
	e2e.SharedSuite
}

func TestInvitationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(invitationSuite))
}

func (s *invitationSuite) balanceOf(dni string) int64 {
	var balance int64
	err := s.DB.QueryRow(s.T().Context(),
		"SELECT balance_cents FROM users WHERE dni = $1", dni).Scan(&balance)
	require.NoError(s.T(), err)
	return balance
}

// Creates a shared 60-minute tier-B booking and returns its ID. Seat price is 125.
func (s *invitationSuite) createSharedBooking(token string) uuid.UUID {
	t := s.T()
	courtID := dbtest.FirstCourtID(t, s.DB)

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, request.CreateBookingRequest{
		CourtID:         courtID,
		StartTime:       time.Now().Add(48 * time.Hour).Truncate(time.Hour),
		DurationMinutes: 60,
		Mode:            "shared",
		RequiredTier:    "B",
	}, token)

	var body resdto.CreateBookingResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &body)
	return body.BookingID
}

func (s *invitationSuite) requestInvitation(token string, bookingID uuid.UUID) uuid.UUID {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, invitationsURL,
		request.RequestInvitationRequest{BookingID: bookingID}, token)

	var body resdto.RequestInvitationResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &body)
	return body.InvitationID
}

func (s *invitationSuite) setOpenSeats(token string, bookingID uuid.UUID, seats int32) {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
		fmt.Sprintf("%s/%s", bookingsURL, bookingID),
		request.ModifyBookingRequest{OpenSeats: &seats}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func (s *invitationSuite) TestRequestInvitation() {
	s.Run("records the request without charging", func() {
		t := s.T()
		creator := authtest.CreateAndLogin(t, s.DB, s.Router, "20000001A", "B", 1000)
		requester := authtest.CreateAndLogin(t, s.DB, s.Router, "20000002B", "C", 1000)

		bookingID := s.createSharedBooking(creator)
		s.requestInvitation(requester, bookingID)

		require.Equal(t, int64(1000), s.balanceOf("20000002B"))

		var state string
		err := s.DB.QueryRow(t.Context(),
			"SELECT state FROM invitations WHERE booking_id = $1", bookingID).Scan(&state)
		require.NoError(t, err)
		require.Equal(t, "requested", state)
	})

	s.Run("rejects a requester who cannot afford a seat", func() {
		t := s.T()
		creator := authtest.CreateAndLogin(t, s.DB, s.Router, "20000001A", "B", 1000)
		requester := authtest.CreateAndLogin(t, s.DB, s.Router, "20000002B", "C", 100)

		bookingID := s.createSharedBooking(creator)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, invitationsURL,
			request.RequestInvitationRequest{BookingID: bookingID}, requester)
		httptest.AssertErrorResponse(t, w, http.StatusPaymentRequired, "Insufficient wallet balance")
	})

	s.Run("rejects a tier outside the window", func() {
		t := s.T()
		creator := authtest.CreateAndLogin(t, s.DB, s.Router, "20000001A", "B", 1000)
		requester := authtest.CreateAndLogin(t, s.DB, s.Router, "20000002B", "F", 1000)

		bookingID := s.createSharedBooking(creator)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, invitationsURL,
			request.RequestInvitationRequest{BookingID: bookingID}, requester)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Skill tier not allowed")
	})

	s.Run("rejects a duplicate request", func() {
		t := s.T()
		creator := authtest.CreateAndLogin(t, s.DB, s.Router, "20000001A", "B", 1000)
		requester := authtest.CreateAndLogin(t, s.DB, s.Router, "20000002B", "C", 1000)

		bookingID := s.createSharedBooking(creator)
		s.requestInvitation(requester, bookingID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, invitationsURL,
			request.RequestInvitationRequest{BookingID: bookingID}, requester)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Invitation already requested")
	})

	s.Run("rejects the creator requesting their own booking", func() {
		t := s.T()
		creator := authtest.CreateAndLogin(t, s.DB, s.Router, "20000001A", "B", 1000)

		bookingID := s.createSharedBooking(creator)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, invitationsURL,
			request.RequestInvitationRequest{BookingID: bookingID}, creator)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "already participates")
	})
}

func (s *invitationSuite) TestAcceptInvitation() {
	s.Run("seats the requester and charges one seat", func() {
		t := s.T()
		creator := authtest.CreateAndLogin(t, s.DB, s.Router, "20000001A", "B", 1000)
		requester := authtest.CreateAndLogin(t, s.DB, s.Router, "20000002B", "C", 1000)

		bookingID := s.createSharedBooking(creator)
		invitationID := s.requestInvitation(requester, bookingID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/accept", invitationsURL, invitationID), nil, creator)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		require.Equal(t, int64(875), s.balanceOf("20000002B"))

		var openSeats int32
		err := s.DB.QueryRow(t.Context(),
			"SELECT open_seats FROM bookings WHERE id = $1", bookingID).Scan(&openSeats)
		require.NoError(t, err)
		require.Equal(t, int32(2), openSeats)

		var participants int
		err = s.DB.QueryRow(t.Context(),
			"SELECT count(*) FROM participants WHERE booking_id = $1", bookingID).Scan(&participants)
		require.NoError(t, err)
		require.Equal(t, 2, participants)

		var invitations int
		err = s.DB.QueryRow(t.Context(),
			"SELECT count(*) FROM invitations WHERE id = $1", invitationID).Scan(&invitations)
		require.NoError(t, err)
		require.Equal(t, 0, invitations)
	})

	s.Run("voids the invitation when no seats remain", func() {
		t := s.T()
		creator := authtest.CreateAndLogin(t, s.DB, s.Router, "20000001A", "B", 1000)
		requester := authtest.CreateAndLogin(t, s.DB, s.Router, "20000002B", "C", 1000)

		bookingID := s.createSharedBooking(creator)
		invitationID := s.requestInvitation(requester, bookingID)
		s.setOpenSeats(creator, bookingID, 0)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/accept", invitationsURL, invitationID), nil, creator)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "No open seats left; invitation voided")

		// The deletion commits even though the accept fails.
		var invitations int
		err := s.DB.QueryRow(t.Context(),
			"SELECT count(*) FROM invitations WHERE id = $1", invitationID).Scan(&invitations)
		require.NoError(t, err)
		require.Equal(t, 0, invitations)

		require.Equal(t, int64(1000), s.balanceOf("20000002B"))
	})

	s.Run("keeps the invitation when funds ran out since the request", func() {
		t := s.T()
		creator := authtest.CreateAndLogin(t, s.DB, s.Router, "20000001A", "B", 1000)
		requester := authtest.CreateAndLogin(t, s.DB, s.Router, "20000002B", "C", 1000)

		bookingID := s.createSharedBooking(creator)
		invitationID := s.requestInvitation(requester, bookingID)

		_, err := s.DB.Exec(t.Context(),
			"UPDATE users SET balance_cents = 50 WHERE dni = '20000002B'")
		require.NoError(t, err)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/accept", invitationsURL, invitationID), nil, creator)
		httptest.AssertErrorResponse(t, w, http.StatusPaymentRequired, "Insufficient wallet balance")

		var invitations int
		err = s.DB.QueryRow(t.Context(),
			"SELECT count(*) FROM invitations WHERE id = $1", invitationID).Scan(&invitations)
		require.NoError(t, err)
		require.Equal(t, 1, invitations)
	})

	s.Run("unknown invitation gets 404", func() {
		t := s.T()
		creator := authtest.CreateAndLogin(t, s.DB, s.Router, "20000001A", "B", 1000)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/accept", invitationsURL, uuid.New()), nil, creator)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Invitation not found")
	})
}

func (s *invitationSuite) TestRejectInvitation() {
	s.Run("deletes the invitation and stays idempotent", func() {
		t := s.T()
		creator := authtest.CreateAndLogin(t, s.DB, s.Router, "20000001A", "B", 1000)
		requester := authtest.CreateAndLogin(t, s.DB, s.Router, "20000002B", "C", 1000)

		bookingID := s.createSharedBooking(creator)
		invitationID := s.requestInvitation(requester, bookingID)

		for range 2 {
			w := httptest.PerformRequest(t, s.Router, http.MethodDelete,
				fmt.Sprintf("%s/%s", invitationsURL, invitationID), nil, creator)
			require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
		}

		var invitations int
		err := s.DB.QueryRow(t.Context(),
			"SELECT count(*) FROM invitations WHERE id = $1", invitationID).Scan(&invitations)
		require.NoError(t, err)
		require.Equal(t, 0, invitations)
	})
}

func (s *invitationSuite) TestGetPendingInvitations() {
	s.Run("creator sees requests against their bookings", func() {
		t := s.T()
		creator := authtest.CreateAndLogin(t, s.DB, s.Router, "20000001A", "B", 1000)
		requester := authtest.CreateAndLogin(t, s.DB, s.Router, "20000002B", "C", 1000)

		bookingID := s.createSharedBooking(creator)
		invitationID := s.requestInvitation(requester, bookingID)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, invitationsURL+"/pending", nil, creator)

		var body []resdto.PendingInvitationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		require.Len(t, body, 1)
		require.Equal(t, invitationID, body[0].ID)
		require.Equal(t, bookingID, body[0].BookingID)
		require.Equal(t, "C", body[0].RequesterTier)
	})

	s.Run("requester sees nothing pending for them as creator", func() {
		t := s.T()
		creator := authtest.CreateAndLogin(t, s.DB, s.Router, "20000001A", "B", 1000)
		requester := authtest.CreateAndLogin(t, s.DB, s.Router, "20000002B", "C", 1000)

		bookingID := s.createSharedBooking(creator)
		s.requestInvitation(requester, bookingID)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, invitationsURL+"/pending", nil, requester)

		var body []resdto.PendingInvitationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		require.Empty(t, body)
	})
}
