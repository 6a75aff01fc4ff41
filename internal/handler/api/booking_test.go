//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"padelbook/internal/domain/booking"
	"padelbook/internal/handler/api"
	resdto "padelbook/internal/handler/dto/response"
	"padelbook/internal/usecase/commands"
	"padelbook/internal/usecase/queries"
	"padelbook/tests/common/builder"
	"padelbook/tests/common/httptest"
	commandsmock "padelbook/tests/mock/commands"
	queriesmock "padelbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	userID       uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	// Stand-in for the auth middleware.
	authed := func(next gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set("user_id", s.userID)
			next(c)
		}
	}
	s.router.POST("/bookings", authed(s.handler.CreateBooking))
	s.router.PATCH("/bookings/:id", authed(s.handler.ModifyBooking))
	s.router.DELETE("/bookings/:id", authed(s.handler.CancelBooking))
	s.router.GET("/bookings", authed(s.handler.GetUserBookings))
	s.router.GET("/bookings/open", authed(s.handler.GetOpenBookings))
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"

	b := builder.NewBookingBuilder()
	reqBody := b.BuildCreateRequestDTO()
	bookingID := uuid.New()

	s.Run("success: returns 201 Created with the charge", func() {
		s.mockCommands.EXPECT().
			CreateBooking(gomock.Any(), b.BuildCommand(), s.userID).
			Return(&commands.CreateBookingResult{BookingID: bookingID, ChargedCents: 500}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(bookingID, response.BookingID)
		s.Equal(int64(500), response.ChargedCents)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "unknown duration",
				commandsError:  booking.ErrInvalidDuration,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid booking parameters",
			},
			{
				name:           "unknown user",
				commandsError:  commands.ErrUserNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "User not found",
			},
			{
				name:           "tier outside the allowed window",
				commandsError:  commands.ErrTierNotAllowed,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Skill tier not allowed",
			},
			{
				name:           "overlapping slot",
				commandsError:  commands.ErrSlotTaken,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Court slot already booked",
			},
			{
				name:           "wallet cannot cover the price",
				commandsError:  commands.ErrInsufficientFunds,
				expectedStatus: http.StatusPaymentRequired,
				expectedMsg:    "Insufficient wallet balance",
			},
			{
				name:           "unexpected failure",
				commandsError:  errUnexpected,
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().
					CreateBooking(gomock.Any(), gomock.Any(), s.userID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 400 Bad Request for a malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"court_id": "not-a-uuid"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *BookingHandlerTestSuite) TestModifyBooking() {
	bookingID := uuid.New()
	url := fmt.Sprintf("/bookings/%s", bookingID)

	newSeats := int32(2)
	reqBody := map[string]any{"open_seats": newSeats}

	s.Run("success: returns the number of updated rows", func() {
		s.mockCommands.EXPECT().
			ModifyBooking(gomock.Any(), bookingID, gomock.Any(), s.userID).
			Return(int64(1), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "")

		var response resdto.ModifyBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(1), response.UpdatedRows)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "unknown booking",
				commandsError:  commands.ErrBookingNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Booking not found",
			},
			{
				name:           "caller is not the creator",
				commandsError:  commands.ErrNotBookingCreator,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Only the booking creator",
			},
			{
				name:           "invalid mode value",
				commandsError:  booking.ErrInvalidMode,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid booking parameters",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().
					ModifyBooking(gomock.Any(), bookingID, gomock.Any(), s.userID).
					Return(int64(0), tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 400 Bad Request for a malformed booking ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/not-a-uuid", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})
}

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	bookingID := uuid.New()
	url := fmt.Sprintf("/bookings/%s", bookingID)

	s.Run("success: returns the refund and deletion flag", func() {
		s.mockCommands.EXPECT().
			CancelBooking(gomock.Any(), bookingID, s.userID).
			Return(&commands.CancelBookingResult{RefundCents: 500, BookingDeleted: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")

		var response resdto.CancelBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(500), response.RefundCents)
		s.True(response.BookingDeleted)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "caller does not participate",
				commandsError:  commands.ErrNotParticipant,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Booking not found for user",
			},
			{
				name:           "refund would overflow the wallet",
				commandsError:  commands.ErrBalanceCapExceeded,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Refund would exceed the wallet cap",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().
					CancelBooking(gomock.Any(), bookingID, s.userID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestGetUserBookings() {
	url := "/bookings"

	s.Run("success: returns the user's bookings", func() {
		views := []*queries.BookingView{
			{
				ID:              uuid.New(),
				CourtID:         uuid.New(),
				CompanyName:     "Padel Central",
				StartTime:       time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
				DurationMinutes: 90,
				RequiredTier:    "B",
				Mode:            "shared",
				Status:          "pending",
				OpenSeats:       2,
				SeatPriceCents:  175,
				IsCreator:       true,
			},
		}
		s.mockQueries.EXPECT().
			ListByUser(gomock.Any(), s.userID).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []*resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal(views[0].ID, response[0].ID)
		s.Equal("Padel Central", response[0].CompanyName)
		s.Equal(int64(175), response[0].SeatPriceCents)
	})

	s.Run("success: empty list when the user has no bookings", func() {
		s.mockQueries.EXPECT().
			ListByUser(gomock.Any(), s.userID).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []*resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})
}

func (s *BookingHandlerTestSuite) TestGetOpenBookings() {
	url := "/bookings/open"

	s.Run("success: returns joinable bookings", func() {
		views := []*queries.OpenBookingView{
			{
				ID:              uuid.New(),
				CourtID:         uuid.New(),
				CompanyName:     "Club Norte",
				StartTime:       time.Date(2026, 3, 14, 11, 0, 0, 0, time.UTC),
				DurationMinutes: 60,
				RequiredTier:    "C",
				OpenSeats:       3,
				SeatPriceCents:  125,
			},
		}
		s.mockQueries.EXPECT().
			ListOpenForUser(gomock.Any(), s.userID).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []*resdto.OpenBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal(int32(3), response[0].OpenSeats)
	})

	s.Run("error: 404 when the user does not exist", func() {
		s.mockQueries.EXPECT().
			ListOpenForUser(gomock.Any(), s.userID).
			Return(nil, queries.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})
}
