//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"restaurant-api/internal/handler/api"
	reqdto "restaurant-api/internal/handler/dto/request"
	resdto "restaurant-api/internal/handler/dto/response"
	"restaurant-api/internal/usecase/commands"
	"restaurant-api/internal/usecase/queries"
	"restaurant-api/tests/common/builder"
	"restaurant-api/tests/common/fakes"
	commonhttp "restaurant-api/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	commands *reservationCommandsStub
	queries  *fakes.ReservationQueries
}

// reservationCommandsStub lets each test pin the outcome of a write.
type reservationCommandsStub struct {
	view       *queries.ReservationView
	createErr  error
	updateErr  error
	deleteErr  error
	lastStatus string
}

func (s *reservationCommandsStub) Create(_ context.Context, _ reqdto.CreateReservationRequest) (*queries.ReservationView, error) {
	return s.view, s.createErr
}

func (s *reservationCommandsStub) UpdateStatus(_ context.Context, _ uuid.UUID, status string) (*queries.ReservationView, error) {
	s.lastStatus = status
	return s.view, s.updateErr
}

func (s *reservationCommandsStub) Delete(_ context.Context, _ uuid.UUID) error {
	return s.deleteErr
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.commands = &reservationCommandsStub{}
	s.queries = &fakes.ReservationQueries{}

	handler := api.NewReservationHandler(s.commands, s.queries)

	s.router.POST("/reservations", handler.Create)
	s.router.GET("/reservations/availability", handler.CheckAvailability)
	s.router.GET("/admin/reservations/:id", handler.Get)
	s.router.PATCH("/admin/reservations/:id/status", handler.UpdateStatus)
	s.router.DELETE("/admin/reservations/:id", handler.Delete)
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) TestCreate() {
	view := &queries.ReservationView{
		ID:        uuid.New(),
		GuestName: "Jamie Rivera",
		Date:      "2026-06-15",
		Time:      "19:00",
		PartySize: 2,
		Status:    "pending",
	}

	s.Run("returns 201 with the created reservation", func() {
		s.commands.view = view
		s.commands.createErr = nil

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations",
			builder.NewReservationBuilder().BuildCreateRequest(), "")

		var resp resdto.ReservationResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal("Jamie Rivera", resp.GuestName)
		s.Equal("pending", resp.Status)
	})

	s.Run("returns 409 when the slot is full", func() {
		s.commands.view = nil
		s.commands.createErr = commands.ErrSlotFull

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations",
			builder.NewReservationBuilder().BuildCreateRequest(), "")

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusConflict, "fully booked")
	})

	s.Run("returns 422 on domain validation failure", func() {
		s.commands.view = nil
		s.commands.createErr = commands.ErrDomainValidation

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations",
			builder.NewReservationBuilder().BuildCreateRequest(), "")

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "")
	})

	s.Run("returns 400 on malformed body", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations",
			map[string]any{"name": "Jamie"}, "")

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *ReservationHandlerTestSuite) TestCheckAvailability() {
	s.Run("returns the availability view", func() {
		s.queries.Avail = &queries.AvailabilityView{
			Date:          "2026-06-15",
			Time:          "19:00",
			Available:     true,
			OccupiedSlots: 3,
			Capacity:      5,
		}

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet,
			"/reservations/availability?date=2026-06-15&time=19:00&party_size=4", nil, "")

		var resp resdto.AvailabilityResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.True(resp.Available)
		s.EqualValues(3, resp.OccupiedSlots)
	})

	s.Run("returns 400 when params are missing", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet,
			"/reservations/availability?date=2026-06-15", nil, "")

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "required")
	})

	s.Run("returns 400 without party_size", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet,
			"/reservations/availability?date=2026-06-15&time=19:00", nil, "")

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "party_size")
	})
}

func (s *ReservationHandlerTestSuite) TestUpdateStatus() {
	s.Run("returns 409 on a forbidden transition", func() {
		s.commands.updateErr = commands.ErrForbiddenTransition

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPatch,
			"/admin/reservations/"+uuid.NewString()+"/status",
			map[string]string{"status": "confirmed"}, "")

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusConflict, "not allowed")
	})

	s.Run("returns 400 on an unknown status", func() {
		s.commands.updateErr = commands.ErrInvalidStatus

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPatch,
			"/admin/reservations/"+uuid.NewString()+"/status",
			map[string]string{"status": "archived"}, "")

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid reservation status")
	})

	s.Run("returns 400 on a malformed id", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPatch,
			"/admin/reservations/not-a-uuid/status",
			map[string]string{"status": "confirmed"}, "")

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid ID format")
	})
}

func (s *ReservationHandlerTestSuite) TestDelete() {
	s.Run("returns 204 on success", func() {
		s.commands.deleteErr = nil

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodDelete,
			"/admin/reservations/"+uuid.NewString(), nil, "")

		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("returns 404 when missing", func() {
		s.commands.deleteErr = commands.ErrReservationNotFound

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodDelete,
			"/admin/reservations/"+uuid.NewString(), nil, "")

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusNotFound, "not found")
	})
}
