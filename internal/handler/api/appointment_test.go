//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	domappt "salon-booking-api/internal/domain/appointment"
	"salon-booking-api/internal/domain/user"
	"salon-booking-api/internal/handler/api"
	resdto "salon-booking-api/internal/handler/dto/response"
	"salon-booking-api/internal/pkg/errs"
	"salon-booking-api/internal/usecase/commands"
	"salon-booking-api/internal/usecase/queries"
	"salon-booking-api/tests/common/builder"
	"salon-booking-api/tests/common/httptest"
	"salon-booking-api/tests/common/testutil"
	commandsmock "salon-booking-api/tests/mock/commands"
	queriesmock "salon-booking-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AppointmentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAppointmentCommands
	mockQueries  *queriesmock.MockAppointmentQueries
	handler      *api.AppointmentHandler

	authedUserID uuid.UUID
}

func (s *AppointmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAppointmentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAppointmentQueries(s.mockCtrl)
	s.handler = api.NewAppointmentHandler(s.mockCommands, s.mockQueries)

	s.authedUserID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.authedUserID)
		c.Set("user_role", user.RoleCustomer)
		c.Next()
	}

	s.router.POST("/appointments", authMiddleware, s.handler.BookAppointment)
	s.router.GET("/appointments", authMiddleware, s.handler.ListMyAppointments)
	s.router.GET("/appointments/:id", authMiddleware, s.handler.GetAppointment)
	s.router.POST("/appointments/:id/confirm", authMiddleware, s.handler.ConfirmAppointment)
	s.router.POST("/appointments/:id/cancel", authMiddleware, s.handler.CancelAppointment)
	s.router.POST("/appointments/:id/complete", authMiddleware, s.handler.CompleteAppointment)
}

func (s *AppointmentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAppointmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(AppointmentHandlerTestSuite))
}

// ================================================================================
// TestBookAppointment
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestBookAppointment() {
	url := "/appointments"

	b := builder.NewAppointmentBuilder()
	reqBody := b.BuildBookRequestDTO()
	returnView := b.BuildView()

	s.Run("success: returns 201 Created with the booked appointment", func() {
		s.mockCommands.EXPECT().Book(gomock.Any(), gomock.Any(), s.authedUserID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.BookAppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.True(response.Success)
		s.Require().NotNil(response.Appointment)
		s.Equal(returnView.ID, response.Appointment.ID)
		s.Equal(returnView.PriceCents, response.Appointment.PriceCents)
		s.Len(response.Appointment.Services, len(returnView.Services))
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: salon_id", mutate: testutil.Field("salon_id", nil)},
			{name: "missing field: staff_id", mutate: testutil.Field("staff_id", nil)},
			{name: "missing field: start_at", mutate: testutil.Field("start_at", nil)},
			{name: "missing field: service_ids", mutate: testutil.Field("service_ids", nil)},
			{name: "empty service_ids", mutate: testutil.Field("service_ids", []string{})},
			{name: "malformed salon_id", mutate: testutil.Field("salon_id", "not-a-uuid")},
			{name: "malformed start_at", mutate: testutil.Field("start_at", "tomorrow-ish")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "unknown salon is an invalid reference",
				commandsError:  commands.ErrSalonNotFound,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid salon reference",
			},
			{
				name:           "unknown staff is an invalid reference",
				commandsError:  commands.ErrStaffNotFound,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid staff reference",
			},
			{
				name:           "staff in another salon",
				commandsError:  commands.ErrStaffNotInSalon,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Staff does not belong",
			},
			{
				name: "services unavailable",
				commandsError: &commands.ServicesUnavailableError{
					Requested: 2, Found: 1, Missing: []uuid.UUID{uuid.New()},
				},
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "services are not available",
			},
			{
				name:           "domain validation failure",
				commandsError:  commands.ErrDomainValidation,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid appointment request",
			},
			{
				// The usecase attaches this sentinel with errs.Mark, so the
				// handler must match through the mark, not just the cause chain.
				name:           "marked domain validation failure",
				commandsError:  errs.Mark(domappt.ErrInvalidService, commands.ErrDomainValidation),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid appointment request",
			},
			{
				name:           "slot conflict",
				commandsError:  commands.ErrAppointmentConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "no longer available",
			},
			{
				name:           "marked database failure",
				commandsError:  errs.Mark(errors.New("connection refused"), commands.ErrDatabaseOperationFailed),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
			{
				name:           "internal error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Book(gomock.Any(), gomock.Any(), s.authedUserID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGetAppointment
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestGetAppointment() {
	apptID := uuid.New()
	url := "/appointments/" + apptID.String()

	returnView := builder.NewAppointmentBuilder().BuildView()
	returnView.ID = apptID

	s.Run("success: returns 200 OK with AppointmentResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), apptID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(apptID, response.ID)
		s.Equal(returnView.Status, response.Status)
	})

	s.Run("error: 404 when appointment does not exist", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), apptID).
			Return(nil, queries.ErrAppointmentNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Appointment not found")
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid appointment ID")
	})
}

// ================================================================================
// TestListMyAppointments
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestListMyAppointments() {
	url := "/appointments"

	s.Run("success: returns the caller's appointments", func() {
		items := []*queries.AppointmentListItem{
			builder.NewAppointmentBuilder().BuildListItem(),
			builder.NewAppointmentBuilder().WithStatus("booked").BuildListItem(),
		}
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.authedUserID).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.AppointmentListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal(items[0].ID, response[0].ID)
		s.Equal("booked", response[1].Status)
	})

	s.Run("success: empty list stays a JSON array", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.authedUserID).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.JSONEq("[]", rec.Body.String())
	})
}

// ================================================================================
// TestTransitions
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestTransitions() {
	apptID := uuid.New()

	s.Run("confirm: passes the caller identity and role", func() {
		s.mockCommands.EXPECT().Confirm(gomock.Any(), apptID, s.authedUserID, user.RoleCustomer).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/appointments/"+apptID.String()+"/confirm", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("cancel: passes the caller identity and role", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), apptID, s.authedUserID, user.RoleCustomer).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/appointments/"+apptID.String()+"/cancel", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("complete: passes the caller identity and role", func() {
		s.mockCommands.EXPECT().Complete(gomock.Any(), apptID, s.authedUserID, user.RoleCustomer).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/appointments/"+apptID.String()+"/complete", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: maps transition errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "not found", commandsError: commands.ErrAppointmentNotFound, expectedStatus: http.StatusNotFound},
			{name: "wrong owner", commandsError: commands.ErrNotAppointmentOwner, expectedStatus: http.StatusForbidden},
			{name: "invalid transition", commandsError: commands.ErrInvalidTransition, expectedStatus: http.StatusConflict},
			{name: "internal error", commandsError: errors.New("boom"), expectedStatus: http.StatusInternalServerError},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Cancel(gomock.Any(), apptID, s.authedUserID, user.RoleCustomer).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/appointments/"+apptID.String()+"/cancel", nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})

	s.Run("error: confirming someone else's appointment is forbidden", func() {
		s.mockCommands.EXPECT().Confirm(gomock.Any(), apptID, s.authedUserID, user.RoleCustomer).
			Return(commands.ErrNotAppointmentOwner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/appointments/"+apptID.String()+"/confirm", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Appointment belongs to another user")
	})

	s.Run("error: completing someone else's appointment is forbidden", func() {
		s.mockCommands.EXPECT().Complete(gomock.Any(), apptID, s.authedUserID, user.RoleCustomer).
			Return(commands.ErrNotAppointmentOwner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/appointments/"+apptID.String()+"/complete", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Appointment belongs to another user")
	})
}
