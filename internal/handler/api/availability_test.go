//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"salon-booking-api/internal/domain/schedule"
	"salon-booking-api/internal/handler/api"
	resdto "salon-booking-api/internal/handler/dto/response"
	"salon-booking-api/internal/usecase/queries"
	"salon-booking-api/tests/common/httptest"
	queriesmock "salon-booking-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockAvailabilityQueries
	handler     *api.AvailabilityHandler
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewAvailabilityHandler(s.mockQueries)

	s.router.GET("/salons/:id/availability", s.handler.GetWeeklyAvailability)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func (s *AvailabilityHandlerTestSuite) TestGetWeeklyAvailability() {
	salonID := uuid.New()
	url := "/salons/" + salonID.String() + "/availability"

	week := []schedule.DayAvailability{
		{Date: "2026-03-02", Times: []string{"09:00", "10:00"}},
		{Date: "2026-03-03", Times: []string{}},
	}

	s.Run("success: returns 200 OK with availability envelope", func() {
		s.mockQueries.EXPECT().GetWeeklyAvailability(gomock.Any(), salonID).
			Return(week, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.WeeklyAvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Success)
		s.Require().Len(response.Availability, 2)
		s.Equal("2026-03-02", response.Availability[0].Date)
		s.Equal([]string{"09:00", "10:00"}, response.Availability[0].Times)
		s.NotNil(response.Availability[1].Times)
		s.Empty(response.Availability[1].Times)
	})

	s.Run("error: 404 when salon does not exist", func() {
		s.mockQueries.EXPECT().GetWeeklyAvailability(gomock.Any(), salonID).
			Return(nil, queries.ErrSalonNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Salon not found")
	})

	s.Run("error: 400 on malformed salon id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/salons/not-a-uuid/availability", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid salon ID")
	})

	s.Run("error: 500 on unexpected failure", func() {
		s.mockQueries.EXPECT().GetWeeklyAvailability(gomock.Any(), salonID).
			Return(nil, errors.New("boom")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
