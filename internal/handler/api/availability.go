package api

import (
	"net/http"

	resdto "salon-booking-api/internal/handler/dto/response"
	"salon-booking-api/internal/pkg/errs"
	"salon-booking-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	availabilityQueries queries.AvailabilityQueries
}

func NewAvailabilityHandler(availabilityQueries queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityQueries: availabilityQueries,
	}
}

// @Summary Get weekly availability
// @Description Get bookable hourly time slots for the next 7 days
// @Tags salons
// @Produce json
// @Param id path string true "Salon ID"
// @Success 200 {object} resdto.WeeklyAvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /salons/{id}/availability [get]
func (h *AvailabilityHandler) GetWeeklyAvailability(c *gin.Context) {
	salonID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid salon ID",
		})
		return
	}

	week, err := h.availabilityQueries.GetWeeklyAvailability(c.Request.Context(), salonID)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrSalonNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Salon not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromWeeklyAvailability(week))
}
