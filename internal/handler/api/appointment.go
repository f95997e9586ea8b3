package api

import (
	"errors"
	"net/http"

	"salon-booking-api/internal/domain/user"
	reqdto "salon-booking-api/internal/handler/dto/request"
	resdto "salon-booking-api/internal/handler/dto/response"
	"salon-booking-api/internal/handler/middleware"
	"salon-booking-api/internal/pkg/errs"
	"salon-booking-api/internal/usecase/commands"
	"salon-booking-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AppointmentHandler struct {
	appointmentCommands commands.AppointmentCommands
	appointmentQueries  queries.AppointmentQueries
}

func NewAppointmentHandler(
	appointmentCommands commands.AppointmentCommands,
	appointmentQueries queries.AppointmentQueries,
) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentCommands: appointmentCommands,
		appointmentQueries:  appointmentQueries,
	}
}

// @Summary Book appointment
// @Description Book a new appointment for one or more services
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BookAppointmentRequest true "Booking request"
// @Success 201 {object} resdto.BookAppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /appointments [post]
func (h *AppointmentHandler) BookAppointment(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.BookAppointmentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.appointmentCommands.Book(c.Request.Context(), req, userID)
	if err != nil {
		// errs.Is sees marked sentinels; stdlib errors.Is does not.
		var svcErr *commands.ServicesUnavailableError
		switch {
		case errs.Is(err, commands.ErrSalonNotFound):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid salon reference",
			})
		case errs.Is(err, commands.ErrStaffNotFound):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid staff reference",
			})
		case errs.Is(err, commands.ErrStaffNotInSalon):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Staff does not belong to this salon",
			})
		case errors.As(err, &svcErr):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "One or more services are not available at this salon",
				"details": gin.H{"missing_service_ids": svcErr.Missing},
			})
		case errs.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid appointment request",
			})
		case errs.Is(err, commands.ErrAppointmentConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "The selected time slot is no longer available",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.BookAppointmentResponse{
		Success:     true,
		Appointment: resdto.FromAppointmentView(view),
	})
}

// @Summary Get appointment
// @Description Get an appointment by ID
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 404 {object} map[string]string
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid appointment ID",
		})
		return
	}

	view, err := h.appointmentQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrAppointmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Appointment not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}

// @Summary List my appointments
// @Description List the authenticated user's appointments, newest first
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.AppointmentListResponse
// @Router /appointments [get]
func (h *AppointmentHandler) ListMyAppointments(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	items, err := h.appointmentQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromAppointmentListItems(items))
}

// @Summary Confirm appointment
// @Description Move a pending appointment to booked
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} map[string]bool
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /appointments/{id}/confirm [post]
func (h *AppointmentHandler) ConfirmAppointment(c *gin.Context) {
	h.applyTransition(c, func(id, userID uuid.UUID, role user.Role) error {
		return h.appointmentCommands.Confirm(c.Request.Context(), id, userID, role)
	})
}

// @Summary Cancel appointment
// @Description Cancel a pending or booked appointment owned by the caller
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} map[string]bool
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /appointments/{id}/cancel [post]
func (h *AppointmentHandler) CancelAppointment(c *gin.Context) {
	h.applyTransition(c, func(id, userID uuid.UUID, role user.Role) error {
		return h.appointmentCommands.Cancel(c.Request.Context(), id, userID, role)
	})
}

// @Summary Complete appointment
// @Description Move a booked appointment to completed
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} map[string]bool
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /appointments/{id}/complete [post]
func (h *AppointmentHandler) CompleteAppointment(c *gin.Context) {
	h.applyTransition(c, func(id, userID uuid.UUID, role user.Role) error {
		return h.appointmentCommands.Complete(c.Request.Context(), id, userID, role)
	})
}

func (h *AppointmentHandler) applyTransition(c *gin.Context, fn func(id, userID uuid.UUID, role user.Role) error) {
	userID, userOK := middleware.GetUserID(c)
	role, roleOK := middleware.GetUserRole(c)
	if !userOK || !roleOK {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid appointment ID",
		})
		return
	}

	if err := fn(id, userID, role); err != nil {
		switch {
		case errs.Is(err, commands.ErrAppointmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Appointment not found",
			})
		case errs.Is(err, commands.ErrNotAppointmentOwner):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Appointment belongs to another user",
			})
		case errs.Is(err, commands.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Appointment status does not allow this change",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
