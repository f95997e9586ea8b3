package response

import (
	"salon-booking-api/internal/domain/schedule"
)

type WeeklyAvailabilityResponse struct {
	Success      bool                       `json:"success"`
	Availability []schedule.DayAvailability `json:"availability"`
}

func FromWeeklyAvailability(week []schedule.DayAvailability) *WeeklyAvailabilityResponse {
	if week == nil {
		week = []schedule.DayAvailability{}
	}
	return &WeeklyAvailabilityResponse{
		Success:      true,
		Availability: week,
	}
}
