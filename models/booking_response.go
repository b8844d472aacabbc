package models

import (
	"fmt"
	"time"
)

// TimeSlotView renders one free interval as clock times for clients.
type TimeSlotView struct {
	StartTime string `json:"startTime"` // "HH:MM"
	EndTime   string `json:"endTime"`   // "HH:MM"
}

// AvailabilityResponse is one professional together with their free slots
// for the requested date.
type AvailabilityResponse struct {
	ProfessionalID string         `json:"professionalId"`
	Name           string         `json:"name"`
	Availabilities []TimeSlotView `json:"availabilities"`
}

// BookingResponse is the booking record enriched with the crew's shared
// vehicle id.
type BookingResponse struct {
	ID              string    `json:"id"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	ProfessionalIDs []string  `json:"professionalIds"`
	VehicleID       string    `json:"vehicleId"`
}

// ClockTime formats minutes-from-midnight as "HH:MM".
func ClockTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
