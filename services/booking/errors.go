package booking

import (
	"fmt"

	"crewbook/models"
)

// UnknownProfessionalError indicates a referenced professional id does not exist.
type UnknownProfessionalError struct {
	ID string
}

func (e *UnknownProfessionalError) Error() string {
	return fmt.Sprintf("professional %s does not exist", e.ID)
}

// VehicleMismatchError indicates the requested crew spans more than one vehicle.
type VehicleMismatchError struct {
	ProfessionalID string
}

func (e *VehicleMismatchError) Error() string {
	return fmt.Sprintf("professional %s is assigned to a different vehicle; professionals must belong to the same vehicle", e.ProfessionalID)
}

// SlotUnavailableError indicates a professional lacks a free slot covering the
// requested window.
type SlotUnavailableError struct {
	ProfessionalID string
}

func (e *SlotUnavailableError) Error() string {
	return fmt.Sprintf("professional %s is not available during the requested time", e.ProfessionalID)
}

// BookingNotFoundError indicates an update targeted a nonexistent booking id.
type BookingNotFoundError struct {
	ID string
}

func (e *BookingNotFoundError) Error() string {
	return fmt.Sprintf("no booking found for id %s", e.ID)
}

// SlotInconsistencyError indicates that validation passed but no slot in the
// required status could be flipped during commit. The slot data and the
// matching rule disagree; the operation is rolled back.
type SlotInconsistencyError struct {
	ProfessionalID string
	Date           string
	Start          int
	End            int
	Want           models.SlotStatus
}

func (e *SlotInconsistencyError) Error() string {
	return fmt.Sprintf("no %s slot for professional %s covering %s %s-%s",
		e.Want, e.ProfessionalID, e.Date, models.ClockTime(e.Start), models.ClockTime(e.End))
}
