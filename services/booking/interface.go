package booking

import (
	"context"
	"time"

	bookingRepo "crewbook/database/repository/booking"
	professionalRepo "crewbook/database/repository/professional"
	slotRepo "crewbook/database/repository/slot"
	"crewbook/models"
)

// BookingService is the availability and booking scheduling engine.
type BookingService interface {
	// CheckAvailability lists professionals free on the date. With a nil
	// startTime every professional holding at least one free slot is returned;
	// with a startTime only those whose free window contains
	// [startTime, startTime+duration hours).
	CheckAvailability(ctx context.Context, date string, startTime *time.Time, duration int) ([]models.AvailabilityResponse, error)
	// CreateBooking books every listed professional for the window
	// [startTime, startTime+duration hours), atomically.
	CreateBooking(ctx context.Context, startTime time.Time, duration int, professionalIDs []string) (*models.BookingResponse, error)
	// UpdateBooking moves an existing booking to a new window, releasing the
	// old slots and claiming the new ones as one unit.
	UpdateBooking(ctx context.Context, bookingID string, newStartTime time.Time, newDuration int) (*models.BookingResponse, error)
}

// DefaultBookingService implements BookingService over the slot, booking and
// professional stores. It holds no booking state of its own.
type DefaultBookingService struct {
	Professionals professionalRepo.ProfessionalRepository
	Slots         slotRepo.SlotRepository
	Bookings      bookingRepo.BookingRepository

	locks *lockTable
}

// NewBookingService wires a DefaultBookingService over the given stores.
func NewBookingService(
	professionals professionalRepo.ProfessionalRepository,
	slots slotRepo.SlotRepository,
	bookings bookingRepo.BookingRepository,
) *DefaultBookingService {
	return &DefaultBookingService{
		Professionals: professionals,
		Slots:         slots,
		Bookings:      bookings,
		locks:         newLockTable(),
	}
}
