package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	slotRepo "crewbook/database/repository/slot"
	"crewbook/models"
	"crewbook/utils"
)

// CreateBooking books the crew for [startTime, startTime+duration hours).
// Validation, the booking write and every slot flip are applied as one unit:
// any failure leaves no partial slot mutation and no orphan booking row.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, startTime time.Time, duration int, professionalIDs []string) (*models.BookingResponse, error) {
	logger := utils.GetLogger()
	logger.Info("creating booking",
		zap.Time("start", startTime),
		zap.Int("durationHours", duration),
		zap.Strings("professionals", professionalIDs))

	if len(professionalIDs) == 0 {
		return nil, errors.New("at least one professional is required")
	}

	professionals, vehicleID, err := s.resolveCrew(ctx, professionalIDs)
	if err != nil {
		return nil, err
	}

	date := dateKey(startTime)
	start := minuteOfDay(startTime)
	end := start + duration*60

	unlock := s.locks.acquire(lockKeys(professionalIDs, date))
	defer unlock()

	// All-or-nothing: every professional must qualify before any slot is touched.
	targets, err := s.findTargets(ctx, professionals, date, models.SlotAvailable, start, end)
	if err != nil {
		return nil, err
	}
	for i, t := range targets {
		if t == nil {
			return nil, &SlotUnavailableError{ProfessionalID: professionals[i].ID}
		}
	}

	booking := &models.Booking{
		ID:              uuid.New().String(),
		Date:            date,
		Start:           start,
		End:             end,
		StartDateTime:   startTime,
		EndDateTime:     startTime.Add(time.Duration(duration) * time.Hour),
		ProfessionalIDs: professionalIDs,
		CreatedAt:       time.Now(),
	}
	if err := s.Bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	if err := s.flipSlots(ctx, targets, models.SlotAvailable, models.SlotBooked); err != nil {
		if derr := s.Bookings.Delete(ctx, booking.ID); derr != nil {
			logger.Error("failed to remove booking after rollback",
				zap.String("bookingID", booking.ID), zap.Error(derr))
		}
		return nil, err
	}

	logger.Info("booking created", zap.String("bookingID", booking.ID))
	return bookingResponse(booking, vehicleID), nil
}

// UpdateBooking moves an existing booking to a new window. The crew is fixed
// at creation; only the window changes. Old slots are released before the new
// ones are claimed, and any failure restores the prior slot state.
func (s *DefaultBookingService) UpdateBooking(ctx context.Context, bookingID string, newStartTime time.Time, newDuration int) (*models.BookingResponse, error) {
	logger := utils.GetLogger()
	logger.Info("updating booking", zap.String("bookingID", bookingID), zap.Time("newStart", newStartTime))

	booking, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, &BookingNotFoundError{ID: bookingID}
	}

	// Vehicle homogeneity was fixed at creation and is immutable here; the
	// crew is only loaded to resolve the vehicle id for the response.
	professionals, err := s.loadCrew(ctx, booking.ProfessionalIDs)
	if err != nil {
		return nil, err
	}
	vehicleID := professionals[0].VehicleID

	newDate := dateKey(newStartTime)
	newStart := minuteOfDay(newStartTime)
	newEnd := newStart + newDuration*60

	unlock := s.locks.acquire(lockKeys(booking.ProfessionalIDs, booking.Date, newDate))
	defer unlock()

	// Validate the new window before any slot is touched. A slot still BOOKED
	// by this booking does not qualify; callers must move to genuinely free
	// slots.
	newTargets, err := s.findTargets(ctx, professionals, newDate, models.SlotAvailable, newStart, newEnd)
	if err != nil {
		return nil, err
	}
	for i, t := range newTargets {
		if t == nil {
			return nil, &SlotUnavailableError{ProfessionalID: professionals[i].ID}
		}
	}

	// Revert the old commitment before claiming the new one.
	oldTargets, err := s.findTargets(ctx, professionals, booking.Date, models.SlotBooked, booking.Start, booking.End)
	if err != nil {
		return nil, err
	}
	for i, t := range oldTargets {
		if t == nil {
			return nil, &SlotInconsistencyError{
				ProfessionalID: professionals[i].ID,
				Date:           booking.Date,
				Start:          booking.Start,
				End:            booking.End,
				Want:           models.SlotBooked,
			}
		}
	}
	if err := s.flipSlots(ctx, oldTargets, models.SlotBooked, models.SlotAvailable); err != nil {
		return nil, err
	}

	if err := s.flipSlots(ctx, newTargets, models.SlotAvailable, models.SlotBooked); err != nil {
		// Restore the old commitment so the booking still owns its slots.
		s.unwindFlips(ctx, oldTargets, models.SlotAvailable, models.SlotBooked)
		return nil, err
	}

	booking.Date = newDate
	booking.Start = newStart
	booking.End = newEnd
	booking.StartDateTime = newStartTime
	booking.EndDateTime = newStartTime.Add(time.Duration(newDuration) * time.Hour)

	if err := s.Bookings.Update(ctx, booking); err != nil {
		s.unwindFlips(ctx, newTargets, models.SlotBooked, models.SlotAvailable)
		s.unwindFlips(ctx, oldTargets, models.SlotAvailable, models.SlotBooked)
		return nil, err
	}

	logger.Info("booking updated", zap.String("bookingID", booking.ID))
	return bookingResponse(booking, vehicleID), nil
}

// resolveCrew loads every professional and verifies vehicle homogeneity
// against the first member's vehicle.
func (s *DefaultBookingService) resolveCrew(ctx context.Context, ids []string) ([]models.Professional, string, error) {
	professionals, err := s.loadCrew(ctx, ids)
	if err != nil {
		return nil, "", err
	}
	vehicleID := professionals[0].VehicleID
	if err := sameVehicle(professionals, vehicleID); err != nil {
		return nil, "", err
	}
	return professionals, vehicleID, nil
}

// loadCrew resolves every id to a professional, failing on the first unknown.
func (s *DefaultBookingService) loadCrew(ctx context.Context, ids []string) ([]models.Professional, error) {
	professionals := make([]models.Professional, 0, len(ids))
	for _, id := range ids {
		p, err := s.Professionals.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, &UnknownProfessionalError{ID: id}
		}
		professionals = append(professionals, *p)
	}
	return professionals, nil
}

// sameVehicle short-circuits on the first crew member assigned elsewhere.
func sameVehicle(professionals []models.Professional, vehicleID string) error {
	for _, p := range professionals {
		if p.VehicleID != vehicleID {
			return &VehicleMismatchError{ProfessionalID: p.ID}
		}
	}
	return nil
}

// findTargets resolves, per professional, the slot to act on for the window,
// or nil when none qualifies. Index i corresponds to professionals[i].
func (s *DefaultBookingService) findTargets(ctx context.Context, professionals []models.Professional, date string, status models.SlotStatus, start, end int) ([]*models.Slot, error) {
	targets := make([]*models.Slot, len(professionals))
	for i, p := range professionals {
		slots, err := s.Slots.GetByProfessionalAndDate(ctx, p.ID, date)
		if err != nil {
			return nil, err
		}
		targets[i] = qualifyingSlot(slots, status, start, end)
	}
	return targets, nil
}

// flipSlots transitions every target from from to to. On any failure the
// already-flipped slots are restored and the failure surfaces as a
// SlotInconsistencyError when the store reports a status conflict.
func (s *DefaultBookingService) flipSlots(ctx context.Context, targets []*models.Slot, from, to models.SlotStatus) error {
	flipped := make([]*models.Slot, 0, len(targets))
	for _, t := range targets {
		if err := s.Slots.UpdateStatus(ctx, t.ID, from, to); err != nil {
			s.unwindFlips(ctx, flipped, to, from)
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				return &SlotInconsistencyError{
					ProfessionalID: t.ProfessionalID,
					Date:           t.Date,
					Start:          t.Start,
					End:            t.End,
					Want:           from,
				}
			}
			return err
		}
		flipped = append(flipped, t)
	}
	return nil
}

// unwindFlips is best-effort compensation; failures are logged, not returned,
// since the caller is already on an error path.
func (s *DefaultBookingService) unwindFlips(ctx context.Context, targets []*models.Slot, from, to models.SlotStatus) {
	for _, t := range targets {
		if err := s.Slots.UpdateStatus(ctx, t.ID, from, to); err != nil {
			utils.GetLogger().Error("failed to restore slot status during rollback",
				zap.String("slotID", t.ID), zap.Error(err))
		}
	}
}

func bookingResponse(b *models.Booking, vehicleID string) *models.BookingResponse {
	return &models.BookingResponse{
		ID:              b.ID,
		StartTime:       b.StartDateTime,
		EndTime:         b.EndDateTime,
		ProfessionalIDs: b.ProfessionalIDs,
		VehicleID:       vehicleID,
	}
}
