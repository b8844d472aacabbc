package booking

import (
	"context"
	"fmt"
	"sync"

	slotRepo "crewbook/database/repository/slot"
	"crewbook/models"
)

// In-memory stand-ins for the Mongo repositories. They honor the same
// contracts, including the compare-and-set semantics of UpdateStatus.

type fakeProfessionalRepo struct {
	professionals map[string]models.Professional
}

func newFakeProfessionalRepo(professionals ...models.Professional) *fakeProfessionalRepo {
	m := make(map[string]models.Professional, len(professionals))
	for _, p := range professionals {
		m[p.ID] = p
	}
	return &fakeProfessionalRepo{professionals: m}
}

func (r *fakeProfessionalRepo) GetByID(_ context.Context, id string) (*models.Professional, error) {
	p, ok := r.professionals[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *fakeProfessionalRepo) GetByIDs(_ context.Context, ids []string) ([]models.Professional, error) {
	var out []models.Professional
	for _, id := range ids {
		if p, ok := r.professionals[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeSlotRepo struct {
	mu    sync.Mutex
	slots map[string]models.Slot
	// failOn forces UpdateStatus on these slot ids to report a status
	// conflict, simulating a concurrent mutation between check and flip.
	failOn map[string]bool
	writes int
}

func newFakeSlotRepo(slots ...models.Slot) *fakeSlotRepo {
	m := make(map[string]models.Slot, len(slots))
	for _, s := range slots {
		m[s.ID] = s
	}
	return &fakeSlotRepo{slots: m, failOn: make(map[string]bool)}
}

func (r *fakeSlotRepo) GetByProfessionalAndDate(_ context.Context, professionalID, date string) ([]models.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Slot
	for _, s := range r.slots {
		if s.ProfessionalID == professionalID && s.Date == date {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSlotRepo) GetAvailableByDate(_ context.Context, date string) ([]models.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Slot
	for _, s := range r.slots {
		if s.Date == date && s.Status == models.SlotAvailable {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSlotRepo) UpdateStatus(_ context.Context, slotID string, expected, next models.SlotStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.slots[slotID]
	if !ok || s.Status != expected || r.failOn[slotID] {
		return slotRepo.ErrSlotNotFound
	}
	s.Status = next
	r.slots[slotID] = s
	r.writes++
	return nil
}

func (r *fakeSlotRepo) Save(_ context.Context, slot models.Slot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slots[slot.ID] = slot
	r.writes++
	return nil
}

// snapshot returns slot id -> status for before/after comparisons.
func (r *fakeSlotRepo) snapshot() map[string]models.SlotStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]models.SlotStatus, len(r.slots))
	for id, s := range r.slots {
		out[id] = s.Status
	}
	return out
}

func (r *fakeSlotRepo) status(slotID string) models.SlotStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.slots[slotID].Status
}

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]models.Booking
	writes   int
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]models.Booking)}
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (r *fakeBookingRepo) Create(_ context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.bookings[booking.ID]; exists {
		return fmt.Errorf("booking %s already exists", booking.ID)
	}
	r.bookings[booking.ID] = *booking
	r.writes++
	return nil
}

func (r *fakeBookingRepo) Update(_ context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.bookings[booking.ID]; !exists {
		return fmt.Errorf("booking %s not found for update", booking.ID)
	}
	r.bookings[booking.ID] = *booking
	r.writes++
	return nil
}

func (r *fakeBookingRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.bookings, id)
	return nil
}

func (r *fakeBookingRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.bookings)
}
