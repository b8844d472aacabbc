package booking

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"crewbook/models"
	"crewbook/utils"
)

// CheckAvailability lists professionals free on the date, optionally narrowed
// to those whose free window contains [startTime, startTime+duration hours).
// An empty result is not an error.
func (s *DefaultBookingService) CheckAvailability(ctx context.Context, date string, startTime *time.Time, duration int) ([]models.AvailabilityResponse, error) {
	utils.GetLogger().Debug("fetching professional availabilities", zap.String("date", date))

	if startTime == nil {
		return s.listAvailableOnDate(ctx, date)
	}
	start := minuteOfDay(*startTime)
	return s.listAvailableForWindow(ctx, date, start, start+duration*60)
}

// listAvailableOnDate returns every professional holding at least one free
// slot on the date, each with their free slots only.
func (s *DefaultBookingService) listAvailableOnDate(ctx context.Context, date string) ([]models.AvailabilityResponse, error) {
	free, err := s.Slots.GetAvailableByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	return s.buildResponses(ctx, groupByProfessional(free))
}

// listAvailableForWindow returns professionals having at least one free slot
// whose window fully contains [start, end), each with their free slots for
// the date.
func (s *DefaultBookingService) listAvailableForWindow(ctx context.Context, date string, start, end int) ([]models.AvailabilityResponse, error) {
	free, err := s.Slots.GetAvailableByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	grouped := groupByProfessional(free)
	for id, slots := range grouped {
		if qualifyingSlot(slots, models.SlotAvailable, start, end) == nil {
			delete(grouped, id)
		}
	}
	return s.buildResponses(ctx, grouped)
}

// isAvailable reports whether the professional has a free slot containing
// [start, end) on the date.
func (s *DefaultBookingService) isAvailable(ctx context.Context, professionalID, date string, start, end int) (bool, error) {
	slots, err := s.Slots.GetByProfessionalAndDate(ctx, professionalID, date)
	if err != nil {
		return false, err
	}
	return qualifyingSlot(slots, models.SlotAvailable, start, end) != nil, nil
}

func groupByProfessional(slots []models.Slot) map[string][]models.Slot {
	grouped := make(map[string][]models.Slot)
	for _, s := range slots {
		grouped[s.ProfessionalID] = append(grouped[s.ProfessionalID], s)
	}
	return grouped
}

// buildResponses resolves professional names and renders each one's free
// slots, ordered by professional id.
func (s *DefaultBookingService) buildResponses(ctx context.Context, grouped map[string][]models.Slot) ([]models.AvailabilityResponse, error) {
	if len(grouped) == 0 {
		return []models.AvailabilityResponse{}, nil
	}

	ids := make([]string, 0, len(grouped))
	for id := range grouped {
		ids = append(ids, id)
	}
	professionals, err := s.Professionals.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(professionals))
	for _, p := range professionals {
		names[p.ID] = p.Name
	}

	sort.Strings(ids)
	responses := make([]models.AvailabilityResponse, 0, len(ids))
	for _, id := range ids {
		slots := grouped[id]
		sort.Slice(slots, func(i, j int) bool { return slots[i].Start < slots[j].Start })

		views := make([]models.TimeSlotView, 0, len(slots))
		for _, sl := range slots {
			views = append(views, models.TimeSlotView{
				StartTime: models.ClockTime(sl.Start),
				EndTime:   models.ClockTime(sl.End),
			})
		}
		responses = append(responses, models.AvailabilityResponse{
			ProfessionalID: id,
			Name:           names[id],
			Availabilities: views,
		})
	}
	return responses, nil
}
