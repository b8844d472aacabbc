package booking

import (
	"time"

	"crewbook/models"
)

const dateLayout = "2006-01-02"

func dateKey(t time.Time) string {
	return t.Format(dateLayout)
}

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// qualifyingSlot picks the slot to act on for a window: an exact-bound match
// in the required status when one exists, otherwise the first covering slot.
// Returns nil when neither exists.
func qualifyingSlot(slots []models.Slot, status models.SlotStatus, start, end int) *models.Slot {
	var covering *models.Slot
	for i := range slots {
		s := slots[i]
		if s.Status != status {
			continue
		}
		if s.MatchesBounds(start, end) {
			return &slots[i]
		}
		if covering == nil && s.Covers(start, end) {
			covering = &slots[i]
		}
	}
	return covering
}
