package models

// SlotStatus describes a professional's schedulability within one slot.
type SlotStatus string

const (
	SlotAvailable   SlotStatus = "AVAILABLE"
	SlotBooked      SlotStatus = "BOOKED"
	SlotUnavailable SlotStatus = "UNAVAILABLE"
)

// Slot represents one contiguous interval during which a professional is
// nominally schedulable on a given date. Slots are pre-populated by the
// roster process; the booking engine only flips their status.
type Slot struct {
	ID             string     `bson:"id" json:"id"`
	ProfessionalID string     `bson:"professional_id" json:"professionalId"`
	Date           string     `bson:"date" json:"date"`   // "YYYY-MM-DD"
	Start          int        `bson:"start" json:"start"` // minutes from midnight (e.g., 480 for 8:00 AM)
	End            int        `bson:"end" json:"end"`     // minutes from midnight, always > Start
	Status         SlotStatus `bson:"status" json:"status"`
}

// Covers reports whether the slot's window fully contains [start, end).
func (s Slot) Covers(start, end int) bool {
	return s.Start <= start && s.End >= end
}

// MatchesBounds reports whether the slot's window equals [start, end) exactly.
func (s Slot) MatchesBounds(start, end int) bool {
	return s.Start == start && s.End == end
}
