package models

import "time"

// Booking represents a confirmed service appointment consuming one slot per
// assigned professional. Date/Start/End are denormalized from the timestamps
// for slot matching.
type Booking struct {
	ID              string    `bson:"id" json:"id"`
	Date            string    `bson:"date" json:"date"`   // "YYYY-MM-DD"
	Start           int       `bson:"start" json:"start"` // minutes from midnight
	End             int       `bson:"end" json:"end"`     // minutes from midnight
	StartDateTime   time.Time `bson:"start_date_time" json:"startDateTime"`
	EndDateTime     time.Time `bson:"end_date_time" json:"endDateTime"`
	ProfessionalIDs []string  `bson:"professional_ids" json:"professionalIds"`
	CreatedAt       time.Time `bson:"created_at" json:"createdAt"`
}
