package models

// Professional is a field worker who can be assigned to bookings.
// The vehicle relation is a plain identifier; the engine never navigates
// from a professional back to a live vehicle object graph.
type Professional struct {
	ID        string `bson:"id" json:"id"`
	Name      string `bson:"name" json:"name"`
	VehicleID string `bson:"vehicle_id" json:"vehicleId"`
}

// Vehicle groups professionals. Referenced only to test crew homogeneity,
// never mutated by the booking engine.
type Vehicle struct {
	ID     string `bson:"id" json:"id"`
	Number string `bson:"number" json:"number"`
}
